// The token subpackage decodes UTF-8 text into tokens, one per visual
// character, in the packed form used to key bitmap font atlases.
//
// A token is not a Unicode code point: it holds the raw bytes of the
// encoded sequence packed big-endian into a uint32. 'A' is 0x41, 'é'
// is 0xC3A9 and '€' is 0xE282AC. Keeping the packed form means that
// character lists and text can be compared token to token without
// any validation, and malformed input simply produces tokens that
// no atlas will ever contain.
package token
