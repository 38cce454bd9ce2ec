package token

import "unicode/utf8"

// A Token is a single decoded visual unit. See the package
// documentation for details on the packed representation.
type Token uint32

const (
	Space     Token = ' '
	LineBreak Token = '\n'
)

// Masks applied once a sequence of the given length is complete,
// clearing the bits that the lead byte spilled over its own position.
var completionMasks = [5]uint32{0, 0, 0xFFFF0000, 0xFF000000, 0x00000000}

// Returns whether the byte starts a 2, 3 or 4 byte sequence.
func IsSequenceStart(b byte) bool {
	return (b&0xE0) == 0xC0 || (b&0xF0) == 0xE0 || (b&0xF8) == 0xF0
}

// Returns whether the byte is a continuation byte.
func IsContinuation(b byte) bool {
	return (b & 0xC0) == 0x80
}

// Decodes the given bytes into tokens. Input order is preserved and
// there's exactly one token per well formed character. Malformed input
// never fails: stray continuation bytes are packed together into a
// token of their own, lead bytes without continuation are dropped.
func Decode(text []byte) []Token {
	tokens := make([]Token, 0, len(text))
	var dec decoder
	for i := 0; i < len(text); i++ {
		nextIsCont := i+1 < len(text) && IsContinuation(text[i+1])
		tok, ok := dec.feed(text[i], nextIsCont)
		if ok { tokens = append(tokens, tok) }
	}
	return tokens
}

// Same as [Decode](), but for strings.
func DecodeString(text string) []Token {
	tokens := make([]Token, 0, len(text))
	var dec decoder
	for i := 0; i < len(text); i++ {
		nextIsCont := i+1 < len(text) && IsContinuation(text[i+1])
		tok, ok := dec.feed(text[i], nextIsCont)
		if ok { tokens = append(tokens, tok) }
	}
	return tokens
}

// Returns the number of tokens [DecodeString]() would produce,
// without allocating.
func Count(text string) int {
	count := 0
	var dec decoder
	for i := 0; i < len(text); i++ {
		nextIsCont := i+1 < len(text) && IsContinuation(text[i+1])
		_, ok := dec.feed(text[i], nextIsCont)
		if ok { count += 1 }
	}
	return count
}

// Converts a rune to its token. Invalid runes are converted
// to the token of [utf8.RuneError].
func FromRune(codePoint rune) Token {
	var buffer [utf8.UTFMax]byte
	n := utf8.EncodeRune(buffer[:], codePoint)
	var value uint32
	for i := 0; i < n; i++ {
		value = (value << 8) | uint32(buffer[i])
	}
	return Token(value)
}

// Returns the number of bytes in the packed sequence.
func (self Token) Len() int {
	switch {
	case self <= 0xFF:
		return 1
	case self <= 0xFFFF:
		return 2
	case self <= 0xFFFFFF:
		return 3
	default:
		return 4
	}
}

// Appends the packed bytes to the given buffer, most significant first.
func (self Token) AppendBytes(buffer []byte) []byte {
	for i := self.Len() - 1; i >= 0; i-- {
		buffer = append(buffer, byte(self>>uint(i*8)))
	}
	return buffer
}

// Returns the packed bytes of the token.
func (self Token) Bytes() []byte {
	return self.AppendBytes(make([]byte, 0, 4))
}

// Returns the token bytes as a string.
func (self Token) String() string {
	return string(self.Bytes())
}

// Returns the code point encoded by the token, or [utf8.RuneError]
// if the packed bytes are not a valid UTF-8 sequence.
func (self Token) Rune() rune {
	var buffer [4]byte
	bytes := self.AppendBytes(buffer[:0])
	codePoint, size := utf8.DecodeRune(bytes)
	if size != len(bytes) { return utf8.RuneError }
	return codePoint
}

// Re-encodes a token sequence. For well formed input,
// Encode(Decode(text)) == text.
func Encode(tokens []Token) []byte {
	buffer := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		buffer = tok.AppendBytes(buffer)
	}
	return buffer
}
