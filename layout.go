package btxt

import "strings"

import "github.com/pggk/btxt/token"

// Returns the horizontal advance of a single character for the given
// size and horizontal offset percentage.
func Advance(size, horzOffset int) int {
	return size - size*horzOffset/100
}

// Returns the vertical advance between lines for the given size
// and vertical offset percentage.
func LineAdvance(size, vertOffset int) int {
	return size * vertOffset / 100
}

// Returns the text without any line breaks.
func RemoveNewlines(text string) string {
	return strings.ReplaceAll(text, "\n", "")
}

// Splits the text at line breaks. A line break at the very end of
// the text doesn't produce an extra empty segment.
func SplitNewlines(text string) []string {
	if text == "" { return nil }
	segments := strings.Split(text, "\n")
	if segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}
	return segments
}

// Greedy word wrapping of a single paragraph. Words are separated by
// whitespace and joined back with single spaces. A word is appended
// to the current line while the character count of the resulting line
// multiplied by the character advance stays within maxWidth. Words
// that don't fit even on their own get a line for themselves.
//
// Widths are estimated from character counts, which is only exact
// for fixed-width atlases.
func Wrap(text string, size, horzOffset, maxWidth int) []string {
	return appendWrapped(nil, text, Advance(size, horzOffset), maxWidth)
}

// Splits the text at line breaks and wraps each resulting
// paragraph with [Wrap](). Empty paragraphs produce no lines.
func Lines(text string, size, horzOffset, maxWidth int) []string {
	advance := Advance(size, horzOffset)
	var lines []string
	for _, segment := range SplitNewlines(text) {
		lines = appendWrapped(lines, segment, advance, maxWidth)
	}
	return lines
}

// Returns the index of the line containing the character at the given
// index, counting one extra character after each line for the break.
// Returns -1 if the index is beyond the last line.
func LineOf(lines []string, index int) int {
	total := 0
	for i, line := range lines {
		total += token.Count(line) + 1
		if total > index { return i }
	}
	return -1
}

// ---- helpers ----

// Decodes the text without its line breaks and returns the display
// line of each token, wrapping the same way [Lines]() does. All the
// whitespace is kept: runs of spaces, indentation and the spaces at
// wrap points stay on the line of the word before them, or on the
// line of the first word for leading whitespace. Paragraphs without
// words have no display line and contribute no tokens.
func layoutTokens(text string, size, horzOffset, maxWidth int) ([]token.Token, []int) {
	advance := Advance(size, horzOffset)
	var tokens []token.Token
	var lines []int
	line := -1
	for _, segment := range SplitNewlines(text) {
		decoded := token.DecodeString(segment)
		start := len(tokens)
		hasWords := false
		lineLen := 0
		for i := 0; i < len(decoded); {
			if isLayoutSpaceToken(decoded[i]) {
				tokens = append(tokens, decoded[i])
				if hasWords {
					lines = append(lines, line)
				} else {
					lines = append(lines, line+1)
				}
				i += 1
				continue
			}

			end := i + 1
			for end < len(decoded) && !isLayoutSpaceToken(decoded[end]) { end += 1 }
			wordLen := end - i
			if hasWords && fitsLine(lineLen, wordLen, advance, maxWidth) {
				lineLen += wordLen + 1
			} else {
				line += 1
				lineLen = wordLen
				hasWords = true
			}
			for ; i < end; i++ {
				tokens = append(tokens, decoded[i])
				lines = append(lines, line)
			}
		}
		if !hasWords {
			tokens = tokens[:start]
			lines = lines[:start]
		}
	}
	return tokens, lines
}

func appendWrapped(lines []string, text string, advance, maxWidth int) []string {
	start := len(lines)
	lineLen := 0
	for _, word := range strings.FieldsFunc(text, isLayoutSpace) {
		wordLen := token.Count(word)
		if len(lines) > start && fitsLine(lineLen, wordLen, advance, maxWidth) {
			lines[len(lines)-1] += " " + word
			lineLen += wordLen + 1
		} else {
			lines = append(lines, word)
			lineLen = wordLen
		}
	}
	return lines
}

// Words are joined with a single separator when measuring.
func fitsLine(lineLen, wordLen, advance, maxWidth int) bool {
	return (lineLen+wordLen+1)*advance <= maxWidth
}

func isLayoutSpaceToken(tok token.Token) bool {
	return tok < 0x80 && isLayoutSpace(rune(tok))
}

// ASCII whitespace only, multi-byte spaces are regular characters.
func isLayoutSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
