package shell

import (
	"strings"
)

// isSpace matches the C locale whitespace set. Bytes outside ASCII are
// always word characters.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Split breaks a line into whitespace separated tokens.
//
// A token that starts with a double quote runs to the next double quote, may
// contain whitespace and may be empty. The quotes are removed and the next
// token starts right after the closing quote. A quote anywhere else in a word
// is an ordinary character. There is no escape character.
//
// An unterminated quote runs to the end of the line. Bytes are never decoded,
// so tokens hold exactly the bytes of the line.
func Split(line string) []string {
	tokens := []string{}

	pos := 0
	for {
		for pos < len(line) && isSpace(line[pos]) {
			pos++
		}
		if pos >= len(line) {
			return tokens
		}

		if line[pos] == '"' {
			start := pos + 1
			end := strings.IndexByte(line[start:], '"')
			if end < 0 {
				return append(tokens, line[start:])
			}
			tokens = append(tokens, line[start:start+end])
			pos = start + end + 1
			continue
		}

		start := pos
		for pos < len(line) && !isSpace(line[pos]) {
			pos++
		}
		tokens = append(tokens, line[start:pos])
	}
}

// IsComment reports whether the tokens form a comment line.
func IsComment(tokens []string) bool {
	return len(tokens) > 0 && strings.HasPrefix(tokens[0], "#")
}
