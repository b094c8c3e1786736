package tsconfig

import (
	"bytes"

	"github.com/tidwall/jsonc"
)

// TrailingCommaPolicy selects which trailing commas the preprocessor removes.
type TrailingCommaPolicy string

const (
	// TrailingCommasObjects removes a trailing comma only when it precedes a
	// closing '}'. A trailing comma before ']' is kept and rejected by the
	// JSON stage. This is the default and the compatibility target.
	TrailingCommasObjects TrailingCommaPolicy = "objects"
	// TrailingCommasAll also removes trailing commas before ']'.
	TrailingCommasAll TrailingCommaPolicy = "all"
)

// Valid reports whether p names a known policy. The zero value is valid and
// behaves like TrailingCommasObjects.
func (p TrailingCommaPolicy) Valid() bool {
	switch p {
	case "", TrailingCommasObjects, TrailingCommasAll:
		return true
	}
	return false
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Preprocess turns comment and trailing-comma tolerant text into text a
// strict JSON parser accepts. Removed bytes are replaced with spaces and
// newlines are kept, so byte offsets in the result match the input.
//
// Preprocess does not validate: an unterminated block comment or string is
// left in place for the JSON stage to report.
func Preprocess(text string, policy TrailingCommaPolicy) string {
	buf := []byte(text)
	if bytes.HasPrefix(buf, utf8BOM) {
		copy(buf, "   ")
	}

	if policy == TrailingCommasAll {
		return string(jsonc.ToJSON(buf))
	}

	stripComments(buf)
	stripObjectTrailingCommas(buf)
	return string(buf)
}

// stripComments blanks // and /* */ comments outside string literals.
func stripComments(buf []byte) {
	for i := 0; i < len(buf); {
		switch {
		case buf[i] == '"':
			i = skipString(buf, i)

		case buf[i] == '/' && i+1 < len(buf) && buf[i+1] == '/':
			for i < len(buf) && buf[i] != '\n' {
				if buf[i] != '\r' {
					buf[i] = ' '
				}
				i++
			}

		case buf[i] == '/' && i+1 < len(buf) && buf[i+1] == '*':
			end := bytes.Index(buf[i+2:], []byte("*/"))
			if end < 0 {
				return
			}
			stop := i + 2 + end + 2
			for ; i < stop; i++ {
				if buf[i] != '\n' && buf[i] != '\r' {
					buf[i] = ' '
				}
			}

		default:
			i++
		}
	}
}

// stripObjectTrailingCommas blanks a comma followed, modulo whitespace, by '}'.
func stripObjectTrailingCommas(buf []byte) {
	for i := 0; i < len(buf); {
		switch buf[i] {
		case '"':
			i = skipString(buf, i)
			continue
		case ',':
			j := i + 1
			for j < len(buf) && isJSONSpace(buf[j]) {
				j++
			}
			if j < len(buf) && buf[j] == '}' {
				buf[i] = ' '
			}
		}
		i++
	}
}

// skipString returns the index just past the string literal starting at
// buf[start]. A raw newline ends an unterminated literal so scanning can
// resynchronize on the next line.
func skipString(buf []byte, start int) int {
	for i := start + 1; i < len(buf); i++ {
		switch buf[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		case '\n':
			return i
		}
	}
	return len(buf)
}

func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
