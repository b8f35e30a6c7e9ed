package value

import "strings"

// DecodeString decodes a quoted string literal: it strips the surrounding
// quotes and resolves escape sequences in the content.
func DecodeString(literal string) (string, error) {
	if len(literal) < 2 {
		return "", NewStringError(literal, "missing quotes")
	}
	quote := literal[0]
	if quote != '"' && quote != '\'' {
		return "", NewStringError(literal, "missing opening quote")
	}
	if literal[len(literal)-1] != quote {
		return "", NewStringError(literal, "missing closing quote")
	}
	return decodeEscapes(literal[1 : len(literal)-1])
}

// decodeEscapes resolves escape sequences:
//   - backslash + newline is a line continuation and is dropped
//   - backslash + 1..6 hex digits is a Unicode escape; it consumes exactly
//     one trailing whitespace character if one is present
//   - backslash + any other character cancels that character's special
//     meaning and yields it verbatim
//
// The zero codepoint is an error; codepoints beyond U+10FFFF decode to
// U+FFFD.
func decodeEscapes(s string) (string, error) {
	var b strings.Builder
	runes := []rune(s)

	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if ch != '\\' {
			b.WriteRune(ch)
			continue
		}

		if i+1 >= len(runes) {
			// a lone trailing backslash decodes to the replacement character
			b.WriteRune('�')
			break
		}

		next := runes[i+1]
		switch {
		case isNewline(next):
			// line continuation, dropped
			i++
			if next == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}

		case isHexDigit(next):
			codepoint := 0
			j := i + 1
			for j < len(runes) && j <= i+6 && isHexDigit(runes[j]) {
				codepoint = codepoint*16 + hexValue(runes[j])
				j++
			}
			if codepoint == 0 {
				return "", NewEscapeError(s, "escape resolves to the zero codepoint")
			}
			if codepoint > 0x10FFFF {
				codepoint = 0xFFFD
			}
			b.WriteRune(rune(codepoint))
			i = j - 1
			// a hex escape consumes exactly one trailing whitespace character
			if j < len(runes) && isEscapeWhitespace(runes[j]) {
				i = j
				if runes[j] == '\r' && j+1 < len(runes) && runes[j+1] == '\n' {
					i = j + 1
				}
			}

		default:
			b.WriteRune(next)
			i++
		}
	}

	return b.String(), nil
}

func isNewline(ch rune) bool {
	return ch == '\n' || ch == '\r' || ch == '\f'
}

func isEscapeWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || isNewline(ch)
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') ||
		(ch >= 'a' && ch <= 'f') ||
		(ch >= 'A' && ch <= 'F')
}

func hexValue(ch rune) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	default:
		return int(ch-'A') + 10
	}
}
