package printer

import "strings"

const hexChars = "0123456789ABCDEF"

func canPrintWithoutEscape(c rune) bool {
	if c < 0x20 || c == '\\' || c == '"' {
		return false
	}
	// U+2028/U+2029 terminate lines in older target parsers; U+FEFF is
	// invisible and confuses downstream tooling.
	return c != '\u2028' && c != '\u2029' && c != '\ufeff'
}

// QuoteString renders text as a double-quoted string literal using the
// target format's standard escapes. The output re-parses to the same
// value with a standard JSON or JS string parser.
func QuoteString(text string) string {
	var sb strings.Builder
	sb.Grow(len(text) + 2)
	sb.WriteByte('"')
	for _, c := range text {
		if canPrintWithoutEscape(c) {
			sb.WriteRune(c)
			continue
		}
		switch c {
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		default:
			if c > 0xFFFF {
				// Encode as a surrogate pair so the escape stays
				// within \uXXXX form.
				c -= 0x10000
				hi := 0xD800 + ((c >> 10) & 0x3FF)
				lo := 0xDC00 + (c & 0x3FF)
				writeUnicodeEscape(&sb, hi)
				writeUnicodeEscape(&sb, lo)
			} else {
				writeUnicodeEscape(&sb, c)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func writeUnicodeEscape(sb *strings.Builder, c rune) {
	sb.WriteString(`\u`)
	sb.WriteByte(hexChars[(c>>12)&15])
	sb.WriteByte(hexChars[(c>>8)&15])
	sb.WriteByte(hexChars[(c>>4)&15])
	sb.WriteByte(hexChars[c&15])
}
