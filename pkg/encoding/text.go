// Package encoding provides text decoding helpers for scene-graph files.
package encoding

import (
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewTextReader wraps r so that a leading UTF-8 or UTF-16 byte order mark
// is consumed and UTF-16 content is transcoded to UTF-8. Input without a
// BOM is decoded as UTF-8, invalid sequences become U+FFFD.
func NewTextReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// quoter escapes the characters that would end a string literal early.
var quoter = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Quote returns s as a double-quoted string literal. Backslashes and
// double quotes are escaped with a backslash.
func Quote(s string) string {
	return `"` + quoter.Replace(s) + `"`
}

// Unquote strips the surrounding double quotes from a string literal and
// resolves backslash escapes. Values that are not quoted, or whose closing
// quote is missing or escaped, are returned unchanged with ok set to false.
func Unquote(s string) (string, bool) {
	if len(s) < 2 || s[0] != '"' {
		return s, false
	}

	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			i++
			if i == len(s) {
				return s, false
			}
			b.WriteByte(s[i])
		case '"':
			if i != len(s)-1 {
				return s, false
			}
			return b.String(), true
		default:
			b.WriteByte(c)
		}
	}
	return s, false
}
