package vrml

import "strings"

// Header magic tokens, matched against the first field of the first line.
var headers = []string{"#VRML", "#X3D", "#Inventor"}

// checkHeader reports whether line starts with a recognized header token.
func checkHeader(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	for _, h := range headers {
		if fields[0] == h {
			return true
		}
	}
	return false
}

// skipLine reports whether a line carries no tokens: blank lines and
// lines whose first non-space character is '#'.
func skipLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || trimmed[0] == '#'
}

func isDelimiter(c byte) bool {
	switch c {
	case ',', '[', ']', '{', '}':
		return true
	}
	return false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == '\v'
}

// Tokenize splits one line of text into tokens. Commas, brackets and braces
// are returned as single-character tokens, every other run of non-space
// characters is returned verbatim. A double-quoted string is one token even
// if it contains spaces or delimiters, and a backslash inside it escapes the
// next character. A string with no closing quote on its line ends at the
// next space or delimiter. A token starting with '#' begins a comment that
// runs to the end of the line.
func Tokenize(line string) []string {
	var tokens []string

	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case isSpace(c):
			i++
		case isDelimiter(c):
			tokens = append(tokens, line[i:i+1])
			i++
		case c == '#':
			return tokens
		case c == '"':
			end := quoteEnd(line, i)
			tokens = append(tokens, line[i:end])
			i = end
		default:
			start := i
			for i < len(line) && !isSpace(line[i]) && !isDelimiter(line[i]) {
				i++
			}
			tokens = append(tokens, line[start:i])
		}
	}

	return tokens
}

// quoteEnd returns the index just past the string literal that starts at
// line[start].
func quoteEnd(line string, start int) int {
	for i := start + 1; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}

	i := start + 1
	for i < len(line) && !isSpace(line[i]) && !isDelimiter(line[i]) {
		i++
	}
	return i
}
