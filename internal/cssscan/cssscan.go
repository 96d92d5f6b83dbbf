// Package cssscan extracts class names from CSS source.
//
// The scanner is deliberately not a full CSS parser. It walks the raw
// bytes, skips comments, quoted strings and url() payloads, and collects
// every identifier introduced by a '.' in selector position. That is
// sufficient for design-system stylesheets, whose class names are plain
// ASCII identifiers without escapes.
package cssscan

import "sort"

// Classes returns the distinct class names referenced by selectors in css,
// sorted lexically. Works on both expanded and minified stylesheets.
func Classes(css []byte) []string {
	set := Set(css)
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Set returns the class names referenced in css as a membership set.
func Set(css []byte) map[string]struct{} {
	set := make(map[string]struct{})

	i := 0
	n := len(css)
	for i < n {
		c := css[i]

		switch {
		case c == '/' && i+1 < n && css[i+1] == '*':
			i = skipComment(css, i+2)
		case c == '"' || c == '\'':
			i = skipString(css, i+1, c)
		case c == 'u' && hasPrefixAt(css, i, "url("):
			i = skipURL(css, i+4)
		case c == '.' && i+1 < n && isIdentStart(css[i+1]):
			start := i + 1
			j := start
			for j < n && isIdent(css[j]) {
				j++
			}
			set[string(css[start:j])] = struct{}{}
			i = j
		default:
			i++
		}
	}

	return set
}

// skipComment advances past a block comment. i points just after "/*".
func skipComment(css []byte, i int) int {
	for ; i < len(css); i++ {
		if css[i] == '*' && i+1 < len(css) && css[i+1] == '/' {
			return i + 2
		}
	}
	return i
}

// skipString advances past a quoted string. i points just after the
// opening quote.
func skipString(css []byte, i int, quote byte) int {
	for ; i < len(css); i++ {
		switch css[i] {
		case '\\':
			i++ // escaped char, skip it
		case quote:
			return i + 1
		}
	}
	return i
}

// skipURL advances past an unquoted url() payload. Quoted payloads are
// handled by the string case before the closing paren.
func skipURL(css []byte, i int) int {
	for ; i < len(css); i++ {
		switch css[i] {
		case '"', '\'':
			i = skipString(css, i+1, css[i]) - 1
		case ')':
			return i + 1
		}
	}
	return i
}

func hasPrefixAt(css []byte, i int, prefix string) bool {
	if i+len(prefix) > len(css) {
		return false
	}
	return string(css[i:i+len(prefix)]) == prefix
}

// isIdentStart reports whether c can begin a class name. Digits are
// excluded, which keeps numeric values like ".5em" out of the result.
func isIdentStart(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdent(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
