package gitcmd

import (
	"regexp"
	"strings"
)

// Brace rename form: prefix{old => new}suffix, emitted when only part of
// the path changed (e.g. a directory rename).
var braceRenameRE = regexp.MustCompile(`^(.*)\{(.*) => (.*)\}(.*)$`)

// simpleRenameSep separates the two halves of a whole-path rename token.
const simpleRenameSep = " => "

// SplitRenamePath decomposes a numstat path token into its destination
// and source paths. Tokens without a rename marker return (token, "").
func SplitRenamePath(token string) (dst, src string) {
	if m := braceRenameRE.FindStringSubmatch(token); m != nil {
		prefix, oldPart, newPart, suffix := m[1], m[2], m[3], m[4]
		return prefix + newPart + suffix, prefix + oldPart + suffix
	}
	if i := strings.Index(token, simpleRenameSep); i >= 0 {
		return token[i+len(simpleRenameSep):], token[:i]
	}
	return token, ""
}

// UnescapePath decodes a path token as emitted by git. Tokens wrapped in
// double quotes carry C-style escapes: backslash plus three octal digits
// for one raw byte, or backslash plus a named escape character. Unquoted
// tokens pass through unchanged.
func UnescapePath(token string) string {
	if len(token) < 2 || token[0] != '"' || token[len(token)-1] != '"' {
		return token
	}
	inner := token[1 : len(token)-1]

	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c != '\\' || i+1 >= len(inner) {
			b.WriteByte(c)
			continue
		}
		i++
		next := inner[i]
		if isOctal(next) && i+2 < len(inner) && isOctal(inner[i+1]) && isOctal(inner[i+2]) {
			// Three octal digits encode one raw byte; the assembled
			// bytes are interpreted as UTF-8 by the caller.
			b.WriteByte((next-'0')<<6 | (inner[i+1]-'0')<<3 | (inner[i+2] - '0'))
			i += 2
			continue
		}
		switch next {
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'v':
			b.WriteByte('\v')
		case 'f':
			b.WriteByte('\f')
		case 'r':
			b.WriteByte('\r')
		case 'e':
			b.WriteByte(0x1b)
		case '\\', '"', '\'':
			b.WriteByte(next)
		default:
			// Unknown escape: keep the character as-is.
			b.WriteByte(next)
		}
	}
	return b.String()
}

func isOctal(c byte) bool {
	return c >= '0' && c <= '7'
}
