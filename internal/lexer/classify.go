package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KimNorgaard/go-ini/internal/token"
)

// Classify decides what kind of line raw is. isPrefix reports whether a
// character starts a comment. Classify attaches nothing to anything; it only
// splits the line into its parts.
func Classify(number int, raw string, isPrefix func(rune) bool) token.Line {
	line := token.Line{Number: number, Raw: raw}

	s := strings.TrimLeftFunc(raw, isSpace)
	if strings.TrimRightFunc(s, isSpace) == "" {
		line.Kind = token.BLANK
		return line
	}

	r, size := utf8.DecodeRuneInString(s)
	switch {
	case isPrefix(r):
		line.Kind = token.COMMENT
		line.Prefix = r
		line.Text = s[size:]
	case r == '[':
		classifySection(&line, s[size:], isPrefix)
	default:
		classifyProperty(&line, s, isPrefix)
	}
	return line
}

// isSpace treats U+FEFF like whitespace around names, so a stray byte order
// mark never becomes part of a key or section name.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func classifySection(line *token.Line, s string, isPrefix func(rune) bool) {
	var name strings.Builder
	i, closed := 0, false
	for i < len(s) {
		if n, adv := escaped(s, i, func(r rune) bool { return token.IsNameSpecial(r, isPrefix) }); adv > 0 {
			name.WriteString(n)
			i += adv
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == ']' {
			closed = true
			i += size
			break
		}
		if isPrefix(r) {
			break
		}
		name.WriteString(s[i : i+size])
		i += size
	}
	if !closed {
		malformed(line, token.ReasonMissingBracket)
		return
	}
	n := strings.TrimFunc(name.String(), isSpace)
	if n == "" {
		malformed(line, token.ReasonEmptySection)
		return
	}

	rest := strings.TrimLeftFunc(s[i:], unicode.IsSpace)
	if rest != "" {
		r, size := utf8.DecodeRuneInString(rest)
		if !isPrefix(r) {
			malformed(line, token.ReasonHeaderTrailing)
			return
		}
		line.HasComment = true
		line.Prefix = r
		line.Text = rest[size:]
	}
	line.Kind = token.SECTION
	line.Name = n
}

func classifyProperty(line *token.Line, s string, isPrefix func(rune) bool) {
	var key strings.Builder
	i, found := 0, false
	for i < len(s) {
		if k, adv := escaped(s, i, func(r rune) bool { return token.IsKeySpecial(r, isPrefix) }); adv > 0 {
			key.WriteString(k)
			i += adv
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == '=' {
			found = true
			break
		}
		if isPrefix(r) {
			break
		}
		key.WriteString(s[i : i+size])
		i += size
	}
	if !found {
		malformed(line, token.ReasonMissingEquals)
		return
	}
	k := strings.TrimFunc(key.String(), isSpace)
	if k == "" {
		malformed(line, token.ReasonEmptyKey)
		return
	}
	line.Kind = token.PROPERTY
	line.Name = k
	line.Value = s[i+1:]
}

// escaped checks for a backslash at s[i] followed by a character that special
// accepts. It returns the escaped character and the number of bytes consumed,
// or zero when s[i] does not start an escape.
func escaped(s string, i int, special func(rune) bool) (string, int) {
	if s[i] != '\\' || i+1 >= len(s) {
		return "", 0
	}
	r, size := utf8.DecodeRuneInString(s[i+1:])
	if !special(r) {
		return "", 0
	}
	return s[i+1 : i+1+size], 1 + size
}

func malformed(line *token.Line, reason string) {
	line.Kind = token.MALFORMED
	line.Reason = reason
}
