package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KimNorgaard/go-ini/internal/escape"
	"github.com/KimNorgaard/go-ini/internal/token"
)

// Value is a decoded property value.
type Value struct {
	Text   string
	Quoted bool

	HasComment bool
	Prefix     rune
	Comment    string
}

type valueState int

const (
	stateStart valueState = iota
	stateUnquoted
	stateInQuote
	stateEscape
	stateTerminated
)

// DecodeValue decodes the text after '=' on a property line. On failure it
// returns the reason the line is malformed.
//
// An unquoted value runs up to the first comment prefix that is not preceded
// by a backslash and is trimmed. A quoted value is taken verbatim apart from
// backslash escapes, and only whitespace or an inline comment may follow the
// closing quote.
func DecodeValue(raw string, isPrefix func(rune) bool) (Value, string) {
	var (
		v   Value
		buf strings.Builder
		st  = stateStart
	)
	for i := 0; i < len(raw); {
		r, size := utf8.DecodeRuneInString(raw[i:])
		switch st {
		case stateStart:
			switch {
			case unicode.IsSpace(r):
				i += size
			case r == '"':
				v.Quoted = true
				st = stateInQuote
				i += size
			default:
				st = stateUnquoted
			}

		case stateUnquoted:
			if c, adv := escaped(raw, i, isPrefix); adv > 0 {
				buf.WriteString(c)
				i += adv
				continue
			}
			if isPrefix(r) {
				v.setComment(r, raw[i+size:])
				i = len(raw)
				continue
			}
			buf.WriteString(raw[i : i+size])
			i += size

		case stateInQuote:
			switch r {
			case '\\':
				st = stateEscape
			case '"':
				st = stateTerminated
			default:
				buf.WriteString(raw[i : i+size])
			}
			i += size

		case stateEscape:
			if c, ok := escape.Lookup(raw[i]); ok && size == 1 {
				buf.WriteByte(c)
			} else {
				buf.WriteString(raw[i : i+size])
			}
			st = stateInQuote
			i += size

		case stateTerminated:
			switch {
			case unicode.IsSpace(r):
				i += size
			case isPrefix(r):
				v.setComment(r, raw[i+size:])
				i = len(raw)
			default:
				return Value{}, token.ReasonQuotedTrailing
			}
		}
	}

	switch st {
	case stateInQuote, stateEscape:
		return Value{}, token.ReasonUnterminated
	case stateUnquoted:
		v.Text = strings.TrimRightFunc(buf.String(), unicode.IsSpace)
	default:
		v.Text = buf.String()
	}
	return v, ""
}

func (v *Value) setComment(prefix rune, text string) {
	v.HasComment = true
	v.Prefix = prefix
	v.Comment = text
}
