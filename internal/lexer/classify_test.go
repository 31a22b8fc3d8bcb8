package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-ini/internal/token"
)

func isPrefix(r rune) bool { return r == ';' || r == '#' }

func TestClassify(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Line
	}{
		{"", token.Line{Kind: token.BLANK}},
		{"   \t", token.Line{Kind: token.BLANK}},
		{"; note", token.Line{Kind: token.COMMENT, Prefix: ';', Text: " note"}},
		{"  #x ", token.Line{Kind: token.COMMENT, Prefix: '#', Text: "x "}},
		{"[server]", token.Line{Kind: token.SECTION, Name: "server"}},
		{"  [ My Section ]  ", token.Line{Kind: token.SECTION, Name: "My Section"}},
		{"[a] ; inline", token.Line{Kind: token.SECTION, Name: "a", HasComment: true, Prefix: ';', Text: " inline"}},
		{`[a\]b]`, token.Line{Kind: token.SECTION, Name: "a]b"}},
		{`[a\;b]`, token.Line{Kind: token.SECTION, Name: "a;b"}},
		{`[a\\]`, token.Line{Kind: token.SECTION, Name: `a\`}},
		{`[a\b]`, token.Line{Kind: token.SECTION, Name: `a\b`}},
		{"[server", token.Line{Kind: token.MALFORMED, Reason: token.ReasonMissingBracket}},
		{"[a ; b]", token.Line{Kind: token.MALFORMED, Reason: token.ReasonMissingBracket}},
		{"[]", token.Line{Kind: token.MALFORMED, Reason: token.ReasonEmptySection}},
		{"[   ]", token.Line{Kind: token.MALFORMED, Reason: token.ReasonEmptySection}},
		{"[a] b", token.Line{Kind: token.MALFORMED, Reason: token.ReasonHeaderTrailing}},
		{"key=value", token.Line{Kind: token.PROPERTY, Name: "key", Value: "value"}},
		{"  key  =  value ; c", token.Line{Kind: token.PROPERTY, Name: "key", Value: "  value ; c"}},
		{"k=", token.Line{Kind: token.PROPERTY, Name: "k", Value: ""}},
		{"a=b=c", token.Line{Kind: token.PROPERTY, Name: "a", Value: "b=c"}},
		{`a\=b = c`, token.Line{Kind: token.PROPERTY, Name: "a=b", Value: " c"}},
		{`\[x] = 1`, token.Line{Kind: token.PROPERTY, Name: "[x]", Value: " 1"}},
		{`\;k = 1`, token.Line{Kind: token.PROPERTY, Name: ";k", Value: " 1"}},
		{`C:\dir = 1`, token.Line{Kind: token.PROPERTY, Name: `C:\dir`, Value: " 1"}},
		{"novalue", token.Line{Kind: token.MALFORMED, Reason: token.ReasonMissingEquals}},
		{"k ; = v", token.Line{Kind: token.MALFORMED, Reason: token.ReasonMissingEquals}},
		{"\uFEFFk=v", token.Line{Kind: token.PROPERTY, Name: "k", Value: "v"}},
		{"\uFEFF[s\uFEFF]", token.Line{Kind: token.SECTION, Name: "s"}},
		{"\uFEFF", token.Line{Kind: token.BLANK}},
		{"\uFEFF= v", token.Line{Kind: token.MALFORMED, Reason: token.ReasonEmptyKey}},
		{"= v", token.Line{Kind: token.MALFORMED, Reason: token.ReasonEmptyKey}},
		{"  = v", token.Line{Kind: token.MALFORMED, Reason: token.ReasonEmptyKey}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			line := Classify(7, tt.input, isPrefix)
			tt.expected.Number = 7
			tt.expected.Raw = tt.input
			require.Equal(t, tt.expected, line)
		})
	}
}

func TestClassify_CustomPrefix(t *testing.T) {
	bang := func(r rune) bool { return r == '!' }

	line := Classify(1, "; not a comment = really", bang)
	require.Equal(t, token.PROPERTY, line.Kind)
	require.Equal(t, "; not a comment", line.Name)

	line = Classify(2, "! comment", bang)
	require.Equal(t, token.COMMENT, line.Kind)
	require.Equal(t, '!', line.Prefix)
}
