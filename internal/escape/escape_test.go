package escape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		letter byte
		char   byte
		ok     bool
	}{
		{'0', 0, true},
		{'a', '\a', true},
		{'b', '\b', true},
		{'t', '\t', true},
		{'r', '\r', true},
		{'n', '\n', true},
		{'\\', '\\', true},
		{'"', '"', true},
		{';', ';', true},
		{'#', '#', true},
		{'x', 0, false},
		{'N', 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.letter), func(t *testing.T) {
			c, ok := Lookup(tt.letter)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.char, c)
			if ok {
				l, ok := Letter(c)
				require.True(t, ok)
				require.Equal(t, tt.letter, l)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", `""`},
		{"plain", `"plain"`},
		{"a\nb", `"a\nb"`},
		{`say "hi"`, `"say \"hi\""`},
		{`C:\dir`, `"C:\\dir"`},
		{"a;b#c", `"a\;b\#c"`},
		{"\x00\a\b\t\r", `"\0\a\b\t\r"`},
		{"héllo", `"héllo"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, Quote(tt.input))
		})
	}
}

func TestHasControl(t *testing.T) {
	require.False(t, HasControl("plain text"))
	require.True(t, HasControl("tab\there"))
	require.True(t, HasControl("nul\x00"))
	require.False(t, HasControl(`back\slash`))
}
