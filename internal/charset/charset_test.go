package charset

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		label    string
		expected any
	}{
		{"utf-8", unicode.UTF8},
		{" UTF8 ", unicode.UTF8},
		{"latin1", charmap.Windows1252},
		{"windows-1252", charmap.Windows1252},
		{"iso-8859-2", charmap.ISO8859_2},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			enc, err := Lookup(tt.label)
			require.NoError(t, err)
			require.Equal(t, tt.expected, enc)
		})
	}

	_, err := Lookup("no-such-charset")
	require.ErrorContains(t, err, "unknown encoding")
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{"empty", nil, "UTF-8"},
		{"ascii", []byte("k = v\n"), "UTF-8"},
		{"utf-8", []byte("name = héllo\n"), "UTF-8"},
		{"truncated utf-8", []byte("k = h\xc3"), "UTF-8"},
		{"bom", append([]byte{0xEF, 0xBB, 0xBF}, "k=v"...), "UTF-8"},
		{"utf-16le bom", []byte{0xFF, 0xFE, 'k', 0}, "UTF-16LE"},
		{"utf-16be bom", []byte{0xFE, 0xFF, 0, 'k'}, "UTF-16BE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, err := Detect(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, label)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	const text = "[café]\nnaïve = très bien\n"

	latin1, err := FromUTF8([]byte(text), charmap.ISO8859_1)
	require.NoError(t, err)
	require.NotEqual(t, text, string(latin1))

	back, err := ToUTF8(latin1, charmap.ISO8859_1)
	require.NoError(t, err)
	require.Equal(t, text, string(back))

	utf16, err := FromUTF8([]byte(text), unicode.UTF16(unicode.LittleEndian, unicode.UseBOM))
	require.NoError(t, err)
	detected, err := DetectToUTF8(utf16)
	require.NoError(t, err)
	require.Equal(t, text, string(detected))

	same, err := ToUTF8([]byte(text), nil)
	require.NoError(t, err)
	require.Equal(t, text, string(same))
}
