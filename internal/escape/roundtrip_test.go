package escape_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-ini/internal/escape"
	"github.com/KimNorgaard/go-ini/internal/lexer"
)

// tableChars are the characters with an escape letter.
var tableChars = []byte{0, '\a', '\b', '\t', '\r', '\n', '\\', '"', ';', '#'}

// TestQuoteDecodeValue checks that quoting and decoding give back the
// original value for every combination of escape-table characters.
func TestQuoteDecodeValue(t *testing.T) {
	isPrefix := func(r rune) bool { return r == ';' || r == '#' }

	for mask := 0; mask < 1<<len(tableChars); mask++ {
		v := []byte("x")
		for i, c := range tableChars {
			if mask&(1<<i) != 0 {
				v = append(v, c, 'y')
			}
		}
		value := string(v)

		got, reason := lexer.DecodeValue(" "+escape.Quote(value)+" ; c", isPrefix)
		require.Empty(t, reason, fmt.Sprintf("subset %#x", mask))
		require.True(t, got.Quoted)
		require.Equal(t, value, got.Text, fmt.Sprintf("subset %#x", mask))
		require.True(t, got.HasComment)
	}
}
