package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func isPrefix(r rune) bool { return r == ';' || r == '#' }

func TestIsKeySpecial(t *testing.T) {
	tests := []struct {
		input    rune
		expected bool
	}{
		{'=', true},
		{'[', true},
		{'\\', true},
		{';', true},
		{'#', true},
		{']', false},
		{'a', false},
		{'"', false},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			require.Equal(t, tt.expected, IsKeySpecial(tt.input, isPrefix))
		})
	}
}

func TestIsNameSpecial(t *testing.T) {
	tests := []struct {
		input    rune
		expected bool
	}{
		{']', true},
		{'\\', true},
		{';', true},
		{'#', true},
		{'[', false},
		{'=', false},
		{'x', false},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			require.Equal(t, tt.expected, IsNameSpecial(tt.input, isPrefix))
		})
	}
}
