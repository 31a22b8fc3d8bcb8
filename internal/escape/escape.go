// Package escape holds the escape table shared by the value decoder and the
// serializer.
package escape

import "strings"

// decode maps the character after a backslash to the character it stands for.
var decode = [256]int16{}

// encode maps a character to its escape letter.
var encode = [256]byte{}

func init() {
	for i := range decode {
		decode[i] = -1
	}
	for _, e := range []struct{ letter, char byte }{
		{'0', 0},
		{'a', '\a'},
		{'b', '\b'},
		{'t', '\t'},
		{'r', '\r'},
		{'n', '\n'},
		{'\\', '\\'},
		{'"', '"'},
		{';', ';'},
		{'#', '#'},
	} {
		decode[e.letter] = int16(e.char)
		encode[e.char] = e.letter
	}
}

// Lookup returns the character that the escape letter c stands for.
func Lookup(c byte) (byte, bool) {
	v := decode[c]
	if v < 0 {
		return 0, false
	}
	return byte(v), true
}

// Letter returns the escape letter for c, if c is in the escape table.
func Letter(c byte) (byte, bool) {
	if l := encode[c]; l != 0 {
		return l, true
	}
	return 0, false
}

// Quote returns s in double quotes with every table character escaped.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if l, ok := Letter(s[i]); ok {
			b.WriteByte('\\')
			b.WriteByte(l)
			continue
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}

// HasControl reports whether s contains a control character from the table.
func HasControl(s string) bool {
	return strings.ContainsAny(s, "\x00\a\b\t\r\n")
}
