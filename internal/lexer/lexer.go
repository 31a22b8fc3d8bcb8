package lexer

import (
	"bufio"
	"bytes"
	"io"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Lexer splits INI source into physical lines. "\n", "\r\n" and a lone "\r"
// all end a line.
type Lexer struct {
	r      *bufio.Reader
	buf    bytes.Buffer
	line   int
	maxLen int
	start  bool
}

// Physical is one line of input.
type Physical struct {
	Number int
	Text   string // truncated to the length limit, if any
	Length int    // full length in bytes, without the line ending
}

// Truncated reports whether Text holds only a prefix of the line.
func (p Physical) Truncated() bool { return len(p.Text) < p.Length }

// New creates and returns a new Lexer. When maxLen is positive, at most
// maxLen+1 bytes of a line are kept in memory; the rest is counted and
// dropped so oversized lines can be rejected without buffering them.
func New(r io.Reader, maxLen int) *Lexer {
	return &Lexer{
		r:      bufio.NewReader(r),
		maxLen: maxLen,
		start:  true,
	}
}

// Next returns the next line, or io.EOF after the last one.
func (l *Lexer) Next() (Physical, error) {
	if l.start {
		l.start = false
		if b, _ := l.r.Peek(len(utf8BOM)); bytes.Equal(b, utf8BOM) {
			_, _ = l.r.Discard(len(utf8BOM))
		}
	}

	l.buf.Reset()
	length := 0
	for {
		c, err := l.r.ReadByte()
		if err == io.EOF {
			if length == 0 {
				return Physical{}, io.EOF
			}
			break
		}
		if err != nil {
			return Physical{}, err
		}
		if c == '\n' {
			break
		}
		if c == '\r' {
			if next, err := l.r.Peek(1); err == nil && next[0] == '\n' {
				_, _ = l.r.Discard(1)
			}
			break
		}
		length++
		if l.maxLen <= 0 || l.buf.Len() <= l.maxLen {
			l.buf.WriteByte(c)
		}
	}
	l.line++
	return Physical{Number: l.line, Text: l.buf.String(), Length: length}, nil
}
