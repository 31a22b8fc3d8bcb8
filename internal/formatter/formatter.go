package formatter

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KimNorgaard/go-ini/ast"
	"github.com/KimNorgaard/go-ini/internal/escape"
	"github.com/KimNorgaard/go-ini/internal/token"
)

const defaultNewline = "\n"

// Formatter writes an INI document to an output stream.
type Formatter struct {
	w       io.Writer
	cfg     ast.Config
	newline string
}

// New returns a new formatter that writes to w using the comment prefixes of
// cfg. An empty newline selects "\n".
func New(w io.Writer, cfg ast.Config, newline string) *Formatter {
	if newline == "" {
		newline = defaultNewline
	}
	if len(cfg.CommentPrefixChars) == 0 {
		cfg = ast.DefaultConfig()
	}
	return &Formatter{w: w, cfg: cfg, newline: newline}
}

// Format writes doc. The default section comes first without a header and is
// separated from the first named section by one blank line. The document is
// not modified.
func (f *Formatter) Format(doc *ast.Document) error {
	if doc == nil {
		return fmt.Errorf("ini: cannot format a nil document")
	}

	wroteDefault := false
	if doc.Default != nil {
		for _, p := range doc.Default.Properties.All() {
			if err := f.writeProperty(p); err != nil {
				return err
			}
			wroteDefault = true
		}
	}

	for i, s := range doc.Sections.All() {
		if i == 0 && wroteDefault {
			if err := f.write(f.newline); err != nil {
				return err
			}
		}
		if err := f.writeSection(s); err != nil {
			return err
		}
	}

	return f.writeComments(doc.TrailingComments)
}

func (f *Formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *Formatter) writeComments(cs []*ast.Comment) error {
	for _, c := range cs {
		if c == nil {
			continue
		}
		if err := f.write(f.comment(c) + f.newline); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) comment(c *ast.Comment) string {
	prefix := c.Prefix
	if prefix == 0 {
		prefix = f.cfg.DefaultCommentPrefixChar
	}
	return string(prefix) + c.Value
}

func (f *Formatter) inline(c *ast.Comment) string {
	if c == nil {
		return ""
	}
	return " " + f.comment(c)
}

func (f *Formatter) writeSection(s *ast.Section) error {
	if err := f.writeComments(s.PreComments); err != nil {
		return err
	}
	header := "[" + f.escapeName(s.Name(), token.IsNameSpecial) + "]" + f.inline(s.Comment)
	if err := f.write(header + f.newline); err != nil {
		return err
	}
	for _, p := range s.Properties.All() {
		if err := f.writeProperty(p); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) writeProperty(p *ast.Property) error {
	if err := f.writeComments(p.PreComments); err != nil {
		return err
	}
	line := f.escapeName(p.Name(), token.IsKeySpecial) + " = " + f.Value(p) + f.inline(p.Comment)
	return f.write(line + f.newline)
}

// Value returns the text written for the value of p. It is quoted when p is
// marked as quoted or when the value would not survive being read back
// unquoted. p.IsQuoted is left untouched either way.
func (f *Formatter) Value(p *ast.Property) string {
	if p.IsQuoted || f.NeedsQuotes(p.Value) {
		return escape.Quote(p.Value)
	}
	return p.Value
}

// NeedsQuotes reports whether v is ambiguous when written unquoted: it is
// empty, starts with a quote, has surrounding whitespace, or contains a
// comment prefix or a control character from the escape table.
func (f *Formatter) NeedsQuotes(v string) bool {
	if v == "" || v[0] == '"' || escape.HasControl(v) {
		return true
	}
	first, _ := utf8.DecodeRuneInString(v)
	last, _ := utf8.DecodeLastRuneInString(v)
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		return true
	}
	return strings.ContainsFunc(v, f.cfg.IsCommentPrefix)
}

func (f *Formatter) escapeName(name string, special func(rune, func(rune) bool) bool) string {
	var b strings.Builder
	for i := 0; i < len(name); {
		r, size := utf8.DecodeRuneInString(name[i:])
		if special(r, f.cfg.IsCommentPrefix) {
			b.WriteByte('\\')
		}
		b.WriteString(name[i : i+size])
		i += size
	}
	return b.String()
}
