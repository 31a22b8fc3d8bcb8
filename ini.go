package ini

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/KimNorgaard/go-ini/ast"
	"github.com/KimNorgaard/go-ini/errors"
	"github.com/KimNorgaard/go-ini/internal/charset"
	"github.com/KimNorgaard/go-ini/internal/formatter"
	"github.com/KimNorgaard/go-ini/internal/lexer"
	"github.com/KimNorgaard/go-ini/internal/parser"
)

// NewDocument returns an empty document with the default configuration.
func NewDocument() *ast.Document {
	return ast.NewDocument(ast.DefaultConfig())
}

// Parse parses INI data into a Document.
//
// By default the first problem in the input is returned as a *ParseError and
// no document is returned. With CollectErrors, problems are recorded in
// Document.ParsingErrors and the offending lines are skipped; Parse then only
// fails for invalid options.
func Parse(data []byte, opts ...Option) (*ast.Document, error) {
	o, err := newOptions(ast.Config{}, opts)
	if err != nil {
		return nil, err
	}
	return o.parse(bytes.NewReader(data))
}

// ParseReader is like Parse but reads from r.
func ParseReader(r io.Reader, opts ...Option) (*ast.Document, error) {
	return NewDecoder(r, opts...).Decode()
}

// ParseContext is like ParseReader but gives up if ctx is done before
// parsing starts. A parse that has started runs to completion.
func ParseContext(ctx context.Context, r io.Reader, opts ...Option) (*ast.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ParseReader(r, opts...)
}

// Marshal returns the INI encoding of doc. The document's own configuration
// decides which characters are comment prefixes; opts may override it.
func Marshal(doc *ast.Document, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *options) parse(r io.Reader) (*ast.Document, error) {
	if r == nil {
		return nil, fmt.Errorf("ini: %w", errors.ErrNilReader)
	}
	if o.enc != nil || o.detect {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("ini: %w", err)
		}
		if o.detect {
			data, err = charset.DetectToUTF8(data)
		} else {
			data, err = charset.ToUTF8(data, o.enc)
		}
		if err != nil {
			return nil, fmt.Errorf("ini: %w", err)
		}
		r = bytes.NewReader(data)
	}

	l := lexer.New(r, o.cfg.MaxLineLength)
	p := parser.New(l, o.cfg, o.log)
	doc, err := p.Parse()
	if err != nil {
		if _, ok := err.(*errors.ParseError); ok {
			return nil, err
		}
		return nil, fmt.Errorf("ini: %w", err)
	}
	return doc, nil
}

func (o *options) format(w io.Writer, doc *ast.Document) error {
	if o.enc == nil {
		return formatter.New(w, o.cfg, o.newline).Format(doc)
	}
	var buf bytes.Buffer
	if err := formatter.New(&buf, o.cfg, o.newline).Format(doc); err != nil {
		return err
	}
	out, err := charset.FromUTF8(buf.Bytes(), o.enc)
	if err != nil {
		return fmt.Errorf("ini: %w", err)
	}
	_, err = w.Write(out)
	return err
}
