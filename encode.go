package ini

import (
	"bytes"
	"fmt"
	"io"

	"github.com/KimNorgaard/go-ini/ast"
	"github.com/KimNorgaard/go-ini/errors"
	"github.com/KimNorgaard/go-ini/internal/mapper"
)

// Encoder writes INI documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes doc to the stream.
//
// Each section is written as its pre-comments, the header and its
// properties. Values are quoted when the property is marked as quoted or
// when the value could not be read back otherwise; the property itself is
// never changed.
func (e *Encoder) Encode(doc *ast.Document) error {
	if e.w == nil {
		return fmt.Errorf("ini: Encode: %w", errors.ErrNilWriter)
	}
	if doc == nil {
		return fmt.Errorf("ini: Encode: %w", errors.ErrNilDocument)
	}
	o, err := newOptions(doc.Config, e.opts)
	if err != nil {
		return err
	}
	return o.format(e.w, doc)
}

// ReflectFrom builds a Document from the struct pointed to by v, following
// the rules of MapTo in reverse. Zero values of fields tagged omitempty are
// left out.
func ReflectFrom(v any, opts ...Option) (*ast.Document, error) {
	o, err := newOptions(ast.Config{}, opts)
	if err != nil {
		return nil, err
	}
	doc := ast.NewDocument(o.cfg)
	if err := mapper.Reflect(v, doc); err != nil {
		return nil, fmt.Errorf("ini: %w", err)
	}
	return doc, nil
}

// MarshalStruct returns the INI encoding of the struct v.
func MarshalStruct(v any, opts ...Option) ([]byte, error) {
	doc, err := ReflectFrom(v, opts...)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
