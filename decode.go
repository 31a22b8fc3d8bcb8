package ini

import (
	"fmt"
	"io"

	"github.com/KimNorgaard/go-ini/ast"
	"github.com/KimNorgaard/go-ini/errors"
	"github.com/KimNorgaard/go-ini/internal/mapper"
)

// Decoder reads INI documents from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// The decoder may buffer data from r as necessary. It is the caller's
// responsibility to call Close on r if required.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the whole input and parses it into a Document. See Parse for
// the error behavior.
func (d *Decoder) Decode() (*ast.Document, error) {
	if d.r == nil {
		return nil, fmt.Errorf("ini: Decode: %w", errors.ErrNilReader)
	}
	o, err := newOptions(ast.Config{}, d.opts)
	if err != nil {
		return nil, err
	}
	return o.parse(d.r)
}

// DecodeInto parses the input and stores it in the struct pointed to by v.
// See MapTo for the mapping rules.
func (d *Decoder) DecodeInto(v any) error {
	doc, err := d.Decode()
	if err != nil {
		return err
	}
	return MapTo(doc, v)
}

// Unmarshal parses data and stores the result in the struct pointed to by v.
func Unmarshal(data []byte, v any, opts ...Option) error {
	doc, err := Parse(data, opts...)
	if err != nil {
		return err
	}
	return MapTo(doc, v)
}

// MapTo copies the values of doc into the struct pointed to by v.
//
// A struct field whose type is a struct, or a pointer to one, is filled from
// the section of the same name; a map[string]string field receives every key
// of its section. Other fields are read from the default section. Names are
// matched case-insensitively and may be set with an `ini:"name"` tag; `ini:"-"`
// skips a field. Keys without a matching field are ignored.
func MapTo(doc *ast.Document, v any) error {
	if doc == nil {
		return fmt.Errorf("ini: MapTo: %w", errors.ErrNilDocument)
	}
	if err := mapper.Map(doc, v); err != nil {
		return fmt.Errorf("ini: %w", err)
	}
	return nil
}
