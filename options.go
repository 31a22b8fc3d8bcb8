package ini

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/text/encoding"

	"github.com/KimNorgaard/go-ini/ast"
	"github.com/KimNorgaard/go-ini/errors"
	"github.com/KimNorgaard/go-ini/internal/charset"
)

// Option configures parsing, serialization and file I/O.
type Option func(*options) error

type options struct {
	cfg     ast.Config
	log     *zap.Logger
	newline string
	enc     encoding.Encoding
	detect  bool
}

func newOptions(base ast.Config, opts []Option) (*options, error) {
	if len(base.CommentPrefixChars) == 0 {
		base = ast.DefaultConfig()
	}
	o := &options{
		cfg: base.Clone(),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("ini: %w", err)
		}
	}
	if err := o.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("ini: %w", err)
	}
	return o, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errors.ErrInvalidOption}, args...)...)
}

// WithConfig replaces the whole configuration. Options given after it still
// apply on top.
func WithConfig(cfg ast.Config) Option {
	return func(o *options) error {
		o.cfg = cfg.Clone()
		return nil
	}
}

// CommentPrefixes sets the characters that start a comment. If the current
// default comment prefix is not among them, the first one becomes the
// default.
func CommentPrefixes(prefixes ...rune) Option {
	return func(o *options) error {
		if len(prefixes) == 0 {
			return invalid("at least one comment prefix is required")
		}
		o.cfg.CommentPrefixChars = slices.Clone(prefixes)
		if !o.cfg.IsCommentPrefix(o.cfg.DefaultCommentPrefixChar) {
			o.cfg.DefaultCommentPrefixChar = prefixes[0]
		}
		return nil
	}
}

// DefaultCommentPrefix sets the prefix used for comments that have none. It
// must be one of the comment prefixes.
func DefaultCommentPrefix(prefix rune) Option {
	return func(o *options) error {
		o.cfg.DefaultCommentPrefixChar = prefix
		return nil
	}
}

// DuplicateSections sets the policy for repeated section headers.
func DuplicateSections(p ast.DuplicateSectionPolicy) Option {
	return func(o *options) error {
		o.cfg.DuplicateSectionPolicy = p
		return nil
	}
}

// DuplicateKeys sets the policy for repeated keys within a section.
func DuplicateKeys(p ast.DuplicateKeyPolicy) Option {
	return func(o *options) error {
		o.cfg.DuplicateKeyPolicy = p
		return nil
	}
}

// CollectErrors makes parsing record diagnostics on the document instead of
// failing on the first one.
func CollectErrors() Option {
	return func(o *options) error {
		o.cfg.CollectParsingErrors = true
		return nil
	}
}

// MaxErrors caps the number of recorded diagnostics. Further diagnostics are
// dropped while parsing continues. Zero means unlimited.
func MaxErrors(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return invalid("max errors cannot be negative")
		}
		o.cfg.MaxParsingErrors = n
		return nil
	}
}

// Limits bounds the size of accepted input. A zero field means unlimited.
type Limits struct {
	MaxSections             int
	MaxPropertiesPerSection int
	MaxValueLength          int
	MaxLineLength           int
}

// WithLimits sets all security limits at once.
func WithLimits(l Limits) Option {
	return func(o *options) error {
		if l.MaxSections < 0 || l.MaxPropertiesPerSection < 0 || l.MaxValueLength < 0 || l.MaxLineLength < 0 {
			return invalid("limits cannot be negative")
		}
		o.cfg.MaxSections = l.MaxSections
		o.cfg.MaxPropertiesPerSection = l.MaxPropertiesPerSection
		o.cfg.MaxValueLength = l.MaxValueLength
		o.cfg.MaxLineLength = l.MaxLineLength
		return nil
	}
}

// MaxSections limits the number of named sections.
func MaxSections(n int) Option {
	return limit("max sections", n, func(c *ast.Config) *int { return &c.MaxSections })
}

// MaxPropertiesPerSection limits the number of properties in one section.
func MaxPropertiesPerSection(n int) Option {
	return limit("max properties per section", n, func(c *ast.Config) *int { return &c.MaxPropertiesPerSection })
}

// MaxValueLength limits the length of a value in bytes, after unquoting.
func MaxValueLength(n int) Option {
	return limit("max value length", n, func(c *ast.Config) *int { return &c.MaxValueLength })
}

// MaxLineLength limits the length of a line in bytes.
func MaxLineLength(n int) Option {
	return limit("max line length", n, func(c *ast.Config) *int { return &c.MaxLineLength })
}

func limit(name string, n int, field func(*ast.Config) *int) Option {
	return func(o *options) error {
		if n < 0 {
			return invalid("%s cannot be negative", name)
		}
		*field(&o.cfg) = n
		return nil
	}
}

// WithLogger sets the logger used for debug output. The default discards
// everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) error {
		if l == nil {
			return invalid("logger is nil")
		}
		o.log = l
		return nil
	}
}

// LineEnding sets the line ending written by the serializer: "\n" or "\r\n".
func LineEnding(nl string) Option {
	return func(o *options) error {
		if nl != "\n" && nl != "\r\n" {
			return invalid("unsupported line ending %q", nl)
		}
		o.newline = nl
		return nil
	}
}

// Encoding sets the text encoding of files and streams. The default is UTF-8.
func Encoding(enc encoding.Encoding) Option {
	return func(o *options) error {
		if enc == nil {
			return invalid("encoding is nil")
		}
		o.enc = enc
		o.detect = false
		return nil
	}
}

// EncodingLabel is like Encoding but takes a label such as "latin1".
func EncodingLabel(label string) Option {
	return func(o *options) error {
		enc, err := charset.Lookup(label)
		if err != nil {
			return invalid("%v", err)
		}
		o.enc = enc
		o.detect = false
		return nil
	}
}

// DetectEncoding guesses the encoding of input instead of assuming UTF-8.
// Output is still written in the encoding set by Encoding, if any.
func DetectEncoding() Option {
	return func(o *options) error {
		o.detect = true
		return nil
	}
}
