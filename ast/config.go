package ast

import (
	"fmt"
	"slices"
	"unicode"

	"github.com/KimNorgaard/go-ini/errors"
)

// DuplicateSectionPolicy decides what happens when a section header repeats
// the name of an earlier section.
type DuplicateSectionPolicy int

const (
	// SectionFirstWin ignores later sections with the same name. Their
	// properties are parsed but discarded.
	SectionFirstWin DuplicateSectionPolicy = iota
	// SectionLastWin replaces the earlier section's properties with the
	// later section's properties.
	SectionLastWin
	// SectionMerge appends the later section's properties to the earlier
	// section. Key collisions are decided by the DuplicateKeyPolicy.
	SectionMerge
	// SectionThrowError rejects the duplicate header.
	SectionThrowError
)

func (p DuplicateSectionPolicy) String() string {
	switch p {
	case SectionFirstWin:
		return "FirstWin"
	case SectionLastWin:
		return "LastWin"
	case SectionMerge:
		return "Merge"
	case SectionThrowError:
		return "ThrowError"
	}
	return fmt.Sprintf("DuplicateSectionPolicy(%d)", int(p))
}

// DuplicateKeyPolicy decides what happens when a key repeats within one
// section, including across merged sections.
type DuplicateKeyPolicy int

const (
	// KeyFirstWin keeps the first value and its comments.
	KeyFirstWin DuplicateKeyPolicy = iota
	// KeyLastWin replaces the value and comments with the later ones.
	KeyLastWin
	// KeyThrowError rejects the duplicate key.
	KeyThrowError
)

func (p DuplicateKeyPolicy) String() string {
	switch p {
	case KeyFirstWin:
		return "FirstWin"
	case KeyLastWin:
		return "LastWin"
	case KeyThrowError:
		return "ThrowError"
	}
	return fmt.Sprintf("DuplicateKeyPolicy(%d)", int(p))
}

// Config holds the settings that govern parsing and serialization of a
// Document. The zero value of every limit means unlimited.
type Config struct {
	CommentPrefixChars       []rune
	DefaultCommentPrefixChar rune

	DuplicateSectionPolicy DuplicateSectionPolicy
	DuplicateKeyPolicy     DuplicateKeyPolicy

	// CollectParsingErrors records diagnostics on the Document instead of
	// failing on the first one.
	CollectParsingErrors bool
	MaxParsingErrors     int

	MaxSections             int
	MaxPropertiesPerSection int
	MaxValueLength          int // bytes, after unquoting
	MaxLineLength           int // bytes, without the line ending
}

// DefaultConfig returns the default configuration: ';' and '#' comments,
// first-wins duplicate handling, fail-fast parsing and no limits.
func DefaultConfig() Config {
	return Config{
		CommentPrefixChars:       []rune{';', '#'},
		DefaultCommentPrefixChar: ';',
	}
}

// IsCommentPrefix reports whether r starts a comment.
func (c *Config) IsCommentPrefix(r rune) bool {
	return slices.Contains(c.CommentPrefixChars, r)
}

// Clone returns a copy of c that shares no memory with it.
func (c Config) Clone() Config {
	c.CommentPrefixChars = slices.Clone(c.CommentPrefixChars)
	return c
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.CommentPrefixChars) == 0 {
		return fmt.Errorf("%w: at least one comment prefix is required", errors.ErrInvalidOption)
	}
	for _, r := range c.CommentPrefixChars {
		if !validPrefix(r) {
			return fmt.Errorf("%w: %q cannot be used as a comment prefix", errors.ErrInvalidOption, r)
		}
	}
	if !c.IsCommentPrefix(c.DefaultCommentPrefixChar) {
		return fmt.Errorf("%w: default comment prefix %q is not one of the comment prefixes", errors.ErrInvalidOption, c.DefaultCommentPrefixChar)
	}
	if c.DuplicateSectionPolicy < SectionFirstWin || c.DuplicateSectionPolicy > SectionThrowError {
		return fmt.Errorf("%w: unknown duplicate section policy %d", errors.ErrInvalidOption, int(c.DuplicateSectionPolicy))
	}
	if c.DuplicateKeyPolicy < KeyFirstWin || c.DuplicateKeyPolicy > KeyThrowError {
		return fmt.Errorf("%w: unknown duplicate key policy %d", errors.ErrInvalidOption, int(c.DuplicateKeyPolicy))
	}
	for _, l := range []struct {
		name string
		v    int
	}{
		{"max parsing errors", c.MaxParsingErrors},
		{"max sections", c.MaxSections},
		{"max properties per section", c.MaxPropertiesPerSection},
		{"max value length", c.MaxValueLength},
		{"max line length", c.MaxLineLength},
	} {
		if l.v < 0 {
			return fmt.Errorf("%w: %s cannot be negative", errors.ErrInvalidOption, l.name)
		}
	}
	return nil
}

func validPrefix(r rune) bool {
	switch r {
	case '=', '[', ']', '"', '\\', '{', '}', ',', 0:
		return false
	}
	return !unicode.IsSpace(r) && !unicode.IsControl(r) && r != unicode.ReplacementChar
}
