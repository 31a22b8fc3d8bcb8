package ast

import (
	"fmt"
	"slices"

	"github.com/KimNorgaard/go-ini/errors"
)

// Comment is a comment line or an inline comment.
type Comment struct {
	// Prefix is the comment character. A zero Prefix is written with the
	// document's default comment prefix.
	Prefix rune
	// Value is the text after the prefix, kept verbatim.
	Value string
}

// NewComment returns a comment with the given prefix and text.
func NewComment(prefix rune, value string) *Comment {
	return &Comment{Prefix: prefix, Value: value}
}

// Clone returns a copy of c. Clone of a nil comment is nil.
func (c *Comment) Clone() *Comment {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func (c *Comment) String() string {
	if c.Prefix == 0 {
		return c.Value
	}
	return string(c.Prefix) + c.Value
}

func cloneComments(cs []*Comment) []*Comment {
	if cs == nil {
		return nil
	}
	out := make([]*Comment, len(cs))
	for i, c := range cs {
		out[i] = c.Clone()
	}
	return out
}

// Property is a key/value pair.
type Property struct {
	name string

	Value string
	// IsQuoted records that the value was, or should be, written in double
	// quotes. The serializer quotes values that need it regardless of this
	// flag and never changes it.
	IsQuoted bool

	Comment     *Comment
	PreComments []*Comment
}

// NewProperty returns an unquoted property.
func NewProperty(name, value string) *Property {
	return &Property{name: name, Value: value}
}

// Name returns the property name with its original casing.
func (p *Property) Name() string { return p.name }

func (p *Property) key() string     { return p.name }
func (p *Property) setKey(k string) { p.name = k }

// Clone returns a deep copy of p.
func (p *Property) Clone() *Property {
	return &Property{
		name:        p.name,
		Value:       p.Value,
		IsQuoted:    p.IsQuoted,
		Comment:     p.Comment.Clone(),
		PreComments: cloneComments(p.PreComments),
	}
}

func (p *Property) String() string {
	return p.name + " = " + p.Value
}

// Section is a named group of properties. The default section of a Document
// has an empty name.
type Section struct {
	name string

	Properties PropertyList

	Comment     *Comment
	PreComments []*Comment
}

// NewSection returns an empty section.
func NewSection(name string) *Section {
	return &Section{name: name}
}

// Name returns the section name with its original casing.
func (s *Section) Name() string { return s.name }

func (s *Section) key() string     { return s.name }
func (s *Section) setKey(k string) { s.name = k }

// Property returns the named property, or nil.
func (s *Section) Property(name string) *Property {
	p, _ := s.Properties.Get(name)
	return p
}

// Value returns the value of the named property.
func (s *Section) Value(name string) (string, bool) {
	p, ok := s.Properties.Get(name)
	if !ok {
		return "", false
	}
	return p.Value, true
}

// Set sets the value of the named property, appending the property if it
// does not exist yet. The quoting flag of an existing property is kept.
func (s *Section) Set(name, value string) (*Property, error) {
	if p, ok := s.Properties.Get(name); ok {
		p.Value = value
		return p, nil
	}
	p := NewProperty(name, value)
	if err := s.Properties.Add(p); err != nil {
		return nil, err
	}
	return p, nil
}

// AddProperty appends p.
func (s *Section) AddProperty(p *Property) error { return s.Properties.Add(p) }

// InsertProperty places p at position i.
func (s *Section) InsertProperty(i int, p *Property) error { return s.Properties.Insert(i, p) }

// RemoveProperty deletes the named property and reports whether it existed.
func (s *Section) RemoveProperty(name string) bool {
	_, ok := s.Properties.Remove(name)
	return ok
}

// RemovePropertyAt deletes the property at position i.
func (s *Section) RemovePropertyAt(i int) (*Property, error) { return s.Properties.RemoveAt(i) }

// RenameProperty renames a property, keeping its position.
func (s *Section) RenameProperty(oldName, newName string) error {
	return s.Properties.Rename(oldName, newName)
}

// Clone returns a deep copy of s.
func (s *Section) Clone() *Section {
	return &Section{
		name:        s.name,
		Properties:  PropertyList{s.Properties.clone((*Property).Clone)},
		Comment:     s.Comment.Clone(),
		PreComments: cloneComments(s.PreComments),
	}
}

// Document is a parsed INI file.
type Document struct {
	Config Config

	// Default holds the properties that appear before the first section header.
	Default  *Section
	Sections SectionList

	// TrailingComments are the comments after the last section or property.
	TrailingComments []*Comment

	// ParsingErrors holds the diagnostics recorded in collect mode.
	ParsingErrors []errors.Diagnostic
}

// NewDocument returns an empty document using cfg.
func NewDocument(cfg Config) *Document {
	return &Document{
		Config:  cfg.Clone(),
		Default: NewSection(""),
	}
}

// Section returns the named section, or nil. The empty name returns the
// default section.
func (d *Document) Section(name string) *Section {
	if name == "" {
		return d.defaultSection()
	}
	s, _ := d.Sections.Get(name)
	return s
}

func (d *Document) defaultSection() *Section {
	if d.Default == nil {
		d.Default = NewSection("")
	}
	return d.Default
}

// Get returns the value of key in the named section.
func (d *Document) Get(section, key string) (string, bool) {
	s := d.Section(section)
	if s == nil {
		return "", false
	}
	return s.Value(key)
}

// Set sets key in the named section, creating the section and the property
// as needed.
func (d *Document) Set(section, key, value string) (*Property, error) {
	s := d.Section(section)
	if s == nil {
		s = NewSection(section)
		if err := d.Sections.Add(s); err != nil {
			return nil, err
		}
	}
	return s.Set(key, value)
}

// AddSection appends s.
func (d *Document) AddSection(s *Section) error { return d.Sections.Add(s) }

// InsertSection places s at position i.
func (d *Document) InsertSection(i int, s *Section) error { return d.Sections.Insert(i, s) }

// RemoveSection deletes the named section and reports whether it existed.
func (d *Document) RemoveSection(name string) bool {
	_, ok := d.Sections.Remove(name)
	return ok
}

// RemoveSectionAt deletes the section at position i.
func (d *Document) RemoveSectionAt(i int) (*Section, error) { return d.Sections.RemoveAt(i) }

// RenameSection renames a section, keeping its position.
func (d *Document) RenameSection(oldName, newName string) error {
	if err := d.Sections.Rename(oldName, newName); err != nil {
		return fmt.Errorf("rename section: %w", err)
	}
	return nil
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	return &Document{
		Config:           d.Config.Clone(),
		Default:          d.defaultSection().Clone(),
		Sections:         SectionList{d.Sections.clone((*Section).Clone)},
		TrailingComments: cloneComments(d.TrailingComments),
		ParsingErrors:    slices.Clone(d.ParsingErrors),
	}
}

// Restore replaces the content of d with a deep copy of snapshot. Pointers
// into d taken before the call no longer belong to it.
func (d *Document) Restore(snapshot *Document) {
	*d = *snapshot.Clone()
}
