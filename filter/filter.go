// Package filter selects sections and properties of a document by name
// pattern.
//
// A pattern is either "glob:<expr>", "re:<expr>" or a bare glob. Globs use
// '.' as separator, so "db.*" matches "db.primary" but not "db.eu.west"
// while "db.**" matches both. All matching is case-insensitive, like INI
// names themselves.
package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/KimNorgaard/go-ini/ast"
)

const cacheSize = 1000

// Matcher reports whether a name matches a compiled pattern.
type Matcher interface {
	Match(name string) bool
	String() string
}

var cache *lru.Cache[string, any]

func init() {
	var err error
	cache, err = lru.New[string, any](cacheSize)
	if err != nil {
		panic(fmt.Sprintf("filter: failed to create pattern cache: %v", err))
	}
}

type globMatcher struct {
	g       glob.Glob
	pattern string
}

func (m *globMatcher) Match(name string) bool { return m.g.Match(strings.ToLower(name)) }
func (m *globMatcher) String() string         { return m.pattern }

type regexpMatcher struct {
	re      *regexp.Regexp
	pattern string
}

func (m *regexpMatcher) Match(name string) bool { return m.re.MatchString(name) }
func (m *regexpMatcher) String() string         { return m.pattern }

// Compile parses pattern. Compiled patterns and compile errors are cached.
func Compile(pattern string) (Matcher, error) {
	if v, ok := cache.Get(pattern); ok {
		switch v := v.(type) {
		case Matcher:
			return v, nil
		case error:
			return nil, v
		}
		panic("impossible")
	}

	m, err := compile(pattern)
	if err != nil {
		cache.Add(pattern, err)
		return nil, err
	}
	cache.Add(pattern, m)
	return m, nil
}

func compile(pattern string) (Matcher, error) {
	if expr, ok := strings.CutPrefix(pattern, "re:"); ok {
		re, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			return nil, fmt.Errorf("filter: invalid pattern %q: %w", pattern, err)
		}
		return &regexpMatcher{re: re, pattern: pattern}, nil
	}

	expr := strings.TrimPrefix(pattern, "glob:")
	g, err := glob.Compile(strings.ToLower(expr), '.')
	if err != nil {
		return nil, fmt.Errorf("filter: invalid pattern %q: %w", pattern, err)
	}
	return &globMatcher{g: g, pattern: pattern}, nil
}

// Match is a property found by Find.
type Match struct {
	Section  *ast.Section
	Property *ast.Property
}

// Sections returns the named sections of doc whose names match pattern, in
// document order.
func Sections(doc *ast.Document, pattern string) ([]*ast.Section, error) {
	m, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	var out []*ast.Section
	for _, s := range doc.Sections.All() {
		if m.Match(s.Name()) {
			out = append(out, s)
		}
	}
	return out, nil
}

// Properties returns the properties of sec whose names match pattern.
func Properties(sec *ast.Section, pattern string) ([]*ast.Property, error) {
	m, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	var out []*ast.Property
	for _, p := range sec.Properties.All() {
		if m.Match(p.Name()) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Find returns the properties whose section matches sectionPattern and whose
// name matches keyPattern. The default section takes part under the empty
// name, so it is only selected by patterns that match "".
func Find(doc *ast.Document, sectionPattern, keyPattern string) ([]Match, error) {
	sm, err := Compile(sectionPattern)
	if err != nil {
		return nil, err
	}
	km, err := Compile(keyPattern)
	if err != nil {
		return nil, err
	}

	var out []Match
	collect := func(s *ast.Section) {
		if !sm.Match(s.Name()) {
			return
		}
		for _, p := range s.Properties.All() {
			if km.Match(p.Name()) {
				out = append(out, Match{Section: s, Property: p})
			}
		}
	}
	if doc.Default != nil {
		collect(doc.Default)
	}
	for _, s := range doc.Sections.All() {
		collect(s)
	}
	return out, nil
}
