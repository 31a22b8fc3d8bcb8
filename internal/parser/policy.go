package parser

import (
	"fmt"

	"github.com/KimNorgaard/go-ini/ast"
)

// resolution is how a duplicate section or key is applied to the document.
type resolution int

const (
	keepExisting resolution = iota
	replaceExisting
	mergeIntoExisting
)

func (r resolution) String() string {
	switch r {
	case keepExisting:
		return "keep"
	case replaceExisting:
		return "replace"
	case mergeIntoExisting:
		return "merge"
	}
	return fmt.Sprintf("resolution(%d)", int(r))
}

// resolveSection decides what a repeated section header does. When the
// policy forbids duplicates it also returns the reason; the resolution is
// then the fallback applied if the violation is only recorded.
func resolveSection(policy ast.DuplicateSectionPolicy, name string) (resolution, string) {
	switch policy {
	case ast.SectionLastWin:
		return replaceExisting, ""
	case ast.SectionMerge:
		return mergeIntoExisting, ""
	case ast.SectionThrowError:
		return keepExisting, fmt.Sprintf("duplicate section %q", name)
	}
	return keepExisting, ""
}

// resolveKey decides what a repeated key does, with the same contract as
// resolveSection.
func resolveKey(policy ast.DuplicateKeyPolicy, section, key string) (resolution, string) {
	switch policy {
	case ast.KeyLastWin:
		return replaceExisting, ""
	case ast.KeyThrowError:
		if section == "" {
			return keepExisting, fmt.Sprintf("duplicate key %q in the default section", key)
		}
		return keepExisting, fmt.Sprintf("duplicate key %q in section %q", key, section)
	}
	return keepExisting, ""
}
