package parser

import (
	"fmt"

	"github.com/KimNorgaard/go-ini/ast"
)

// guard checks entities against the configured limits. Each check returns
// the reason for a violation, or "" when the entity may be accepted. A zero
// limit disables its check.
type guard struct {
	maxLine       int
	maxValue      int
	maxSections   int
	maxProperties int
}

func newGuard(cfg *ast.Config) guard {
	return guard{
		maxLine:       cfg.MaxLineLength,
		maxValue:      cfg.MaxValueLength,
		maxSections:   cfg.MaxSections,
		maxProperties: cfg.MaxPropertiesPerSection,
	}
}

func (g guard) line(length int) string {
	if g.maxLine > 0 && length > g.maxLine {
		return fmt.Sprintf("line length %d exceeds maximum line length %d", length, g.maxLine)
	}
	return ""
}

func (g guard) value(length int) string {
	if g.maxValue > 0 && length > g.maxValue {
		return fmt.Sprintf("value length %d exceeds maximum value length %d", length, g.maxValue)
	}
	return ""
}

// sections is called with the number of sections already accepted.
func (g guard) sections(count int) string {
	if g.maxSections > 0 && count >= g.maxSections {
		return fmt.Sprintf("maximum sections (%d) exceeded", g.maxSections)
	}
	return ""
}

// properties is called with the number of properties already in the section.
func (g guard) properties(count int, section string) string {
	if g.maxProperties > 0 && count >= g.maxProperties {
		if section == "" {
			return fmt.Sprintf("maximum properties per section (%d) exceeded in the default section", g.maxProperties)
		}
		return fmt.Sprintf("maximum properties per section (%d) exceeded in section %q", g.maxProperties, section)
	}
	return ""
}
