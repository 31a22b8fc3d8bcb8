package token

// Kind is the classification of a line.
type Kind string

const (
	BLANK     Kind = "BLANK"
	COMMENT   Kind = "COMMENT"   // ; a comment
	SECTION   Kind = "SECTION"   // [name]
	PROPERTY  Kind = "PROPERTY"  // key = value
	MALFORMED Kind = "MALFORMED" // anything else
)

// Line is one classified physical line.
type Line struct {
	Kind   Kind
	Number int    // 1-based
	Raw    string // without the line ending

	// Name is the section name (SECTION) or the key (PROPERTY), unescaped
	// and trimmed.
	Name string
	// Value is the raw text after '=' (PROPERTY), inline comment included.
	Value string

	// Prefix and Text hold a comment: the whole line for COMMENT, the inline
	// comment of a SECTION when HasComment is set.
	Prefix     rune
	Text       string
	HasComment bool

	// Reason explains a MALFORMED line.
	Reason string
}

// Reasons reported for malformed lines.
const (
	ReasonMissingBracket = "missing closing bracket"
	ReasonEmptySection   = "section name is empty"
	ReasonHeaderTrailing = "unexpected content after section header"
	ReasonMissingEquals  = "missing equals sign"
	ReasonEmptyKey       = "key is empty"
	ReasonUnterminated   = "unterminated quoted value"
	ReasonQuotedTrailing = "quoted value followed by unexpected content"
)

// IsKeySpecial reports whether r is written with a backslash inside a key.
func IsKeySpecial(r rune, isPrefix func(rune) bool) bool {
	return r == '=' || r == '[' || r == '\\' || isPrefix(r)
}

// IsNameSpecial reports whether r is written with a backslash inside a
// section name.
func IsNameSpecial(r rune, isPrefix func(rune) bool) bool {
	return r == ']' || r == '\\' || isPrefix(r)
}
