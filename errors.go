package ini

import "github.com/KimNorgaard/go-ini/errors"

type (
	// ParseError is returned by Parse in fail-fast mode.
	ParseError = errors.ParseError
	// Diagnostic is a problem recorded while parsing in collect mode.
	Diagnostic = errors.Diagnostic
	// Diagnostics is a list of diagnostics usable as an error.
	Diagnostics = errors.Diagnostics
)

// Errors that can be matched with errors.Is.
var (
	ErrStructural    = errors.ErrStructural
	ErrPolicy        = errors.ErrPolicy
	ErrLimit         = errors.ErrLimit
	ErrInvalidOption = errors.ErrInvalidOption
	ErrNilReader     = errors.ErrNilReader
	ErrNilWriter     = errors.ErrNilWriter
	ErrNilDocument   = errors.ErrNilDocument
)
