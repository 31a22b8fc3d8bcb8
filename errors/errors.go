package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a Diagnostic.
type Kind int

const (
	// Structural covers malformed lines: missing brackets or equals signs,
	// empty names and broken quoting.
	Structural Kind = iota
	// Policy covers duplicate sections or keys rejected by a ThrowError policy.
	Policy
	// Limit covers violations of the configured security limits.
	Limit
)

func (k Kind) String() string {
	switch k {
	case Structural:
		return "structural"
	case Policy:
		return "policy"
	case Limit:
		return "limit"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinel errors. A *ParseError unwraps to the sentinel of its Kind.
var (
	ErrStructural = stderrors.New("malformed input")
	ErrPolicy     = stderrors.New("duplicate not allowed")
	ErrLimit      = stderrors.New("limit exceeded")

	ErrInvalidOption = stderrors.New("invalid option")
	ErrNilReader     = stderrors.New("nil reader")
	ErrNilWriter     = stderrors.New("nil writer")
	ErrNilDocument   = stderrors.New("nil document")
	ErrDuplicateName = stderrors.New("duplicate name")
	ErrOutOfRange    = stderrors.New("index out of range")
)

func (k Kind) sentinel() error {
	switch k {
	case Policy:
		return ErrPolicy
	case Limit:
		return ErrLimit
	}
	return ErrStructural
}

// Diagnostic is a single problem found while parsing.
type Diagnostic struct {
	Kind   Kind
	Line   int    // 1-based
	Raw    string // the offending line, without its line ending
	Reason string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Reason)
}

// ParseError is returned by a fail-fast parse. It carries the first
// diagnostic encountered.
type ParseError struct {
	Diagnostic
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ini: parsing error at line %d: %s", e.Line, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Kind.sentinel() }

// Diagnostics is a slice of Diagnostic that implements the error interface.
// This allows returning every problem found in collect mode at once.
type Diagnostics []Diagnostic

func (d Diagnostics) Error() string {
	switch len(d) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("ini: parsing error at line %d: %s", d[0].Line, d[0].Reason)
	}
	return fmt.Sprintf("ini: parsing error at line %d: %s (and %d more)", d[0].Line, d[0].Reason, len(d)-1)
}

// Err returns d as an error, or nil when d is empty.
func (d Diagnostics) Err() error {
	if len(d) == 0 {
		return nil
	}
	return d
}
