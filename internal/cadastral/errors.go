package cadastral

import (
	"fmt"
)

// ErrFormat indicates a reference or payload with the wrong shape:
// wrong length, characters outside the checksum table, or non-numeric fields.
type ErrFormat struct {
	Input  string
	Reason string
}

func (e *ErrFormat) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("invalid cadastral reference: %s", e.Reason)
	}
	return fmt.Sprintf("invalid cadastral reference %q: %s", e.Input, e.Reason)
}

// ErrUnsupportedDomain indicates an urban reference (digit in the section position).
// Only rural references are supported.
type ErrUnsupportedDomain struct {
	Reference string
}

func (e *ErrUnsupportedDomain) Error() string {
	return fmt.Sprintf("cadastral reference %q is %s: urban references unsupported", e.Reference, KindUrban)
}

// ErrInvalidChecksum indicates the control characters do not match the payload.
type ErrInvalidChecksum struct {
	Reference string
	Expected  string
	Actual    string
}

func (e *ErrInvalidChecksum) Error() string {
	return fmt.Sprintf("cadastral reference %q is not valid: expected control characters %s, got %s",
		e.Reference, e.Expected, e.Actual)
}
