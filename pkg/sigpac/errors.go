package sigpac

import (
	"fmt"

	"github.com/beetlebugorg/sigpac/internal/cadastral"
	"github.com/beetlebugorg/sigpac/internal/community"
	"github.com/beetlebugorg/sigpac/internal/enclosure"
)

// Error types returned by this package. Match them with errors.As.
type (
	// ErrFormat indicates a reference with the wrong length, characters
	// outside the checksum table, or non-numeric fields.
	ErrFormat = cadastral.ErrFormat
	// ErrUnsupportedDomain indicates an urban reference.
	ErrUnsupportedDomain = cadastral.ErrUnsupportedDomain
	// ErrInvalidChecksum indicates control characters that do not match
	// the payload. Expected and Actual hold both codes.
	ErrInvalidChecksum = cadastral.ErrInvalidChecksum
	// ErrUnknownRegion indicates a province outside every community.
	ErrUnknownRegion = community.ErrUnknownRegion
	// ErrNoData indicates an aggregation with nothing to aggregate.
	ErrNoData = enclosure.ErrNoData
	// ErrInvalidFeature indicates a registry feature that cannot be decoded.
	ErrInvalidFeature = enclosure.ErrInvalidFeature
)

// ErrInvalidLocation indicates a Location missing a field its layer needs.
type ErrInvalidLocation struct {
	Field  string
	Reason string
}

func (e *ErrInvalidLocation) Error() string {
	return fmt.Sprintf("invalid location: %s %s", e.Field, e.Reason)
}
