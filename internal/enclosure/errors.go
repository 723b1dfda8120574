package enclosure

import (
	"fmt"
)

// ErrNoData indicates there was nothing to aggregate.
type ErrNoData struct {
	Reason string
}

func (e *ErrNoData) Error() string {
	return fmt.Sprintf("no data: %s", e.Reason)
}

// ErrInvalidFeature indicates a registry feature that cannot be decoded.
type ErrInvalidFeature struct {
	Index  int
	Reason string
}

func (e *ErrInvalidFeature) Error() string {
	return fmt.Sprintf("invalid enclosure feature %d: %s", e.Index, e.Reason)
}
