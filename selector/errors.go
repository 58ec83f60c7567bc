package selector

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable is returned when the introspection tool cannot be run
	// or exits with a non-success status
	ErrSourceUnavailable = errors.New("selector source unavailable")

	// ErrMalformedSourceOutput is returned when the tool output is not a
	// signature to selector mapping
	ErrMalformedSourceOutput = errors.New("malformed selector source output")

	// ErrInvalidSelector is returned for a value that does not decode to exactly 4 bytes
	ErrInvalidSelector = errors.New("invalid selector")
)

// InvalidSelectorError identifies the entry that failed to parse
type InvalidSelectorError struct {
	Index     int
	Signature string
	Value     string
	Err       error
}

func (e *InvalidSelectorError) Error() string {
	return fmt.Sprintf("entry %d (%s): %v", e.Index, e.Signature, e.Err)
}

func (e *InvalidSelectorError) Unwrap() error {
	return e.Err
}

func (e *InvalidSelectorError) Is(target error) bool {
	return target == ErrInvalidSelector
}
