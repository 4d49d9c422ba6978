package domain

import (
	"errors"
	"fmt"
)

// Common domain errors.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNoCurrentItem   = errors.New("current index invalid")
	ErrSelectionNoop   = errors.New("random selection is a no-op")
	ErrInvalidWeekday  = errors.New("invalid weekday")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrInvalidView     = errors.New("invalid view")
)

// indexError wraps ErrIndexOutOfRange with the offending index.
func indexError(idx, length int) error {
	return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, idx, length)
}
