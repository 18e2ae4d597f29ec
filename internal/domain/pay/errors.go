package pay

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTime     = errors.New("invalid time, expected HH:MM")
	ErrUnknownCategory = errors.New("manual category not present in rate table")
	ErrUnknownMode     = errors.New("pay mode must be default or schads")
)

// MissingRateError reports an incomplete or malformed rate table. The engine
// fails fast rather than substituting a literal.
type MissingRateError struct {
	Key      string
	Negative bool
}

func (e *MissingRateError) Error() string {
	if e.Negative {
		return fmt.Sprintf("rate %q must not be negative", e.Key)
	}
	return fmt.Sprintf("rate %q is required", e.Key)
}
