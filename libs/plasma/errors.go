package plasma

import (
	"errors"
	"fmt"
)

var (
	// ErrComposition indicates element percentages summing to more than 100.
	ErrComposition = errors.New("plasma: composition error")
	// ErrInvalidParameter indicates a malformed numeric range or mismatched lengths.
	ErrInvalidParameter = errors.New("plasma: invalid parameter")
)

// ParamError reports which field violated a constraint.
type ParamError struct {
	Field  string
	Value  any
	Reason string
	Err    error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%v: %s=%v: %s", e.Err, e.Field, e.Value, e.Reason)
}

func (e *ParamError) Unwrap() error { return e.Err }

func invalid(field string, value any, reason string) error {
	return &ParamError{Field: field, Value: value, Reason: reason, Err: ErrInvalidParameter}
}
