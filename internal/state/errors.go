package state

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedType is wrapped by every ModelError.
var ErrUnrecognizedType = errors.New("type not recognised")

// ModelError reports an element type, tool, region or action that the model
// does not know. Reaching one means the model and the engine disagree; it is
// never caused by ordinary user input.
type ModelError struct {
	Op    string
	Value any
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Value, ErrUnrecognizedType)
}

func (e *ModelError) Unwrap() error { return ErrUnrecognizedType }

// Unrecognized builds the ModelError raised by exhaustive dispatch sites.
func Unrecognized(op string, value any) *ModelError {
	return &ModelError{Op: op, Value: value}
}
