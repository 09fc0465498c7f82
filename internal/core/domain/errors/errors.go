package errors

import "fmt"

// InvalidStateError reports an entity that breaks one of its invariants,
// usually right after it has been loaded from storage.
type InvalidStateError struct {
	Entity string
	ID     int64
	Reason string
}

func NewInvalidStateError(entity string, id int64, reason string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, ID: id, Reason: reason}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s %d is in invalid state: %s", e.Entity, e.ID, e.Reason)
}

// NilArgumentError is what constructors panic with when a required
// dependency is missing.
type NilArgumentError struct {
	Argument string
}

func NewNilArgumentError(argument string) *NilArgumentError {
	return &NilArgumentError{Argument: argument}
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("argument '%s' must not be nil", e.Argument)
}
