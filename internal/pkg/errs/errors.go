package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrPersistence        = errors.New("persistence failure")
	ErrPersistenceTimeout = errors.New("persistence lock timeout")
)

// ObjectNotFoundError reports a lookup by identifier that matched nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %v (cause: %v)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s %v", ErrObjectNotFound, e.ParamName, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that is present but malformed.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsOutOfRange, e.ParamName, sanitize(e.Value), sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidTransitionError reports a state machine move that the current status forbids.
type InvalidTransitionError struct {
	Entity string
	From   string
	Action string
}

func NewInvalidTransitionError(entity, from, action string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, Action: action}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s %s in status %s", ErrInvalidTransition, e.Action, e.Entity, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// PersistenceError wraps a storage failure that aborted an operation.
// Nothing was committed when it is returned; retrying the whole operation is safe.
type PersistenceError struct {
	Operation string
	Timeout   bool
	Cause     error
}

func NewPersistenceError(operation string, cause error) *PersistenceError {
	return &PersistenceError{Operation: operation, Cause: cause}
}

func NewPersistenceTimeoutError(operation string, cause error) *PersistenceError {
	return &PersistenceError{Operation: operation, Timeout: true, Cause: cause}
}

func (e *PersistenceError) Error() string {
	sentinel := ErrPersistence
	if e.Timeout {
		sentinel = ErrPersistenceTimeout
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", sentinel, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", sentinel, e.Operation)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *PersistenceError) Unwrap() []error {
	sentinels := []error{ErrPersistence}
	if e.Timeout {
		sentinels = append(sentinels, ErrPersistenceTimeout)
	}
	if e.Cause != nil {
		sentinels = append(sentinels, e.Cause)
	}
	return sentinels
}

// IsValidation reports whether err belongs to the caller-input family:
// required, invalid or out-of-range values.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange)
}

func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
