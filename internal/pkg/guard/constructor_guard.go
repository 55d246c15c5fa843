// Package guard provides the constructor guard used by commands, queries and
// domain objects to reject zero values that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built through its designated constructor.
// Embed it in a struct, set it with NewConstructorGuard inside the constructor and
// call Validate from the struct's own Validate method:
//
//	type AssignStopsCommand struct {
//	    routeID int64
//	    stopIDs []int64
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c AssignStopsCommand) Validate() error {
//	    return c.guard.Validate(ErrAssignStopsCommandIsNotConstructed)
//	}
//
// The zero value reports "not constructed".
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns validationError,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
