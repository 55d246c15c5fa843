// Package errs provides the error taxonomy shared by the route-sequencing service.
//
// The package includes:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed caller
//     input. IsValidation groups them; the HTTP adapter answers 400.
//   - ObjectNotFoundError: a route, stop or zone that does not exist.
//   - InvalidTransitionError: a route or stop status change the state machine forbids.
//   - PersistenceError: a storage failure that rolled the operation back.
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired) for errors.Is
//   - A struct type with fields for error details, usable with errors.As
//   - Constructor functions with and without cause
//   - Error() for the message and Unwrap() back to the sentinel
package errs
