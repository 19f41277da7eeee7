// Package errs provides standardized error types for the dispatch service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// The sentinels are the contract between the domain and the HTTP boundary:
// handlers raise typed errors, and the boundary maps each sentinel to exactly
// one status code (ErrUnauthenticated → 401, ErrPermissionDenied → 403,
// ErrValueIsInvalid/Required/OutOfRange → 400, ErrObjectNotFound → 404,
// ErrConflict → 409, anything else → 500).
package errs
