// Package errs provides standardized error types for the sales application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package distinguishes the error kinds callers react to:
//   - ValueIsInvalidError, ValueIsRequiredError, ValueIsOutOfRangeError: malformed input
//   - PolicyViolationError: a business rule or order transition rejected the request
//   - ObjectNotFoundError: an order or product does not exist
//   - AccessDeniedError: the session is not allowed to perform the operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrPolicyViolation)
//   - A struct type with fields for error details
//   - Constructor functions
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
package errs
