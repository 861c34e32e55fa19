// Package errs provides standardized error types for the ordering platform.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the failure categories the order
// engine surfaces to callers:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     request validation failures
//   - ObjectNotFoundError: unknown order, offer, dish or restaurant
//   - InvalidTransitionError: an order status change outside the lifecycle table
//   - ConcurrencyConflictError: a compare-and-set status update lost a race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Nothing here is retried or treated as fatal: every error is scoped to the
// single request that produced it, and transport adapters map the sentinel
// categories onto response codes.
package errs
