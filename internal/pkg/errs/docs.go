// Package errs provides standardized error types for the point-of-service backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the order/table engine:
//   - ValueIsRequiredError: a required value is missing or empty (validation)
//   - ValueIsInvalidError: a value is malformed (validation or invalid argument)
//   - ValueIsOutOfRangeError: a number is outside its permitted range (invalid argument)
//   - ObjectNotFoundError: a referenced order, item, table or catalog entry does not exist
//   - ObjectAlreadyExistsError: a name or code collides with an existing one (conflict)
//   - StorageError: the persistence layer failed
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the error
package errs
