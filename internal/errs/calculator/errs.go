package errs

import "errors"

// Error texts are part of the HTTP contract, they appear verbatim in the
// "error" field of 400 responses.
var (
	ErrInvalidOperation = errors.New("Invalid operation")
	ErrDivisionByZero   = errors.New("Division by zero not allowed")
)
