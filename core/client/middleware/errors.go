package middleware

import "errors"

// ErrRetryExhausted is returned by the retry middleware when every attempt
// failed. It wraps the last provider error, so both are visible to errors.Is
// and errors.As.
var ErrRetryExhausted = errors.New("middleware: all retry attempts exhausted")
