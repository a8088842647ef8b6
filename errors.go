package main

import (
	"errors"
	"fmt"
)

// We define a custom error type so that we can map failures to distinct exit codes
type cliError struct {
	errorCode int    // identifies the kind of failure; also the process exit code
	details   string // the message shown to the user
	err       error  // the underlying golang error, if any
}

// Implement the golang Error interface
func (e *cliError) Error() string {
	return fmt.Sprintf("%d - %s", e.errorCode, e.details)
}

func (e *cliError) Unwrap() error {
	return e.err
}

func newError(errorCode int, details string) *cliError {
	return &cliError{
		errorCode: errorCode,
		details:   details,
	}
}

func wrapError(errorCode int, err error) *cliError {
	return &cliError{
		errorCode: errorCode,
		details:   err.Error(),
		err:       err,
	}
}

// exitCode returns the exit code for err: its error code when it is a cliError, 1 otherwise.
func exitCode(err error) int {
	var cliErr *cliError
	if errors.As(err, &cliErr) && cliErr.errorCode > 0 && cliErr.errorCode < 256 {
		return cliErr.errorCode
	}
	return 1
}
