// Package apierror decodes the bodies of failed GitHub API responses into typed errors.
//
// Decoding a failure body never fails in turn: a body that matches neither of the shapes the API
// uses comes back as an *UnparseableError carrying the raw text.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ClientError is the error returned for any non-2xx API response.
type ClientError interface {
	error
	// Status returns the HTTP status code of the failed response.
	Status() int
}

// GenericError is a failure the API described with a message but no field-level detail.
type GenericError struct {
	StatusCode       int
	Message          string
	DocumentationUrl *string
}

func (e *GenericError) Error() string {
	return fmt.Sprintf("github: HTTP %d: %s", e.StatusCode, e.Message)
}

func (e *GenericError) Status() int {
	return e.StatusCode
}

// ValidationError is a failure with one or more field errors, usually a 422.
type ValidationError struct {
	StatusCode       int
	Message          string
	DocumentationUrl *string
	FieldErrors      []FieldError
}

func (e *ValidationError) Error() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "github: HTTP %d: %s", e.StatusCode, e.Message)
	for _, fieldError := range e.FieldErrors {
		fmt.Fprintf(&builder, "; %s", fieldError)
	}
	return builder.String()
}

func (e *ValidationError) Status() int {
	return e.StatusCode
}

// UnparseableError is a failure whose body matched no known error shape.
type UnparseableError struct {
	StatusCode int
	RawBody    string
}

func (e *UnparseableError) Error() string {
	if e.RawBody == "" {
		return fmt.Sprintf("github: HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("github: HTTP %d: %s", e.StatusCode, e.RawBody)
}

func (e *UnparseableError) Status() int {
	return e.StatusCode
}

// As extracts the ClientError from err's chain.
func As(err error) (ClientError, bool) {
	var clientErr ClientError
	if errors.As(err, &clientErr) {
		return clientErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	clientErr, ok := As(err)
	return ok && clientErr.Status() == http.StatusNotFound
}

// IsValidation reports whether err carries field-level validation errors. This is decided by the
// body's shape, not its status code.
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsRateLimited reports whether err is a rate limit response. The API answers 429 for secondary
// limits and 403 with a recognizable message for the primary one.
func IsRateLimited(err error) bool {
	clientErr, ok := As(err)
	if !ok {
		return false
	}
	switch clientErr.Status() {
	case http.StatusTooManyRequests:
		return true
	case http.StatusForbidden:
		return isRateLimitMessage(message(clientErr))
	}
	return false
}

func message(err ClientError) string {
	switch e := err.(type) {
	case *GenericError:
		return e.Message
	case *ValidationError:
		return e.Message
	case *UnparseableError:
		return e.RawBody
	}
	return err.Error()
}

func isRateLimitMessage(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "rate limit") ||
		strings.Contains(lower, "abuse detection")
}
