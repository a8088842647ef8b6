package apierror

import (
	"fmt"

	"github.com/gruntwork-io/hubcodec/codec"
)

// Code is the machine-readable reason attached to a field error.
type Code string

const (
	CodeMissing       Code = "missing"
	CodeMissingField  Code = "missing_field"
	CodeInvalid       Code = "invalid"
	CodeAlreadyExists Code = "already_exists"
	CodeUnprocessable Code = "unprocessable"
	CodeCustom        Code = "custom"
)

var Codes = codec.NewOpenEnum("apierror.Code",
	CodeMissing, CodeMissingField, CodeInvalid, CodeAlreadyExists, CodeUnprocessable, CodeCustom)

// IsOther reports whether c is a code this package does not know about.
func (c Code) IsOther() bool {
	return !Codes.Known(c)
}

// FieldError is one entry of a validation failure.
type FieldError struct {
	Resource         string
	Field            string
	Code             Code
	Message          *string
	DocumentationUrl *string
}

func (f FieldError) String() string {
	detail := string(f.Code)
	if f.Message != nil {
		detail = *f.Message
	}
	if f.Field == "" {
		return fmt.Sprintf("%s: %s", f.Resource, detail)
	}
	return fmt.Sprintf("%s.%s: %s", f.Resource, f.Field, detail)
}

// Decode turns a failed response into a ClientError. It always returns a non-nil error.
//
// A JSON object with a string "message" and an "errors" array holding at least one object is a
// *ValidationError. Any other object with a string "message" is a *GenericError. Everything else,
// including empty and non-JSON bodies, is an *UnparseableError.
func Decode(status int, body []byte) ClientError {
	unparseable := &UnparseableError{StatusCode: status, RawBody: string(body)}

	root, err := codec.Parse(body)
	if err != nil || !root.IsObject() {
		return unparseable
	}

	o := codec.AsObject(root)
	msg, err := o.Value("message").String()
	if err != nil {
		return unparseable
	}
	docs := bestEffortString(o.Value("documentation_url"))

	fieldErrors := decodeFieldErrors(o.Value("errors"))
	if len(fieldErrors) > 0 {
		return &ValidationError{
			StatusCode:       status,
			Message:          msg,
			DocumentationUrl: docs,
			FieldErrors:      fieldErrors,
		}
	}
	return &GenericError{
		StatusCode:       status,
		Message:          msg,
		DocumentationUrl: docs,
	}
}

// decodeFieldErrors keeps every object entry of v and skips the rest. Members of the wrong type
// are treated as absent.
func decodeFieldErrors(v codec.Value) []FieldError {
	if !v.IsArray() {
		return nil
	}
	entries, _ := codec.List(v, func(entry codec.Value) (codec.Value, error) {
		return entry, nil
	})

	var fieldErrors []FieldError
	for _, entry := range entries {
		if !entry.IsObject() {
			continue
		}
		o := codec.AsObject(entry)
		fieldError := FieldError{
			Resource:         stringOrEmpty(o.Value("resource")),
			Field:            stringOrEmpty(o.Value("field")),
			Message:          bestEffortString(o.Value("message")),
			DocumentationUrl: bestEffortString(o.Value("documentation_url")),
		}
		if code, err := Codes.Decode(o.Value("code")); err == nil {
			fieldError.Code = code
		}
		fieldErrors = append(fieldErrors, fieldError)
	}
	return fieldErrors
}

func bestEffortString(v codec.Value) *string {
	s, err := v.String()
	if err != nil {
		return nil
	}
	return &s
}

func stringOrEmpty(v codec.Value) string {
	s, _ := v.String()
	return s
}
