package codec

import "fmt"

// DecodeError reports that a payload did not match the shape a decoder expected. Field is the JSON
// path of the offending value (for example "items[2].owner.login"), empty for the document root.
type DecodeError struct {
	Field    string // path of the value that failed to decode
	Expected string // the kind of value the decoder wanted: "string", "timestamp", "object", ...
	Reason   string // what went wrong, in a few words
	Err      error  // the underlying cause, if any
}

// Implement the golang Error interface
func (e *DecodeError) Error() string {
	field := e.Field
	if field == "" {
		field = "<root>"
	}
	return fmt.Sprintf("decode %s: expected %s: %s", field, e.Expected, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// UnknownVariantError is returned when a closed enum meets a tag it does not know. When raised
// while decoding a field it is wrapped in a DecodeError naming that field.
type UnknownVariantError struct {
	Type string // registered enum name, e.g. "statuses.State"
	Raw  string // the tag as it appeared on the wire
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown %s variant %q", e.Type, e.Raw)
}

// ContentDecodeError is returned by the lazy content accessors when the content cannot be turned
// into bytes: either the encoding tag is unsupported or the payload is not valid for it.
type ContentDecodeError struct {
	Encoding string // the encoding tag reported by the API
	Err      error  // decoding failure; nil when the encoding itself is unsupported
}

func (e *ContentDecodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("unsupported content encoding %q", e.Encoding)
	}
	return fmt.Sprintf("invalid %s content: %s", e.Encoding, e.Err)
}

func (e *ContentDecodeError) Unwrap() error {
	return e.Err
}

// Unsupported reports whether the failure was caused by an encoding tag rather than bad data.
func (e *ContentDecodeError) Unsupported() bool {
	return e.Err == nil
}

func newDecodeError(field, expected, reason string, cause error) *DecodeError {
	return &DecodeError{
		Field:    field,
		Expected: expected,
		Reason:   reason,
		Err:      cause,
	}
}
