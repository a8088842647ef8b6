// Package codec turns raw GitHub API payloads into typed Go values.
//
// Decoders are written against Value and Object rather than encoding/json struct tags, because
// the API is inconsistent about omitting versus nulling fields and every failure has to name the
// field it happened on. A decoder reads each member it cares about from an Object; the first
// failure sticks and is returned from Object.Err, so a record either decodes completely or not at
// all. Members the decoder never reads are ignored.
package codec

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

// DecodeFunc decodes one JSON value into a T. Every resource model exposes one.
type DecodeFunc[T any] func(Value) (T, error)

// Value is a single JSON value together with the path it was found at.
type Value struct {
	path   string
	result gjson.Result
}

// Parse validates body as JSON and returns its root value.
func Parse(body []byte) (Value, error) {
	if !gjson.ValidBytes(body) {
		return Value{}, newDecodeError("", "json", "payload is not valid JSON", nil)
	}
	return Value{result: gjson.ParseBytes(body)}, nil
}

// Decode parses body and hands the root value to fn.
func Decode[T any](body []byte, fn DecodeFunc[T]) (T, error) {
	root, err := Parse(body)
	if err != nil {
		var zero T
		return zero, err
	}
	return fn(root)
}

// DecodeList parses body as a JSON array and decodes every element with fn.
func DecodeList[T any](body []byte, fn DecodeFunc[T]) ([]T, error) {
	root, err := Parse(body)
	if err != nil {
		return nil, err
	}
	return List(root, fn)
}

// Path returns the JSON path of the value, empty for the document root.
func (v Value) Path() string {
	return v.path
}

// Exists reports whether the value was present in the payload at all.
func (v Value) Exists() bool {
	return v.result.Exists()
}

// IsNull reports whether the value is JSON null or was absent. Both mean "no value".
func (v Value) IsNull() bool {
	return !v.result.Exists() || v.result.Type == gjson.Null
}

// IsObject reports whether the value is a JSON object.
func (v Value) IsObject() bool {
	return v.result.IsObject()
}

// IsArray reports whether the value is a JSON array.
func (v Value) IsArray() bool {
	return v.result.IsArray()
}

// Raw returns the value exactly as it appeared in the payload.
func (v Value) Raw() string {
	return v.result.Raw
}

// Kind names the JSON type of the value for error messages.
func (v Value) Kind() string {
	if !v.result.Exists() {
		return "nothing"
	}
	switch v.result.Type {
	case gjson.Null:
		return "null"
	case gjson.False, gjson.True:
		return "boolean"
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	}
	if v.result.IsArray() {
		return "array"
	}
	return "object"
}

// String decodes a JSON string.
func (v Value) String() (string, error) {
	if v.result.Type != gjson.String {
		return "", v.mismatch("string")
	}
	return v.result.Str, nil
}

// Bool decodes a JSON boolean.
func (v Value) Bool() (bool, error) {
	switch v.result.Type {
	case gjson.True:
		return true, nil
	case gjson.False:
		return false, nil
	}
	return false, v.mismatch("boolean")
}

// Int64 decodes a JSON number that must be a whole number.
func (v Value) Int64() (int64, error) {
	if v.result.Type != gjson.Number {
		return 0, v.mismatch("integer")
	}
	n, err := strconv.ParseInt(v.result.Raw, 10, 64)
	if err != nil {
		return 0, newDecodeError(v.path, "integer", fmt.Sprintf("%s is not a 64-bit integer", v.result.Raw), err)
	}
	return n, nil
}

// Int decodes a JSON number that must be a whole number fitting the platform int.
func (v Value) Int() (int, error) {
	if v.result.Type != gjson.Number {
		return 0, v.mismatch("integer")
	}
	n, err := strconv.ParseInt(v.result.Raw, 10, 0)
	if err != nil {
		return 0, newDecodeError(v.path, "integer", fmt.Sprintf("%s is not an int", v.result.Raw), err)
	}
	return int(n), nil
}

// Uint32 decodes a JSON number that must be a non-negative whole number below 2^32.
func (v Value) Uint32() (uint32, error) {
	if v.result.Type != gjson.Number {
		return 0, v.mismatch("unsigned 32-bit integer")
	}
	n, err := strconv.ParseUint(v.result.Raw, 10, 32)
	if err != nil {
		return 0, newDecodeError(v.path, "unsigned 32-bit integer", fmt.Sprintf("%s is not an unsigned 32-bit integer", v.result.Raw), err)
	}
	return uint32(n), nil
}

// Uint64 decodes a JSON number that must be a non-negative whole number.
func (v Value) Uint64() (uint64, error) {
	if v.result.Type != gjson.Number {
		return 0, v.mismatch("unsigned integer")
	}
	n, err := strconv.ParseUint(v.result.Raw, 10, 64)
	if err != nil {
		return 0, newDecodeError(v.path, "unsigned integer", fmt.Sprintf("%s is not a non-negative integer", v.result.Raw), err)
	}
	return n, nil
}

// Float64 decodes any JSON number.
func (v Value) Float64() (float64, error) {
	if v.result.Type != gjson.Number {
		return 0, v.mismatch("number")
	}
	f, err := strconv.ParseFloat(v.result.Raw, 64)
	if err != nil {
		return 0, newDecodeError(v.path, "number", fmt.Sprintf("%s is not a number", v.result.Raw), err)
	}
	return f, nil
}

// Time decodes an RFC 3339 timestamp string such as "2011-01-26T19:01:12Z".
func (v Value) Time() (time.Time, error) {
	if v.result.Type != gjson.String {
		return time.Time{}, v.mismatch("timestamp")
	}
	t, err := time.Parse(time.RFC3339, v.result.Str)
	if err != nil {
		return time.Time{}, newDecodeError(v.path, "timestamp", fmt.Sprintf("malformed timestamp %q", v.result.Str), err)
	}
	return t, nil
}

// UnixTime decodes a number of seconds since the Unix epoch.
func (v Value) UnixTime() (time.Time, error) {
	seconds, err := v.Int64()
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(seconds, 0).UTC(), nil
}

// List decodes v as a JSON array, decoding each element with fn. An empty array yields an empty,
// non-nil slice.
func List[T any](v Value, fn DecodeFunc[T]) ([]T, error) {
	if !v.result.IsArray() {
		return nil, v.mismatch("array")
	}
	elements := v.result.Array()
	items := make([]T, 0, len(elements))
	for i, element := range elements {
		item, err := fn(Value{path: fmt.Sprintf("%s[%d]", v.path, i), result: element})
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (v Value) mismatch(expected string) *DecodeError {
	if !v.result.Exists() {
		return newDecodeError(v.path, expected, "missing required field", nil)
	}
	if v.result.Type == gjson.Null {
		return newDecodeError(v.path, expected, "required field is null", nil)
	}
	return newDecodeError(v.path, expected, "got "+v.Kind(), nil)
}

func childPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
