package codec

import (
	"encoding/json"
	"time"

	"github.com/tidwall/gjson"
)

// Object reads the members of a JSON object. The first failed read is recorded and every read
// after it is a no-op returning a zero value, so a decoder can read all of its fields and check
// Err once at the end.
type Object struct {
	path    string
	members map[string]gjson.Result
	err     error
}

// AsObject opens v for member reads. If v is not an object the returned reader is already failed.
func AsObject(v Value) *Object {
	o := &Object{path: v.path}
	if !v.result.IsObject() {
		o.err = v.mismatch("object")
		return o
	}
	o.members = map[string]gjson.Result{}
	v.result.ForEach(func(key, value gjson.Result) bool {
		o.members[key.Str] = value
		return true
	})
	return o
}

// Err returns the first error any read on o ran into.
func (o *Object) Err() error {
	return o.err
}

// Fail records err unless an earlier error is already recorded.
func (o *Object) Fail(err error) {
	if o.err == nil && err != nil {
		o.err = err
	}
}

// Path returns the JSON path of the object itself.
func (o *Object) Path() string {
	return o.path
}

// Value returns the named member. The result reports IsNull when the member is absent.
func (o *Object) Value(name string) Value {
	return Value{path: childPath(o.path, name), result: o.members[name]}
}

// Has reports whether the named member is present and not null.
func (o *Object) Has(name string) bool {
	return !o.Value(name).IsNull()
}

// String reads a required string member.
func (o *Object) String(name string) string {
	s, _ := required(o, name, Value.String)
	return s
}

// OptString reads an optional string member; nil when absent or null.
func (o *Object) OptString(name string) *string {
	return optional(o, name, Value.String)
}

// Int reads a required whole number that fits an int.
func (o *Object) Int(name string) int {
	n, _ := required(o, name, Value.Int)
	return n
}

func (o *Object) OptInt(name string) *int {
	return optional(o, name, Value.Int)
}

// Int64 reads a required whole number.
func (o *Object) Int64(name string) int64 {
	n, _ := required(o, name, Value.Int64)
	return n
}

func (o *Object) OptInt64(name string) *int64 {
	return optional(o, name, Value.Int64)
}

// Uint32 reads a required non-negative whole number below 2^32. Larger values fail rather than
// wrap.
func (o *Object) Uint32(name string) uint32 {
	n, _ := required(o, name, Value.Uint32)
	return n
}

func (o *Object) OptUint32(name string) *uint32 {
	return optional(o, name, Value.Uint32)
}

// Uint64 reads a required non-negative whole number, such as an id or a byte count.
func (o *Object) Uint64(name string) uint64 {
	n, _ := required(o, name, Value.Uint64)
	return n
}

func (o *Object) OptUint64(name string) *uint64 {
	return optional(o, name, Value.Uint64)
}

// Float64 reads a required number of any form.
func (o *Object) Float64(name string) float64 {
	f, _ := required(o, name, Value.Float64)
	return f
}

func (o *Object) OptFloat64(name string) *float64 {
	return optional(o, name, Value.Float64)
}

// Bool reads a required boolean. Strings such as "true" are rejected.
func (o *Object) Bool(name string) bool {
	b, _ := required(o, name, Value.Bool)
	return b
}

func (o *Object) OptBool(name string) *bool {
	return optional(o, name, Value.Bool)
}

// Time reads a required RFC 3339 timestamp. A malformed timestamp fails the whole object.
func (o *Object) Time(name string) time.Time {
	t, _ := required(o, name, Value.Time)
	return t
}

func (o *Object) OptTime(name string) *time.Time {
	return optional(o, name, Value.Time)
}

// UnixTime reads a required timestamp given as epoch seconds.
func (o *Object) UnixTime(name string) time.Time {
	t, _ := required(o, name, Value.UnixTime)
	return t
}

// Strings reads a required array of strings.
func (o *Object) Strings(name string) []string {
	return ListField(o, name, Value.String)
}

// OptStrings reads an optional array of strings; nil when absent or null.
func (o *Object) OptStrings(name string) []string {
	return OptListField(o, name, Value.String)
}

// Raw returns the named member verbatim. The member must be present, but may be any JSON value
// including null.
func (o *Object) Raw(name string) json.RawMessage {
	v := o.Value(name)
	if o.err != nil {
		return nil
	}
	if !v.Exists() {
		o.Fail(v.mismatch("json"))
		return nil
	}
	return json.RawMessage(v.Raw())
}

// OptRaw returns the named member verbatim, or nil when it is absent or null.
func (o *Object) OptRaw(name string) json.RawMessage {
	v := o.Value(name)
	if o.err != nil || v.IsNull() {
		return nil
	}
	return json.RawMessage(v.Raw())
}

func required[T any](o *Object, name string, fn DecodeFunc[T]) (T, bool) {
	var zero T
	if o.err != nil {
		return zero, false
	}
	value, err := fn(o.Value(name))
	if err != nil {
		o.Fail(err)
		return zero, false
	}
	return value, true
}

func optional[T any](o *Object, name string, fn DecodeFunc[T]) *T {
	if o.err != nil || !o.Has(name) {
		return nil
	}
	value, ok := required(o, name, fn)
	if !ok {
		return nil
	}
	return &value
}
