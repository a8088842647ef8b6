package codec

import "github.com/tidwall/gjson"

// Field decodes the named member with fn. The member is required; fn sees an absent or null
// value and is expected to reject it.
func Field[T any](o *Object, name string, fn DecodeFunc[T]) T {
	value, _ := required(o, name, fn)
	return value
}

// OptField decodes the named member with fn, returning nil when it is absent or null.
func OptField[T any](o *Object, name string, fn DecodeFunc[T]) *T {
	return optional(o, name, fn)
}

// ListField decodes the named member as an array of T.
func ListField[T any](o *Object, name string, fn DecodeFunc[T]) []T {
	items, _ := required(o, name, func(v Value) ([]T, error) {
		return List(v, fn)
	})
	return items
}

// OptListField decodes the named member as an array of T, returning nil when it is absent or
// null. A present empty array yields an empty, non-nil slice.
func OptListField[T any](o *Object, name string, fn DecodeFunc[T]) []T {
	items := optional(o, name, func(v Value) ([]T, error) {
		return List(v, fn)
	})
	if items == nil {
		return nil
	}
	return *items
}

// MapField decodes the named member as an object whose values are all T, keyed by member name.
func MapField[T any](o *Object, name string, fn DecodeFunc[T]) map[string]T {
	entries, _ := required(o, name, func(v Value) (map[string]T, error) {
		return Map(v, fn)
	})
	return entries
}

// EnumField decodes the named member as a tag of enum.
func EnumField[E ~string](o *Object, name string, enum *Enum[E]) E {
	return Field(o, name, enum.Decode)
}

// OptEnumField decodes the named member as a tag of enum, returning nil when it is absent or null.
func OptEnumField[E ~string](o *Object, name string, enum *Enum[E]) *E {
	return OptField(o, name, enum.Decode)
}

// Map decodes v as a JSON object whose member values are all T. Members are decoded in document
// order, so the first malformed one is the one reported.
func Map[T any](v Value, fn DecodeFunc[T]) (map[string]T, error) {
	if !v.result.IsObject() {
		return nil, v.mismatch("object")
	}
	entries := map[string]T{}
	var err error
	v.result.ForEach(func(key, member gjson.Result) bool {
		var entry T
		entry, err = fn(Value{path: childPath(v.path, key.Str), result: member})
		if err != nil {
			return false
		}
		entries[key.Str] = entry
		return true
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
