package codec

import (
	"fmt"
	"sort"
	"sync"
)

// Enum is a set of string tags the API uses for one field. A closed enum rejects tags it does not
// know; an open enum keeps them as-is, so callers see the raw tag and can test it with Known.
type Enum[E ~string] struct {
	name   string
	open   bool
	values []E
	known  map[E]struct{}
}

// EnumInfo describes a registered enum.
type EnumInfo struct {
	Name   string
	Open   bool
	Values []string
}

var registry = struct {
	sync.Mutex
	enums map[string]EnumInfo
}{enums: map[string]EnumInfo{}}

// NewClosedEnum registers an enum that fails to decode any tag outside values.
func NewClosedEnum[E ~string](name string, values ...E) *Enum[E] {
	return newEnum(name, false, values)
}

// NewOpenEnum registers an enum that decodes unknown tags to themselves.
func NewOpenEnum[E ~string](name string, values ...E) *Enum[E] {
	return newEnum(name, true, values)
}

func newEnum[E ~string](name string, open bool, values []E) *Enum[E] {
	enum := &Enum[E]{
		name:   name,
		open:   open,
		values: values,
		known:  make(map[E]struct{}, len(values)),
	}
	info := EnumInfo{Name: name, Open: open}
	for _, value := range values {
		enum.known[value] = struct{}{}
		info.Values = append(info.Values, string(value))
	}

	registry.Lock()
	defer registry.Unlock()
	if _, exists := registry.enums[name]; exists {
		panic(fmt.Sprintf("codec: enum %s registered twice", name))
	}
	registry.enums[name] = info
	return enum
}

// Enums lists every registered enum, sorted by name.
func Enums() []EnumInfo {
	registry.Lock()
	defer registry.Unlock()
	infos := make([]EnumInfo, 0, len(registry.enums))
	for _, info := range registry.enums {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

func (e *Enum[E]) Name() string {
	return e.name
}

func (e *Enum[E]) Open() bool {
	return e.open
}

// Values returns the known tags in declaration order.
func (e *Enum[E]) Values() []E {
	return append([]E(nil), e.values...)
}

// Known reports whether v is one of the declared tags.
func (e *Enum[E]) Known(v E) bool {
	_, ok := e.known[v]
	return ok
}

// Parse maps a raw tag to E. Unknown tags fail with *UnknownVariantError on a closed enum.
func (e *Enum[E]) Parse(raw string) (E, error) {
	value := E(raw)
	if !e.open && !e.Known(value) {
		return "", &UnknownVariantError{Type: e.name, Raw: raw}
	}
	return value, nil
}

// Decode reads v as a string tag of e. It satisfies DecodeFunc[E].
func (e *Enum[E]) Decode(v Value) (E, error) {
	raw, err := v.String()
	if err != nil {
		return "", err
	}
	value, err := e.Parse(raw)
	if err != nil {
		return "", newDecodeError(v.path, e.name, err.Error(), err)
	}
	return value, nil
}
