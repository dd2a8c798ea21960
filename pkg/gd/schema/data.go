package schema

import (
	opt "github.com/repeale/fp-go/option"

	"github.com/cfoust/gdlevel/pkg/gd/colors"
)

// Holder is anything that stores typed field values by key.
type Holder interface {
	Lookup(key int) (any, bool)
	Store(key int, value any)
	Delete(key int)
}

// Data maps field keys to typed values. Keys not declared in a schema hold
// the raw string they were read with.
type Data map[int]any

func (d Data) Lookup(key int) (any, bool) {
	value, ok := d[key]
	return value, ok
}

func (d Data) Store(key int, value any) {
	d[key] = value
}

func (d Data) Delete(key int) {
	delete(d, key)
}

// Clone copies d, including any group sets inside it.
func (d Data) Clone() Data {
	clone := make(Data, len(d))
	for key, value := range d {
		clone[key] = cloneValue(value)
	}
	return clone
}

func cloneValue(value any) any {
	if groups, ok := value.(Groups); ok {
		return groups.Clone()
	}
	return value
}

// Accessor reads and writes one declared field. Accessors are created by
// the declaration methods on Schema.
type Accessor[T any] struct {
	Field
	schema *Schema
}

// Get returns the explicitly stored value. Missing fields, and fields
// holding something that is not a T, are None.
func (a Accessor[T]) Get(h Holder) opt.Option[T] {
	value, ok := h.Lookup(a.Key)
	if !ok || value == nil {
		return opt.None[T]()
	}

	typed, ok := coerce[T](value)
	if !ok {
		return opt.None[T]()
	}
	return opt.Some(cloneValue(typed).(T))
}

func (a Accessor[T]) Set(h Holder, value T) {
	h.Store(a.Key, cloneValue(value))
}

func (a Accessor[T]) Clear(h Holder) {
	h.Delete(a.Key)
}

// WithDefault records value as the field's default for the kind.
func (a Accessor[T]) WithDefault(value T) Accessor[T] {
	a.schema.setDefault(a.Field, value)
	return a
}

// coerce converts compatible inputs, such as a plain int for a float
// field, into T.
func coerce[T any](value any) (T, bool) {
	if typed, ok := value.(T); ok {
		return typed, true
	}

	var zero T
	var converted any
	switch any(zero).(type) {
	case float64:
		switch v := value.(type) {
		case int:
			converted = float64(v)
		case float32:
			converted = float64(v)
		}
	case colors.ID:
		if v, ok := value.(int); ok {
			converted = colors.ID(v)
		}
	case Groups:
		if v, ok := value.([]int); ok {
			converted = NewGroups(v...)
		}
	}

	if converted == nil {
		return zero, false
	}
	return converted.(T), true
}
