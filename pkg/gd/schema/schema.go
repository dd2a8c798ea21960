package schema

import (
	"errors"
	"fmt"
	"sort"

	opt "github.com/repeale/fp-go/option"

	"github.com/cfoust/gdlevel/pkg/gd/colors"
)

var ErrUnknownField = errors.New("schema: unknown field")

// Field describes one declared key of a record kind.
type Field struct {
	Key  int
	Name string
	Type Type
}

// DefinitionError is raised (as a panic) when a schema is declared
// inconsistently. It can only happen while packages are initialized.
type DefinitionError struct {
	Schema string
	Key    int
	Name   string
	Reason string
}

func (e DefinitionError) Error() string {
	return fmt.Sprintf("schema %s: field %d (%s): %s", e.Schema, e.Key, e.Name, e.Reason)
}

type binding struct {
	field Field
	get   func(Holder) (any, bool)
	set   func(Holder, any) error
}

// Schema is the field catalog of one record kind. It is built once during
// package initialization and is read-only after Seal.
type Schema struct {
	name     string
	sealed   bool
	byKey    map[int]Field
	bindings map[string]binding
	defaults Data
}

func New(name string) *Schema {
	return &Schema{
		name:     name,
		byKey:    make(map[int]Field),
		bindings: make(map[string]binding),
		defaults: make(Data),
	}
}

func (s *Schema) fail(key int, name string, reason string) {
	panic(DefinitionError{
		Schema: s.name,
		Key:    key,
		Name:   name,
		Reason: reason,
	})
}

func declare[T any](s *Schema, key int, name string, type_ Type) Accessor[T] {
	if s.sealed {
		s.fail(key, name, "schema is sealed")
	}
	if key < 0 {
		s.fail(key, name, "negative key")
	}
	if name == "" {
		s.fail(key, name, "missing name")
	}
	if existing, ok := s.byKey[key]; ok {
		s.fail(key, name, fmt.Sprintf("duplicate key, already declared as %s", existing.Name))
	}
	if _, ok := s.bindings[name]; ok {
		s.fail(key, name, "duplicate name")
	}

	field := Field{Key: key, Name: name, Type: type_}
	accessor := Accessor[T]{Field: field, schema: s}

	s.byKey[key] = field
	s.bindings[name] = binding{
		field: field,
		get: func(h Holder) (any, bool) {
			value, ok := h.Lookup(key)
			if !ok || value == nil {
				return nil, false
			}
			return cloneValue(value), true
		},
		set: func(h Holder, value any) error {
			typed, ok := coerce[T](value)
			if !ok {
				return fmt.Errorf("%w: %T for %s (%s)", ErrValueType, value, name, type_)
			}
			accessor.Set(h, typed)
			return nil
		},
	}

	return accessor
}

func (s *Schema) Bool(key int, name string) Accessor[bool] {
	return declare[bool](s, key, name, TypeBool)
}

func (s *Schema) Int(key int, name string) Accessor[int] {
	return declare[int](s, key, name, TypeInt)
}

func (s *Schema) Float(key int, name string) Accessor[float64] {
	return declare[float64](s, key, name, TypeFloat)
}

func (s *Schema) Color(key int, name string) Accessor[colors.ID] {
	return declare[colors.ID](s, key, name, TypeColor)
}

func (s *Schema) Groups(key int, name string) Accessor[Groups] {
	return declare[Groups](s, key, name, TypeGroups)
}

func (s *Schema) setDefault(field Field, value any) {
	if s.sealed {
		s.fail(field.Key, field.Name, "schema is sealed")
	}
	if _, ok := s.byKey[field.Key]; !ok {
		s.fail(field.Key, field.Name, "default for undeclared key")
	}
	s.defaults[field.Key] = cloneValue(value)
}

// Seal freezes the schema. Declaring fields or defaults afterwards panics.
func (s *Schema) Seal() *Schema {
	s.sealed = true
	return s
}

func (s *Schema) Name() string {
	return s.name
}

// Keys returns the declared keys in ascending order.
func (s *Schema) Keys() []int {
	keys := make([]int, 0, len(s.byKey))
	for key := range s.byKey {
		keys = append(keys, key)
	}
	sort.Ints(keys)
	return keys
}

func (s *Schema) Fields() []Field {
	keys := s.Keys()
	fields := make([]Field, len(keys))
	for i, key := range keys {
		fields[i] = s.byKey[key]
	}
	return fields
}

func (s *Schema) Lookup(key int) (Field, bool) {
	field, ok := s.byKey[key]
	return field, ok
}

func (s *Schema) ByName(name string) (Field, bool) {
	binding, ok := s.bindings[name]
	return binding.field, ok
}

// Defaults returns a fresh copy of the default table.
func (s *Schema) Defaults() Data {
	return s.defaults.Clone()
}

func (s *Schema) Default(key int) (any, bool) {
	value, ok := s.defaults[key]
	if !ok {
		return nil, false
	}
	return cloneValue(value), true
}

// Get reads the named field from h. It never falls back to defaults.
func (s *Schema) Get(h Holder, name string) (opt.Option[any], error) {
	binding, ok := s.bindings[name]
	if !ok {
		return opt.None[any](), fmt.Errorf("%w: %s.%s", ErrUnknownField, s.name, name)
	}

	value, ok := binding.get(h)
	if !ok {
		return opt.None[any](), nil
	}
	return opt.Some(value), nil
}

func (s *Schema) Set(h Holder, name string, value any) error {
	binding, ok := s.bindings[name]
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, s.name, name)
	}
	return binding.set(h, value)
}

// Parse decodes a text literal for the named field.
func (s *Schema) Parse(name string, raw string) (any, error) {
	binding, ok := s.bindings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, s.name, name)
	}
	return binding.field.Type.Decode(raw)
}
