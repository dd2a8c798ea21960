package api

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	opt "github.com/repeale/fp-go/option"

	"github.com/cfoust/gdlevel/pkg/gd/colors"
	"github.com/cfoust/gdlevel/pkg/gd/schema"
	"github.com/cfoust/gdlevel/pkg/gd/serde"
)

var ErrMalformed = errors.New("failed to process string")

// MalformedError is returned for any text that could not be turned into a
// record, whatever the underlying reason.
type MalformedError struct {
	Kind string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, ErrMalformed, e.Err)
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}

// kind binds a schema to the text format it is stored in.
type kind struct {
	schema *schema.Schema
	format serde.Format
}

// Struct holds the fields that were explicitly set on a record. Anything
// missing takes the kind's default when the record is dumped.
//
// Structs are not safe for concurrent mutation.
type Struct struct {
	kind *kind
	data schema.Data
}

func newStruct(k *kind, data schema.Data) Struct {
	if data == nil {
		data = make(schema.Data)
	}
	return Struct{kind: k, data: data}
}

func (s *Struct) parse(text string) error {
	data, err := serde.Convert(text, s.kind.schema, s.kind.format)
	if err != nil {
		return &MalformedError{Kind: s.kind.schema.Name(), Err: err}
	}
	s.data = data
	return nil
}

func (s *Struct) Schema() *schema.Schema {
	return s.kind.schema
}

func (s *Struct) Lookup(key int) (any, bool) {
	return s.data.Lookup(key)
}

func (s *Struct) Store(key int, value any) {
	s.data.Store(key, value)
}

func (s *Struct) Delete(key int) {
	s.data.Delete(key)
}

func (s *Struct) Len() int {
	return len(s.data)
}

// Get returns the explicitly set value of the named field.
func (s *Struct) Get(name string) (opt.Option[any], error) {
	return s.kind.schema.Get(s.data, name)
}

// GetMerged is like Get but falls back to the kind's default.
func (s *Struct) GetMerged(name string) (opt.Option[any], error) {
	value, err := s.Get(name)
	if err != nil || opt.IsSome(value) {
		return value, err
	}

	field, _ := s.kind.schema.ByName(name)
	if fallback, ok := s.kind.schema.Default(field.Key); ok {
		return opt.Some(fallback), nil
	}
	return value, nil
}

func (s *Struct) Set(name string, value any) error {
	return s.kind.schema.Set(s.data, name, value)
}

func (s *Struct) Clear(name string) error {
	field, ok := s.kind.schema.ByName(name)
	if !ok {
		return fmt.Errorf("%w: %s.%s", schema.ErrUnknownField, s.kind.schema.Name(), name)
	}
	s.data.Delete(field.Key)
	return nil
}

// Edit sets several fields at once, in name order. It stops at the first
// field that cannot be set; fields before it keep their new value.
func (s *Struct) Edit(fields map[string]any) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.Set(name, fields[name]); err != nil {
			return err
		}
	}
	return nil
}

// ToDict returns the explicitly set, declared fields by name.
func (s *Struct) ToDict() map[string]any {
	result := make(map[string]any)
	for _, field := range s.kind.schema.Fields() {
		value, ok := s.data[field.Key]
		if !ok || value == nil {
			continue
		}
		if groups, ok := value.(schema.Groups); ok {
			value = groups.Clone()
		}
		result[field.Name] = value
	}
	return result
}

// ToMap merges the kind's defaults with the explicit fields. The result is
// a new map every call.
func (s *Struct) ToMap() schema.Data {
	merged := s.kind.schema.Defaults()
	for key, value := range s.data.Clone() {
		merged[key] = value
	}
	return merged
}

func (s *Struct) Dump() (string, error) {
	return serde.Collect(s.ToMap(), s.kind.schema, s.kind.format)
}

func (s *Struct) String() string {
	dict := s.ToDict()
	names := make([]string, 0, len(dict))
	for name := range dict {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := []string{s.kind.schema.Name()}
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%v", name, dict[name]))
	}
	return "<" + strings.Join(parts, " ") + ">"
}

func (s *Struct) copy() Struct {
	return Struct{kind: s.kind, data: s.data.Clone()}
}

func (s *Struct) setColor(input colors.Input) error {
	color, err := colors.Resolve(input)
	if err != nil {
		return err
	}

	r, g, b := color.RGB()
	return s.Edit(map[string]any{
		"r": int(r),
		"g": int(g),
		"b": int(b),
	})
}
