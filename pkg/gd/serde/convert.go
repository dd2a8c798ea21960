package serde

import (
	"fmt"
	"sort"

	"github.com/cfoust/gdlevel/pkg/gd/schema"
)

type FieldError struct {
	Key  int
	Name string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("serde: field %d (%s): %v", e.Key, e.Name, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ToTyped decodes every declared key with its field type. Undeclared keys
// keep their raw string so that they can be written back untouched.
func ToTyped(pairs []Pair, s *schema.Schema) (schema.Data, error) {
	data := make(schema.Data, len(pairs))
	for _, pair := range pairs {
		field, ok := s.Lookup(pair.Key)
		if !ok {
			data[pair.Key] = pair.Value
			continue
		}

		value, err := field.Type.Decode(pair.Value)
		if err != nil {
			return nil, &FieldError{Key: field.Key, Name: field.Name, Err: err}
		}
		data[pair.Key] = value
	}
	return data, nil
}

// ToRaw encodes data into pairs sorted by key.
func ToRaw(data schema.Data, s *schema.Schema) ([]Pair, error) {
	keys := make([]int, 0, len(data))
	for key, value := range data {
		if value == nil {
			continue
		}
		keys = append(keys, key)
	}
	sort.Ints(keys)

	pairs := make([]Pair, 0, len(keys))
	for _, key := range keys {
		value := data[key]

		field, ok := s.Lookup(key)
		if !ok {
			raw, err := schema.TypeRaw.Encode(value)
			if err != nil {
				return nil, &FieldError{Key: key, Err: err}
			}
			pairs = append(pairs, Pair{Key: key, Value: raw})
			continue
		}

		raw, err := field.Type.Encode(value)
		if err != nil {
			return nil, &FieldError{Key: key, Name: field.Name, Err: err}
		}
		pairs = append(pairs, Pair{Key: key, Value: raw})
	}
	return pairs, nil
}

// Convert parses text into typed data.
func Convert(text string, s *schema.Schema, f Format) (schema.Data, error) {
	pairs, err := f.Tokenize(text)
	if err != nil {
		return nil, err
	}
	return ToTyped(pairs, s)
}

// Collect writes data as text with keys in ascending order, so equal data
// always produces identical text.
func Collect(data schema.Data, s *schema.Schema, f Format) (string, error) {
	pairs, err := ToRaw(data, s)
	if err != nil {
		return "", err
	}
	return f.Detokenize(pairs), nil
}
