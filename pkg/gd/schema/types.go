package schema

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cfoust/gdlevel/pkg/gd/colors"
)

var (
	ErrLiteral   = errors.New("schema: invalid literal")
	ErrValueType = errors.New("schema: value has wrong type")
)

// Type is the semantic type of a field. Every type knows how to turn its
// values into text and back.
type Type uint8

const (
	TypeRaw Type = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeColor
	TypeGroups
)

const groupSeparator = "."

func (t Type) String() string {
	switch t {
	case TypeRaw:
		return "raw"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeColor:
		return "color"
	case TypeGroups:
		return "groups"
	}
	return fmt.Sprintf("type(%d)", uint8(t))
}

func literalError(t Type, raw string) error {
	return fmt.Errorf("%w: %s %q", ErrLiteral, t, raw)
}

// Decode parses the textual form of a value of this type.
func (t Type) Decode(raw string) (any, error) {
	switch t {
	case TypeRaw:
		return raw, nil
	case TypeBool:
		switch raw {
		case "1":
			return true, nil
		case "0":
			return false, nil
		}
		return nil, literalError(t, raw)
	case TypeInt:
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, literalError(t, raw)
		}
		return value, nil
	case TypeFloat:
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, literalError(t, raw)
		}
		return value, nil
	case TypeColor:
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, literalError(t, raw)
		}
		return colors.ID(value), nil
	case TypeGroups:
		if raw == "" {
			return Groups{}, nil
		}

		parts := strings.Split(raw, groupSeparator)
		ids := make([]int, 0, len(parts))
		for _, part := range parts {
			id, err := strconv.Atoi(part)
			if err != nil {
				return nil, literalError(t, raw)
			}
			ids = append(ids, id)
		}
		return NewGroups(ids...), nil
	}

	return nil, fmt.Errorf("schema: cannot decode %s", t)
}

// Encode produces the textual form of value. A string is taken as a
// literal of the type: raw strings are returned untouched, anything else is
// decoded first so the output is always canonical.
func (t Type) Encode(value any) (string, error) {
	if raw, ok := value.(string); ok {
		if t == TypeRaw {
			return raw, nil
		}

		decoded, err := t.Decode(raw)
		if err != nil {
			return "", err
		}
		value = decoded
	}

	switch t {
	case TypeBool:
		if v, ok := value.(bool); ok {
			if v {
				return "1", nil
			}
			return "0", nil
		}
	case TypeInt:
		if v, ok := value.(int); ok {
			return strconv.Itoa(v), nil
		}
	case TypeFloat:
		switch v := value.(type) {
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		case int:
			return strconv.Itoa(v), nil
		}
	case TypeColor:
		switch v := value.(type) {
		case colors.ID:
			return strconv.Itoa(int(v)), nil
		case int:
			return strconv.Itoa(v), nil
		}
	case TypeGroups:
		if v, ok := value.([]int); ok {
			value = NewGroups(v...)
		}
		if v, ok := value.(Groups); ok {
			parts := make([]string, len(v))
			for i, id := range v {
				parts[i] = strconv.Itoa(id)
			}
			return strings.Join(parts, groupSeparator), nil
		}
	}

	return "", fmt.Errorf("%w: %T for %s", ErrValueType, value, t)
}
