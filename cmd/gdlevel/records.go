package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cfoust/gdlevel/pkg/gd/api"
	"github.com/cfoust/gdlevel/pkg/gd/colors"
	"github.com/cfoust/gdlevel/pkg/gd/schema"
)

func parseRecord(kind string, text string) (*api.Struct, error) {
	switch kind {
	case "object":
		object, err := api.ObjectFromString(text)
		if err != nil {
			return nil, err
		}
		return &object.Struct, nil
	case "channel":
		channel, err := api.ColorChannelFromString(text)
		if err != nil {
			return nil, err
		}
		return &channel.Struct, nil
	}
	return nil, fmt.Errorf("unknown kind %q", kind)
}

func decodeCommand(out io.Writer, kind string, text string) error {
	record, err := parseRecord(kind, text)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(record.ToDict())
}

func normalizeCommand(out io.Writer, kind string, text string) error {
	record, err := parseRecord(kind, text)
	if err != nil {
		return err
	}

	dumped, err := record.Dump()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, dumped)
	return err
}

// parseAssignments decodes name=literal pairs against the record's fields.
// Color references may be given by name, e.g. color_1=BG.
func parseAssignments(fields *schema.Schema, assignments map[string]string) (map[string]any, error) {
	values := make(map[string]any, len(assignments))
	for name, raw := range assignments {
		field, ok := fields.ByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", schema.ErrUnknownField, name)
		}

		if field.Type == schema.TypeColor {
			id, err := colors.ParseID(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			values[name] = id
			continue
		}

		value, err := fields.Parse(name, raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		values[name] = value
	}
	return values, nil
}

func editCommand(out io.Writer, kind string, text string, assignments map[string]string) error {
	record, err := parseRecord(kind, text)
	if err != nil {
		return err
	}

	values, err := parseAssignments(record.Schema(), assignments)
	if err != nil {
		return err
	}

	if err := record.Edit(values); err != nil {
		return err
	}

	dumped, err := record.Dump()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, dumped)
	return err
}
