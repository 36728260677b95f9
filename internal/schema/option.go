package schema

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Option is a selectable choice of a select, radio or checkbox field.
// Documents may write an option as a bare string or as {value, label}.
type Option struct {
	Value string `yaml:"value" json:"value" toml:"value"`
	Label string `yaml:"label,omitempty" json:"label,omitempty" toml:"label,omitempty"`
}

// DisplayLabel returns the label, falling back to the value.
func (o Option) DisplayLabel() string {
	if o.Label != "" {
		return o.Label
	}

	return o.Value
}

// UnmarshalYAML accepts either a scalar or a {value, label} mapping.
func (o *Option) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}

		*o = Option{Value: s}

		return nil

	case yaml.MappingNode:
		var raw struct {
			Value string `yaml:"value"`
			Label string `yaml:"label"`
		}

		if err := node.Decode(&raw); err != nil {
			return err
		}

		*o = Option{Value: raw.Value, Label: raw.Label}

		return nil

	default:
		return fmt.Errorf("expected option string or map, got %v", node.Kind)
	}
}

// UnmarshalJSON accepts either a string or a {value, label} object.
func (o *Option) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*o = Option{Value: s}
		return nil
	}

	var raw struct {
		Value string `json:"value"`
		Label string `json:"label"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.New("expected option string or object")
	}

	*o = Option{Value: raw.Value, Label: raw.Label}

	return nil
}

// UnmarshalTOML accepts either a string or an inline table.
func (o *Option) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		*o = Option{Value: v}
		return nil

	case map[string]any:
		value, _ := v["value"].(string)
		label, _ := v["label"].(string)
		*o = Option{Value: value, Label: label}

		return nil

	default:
		return fmt.Errorf("expected option string or table, got %T", data)
	}
}

// Options is a list of choices.
type Options []Option

// Values returns the option values in order.
func (opts Options) Values() []string {
	values := make([]string, len(opts))
	for i, o := range opts {
		values[i] = o.Value
	}

	return values
}

// Contains returns true if value is one of the option values.
func (opts Options) Contains(value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}

	return false
}
