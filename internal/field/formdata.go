package field

import (
	"fmt"
	"time"

	"customfields/internal/common"
	"customfields/internal/document"
)

// SavedValue is one submitted value together with the field metadata that
// was current when it was saved.
type SavedValue struct {
	FieldID  string    `yaml:"field_id" json:"field_id" toml:"field_id"`
	Value    any       `yaml:"value" json:"value" toml:"value"`
	Metadata Metadata  `yaml:"metadata" json:"metadata" toml:"metadata"`
	SavedAt  time.Time `yaml:"saved_at" json:"saved_at" toml:"saved_at"`
}

// FormData is the persisted bag of saved values for one record, keyed by
// rendered identity.
type FormData struct {
	SchemaID      string                `yaml:"schema_id" json:"schema_id" toml:"schema_id"`
	SchemaVersion int                   `yaml:"schema_version,omitempty" json:"schema_version,omitempty" toml:"schema_version,omitempty"`
	SavedAt       time.Time             `yaml:"saved_at" json:"saved_at" toml:"saved_at"`
	Fields        map[string]SavedValue `yaml:"fields" json:"fields" toml:"fields"`
}

// SortedIDs returns the identities of all saved values in ascending order.
func (d *FormData) SortedIDs() []string {
	if d == nil {
		return nil
	}

	return common.SortedKeys(d.Fields)
}

// Len returns the number of saved values.
func (d *FormData) Len() int {
	if d == nil {
		return 0
	}

	return len(d.Fields)
}

// Clone returns a copy with its own Fields map. Values are shared.
func (d *FormData) Clone() FormData {
	if d == nil {
		return FormData{Fields: map[string]SavedValue{}}
	}

	out := *d
	out.Fields = make(map[string]SavedValue, len(d.Fields))

	for id, v := range d.Fields {
		out.Fields[id] = v
	}

	return out
}

// SavedAtOrRecord returns the value's save time, falling back to the
// record's save time.
func (d *FormData) SavedAtOrRecord(v SavedValue) time.Time {
	if !v.SavedAt.IsZero() || d == nil {
		return v.SavedAt
	}

	return d.SavedAt
}

// LoadFormData loads saved form data from a YAML, JSON or TOML document.
// Map keys missing a field_id are filled from the map key.
func LoadFormData(path string) (*FormData, error) {
	var d FormData
	if err := document.ReadFile(path, &d); err != nil {
		return nil, fmt.Errorf("failed to load form data: %w", err)
	}

	if d.Fields == nil {
		d.Fields = map[string]SavedValue{}
	}

	for id, v := range d.Fields {
		if v.FieldID == "" {
			v.FieldID = id
			d.Fields[id] = v
		}
	}

	return &d, nil
}

// WriteFormData writes saved form data to the given path.
func WriteFormData(d *FormData, path string) error {
	return document.WriteFile(path, d)
}
