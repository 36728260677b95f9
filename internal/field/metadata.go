package field

import (
	"customfields/internal/schema"
)

// Metadata is a descriptive snapshot of a field definition, tagged with
// its identity and position. Snapshots of the same identity may differ over
// time: labels and required-ness can change without changing identity.
type Metadata struct {
	FieldID     string                  `yaml:"field_id" json:"field_id" toml:"field_id"`
	SchemaID    string                  `yaml:"schema_id" json:"schema_id" toml:"schema_id"`
	RowID       string                  `yaml:"row_id" json:"row_id" toml:"row_id"`
	ColumnID    string                  `yaml:"column_id" json:"column_id" toml:"column_id"`
	ComponentID string                  `yaml:"component_id,omitempty" json:"component_id,omitempty" toml:"component_id,omitempty"`
	Label       string                  `yaml:"label" json:"label" toml:"label"`
	Kind        schema.Kind             `yaml:"type" json:"type" toml:"type"`
	Required    bool                    `yaml:"required,omitempty" json:"required,omitempty" toml:"required,omitempty"`
	Placeholder string                  `yaml:"placeholder,omitempty" json:"placeholder,omitempty" toml:"placeholder,omitempty"`
	Options     schema.Options          `yaml:"options,omitempty" json:"options,omitempty" toml:"options,omitempty"`
	DateFormat  string                  `yaml:"date_format,omitempty" json:"date_format,omitempty" toml:"date_format,omitempty"`
	File        *schema.FileConstraints `yaml:"file,omitempty" json:"file,omitempty" toml:"file,omitempty"`
	MinLength   int                     `yaml:"min_length,omitempty" json:"min_length,omitempty" toml:"min_length,omitempty"`
	MaxLength   int                     `yaml:"max_length,omitempty" json:"max_length,omitempty" toml:"max_length,omitempty"`
}

// ExtractMetadata projects a field definition into a metadata snapshot.
// The label defaults to schema.DefaultLabel. The identity defaults to one
// generated from the position and the definition's creation marker.
func ExtractMetadata(def *schema.FieldDefinition, schemaID, rowID, columnID string, fieldID ...string) Metadata {
	id := ""
	if len(fieldID) > 0 {
		id = fieldID[0]
	}

	if def == nil {
		def = &schema.FieldDefinition{}
	}

	if id == "" {
		id = Generate(schemaID, rowID, columnID, def.CreatedAt).String()
	}

	label := def.Label
	if label == "" {
		label = schema.DefaultLabel
	}

	md := Metadata{
		FieldID:     id,
		SchemaID:    schemaID,
		RowID:       rowID,
		ColumnID:    columnID,
		ComponentID: def.ID,
		Label:       label,
		Kind:        def.Type,
		Required:    def.Required,
		Placeholder: def.Placeholder,
		Options:     append(schema.Options(nil), def.Options...),
		DateFormat:  def.DateFormat,
		MinLength:   def.MinLength,
		MaxLength:   def.MaxLength,
	}

	if def.File != nil {
		file := *def.File
		file.Accept = append([]string(nil), def.File.Accept...)
		md.File = &file
	}

	return md
}

// Position returns the metadata's schema position.
func (m Metadata) Position() Position {
	return Position{SchemaID: m.SchemaID, RowID: m.RowID, ColumnID: m.ColumnID}
}
