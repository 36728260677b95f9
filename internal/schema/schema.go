package schema

import "strings"

// DefaultLabel is used for fields defined without a label.
const DefaultLabel = "Untitled Field"

// Schema is the current shape of a custom-field form.
type Schema struct {
	// ID is the stable schema identifier embedded in every field identity.
	ID string `yaml:"id" json:"id" toml:"id"`
	// Version increases on every administrator save.
	Version int `yaml:"version,omitempty" json:"version,omitempty" toml:"version,omitempty"`
	// Rows in display order.
	Rows []Row `yaml:"rows" json:"rows" toml:"rows"`
}

// Row is an ordered list of columns.
type Row struct {
	ID      string   `yaml:"id" json:"id" toml:"id"`
	Columns []Column `yaml:"columns" json:"columns" toml:"columns"`
}

// Column is one slot in a row. Field is nil for an empty slot.
type Column struct {
	ID    string           `yaml:"id" json:"id" toml:"id"`
	Field *FieldDefinition `yaml:"field,omitempty" json:"field,omitempty" toml:"field,omitempty"`
}

// FieldDefinition describes a single input.
type FieldDefinition struct {
	// ID is the form-builder component id. It is independent of the
	// position-based field identity.
	ID          string           `yaml:"id,omitempty" json:"id,omitempty" toml:"id,omitempty"`
	Type        Kind             `yaml:"type" json:"type" toml:"type"`
	Label       string           `yaml:"label,omitempty" json:"label,omitempty" toml:"label,omitempty"`
	Required    bool             `yaml:"required,omitempty" json:"required,omitempty" toml:"required,omitempty"`
	Placeholder string           `yaml:"placeholder,omitempty" json:"placeholder,omitempty" toml:"placeholder,omitempty"`
	Options     Options          `yaml:"options,omitempty" json:"options,omitempty" toml:"options,omitempty"`
	DateFormat  string           `yaml:"date_format,omitempty" json:"date_format,omitempty" toml:"date_format,omitempty"`
	File        *FileConstraints `yaml:"file,omitempty" json:"file,omitempty" toml:"file,omitempty"`
	MinLength   int              `yaml:"min_length,omitempty" json:"min_length,omitempty" toml:"min_length,omitempty"`
	MaxLength   int              `yaml:"max_length,omitempty" json:"max_length,omitempty" toml:"max_length,omitempty"`
	// CreatedAt is the creation marker (unix milliseconds) used as the
	// last identity segment. It does not take part in matching.
	CreatedAt int64 `yaml:"created_at,omitempty" json:"created_at,omitempty" toml:"created_at,omitempty"`
}

// FileConstraints restricts uploads of a file field.
type FileConstraints struct {
	// Accept lists extensions (".pdf") and/or MIME patterns ("image/*").
	Accept       []string `yaml:"accept,omitempty" json:"accept,omitempty" toml:"accept,omitempty"`
	MaxSizeBytes int64    `yaml:"max_size_bytes,omitempty" json:"max_size_bytes,omitempty" toml:"max_size_bytes,omitempty"`
	Multiple     bool     `yaml:"multiple,omitempty" json:"multiple,omitempty" toml:"multiple,omitempty"`
}

// Empty returns true if the schema has no rows. Such a schema maps nothing.
func (s *Schema) Empty() bool {
	return s == nil || len(s.Rows) == 0
}

// FieldCount returns the number of columns holding a field definition.
func (s *Schema) FieldCount() int {
	if s == nil {
		return 0
	}

	n := 0

	for _, row := range s.Rows {
		for _, col := range row.Columns {
			if col.Field != nil {
				n++
			}
		}
	}

	return n
}

// FieldAt returns the field definition at the given row and column.
func (s *Schema) FieldAt(rowID, columnID string) (*FieldDefinition, bool) {
	if s == nil {
		return nil, false
	}

	for _, row := range s.Rows {
		if row.ID != rowID {
			continue
		}

		for _, col := range row.Columns {
			if col.ID == columnID && col.Field != nil {
				return col.Field, true
			}
		}
	}

	return nil, false
}

// Clone returns a deep copy of the schema.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}

	out := &Schema{ID: s.ID, Version: s.Version, Rows: make([]Row, len(s.Rows))}

	for i, row := range s.Rows {
		cols := make([]Column, len(row.Columns))

		for j, col := range row.Columns {
			cols[j] = Column{ID: col.ID}
			if col.Field != nil {
				cols[j].Field = col.Field.Clone()
			}
		}

		out.Rows[i] = Row{ID: row.ID, Columns: cols}
	}

	return out
}

// Clone returns a deep copy of the definition.
func (d *FieldDefinition) Clone() *FieldDefinition {
	if d == nil {
		return nil
	}

	out := *d
	out.Options = append(Options(nil), d.Options...)

	if d.File != nil {
		file := *d.File
		file.Accept = append([]string(nil), d.File.Accept...)
		out.File = &file
	}

	return &out
}

// normalize canonicalizes kind names after decoding.
func (s *Schema) normalize() {
	for i := range s.Rows {
		for j := range s.Rows[i].Columns {
			if f := s.Rows[i].Columns[j].Field; f != nil {
				f.Type = ParseKind(string(f.Type))
				f.Label = strings.TrimSpace(f.Label)
			}
		}
	}
}
