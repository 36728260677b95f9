package field

import (
	"customfields/internal/schema"
)

// SchemaMap indexes every field currently defined in a schema by position
// key. It is the source of truth for "what does the form look like now".
type SchemaMap struct {
	schemaID string
	keys     []string
	byKey    map[string]Metadata
}

// BuildSchemaMap walks every row and column of s, skipping empty columns.
// A nil or row-less schema yields an empty map.
func BuildSchemaMap(s *schema.Schema) *SchemaMap {
	m := &SchemaMap{byKey: make(map[string]Metadata)}
	if s.Empty() {
		return m
	}

	m.schemaID = s.ID

	for _, row := range s.Rows {
		for _, col := range row.Columns {
			if col.Field == nil {
				continue
			}

			md := ExtractMetadata(col.Field, s.ID, row.ID, col.ID)
			key := md.Position().Key()

			if _, dup := m.byKey[key]; !dup {
				m.keys = append(m.keys, key)
			}

			m.byKey[key] = md
		}
	}

	return m
}

// SchemaID returns the identifier of the indexed schema.
func (m *SchemaMap) SchemaID() string {
	return m.schemaID
}

// Len returns the number of indexed fields.
func (m *SchemaMap) Len() int {
	return len(m.keys)
}

// Keys returns the position keys in schema order.
func (m *SchemaMap) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Get returns the metadata stored under a position key.
func (m *SchemaMap) Get(key string) (Metadata, bool) {
	md, ok := m.byKey[key]
	return md, ok
}

// Lookup returns the metadata at a position.
func (m *SchemaMap) Lookup(p Position) (Metadata, bool) {
	return m.Get(p.Key())
}

// Each calls fn for every field in schema order.
func (m *SchemaMap) Each(fn func(key string, md Metadata)) {
	for _, key := range m.keys {
		fn(key, m.byKey[key])
	}
}

// FindByLabel returns the first field, in schema order, whose label equals
// label exactly.
func (m *SchemaMap) FindByLabel(label string) (Metadata, bool) {
	for _, key := range m.keys {
		if md := m.byKey[key]; md.Label == label {
			return md, true
		}
	}

	return Metadata{}, false
}

// Labels returns every field label in schema order.
func (m *SchemaMap) Labels() []string {
	labels := make([]string, 0, len(m.keys))
	for _, key := range m.keys {
		labels = append(labels, m.byKey[key].Label)
	}

	return labels
}
