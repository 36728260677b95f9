package flatten

import (
	"go.uber.org/zap"

	"customfields/internal/common"
	"customfields/internal/config"
	"customfields/internal/field"
	"customfields/internal/schema"
)

// FlatValue is one saved value in the flat shape.
type FlatValue struct {
	Value         any         `yaml:"value" json:"value" toml:"value"`
	RowID         string      `yaml:"row_id" json:"row_id" toml:"row_id"`
	ColumnID      string      `yaml:"column_id" json:"column_id" toml:"column_id"`
	ComponentID   string      `yaml:"component_id,omitempty" json:"component_id,omitempty" toml:"component_id,omitempty"`
	ComponentType schema.Kind `yaml:"component_type" json:"component_type" toml:"component_type"`
}

// Key returns the rowId_columnId key of the value.
func (v FlatValue) Key() string {
	return field.SlotKey(v.RowID, v.ColumnID)
}

// FlatData holds flat values keyed by rowId_columnId.
type FlatData map[string]FlatValue

// SortedKeys returns the keys in ascending order.
func (d FlatData) SortedKeys() []string {
	return common.SortedKeys(d)
}

// FromFormData flattens saved. Values whose identity cannot be parsed have
// no row or column and are returned separately. When two identities share
// a slot the one sorting last wins.
func FromFormData(saved *field.FormData) (FlatData, []field.SavedValue) {
	flat := FlatData{}

	var skipped []field.SavedValue

	for _, id := range saved.SortedIDs() {
		v := saved.Fields[id]
		if v.FieldID == "" {
			v.FieldID = id
		}

		ident, ok := field.ParseIdentity(v.FieldID)
		if !ok {
			skipped = append(skipped, v)
			continue
		}

		fv := FlatValue{
			Value:         v.Value,
			RowID:         ident.RowID,
			ColumnID:      ident.ColumnID,
			ComponentID:   v.Metadata.ComponentID,
			ComponentType: v.Metadata.Kind,
		}
		flat[fv.Key()] = fv
	}

	return flat, skipped
}

// ToFormData rebuilds saved form data for current from flat values. Entries
// that Validate rejects are not placed and are returned in key order.
func ToFormData(flat FlatData, current *schema.Schema, cfg config.Config) (field.FormData, []FlatValue) {
	now := cfg.Now()
	slots := newSlotIndex(current)

	out := field.FormData{
		SchemaID: slots.fields.SchemaID(),
		SavedAt:  now,
		Fields:   map[string]field.SavedValue{},
	}

	if current != nil {
		out.SchemaVersion = current.Version
	}

	var unplaced []FlatValue

	for _, key := range flat.SortedKeys() {
		fv := flat[key]

		entry := slots.check(key, fv)
		if !entry.Valid {
			cfg.Log().Debug("flat value not placed",
				zap.String("slot", key),
				zap.String("reason", entry.Reason))
			unplaced = append(unplaced, fv)

			continue
		}

		md := entry.Field
		if cfg.IncludeTimestamp {
			md.FieldID = field.Generate(md.SchemaID, md.RowID, md.ColumnID, now.UnixMilli()).String()
		}

		out.Fields[md.FieldID] = field.SavedValue{
			FieldID:  md.FieldID,
			Value:    fv.Value,
			Metadata: md,
			SavedAt:  now,
		}
	}

	return out, unplaced
}
