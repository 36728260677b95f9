package mapping

import (
	"customfields/internal/config"
	"customfields/internal/field"
	"customfields/internal/schema"
)

// Capture builds saved form data from submitted values keyed by position
// key. Values for positions absent from the schema are ignored. Identities
// carry the current time when cfg.IncludeTimestamp is set, otherwise the
// field definition's creation marker.
func Capture(values map[string]any, current *schema.Schema, cfg config.Config) field.FormData {
	now := cfg.Now()
	fields := field.BuildSchemaMap(current)

	out := field.FormData{
		SchemaID: fields.SchemaID(),
		SavedAt:  now,
		Fields:   map[string]field.SavedValue{},
	}

	if current != nil {
		out.SchemaVersion = current.Version
	}

	fields.Each(func(key string, md field.Metadata) {
		value, ok := values[key]
		if !ok {
			return
		}

		if cfg.IncludeTimestamp {
			md.FieldID = field.Generate(md.SchemaID, md.RowID, md.ColumnID, now.UnixMilli()).String()
		}

		out.Fields[md.FieldID] = field.SavedValue{
			FieldID:  md.FieldID,
			Value:    value,
			Metadata: md,
			SavedAt:  now,
		}
	})

	return out
}

// FormValues returns the values to pre-populate the current form with,
// keyed by position key. Only mapped values are returned.
func FormValues(saved *field.FormData, current *schema.Schema, cfg config.Config) map[string]any {
	res := Map(saved, current, cfg)

	out := make(map[string]any, len(res.Mapped))
	for _, m := range res.Mapped {
		out[m.Key] = m.Saved.Value
	}

	return out
}
