package mapping

import (
	"time"

	"go.uber.org/zap"

	"customfields/internal/config"
	"customfields/internal/diagnostic"
	"customfields/internal/field"
	"customfields/internal/schema"
)

// OrphanReason explains why a value is orphaned.
type OrphanReason string

const (
	ReasonMalformedIdentity OrphanReason = diagnostic.CodeMalformedIdentity
	ReasonFieldRemoved      OrphanReason = diagnostic.CodeFieldRemoved
)

// MappedField is a saved value whose position exists in the current schema.
type MappedField struct {
	Key      string
	Saved    field.SavedValue
	Current  field.Metadata
	Previous field.Metadata
}

// LabelChanged reports whether the label differs from the one saved.
func (m MappedField) LabelChanged() bool {
	return m.Previous.Label != "" && m.Previous.Label != m.Current.Label
}

// KindChanged reports whether the field type differs from the one saved.
func (m MappedField) KindChanged() bool {
	return m.Previous.Kind != "" && m.Previous.Kind != m.Current.Kind
}

// RequiredChanged reports whether the required flag differs from the one saved.
func (m MappedField) RequiredChanged() bool {
	return m.Previous.Required != m.Current.Required
}

// OrphanedField is a saved value with no place in the current schema.
type OrphanedField struct {
	Saved  field.SavedValue
	Reason OrphanReason
	Age    time.Duration
}

// MissingField is a current schema field with no saved value.
type MissingField struct {
	Key      string
	Metadata field.Metadata
}

// DroppedField is an unmapped value excluded from every classification.
type DroppedField struct {
	Saved field.SavedValue
	Age   time.Duration
}

// Result is the classification of one record against one schema.
type Result struct {
	Mapped   []MappedField
	Orphaned []OrphanedField
	Missing  []MissingField
	// Dropped is informational. Nothing listed here is mapped, orphaned or
	// missing.
	Dropped []DroppedField
}

// RequiredMissing returns the missing fields marked required.
func (r *Result) RequiredMissing() []MissingField {
	var out []MissingField

	for _, m := range r.Missing {
		if m.Metadata.Required {
			out = append(out, m)
		}
	}

	return out
}

// Map classifies the values of saved against current. It never fails: a
// nil record maps nothing and an empty schema leaves every value unmapped.
func Map(saved *field.FormData, current *schema.Schema, cfg config.Config) Result {
	return MapWith(saved, field.BuildSchemaMap(current), cfg)
}

// MapWith is Map against a prebuilt schema map.
func MapWith(saved *field.FormData, fields *field.SchemaMap, cfg config.Config) Result {
	log := cfg.Log()

	var res Result

	mapped := map[string]MappedField{}

	for _, id := range saved.SortedIDs() {
		v := saved.Fields[id]
		if v.FieldID == "" {
			v.FieldID = id
		}

		ident, ok := field.ParseIdentity(v.FieldID)
		if !ok {
			log.Debug("malformed field identity", zap.String("field_id", v.FieldID))
			res.Orphaned = append(res.Orphaned, OrphanedField{
				Saved:  v,
				Reason: ReasonMalformedIdentity,
				Age:    cfg.Age(saved.SavedAtOrRecord(v)),
			})

			continue
		}

		key := ident.Position().Key()
		if md, found := fields.Get(key); found {
			if prev, dup := mapped[key]; dup {
				log.Debug("position reused by another saved value",
					zap.String("position", key),
					zap.String("replaced", prev.Saved.FieldID),
					zap.String("kept", v.FieldID))
			}

			mapped[key] = MappedField{Key: key, Saved: v, Current: md, Previous: v.Metadata}

			continue
		}

		savedAt := saved.SavedAtOrRecord(v)
		age := cfg.Age(savedAt)

		if cfg.ShowOrphanedFields && cfg.WithinMaxAge(savedAt) {
			res.Orphaned = append(res.Orphaned, OrphanedField{Saved: v, Reason: ReasonFieldRemoved, Age: age})
			continue
		}

		log.Debug("dropping unmapped field",
			zap.String("field_id", v.FieldID),
			zap.Duration("age", age),
			zap.Bool("show_orphaned", cfg.ShowOrphanedFields))
		res.Dropped = append(res.Dropped, DroppedField{Saved: v, Age: age})
	}

	fields.Each(func(key string, md field.Metadata) {
		if m, ok := mapped[key]; ok {
			res.Mapped = append(res.Mapped, m)
			return
		}

		res.Missing = append(res.Missing, MissingField{Key: key, Metadata: md})
	})

	return res
}
