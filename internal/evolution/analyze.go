package evolution

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"customfields/internal/config"
	"customfields/internal/field"
	"customfields/internal/mapping"
	"customfields/internal/match"
	"customfields/internal/schema"
)

// maxSuggestions caps label suggestions per orphaned field.
const maxSuggestions = 3

// MigratedField is an orphaned value moved onto a current field by a rule.
type MigratedField struct {
	Source field.SavedValue `yaml:"source" json:"source"`
	// Target carries the new field's identity, metadata and the
	// transformed value.
	Target field.SavedValue `yaml:"target" json:"target"`
	Key    string           `yaml:"key" json:"key"`
	Rule   string           `yaml:"rule" json:"rule"`
}

// OrphanedField is a saved value with no place in the current schema that
// no rule could migrate.
type OrphanedField struct {
	Saved  field.SavedValue     `yaml:"saved" json:"saved"`
	Reason mapping.OrphanReason `yaml:"reason" json:"reason"`
	Age    time.Duration        `yaml:"age" json:"age"`
	// Suggestions lists current labels resembling the saved label.
	Suggestions []string `yaml:"suggestions,omitempty" json:"suggestions,omitempty"`
}

// ExpiredField is an unmapped value older than the retention window.
type ExpiredField struct {
	Saved field.SavedValue `yaml:"saved" json:"saved"`
	Age   time.Duration    `yaml:"age" json:"age"`
}

// Result is the outcome of analyzing one record against one schema.
type Result struct {
	SchemaID       string                `yaml:"schema_id" json:"schema_id"`
	SchemaVersion  int                   `yaml:"schema_version,omitempty" json:"schema_version,omitempty"`
	Changes        []Change              `yaml:"changes" json:"changes"`
	ValidFields    []mapping.MappedField `yaml:"valid_fields" json:"valid_fields"`
	MigratedFields []MigratedField       `yaml:"migrated_fields" json:"migrated_fields"`
	OrphanedFields []OrphanedField       `yaml:"orphaned_fields" json:"orphaned_fields"`
	Expired        []ExpiredField        `yaml:"expired" json:"expired"`
}

// HasChanges reports whether the record differs from the schema in any way.
func (r *Result) HasChanges() bool {
	return len(r.Changes) > 0
}

// Analyze compares saved against current. Mapped values are valid, stale
// unmapped values expire, and the rest are offered to rules in order when
// cfg.AutoMigrate is set. Whatever no rule claims is orphaned.
func Analyze(saved *field.FormData, current *schema.Schema, cfg config.Config, rules []Rule) Result {
	log := cfg.Log()
	fields := field.BuildSchemaMap(current)

	// Analysis sees every unmapped value. Expiry is decided by age alone.
	mcfg := cfg
	mcfg.ShowOrphanedFields = true
	m := mapping.MapWith(saved, fields, mcfg)

	res := Result{SchemaID: fields.SchemaID()}
	if current != nil {
		res.SchemaVersion = current.Version
	}

	occupied := map[string]bool{}

	for _, mf := range m.Mapped {
		occupied[mf.Key] = true
		res.ValidFields = append(res.ValidFields, mf)
		res.Changes = append(res.Changes, fieldChanges(mf)...)
	}

	var migrated, orphaned, expired []Change

	expire := func(v field.SavedValue, age time.Duration, what string) {
		log.Debug("orphaned field expired",
			zap.String("field_id", v.FieldID),
			zap.Duration("age", age))
		res.Expired = append(res.Expired, ExpiredField{Saved: v, Age: age})
		expired = append(expired, Change{
			Kind:    ChangeFieldExpired,
			FieldID: v.FieldID,
			Label:   v.Metadata.Label,
			Detail:  fmt.Sprintf("%s older than %d days", what, cfg.OrphanedFieldMaxAge),
		})
	}

	for _, d := range m.Dropped {
		expire(d.Saved, d.Age, "removed field")
	}

	labels := fields.Labels()

	for _, o := range m.Orphaned {
		// Mapping orphans malformed identities regardless of age.
		if o.Reason == mapping.ReasonMalformedIdentity && o.Age > cfg.MaxAge() {
			expire(o.Saved, o.Age, "malformed entry")

			continue
		}

		if cfg.AutoMigrate {
			if mig, ok := migrate(o.Saved, fields, occupied, rules, cfg); ok {
				occupied[mig.Key] = true
				res.MigratedFields = append(res.MigratedFields, mig)
				migrated = append(migrated, Change{
					Kind:    ChangeFieldMigrated,
					FieldID: o.Saved.FieldID,
					Label:   o.Saved.Metadata.Label,
					Detail:  fmt.Sprintf("moved to %q by rule %s", mig.Target.Metadata.Label, mig.Rule),
				})

				continue
			}
		}

		res.OrphanedFields = append(res.OrphanedFields, OrphanedField{
			Saved:       o.Saved,
			Reason:      o.Reason,
			Age:         o.Age,
			Suggestions: match.SuggestionLabels(match.SuggestLabels(o.Saved.Metadata.Label, labels, match.DefaultSuggestionThreshold, maxSuggestions)),
		})
		orphaned = append(orphaned, Change{
			Kind:    ChangeFieldRemoved,
			FieldID: o.Saved.FieldID,
			Label:   o.Saved.Metadata.Label,
			Detail:  orphanDetail(o.Reason),
		})
	}

	res.Changes = append(res.Changes, migrated...)
	res.Changes = append(res.Changes, orphaned...)
	res.Changes = append(res.Changes, expired...)

	for _, mf := range m.Missing {
		if occupied[mf.Key] {
			continue
		}

		res.Changes = append(res.Changes, Change{
			Kind:    ChangeFieldAdded,
			FieldID: mf.Metadata.FieldID,
			Label:   mf.Metadata.Label,
			Detail:  fmt.Sprintf("new %s field with no saved value", mf.Metadata.Kind),
		})
	}

	log.Debug("schema evolution analyzed",
		zap.String("schema_id", res.SchemaID),
		zap.Int("valid", len(res.ValidFields)),
		zap.Int("migrated", len(res.MigratedFields)),
		zap.Int("orphaned", len(res.OrphanedFields)),
		zap.Int("expired", len(res.Expired)))

	return res
}

// migrate tries rules in order and returns the first successful migration.
func migrate(
	v field.SavedValue,
	fields *field.SchemaMap,
	occupied map[string]bool,
	rules []Rule,
	cfg config.Config,
) (MigratedField, bool) {
	log := cfg.Log()

	for _, rule := range rules {
		if !rule.From.Matches(v.Metadata) {
			continue
		}

		target, ok := fields.FindByLabel(rule.targetLabel(v.Metadata))
		if !ok {
			continue
		}

		if rule.To.Kind != "" && target.Kind != rule.To.Kind {
			continue
		}

		key := target.Position().Key()
		if occupied[key] {
			log.Debug("migration target already holds a value",
				zap.String("rule", rule.Name),
				zap.String("position", key))

			continue
		}

		value, err := rule.transform(v.Value)
		if err != nil {
			log.Debug("migration transform failed",
				zap.String("rule", rule.Name),
				zap.String("field_id", v.FieldID),
				zap.Error(err))

			continue
		}

		now := cfg.Now()
		if cfg.IncludeTimestamp {
			target.FieldID = field.Generate(target.SchemaID, target.RowID, target.ColumnID, now.UnixMilli()).String()
		}

		log.Debug("field migrated",
			zap.String("rule", rule.Name),
			zap.String("from", v.FieldID),
			zap.String("to", target.FieldID))

		return MigratedField{
			Source: v,
			Target: field.SavedValue{
				FieldID:  target.FieldID,
				Value:    value,
				Metadata: target,
				SavedAt:  now,
			},
			Key:  key,
			Rule: rule.Name,
		}, true
	}

	return MigratedField{}, false
}

func fieldChanges(mf mapping.MappedField) []Change {
	var out []Change

	id := mf.Saved.FieldID

	if mf.LabelChanged() {
		out = append(out, Change{
			Kind:    ChangeLabelChanged,
			FieldID: id,
			Label:   mf.Current.Label,
			Detail:  fmt.Sprintf("label %q renamed to %q", mf.Previous.Label, mf.Current.Label),
		})
	}

	if mf.KindChanged() {
		out = append(out, Change{
			Kind:    ChangeTypeChanged,
			FieldID: id,
			Label:   mf.Current.Label,
			Detail:  fmt.Sprintf("type %s changed to %s", mf.Previous.Kind, mf.Current.Kind),
		})
	}

	if mf.RequiredChanged() {
		detail := "field is no longer required"
		if mf.Current.Required {
			detail = "field is now required"
		}

		out = append(out, Change{
			Kind:    ChangeRequiredChanged,
			FieldID: id,
			Label:   mf.Current.Label,
			Detail:  detail,
		})
	}

	return out
}

func orphanDetail(reason mapping.OrphanReason) string {
	if reason == mapping.ReasonMalformedIdentity {
		return "saved identity is malformed"
	}

	return "field no longer exists in the schema"
}
