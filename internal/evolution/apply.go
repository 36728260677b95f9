package evolution

import (
	"go.uber.org/zap"

	"customfields/internal/config"
	"customfields/internal/field"
)

// Apply builds the healed record for an analysis of saved: valid values
// keep their identity and saved metadata, migrated values appear under
// their new identity. Orphaned and expired values are not carried over.
// saved is not modified.
func Apply(saved *field.FormData, result Result, cfg config.Config) field.FormData {
	out := field.FormData{
		SchemaID:      result.SchemaID,
		SchemaVersion: result.SchemaVersion,
		SavedAt:       cfg.Now(),
		Fields:        make(map[string]field.SavedValue, len(result.ValidFields)+len(result.MigratedFields)),
	}

	if out.SchemaID == "" && saved != nil {
		out.SchemaID = saved.SchemaID
	}

	for _, mf := range result.ValidFields {
		v := mf.Saved
		if v.SavedAt.IsZero() && saved != nil {
			v.SavedAt = saved.SavedAt
		}

		out.Fields[v.FieldID] = v
	}

	for _, mig := range result.MigratedFields {
		out.Fields[mig.Target.FieldID] = mig.Target
	}

	cfg.Log().Debug("schema evolution applied",
		zap.String("schema_id", out.SchemaID),
		zap.Int("fields", len(out.Fields)),
		zap.Int("purged", len(result.OrphanedFields)+len(result.Expired)))

	return out
}
