package evolution

import (
	"fmt"
	"strings"
	"time"

	"customfields/internal/common"
)

// Report renders a human-readable summary of an analysis. The output
// depends only on result.
func Report(result Result) string {
	var sb strings.Builder

	schemaID := result.SchemaID
	if schemaID == "" {
		schemaID = common.UnknownStr
	}

	sb.WriteString(fmt.Sprintf("=== Schema evolution: %s (version %d) ===\n", schemaID, result.SchemaVersion))
	sb.WriteString(fmt.Sprintf("Valid: %d, Migrated: %d, Orphaned: %d, Expired: %d, Changes: %d\n",
		len(result.ValidFields), len(result.MigratedFields), len(result.OrphanedFields),
		len(result.Expired), len(result.Changes)))

	if len(result.MigratedFields) > 0 {
		sb.WriteString("\nMigrated fields:\n")

		for _, m := range result.MigratedFields {
			sb.WriteString(fmt.Sprintf("  ✓ %s -> %s (rule %s)\n",
				common.Quote(m.Source.Metadata.Label), common.Quote(m.Target.Metadata.Label), m.Rule))
		}
	}

	if len(result.OrphanedFields) > 0 {
		sb.WriteString("\nOrphaned fields (kept, not shown on the form):\n")

		for _, o := range result.OrphanedFields {
			sb.WriteString(fmt.Sprintf("  ✗ %s [%s] %s, %s\n",
				common.Quote(o.Saved.Metadata.Label), o.Saved.FieldID, o.Reason, days(o.Age)))

			if len(o.Suggestions) > 0 {
				sb.WriteString(fmt.Sprintf("    Did you mean: %s?\n", strings.Join(o.Suggestions, ", ")))
			}
		}
	}

	if len(result.Expired) > 0 {
		sb.WriteString("\nExpired fields (dropped):\n")

		for _, e := range result.Expired {
			sb.WriteString(fmt.Sprintf("  - %s [%s] %s\n",
				common.Quote(e.Saved.Metadata.Label), e.Saved.FieldID, days(e.Age)))
		}
	}

	if result.HasChanges() {
		sb.WriteString("\nChanges:\n")

		for _, c := range result.Changes {
			sb.WriteString(fmt.Sprintf("  %s %s: %s\n", c.Kind, common.Quote(c.Label), c.Detail))
		}
	} else {
		sb.WriteString("\nNo changes.\n")
	}

	return sb.String()
}

func days(age time.Duration) string {
	n := int(age / (24 * time.Hour))
	if n == 1 {
		return "1 day old"
	}

	return fmt.Sprintf("%d days old", n)
}
