// Package evolution reconciles saved form data with a changed schema:
// it ages out stale orphans, migrates orphaned values onto renamed or
// retyped fields by rule, and reports what changed.
//
// # Rules
//
// A Rule pairs a pattern on the saved field (type and/or label) with a
// target in the current schema, found by exact label equality, and an
// optional value transform. Rules are tried strictly in order for each
// orphaned value; the first rule whose pattern matches and whose target
// exists and holds no value wins. A transform that fails or panics counts
// as no match.
//
// Renaming a target label in the schema silently stops rules that name it
// from matching. Rules are not updated automatically.
//
// # Applying
//
// Analyze only reports. Apply turns an analysis into a new record holding
// the valid and migrated values; orphaned and expired values are left out of
// the returned record. Re-analyzing that record against the same schema
// yields no further migrations.
package evolution
