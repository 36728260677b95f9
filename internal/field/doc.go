// Package field provides persistent field identities, field metadata
// snapshots, saved form data, and the schema field map.
//
// An identity renders as
//
//	{schemaId}_{rowId}_{columnId}_{created}
//
// The first three segments form the position key, which is the real basis
// of "sameness" across schema edits. The created marker only keeps
// identities distinct; it never takes part in matching.
package field
