// Package validate applies type-specific rules to saved field values.
//
// Errors make a field (and the form) invalid; warnings never do. A required
// field with an empty value fails immediately and skips every other check.
// An optional empty value is always valid.
//
// At form level, a required schema field with no saved value at all raises
// a global error, and orphaned values raise a single global warning. Orphaned
// data never blocks saving or viewing a record.
package validate
