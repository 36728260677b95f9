// Package mapping reconciles previously saved field values against the
// current schema.
//
// Every saved value lands in exactly one of:
//
//   - Mapped: its position still exists in the schema. Both the saved and
//     the current metadata are kept so callers can show that a label or
//     required flag changed.
//   - Orphaned: its position is gone (or its identity is malformed), and it
//     is recent enough to still be shown.
//   - Dropped: its position is gone and it is older than the retention
//     window, or orphans are hidden. Dropped values appear in none of the
//     three classifications.
//
// Schema positions with no saved value are reported as Missing.
//
// # Known limitation
//
// Two saved values can share a position key when administrators reuse row
// and column identifiers after an edit. Values are processed in ascending
// identity order and the later one wins; the earlier one is silently
// replaced. This is not corrected here.
package mapping
