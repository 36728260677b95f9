// Package diagnostic provides structured errors and warnings
// produced while mapping, validating and evolving saved form data.
//
// Key capabilities:
//   - Field-level errors and warnings tagged with identity and label
//   - Form-level (global) messages
//   - Stable codes for programmatic handling
package diagnostic
