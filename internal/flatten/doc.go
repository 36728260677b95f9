// Package flatten converts saved form data to and from a flat,
// position-keyed shape used for storage and display.
//
// Flat entries are keyed by row and column only. They carry the component
// id and type they were saved with, and are re-checked against the current
// schema by component id first and by type compatibility second. This is
// looser than identity mapping: a text value still fits a column that now
// holds an email field. The two schemes must not be mixed.
package flatten
