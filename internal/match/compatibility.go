package match

import (
	"customfields/internal/schema"
)

// KindCompatibility represents how well a value saved under one field kind
// fits a field of another kind.
type KindCompatibility int

const (
	// KindIncompatible means the value cannot be shown in the target field.
	KindIncompatible KindCompatibility = iota
	// KindCompatible means the value is usable as-is in the target field.
	KindCompatible
	// KindIdentical means both kinds are the same.
	KindIdentical
)

const (
	VerdictIdentical    = "identical"
	VerdictCompatible   = "compatible"
	VerdictIncompatible = "incompatible"
)

// String returns a human-readable name for the compatibility level.
func (c KindCompatibility) String() string {
	switch c {
	case KindIdentical:
		return VerdictIdentical
	case KindCompatible:
		return VerdictCompatible
	case KindIncompatible:
		return VerdictIncompatible
	default:
		return "unknown"
	}
}

// Score returns a numeric score for sorting (higher is better).
func (c KindCompatibility) Score() int {
	return int(c)
}

// compatibleKinds lists, per saved kind, the current kinds that can display
// the saved value without conversion.
var compatibleKinds = map[schema.Kind][]schema.Kind{
	schema.KindText:     {schema.KindTextarea, schema.KindEmail, schema.KindPhone},
	schema.KindTextarea: {schema.KindText},
	schema.KindEmail:    {schema.KindText, schema.KindTextarea},
	schema.KindPhone:    {schema.KindText, schema.KindTextarea},
	schema.KindNumber:   {schema.KindText, schema.KindTextarea},
	schema.KindDate:     {schema.KindText, schema.KindTextarea},
	schema.KindSelect:   {schema.KindRadio, schema.KindText},
	schema.KindRadio:    {schema.KindSelect, schema.KindText},
	schema.KindCheckbox: {schema.KindSelect},
}

// KindCompatibilityResult contains detailed information about compatibility.
type KindCompatibilityResult struct {
	Compatibility KindCompatibility
	Reason        string
	SavedKind     schema.Kind
	CurrentKind   schema.Kind
}

// ScoreKindCompatibility determines whether a value saved under saved can
// be shown in a field currently of kind current.
func ScoreKindCompatibility(saved, current schema.Kind) KindCompatibilityResult {
	res := KindCompatibilityResult{SavedKind: saved, CurrentKind: current}

	switch {
	case saved == current:
		res.Compatibility = KindIdentical
		res.Reason = "kinds are identical"
	case IsCompatible(saved, current):
		res.Compatibility = KindCompatible
		res.Reason = "saved " + saved.String() + " value fits a " + current.String() + " field"
	default:
		res.Compatibility = KindIncompatible
		res.Reason = "saved " + saved.String() + " value does not fit a " + current.String() + " field"
	}

	return res
}

// IsCompatible returns true if saved and current are identical or listed in
// the compatibility table.
func IsCompatible(saved, current schema.Kind) bool {
	if saved == current {
		return true
	}

	for _, k := range compatibleKinds[saved] {
		if k == current {
			return true
		}
	}

	return false
}
