package schema

import "strings"

// Kind is the type of a field definition.
type Kind string

const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindEmail    Kind = "email"
	KindPhone    Kind = "phone"
	KindNumber   Kind = "number"
	KindDate     Kind = "date"
	KindSelect   Kind = "select"
	KindRadio    Kind = "radio"
	KindCheckbox Kind = "checkbox"
	KindFile     Kind = "file"
)

// Kinds lists every known kind.
var Kinds = []Kind{
	KindText, KindTextarea, KindEmail, KindPhone, KindNumber,
	KindDate, KindSelect, KindRadio, KindCheckbox, KindFile,
}

// ParseKind normalizes a type name. Unknown names are kept as-is so that
// documents written by newer form builders still round-trip.
func ParseKind(s string) Kind {
	return Kind(strings.ToLower(strings.TrimSpace(s)))
}

// Known returns true if k is one of the kinds this package understands.
func (k Kind) Known() bool {
	switch k {
	case KindText, KindTextarea, KindEmail, KindPhone, KindNumber,
		KindDate, KindSelect, KindRadio, KindCheckbox, KindFile:
		return true
	default:
		return false
	}
}

// HasOptions returns true for kinds whose values are chosen from a list.
func (k Kind) HasOptions() bool {
	return k == KindSelect || k == KindRadio || k == KindCheckbox
}

// IsMultiValued returns true for kinds that store a list of values.
func (k Kind) IsMultiValued() bool {
	return k == KindCheckbox
}

func (k Kind) String() string {
	return string(k)
}
