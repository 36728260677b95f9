package flatten

import (
	"fmt"

	"customfields/internal/diagnostic"
	"customfields/internal/field"
	"customfields/internal/match"
	"customfields/internal/schema"
)

// MatchKind tells how a flat value was matched to the current field.
type MatchKind string

const (
	MatchNone       MatchKind = ""
	MatchComponent  MatchKind = "component_id"
	MatchCompatible MatchKind = "type_compatible"
)

// Entry is the check outcome for one flat value.
type Entry struct {
	Key   string         `yaml:"key" json:"key"`
	Value FlatValue      `yaml:"value" json:"value"`
	Field field.Metadata `yaml:"field,omitempty" json:"field,omitempty"`
	Valid bool           `yaml:"valid" json:"valid"`
	Match MatchKind      `yaml:"match,omitempty" json:"match,omitempty"`
	// Code and Reason explain a rejection.
	Code   string `yaml:"code,omitempty" json:"code,omitempty"`
	Reason string `yaml:"reason,omitempty" json:"reason,omitempty"`
}

// Result partitions flat values by whether they still fit the schema.
// Both lists are in key order.
type Result struct {
	Valid   []Entry `yaml:"valid" json:"valid"`
	Invalid []Entry `yaml:"invalid" json:"invalid"`
}

// Validate checks every flat value against the field currently at its row
// and column. A value fits when its component id equals the field's, or
// when its saved type is compatible with the field's current type.
func Validate(flat FlatData, current *schema.Schema) Result {
	slots := newSlotIndex(current)

	var res Result

	for _, key := range flat.SortedKeys() {
		entry := slots.check(key, flat[key])
		if entry.Valid {
			res.Valid = append(res.Valid, entry)
		} else {
			res.Invalid = append(res.Invalid, entry)
		}
	}

	return res
}

type slotIndex struct {
	fields *field.SchemaMap
	bySlot map[string]field.Metadata
}

func newSlotIndex(current *schema.Schema) slotIndex {
	idx := slotIndex{
		fields: field.BuildSchemaMap(current),
		bySlot: map[string]field.Metadata{},
	}

	idx.fields.Each(func(_ string, md field.Metadata) {
		idx.bySlot[md.Position().SlotKey()] = md
	})

	return idx
}

func (idx slotIndex) check(key string, fv FlatValue) Entry {
	entry := Entry{Key: key, Value: fv}

	md, ok := idx.bySlot[field.SlotKey(fv.RowID, fv.ColumnID)]
	if !ok {
		entry.Code = diagnostic.CodeUnknownPosition
		entry.Reason = fmt.Sprintf("no field at row %s column %s", fv.RowID, fv.ColumnID)
		return entry
	}

	entry.Field = md

	switch {
	case fv.ComponentID != "" && fv.ComponentID == md.ComponentID:
		entry.Valid = true
		entry.Match = MatchComponent
	case match.IsCompatible(fv.ComponentType, md.Kind):
		entry.Valid = true
		entry.Match = MatchCompatible
	default:
		entry.Code = diagnostic.CodeIncompatibleType
		entry.Reason = match.ScoreKindCompatibility(fv.ComponentType, md.Kind).Reason
	}

	return entry
}
