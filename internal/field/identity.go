package field

import (
	"strconv"
	"strings"
	"time"
)

const separator = "_"

var (
	segmentEscaper   = strings.NewReplacer("%", "%25", "_", "%5F")
	segmentUnescaper = strings.NewReplacer("%5F", "_", "%5f", "_", "%25", "%")
)

// Identity identifies a field slot across saves.
type Identity struct {
	SchemaID string
	RowID    string
	ColumnID string
	// Created is a creation marker in unix milliseconds.
	Created int64
}

// Position is the (schema, row, column) part of an identity.
type Position struct {
	SchemaID string
	RowID    string
	ColumnID string
}

// Generate builds an identity. When created is omitted the current time
// is used; two identities generated for the same slot within the same
// millisecond are indistinguishable.
func Generate(schemaID, rowID, columnID string, created ...int64) Identity {
	ts := time.Now().UnixMilli()
	if len(created) > 0 {
		ts = created[0]
	}

	return Identity{SchemaID: schemaID, RowID: rowID, ColumnID: columnID, Created: ts}
}

// ParseIdentity parses a rendered identity. It never panics; the boolean is
// false for anything that is not four non-empty segments with a numeric
// last segment.
func ParseIdentity(s string) (Identity, bool) {
	parts := strings.Split(s, separator)
	if len(parts) != 4 {
		return Identity{}, false
	}

	for _, p := range parts {
		if p == "" {
			return Identity{}, false
		}
	}

	created, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return Identity{}, false
	}

	return Identity{
		SchemaID: unescape(parts[0]),
		RowID:    unescape(parts[1]),
		ColumnID: unescape(parts[2]),
		Created:  created,
	}, true
}

// String renders the identity.
func (id Identity) String() string {
	return id.Position().Key() + separator + strconv.FormatInt(id.Created, 10)
}

// Position returns the position part of the identity.
func (id Identity) Position() Position {
	return Position{SchemaID: id.SchemaID, RowID: id.RowID, ColumnID: id.ColumnID}
}

// Key renders the position key schemaId_rowId_columnId.
func (p Position) Key() string {
	return escape(p.SchemaID) + separator + escape(p.RowID) + separator + escape(p.ColumnID)
}

// SlotKey renders the schema-independent rowId_columnId key.
func (p Position) SlotKey() string {
	return SlotKey(p.RowID, p.ColumnID)
}

// SlotKey renders rowId_columnId.
func SlotKey(rowID, columnID string) string {
	return escape(rowID) + separator + escape(columnID)
}

func escape(segment string) string {
	return segmentEscaper.Replace(segment)
}

func unescape(segment string) string {
	return segmentUnescaper.Replace(segment)
}
