package evolution

//go:generate go tool stringer -type=ChangeKind -linecomment -output=changekind_string.go

// ChangeKind classifies a detected difference between saved data and the
// current schema.
type ChangeKind int

const (
	ChangeFieldAdded      ChangeKind = iota // field_added
	ChangeFieldRemoved                      // field_removed
	ChangeFieldExpired                      // field_expired
	ChangeFieldMigrated                     // field_migrated
	ChangeLabelChanged                      // label_changed
	ChangeTypeChanged                       // type_changed
	ChangeRequiredChanged                   // required_changed
)

// MarshalText renders the change kind name in YAML and JSON output.
func (k ChangeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Change is one detected difference.
type Change struct {
	Kind    ChangeKind `yaml:"kind" json:"kind"`
	FieldID string     `yaml:"field_id,omitempty" json:"field_id,omitempty"`
	Label   string     `yaml:"label,omitempty" json:"label,omitempty"`
	Detail  string     `yaml:"detail" json:"detail"`
}
