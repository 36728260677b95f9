package schema

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customfields/internal/document"
)

const membersYAML = `
id: members
version: 2
rows:
  - id: r1
    columns:
      - id: c1
        field:
          id: cmp-email
          type: Email
          label: "  Email  "
          required: true
      - id: c2
  - id: r2
    columns:
      - id: c1
        field:
          type: select
          label: Ministry
          options:
            - Choir
            - {value: yth, label: Youth}
      - id: c2
        field:
          type: file
          label: Baptism Certificate
          file:
            accept: [".pdf", "image/*"]
            max_size_bytes: 1048576
`

func TestParse_YAML(t *testing.T) {
	s, err := Parse([]byte(membersYAML), document.FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "members", s.ID)
	assert.Equal(t, 2, s.Version)
	require.Len(t, s.Rows, 2)
	assert.Equal(t, 3, s.FieldCount())

	email, ok := s.FieldAt("r1", "c1")
	require.True(t, ok)
	assert.Equal(t, KindEmail, email.Type, "kind names are normalized")
	assert.Equal(t, "Email", email.Label)
	assert.True(t, email.Required)

	_, ok = s.FieldAt("r1", "c2")
	assert.False(t, ok, "empty column has no field")

	ministry, ok := s.FieldAt("r2", "c1")
	require.True(t, ok)
	assert.Equal(t, Options{{Value: "Choir"}, {Value: "yth", Label: "Youth"}}, ministry.Options)
	assert.Equal(t, "Youth", ministry.Options[1].DisplayLabel())
	assert.Equal(t, "Choir", ministry.Options[0].DisplayLabel())

	file, ok := s.FieldAt("r2", "c2")
	require.True(t, ok)
	require.NotNil(t, file.File)
	assert.Equal(t, []string{".pdf", "image/*"}, file.File.Accept)
	assert.EqualValues(t, 1048576, file.File.MaxSizeBytes)
}

func TestParse_JSON(t *testing.T) {
	data := `{"id":"S1","rows":[{"id":"r1","columns":[{"id":"c1","field":{"type":"radio","label":"Color","options":["red",{"value":"bl","label":"Blue"}]}}]}]}`

	s, err := Parse([]byte(data), document.FormatJSON)
	require.NoError(t, err)

	f, ok := s.FieldAt("r1", "c1")
	require.True(t, ok)
	assert.Equal(t, KindRadio, f.Type)
	assert.Equal(t, []string{"red", "bl"}, f.Options.Values())
}

func TestParse_TOML(t *testing.T) {
	data := `
id = "S1"

[[rows]]
id = "r1"

[[rows.columns]]
id = "c1"

[rows.columns.field]
type = "checkbox"
label = "Gifts"
options = ["music", { value = "tch", label = "Teaching" }]
`

	s, err := Parse([]byte(data), document.FormatTOML)
	require.NoError(t, err)

	f, ok := s.FieldAt("r1", "c1")
	require.True(t, ok)
	assert.Equal(t, KindCheckbox, f.Type)
	assert.True(t, f.Options.Contains("tch"))
	assert.False(t, f.Options.Contains("Teaching"))
}

func TestParse_InvalidOption(t *testing.T) {
	data := `
id: S1
rows:
  - id: r1
    columns:
      - id: c1
        field:
          type: select
          options: [[nested]]
`
	_, err := Parse([]byte(data), document.FormatYAML)
	require.Error(t, err)
}

func TestSchema_Empty(t *testing.T) {
	var nilSchema *Schema
	assert.True(t, nilSchema.Empty())
	assert.True(t, (&Schema{ID: "x"}).Empty())
	assert.Equal(t, 0, nilSchema.FieldCount())
}

func TestSchema_Clone(t *testing.T) {
	s, err := Parse([]byte(membersYAML), document.FormatYAML)
	require.NoError(t, err)

	c := s.Clone()
	c.Rows[1].Columns[0].Field.Options[0].Value = "changed"
	c.Rows[1].Columns[1].Field.File.Accept[0] = ".doc"

	orig, _ := s.FieldAt("r2", "c1")
	assert.Equal(t, "Choir", orig.Options[0].Value)

	file, _ := s.FieldAt("r2", "c2")
	assert.Equal(t, ".pdf", file.File.Accept[0])
}

func TestLoadWriteFile(t *testing.T) {
	s, err := Parse([]byte(membersYAML), document.FormatYAML)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "schema.json")
	require.NoError(t, WriteFile(s, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestKind(t *testing.T) {
	for _, k := range Kinds {
		assert.True(t, k.Known(), k)
	}

	assert.False(t, Kind("signature").Known())
	assert.Equal(t, KindTextarea, ParseKind(" TextArea "))
	assert.True(t, KindCheckbox.HasOptions())
	assert.True(t, KindCheckbox.IsMultiValued())
	assert.False(t, KindRadio.IsMultiValued())
	assert.False(t, KindText.HasOptions())
}
