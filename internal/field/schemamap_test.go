package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customfields/internal/schema"
)

func testSchema() *schema.Schema {
	return &schema.Schema{
		ID: "S1",
		Rows: []schema.Row{
			{ID: "r1", Columns: []schema.Column{
				{ID: "c1", Field: &schema.FieldDefinition{ID: "cmp1", Type: schema.KindEmail, Label: "Email", Required: true, CreatedAt: 1000}},
				{ID: "c2"},
			}},
			{ID: "r2", Columns: []schema.Column{
				{ID: "c1", Field: &schema.FieldDefinition{Type: schema.KindText}},
				{ID: "c2", Field: &schema.FieldDefinition{
					Type:    schema.KindSelect,
					Label:   "Ministry",
					Options: schema.Options{{Value: "choir"}},
					File:    nil,
				}},
			}},
		},
	}
}

func TestExtractMetadata_Defaults(t *testing.T) {
	md := ExtractMetadata(&schema.FieldDefinition{Type: schema.KindText}, "S1", "r1", "c1")

	assert.Equal(t, schema.DefaultLabel, md.Label)
	assert.False(t, md.Required)
	assert.Equal(t, "S1_r1_c1_0", md.FieldID)
	assert.Equal(t, Position{SchemaID: "S1", RowID: "r1", ColumnID: "c1"}, md.Position())
}

func TestExtractMetadata_ExplicitIdentity(t *testing.T) {
	def := &schema.FieldDefinition{
		ID:       "cmp",
		Type:     schema.KindFile,
		Label:    "Photo",
		Required: true,
		File:     &schema.FileConstraints{Accept: []string{".jpg"}},
	}

	md := ExtractMetadata(def, "S1", "r1", "c1", "S1_r1_c1_77")
	assert.Equal(t, "S1_r1_c1_77", md.FieldID)
	assert.Equal(t, "cmp", md.ComponentID)
	assert.Equal(t, "Photo", md.Label)
	assert.True(t, md.Required)

	md.File.Accept[0] = ".png"
	assert.Equal(t, ".jpg", def.File.Accept[0], "metadata must not alias the definition")
}

func TestExtractMetadata_NilDefinition(t *testing.T) {
	md := ExtractMetadata(nil, "S1", "r1", "c1")
	assert.Equal(t, schema.DefaultLabel, md.Label)
}

func TestBuildSchemaMap(t *testing.T) {
	m := BuildSchemaMap(testSchema())

	assert.Equal(t, "S1", m.SchemaID())
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"S1_r1_c1", "S1_r2_c1", "S1_r2_c2"}, m.Keys())

	md, ok := m.Lookup(Position{SchemaID: "S1", RowID: "r1", ColumnID: "c1"})
	require.True(t, ok)
	assert.Equal(t, "S1_r1_c1_1000", md.FieldID)
	assert.Equal(t, "Email", md.Label)

	_, ok = m.Get("S1_r1_c2")
	assert.False(t, ok, "empty columns are skipped")

	found, ok := m.FindByLabel("Ministry")
	require.True(t, ok)
	assert.Equal(t, "r2", found.RowID)

	_, ok = m.FindByLabel("ministry")
	assert.False(t, ok, "label lookup is exact")

	assert.Equal(t, []string{"Email", schema.DefaultLabel, "Ministry"}, m.Labels())

	var visited []string
	m.Each(func(key string, _ Metadata) { visited = append(visited, key) })
	assert.Equal(t, m.Keys(), visited)
}

func TestBuildSchemaMap_EmptySchema(t *testing.T) {
	assert.Equal(t, 0, BuildSchemaMap(nil).Len())
	assert.Equal(t, 0, BuildSchemaMap(&schema.Schema{ID: "S1"}).Len())
}
