package validate

import (
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customfields/internal/config"
	"customfields/internal/diagnostic"
	"customfields/internal/field"
	"customfields/internal/schema"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Clock = config.FixedClock(now)

	return cfg
}

func s1Schema() *schema.Schema {
	return &schema.Schema{ID: "S1", Rows: []schema.Row{
		{ID: "r1", Columns: []schema.Column{
			{ID: "c1", Field: &schema.FieldDefinition{Type: schema.KindEmail, Label: "Email", Required: true}},
		}},
	}}
}

func recordWith(id string, value any, savedAt time.Time) *field.FormData {
	return &field.FormData{
		SchemaID: "S1",
		SavedAt:  savedAt,
		Fields: map[string]field.SavedValue{
			id: {FieldID: id, Value: value, SavedAt: savedAt},
		},
	}
}

func TestForm_EmailScenario(t *testing.T) {
	cfg := testConfig()

	res := Form(recordWith("S1_r1_c1_1000", "not-an-email", now), s1Schema(), cfg)
	assert.False(t, res.IsValid)
	require.Contains(t, res.Fields, "S1_r1_c1_1000")

	fr := res.Fields["S1_r1_c1_1000"]
	require.Len(t, fr.Errors, 1, spew.Sdump(fr))
	assert.Contains(t, fr.Errors[0].Message, "Email")
	assert.Equal(t, 1, res.Summary.InvalidFields)

	res = Form(recordWith("S1_r1_c1_1000", "a@b.com", now), s1Schema(), cfg)
	assert.True(t, res.IsValid, spew.Sdump(res))
	assert.Equal(t, Summary{TotalFields: 1, ValidFields: 1}, res.Summary)
}

func TestForm_RequiredMissingInvalidatesForm(t *testing.T) {
	res := Form(&field.FormData{SchemaID: "S1"}, s1Schema(), testConfig())

	assert.False(t, res.IsValid)
	assert.Empty(t, res.Fields, "there is no value to validate")
	require.Len(t, res.GlobalErrors, 1)
	assert.Equal(t, diagnostic.CodeMissingRequired, res.GlobalErrors[0].Code)
	assert.Contains(t, res.GlobalErrors[0].Message, "Email")
	assert.GreaterOrEqual(t, res.Summary.MissingRequired, 1)
}

func TestForm_RequiredEmptyValueCountsAsMissing(t *testing.T) {
	res := Form(recordWith("S1_r1_c1_1000", "", now), s1Schema(), testConfig())

	assert.False(t, res.IsValid)
	assert.Equal(t, 1, res.Summary.MissingRequired)
	assert.Empty(t, res.GlobalErrors)
}

func TestForm_OrphansOnlyWarn(t *testing.T) {
	saved := recordWith("S1_r1_c1_1000", "a@b.com", now)
	saved.Fields["S1_r7_c1_1000"] = field.SavedValue{FieldID: "S1_r7_c1_1000", Value: "old", SavedAt: now}
	saved.Fields["garbage"] = field.SavedValue{FieldID: "garbage", Value: "x", SavedAt: now}

	res := Form(saved, s1Schema(), testConfig())

	assert.True(t, res.IsValid)
	require.Len(t, res.GlobalWarnings, 1)
	assert.Equal(t, diagnostic.CodeOrphanedFields, res.GlobalWarnings[0].Code)
	assert.Contains(t, res.GlobalWarnings[0].Message, "2 saved fields")
	assert.Equal(t, 2, res.Summary.Orphaned)
	assert.Equal(t, 1, res.Summary.Warnings)
}

func TestForm_UsesCurrentMetadata(t *testing.T) {
	s := s1Schema()
	s.Rows[0].Columns = append(s.Rows[0].Columns, schema.Column{
		ID:    "c2",
		Field: &schema.FieldDefinition{Type: schema.KindPhone, Label: "Mobile"},
	})

	saved := recordWith("S1_r1_c1_1000", "a@b.com", now)
	saved.Fields["S1_r1_c2_1000"] = field.SavedValue{
		FieldID:  "S1_r1_c2_1000",
		Value:    "nope",
		Metadata: field.Metadata{Label: "Phone", Kind: schema.KindText},
		SavedAt:  now,
	}

	res := Form(saved, s, testConfig())
	assert.True(t, res.IsValid)

	fr := res.Fields["S1_r1_c2_1000"]
	require.Len(t, fr.Warnings, 1, "validated as the current phone kind")
	assert.Equal(t, "Mobile", fr.Label)
	assert.Equal(t, "S1_r1_c2_1000", fr.FieldID)

	d := res.Diagnostics()
	assert.True(t, d.IsValid())
	assert.Len(t, d.Warnings, 1)
}

func TestForm_EmptySchema(t *testing.T) {
	res := Form(recordWith("S1_r1_c1_1000", "a@b.com", now), &schema.Schema{ID: "S1"}, testConfig())

	assert.True(t, res.IsValid, "nothing valid, nothing blocking")
	assert.Equal(t, 0, res.Summary.TotalFields)
	assert.Equal(t, 1, res.Summary.Orphaned)
}
