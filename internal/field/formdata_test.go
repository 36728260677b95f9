package field

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormData_SortedIDsAndClone(t *testing.T) {
	d := &FormData{
		SchemaID: "S1",
		Fields: map[string]SavedValue{
			"S1_r2_c1_1": {FieldID: "S1_r2_c1_1", Value: "b"},
			"S1_r1_c1_1": {FieldID: "S1_r1_c1_1", Value: "a"},
		},
	}

	assert.Equal(t, []string{"S1_r1_c1_1", "S1_r2_c1_1"}, d.SortedIDs())
	assert.Equal(t, 2, d.Len())

	c := d.Clone()
	delete(c.Fields, "S1_r1_c1_1")
	assert.Equal(t, 2, d.Len(), "clone must not share the fields map")

	var nilData *FormData
	assert.Nil(t, nilData.SortedIDs())
	assert.Equal(t, 0, nilData.Len())
	assert.NotNil(t, nilData.Clone().Fields)
}

func TestFormData_SavedAtOrRecord(t *testing.T) {
	recordTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	valueTime := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	d := &FormData{SavedAt: recordTime}

	assert.Equal(t, valueTime, d.SavedAtOrRecord(SavedValue{SavedAt: valueTime}))
	assert.Equal(t, recordTime, d.SavedAtOrRecord(SavedValue{}))
}

func TestLoadFormData_FillsFieldIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "member.yaml")
	doc := `
schema_id: S1
saved_at: 2024-05-01T10:00:00Z
fields:
  S1_r1_c1_1000:
    value: a@b.com
    metadata:
      label: Email
      type: email
    saved_at: 2024-05-01T10:00:00Z
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	d, err := LoadFormData(path)
	require.NoError(t, err)

	v, ok := d.Fields["S1_r1_c1_1000"]
	require.True(t, ok)
	assert.Equal(t, "S1_r1_c1_1000", v.FieldID)
	assert.Equal(t, "a@b.com", v.Value)
	assert.Equal(t, "Email", v.Metadata.Label)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), v.SavedAt)
}

func TestWriteFormData_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "member.json")
	saved := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	d := &FormData{
		SchemaID: "S1",
		SavedAt:  saved,
		Fields: map[string]SavedValue{
			"S1_r1_c1_1000": {FieldID: "S1_r1_c1_1000", Value: "x", SavedAt: saved},
		},
	}

	require.NoError(t, WriteFormData(d, path))

	loaded, err := LoadFormData(path)
	require.NoError(t, err)
	assert.Equal(t, d.Fields["S1_r1_c1_1000"].Value, loaded.Fields["S1_r1_c1_1000"].Value)
	assert.True(t, saved.Equal(loaded.SavedAt))
}

func TestLoadFormData_MissingFile(t *testing.T) {
	_, err := LoadFormData(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
