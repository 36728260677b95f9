package document

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string   `yaml:"name" json:"name" toml:"name"`
	Count int      `yaml:"count" json:"count" toml:"count"`
	Tags  []string `yaml:"tags" json:"tags" toml:"tags"`
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatOf("schema.yaml"))
	assert.Equal(t, FormatYAML, FormatOf("schema.YML"))
	assert.Equal(t, FormatJSON, FormatOf("data.json"))
	assert.Equal(t, FormatTOML, FormatOf("rules.toml"))
	assert.Equal(t, FormatYAML, FormatOf("noext"))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	require.Error(t, err)
}

func TestDecode_AllFormats(t *testing.T) {
	inputs := map[Format]string{
		FormatYAML: "name: members\ncount: 2\ntags: [a, b]\n",
		FormatJSON: `{"name":"members","count":2,"tags":["a","b"]}`,
		FormatTOML: "name = \"members\"\ncount = 2\ntags = [\"a\", \"b\"]\n",
	}

	for format, input := range inputs {
		t.Run(string(format), func(t *testing.T) {
			var s sample
			require.NoError(t, Decode([]byte(input), format, &s))
			assert.Equal(t, sample{Name: "members", Count: 2, Tags: []string{"a", "b"}}, s)
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	var s sample
	err := Decode([]byte("{not json"), FormatJSON, &s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json")
}

func TestReadWriteFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"out.yaml", "out.json", "out.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			in := sample{Name: "x", Count: 3, Tags: []string{"t"}}
			require.NoError(t, WriteFile(path, in))

			var out sample
			require.NoError(t, ReadFile(path, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestReadFile_Missing(t *testing.T) {
	var s sample
	err := ReadFile(filepath.Join(t.TempDir(), "nope.yaml"), &s)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
