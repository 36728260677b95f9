package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatOf returns the format implied by a file path's extension.
// Unknown extensions default to YAML.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// ParseFormat parses a format name such as "yaml", "yml", "json" or "toml".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported document format %q", name)
	}
}

// Decode decodes data in the given format into v.
func Decode(data []byte, format Format, v any) error {
	var err error

	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, v)
	case FormatTOML:
		_, err = toml.Decode(string(data), v)
	default:
		err = yaml.Unmarshal(data, v)
	}

	if err != nil {
		return fmt.Errorf("failed to parse %s document: %w", format, err)
	}

	return nil
}

// Encode serializes v in the given format.
func Encode(v any, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(v, "", "  ")
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	default:
		return yaml.Marshal(v)
	}
}

// ReadFile loads and decodes the document at path into v.
func ReadFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := Decode(data, FormatOf(path), v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// WriteFile encodes v in the format implied by path and writes it.
func WriteFile(path string, v any) error {
	data, err := Encode(v, FormatOf(path))
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
