package schema

import (
	"fmt"

	"customfields/internal/document"
)

// LoadFile loads and parses a schema document from the given path.
func LoadFile(path string) (*Schema, error) {
	var s Schema
	if err := document.ReadFile(path, &s); err != nil {
		return nil, fmt.Errorf("failed to load schema: %w", err)
	}

	s.normalize()

	return &s, nil
}

// Parse parses schema data in the given format.
func Parse(data []byte, format document.Format) (*Schema, error) {
	var s Schema
	if err := document.Decode(data, format, &s); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	s.normalize()

	return &s, nil
}

// WriteFile writes a schema to the given path.
func WriteFile(s *Schema, path string) error {
	return document.WriteFile(path, s)
}
