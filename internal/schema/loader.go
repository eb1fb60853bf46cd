package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Types {
		for j := range f.Types[i].Fields {
			fd := &f.Types[i].Fields[j]
			if fd.Path == "" {
				fd.Path = fd.Field
			}

			if fd.Kind == "" && fd.Nested != "" {
				fd.Kind = "nested"
			}
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}
