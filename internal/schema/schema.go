package schema

import (
	"plain-mapper/internal/common"
)

// File represents the root of a YAML mapping declaration file.
type File struct {
	// Version of the schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Types lists the declared struct types.
	Types []TypeDecl `yaml:"types"`
}

// TypeDecl declares the field mappings of one struct type.
type TypeDecl struct {
	// Type is the catalog name of the struct (e.g., "odata.User").
	Type string `yaml:"type"`

	// Fields holds one entry per descriptor. A field may appear several
	// times, typically once per rule.
	Fields []FieldDecl `yaml:"fields"`
}

// FieldDecl declares one descriptor.
type FieldDecl struct {
	// Field is the exported Go field name.
	Field string `yaml:"field"`

	// Path is the dotted path or literal key in the plain value.
	Path string `yaml:"path,omitempty"`

	// ResolvePath set to false reads Path as one literal key.
	ResolvePath *bool `yaml:"resolve_path,omitempty"`

	// Default is used when the plain value is absent.
	Default any `yaml:"default,omitempty"`

	// Kind is the coercion kind name; implied by Nested when empty.
	Kind string `yaml:"kind,omitempty"`

	// Nested is the catalog name of the nested struct type.
	Nested string `yaml:"nested,omitempty"`

	// Convert is the catalog name of a custom converter.
	Convert string `yaml:"convert,omitempty"`

	ToObjectOnly *bool `yaml:"to_object_only,omitempty"`
	ToPlainOnly  *bool `yaml:"to_plain_only,omitempty"`

	// Rules the descriptor is filed under.
	Rules StringOrArray `yaml:"rules,omitempty"`
}

// StringOrArray is a string list that may be written as a single string.
type StringOrArray []string

// First returns the first element or empty string if empty.
func (s StringOrArray) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}

// IsSingle returns true if the array has exactly one element.
func (s StringOrArray) IsSingle() bool {
	return common.IsSingle(s)
}
