package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
types:
  - type: odata.User
    fields:
      - field: TestProp2
        path: nested.testProp2
      - field: TestProp3
        path: odata.count
        resolve_path: false
        to_object_only: true
        kind: number
      - field: Values
        nested: odata.NestedValues
        rules: [full, summary]
      - field: OnlyToPlain
        rules: Test2
        default: 3
`
	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Types, 1)

	td := f.Types[0]
	assert.Equal(t, "odata.User", td.Type)
	require.Len(t, td.Fields, 4)

	assert.Equal(t, "nested.testProp2", td.Fields[0].Path)
	assert.Nil(t, td.Fields[0].ResolvePath)

	require.NotNil(t, td.Fields[1].ResolvePath)
	assert.False(t, *td.Fields[1].ResolvePath)
	require.NotNil(t, td.Fields[1].ToObjectOnly)
	assert.True(t, *td.Fields[1].ToObjectOnly)
	assert.Nil(t, td.Fields[1].ToPlainOnly)
	assert.Equal(t, "number", td.Fields[1].Kind)

	// path and kind defaults
	assert.Equal(t, "Values", td.Fields[2].Path)
	assert.Equal(t, "nested", td.Fields[2].Kind)
	assert.Equal(t, StringOrArray{"full", "summary"}, td.Fields[2].Rules)

	assert.Equal(t, StringOrArray{"Test2"}, td.Fields[3].Rules)
	assert.Equal(t, 3, td.Fields[3].Default)
}

func TestParseMinimal(t *testing.T) {
	f, err := Parse([]byte(`types: []`))
	require.NoError(t, err)
	assert.Equal(t, "1", f.Version)
	assert.Empty(t, f.Types)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("types: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse schema YAML")

	_, err = Parse([]byte(`
types:
  - type: odata.User
    fields:
      - field: X
        rules: {a: b}
`))
	require.Error(t, err)
}

func TestParseStringOrArray(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected StringOrArray
	}{
		{name: "single", input: `rules: Test`, expected: StringOrArray{"Test"}},
		{name: "list", input: `rules: [a, b]`, expected: StringOrArray{"a", "b"}},
		{name: "empty scalar", input: `rules: ""`, expected: StringOrArray{}},
		{name: "empty rule name", input: `rules: [""]`, expected: StringOrArray{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte("types:\n  - type: x\n    fields:\n      - field: F\n        " + tt.input + "\n"))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f.Types[0].Fields[0].Rules)
		})
	}
}

func TestMarshalStringOrArray(t *testing.T) {
	single, err := StringOrArray{"Test"}.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "Test", single)

	multi, err := StringOrArray{"a", "b"}.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, multi)

	emptyName, err := StringOrArray{""}.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, []string{""}, emptyName)
}

func TestWriteAndLoadFile(t *testing.T) {
	f := &File{
		Types: []TypeDecl{{
			Type: "odata.User",
			Fields: []FieldDecl{
				{Field: "TestProp1", Path: "testProp1"},
				{Field: "OnlyToPlain", Path: "nameOfPropInPlainOnlyRule2", Rules: StringOrArray{"Test2"}},
			},
		}},
	}

	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, WriteFile(f, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rules: Test2")

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1", loaded.Version)
	assert.Equal(t, f.Types, loaded.Types)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read schema file")
}
