package schema

import (
	"reflect"
	"slices"

	"plain-mapper/internal/common"
	"plain-mapper/mapper"
)

// Catalog resolves the type and converter names used in schema files.
type Catalog struct {
	types      map[string]reflect.Type
	converters map[string]mapper.ConvertFunc
}

// NewCatalog creates a new empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		types:      make(map[string]reflect.Type),
		converters: make(map[string]mapper.ConvertFunc),
	}
}

// AddType adds t under its short qualified name (e.g., "odata.User").
func (c *Catalog) AddType(t reflect.Type) {
	c.AddTypeAs(common.TypeName(t), t)
}

// AddTypeAs adds t under an explicit name.
func (c *Catalog) AddTypeAs(name string, t reflect.Type) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	c.types[name] = t
}

// AddConverter adds a named converter.
func (c *Catalog) AddConverter(name string, fn mapper.ConvertFunc) {
	c.converters[name] = fn
}

// Type returns the type registered under name.
func (c *Catalog) Type(name string) (reflect.Type, bool) {
	t, ok := c.types[name]
	return t, ok
}

// Converter returns the converter registered under name.
func (c *Catalog) Converter(name string) (mapper.ConvertFunc, bool) {
	fn, ok := c.converters[name]
	return fn, ok
}

// HasType returns true if a type with the given name exists.
func (c *Catalog) HasType(name string) bool {
	_, exists := c.types[name]
	return exists
}

// TypeNames returns all type names, sorted.
func (c *Catalog) TypeNames() []string {
	names := make([]string, 0, len(c.types))
	for name := range c.types {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// ConverterNames returns all converter names, sorted.
func (c *Catalog) ConverterNames() []string {
	names := make([]string, 0, len(c.converters))
	for name := range c.converters {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
