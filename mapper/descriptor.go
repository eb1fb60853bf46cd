package mapper

import (
	"fmt"
	"reflect"
	"slices"

	"plain-mapper/primitive"
)

// DefaultRule is the rule every descriptor without explicit rules is filed
// under. The NUL byte keeps it apart from any name a caller would choose.
const DefaultRule = "\x00plain-mapper/default"

// Direction selects one of the two registry stores.
type Direction int

const (
	DirectionObject Direction = iota // plain to object
	DirectionPlain                   // object to plain
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirectionObject:
		return "to-object"
	case DirectionPlain:
		return "to-plain"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// TypeSpec declares how a field value is coerced during ToObject.
// Kind is resolved from Type at registration when left at CoercionNone.
type TypeSpec struct {
	Kind primitive.CoercionKind
	// Type is the nested struct for CoercionNested.
	Type reflect.Type
}

var (
	Date    = TypeSpec{Kind: primitive.CoercionDate}
	Boolean = TypeSpec{Kind: primitive.CoercionBoolean}
	Number  = TypeSpec{Kind: primitive.CoercionNumber}
	String  = TypeSpec{Kind: primitive.CoercionString}
)

// TypeOf declares the Go type T; its coercion kind is derived from it.
func TypeOf[T any]() TypeSpec {
	return TypeSpec{Type: reflect.TypeFor[T]()}
}

// Nested declares a nested struct converted with its own registrations.
func Nested[T any]() TypeSpec {
	return TypeSpec{Kind: primitive.CoercionNested, Type: reflect.TypeFor[T]()}
}

// ConvertInput is passed to a ConvertFunc.
type ConvertInput struct {
	// Name is PathOrName during ToObject and the struct field name during ToPlain.
	Name       string
	Descriptor *Descriptor
	// Value is the resolved raw value, DefaultValue applied.
	Value any
	// Source is the plain container (ToObject) or the typed instance (ToPlain).
	Source any
	// Target is the instance under construction (ToObject) or the plain map
	// under construction (ToPlain).
	Target   any
	ToObject bool
}

// ConvertFunc replaces default coercion for one field. A returned error
// aborts the whole conversion.
type ConvertFunc func(in ConvertInput) (any, error)

// Options declare one descriptor for a struct field.
type Options struct {
	// PathOrName locates the value in the plain representation; defaults to
	// the field name.
	PathOrName string
	// ResolvePath treats PathOrName as a dotted path when nil or true.
	ResolvePath  *bool
	DefaultValue any
	Type         TypeSpec
	Convert      ConvertFunc
	ToObjectOnly *bool
	ToPlainOnly  *bool
	// Rules the descriptor is filed under; empty means DefaultRule.
	Rules []string
}

// Bool returns a pointer to b, for the tri-state fields of Options.
func Bool(b bool) *bool {
	return &b
}

// Descriptor is the registered, immutable form of Options.
type Descriptor struct {
	owner        reflect.Type
	field        string
	index        []int
	pathOrName   string
	resolvePath  bool
	defaultValue any
	kind         primitive.CoercionKind
	nested       reflect.Type
	convert      ConvertFunc
	toObjectOnly *bool
	toPlainOnly  *bool
	rules        []string
}

func (d *Descriptor) Owner() reflect.Type          { return d.owner }
func (d *Descriptor) FieldName() string            { return d.field }
func (d *Descriptor) PathOrName() string           { return d.pathOrName }
func (d *Descriptor) ResolvePath() bool            { return d.resolvePath }
func (d *Descriptor) DefaultValue() any            { return d.defaultValue }
func (d *Descriptor) Kind() primitive.CoercionKind { return d.kind }
func (d *Descriptor) NestedType() reflect.Type     { return d.nested }
func (d *Descriptor) HasConverter() bool           { return d.convert != nil }
func (d *Descriptor) Rules() []string              { return slices.Clone(d.rules) }

// ToObject reports whether the descriptor takes part in plain to object conversion.
func (d *Descriptor) ToObject() bool {
	return isTrue(d.toObjectOnly) || (!isTrue(d.toPlainOnly) && d.toObjectOnly == nil)
}

// ToPlain reports whether the descriptor takes part in object to plain conversion.
func (d *Descriptor) ToPlain() bool {
	return isTrue(d.toPlainOnly) || (!isTrue(d.toObjectOnly) && d.toPlainOnly == nil)
}

// Applies reports whether the descriptor takes part in conversions of dir.
func (d *Descriptor) Applies(dir Direction) bool {
	if dir == DirectionObject {
		return d.ToObject()
	}

	return d.ToPlain()
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("%s.%s <- %q", d.owner.Name(), d.field, d.pathOrName)
}

func isTrue(b *bool) bool {
	return b != nil && *b
}
