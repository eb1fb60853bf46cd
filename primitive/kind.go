package primitive

import (
	"reflect"
	"time"
)

//go:generate go tool stringer -type=CoercionKind -trimprefix=Coercion -output=kind_string.go

// CoercionKind tells the object builder how a resolved plain value is turned
// into the declared field type.
type CoercionKind int

const (
	CoercionNone    CoercionKind = iota // no coercion, the raw value is assigned
	CoercionNested                      // recursive conversion into a registered struct
	CoercionDate                        // time.Time parsed from text or Unix milliseconds
	CoercionBoolean                     // permissive boolean, see ToBoolean
	CoercionNumber                      // unary-plus number, see ToNumber
	CoercionString                      // textual representation, see ToString

	// CoercionTotal is the number of coercion kinds defined.
	CoercionTotal = int(iota)
)

// IsPrimitive reports whether k coerces into a scalar.
func (k CoercionKind) IsPrimitive() bool {
	switch k {
	default:
		return false
	case CoercionBoolean, CoercionNumber, CoercionString:
		return true
	}
}

// IsValid reports whether k is one of the declared kinds.
func (k CoercionKind) IsValid() bool {
	return k >= CoercionNone && int(k) < CoercionTotal
}

// ParseKind returns the kind with the given lower-case name ("none", "nested",
// "date", "boolean", "number", "string").
func ParseKind(name string) (CoercionKind, bool) {
	switch name {
	case "", "none":
		return CoercionNone, true
	case "nested":
		return CoercionNested, true
	case "date":
		return CoercionDate, true
	case "boolean", "bool":
		return CoercionBoolean, true
	case "number":
		return CoercionNumber, true
	case "string":
		return CoercionString, true
	default:
		return CoercionNone, false
	}
}

var timeType = reflect.TypeOf(time.Time{})

// KindFromType resolves the coercion kind of a declared Go type.
// Pointers are followed; named types use their underlying kind, so
// `type Flag bool` coerces as a boolean.
func KindFromType(rtype reflect.Type) CoercionKind {
	if rtype == nil {
		return CoercionNone
	}

	for rtype.Kind() == reflect.Pointer {
		rtype = rtype.Elem()
	}

	if rtype == timeType {
		return CoercionDate
	}

	switch rtype.Kind() {
	default:
		return CoercionNone
	case reflect.Bool:
		return CoercionBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return CoercionNumber
	case reflect.String:
		return CoercionString
	case reflect.Struct:
		return CoercionNested
	}
}
