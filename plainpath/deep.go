package plainpath

import (
	"reflect"
	"strconv"

	"plain-mapper/primitive"
)

// IsSet reports whether v holds a value. Untyped nil and nil pointers, maps,
// slices, interfaces, funcs and channels are all unset.
func IsSet(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}

// ToBoolean is primitive.ToBoolean.
func ToBoolean(v any) bool {
	return primitive.ToBoolean(v)
}

// Get reads a single literal key from container without splitting it.
// Maps with string keys, slices and arrays (decimal index) and structs
// (exported field name) are indexable; pointers and interfaces are followed.
func Get(container any, key string) (any, bool) {
	if container == nil {
		return nil, false
	}

	if m, ok := container.(map[string]any); ok {
		v, ok := m[key]
		return v, ok
	}

	rv, ok := index(reflect.ValueOf(container), key)
	if !ok {
		return nil, false
	}

	return rv.Interface(), true
}

// GetDeepOrDefault resolves the dotted path inside container. It returns def
// as soon as a segment is missing or unset, and when the resolved value
// itself is unset.
func GetDeepOrDefault(container any, path string, def any) any {
	if !IsSet(container) {
		return def
	}

	current := container
	for _, seg := range Split(path) {
		v, ok := Get(current, seg)
		if !ok || !IsSet(v) {
			return def
		}

		current = v
	}

	return current
}

// Has reports whether every segment of path resolves and the final value is set.
func Has(container any, path string) bool {
	if !IsSet(container) {
		return false
	}

	current := container
	for _, seg := range Split(path) {
		v, ok := Get(current, seg)
		if !ok || !IsSet(v) {
			return false
		}

		current = v
	}

	return true
}

func index(rv reflect.Value, key string) (reflect.Value, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, false
		}

		v := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return reflect.Value{}, false
		}

		return v, true

	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= rv.Len() {
			return reflect.Value{}, false
		}

		return rv.Index(i), true

	case reflect.Struct:
		sf, ok := rv.Type().FieldByName(key)
		if !ok || !sf.IsExported() {
			return reflect.Value{}, false
		}

		v, err := rv.FieldByIndexErr(sf.Index)
		if err != nil {
			return reflect.Value{}, false
		}

		return v, true

	default:
		return reflect.Value{}, false
	}
}
