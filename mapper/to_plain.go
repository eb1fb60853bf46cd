package mapper

import (
	"encoding/json"
	"fmt"
	"reflect"

	"plain-mapper/plainpath"
)

// ToPlain converts a typed instance into plain data. A sequence yields []any
// holding one result per element, in order; anything else yields a
// map[string]any, empty when the type has no object-to-plain descriptors.
func (r *Registry) ToPlain(source any, opts ...ConvertOption) (any, error) {
	return r.toPlain(source, newConvertOptions(opts))
}

// ToPlainMap converts a single typed instance into a plain map.
func ToPlainMap(r *Registry, source any, opts ...ConvertOption) (map[string]any, error) {
	if _, ok := asSequence(source); ok {
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedSequence, source)
	}

	v, err := r.ToPlain(source, opts...)
	if err != nil {
		return nil, err
	}

	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrTypeMismatch, v)
	}

	return m, nil
}

func (r *Registry) toPlain(source any, o convertOptions) (any, error) {
	if items, ok := asSequence(source); ok {
		result := make([]any, len(items))
		for i, item := range items {
			v, err := r.toPlain(item, o)
			if err != nil {
				return nil, err
			}

			result[i] = v
		}

		return result, nil
	}

	out := make(map[string]any)

	rv, ok := structValue(source)
	if !ok {
		return out, nil
	}

	descriptors, ok := r.plan(DirectionPlain, rv.Type(), o.selected())
	if !ok {
		return out, nil
	}

	for _, d := range descriptors {
		if err := r.writeField(out, rv, d, source); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func (r *Registry) writeField(out map[string]any, rv reflect.Value, d *Descriptor, source any) error {
	raw, _ := fieldForRead(rv, d.index)
	if !plainpath.IsSet(raw) {
		raw = d.defaultValue
	}

	if d.convert != nil {
		v, err := d.convert(ConvertInput{
			Name:       d.field,
			Descriptor: d,
			Value:      raw,
			Source:     source,
			Target:     out,
			ToObject:   false,
		})
		if err != nil {
			return &ConvertError{Type: d.owner, Field: d.field, Direction: DirectionPlain, Err: err}
		}

		out[d.pathOrName] = copyPlain(v)

		return nil
	}

	if !d.resolvePath {
		v, err := r.plainValue(d, raw)
		if err != nil {
			return err
		}

		out[d.pathOrName] = v

		return nil
	}

	segments := plainpath.Split(d.pathOrName)
	current := out

	for i, seg := range segments {
		if !plainpath.IsSet(raw) {
			current[seg] = nil
			return nil
		}

		if i == len(segments)-1 {
			v, err := r.plainValue(d, raw)
			if err != nil {
				return err
			}

			current[seg] = v

			return nil
		}

		switch next := current[seg].(type) {
		case map[string]any:
			current = next
		case nil:
			created := make(map[string]any)
			current[seg] = created
			current = created
		default:
			r.fieldLog(d).WithField("segment", seg).
				Warn("mapper: path segment already holds a value, field skipped")
			return nil
		}
	}

	return nil
}

// plainValue returns scalars as they are and converts registered structs with
// ToPlain. Sequences and string-keyed maps are converted element by element;
// every other composite value is cloned into plain form.
func (r *Registry) plainValue(d *Descriptor, v any) (any, error) {
	if !plainpath.IsSet(v) {
		return nil, nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		if r.HasPlainMapping(rv.Type()) {
			return r.toPlain(v, convertOptions{})
		}
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			break
		}

		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil, nil
		}

		result := make([]any, rv.Len())
		for i := range result {
			item, err := r.plainValue(d, rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}

			result[i] = item
		}

		return result, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}

		if rv.IsNil() {
			return nil, nil
		}

		result := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			item, err := r.plainValue(d, iter.Value().Interface())
			if err != nil {
				return nil, err
			}

			result[iter.Key().String()] = item
		}

		return result, nil
	default:
		return rv.Interface(), nil
	}

	c, err := clonePlain(v)
	if err != nil {
		r.fieldLog(d).WithError(err).Warn("mapper: value cannot be cloned, stored as null")
		return nil, nil
	}

	return c, nil
}

// copyPlain copies the maps and slices of a plain tree so later writes into
// the result never reach the values a converter handed back.
func copyPlain(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = copyPlain(item)
		}

		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = copyPlain(item)
		}

		return out
	default:
		return v
	}
}

// clonePlain returns a deep, plain copy of v: the value decoded from its JSON
// encoding.
func clonePlain(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// structValue dereferences v down to a struct value.
func structValue(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}

	return rv, rv.Kind() == reflect.Struct
}
