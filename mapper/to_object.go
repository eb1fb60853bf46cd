package mapper

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"

	"plain-mapper/plainpath"
	"plain-mapper/primitive"
)

// ToObject converts plain data into an instance of target. A sequence yields
// []any holding one result per element, in order; anything else yields a
// pointer to a new target value. Types without plain-to-object descriptors
// come back freshly constructed.
func (r *Registry) ToObject(target reflect.Type, source any, opts ...ConvertOption) (any, error) {
	t := indirectType(target)
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v", ErrNotStruct, target)
	}

	return r.toObject(t, source, newConvertOptions(opts))
}

// ToObject converts a single plain value into a *T.
func ToObject[T any](r *Registry, source any, opts ...ConvertOption) (*T, error) {
	if _, ok := asSequence(source); ok {
		return nil, fmt.Errorf("%w: use ToObjects for %T", ErrUnexpectedSequence, source)
	}

	v, err := r.ToObject(reflect.TypeFor[T](), source, opts...)
	if err != nil {
		return nil, err
	}

	obj, ok := v.(*T)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrTypeMismatch, v)
	}

	return obj, nil
}

// ToObjects converts a sequence of plain values into []*T.
func ToObjects[T any](r *Registry, source any, opts ...ConvertOption) ([]*T, error) {
	items, ok := asSequence(source)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotSequence, source)
	}

	result := make([]*T, len(items))
	for i, item := range items {
		obj, err := ToObject[T](r, item, opts...)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}

		result[i] = obj
	}

	return result, nil
}

func (r *Registry) toObject(t reflect.Type, source any, o convertOptions) (any, error) {
	if items, ok := asSequence(source); ok {
		result := make([]any, len(items))
		for i, item := range items {
			v, err := r.toObject(t, item, o)
			if err != nil {
				return nil, err
			}

			result[i] = v
		}

		return result, nil
	}

	obj := r.construct(t)

	descriptors, ok := r.plan(DirectionObject, t, o.selected())
	if !ok {
		return obj.Interface(), nil
	}

	for _, d := range descriptors {
		if err := r.fillField(obj, d, source); err != nil {
			return nil, err
		}
	}

	return obj.Interface(), nil
}

// readPlain resolves the raw value of d inside source, DefaultValue applied.
func readPlain(source any, d *Descriptor) any {
	if d.resolvePath {
		return plainpath.GetDeepOrDefault(source, d.pathOrName, d.defaultValue)
	}

	v, _ := plainpath.Get(source, d.pathOrName)
	if !plainpath.IsSet(v) {
		return d.defaultValue
	}

	return v
}

func (r *Registry) fillField(obj reflect.Value, d *Descriptor, source any) error {
	raw := readPlain(source, d)

	if d.convert != nil {
		v, err := d.convert(ConvertInput{
			Name:       d.pathOrName,
			Descriptor: d,
			Value:      raw,
			Source:     source,
			Target:     obj.Interface(),
			ToObject:   true,
		})
		if err != nil {
			return &ConvertError{Type: d.owner, Field: d.field, Direction: DirectionObject, Err: err}
		}

		r.assign(obj, d, v)

		return nil
	}

	if plainpath.IsSet(raw) && d.kind != primitive.CoercionNone {
		v, resolved, err := r.coerce(d, raw)
		if err != nil {
			return err
		}

		if resolved {
			r.assign(obj, d, v)
			return nil
		}
	}

	r.assign(obj, d, raw)

	return nil
}

// coerce converts raw according to the declared kind of d. A sequence is
// converted element-wise and stays a sequence. The second result is false
// when the kind cannot be applied and raw should be assigned unchanged.
func (r *Registry) coerce(d *Descriptor, raw any) (any, bool, error) {
	var convert func(item any) (any, error)

	switch d.kind {
	case primitive.CoercionNested:
		if !r.HasObjectMapping(d.nested) {
			return nil, false, nil
		}

		convert = func(item any) (any, error) {
			return r.toObject(d.nested, item, convertOptions{})
		}

	case primitive.CoercionDate:
		convert = func(item any) (any, error) {
			v, err := primitive.ToDate(item)
			if err != nil {
				r.fieldLog(d).WithError(err).Warn("mapper: date coercion failed, value left unconverted")
				return item, nil
			}

			return v, nil
		}

	case primitive.CoercionBoolean:
		convert = func(item any) (any, error) { return primitive.ToBoolean(item), nil }

	case primitive.CoercionNumber:
		convert = func(item any) (any, error) { return primitive.ToNumber(item), nil }

	case primitive.CoercionString:
		convert = func(item any) (any, error) {
			s, err := primitive.ToString(item)
			if err != nil {
				r.fieldLog(d).WithError(err).Warn("mapper: string coercion failed, value left unconverted")
				return item, nil
			}

			return s, nil
		}

	default:
		return nil, false, nil
	}

	items, isSequence := asSequence(raw)
	if !isSequence {
		v, err := convert(raw)
		return v, true, err
	}

	result := make([]any, len(items))
	for i, item := range items {
		v, err := convert(item)
		if err != nil {
			return nil, true, err
		}

		result[i] = v
	}

	return result, true, nil
}

// assign stores v in the field of d. Values that do not fit the Go field
// leave the construction default in place.
func (r *Registry) assign(obj reflect.Value, d *Descriptor, v any) {
	field, ok := fieldForWrite(obj, d.index)
	if !ok {
		r.fieldLog(d).Debug("mapper: field not reachable, left unchanged")
		return
	}

	if err := assignValue(field, v); err != nil {
		r.fieldLog(d).WithError(err).Debug("mapper: value not assignable, field left unchanged")
	}
}

func (r *Registry) fieldLog(d *Descriptor) logrus.FieldLogger {
	return r.log.WithFields(logrus.Fields{
		"type":  d.owner.String(),
		"field": d.field,
		"path":  d.pathOrName,
	})
}
