package mapper

import (
	"fmt"
	"math"
	"reflect"
)

// asSequence returns the elements of v when v is a slice or array. Byte
// slices count as scalars.
func asSequence(v any) ([]any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case []any:
		return t, true
	case []byte:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return nil, false
	}

	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}

	return items, true
}

// fieldForWrite returns the field at index inside the struct pointed to by
// obj, allocating nil embedded pointers on the way. It reports false when
// the field cannot be set.
func fieldForWrite(obj reflect.Value, index []int) (reflect.Value, bool) {
	v := obj.Elem()
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !v.CanSet() {
					return reflect.Value{}, false
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}

		v = v.Field(x)
	}

	return v, v.CanSet()
}

// fieldForRead returns the value of the field at index, or false when an
// embedded pointer on the way is nil.
func fieldForRead(rv reflect.Value, index []int) (any, bool) {
	v, err := rv.FieldByIndexErr(index)
	if err != nil {
		return nil, false
	}

	return v.Interface(), true
}

// assignValue stores v into dst, converting where Go allows it: pointers are
// wrapped or dereferenced, sequences and maps are converted element-wise and
// numbers are converted between kinds when no precision is lost.
func assignValue(dst reflect.Value, v any) error {
	return setValue(dst, reflect.ValueOf(v))
}

func setValue(dst, src reflect.Value) error {
	for src.IsValid() && src.Kind() == reflect.Interface {
		if src.IsNil() {
			src = reflect.Value{}
			break
		}
		src = src.Elem()
	}

	if !src.IsValid() {
		dst.SetZero()
		return nil
	}

	dt := dst.Type()
	if src.Type().AssignableTo(dt) {
		dst.Set(src)
		return nil
	}

	if dt.Kind() == reflect.Pointer {
		if src.Kind() == reflect.Pointer && src.IsNil() {
			dst.SetZero()
			return nil
		}

		ptr := reflect.New(dt.Elem())
		if err := setValue(ptr.Elem(), src); err != nil {
			return err
		}

		dst.Set(ptr)

		return nil
	}

	if src.Kind() == reflect.Pointer {
		if src.IsNil() {
			dst.SetZero()
			return nil
		}

		return setValue(dst, src.Elem())
	}

	switch dt.Kind() {
	case reflect.Slice:
		if src.Kind() != reflect.Slice && src.Kind() != reflect.Array {
			return mismatch(src, dt)
		}

		out := reflect.MakeSlice(dt, src.Len(), src.Len())
		for i := 0; i < src.Len(); i++ {
			if err := setValue(out.Index(i), src.Index(i)); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}

		dst.Set(out)

		return nil

	case reflect.Array:
		if src.Kind() != reflect.Slice && src.Kind() != reflect.Array {
			return mismatch(src, dt)
		}

		out := reflect.New(dt).Elem()
		for i := 0; i < src.Len() && i < dt.Len(); i++ {
			if err := setValue(out.Index(i), src.Index(i)); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}

		dst.Set(out)

		return nil

	case reflect.Map:
		if src.Kind() != reflect.Map {
			return mismatch(src, dt)
		}

		out := reflect.MakeMapWithSize(dt, src.Len())

		iter := src.MapRange()
		for iter.Next() {
			key := reflect.New(dt.Key()).Elem()
			if err := setValue(key, iter.Key()); err != nil {
				return err
			}

			val := reflect.New(dt.Elem()).Elem()
			if err := setValue(val, iter.Value()); err != nil {
				return fmt.Errorf("key %v: %w", iter.Key(), err)
			}

			out.SetMapIndex(key, val)
		}

		dst.Set(out)

		return nil

	case reflect.Bool:
		if src.Kind() != reflect.Bool {
			return mismatch(src, dt)
		}

		dst.SetBool(src.Bool())

		return nil

	case reflect.String:
		if src.Kind() != reflect.String {
			return mismatch(src, dt)
		}

		dst.SetString(src.String())

		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f, ok := numberOf(src)
		if !ok {
			return mismatch(src, dt)
		}

		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) ||
			f < math.MinInt64 || f >= math.MaxInt64 || dst.OverflowInt(int64(f)) {
			return fmt.Errorf("%w: %v does not fit %s", ErrTypeMismatch, f, dt)
		}

		dst.SetInt(int64(f))

		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		f, ok := numberOf(src)
		if !ok {
			return mismatch(src, dt)
		}

		if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f != math.Trunc(f) ||
			f >= math.MaxUint64 || dst.OverflowUint(uint64(f)) {
			return fmt.Errorf("%w: %v does not fit %s", ErrTypeMismatch, f, dt)
		}

		dst.SetUint(uint64(f))

		return nil

	case reflect.Float32, reflect.Float64:
		f, ok := numberOf(src)
		if !ok {
			return mismatch(src, dt)
		}

		if dst.OverflowFloat(f) {
			return fmt.Errorf("%w: %v overflows %s", ErrTypeMismatch, f, dt)
		}

		dst.SetFloat(f)

		return nil

	default:
		if src.Type().ConvertibleTo(dt) && src.Kind() == dt.Kind() {
			dst.Set(src.Convert(dt))
			return nil
		}

		return mismatch(src, dt)
	}
}

func numberOf(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}

func mismatch(src reflect.Value, dt reflect.Type) error {
	return fmt.Errorf("%w: cannot assign %s to %s", ErrTypeMismatch, src.Type(), dt)
}
