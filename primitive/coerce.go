package primitive

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ErrUnsupported is wrapped by CoercionError when the input type cannot be
// coerced at all.
var ErrUnsupported = errors.New("unsupported input")

// CoercionError describes a value that could not be coerced into Kind.
type CoercionError struct {
	Kind  CoercionKind
	Value any
	Err   error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("primitive: cannot coerce %T to %s: %v", e.Value, e.Kind, e.Err)
}

func (e *CoercionError) Unwrap() error { return e.Err }

// ToBoolean maps v to a boolean. Booleans pass through, "true"/"false" are
// matched case-insensitively, and the numbers 1/0 (also as "1"/"0") map to
// true/false. Every other input, nil included, is false.
func ToBoolean(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		s := strings.ToLower(t)
		return s == "true" || s == "1"
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return ToBoolean(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 1
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 1
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 1
	default:
		return false
	}
}

// ToNumber converts v the way a unary plus does: numbers keep their value,
// booleans are 1 or 0, nil and blank strings are 0, numeric strings are
// parsed and everything else is NaN.
func ToNumber(v any) float64 {
	if v == nil {
		return 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.String:
		return parseNumber(rv.String())
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return 0
		}
		return ToNumber(rv.Elem().Interface())
	default:
		return math.NaN()
	}
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	// strconv accepts spellings like "inf", "NaN" and digit separators that a
	// plain numeric literal does not
	if strings.ContainsRune(s, '_') {
		return math.NaN()
	}

	lower := strings.ToLower(s)
	for _, prefix := range []struct {
		text string
		base int
	}{{"0x", 16}, {"0o", 8}, {"0b", 2}} {
		if rest, ok := strings.CutPrefix(lower, prefix.text); ok {
			n, err := strconv.ParseUint(rest, prefix.base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}

	body := strings.TrimLeft(lower, "+-")
	if body == "" || !(body[0] == '.' || (body[0] >= '0' && body[0] <= '9')) {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}

	return f
}

// ToString returns the textual form of v. Values implementing fmt.Stringer or
// error use their own method; everything else is formatted with %v. A nil
// value or a panicking String method is reported as a CoercionError.
func ToString(v any) (s string, err error) {
	if v == nil {
		return "", &CoercionError{Kind: CoercionString, Value: v, Err: ErrUnsupported}
	}

	defer func() {
		if r := recover(); r != nil {
			s = ""
			err = &CoercionError{Kind: CoercionString, Value: v, Err: fmt.Errorf("%v", r)}
		}
	}()

	switch t := v.(type) {
	case string:
		return t, nil
	case fmt.Stringer:
		return t.String(), nil
	case error:
		return t.Error(), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ToDate converts v into a time.Time. Strings are parsed as RFC 3339 or as
// one of the plain date layouts, numbers are Unix milliseconds.
func ToDate(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case *time.Time:
		if t != nil {
			return *t, nil
		}
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed, nil
			}
		}

		return time.Time{}, &CoercionError{Kind: CoercionDate, Value: v, Err: fmt.Errorf("unrecognized date %q", t)}
	}

	if v != nil {
		switch reflect.ValueOf(v).Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			ms := ToNumber(v)
			if math.IsNaN(ms) || math.IsInf(ms, 0) {
				break
			}
			return time.UnixMilli(int64(ms)).UTC(), nil
		}
	}

	return time.Time{}, &CoercionError{Kind: CoercionDate, Value: v, Err: ErrUnsupported}
}
