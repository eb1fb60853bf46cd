package mapper

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flag bool

type embedded struct {
	Deep string
}

type withEmbedded struct {
	*embedded
	Top string
}

func TestAssignValue(t *testing.T) {
	str := "text"

	tests := []struct {
		name     string
		target   any
		value    any
		expected any
	}{
		{name: "same type", target: new(string), value: "abc", expected: "abc"},
		{name: "into any", target: new(any), value: map[string]any{"a": 1}, expected: map[string]any{"a": 1}},
		{name: "nil resets", target: func() *string { s := "x"; return &s }(), value: nil, expected: ""},
		{name: "float to int", target: new(int), value: 42.0, expected: 42},
		{name: "int to float", target: new(float64), value: 3, expected: 3.0},
		{name: "float to uint8", target: new(uint8), value: 255.0, expected: uint8(255)},
		{name: "wrap pointer", target: new(*string), value: "text", expected: &str},
		{name: "deref pointer", target: new(string), value: &str, expected: "text"},
		{name: "named bool", target: new(flag), value: true, expected: flag(true)},
		{name: "slice elements", target: new([]int), value: []any{1.0, 2.0}, expected: []int{1, 2}},
		{name: "array elements", target: new([2]string), value: []any{"a", "b", "c"}, expected: [2]string{"a", "b"}},
		{name: "map elements", target: new(map[string]float64), value: map[string]any{"a": 1}, expected: map[string]float64{"a": 1}},
		{name: "slice of pointers", target: new([]*embedded), value: []any{&embedded{Deep: "d"}}, expected: []*embedded{{Deep: "d"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := reflect.ValueOf(tt.target).Elem()
			require.NoError(t, assignValue(dst, tt.value))
			assert.Equal(t, tt.expected, dst.Interface())
		})
	}
}

func TestAssignValue_Mismatch(t *testing.T) {
	tests := []struct {
		name   string
		target any
		value  any
	}{
		{name: "string to int", target: new(int), value: "1"},
		{name: "fraction to int", target: new(int), value: 1.5},
		{name: "nan to int", target: new(int64), value: math.NaN()},
		{name: "overflow int8", target: new(int8), value: 300.0},
		{name: "negative to uint", target: new(uint), value: -1.0},
		{name: "bool to string", target: new(string), value: true},
		{name: "number to bool", target: new(bool), value: 1},
		{name: "map to slice", target: new([]int), value: map[string]any{}},
		{name: "scalar to map", target: new(map[string]any), value: 1},
		{name: "bad element", target: new([]int), value: []any{"x"}},
		{name: "overflow float32", target: new(float32), value: math.MaxFloat64},
		{name: "map to struct", target: new(embedded), value: map[string]any{"Deep": "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := reflect.ValueOf(tt.target).Elem()
			assert.ErrorIs(t, assignValue(dst, tt.value), ErrTypeMismatch)
		})
	}
}

func TestAsSequence(t *testing.T) {
	var nilSlice []int

	items, ok := asSequence([]any{1, "a"})
	assert.True(t, ok)
	assert.Equal(t, []any{1, "a"}, items)

	items, ok = asSequence([]string{"x", "y"})
	assert.True(t, ok)
	assert.Equal(t, []any{"x", "y"}, items)

	items, ok = asSequence([2]int{1, 2})
	assert.True(t, ok)
	assert.Equal(t, []any{1, 2}, items)

	_, ok = asSequence([]byte("raw"))
	assert.False(t, ok)

	_, ok = asSequence(nilSlice)
	assert.False(t, ok)

	_, ok = asSequence(nil)
	assert.False(t, ok)

	_, ok = asSequence(map[string]any{})
	assert.False(t, ok)
}

func TestFieldForWrite_Embedded(t *testing.T) {
	sf, ok := reflect.TypeFor[withEmbedded]().FieldByName("Deep")
	require.True(t, ok)

	obj := reflect.New(reflect.TypeFor[withEmbedded]())

	// the embedded pointer is unexported and cannot be allocated
	_, ok = fieldForWrite(obj, sf.Index)
	assert.False(t, ok)

	_, ok = fieldForRead(obj.Elem(), sf.Index)
	assert.False(t, ok)

	top, ok := reflect.TypeFor[withEmbedded]().FieldByName("Top")
	require.True(t, ok)

	field, ok := fieldForWrite(obj, top.Index)
	require.True(t, ok)
	field.SetString("set")

	v, ok := fieldForRead(obj.Elem(), top.Index)
	require.True(t, ok)
	assert.Equal(t, "set", v)
}
