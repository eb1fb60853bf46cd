package primitive

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type panicky struct{}

func (panicky) String() string { panic("no text for you") }

type label struct{ name string }

func (l label) String() string { return "label:" + l.name }

func TestToBoolean(t *testing.T) {
	tests := []struct {
		input    any
		expected bool
	}{
		{true, true},
		{false, false},
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"false", false},
		{"FALSE", false},
		{"1", true},
		{"0", false},
		{1, true},
		{0, false},
		{int8(1), true},
		{uint64(1), true},
		{1.0, true},
		{0.0, false},
		{2, false},
		{-1, false},
		{0.5, false},
		{"yes", false},
		{"", false},
		{nil, false},
		{[]any{true}, false},
		{map[string]any{}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ToBoolean(tt.input), "ToBoolean(%#v)", tt.input)
	}
}

func TestToBoolean_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("integers other than 1 are false", prop.ForAll(
		func(n int) bool {
			return ToBoolean(n) == (n == 1)
		},
		gen.Int(),
	))

	properties.Property("strings outside the recognized set are false", prop.ForAll(
		func(s string) bool {
			want := s == "1" || strings.EqualFold(s, "true")
			return ToBoolean(s) == want
		},
		gen.AnyString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		input    any
		expected float64
	}{
		{1, 1},
		{int64(-7), -7},
		{uint16(9), 9},
		{float32(1.5), 1.5},
		{2.25, 2.25},
		{true, 1},
		{false, 0},
		{nil, 0},
		{"", 0},
		{"   ", 0},
		{"1", 1},
		{" 42 ", 42},
		{"-3.5", -3.5},
		{"+3", 3},
		{".5", 0.5},
		{"1e3", 1000},
		{"0x1A", 26},
		{"0b101", 5},
		{"0o17", 15},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ToNumber(tt.input), "ToNumber(%#v)", tt.input)
	}

	for _, input := range []any{"abc", "1_000", "inf", "NaN", "1.2.3", "0xZZ", "-", struct{}{}, []any{1}} {
		assert.True(t, math.IsNaN(ToNumber(input)), "ToNumber(%#v) should be NaN", input)
	}

	n := 5
	assert.Equal(t, 5.0, ToNumber(&n))
	assert.Equal(t, 0.0, ToNumber((*int)(nil)))
}

func TestToString(t *testing.T) {
	s, err := ToString("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", s)

	s, err = ToString(12)
	require.NoError(t, err)
	assert.Equal(t, "12", s)

	s, err = ToString(true)
	require.NoError(t, err)
	assert.Equal(t, "true", s)

	s, err = ToString(label{name: "x"})
	require.NoError(t, err)
	assert.Equal(t, "label:x", s)

	s, err = ToString(errors.New("boom"))
	require.NoError(t, err)
	assert.Equal(t, "boom", s)

	_, err = ToString(panicky{})
	require.Error(t, err)

	var ce *CoercionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, CoercionString, ce.Kind)
	assert.Contains(t, err.Error(), "no text for you")

	_, err = ToString(nil)
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestToDate(t *testing.T) {
	want := time.Date(2023, time.February, 9, 18, 47, 41, 452_000_000, time.UTC)

	d, err := ToDate("2023-02-09T18:47:41.452Z")
	require.NoError(t, err)
	assert.True(t, want.Equal(d))

	d, err = ToDate(float64(want.UnixMilli()))
	require.NoError(t, err)
	assert.True(t, want.Equal(d))

	d, err = ToDate(want.UnixMilli())
	require.NoError(t, err)
	assert.True(t, want.Equal(d))

	d, err = ToDate("2023-02-09")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.February, 9, 0, 0, 0, 0, time.UTC), d)

	d, err = ToDate(want)
	require.NoError(t, err)
	assert.Equal(t, want, d)

	d, err = ToDate(&want)
	require.NoError(t, err)
	assert.Equal(t, want, d)

	for _, input := range []any{"yesterday", true, nil, (*time.Time)(nil), map[string]any{}} {
		_, err := ToDate(input)
		var ce *CoercionError
		require.ErrorAs(t, err, &ce, "ToDate(%#v)", input)
		assert.Equal(t, CoercionDate, ce.Kind)
	}
}

func TestParseKind(t *testing.T) {
	for name, want := range map[string]CoercionKind{
		"":        CoercionNone,
		"none":    CoercionNone,
		"nested":  CoercionNested,
		"date":    CoercionDate,
		"boolean": CoercionBoolean,
		"bool":    CoercionBoolean,
		"number":  CoercionNumber,
		"string":  CoercionString,
	} {
		got, ok := ParseKind(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := ParseKind("Number")
	assert.False(t, ok)
}

func TestCoercionKind(t *testing.T) {
	assert.True(t, CoercionString.IsPrimitive())
	assert.False(t, CoercionDate.IsPrimitive())
	assert.False(t, CoercionNested.IsPrimitive())

	assert.True(t, CoercionNone.IsValid())
	assert.True(t, CoercionString.IsValid())
	assert.False(t, CoercionKind(CoercionTotal).IsValid())
	assert.False(t, CoercionKind(-1).IsValid())

	assert.Equal(t, "CoercionKind(9)", CoercionKind(9).String())
}
