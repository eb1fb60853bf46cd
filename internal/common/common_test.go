package common

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type sample struct{}

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "", PkgAlias(""))
	assert.Equal(t, "odata", PkgAlias("plain-mapper/examples/odata"))
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "common.sample", TypeName(reflect.TypeOf(sample{})))
	assert.Equal(t, "common.sample", TypeName(reflect.TypeOf(&sample{})))
	assert.Equal(t, "time.Time", TypeName(reflect.TypeOf(time.Time{})))
	assert.Equal(t, "int", TypeName(reflect.TypeOf(0)))
	assert.Equal(t, "[]string", TypeName(reflect.TypeOf([]string{})))
	assert.Equal(t, "", TypeName(nil))
}

func TestSliceHelpers(t *testing.T) {
	assert.True(t, IsEmpty([]string{}))
	assert.True(t, IsSingle([]string{"a"}))
	assert.False(t, IsSingle([]string{"a", "b"}))

	first, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", first)

	_, ok = First([]string(nil))
	assert.False(t, ok)
}

func TestDedup(t *testing.T) {
	assert.Equal(t, []string{"b", "a", ""}, Dedup([]string{"b", "a", "b", "", "a"}))
	assert.Equal(t, []int{}, Dedup([]int(nil)))

	in := []int{1, 2}
	out := Dedup(in)
	out[0] = 9
	assert.Equal(t, []int{1, 2}, in)
}
