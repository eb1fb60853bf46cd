package primitive_test

import (
	"fmt"
	"reflect"
	"time"

	"plain-mapper/primitive"
)

func Example() {
	type Flag bool
	type Code string
	type Empty struct{}

	fmt.Println(primitive.KindFromType(reflect.TypeOf(int(0))))
	fmt.Println(primitive.KindFromType(reflect.TypeOf(float32(0))))
	fmt.Println(primitive.KindFromType(reflect.TypeOf("")))
	fmt.Println(primitive.KindFromType(reflect.TypeOf(Code(""))))
	fmt.Println(primitive.KindFromType(reflect.TypeOf(Flag(false))))
	fmt.Println(primitive.KindFromType(reflect.TypeOf(time.Time{})))
	fmt.Println(primitive.KindFromType(reflect.TypeOf(&time.Time{})))
	fmt.Println(primitive.KindFromType(reflect.TypeOf(Empty{})))
	fmt.Println(primitive.KindFromType(reflect.TypeOf([]string{})))
	fmt.Println(primitive.KindFromType(nil))
	// Output:
	// Number
	// Number
	// String
	// String
	// Boolean
	// Date
	// Date
	// Nested
	// None
	// None
}
