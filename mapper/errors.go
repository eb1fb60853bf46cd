package mapper

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNotStruct            = errors.New("mapper: type is not a struct")
	ErrUnknownField         = errors.New("mapper: unknown field")
	ErrUnexportedField      = errors.New("mapper: field is not exported")
	ErrConflictingDirection = errors.New("mapper: ToObjectOnly and ToPlainOnly are both set")
	ErrInvalidType          = errors.New("mapper: invalid declared type")
	ErrTypeMismatch         = errors.New("mapper: type mismatch")
	ErrUnexpectedSequence   = errors.New("mapper: unexpected sequence")
	ErrNotSequence          = errors.New("mapper: not a sequence")
)

// ConvertError wraps an error returned by a ConvertFunc.
type ConvertError struct {
	Type      reflect.Type
	Field     string
	Direction Direction
	Err       error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("mapper: %s conversion of %s.%s: %v", e.Direction, e.Type, e.Field, e.Err)
}

func (e *ConvertError) Unwrap() error { return e.Err }
