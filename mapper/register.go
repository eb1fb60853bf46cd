package mapper

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"

	"plain-mapper/internal/common"
	"plain-mapper/primitive"
)

// Register files a descriptor for field of type t. The descriptor goes into
// the store of every direction it applies to, under each of its rules.
// Registering the same field and rule again replaces the earlier descriptor;
// other rules of the field are left alone.
func (r *Registry) Register(t reflect.Type, field string, opts Options) error {
	d, err := newDescriptor(t, field, opts)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	toObject, toPlain := d.ToObject(), d.ToPlain()

	for _, rule := range d.rules {
		if toObject {
			r.objects.put(rule, d)
		}

		if toPlain {
			r.plains.put(rule, d)
		}
	}

	r.log.WithFields(logrus.Fields{
		"type":      d.owner.String(),
		"field":     d.field,
		"path":      d.pathOrName,
		"rules":     len(d.rules),
		"to_object": toObject,
		"to_plain":  toPlain,
	}).Debug("mapper: registered descriptor")

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(t reflect.Type, field string, opts Options) {
	if err := r.Register(t, field, opts); err != nil {
		panic(err)
	}
}

// SetConstructor makes ToObject build new instances of t with fn instead of
// the zero value. fn must return a non-nil pointer to t.
func (r *Registry) SetConstructor(t reflect.Type, fn func() any) error {
	st := indirectType(t)
	if st == nil || st.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %v", ErrNotStruct, t)
	}

	want := reflect.PointerTo(st)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.ctors[st] = func() reflect.Value {
		v := reflect.ValueOf(fn())
		if !v.IsValid() || v.Type() != want {
			return reflect.Value{}
		}

		return v
	}

	return nil
}

func newDescriptor(t reflect.Type, field string, opts Options) (*Descriptor, error) {
	owner := indirectType(t)
	if owner == nil || owner.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v", ErrNotStruct, t)
	}

	wrap := func(err error) error {
		return fmt.Errorf("mapper: register %s.%s: %w", owner, field, err)
	}

	sf, ok := owner.FieldByName(field)
	if !ok {
		return nil, wrap(ErrUnknownField)
	}

	if !sf.IsExported() {
		return nil, wrap(ErrUnexportedField)
	}

	if isTrue(opts.ToObjectOnly) && isTrue(opts.ToPlainOnly) {
		return nil, wrap(ErrConflictingDirection)
	}

	kind, nested, err := resolveType(opts.Type)
	if err != nil {
		return nil, wrap(err)
	}

	d := &Descriptor{
		owner:        owner,
		field:        field,
		index:        sf.Index,
		pathOrName:   opts.PathOrName,
		resolvePath:  opts.ResolvePath == nil || *opts.ResolvePath,
		defaultValue: opts.DefaultValue,
		kind:         kind,
		nested:       nested,
		convert:      opts.Convert,
		toObjectOnly: copyBool(opts.ToObjectOnly),
		toPlainOnly:  copyBool(opts.ToPlainOnly),
		rules:        normalizeRules(opts.Rules),
	}

	if d.pathOrName == "" {
		d.pathOrName = field
	}

	return d, nil
}

// resolveType turns a TypeSpec into the coercion kind applied at conversion time.
func resolveType(spec TypeSpec) (primitive.CoercionKind, reflect.Type, error) {
	if !spec.Kind.IsValid() {
		return primitive.CoercionNone, nil, fmt.Errorf("%w: kind %s", ErrInvalidType, spec.Kind)
	}

	kind := spec.Kind
	if kind == primitive.CoercionNone && spec.Type != nil {
		kind = primitive.KindFromType(spec.Type)
	}

	if kind != primitive.CoercionNested {
		return kind, nil, nil
	}

	nested := indirectType(spec.Type)
	if nested == nil || nested.Kind() != reflect.Struct {
		return primitive.CoercionNone, nil, fmt.Errorf("%w: nested type %v is not a struct", ErrInvalidType, spec.Type)
	}

	return kind, nested, nil
}

func normalizeRules(rules []string) []string {
	if len(rules) == 0 {
		return []string{DefaultRule}
	}

	return common.Dedup(rules)
}

func copyBool(b *bool) *bool {
	if b == nil {
		return nil
	}

	return Bool(*b)
}

// TypeBuilder declares the fields of T in one chain.
type TypeBuilder[T any] struct {
	r    *Registry
	t    reflect.Type
	errs []error
}

// Define starts declaring mappings of T on r.
func Define[T any](r *Registry) *TypeBuilder[T] {
	return &TypeBuilder[T]{r: r, t: reflect.TypeFor[T]()}
}

// Field registers one descriptor per Options value for the named field;
// without options the field is mapped under its own name.
func (b *TypeBuilder[T]) Field(name string, opts ...Options) *TypeBuilder[T] {
	if len(opts) == 0 {
		opts = []Options{{}}
	}

	for _, o := range opts {
		if err := b.r.Register(b.t, name, o); err != nil {
			b.errs = append(b.errs, err)
		}
	}

	return b
}

// Constructor sets how new instances of T are built by ToObject.
func (b *TypeBuilder[T]) Constructor(fn func() *T) *TypeBuilder[T] {
	if err := b.r.SetConstructor(b.t, func() any { return fn() }); err != nil {
		b.errs = append(b.errs, err)
	}

	return b
}

// Err returns every error collected by the chain.
func (b *TypeBuilder[T]) Err() error {
	return errors.Join(b.errs...)
}

// Must panics if any declaration of the chain failed.
func (b *TypeBuilder[T]) Must() {
	if err := b.Err(); err != nil {
		panic(err)
	}
}
