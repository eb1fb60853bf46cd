package mapper

import (
	"io"
	"reflect"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"
)

// fieldSet keeps descriptors of one rule in registration order.
type fieldSet struct {
	order  []string
	fields map[string]*Descriptor
}

// put inserts d; a descriptor already registered for the same field keeps
// its position and is replaced.
func (fs *fieldSet) put(d *Descriptor) {
	if _, exists := fs.fields[d.field]; !exists {
		fs.order = append(fs.order, d.field)
	}

	fs.fields[d.field] = d
}

// typeRules maps rule names to their fields for one owning type.
type typeRules struct {
	order []string
	rules map[string]*fieldSet
}

func (tr *typeRules) fieldSet(rule string) *fieldSet {
	fs, ok := tr.rules[rule]
	if !ok {
		fs = &fieldSet{fields: make(map[string]*Descriptor)}
		tr.rules[rule] = fs
		tr.order = append(tr.order, rule)
	}

	return fs
}

// store is one direction of the registry: type -> rule -> field -> descriptor.
type store map[reflect.Type]*typeRules

func (s store) put(rule string, d *Descriptor) {
	tr, ok := s[d.owner]
	if !ok {
		tr = &typeRules{rules: make(map[string]*fieldSet)}
		s[d.owner] = tr
	}

	tr.fieldSet(rule).put(d)
}

// Registry holds the descriptors consulted by ToObject and ToPlain.
// Registration and conversion may run concurrently.
type Registry struct {
	mu      sync.RWMutex
	objects store
	plains  store
	ctors   map[reflect.Type]func() reflect.Value
	log     logrus.FieldLogger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for registration and best-effort
// conversion messages.
func WithLogger(l logrus.FieldLogger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		objects: make(store),
		plains:  make(store),
		ctors:   make(map[reflect.Type]func() reflect.Value),
		log:     logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

func (r *Registry) store(dir Direction) store {
	if dir == DirectionObject {
		return r.objects
	}

	return r.plains
}

// HasObjectMapping reports whether t has descriptors used by ToObject.
func (r *Registry) HasObjectMapping(t reflect.Type) bool {
	return r.has(DirectionObject, t)
}

// HasPlainMapping reports whether t has descriptors used by ToPlain.
func (r *Registry) HasPlainMapping(t reflect.Type) bool {
	return r.has(DirectionPlain, t)
}

func (r *Registry) has(dir Direction, t reflect.Type) bool {
	t = indirectType(t)
	if t == nil {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.store(dir)[t]

	return ok
}

// Rules returns the rule names registered for t in registration order.
func (r *Registry) Rules(dir Direction, t reflect.Type) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tr, ok := r.store(dir)[indirectType(t)]
	if !ok {
		return nil
	}

	return slices.Clone(tr.order)
}

// Descriptors returns the descriptors registered for t under rule.
func (r *Registry) Descriptors(dir Direction, t reflect.Type, rule string) []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tr, ok := r.store(dir)[indirectType(t)]
	if !ok {
		return nil
	}

	fs, ok := tr.rules[rule]
	if !ok {
		return nil
	}

	result := make([]*Descriptor, 0, len(fs.order))
	for _, name := range fs.order {
		result = append(result, fs.fields[name])
	}

	return result
}

// plan returns the descriptors a conversion of t applies, in order: the
// selected rules in order, and each field at most once. The second result is
// false when t has nothing registered for dir.
func (r *Registry) plan(dir Direction, t reflect.Type, rules []string) ([]*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tr, ok := r.store(dir)[t]
	if !ok {
		return nil, false
	}

	seen := make(map[string]struct{})

	var result []*Descriptor

	for _, rule := range rules {
		fs, ok := tr.rules[rule]
		if !ok {
			continue
		}

		for _, name := range fs.order {
			if _, done := seen[name]; done {
				continue
			}

			seen[name] = struct{}{}
			result = append(result, fs.fields[name])
		}
	}

	return result, true
}

// construct returns a pointer to a new instance of t.
func (r *Registry) construct(t reflect.Type) reflect.Value {
	r.mu.RLock()
	ctor, ok := r.ctors[t]
	r.mu.RUnlock()

	if ok {
		if v := ctor(); v.IsValid() && !v.IsNil() {
			return v
		}
	}

	return reflect.New(t)
}

// Dump writes both stores to w in a readable form.
func (r *Registry) Dump(w io.Writer) {
	dumpConfig.Fdump(w, r.snapshot())
}

// indirectType strips pointers from t.
func indirectType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}
