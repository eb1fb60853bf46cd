package mapper

import (
	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// DescriptorView is the printable form of a Descriptor.
type DescriptorView struct {
	Path         string
	ResolvePath  bool
	DefaultValue any
	Kind         string
	Nested       string
	Converter    bool
}

// StoreView maps type name -> rule -> field -> descriptor.
type StoreView map[string]map[string]map[string]DescriptorView

// Snapshot is a copy of both registry stores keyed by names.
type Snapshot struct {
	ToObject StoreView
	ToPlain  StoreView
}

// Snapshot returns a printable copy of the registry contents. DefaultRule is
// shown as "default".
func (r *Registry) Snapshot() Snapshot {
	return r.snapshot()
}

func (r *Registry) snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return Snapshot{
		ToObject: viewStore(r.objects),
		ToPlain:  viewStore(r.plains),
	}
}

func viewStore(s store) StoreView {
	view := make(StoreView, len(s))

	for t, tr := range s {
		rules := make(map[string]map[string]DescriptorView, len(tr.order))

		for _, rule := range tr.order {
			fs := tr.rules[rule]
			fields := make(map[string]DescriptorView, len(fs.order))

			for _, name := range fs.order {
				d := fs.fields[name]
				dv := DescriptorView{
					Path:         d.pathOrName,
					ResolvePath:  d.resolvePath,
					DefaultValue: d.defaultValue,
					Kind:         d.kind.String(),
					Converter:    d.convert != nil,
				}
				if d.nested != nil {
					dv.Nested = d.nested.String()
				}

				fields[name] = dv
			}

			rules[ruleLabel(rule)] = fields
		}

		view[t.String()] = rules
	}

	return view
}

func ruleLabel(rule string) string {
	if rule == DefaultRule {
		return "default"
	}

	return rule
}
