package mapper

import (
	"slices"

	"plain-mapper/internal/common"
)

// ConvertOption configures a single ToObject or ToPlain call.
type ConvertOption func(*convertOptions)

type convertOptions struct {
	rules          []string
	excludeDefault bool
}

// WithRules selects the rules applied by the conversion, in priority order.
func WithRules(rules ...string) ConvertOption {
	return func(o *convertOptions) {
		o.rules = append(o.rules, rules...)
	}
}

// ExcludeDefaultRule drops DefaultRule from the selection. It has no effect
// unless at least one rule is given with WithRules.
func ExcludeDefaultRule() ConvertOption {
	return func(o *convertOptions) {
		o.excludeDefault = true
	}
}

func newConvertOptions(opts []ConvertOption) convertOptions {
	var o convertOptions
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// selected returns the ordered, de-duplicated rule list of a conversion.
func (o convertOptions) selected() []string {
	result := common.Dedup(o.rules)

	if (!o.excludeDefault || len(o.rules) == 0) && !slices.Contains(result, DefaultRule) {
		result = append(result, DefaultRule)
	}

	return result
}
