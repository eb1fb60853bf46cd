package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings. A single empty
// string means "no rules"; write [""] for the rule named "".
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1 and the string is not empty,
// otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if s.IsSingle() && s[0] != "" {
		return s[0], nil
	}

	return []string(s), nil
}
