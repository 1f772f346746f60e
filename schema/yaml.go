// SPDX-License-Identifier: MIT

package schema

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Parse decodes a nested shape descriptor. Mappings become groups (key
// order preserved), sequences of integers become leaves, and a bare
// integer n becomes the rank-1 leaf (n). JSON input is accepted as well.
// Errors: ErrSyntax, ErrDuplicateName, or the YAML parser error.
func Parse(data []byte) (Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schema{}, err
	}

	return s, nil
}

// UnmarshalYAML implements yaml.Unmarshaler on the node tree so that
// mapping order survives decoding.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) != 1 {
			return fmt.Errorf("line %d: empty document: %w", node.Line, ErrSyntax)
		}
		return s.UnmarshalYAML(node.Content[0])

	case yaml.AliasNode:
		return s.UnmarshalYAML(node.Alias)

	case yaml.ScalarNode:
		d, err := intScalar(node)
		if err != nil {
			return err
		}
		*s = Leaf(d)

		return nil

	case yaml.SequenceNode:
		dims := make([]int, 0, len(node.Content))
		for _, c := range node.Content {
			d, err := intScalar(c)
			if err != nil {
				return err
			}
			dims = append(dims, d)
		}
		*s = Leaf(dims...)

		return nil

	case yaml.MappingNode:
		entries := make([]Entry, 0, len(node.Content)/2)
		seen := make(map[string]struct{}, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			if _, dup := seen[key.Value]; dup {
				return fmt.Errorf("line %d: %q: %w", key.Line, key.Value, ErrDuplicateName)
			}
			seen[key.Value] = struct{}{}

			var child Schema
			if err := child.UnmarshalYAML(val); err != nil {
				return err
			}
			entries = append(entries, Field(key.Value, child))
		}
		*s = Group(entries...)

		return nil

	default:
		return fmt.Errorf("line %d: unexpected node: %w", node.Line, ErrSyntax)
	}
}

// intScalar decodes an integer scalar node.
func intScalar(node *yaml.Node) (int, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return 0, fmt.Errorf("line %d: expected an integer dimension: %w", node.Line, ErrSyntax)
	}
	d, err := strconv.Atoi(node.Value)
	if err != nil {
		return 0, fmt.Errorf("line %d: %q is not an integer: %w", node.Line, node.Value, ErrSyntax)
	}

	return d, nil
}

// MarshalYAML implements yaml.Marshaler: groups become block mappings in
// declared order, leaves become flow sequences.
func (s Schema) MarshalYAML() (any, error) {
	return s.node(), nil
}

func (s Schema) node() *yaml.Node {
	if s.kind == KindLeaf {
		n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, d := range s.shape {
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(d)})
		}

		return n
	}
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range s.entries {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Name},
			e.Schema.node(),
		)
	}

	return n
}
