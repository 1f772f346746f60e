// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wbe/schema"
	"github.com/katalvlaran/wbe/tensor"
)

// Phenotype is the decoded counterpart of a schema.Schema: a leaf holds a
// tensor, a group holds named children in the schema's declared order.
type Phenotype struct {
	kind    schema.Kind
	tensor  *tensor.Dense // KindLeaf only
	entries []Named       // KindGroup only
}

// Named is one child of a group Phenotype.
type Named struct {
	Name  string
	Value Phenotype
}

func leafPhenotype(t *tensor.Dense) Phenotype {
	return Phenotype{kind: schema.KindLeaf, tensor: t}
}

func groupPhenotype(entries []Named) Phenotype {
	return Phenotype{kind: schema.KindGroup, entries: entries}
}

// Kind reports which variant p holds.
func (p Phenotype) Kind() schema.Kind {
	return p.kind
}

// Tensor returns the leaf tensor, or nil for a group. The tensor is owned by p.
func (p Phenotype) Tensor() *tensor.Dense {
	return p.tensor
}

// Entries returns a copy of the group children, or nil for a leaf.
func (p Phenotype) Entries() []Named {
	if p.kind != schema.KindGroup {
		return nil
	}

	return append([]Named(nil), p.entries...)
}

// Get follows path through nested groups. An empty path returns p.
// Errors: ErrNotFound (wrapped with the path).
func (p Phenotype) Get(path ...string) (Phenotype, error) {
	cur := p
	for i, name := range path {
		next, ok := cur.child(name)
		if !ok {
			return Phenotype{}, fmt.Errorf("%s: %w", schema.PathString(path[:i+1]), ErrNotFound)
		}
		cur = next
	}

	return cur, nil
}

func (p Phenotype) child(name string) (Phenotype, bool) {
	if p.kind != schema.KindGroup {
		return Phenotype{}, false
	}
	for _, e := range p.entries {
		if e.Name == name {
			return e.Value, true
		}
	}

	return Phenotype{}, false
}

// Walk calls fn for every leaf in traversal order with its path and tensor.
// The path slice is reused between calls. Walk stops at the first error.
func (p Phenotype) Walk(fn func(path []string, t *tensor.Dense) error) error {
	return p.walk(nil, fn)
}

func (p Phenotype) walk(path []string, fn func([]string, *tensor.Dense) error) error {
	if p.kind == schema.KindLeaf {
		return fn(path, p.tensor)
	}
	for _, e := range p.entries {
		if err := e.Value.walk(append(path, e.Name), fn); err != nil {
			return err
		}
	}

	return nil
}

// Leaves returns the leaf tensors in traversal order.
func (p Phenotype) Leaves() []*tensor.Dense {
	var out []*tensor.Dense
	_ = p.Walk(func(_ []string, t *tensor.Dense) error {
		out = append(out, t)
		return nil
	})

	return out
}

// MarshalYAML implements yaml.Marshaler: groups become mappings in declared
// order, leaves become nested flow sequences.
func (p Phenotype) MarshalYAML() (any, error) {
	return p.node()
}

func (p Phenotype) node() (*yaml.Node, error) {
	if p.kind == schema.KindLeaf {
		n := &yaml.Node{}
		if p.tensor == nil {
			return n, n.Encode(nil)
		}
		if err := n.Encode(p.tensor.Nested()); err != nil {
			return nil, err
		}
		n.Style = yaml.FlowStyle

		return n, nil
	}
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range p.entries {
		child, err := e.Value.node()
		if err != nil {
			return nil, fmt.Errorf("%q: %w", e.Name, err)
		}
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Name}, child)
	}

	return n, nil
}
