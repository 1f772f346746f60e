// SPDX-License-Identifier: MIT

package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Schema.
type Kind int

const (
	// KindLeaf marks a concrete tensor shape.
	KindLeaf Kind = iota

	// KindGroup marks an ordered mapping of name → Schema.
	KindGroup
)

// String returns "leaf" or "group".
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindGroup:
		return "group"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MaxRank is the highest leaf rank a schema may declare.
const MaxRank = 3

// Schema is either a Leaf (a tensor shape) or a Group (ordered named children).
// The zero value is a Leaf with an empty shape and fails validation.
type Schema struct {
	kind    Kind
	shape   []int   // KindLeaf only
	entries []Entry // KindGroup only, declared order
}

// Entry is one named child of a Group.
type Entry struct {
	Name   string
	Schema Schema
}

// Leaf returns a leaf schema of the given shape. The shape is validated
// lazily (Validate, Dimensionality) so that constructors compose freely.
func Leaf(dims ...int) Schema {
	return Schema{kind: KindLeaf, shape: append([]int(nil), dims...)}
}

// Group returns a group schema whose children keep the given order.
func Group(entries ...Entry) Schema {
	return Schema{kind: KindGroup, entries: append([]Entry(nil), entries...)}
}

// Field pairs a name with a schema for use in Group.
func Field(name string, s Schema) Entry {
	return Entry{Name: name, Schema: s}
}

// Kind reports which variant s holds.
func (s Schema) Kind() Kind {
	return s.kind
}

// Shape returns a copy of the leaf shape, or nil for a group.
func (s Schema) Shape() []int {
	if s.kind != KindLeaf {
		return nil
	}

	return append([]int(nil), s.shape...)
}

// Entries returns a copy of the group children in declared order, or nil for a leaf.
func (s Schema) Entries() []Entry {
	if s.kind != KindGroup {
		return nil
	}

	return append([]Entry(nil), s.entries...)
}

// Lookup follows path through nested groups. An empty path returns s.
func (s Schema) Lookup(path ...string) (Schema, bool) {
	cur := s
	for _, name := range path {
		if cur.kind != KindGroup {
			return Schema{}, false
		}
		found := false
		for _, e := range cur.entries {
			if e.Name == name {
				cur, found = e.Schema, true
				break
			}
		}
		if !found {
			return Schema{}, false
		}
	}

	return cur, true
}

// Walk calls fn for every leaf in traversal order (depth-first, groups in
// declared order) with the leaf's path and shape. Walk stops at the first
// error returned by fn. The path slice is reused between calls; copy it to keep it.
func (s Schema) Walk(fn func(path []string, shape []int) error) error {
	return s.walk(nil, fn)
}

func (s Schema) walk(path []string, fn func([]string, []int) error) error {
	if s.kind == KindLeaf {
		return fn(path, s.shape)
	}
	for _, e := range s.entries {
		if err := e.Schema.walk(append(path, e.Name), fn); err != nil {
			return err
		}
	}

	return nil
}

// NumLeaves returns the number of leaves.
func (s Schema) NumLeaves() int {
	n := 0
	_ = s.Walk(func([]string, []int) error { n++; return nil })

	return n
}

// String renders s compactly, e.g. {a: (8), b: (4, 4)}.
func (s Schema) String() string {
	var sb strings.Builder
	s.format(&sb)

	return sb.String()
}

func (s Schema) format(sb *strings.Builder) {
	if s.kind == KindLeaf {
		sb.WriteString("(")
		for i, d := range s.shape {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(d))
		}
		sb.WriteString(")")

		return
	}
	sb.WriteString("{")
	for i, e := range s.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.Name)
		sb.WriteString(": ")
		e.Schema.format(sb)
	}
	sb.WriteString("}")
}

// PathString joins a leaf path for messages; the root leaf is "<root>".
func PathString(path []string) string {
	if len(path) == 0 {
		return "<root>"
	}

	return strings.Join(path, ".")
}
