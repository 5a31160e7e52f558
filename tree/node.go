// Package tree provides the built-in node representation used by the
// walk engine: a kind tag plus an ordered table of named fields.
//
// A field's value is one of: an opaque leaf, a *Node child, a []any
// sequence of children (possibly mixed with leaves), or the explicit
// Null marker. A field that has been deleted is absent entirely, which
// is a different state from holding Null.
package tree

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// Kind identifies a node's concrete variant. Handlers are dispatched on it.
type Kind string

// Node is a tree element. Fields keep their declaration order, so
// traversal over a given vocabulary is reproducible.
type Node struct {
	kind   Kind
	fields []Field
}

// Field is a single named slot on a Node.
type Field struct {
	Name  string
	Value any
}

// F is shorthand for constructing a Field.
func F(name string, value any) Field {
	return Field{Name: name, Value: value}
}

// New builds a node of the given kind whose fields appear in the given order.
func New(kind Kind, fields ...Field) *Node {
	return &Node{kind: kind, fields: slices.Clone(fields)}
}

// Kind returns the node's type tag.
func (n *Node) Kind() Kind {
	return n.kind
}

// Fields enumerates the node's fields in declaration order. Deleted
// fields are not reported.
func (n *Node) Fields() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, f := range n.fields {
			if !yield(f.Name, f.Value) {
				return
			}
		}
	}
}

// NumFields returns the number of fields currently present.
func (n *Node) NumFields() int {
	return len(n.fields)
}

// Has reports whether the named field is present.
func (n *Node) Has(name string) bool {
	return n.index(name) >= 0
}

// Get returns the named field's value, and whether the field is present.
func (n *Node) Get(name string) (any, bool) {
	if i := n.index(name); i >= 0 {
		return n.fields[i].Value, true
	}
	return nil, false
}

// Set stores value in an existing field. Setting an absent field is a
// contract violation and panics.
func (n *Node) Set(name string, value any) {
	i := n.index(name)
	if i < 0 {
		panic(fmt.Sprintf("tree: set of absent field %q on %s node", name, n.kind))
	}
	n.fields[i].Value = value
}

// Delete removes the field entirely; later enumeration will not report
// it. Deleting an absent field is a contract violation and panics.
func (n *Node) Delete(name string) {
	i := n.index(name)
	if i < 0 {
		panic(fmt.Sprintf("tree: delete of absent field %q on %s node", name, n.kind))
	}
	n.fields = slices.Delete(n.fields, i, i+1)
}

func (n *Node) index(name string) int {
	return slices.IndexFunc(n.fields, func(f Field) bool { return f.Name == name })
}

// Clone returns a deep copy of the tree rooted at n. Child nodes and
// sequences are copied; leaf values are shared.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{kind: n.kind, fields: make([]Field, len(n.fields))}
	for i, f := range n.fields {
		c.fields[i] = Field{Name: f.Name, Value: cloneValue(f.Value)}
	}
	return c
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case *Node:
		return v.Clone()
	case []any:
		list := make([]any, len(v))
		for i, el := range v {
			list[i] = cloneValue(el)
		}
		return list
	default:
		return v
	}
}

// Equal reports whether two trees have the same structure: equal kinds,
// the same fields in the same order, and recursively equal values.
// Null compares equal only to Null, never to an absent field.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.kind != o.kind || len(n.fields) != len(o.fields) {
		return false
	}
	for i := range n.fields {
		if n.fields[i].Name != o.fields[i].Name {
			return false
		}
		if !valueEqual(n.fields[i].Value, o.fields[i].Value) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	switch a := a.(type) {
	case *Node:
		b, ok := b.(*Node)
		return ok && a.Equal(b)
	case []any:
		b, ok := b.([]any)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !valueEqual(a[i], b[i]) {
				return false
			}
		}
		return true
	case nullType:
		return IsNull(b)
	default:
		return reflect.DeepEqual(a, b)
	}
}
