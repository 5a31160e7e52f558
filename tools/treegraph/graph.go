// Package treegraph materializes a tree's parent/child structure as a
// directed graph whose edges are labeled with the slot that holds each
// child (field name, or field name plus list index). Passes that need
// random access to structure (parent lookup, reachability counting,
// structural statistics) build the graph once instead of re-walking.
package treegraph

import (
	"fmt"
	"iter"

	"github.com/verdantlang/treewalk/walk"
)

// Graph is a directed graph over node handles with labeled edges. For a
// well-formed tree it has exactly one incoming edge per node except the
// root.
type Graph[N comparable] struct {
	children map[N][]N
	parent   map[N]N
	labels   map[edgeKey[N]]string
	order    []N
}

type edgeKey[N comparable] struct {
	from N
	to   N
}

// New returns an empty graph.
func New[N comparable]() *Graph[N] {
	return &Graph[N]{
		children: make(map[N][]N),
		parent:   make(map[N]N),
		labels:   make(map[edgeKey[N]]string),
	}
}

// AddNode records a node with no edges yet. Adding a known node is a no-op.
func (g *Graph[N]) AddNode(n N) {
	if _, ok := g.children[n]; ok {
		return
	}
	g.children[n] = nil
	g.order = append(g.order, n)
}

// AddEdge records a labeled parent→child edge. Both endpoints are added
// as needed.
func (g *Graph[N]) AddEdge(from, to N, label string) {
	g.AddNode(from)
	g.AddNode(to)
	g.children[from] = append(g.children[from], to)
	g.parent[to] = from
	g.labels[edgeKey[N]{from, to}] = label
}

// Len returns the number of nodes.
func (g *Graph[N]) Len() int {
	return len(g.order)
}

// NumEdges returns the number of edges.
func (g *Graph[N]) NumEdges() int {
	return len(g.labels)
}

// Nodes iterates nodes in insertion order, which for FromTree is
// traversal order.
func (g *Graph[N]) Nodes() iter.Seq[N] {
	return func(yield func(N) bool) {
		for _, n := range g.order {
			if !yield(n) {
				return
			}
		}
	}
}

// Children returns n's children in slot order.
func (g *Graph[N]) Children(n N) []N {
	return g.children[n]
}

// Parent returns n's parent, if n has one.
func (g *Graph[N]) Parent(n N) (N, bool) {
	p, ok := g.parent[n]
	return p, ok
}

// Label returns the slot label of the from→to edge.
func (g *Graph[N]) Label(from, to N) (string, bool) {
	l, ok := g.labels[edgeKey[N]{from, to}]
	return l, ok
}

// FromTree walks the tree rooted at root through the shape and records
// every parent/child edge. Single-child fields are labeled with the
// field name, list elements with name[index]; non-node values do not
// appear.
func FromTree[N comparable](shape walk.Shape[N], root N) *Graph[N] {
	g := New[N]()
	g.AddNode(root)
	addChildren(g, shape, root)
	return g
}

func addChildren[N comparable](g *Graph[N], shape walk.Shape[N], n N) {
	for name, value := range shape.Fields(n) {
		if list, ok := shape.List(value); ok {
			for i, el := range list {
				if c, ok := shape.Node(el); ok {
					g.AddEdge(n, c, fmt.Sprintf("%s[%d]", name, i))
					addChildren(g, shape, c)
				}
			}
			continue
		}
		if c, ok := shape.Node(value); ok {
			g.AddEdge(n, c, name)
			addChildren(g, shape, c)
		}
	}
}
