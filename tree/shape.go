package tree

import "iter"

// Shape adapts the built-in Node to the walk engine. It satisfies both
// walk.Shape[*Node] and walk.MutableShape[*Node].
type Shape struct{}

func (Shape) Kind(n *Node) string {
	return string(n.kind)
}

func (Shape) Fields(n *Node) iter.Seq2[string, any] {
	return n.Fields()
}

// Node treats every non-nil *Node field value as a child. Null, leaves,
// and nil children are not nodes.
func (Shape) Node(v any) (*Node, bool) {
	n, ok := v.(*Node)
	return n, ok && n != nil
}

func (Shape) List(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}

func (Shape) SetField(n *Node, name string, v any) {
	n.Set(name, v)
}

func (Shape) DeleteField(n *Node, name string) {
	n.Delete(name)
}

func (Shape) Null() any {
	return Null
}
