package walk

import "fmt"

// Op identifies which of the four outcomes an Edit carries.
type Op uint8

const (
	// OpKeep stores the returned node (the original or a replacement)
	// back into its slot.
	OpKeep Op = iota
	// OpDelete removes the slot: a single-child field becomes absent,
	// a list element is dropped.
	OpDelete
	// OpNull stores the shape's explicit "no value" marker. The field
	// stays present; in a list the marker itself becomes an element.
	OpNull
	// OpSplice flattens zero or more nodes into the owning list in
	// place of the element. Valid only for list elements.
	OpSplice
)

func (op Op) String() string {
	switch op {
	case OpKeep:
		return "keep"
	case OpDelete:
		return "delete"
	case OpNull:
		return "null"
	case OpSplice:
		return "splice"
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Edit is the outcome of visiting one node during a transform. Exactly
// one of the four cases applies; Op reports which, and the accessors
// panic when asked for a payload the case does not carry.
type Edit[N any] struct {
	op    Op
	node  N
	nodes []N
}

// Keep leaves n in the slot. n may be the node that was visited or a
// replacement.
func Keep[N any](n N) Edit[N] {
	return Edit[N]{op: OpKeep, node: n}
}

// Delete removes the slot entirely.
func Delete[N any]() Edit[N] {
	return Edit[N]{op: OpDelete}
}

// SetNull stores the explicit "no value" marker in the slot.
func SetNull[N any]() Edit[N] {
	return Edit[N]{op: OpNull}
}

// Splice replaces a list element with the given nodes, flattened in
// order. An empty splice removes the element, like Delete.
func Splice[N any](nodes ...N) Edit[N] {
	return Edit[N]{op: OpSplice, nodes: nodes}
}

// Op returns the edit's case.
func (e Edit[N]) Op() Op {
	return e.op
}

// Node returns the kept node. Panics unless Op is OpKeep.
func (e Edit[N]) Node() N {
	if e.op != OpKeep {
		panic("walk: Node called on " + e.op.String() + " edit")
	}
	return e.node
}

// Nodes returns the spliced nodes. Panics unless Op is OpSplice.
func (e Edit[N]) Nodes() []N {
	if e.op != OpSplice {
		panic("walk: Nodes called on " + e.op.String() + " edit")
	}
	return e.nodes
}
