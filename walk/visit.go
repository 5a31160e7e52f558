package walk

// Handler is a read-only handler for one node kind. It receives the
// visitor so it can recurse with v.VisitChildren wherever it chooses,
// or not at all.
type Handler[N any] func(v *Visitor[N], n N)

// Visitor walks a tree without modifying it, dispatching each node to
// the handler registered for its kind. Nodes with no handler get the
// fallback, which recurses into children. Useful for analysis passes.
//
// A Visitor value is not safe for concurrent use; distinct visitors
// over disjoint trees are independent.
type Visitor[N any] struct {
	shape    Shape[N]
	handlers map[string]Handler[N]
	fallback Handler[N]
}

// NewVisitor returns a visitor over the given shape. Until handlers are
// registered, Visit recurses into every reachable node and does nothing
// else.
func NewVisitor[N any](shape Shape[N]) *Visitor[N] {
	return &Visitor[N]{
		shape:    shape,
		handlers: make(map[string]Handler[N]),
		fallback: func(v *Visitor[N], n N) { v.VisitChildren(n) },
	}
}

// Handle registers h for nodes of the given kind, replacing any earlier
// registration. Registering a kind the producer never constructs is
// legal and simply unused.
func (v *Visitor[N]) Handle(kind string, h Handler[N]) {
	v.handlers[kind] = h
}

// Fallback replaces the generic fallback run for kinds with no handler.
func (v *Visitor[N]) Fallback(h Handler[N]) {
	v.fallback = h
}

// Visit dispatches n to the handler for its kind, or to the fallback.
func (v *Visitor[N]) Visit(n N) {
	if h, ok := v.handlers[v.shape.Kind(n)]; ok {
		h(v, n)
		return
	}
	v.fallback(v, n)
}

// VisitChildren visits every child of n: for each field in declaration
// order, each node element of a sequence in list order, or the field's
// single child node. Leaves, absent fields, and non-node sequence
// elements are skipped silently.
func (v *Visitor[N]) VisitChildren(n N) {
	for _, value := range v.shape.Fields(n) {
		if list, ok := v.shape.List(value); ok {
			for _, el := range list {
				if c, ok := v.shape.Node(el); ok {
					v.Visit(c)
				}
			}
			continue
		}
		if c, ok := v.shape.Node(value); ok {
			v.Visit(c)
		}
	}
}
