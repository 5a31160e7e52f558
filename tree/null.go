package tree

type nullType struct{}

// Null is the explicit "no value" marker. A field holding Null is
// present but empty; a deleted field is absent. The two states are
// never conflated, and Null is distinguishable from every node and
// every leaf a producer can construct.
var Null nullType

func (nullType) String() string {
	return "null"
}

// IsNull reports whether v is the explicit "no value" marker.
func IsNull(v any) bool {
	_, ok := v.(nullType)
	return ok
}
