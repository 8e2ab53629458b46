package vdom

// Node is a descriptor node.
type Node struct {
	Tag      string // Element tag name (e.g., "div")
	Data     Data   // Attributes and event handlers
	Children any    // Scalar text or a sequence of nodes and text
}

// CreateElement is the element-creation primitive handed to render functions.
type CreateElement func(tag string, data Data, children any) *Node

// H creates a descriptor node, storing its arguments verbatim.
// No validation is performed; bad tags surface when the node is materialized.
func H(tag string, data Data, children any) *Node {
	return &Node{Tag: tag, Data: data, Children: children}
}

// Kids groups children into a sequence.
func Kids(children ...any) []any {
	return children
}

// IsSequence reports whether children is a sequence rather than a scalar.
func IsSequence(children any) bool {
	switch children.(type) {
	case []any, []*Node, []string:
		return true
	default:
		return false
	}
}

// Sequence returns children as a []any when it is a sequence.
func Sequence(children any) ([]any, bool) {
	switch v := children.(type) {
	case []any:
		return v, true
	case []*Node:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}
