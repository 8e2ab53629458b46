// Package vdom provides descriptor nodes for vmini.
//
// A descriptor node is an immutable description of one element to render:
// a tag, its data (attributes and event handlers) and its children. Render
// functions build a fresh tree of nodes on every pass; the render package
// materializes the tree onto a rendering surface and the nodes are then
// discarded.
//
// # Children
//
// Children is either a scalar, which becomes the element's text content, or
// a sequence ([]any, []*Node, []string) whose entries are text or nested
// nodes:
//
//	H("ul", NewData(Class("list")), Kids(
//	    H("li", Data{}, "first"),
//	    H("li", Data{}, "second"),
//	))
//
// # Data
//
// Data keeps attributes and handlers in insertion order, because the
// materializer applies them in that order:
//
//	NewData(ID("inc"), OnClick(func() { ... }))
package vdom
