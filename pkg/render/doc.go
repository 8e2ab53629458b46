// Package render materializes descriptor-node trees onto a rendering
// surface.
//
// Materialize creates one element per node, applies attributes and event
// listeners in data order and fills children. A scalar Children value
// becomes the element's text content. In a sequence, every scalar entry
// overwrites the text content, so the last one wins, and every nested node
// is materialized and appended:
//
//	// <p> with text "b" and one <em> child
//	vdom.H("p", vdom.Data{}, vdom.Kids("a", vdom.H("em", vdom.Data{}, "x"), "b"))
//
// Values are coerced to text and passed to the surface as-is; escaping is the
// surface's concern. The returned element is not attached to any parent.
package render
