// Package vmini is a minimal reactive UI-rendering core.
//
// An Instance binds a plain data mapping to a render function. The render
// function reads data through the instance's Store and returns a tree of
// descriptor nodes, which is materialized onto a rendering surface. Every
// data key read during that render pass becomes a dependency; writing one of
// those keys later discards the whole output tree and renders a fresh one in
// its place.
//
//	inst := vmini.New(vmini.Options{
//	    Data: func() map[string]any { return map[string]any{"count": 0} },
//	    Render: func(s *vmini.Store, h vmini.CreateElement) *vmini.Node {
//	        return h("p", vmini.Data{}, s.Get("count"))
//	    },
//	})
//	doc := dom.NewDocument()
//	_ = inst.Mount(doc.Body())        // <p>0</p>, created in doc
//	_ = inst.Store().Set("count", 5)  // <p>5</p>
//
// Everything is synchronous: Set returns after the notification, the
// re-render and the re-materialization have all completed. There is no
// batching and no diffing, and instances are not safe for concurrent use.
package vmini

import (
	"github.com/vango-dev/vmini/pkg/reactive"
	"github.com/vango-dev/vmini/pkg/render"
	"github.com/vango-dev/vmini/pkg/vdom"
)

// =============================================================================
// Reactive primitives (re-export from pkg/reactive)
// =============================================================================

// Store is the observable mapping render functions read from.
type Store = reactive.Store

// Method is a named method invoked with the store as receiver.
type Method = reactive.Method

// BoundMethod is a Method bound to a store, as returned by Store.Get.
type BoundMethod = reactive.BoundMethod

// Callback receives the previous and new value of a changed key.
type Callback = reactive.Callback

// Value returns key's value as a T.
func Value[T any](s *Store, key string) (T, bool) {
	return reactive.Value[T](s, key)
}

// =============================================================================
// Descriptor nodes (re-export from pkg/vdom)
// =============================================================================

// Node is a descriptor node.
type Node = vdom.Node

// Data holds a node's attributes and event handlers.
type Data = vdom.Data

// CreateElement is the element-creation primitive passed to render functions.
type CreateElement = vdom.CreateElement

// H creates a descriptor node.
var H = vdom.H

// Kids groups children into a sequence.
var Kids = vdom.Kids

// Text coerces a value to the text a surface receives, as scalar children
// are coerced during materialization.
var Text = render.Text
