package vdom

import "sort"

// Data holds an element's attributes and event handlers in insertion order.
type Data struct {
	Attrs []Attr
	On    []EventHandler
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler binds a handler to an event name (e.g. "click").
type EventHandler struct {
	Event   string
	Handler any
}

// NewData builds Data from attributes and handlers.
// Arguments can be: nil, Attr, []Attr, EventHandler, []EventHandler.
// Anything else is ignored.
func NewData(items ...any) Data {
	var d Data
	for _, item := range items {
		switch v := item.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue
		case Attr:
			if !v.IsEmpty() {
				d.Attrs = append(d.Attrs, v)
			}
		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					d.Attrs = append(d.Attrs, a)
				}
			}
		case EventHandler:
			if v.Event != "" && v.Handler != nil {
				d.On = append(d.On, v)
			}
		case []EventHandler:
			for _, h := range v {
				if h.Event != "" && h.Handler != nil {
					d.On = append(d.On, h)
				}
			}
		}
	}
	return d
}

// DataFromMap converts the mapping form {id: "x"} plus {click: fn} into Data.
// Keys are sorted so the resulting order is deterministic.
func DataFromMap(attrs map[string]any, on map[string]any) Data {
	var d Data
	for _, k := range sortedKeys(attrs) {
		d.Attrs = append(d.Attrs, Attr{Key: k, Value: attrs[k]})
	}
	for _, k := range sortedKeys(on) {
		d.On = append(d.On, EventHandler{Event: k, Handler: on[k]})
	}
	return d
}

// Get returns the value of the last attribute named key.
func (d Data) Get(key string) (any, bool) {
	for i := len(d.Attrs) - 1; i >= 0; i-- {
		if d.Attrs[i].Key == key {
			return d.Attrs[i].Value, true
		}
	}
	return nil, false
}

// IsEmpty reports whether d has neither attributes nor handlers.
func (d Data) IsEmpty() bool {
	return len(d.Attrs) == 0 && len(d.On) == 0
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
