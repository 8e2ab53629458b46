package demo

import (
	"github.com/vango-dev/vmini"
	"github.com/vango-dev/vmini/pkg/vdom"
)

// Counter is a counter with a configurable step.
func Counter() vmini.Options {
	return vmini.Options{
		Data: func() map[string]any {
			return map[string]any{"count": 0, "step": 1, "label": "Counter"}
		},
		Methods: map[string]vmini.Method{
			"increment": func(s *vmini.Store, _ ...any) (any, error) {
				return nil, s.Set("count", toInt(s.Get("count"))+toInt(s.Get("step")))
			},
			"decrement": func(s *vmini.Store, _ ...any) (any, error) {
				return nil, s.Set("count", toInt(s.Get("count"))-toInt(s.Get("step")))
			},
			"reset": func(s *vmini.Store, _ ...any) (any, error) {
				return nil, s.Set("count", 0)
			},
		},
		Render: func(s *vmini.Store, h vmini.CreateElement) *vmini.Node {
			return h("div", vdom.NewData(vdom.ID("counter"), vdom.Class("counter")), vmini.Kids(
				h("h1", vmini.Data{}, s.Get("label")),
				h("p", vdom.NewData(vdom.ID("count")), s.Get("count")),
				button(s, h, "dec", "-", "decrement"),
				button(s, h, "inc", "+", "increment"),
				button(s, h, "reset", "reset", "reset"),
			))
		},
	}
}

// button renders a button that calls the named store method on click.
func button(s *vmini.Store, h vmini.CreateElement, id, label, method string) *vmini.Node {
	fn, _ := s.Get(method).(vmini.BoundMethod)
	return h("button",
		vdom.NewData(vdom.ID(id), vdom.Type("button"), vdom.OnClick(func() error {
			_, err := fn()
			return err
		})),
		label)
}
