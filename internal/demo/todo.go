package demo

import (
	"fmt"
	"strings"

	"github.com/vango-dev/vmini"
	"github.com/vango-dev/vmini/pkg/vdom"
)

// Todo is a todo list with a draft input.
func Todo() vmini.Options {
	return vmini.Options{
		Data: func() map[string]any {
			return map[string]any{"title": "Todo", "items": []any{}, "draft": ""}
		},
		Methods: map[string]vmini.Method{
			"add": func(s *vmini.Store, args ...any) (any, error) {
				text, _ := s.Get("draft").(string)
				if len(args) > 0 {
					text = fmt.Sprint(args[0])
				}
				text = strings.TrimSpace(text)
				if text == "" {
					return nil, nil
				}
				list := append(items(s), map[string]any{"text": text, "done": false})
				if err := s.Set("items", list); err != nil {
					return nil, err
				}
				return nil, s.Set("draft", "")
			},
			"toggle": func(s *vmini.Store, args ...any) (any, error) {
				if len(args) == 0 {
					return nil, fmt.Errorf("toggle: missing index")
				}
				idx := toInt(args[0])
				list := items(s)
				if idx < 0 || idx >= len(list) {
					return nil, fmt.Errorf("toggle: index %d out of range", idx)
				}
				item := copyItem(list[idx])
				item["done"] = item["done"] != true
				list[idx] = item
				return nil, s.Set("items", list)
			},
		},
		Render: func(s *vmini.Store, h vmini.CreateElement) *vmini.Node {
			list := items(s)
			toggle, _ := s.Get("toggle").(vmini.BoundMethod)
			add, _ := s.Get("add").(vmini.BoundMethod)

			lis := make([]*vmini.Node, 0, len(list))
			left := 0
			for i, raw := range list {
				item := copyItem(raw)
				idx := i
				class := "todo"
				if item["done"] == true {
					class = "todo done"
				} else {
					left++
				}
				lis = append(lis, h("li",
					vdom.NewData(vdom.ID(fmt.Sprintf("item-%d", i)), vdom.Class(class), vdom.OnClick(func() error {
						_, err := toggle(idx)
						return err
					})),
					item["text"]))
			}

			return h("div", vdom.NewData(vdom.ID("todo")), vmini.Kids(
				h("h1", vmini.Data{}, s.Get("title")),
				h("ul", vdom.NewData(vdom.Class("items")), lis),
				h("p", vdom.NewData(vdom.ID("remaining")), fmt.Sprintf("%d left", left)),
				h("input", vdom.NewData(
					vdom.ID("draft"),
					vdom.Value(s.Get("draft")),
					vdom.OnInput(func(v string) error { return s.Set("draft", v) }),
				), nil),
				h("button", vdom.NewData(vdom.ID("add"), vdom.OnClick(func() error {
					_, err := add()
					return err
				})), "add"),
			))
		},
	}
}

// items returns a copy of the items list.
func items(s *vmini.Store) []any {
	list, _ := s.Get("items").([]any)
	out := make([]any, len(list))
	copy(out, list)
	return out
}

func copyItem(raw any) map[string]any {
	out := map[string]any{}
	if m, ok := raw.(map[string]any); ok {
		for k, v := range m {
			out[k] = v
		}
	} else if raw != nil {
		out["text"] = raw
	}
	return out
}
