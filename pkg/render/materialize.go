package render

import (
	"github.com/vango-dev/vmini/internal/errors"
	"github.com/vango-dev/vmini/pkg/dom"
	"github.com/vango-dev/vmini/pkg/vdom"
)

// Materialize converts node into a fully populated, unattached element.
// Surface errors are returned unchanged.
func Materialize(host dom.Host, node *vdom.Node) (dom.Element, error) {
	if node == nil {
		return nil, errors.New("E004")
	}

	el, err := host.CreateElement(node.Tag)
	if err != nil {
		return nil, err
	}

	for _, a := range node.Data.Attrs {
		el.SetAttribute(a.Key, Text(a.Value))
	}

	for _, h := range node.Data.On {
		el.AddEventListener(h.Event, h.Handler)
	}

	if err := materializeChildren(host, el, node.Children); err != nil {
		return nil, err
	}

	return el, nil
}

// materializeChildren fills el from a scalar or sequence children value.
func materializeChildren(host dom.Host, el dom.Element, children any) error {
	seq, ok := vdom.Sequence(children)
	if !ok {
		el.SetTextContent(Text(children))
		return nil
	}

	for _, child := range seq {
		switch c := child.(type) {
		case nil:
			continue
		case *vdom.Node:
			if c == nil {
				continue
			}
			childEl, err := Materialize(host, c)
			if err != nil {
				return err
			}
			if err := el.AppendChild(childEl); err != nil {
				return err
			}
		default:
			// Last scalar wins.
			el.SetTextContent(Text(c))
		}
	}
	return nil
}
