package dom

import (
	"github.com/vango-dev/vmini/internal/errors"
)

// Attribute is a name/value pair on a Node.
type Attribute struct {
	Name  string
	Value string
}

type listener struct {
	event   string
	handler any
}

// Node is an element of a Document.
type Node struct {
	doc       *Document
	tag       string
	attrs     []Attribute
	listeners []listener
	text      string
	children  []*Node
	parent    *Node
}

// SetAttribute sets name to value, replacing an existing value in place.
func (n *Node) SetAttribute(name, value string) {
	for i := range n.attrs {
		if n.attrs[i].Name == name {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attribute{Name: name, Value: value})
}

// AddEventListener registers handler for event. Handler shapes are checked
// at dispatch time.
func (n *Node) AddEventListener(event string, handler any) {
	n.listeners = append(n.listeners, listener{event: event, handler: handler})
}

// SetTextContent replaces the node's text.
func (n *Node) SetTextContent(text string) {
	n.text = text
}

// AppendChild attaches child as the last child, detaching it from any
// previous parent first.
func (n *Node) AppendChild(child Element) error {
	c, err := n.own(child)
	if err != nil {
		return err
	}
	for p := n; p != nil; p = p.parent {
		if p == c {
			return errors.New("E015")
		}
	}
	if c.parent != nil {
		c.parent.detach(c)
	}
	c.parent = n
	n.children = append(n.children, c)
	return nil
}

// RemoveChild detaches child from n.
func (n *Node) RemoveChild(child Element) error {
	c, err := n.own(child)
	if err != nil {
		return err
	}
	if c.parent != n || !n.detach(c) {
		return errors.New("E012").WithDetail("<" + c.tag + "> is not a child of <" + n.tag + ">")
	}
	return nil
}

// Parent implements Element.
func (n *Node) Parent() Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// ParentNode returns the parent as a *Node.
func (n *Node) ParentNode() *Node {
	return n.parent
}

// Tag returns the element's tag name.
func (n *Node) Tag() string {
	return n.tag
}

// Attribute returns the value of the named attribute.
func (n *Node) Attribute(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attributes returns a copy of the attributes in set order.
func (n *Node) Attributes() []Attribute {
	out := make([]Attribute, len(n.attrs))
	copy(out, n.attrs)
	return out
}

// TextContent returns the node's own text.
func (n *Node) TextContent() string {
	return n.text
}

// Children returns a copy of the child elements.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Listeners returns how many listeners are registered for event.
func (n *Node) Listeners(event string) int {
	count := 0
	for _, l := range n.listeners {
		if l.event == event {
			count++
		}
	}
	return count
}

// FindByID returns the first element in n's subtree (n included) whose id
// attribute equals id, searching depth-first.
func (n *Node) FindByID(id string) *Node {
	if v, ok := n.Attribute("id"); ok && v == id {
		return n
	}
	for _, c := range n.children {
		if found := c.FindByID(id); found != nil {
			return found
		}
	}
	return nil
}

func (n *Node) own(e Element) (*Node, error) {
	c, ok := e.(*Node)
	if !ok || c == nil || c.doc != n.doc {
		return nil, errors.New("E011")
	}
	return c, nil
}

func (n *Node) detach(c *Node) bool {
	for i, existing := range n.children {
		if existing == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return true
		}
	}
	return false
}
