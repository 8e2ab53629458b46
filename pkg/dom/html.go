package dom

import (
	"bytes"
	"io"
)

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// OuterHTML serializes n and its subtree.
func (n *Node) OuterHTML() string {
	var buf bytes.Buffer
	// bytes.Buffer writes never fail.
	_ = n.WriteHTML(&buf)
	return buf.String()
}

// InnerHTML serializes n's text and children without n's own tag.
func (n *Node) InnerHTML() string {
	var buf bytes.Buffer
	_ = n.writeContent(&buf)
	return buf.String()
}

// WriteHTML streams n as HTML. Attributes are written in set order; the
// text content precedes child elements.
func (n *Node) WriteHTML(w io.Writer) error {
	if _, err := io.WriteString(w, "<"+n.tag); err != nil {
		return err
	}
	for _, a := range n.attrs {
		if _, err := io.WriteString(w, " "+a.Name+`="`+escapeAttr(a.Value)+`"`); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if IsVoidElement(n.tag) {
		return nil
	}

	if err := n.writeContent(w); err != nil {
		return err
	}

	_, err := io.WriteString(w, "</"+n.tag+">")
	return err
}

func (n *Node) writeContent(w io.Writer) error {
	if n.text != "" {
		if _, err := io.WriteString(w, escapeHTML(n.text)); err != nil {
			return err
		}
	}
	for _, c := range n.children {
		if err := c.WriteHTML(w); err != nil {
			return err
		}
	}
	return nil
}
