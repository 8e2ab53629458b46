package dom

import (
	"github.com/vango-dev/vmini/internal/errors"
)

// Document is an in-memory rendering surface.
type Document struct {
	body    *Node
	created int
}

// NewDocument creates an empty document with a body element.
func NewDocument() *Document {
	d := &Document{}
	d.body = &Node{doc: d, tag: "body"}
	return d
}

// Body returns the document's root container.
func (d *Document) Body() *Node {
	return d.body
}

// Created returns how many elements CreateElement has produced.
func (d *Document) Created() int {
	return d.created
}

// CreateElement implements Host.
func (d *Document) CreateElement(tag string) (Element, error) {
	if !validTag(tag) {
		return nil, errors.New("E010").WithDetail("invalid tag name " + quote(tag))
	}
	d.created++
	return &Node{doc: d, tag: tag}, nil
}

// Document returns the document n belongs to.
func (n *Node) Document() *Document {
	return n.doc
}

// FindByID searches the body subtree for an element with the given id.
func (d *Document) FindByID(id string) *Node {
	return d.body.FindByID(id)
}

// validTag reports whether tag starts with a letter and contains only
// letters, digits and hyphens.
func validTag(tag string) bool {
	if tag == "" {
		return false
	}
	for i, r := range tag {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}
	return true
}

func quote(s string) string {
	return `"` + s + `"`
}
