package dom

// Host creates elements by tag name.
type Host interface {
	CreateElement(tag string) (Element, error)
}

// Element is a live output element on a rendering surface.
type Element interface {
	SetAttribute(name, value string)
	AddEventListener(event string, handler any)
	SetTextContent(text string)
	AppendChild(child Element) error
	RemoveChild(child Element) error

	// Parent returns the element this one is attached to, or nil.
	Parent() Element
}

// Event is passed to listeners during Dispatch.
type Event struct {
	Type    string
	Target  *Node
	Payload any
}
