package dom

import (
	"fmt"

	"github.com/vango-dev/vmini/internal/errors"
)

// handlerFunc is the normalized listener signature.
type handlerFunc func(e *Event) error

// wrapHandler converts a registered handler to handlerFunc.
// It supports the following function signatures.
func wrapHandler(value any) (handlerFunc, bool) {
	switch h := value.(type) {
	case func():
		return func(*Event) error { h(); return nil }, true

	case func() error:
		return func(*Event) error { return h() }, true

	case func(*Event):
		return func(e *Event) error { h(e); return nil }, true

	case func(*Event) error:
		return h, true

	// Input/Change handler - string payload
	case func(string):
		return func(e *Event) error { h(payloadText(e)); return nil }, true

	case func(string) error:
		return func(e *Event) error { return h(payloadText(e)) }, true

	default:
		return nil, false
	}
}

func payloadText(e *Event) string {
	switch p := e.Payload.(type) {
	case nil:
		return ""
	case string:
		return p
	default:
		return fmt.Sprint(p)
	}
}

// Dispatch invokes the listeners registered on n for event, in
// registration order, and returns how many ran. The first handler error
// stops the remaining listeners and is returned.
func (n *Node) Dispatch(event string, ev *Event) (int, error) {
	if ev == nil {
		ev = &Event{}
	}
	ev.Type = event
	ev.Target = n

	// Listeners may re-render and replace n's subtree; iterate a snapshot.
	snapshot := make([]listener, len(n.listeners))
	copy(snapshot, n.listeners)

	ran := 0
	for _, l := range snapshot {
		if l.event != event {
			continue
		}
		h, ok := wrapHandler(l.handler)
		if !ok {
			return ran, errors.New("E013").WithDetail(fmt.Sprintf("%s listener has type %T", event, l.handler))
		}
		ran++
		if err := h(ev); err != nil {
			return ran, err
		}
	}
	return ran, nil
}
