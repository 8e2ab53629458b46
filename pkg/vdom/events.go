package vdom

// On creates an EventHandler for the named event.
func On(event string, handler any) EventHandler {
	return EventHandler{Event: event, Handler: handler}
}

// OnClick handles click events.
func OnClick(handler any) EventHandler { return On("click", handler) }

// OnInput handles input events.
func OnInput(handler any) EventHandler { return On("input", handler) }

// OnChange handles change events.
func OnChange(handler any) EventHandler { return On("change", handler) }

// OnSubmit handles form submit events.
func OnSubmit(handler any) EventHandler { return On("submit", handler) }
