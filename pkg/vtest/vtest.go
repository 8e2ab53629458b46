package vtest

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/vango-dev/vmini"
	"github.com/vango-dev/vmini/pkg/dom"
)

// Harness is a mounted instance on its own document.
type Harness struct {
	t    testing.TB
	Inst *vmini.Instance
	Doc  *dom.Document
}

// Mount creates an instance from opts and mounts it into a fresh
// document's body. opts.Host is replaced. A nil opts.Logger discards logs.
//
// Example:
//
//	h := vtest.Mount(t, vmini.Options{Data: ..., Render: ...})
func Mount(t testing.TB, opts vmini.Options) *Harness {
	t.Helper()
	doc := dom.NewDocument()
	opts.Host = doc
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	inst := vmini.New(opts)
	if err := inst.Mount(doc.Body()); err != nil {
		t.Fatalf("vtest: mount: %v", err)
	}
	return &Harness{t: t, Inst: inst, Doc: doc}
}

// Store returns the instance's store.
func (h *Harness) Store() *vmini.Store {
	return h.Inst.Store()
}

// HTML returns the serialized body content.
func (h *Harness) HTML() string {
	return h.Doc.Body().InnerHTML()
}

// Find returns the element with the given id, failing the test if absent.
func (h *Harness) Find(id string) *dom.Node {
	h.t.Helper()
	el := h.Doc.FindByID(id)
	if el == nil {
		h.t.Fatalf("vtest: no element #%s in:\n%s", id, truncate(h.HTML(), 500))
	}
	return el
}

// Text returns the text content of the element with the given id.
func (h *Harness) Text(id string) string {
	h.t.Helper()
	return h.Find(id).TextContent()
}

// Dispatch runs the listeners for event on #id and returns how many ran.
func (h *Harness) Dispatch(id, event string, payload any) int {
	h.t.Helper()
	ran, err := h.Find(id).Dispatch(event, &dom.Event{Payload: payload})
	if err != nil {
		h.t.Fatalf("vtest: %s #%s: %v", event, id, err)
	}
	return ran
}

// Click dispatches "click" on #id.
//
// Example:
//
//	h.Click("inc")
func (h *Harness) Click(id string) {
	h.t.Helper()
	h.Dispatch(id, "click", nil)
}

// Input dispatches "input" on #id with value as payload.
//
// Example:
//
//	h.Input("draft", "milk")
func (h *Harness) Input(id, value string) {
	h.t.Helper()
	h.Dispatch(id, "input", value)
}

// Set writes a data key.
func (h *Harness) Set(key string, value any) {
	h.t.Helper()
	if err := h.Store().Set(key, value); err != nil {
		h.t.Fatalf("vtest: set %s: %v", key, err)
	}
}

// Call invokes a store method.
func (h *Harness) Call(name string, args ...any) any {
	h.t.Helper()
	out, err := h.Store().Call(name, args...)
	if err != nil {
		h.t.Fatalf("vtest: call %s: %v", name, err)
	}
	return out
}

// ExpectContains asserts that the rendered output contains expected.
//
// Example:
//
//	vtest.ExpectContains(t, h, "Welcome")
func ExpectContains(t testing.TB, h *Harness, expected string) {
	t.Helper()
	html := h.HTML()
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that the rendered output does not contain unexpected.
func ExpectNotContains(t testing.TB, h *Harness, unexpected string) {
	t.Helper()
	html := h.HTML()
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that the rendered output contains a tag.
func ExpectElement(t testing.TB, h *Harness, tag string) {
	t.Helper()
	html := h.HTML()
	if !strings.Contains(html, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(html, 500))
	}
}

// ExpectText asserts the text content of #id.
func ExpectText(t testing.TB, h *Harness, id, want string) {
	t.Helper()
	if got := h.Text(id); got != want {
		t.Errorf("#%s text = %q, want %q", id, got, want)
	}
}

// ExpectAttribute asserts an attribute value on #id.
//
// Example:
//
//	vtest.ExpectAttribute(t, h, "item-0", "class", "todo done")
func ExpectAttribute(t testing.TB, h *Harness, id, attr, value string) {
	t.Helper()
	got, ok := h.Find(id).Attribute(attr)
	if !ok {
		t.Errorf("#%s has no %s attribute", id, attr)
		return
	}
	if got != value {
		t.Errorf("#%s %s = %q, want %q", id, attr, got, value)
	}
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
