// Package dom defines the rendering surface vmini materializes onto, and
// provides an in-memory implementation of it.
//
// The core depends on exactly six primitives: creating an element by tag
// name (Host), and on an Element setting an attribute, registering an event
// listener, setting text content, appending a child and removing a child.
// Parent lookup lets an update reattach a fresh tree where the old one was.
//
// Document is the in-memory surface. Its elements (*Node) keep attributes
// in set order, listeners per event in registration order, and serialize to
// HTML with WriteHTML/OuterHTML. Dispatch invokes listeners, which is how
// the playground server and tests simulate user events.
package dom
