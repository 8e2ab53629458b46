package vdom

import "strings"

// A creates an Attr with the given key and value.
func A(key string, value any) Attr { return Attr{Key: key, Value: value} }

// ID sets the id attribute.
func ID(id string) Attr { return A("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr { return A("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return A("style", style) }

// DataAttr creates a data-* attribute.
// Example: DataAttr("id", "123") → data-id="123"
func DataAttr(key, value string) Attr { return A("data-"+key, value) }

// Type sets the type attribute.
func Type(t string) Attr { return A("type", t) }

// Value sets the value attribute.
func Value(v any) Attr { return A("value", v) }

// Href sets the href attribute.
func Href(url string) Attr { return A("href", url) }
