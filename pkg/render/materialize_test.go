package render

import (
	stderrors "errors"
	"testing"

	"github.com/vango-dev/vmini/internal/errors"
	"github.com/vango-dev/vmini/pkg/dom"
	"github.com/vango-dev/vmini/pkg/vdom"
)

func materialize(t *testing.T, n *vdom.Node) *dom.Node {
	t.Helper()
	el, err := Materialize(dom.NewDocument(), n)
	if err != nil {
		t.Fatalf("Materialize: %v", err)
	}
	return el.(*dom.Node)
}

func TestMaterializeScalarChildren(t *testing.T) {
	el := materialize(t, vdom.H("p", vdom.Data{}, "hello"))

	if el.TextContent() != "hello" {
		t.Errorf("TextContent() = %q, want hello", el.TextContent())
	}
	if len(el.Children()) != 0 {
		t.Errorf("Children() = %d, want 0", len(el.Children()))
	}
	if el.Parent() != nil {
		t.Error("materialized element must not be attached")
	}
}

func TestMaterializeCoercesScalars(t *testing.T) {
	tests := []struct {
		name     string
		children any
		want     string
	}{
		{"int", 0, "0"},
		{"negative", -12, "-12"},
		{"float", 2.5, "2.5"},
		{"bool", true, "true"},
		{"nil", nil, ""},
		{"bytes", []byte("raw"), "raw"},
		{"struct", struct{ A int }{1}, "{1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := materialize(t, vdom.H("span", vdom.Data{}, tt.children))
			if el.TextContent() != tt.want {
				t.Errorf("TextContent() = %q, want %q", el.TextContent(), tt.want)
			}
		})
	}
}

func TestMaterializeAttributesAndListeners(t *testing.T) {
	clicked := 0
	fn := func() { clicked++ }

	el := materialize(t, vdom.H("button",
		vdom.DataFromMap(map[string]any{"id": "x"}, map[string]any{"click": fn}),
		"go"))

	if v, ok := el.Attribute("id"); !ok || v != "x" {
		t.Errorf(`id = %q, %v; want "x"`, v, ok)
	}
	if _, ok := el.Attribute("on"); ok {
		t.Error("event sub-mapping must not become an attribute")
	}
	if el.Listeners("click") != 1 {
		t.Fatalf("Listeners(click) = %d, want 1", el.Listeners("click"))
	}
	if _, err := el.Dispatch("click", nil); err != nil {
		t.Fatal(err)
	}
	if clicked != 1 {
		t.Errorf("clicked = %d, want 1", clicked)
	}
}

func TestMaterializeAttributeOrderAndPassThrough(t *testing.T) {
	el := materialize(t, vdom.H("a",
		vdom.NewData(vdom.Href("/x?a=1&b=2"), vdom.A("tabindex", 3), vdom.A("data-ok", false)),
		nil))

	attrs := el.Attributes()
	want := []dom.Attribute{
		{Name: "href", Value: "/x?a=1&b=2"},
		{Name: "tabindex", Value: "3"},
		{Name: "data-ok", Value: "false"},
	}
	if len(attrs) != len(want) {
		t.Fatalf("Attributes() = %+v", attrs)
	}
	for i := range want {
		if attrs[i] != want[i] {
			t.Errorf("attr %d = %+v, want %+v", i, attrs[i], want[i])
		}
	}
}

func TestMaterializeLastScalarWins(t *testing.T) {
	child := vdom.H("em", vdom.Data{}, "mid")
	el := materialize(t, vdom.H("p", vdom.Data{}, vdom.Kids("a", child, "b")))

	if el.TextContent() != "b" {
		t.Errorf("TextContent() = %q, want b", el.TextContent())
	}
	kids := el.Children()
	if len(kids) != 1 {
		t.Fatalf("Children() = %d, want 1", len(kids))
	}
	if kids[0].Tag() != "em" || kids[0].TextContent() != "mid" {
		t.Errorf("child = <%s>%s", kids[0].Tag(), kids[0].TextContent())
	}
}

func TestMaterializeNestedSequences(t *testing.T) {
	list := vdom.H("ul", vdom.NewData(vdom.Class("list")), []*vdom.Node{
		vdom.H("li", vdom.Data{}, "one"),
		nil,
		vdom.H("li", vdom.Data{}, vdom.Kids(vdom.H("b", vdom.Data{}, 2))),
	})

	el := materialize(t, list)
	if got, want := el.OuterHTML(), `<ul class="list"><li>one</li><li><b>2</b></li></ul>`; got != want {
		t.Errorf("OuterHTML() = %s, want %s", got, want)
	}
}

func TestMaterializeStringSequence(t *testing.T) {
	el := materialize(t, vdom.H("p", vdom.Data{}, []string{"x", "y"}))
	if el.TextContent() != "y" {
		t.Errorf("TextContent() = %q, want y", el.TextContent())
	}
}

func TestMaterializeErrors(t *testing.T) {
	doc := dom.NewDocument()

	if _, err := Materialize(doc, nil); !stderrors.Is(err, errors.New("E004")) {
		t.Errorf("nil node err = %v, want E004", err)
	}

	_, err := Materialize(doc, vdom.H("div", vdom.Data{}, vdom.Kids(vdom.H("bad tag", vdom.Data{}, nil))))
	if !stderrors.Is(err, errors.New("E010")) {
		t.Errorf("nested bad tag err = %v, want E010", err)
	}
}

type upper string

func (u upper) String() string { return "U:" + string(u) }

func TestText(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{upper("x"), "U:x"},
		{int64(9), "9"},
		{uint8(7), "7"},
		{float32(1.5), "1.5"},
		{stderrors.New("bad"), "bad"},
		{[]int{1, 2}, "[1 2]"},
	}
	for _, tt := range tests {
		if got := Text(tt.in); got != tt.want {
			t.Errorf("Text(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
