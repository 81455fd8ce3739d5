package htmldoc

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/elmordo/OwlInWeb/pkg/host"
)

func mustParse(t *testing.T, d *Document, markup string) *html.Node {
	t.Helper()
	n, err := d.ParseFragment(markup)
	if err != nil {
		t.Fatalf("ParseFragment(%q) error: %v", markup, err)
	}
	return n.(*html.Node)
}

func TestKindOf(t *testing.T) {
	d := New()
	attr, err := d.CreateAttribute("id", "x")
	if err != nil {
		t.Fatalf("CreateAttribute() error: %v", err)
	}

	tests := []struct {
		name string
		node host.Node
		want host.NodeKind
	}{
		{"element", mustParse(t, d, "<div></div>"), host.KindElement},
		{"text", mustParse(t, d, "hello"), host.KindText},
		{"comment", mustParse(t, d, "<!--c-->"), host.KindComment},
		{"attribute", attr, host.KindAttribute},
		{"doctype", &html.Node{Type: html.DoctypeNode}, host.KindUnknown},
		{"foreign", "not a node", host.KindUnknown},
		{"nil", nil, host.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.KindOf(tt.node); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFragment(t *testing.T) {
	d := New()

	root := mustParse(t, d, `<div><span>x</span></div>`)
	if root.Type != html.ElementNode || root.Data != "div" {
		t.Errorf("root = %v %q, want element div", root.Type, root.Data)
	}
	if root.Parent != nil {
		t.Error("parsed root has a parent, want detached")
	}

	if _, err := d.ParseFragment(""); err == nil {
		t.Error("ParseFragment(\"\") succeeded, want error")
	}
}

func TestCreateElement(t *testing.T) {
	d := New()
	n, err := d.CreateElement("DIV")
	if err != nil {
		t.Fatalf("CreateElement() error: %v", err)
	}
	if got := d.TagName(n); got != "div" {
		t.Errorf("TagName() = %q, want %q", got, "div")
	}
	if _, err := d.CreateElement(""); err == nil {
		t.Error("CreateElement(\"\") succeeded, want error")
	}
}

func TestIdentityOnElement(t *testing.T) {
	d := New()
	el := mustParse(t, d, "<div></div>")

	if _, ok := d.Identity(el); ok {
		t.Error("Identity() reports a tag on a fresh node")
	}
	if err := d.SetIdentity(el, 42); err != nil {
		t.Fatalf("SetIdentity() error: %v", err)
	}
	id, ok := d.Identity(el)
	if !ok || id != 42 {
		t.Errorf("Identity() = %d, %v, want 42, true", id, ok)
	}

	// Element identity is the visible reserved attribute.
	if got, ok := d.Attr(el, host.IdentityAttr); !ok || got != "42" {
		t.Errorf("Attr(%q) = %q, %v, want \"42\", true", host.IdentityAttr, got, ok)
	}

	if err := d.SetIdentity(el, 43); err == nil {
		t.Error("second SetIdentity() succeeded, want error")
	}
}

func TestIdentityOnNonElements(t *testing.T) {
	d := New()
	attr, err := d.CreateAttribute("id", "x")
	if err != nil {
		t.Fatalf("CreateAttribute() error: %v", err)
	}

	tests := []struct {
		name string
		node host.Node
	}{
		{"text", mustParse(t, d, "hello")},
		{"comment", mustParse(t, d, "<!--c-->")},
		{"attribute", attr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := d.SetIdentity(tt.node, 7); err != nil {
				t.Fatalf("SetIdentity() error: %v", err)
			}
			id, ok := d.Identity(tt.node)
			if !ok || id != 7 {
				t.Errorf("Identity() = %d, %v, want 7, true", id, ok)
			}
			if err := d.SetIdentity(tt.node, 8); err == nil {
				t.Error("second SetIdentity() succeeded, want error")
			}
		})
	}

	if err := d.SetIdentity(&html.Node{Type: html.DoctypeNode}, 9); err == nil {
		t.Error("SetIdentity() on unsupported node succeeded, want error")
	}
}

func TestAttrCRUD(t *testing.T) {
	d := New()
	el := mustParse(t, d, `<div id="a"></div>`)

	if got, ok := d.Attr(el, "ID"); !ok || got != "a" {
		t.Errorf("Attr(\"ID\") = %q, %v, want \"a\", true (case-folded)", got, ok)
	}
	if err := d.SetAttr(el, "class", "x"); err != nil {
		t.Fatalf("SetAttr() error: %v", err)
	}
	if err := d.SetAttr(el, "class", "y"); err != nil {
		t.Fatalf("SetAttr() overwrite error: %v", err)
	}
	if got, _ := d.Attr(el, "class"); got != "y" {
		t.Errorf("Attr(\"class\") = %q, want %q", got, "y")
	}

	attrs := d.Attrs(el)
	if len(attrs) != 2 || attrs[0].Name != "id" || attrs[1].Name != "class" {
		t.Errorf("Attrs() = %v, want [id class] in order", attrs)
	}

	if err := d.RemoveAttr(el, "id"); err != nil {
		t.Fatalf("RemoveAttr() error: %v", err)
	}
	if _, ok := d.Attr(el, "id"); ok {
		t.Error("Attr(\"id\") still present after RemoveAttr")
	}
	// Removing an absent attribute is a no-op.
	if err := d.RemoveAttr(el, "id"); err != nil {
		t.Errorf("RemoveAttr() of absent attribute error: %v", err)
	}

	text := mustParse(t, d, "hello")
	if err := d.SetAttr(text, "id", "x"); err == nil {
		t.Error("SetAttr() on text node succeeded, want error")
	}
}

func TestAttrNodeStableHandle(t *testing.T) {
	d := New()
	el := mustParse(t, d, `<div id="a"></div>`)

	first, ok := d.AttrNode(el, "id")
	if !ok {
		t.Fatal("AttrNode() = false, want handle")
	}
	second, ok := d.AttrNode(el, "ID")
	if !ok {
		t.Fatal("second AttrNode() = false, want handle")
	}
	if first != second {
		t.Error("AttrNode() returned different handles for the same attribute")
	}
	if _, ok := d.AttrNode(el, "missing"); ok {
		t.Error("AttrNode() of missing attribute returned a handle")
	}

	if got := d.AttrName(first); got != "id" {
		t.Errorf("AttrName() = %q, want %q", got, "id")
	}
	if got := d.AttrValue(first); got != "a" {
		t.Errorf("AttrValue() = %q, want %q", got, "a")
	}

	// Writes through the handle hit the element's storage.
	if err := d.SetAttrValue(first, "z"); err != nil {
		t.Fatalf("SetAttrValue() error: %v", err)
	}
	if got, _ := d.Attr(el, "id"); got != "z" {
		t.Errorf("Attr(\"id\") = %q after SetAttrValue, want %q", got, "z")
	}
}

func TestDetachedAttribute(t *testing.T) {
	d := New()
	attr, err := d.CreateAttribute("Data-X", "1")
	if err != nil {
		t.Fatalf("CreateAttribute() error: %v", err)
	}
	if got := d.AttrName(attr); got != "data-x" {
		t.Errorf("AttrName() = %q, want %q", got, "data-x")
	}
	if got := d.AttrValue(attr); got != "1" {
		t.Errorf("AttrValue() = %q, want %q", got, "1")
	}
	if err := d.SetAttrValue(attr, "2"); err != nil {
		t.Fatalf("SetAttrValue() error: %v", err)
	}
	if got := d.AttrValue(attr); got != "2" {
		t.Errorf("AttrValue() after write = %q, want %q", got, "2")
	}
	if _, err := d.CreateAttribute("", "x"); err == nil {
		t.Error("CreateAttribute(\"\") succeeded, want error")
	}
}

func TestContent(t *testing.T) {
	d := New()
	text := mustParse(t, d, "hello")
	comment := mustParse(t, d, "<!--note-->")

	if got := d.Content(text); got != "hello" {
		t.Errorf("Content(text) = %q, want %q", got, "hello")
	}
	if got := d.Content(comment); got != "note" {
		t.Errorf("Content(comment) = %q, want %q", got, "note")
	}

	if err := d.SetContent(text, "bye"); err != nil {
		t.Fatalf("SetContent() error: %v", err)
	}
	if got := d.Content(text); got != "bye" {
		t.Errorf("Content() after write = %q, want %q", got, "bye")
	}

	el := mustParse(t, d, "<div></div>")
	if err := d.SetContent(el, "x"); err == nil {
		t.Error("SetContent() on element succeeded, want error")
	}
}

func TestStructureOps(t *testing.T) {
	d := New()
	root := mustParse(t, d, `<div><a></a><b></b></div>`)
	kids := d.Children(root)
	if len(kids) != 2 {
		t.Fatalf("Children() = %d nodes, want 2", len(kids))
	}

	p, err := d.CreateElement("p")
	if err != nil {
		t.Fatalf("CreateElement() error: %v", err)
	}
	if err := d.AppendChild(root, p); err != nil {
		t.Fatalf("AppendChild() error: %v", err)
	}
	if got := tagList(d, root); got != "a b p" {
		t.Errorf("children after append = %q, want %q", got, "a b p")
	}

	// Appending again moves the node, it does not duplicate it.
	i, err := d.CreateElement("i")
	if err != nil {
		t.Fatalf("CreateElement() error: %v", err)
	}
	if err := d.InsertBefore(root, i, kids[0]); err != nil {
		t.Fatalf("InsertBefore() error: %v", err)
	}
	if got := tagList(d, root); got != "i a b p" {
		t.Errorf("children after insert = %q, want %q", got, "i a b p")
	}
	if err := d.AppendChild(root, i); err != nil {
		t.Fatalf("re-AppendChild() error: %v", err)
	}
	if got := tagList(d, root); got != "a b p i" {
		t.Errorf("children after re-append = %q, want %q", got, "a b p i")
	}

	other := mustParse(t, d, `<div><u></u></div>`)
	foreignRef := d.Children(other)[0]
	if err := d.InsertBefore(root, p, foreignRef); err == nil {
		t.Error("InsertBefore() with foreign ref succeeded, want error")
	}

	if err := d.RemoveChild(root, p); err != nil {
		t.Fatalf("RemoveChild() error: %v", err)
	}
	if got := tagList(d, root); got != "a b i" {
		t.Errorf("children after remove = %q, want %q", got, "a b i")
	}
	if err := d.RemoveChild(root, p); err == nil {
		t.Error("second RemoveChild() succeeded, want error")
	}

	parent, ok := d.Parent(d.Children(root)[0])
	if !ok || parent != host.Node(root) {
		t.Error("Parent() did not report the containing element")
	}
	if _, ok := d.Parent(root); ok {
		t.Error("Parent() of detached root reports a parent")
	}
}

func TestSubscribeAndDispatch(t *testing.T) {
	d := New()
	el := mustParse(t, d, "<button></button>")

	var order []string
	sub := func(tag string) host.Handler {
		return func(evt host.Event) {
			order = append(order, tag+":"+evt.Type)
		}
	}
	if err := d.Subscribe(el, "click", sub("first")); err != nil {
		t.Fatalf("Subscribe() error: %v", err)
	}
	if err := d.Subscribe(el, "click", sub("second")); err != nil {
		t.Fatalf("Subscribe() error: %v", err)
	}

	d.Dispatch(el, "click")
	if got := strings.Join(order, " "); got != "first:click second:click" {
		t.Errorf("dispatch order = %q, want %q", got, "first:click second:click")
	}

	// Dispatching an event nobody subscribed to is a no-op.
	d.Dispatch(el, "keydown")

	if err := d.Subscribe(el, "", sub("x")); err == nil {
		t.Error("Subscribe() with empty event succeeded, want error")
	}
	if err := d.Subscribe(el, "click", nil); err == nil {
		t.Error("Subscribe() with nil handler succeeded, want error")
	}
	if err := d.Subscribe("not a node", "click", sub("x")); err == nil {
		t.Error("Subscribe() on foreign handle succeeded, want error")
	}
}

func TestMeasure(t *testing.T) {
	measured := New(WithMeasurer(func(n *html.Node) host.Rect {
		return host.Rect{X: 1, Y: 2, Width: 3, Height: 4}
	}))
	bare := New()

	el := mustParse(t, measured, "<div></div>")
	if got := measured.Measure(el); got != (host.Rect{X: 1, Y: 2, Width: 3, Height: 4}) {
		t.Errorf("Measure() = %+v, want the measurer's rect", got)
	}
	text := mustParse(t, measured, "hello")
	if got := measured.Measure(text); got != (host.Rect{}) {
		t.Errorf("Measure(text) = %+v, want zero rect", got)
	}

	el2 := mustParse(t, bare, "<div></div>")
	if got := bare.Measure(el2); got != (host.Rect{}) {
		t.Errorf("Measure() without measurer = %+v, want zero rect", got)
	}
}

func tagList(d *Document, el *html.Node) string {
	var tags []string
	for _, c := range d.Children(el) {
		tags = append(tags, d.TagName(c))
	}
	return strings.Join(tags, " ")
}
