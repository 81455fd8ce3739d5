package htmldoc

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/elmordo/OwlInWeb/pkg/host"
)

// Measurer computes the rendered box of an element. Backends embedded in a
// real rendering context supply one; otherwise boxes measure zero.
type Measurer func(n *html.Node) host.Rect

// Option configures a Document.
type Option func(*Document)

// WithMeasurer sets the geometry measurer.
func WithMeasurer(m Measurer) Option {
	return func(d *Document) {
		d.measure = m
	}
}

// Document is the x/net/html-backed host document.
type Document struct {
	measure Measurer

	// ids tags non-element nodes with their identity. Element identity
	// lives in the IdentityAttr attribute instead.
	ids map[host.Node]int64

	// attrNodes holds the stable synthetic handle per element and
	// attribute name.
	attrNodes map[*html.Node]map[string]*attrNode

	// subs holds event subscriptions per node and event type.
	subs map[host.Node]map[string][]host.Handler
}

// New creates an empty host document.
func New(opts ...Option) *Document {
	d := &Document{
		ids:       make(map[host.Node]int64),
		attrNodes: make(map[*html.Node]map[string]*attrNode),
		subs:      make(map[host.Node]map[string][]host.Handler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// attrNode is the synthetic handle for a single attribute. A detached
// attribute (created before being set on an element) carries its own value;
// once owned, reads and writes go through the owner's attribute storage.
type attrNode struct {
	owner *html.Node
	name  string
	val   string
}

// KindOf implements host.Document.
func (d *Document) KindOf(n host.Node) host.NodeKind {
	switch v := n.(type) {
	case *html.Node:
		switch v.Type {
		case html.ElementNode:
			return host.KindElement
		case html.TextNode:
			return host.KindText
		case html.CommentNode:
			return host.KindComment
		}
	case *attrNode:
		return host.KindAttribute
	}
	return host.KindUnknown
}

// fragmentContext is the parsing context for ParseFragment. Fragments are
// parsed as if they appeared inside a <div>.
var fragmentContext = html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}

// ParseFragment implements host.Document. It returns the first top-level
// node of the parsed markup, detached from any parent.
func (d *Document) ParseFragment(markup string) (host.Node, error) {
	ctx := fragmentContext
	nodes, err := html.ParseFragment(strings.NewReader(markup), &ctx)
	if err != nil {
		return nil, fmt.Errorf("htmldoc: parse fragment: %w", err)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("htmldoc: parse fragment: markup produced no nodes")
	}
	return nodes[0], nil
}

// CreateElement implements host.Document.
func (d *Document) CreateElement(tag string) (host.Node, error) {
	if tag == "" {
		return nil, fmt.Errorf("htmldoc: create element: empty tag")
	}
	tag = strings.ToLower(tag)
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}, nil
}

// CreateAttribute implements host.Document. The attribute starts detached;
// it holds its value locally until set on an element.
func (d *Document) CreateAttribute(name, value string) (host.Node, error) {
	if name == "" {
		return nil, fmt.Errorf("htmldoc: create attribute: empty name")
	}
	return &attrNode{name: strings.ToLower(name), val: value}, nil
}

// TagName implements host.Document.
func (d *Document) TagName(n host.Node) string {
	if el, ok := n.(*html.Node); ok && el.Type == html.ElementNode {
		return strings.ToLower(el.Data)
	}
	return ""
}

// Parent implements host.Document. Attribute nodes have no parent.
func (d *Document) Parent(n host.Node) (host.Node, bool) {
	el, ok := n.(*html.Node)
	if !ok || el.Parent == nil {
		return nil, false
	}
	return el.Parent, true
}

// Children implements host.Document.
func (d *Document) Children(n host.Node) []host.Node {
	el, ok := n.(*html.Node)
	if !ok {
		return nil
	}
	var out []host.Node
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// AppendChild implements host.Document. An attached child is detached from
// its current parent first.
func (d *Document) AppendChild(parent, child host.Node) error {
	p, c, err := d.structurePair(parent, child, "append child")
	if err != nil {
		return err
	}
	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}
	p.AppendChild(c)
	return nil
}

// InsertBefore implements host.Document. ref must be a current child of
// parent.
func (d *Document) InsertBefore(parent, child, ref host.Node) error {
	p, c, err := d.structurePair(parent, child, "insert before")
	if err != nil {
		return err
	}
	r, ok := ref.(*html.Node)
	if !ok {
		return fmt.Errorf("htmldoc: insert before: reference is not a tree node")
	}
	if r.Parent != p {
		return fmt.Errorf("htmldoc: insert before: reference is not a child of parent")
	}
	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}
	p.InsertBefore(c, r)
	return nil
}

// RemoveChild implements host.Document.
func (d *Document) RemoveChild(parent, child host.Node) error {
	p, c, err := d.structurePair(parent, child, "remove child")
	if err != nil {
		return err
	}
	if c.Parent != p {
		return fmt.Errorf("htmldoc: remove child: node is not a child of parent")
	}
	p.RemoveChild(c)
	return nil
}

// structurePair checks that both handles are tree nodes and that parent is
// an element.
func (d *Document) structurePair(parent, child host.Node, op string) (*html.Node, *html.Node, error) {
	p, ok := parent.(*html.Node)
	if !ok || p.Type != html.ElementNode {
		return nil, nil, fmt.Errorf("htmldoc: %s: parent is not an element", op)
	}
	c, ok := child.(*html.Node)
	if !ok {
		return nil, nil, fmt.Errorf("htmldoc: %s: child is not a tree node", op)
	}
	return p, c, nil
}

// Measure implements host.Document.
func (d *Document) Measure(n host.Node) host.Rect {
	el, ok := n.(*html.Node)
	if !ok || el.Type != html.ElementNode || d.measure == nil {
		return host.Rect{}
	}
	return d.measure(el)
}
