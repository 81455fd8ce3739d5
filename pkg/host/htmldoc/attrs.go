package htmldoc

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/elmordo/OwlInWeb/pkg/host"
)

// SetIdentity implements host.Document. Elements are stamped through the
// reserved attribute; other kinds go into the side table. A node carries at
// most one identity, ever.
func (d *Document) SetIdentity(n host.Node, id int64) error {
	if _, ok := d.Identity(n); ok {
		return fmt.Errorf("htmldoc: set identity: node already carries an identity")
	}
	if el, ok := n.(*html.Node); ok && el.Type == html.ElementNode {
		el.Attr = append(el.Attr, html.Attribute{Key: host.IdentityAttr, Val: strconv.FormatInt(id, 10)})
		return nil
	}
	if d.KindOf(n) == host.KindUnknown {
		return fmt.Errorf("htmldoc: set identity: unrecognized node handle")
	}
	d.ids[n] = id
	return nil
}

// Identity implements host.Document.
func (d *Document) Identity(n host.Node) (int64, bool) {
	if el, ok := n.(*html.Node); ok && el.Type == html.ElementNode {
		for _, a := range el.Attr {
			if a.Key == host.IdentityAttr {
				id, err := strconv.ParseInt(a.Val, 10, 64)
				if err != nil {
					return 0, false
				}
				return id, true
			}
		}
		return 0, false
	}
	id, ok := d.ids[n]
	return id, ok
}

// Attr implements host.Document.
func (d *Document) Attr(n host.Node, name string) (string, bool) {
	el, ok := n.(*html.Node)
	if !ok || el.Type != html.ElementNode {
		return "", false
	}
	name = strings.ToLower(name)
	for _, a := range el.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr implements host.Document.
func (d *Document) SetAttr(n host.Node, name, value string) error {
	el, ok := n.(*html.Node)
	if !ok || el.Type != html.ElementNode {
		return fmt.Errorf("htmldoc: set attribute: node is not an element")
	}
	name = strings.ToLower(name)
	for i := range el.Attr {
		if el.Attr[i].Key == name {
			el.Attr[i].Val = value
			return nil
		}
	}
	el.Attr = append(el.Attr, html.Attribute{Key: name, Val: value})
	return nil
}

// RemoveAttr implements host.Document.
func (d *Document) RemoveAttr(n host.Node, name string) error {
	el, ok := n.(*html.Node)
	if !ok || el.Type != html.ElementNode {
		return fmt.Errorf("htmldoc: remove attribute: node is not an element")
	}
	name = strings.ToLower(name)
	for i := range el.Attr {
		if el.Attr[i].Key == name {
			el.Attr = append(el.Attr[:i], el.Attr[i+1:]...)
			return nil
		}
	}
	return nil
}

// Attrs implements host.Document.
func (d *Document) Attrs(n host.Node) []host.Attr {
	el, ok := n.(*html.Node)
	if !ok || el.Type != html.ElementNode {
		return nil
	}
	out := make([]host.Attr, 0, len(el.Attr))
	for _, a := range el.Attr {
		out = append(out, host.Attr{Name: a.Key, Value: a.Val})
	}
	return out
}

// AttrNode implements host.Document. The handle for a given element and
// attribute name is allocated once and reused on every lookup, so repeated
// wrapping of the same attribute stays idempotent.
func (d *Document) AttrNode(n host.Node, name string) (host.Node, bool) {
	el, ok := n.(*html.Node)
	if !ok || el.Type != html.ElementNode {
		return nil, false
	}
	name = strings.ToLower(name)
	if _, ok := d.Attr(el, name); !ok {
		return nil, false
	}
	byName := d.attrNodes[el]
	if byName == nil {
		byName = make(map[string]*attrNode)
		d.attrNodes[el] = byName
	}
	an := byName[name]
	if an == nil {
		an = &attrNode{owner: el, name: name}
		byName[name] = an
	}
	return an, true
}

// AttrName implements host.Document.
func (d *Document) AttrName(n host.Node) string {
	if an, ok := n.(*attrNode); ok {
		return an.name
	}
	return ""
}

// AttrValue implements host.Document.
func (d *Document) AttrValue(n host.Node) string {
	an, ok := n.(*attrNode)
	if !ok {
		return ""
	}
	if an.owner != nil {
		v, _ := d.Attr(an.owner, an.name)
		return v
	}
	return an.val
}

// SetAttrValue implements host.Document.
func (d *Document) SetAttrValue(n host.Node, value string) error {
	an, ok := n.(*attrNode)
	if !ok {
		return fmt.Errorf("htmldoc: set attribute value: node is not an attribute")
	}
	if an.owner != nil {
		return d.SetAttr(an.owner, an.name, value)
	}
	an.val = value
	return nil
}

// Content implements host.Document.
func (d *Document) Content(n host.Node) string {
	el, ok := n.(*html.Node)
	if !ok || (el.Type != html.TextNode && el.Type != html.CommentNode) {
		return ""
	}
	return el.Data
}

// SetContent implements host.Document.
func (d *Document) SetContent(n host.Node, text string) error {
	el, ok := n.(*html.Node)
	if !ok || (el.Type != html.TextNode && el.Type != html.CommentNode) {
		return fmt.Errorf("htmldoc: set content: node has no text payload")
	}
	el.Data = text
	return nil
}
