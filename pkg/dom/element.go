package dom

import (
	"github.com/elmordo/OwlInWeb/pkg/host"
)

// Element wraps a raw element node.
type Element struct {
	base
}

// Kind implements Node.
func (e *Element) Kind() host.NodeKind {
	return host.KindElement
}

// TagName reports the element's tag, lower-cased.
func (e *Element) TagName() string {
	return e.mapper.doc.TagName(e.raw)
}

// Attributes returns the live attribute accessor for this element.
func (e *Element) Attributes() *AttributeMap {
	return &AttributeMap{el: e}
}

// Style returns the live style accessor for this element.
func (e *Element) Style() *StyleAccess {
	return &StyleAccess{el: e}
}

// Classes returns the live class-list accessor for this element.
func (e *Element) Classes() *ClassList {
	return &ClassList{el: e}
}

// Width reports the rendered box width. Read-only snapshot relayed from
// the host.
func (e *Element) Width() float64 {
	return e.mapper.doc.Measure(e.raw).Width
}

// Height reports the rendered box height.
func (e *Element) Height() float64 {
	return e.mapper.doc.Measure(e.raw).Height
}

// Offset reports the rendered position of the element's top-left corner.
func (e *Element) Offset() (x, y float64) {
	r := e.mapper.doc.Measure(e.raw)
	return r.X, r.Y
}

// Children maps every child raw node, preserving document order.
func (e *Element) Children() (NodeList, error) {
	raws := e.mapper.doc.Children(e.raw)
	out := make(NodeList, 0, len(raws))
	for _, raw := range raws {
		n, err := e.mapper.MapNode(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Append appends node as this element's last child.
func (e *Element) Append(node Node) error {
	if err := e.mapper.doc.AppendChild(e.raw, node.Raw()); err != nil {
		return hostError("element.append", err)
	}
	return nil
}

// InsertAt inserts node among this element's children, immediately before
// the child currently at index. The index must address an existing child;
// anything outside [0, len) fails with ErrInvalidIndex. Use Append to add
// past the end.
func (e *Element) InsertAt(node Node, index int) error {
	children := e.mapper.doc.Children(e.raw)
	if index < 0 || index >= len(children) {
		return newError(CodeInvalidIndex, "element.insert_at", "index %d out of range [0, %d)", index, len(children))
	}
	if err := e.mapper.doc.InsertBefore(e.raw, node.Raw(), children[index]); err != nil {
		return hostError("element.insert_at", err)
	}
	return nil
}

// InsertBefore inserts node immediately before ref among this element's
// children. Fails with ErrInvalidSubtree when ref's computed parent is not
// this element.
func (e *Element) InsertBefore(node, ref Node) error {
	parent, err := ref.Parent()
	if err != nil {
		return err
	}
	if parent == nil || parent.Raw() != e.raw {
		return newError(CodeInvalidSubtree, "element.insert_before", "reference node is not a child of this element")
	}
	if err := e.mapper.doc.InsertBefore(e.raw, node.Raw(), ref.Raw()); err != nil {
		return hostError("element.insert_before", err)
	}
	return nil
}
