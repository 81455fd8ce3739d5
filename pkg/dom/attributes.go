package dom

import (
	"strings"

	"github.com/elmordo/OwlInWeb/pkg/host"
)

// AttributeMap is the live attribute accessor of one element. It reads and
// writes the host's attribute storage directly; nothing is copied or
// cached here except the Attribute wrappers themselves, which go through
// the mapper like every other node.
//
// The reserved identity attribute is invisible through this surface: it is
// excluded from enumeration and rejected by Set and Remove, so the
// identity stamped on a mapped element cannot be spoofed or stripped by
// attribute-level code.
type AttributeMap struct {
	el *Element
}

// Get maps the named attribute into an Attribute wrapper. Fails with
// ErrHost when the element has no such attribute; use Has to probe.
func (m *AttributeMap) Get(name string) (*Attribute, error) {
	name = strings.ToLower(name)
	if name == host.IdentityAttr {
		return nil, newError(CodeHost, "attributes.get", "attribute name %q is reserved", name)
	}
	raw, ok := m.el.mapper.doc.AttrNode(m.el.raw, name)
	if !ok {
		return nil, newError(CodeHost, "attributes.get", "element has no attribute %q", name)
	}
	n, err := m.el.mapper.MapNode(raw)
	if err != nil {
		return nil, err
	}
	return n.(*Attribute), nil
}

// Has reports whether the element carries the named attribute.
func (m *AttributeMap) Has(name string) bool {
	name = strings.ToLower(name)
	if name == host.IdentityAttr {
		return false
	}
	_, ok := m.el.mapper.doc.Attr(m.el.raw, name)
	return ok
}

// Set writes an attribute value, creating the attribute when absent.
func (m *AttributeMap) Set(name, value string) error {
	name = strings.ToLower(name)
	if name == host.IdentityAttr {
		return newError(CodeHost, "attributes.set", "attribute name %q is reserved", name)
	}
	if err := m.el.mapper.doc.SetAttr(m.el.raw, name, value); err != nil {
		return hostError("attributes.set", err)
	}
	return nil
}

// Remove deletes an attribute. Removing an absent attribute is a no-op.
func (m *AttributeMap) Remove(name string) error {
	name = strings.ToLower(name)
	if name == host.IdentityAttr {
		return newError(CodeHost, "attributes.remove", "attribute name %q is reserved", name)
	}
	if err := m.el.mapper.doc.RemoveAttr(m.el.raw, name); err != nil {
		return hostError("attributes.remove", err)
	}
	return nil
}

// ToList maps every attribute into a wrapper, in document order.
func (m *AttributeMap) ToList() (NodeList, error) {
	attrs := m.el.mapper.doc.Attrs(m.el.raw)
	out := make(NodeList, 0, len(attrs))
	for _, a := range attrs {
		if a.Name == host.IdentityAttr {
			continue
		}
		raw, ok := m.el.mapper.doc.AttrNode(m.el.raw, a.Name)
		if !ok {
			continue
		}
		n, err := m.el.mapper.MapNode(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Len reports the number of attributes, excluding the reserved identity
// attribute.
func (m *AttributeMap) Len() int {
	count := 0
	for _, a := range m.el.mapper.doc.Attrs(m.el.raw) {
		if a.Name != host.IdentityAttr {
			count++
		}
	}
	return count
}
