package dom

import (
	"github.com/elmordo/OwlInWeb/pkg/host"
)

// Attribute wraps a raw attribute node. The name is immutable; the value
// reads and writes straight through to the underlying attribute storage.
type Attribute struct {
	base
}

// Kind implements Node.
func (a *Attribute) Kind() host.NodeKind {
	return host.KindAttribute
}

// Name reports the attribute name.
func (a *Attribute) Name() string {
	return a.mapper.doc.AttrName(a.raw)
}

// Value reads the live attribute value.
func (a *Attribute) Value() string {
	return a.mapper.doc.AttrValue(a.raw)
}

// SetValue writes the attribute value.
func (a *Attribute) SetValue(value string) error {
	if err := a.mapper.doc.SetAttrValue(a.raw, value); err != nil {
		return hostError("attribute.set_value", err)
	}
	return nil
}
