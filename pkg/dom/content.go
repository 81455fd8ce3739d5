package dom

import (
	"github.com/elmordo/OwlInWeb/pkg/host"
)

// Text wraps a raw text node.
type Text struct {
	base
}

// Kind implements Node.
func (t *Text) Kind() host.NodeKind {
	return host.KindText
}

// Content reads the live text payload.
func (t *Text) Content() string {
	return t.mapper.doc.Content(t.raw)
}

// SetContent writes the text payload.
func (t *Text) SetContent(text string) error {
	if err := t.mapper.doc.SetContent(t.raw, text); err != nil {
		return hostError("text.set_content", err)
	}
	return nil
}

// Comment wraps a raw comment node.
type Comment struct {
	base
}

// Kind implements Node.
func (c *Comment) Kind() host.NodeKind {
	return host.KindComment
}

// Content reads the live comment payload.
func (c *Comment) Content() string {
	return c.mapper.doc.Content(c.raw)
}

// SetContent writes the comment payload.
func (c *Comment) SetContent(text string) error {
	if err := c.mapper.doc.SetContent(c.raw, text); err != nil {
		return hostError("comment.set_content", err)
	}
	return nil
}
