package dom

import (
	"strings"
)

// StyleAccess reads and writes the inline style declarations of one
// element. Declarations live in the element's style attribute as
// "prop: value; prop: value"; declaration order is preserved across
// writes.
type StyleAccess struct {
	el *Element
}

// declaration is one parsed "prop: value" pair.
type declaration struct {
	prop  string
	value string
}

// parseStyle splits a style attribute into declarations, dropping
// malformed entries.
func parseStyle(raw string) []declaration {
	var decls []declaration
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(strings.ToLower(prop))
		value = strings.TrimSpace(value)
		if prop == "" || value == "" {
			continue
		}
		decls = append(decls, declaration{prop: prop, value: value})
	}
	return decls
}

// formatStyle renders declarations back into attribute text.
func formatStyle(decls []declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.prop+": "+d.value)
	}
	return strings.Join(parts, "; ")
}

// declarations parses the element's current style attribute.
func (s *StyleAccess) declarations() []declaration {
	raw, _ := s.el.mapper.doc.Attr(s.el.raw, "style")
	return parseStyle(raw)
}

// write renders declarations into the style attribute. An empty set
// removes the attribute entirely.
func (s *StyleAccess) write(decls []declaration) error {
	if len(decls) == 0 {
		if err := s.el.mapper.doc.RemoveAttr(s.el.raw, "style"); err != nil {
			return hostError("style.write", err)
		}
		return nil
	}
	if err := s.el.mapper.doc.SetAttr(s.el.raw, "style", formatStyle(decls)); err != nil {
		return hostError("style.write", err)
	}
	return nil
}

// Get reads one style property.
func (s *StyleAccess) Get(prop string) (string, bool) {
	prop = strings.TrimSpace(strings.ToLower(prop))
	for _, d := range s.declarations() {
		if d.prop == prop {
			return d.value, true
		}
	}
	return "", false
}

// Set writes one style property, keeping the position of an existing
// declaration and appending a new one at the end.
func (s *StyleAccess) Set(prop, value string) error {
	prop = strings.TrimSpace(strings.ToLower(prop))
	value = strings.TrimSpace(value)
	decls := s.declarations()
	for i := range decls {
		if decls[i].prop == prop {
			decls[i].value = value
			return s.write(decls)
		}
	}
	return s.write(append(decls, declaration{prop: prop, value: value}))
}

// Remove deletes one style property. Removing an absent property is a
// no-op.
func (s *StyleAccess) Remove(prop string) error {
	prop = strings.TrimSpace(strings.ToLower(prop))
	decls := s.declarations()
	for i := range decls {
		if decls[i].prop == prop {
			return s.write(append(decls[:i], decls[i+1:]...))
		}
	}
	return nil
}

// ClassList reads and writes the class attribute of one element as a set
// of whitespace-separated class names, preserving order.
type ClassList struct {
	el *Element
}

// classes parses the element's current class attribute.
func (c *ClassList) classes() []string {
	raw, _ := c.el.mapper.doc.Attr(c.el.raw, "class")
	return strings.Fields(raw)
}

// write renders class names into the class attribute. An empty set removes
// the attribute entirely.
func (c *ClassList) write(names []string) error {
	if len(names) == 0 {
		if err := c.el.mapper.doc.RemoveAttr(c.el.raw, "class"); err != nil {
			return hostError("classes.write", err)
		}
		return nil
	}
	if err := c.el.mapper.doc.SetAttr(c.el.raw, "class", strings.Join(names, " ")); err != nil {
		return hostError("classes.write", err)
	}
	return nil
}

// Contains reports whether the class is present.
func (c *ClassList) Contains(name string) bool {
	for _, cls := range c.classes() {
		if cls == name {
			return true
		}
	}
	return false
}

// Add appends the class when absent.
func (c *ClassList) Add(name string) error {
	if name == "" || c.Contains(name) {
		return nil
	}
	return c.write(append(c.classes(), name))
}

// Remove deletes the class when present.
func (c *ClassList) Remove(name string) error {
	names := c.classes()
	for i, cls := range names {
		if cls == name {
			return c.write(append(names[:i], names[i+1:]...))
		}
	}
	return nil
}

// Toggle flips the class and reports whether it is present afterwards.
func (c *ClassList) Toggle(name string) (bool, error) {
	if c.Contains(name) {
		return false, c.Remove(name)
	}
	return true, c.Add(name)
}

// List returns the class names in attribute order.
func (c *ClassList) List() []string {
	return c.classes()
}
