package dom

import (
	"github.com/elmordo/OwlInWeb/pkg/host"
)

// Factory builds the wrapper for one node kind. Factories are invoked only
// by the Mapper; constructing wrappers anywhere else would bypass the
// identity cache.
type Factory interface {
	// CreateWrapper builds a wrapper for the raw node, bound to the given
	// mapper for traversal.
	CreateWrapper(raw host.Node, m *Mapper) (Node, error)

	// Supports reports whether this factory handles the raw node.
	Supports(raw host.Node) bool
}

// supportedKinds is the closed set of node kinds the wrapper layer maps.
var supportedKinds = []host.NodeKind{
	host.KindElement,
	host.KindAttribute,
	host.KindText,
	host.KindComment,
}

// Registry dispatches node kinds to factories. The table is built once at
// Mapper construction and validated to cover exactly the supported kinds;
// there is no fallback wrapper for anything else.
type Registry struct {
	doc       host.Document
	factories map[host.NodeKind]Factory
}

// NewRegistry builds the registry with the default factory per supported
// kind.
func NewRegistry(doc host.Document) (*Registry, error) {
	r := &Registry{
		doc: doc,
		factories: map[host.NodeKind]Factory{
			host.KindElement:   elementFactory{doc: doc},
			host.KindAttribute: attributeFactory{doc: doc},
			host.KindText:      textFactory{doc: doc},
			host.KindComment:   commentFactory{doc: doc},
		},
	}
	for _, k := range supportedKinds {
		if r.factories[k] == nil {
			return nil, newError(CodeUnsupportedKind, "registry.new", "no factory registered for kind %s", k)
		}
	}
	return r, nil
}

// Lookup returns the factory for a node kind, or ErrUnsupportedKind.
func (r *Registry) Lookup(kind host.NodeKind) (Factory, error) {
	f, ok := r.factories[kind]
	if !ok {
		return nil, newError(CodeUnsupportedKind, "registry.lookup", "no factory for node kind %s", kind)
	}
	return f, nil
}

type elementFactory struct {
	doc host.Document
}

func (f elementFactory) Supports(raw host.Node) bool {
	return f.doc.KindOf(raw) == host.KindElement
}

func (f elementFactory) CreateWrapper(raw host.Node, m *Mapper) (Node, error) {
	return &Element{base: base{raw: raw, mapper: m}}, nil
}

type attributeFactory struct {
	doc host.Document
}

func (f attributeFactory) Supports(raw host.Node) bool {
	return f.doc.KindOf(raw) == host.KindAttribute
}

func (f attributeFactory) CreateWrapper(raw host.Node, m *Mapper) (Node, error) {
	return &Attribute{base: base{raw: raw, mapper: m}}, nil
}

type textFactory struct {
	doc host.Document
}

func (f textFactory) Supports(raw host.Node) bool {
	return f.doc.KindOf(raw) == host.KindText
}

func (f textFactory) CreateWrapper(raw host.Node, m *Mapper) (Node, error) {
	return &Text{base: base{raw: raw, mapper: m}}, nil
}

type commentFactory struct {
	doc host.Document
}

func (f commentFactory) Supports(raw host.Node) bool {
	return f.doc.KindOf(raw) == host.KindComment
}

func (f commentFactory) CreateWrapper(raw host.Node, m *Mapper) (Node, error) {
	return &Comment{base: base{raw: raw, mapper: m}}, nil
}
