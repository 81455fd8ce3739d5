package dom

import (
	"github.com/elmordo/OwlInWeb/pkg/host"
)

// Node is the shared surface of every wrapper variant. The cache holds the
// authoritative reference for each wrapper; callers receive shared
// references and never own them.
type Node interface {
	// Kind reports the wrapper's node kind.
	Kind() host.NodeKind

	// Raw returns the underlying raw node handle.
	Raw() host.Node

	// ID returns the identity stamped onto the raw node, or 0 if the node
	// has not been cached yet.
	ID() int64

	// Parent maps the raw parent node through the coordinator. Detached
	// nodes (and attribute nodes) return nil with no error.
	Parent() (Node, error)

	// On subscribes a handler for an event type on the raw node. Pure
	// pass-through to the host document.
	On(event string, h host.Handler) error
}

// base carries the raw node handle and the back-reference to the mapper.
// The mapper reference is non-owning and used only to re-enter MapNode for
// traversal.
type base struct {
	raw    host.Node
	mapper *Mapper
}

func (b *base) Raw() host.Node {
	return b.raw
}

func (b *base) ID() int64 {
	id, _ := b.mapper.doc.Identity(b.raw)
	return id
}

func (b *base) Parent() (Node, error) {
	p, ok := b.mapper.doc.Parent(b.raw)
	if !ok {
		return nil, nil
	}
	return b.mapper.MapNode(p)
}

func (b *base) On(event string, h host.Handler) error {
	if err := b.mapper.doc.Subscribe(b.raw, event, h); err != nil {
		return hostError("node.on", err)
	}
	return nil
}
