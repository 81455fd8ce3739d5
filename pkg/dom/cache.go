package dom

import (
	"github.com/elmordo/OwlInWeb/pkg/host"
)

// Cache assigns numeric identities to raw nodes and remembers which
// wrapper owns each identity. It backs the Mapper's idempotence guarantee:
// the authoritative wrapper reference for every mapped node lives here.
//
// Identity is stamped onto the raw node through the host document, so it
// survives independently of the lookup table. The counter is monotonic and
// document-scoped: identities start at 1, are assigned exactly once, and
// are never reused, even after removal. Reentrant mapping during factory
// construction interleaves safely because Add bumps the counter before it
// touches anything else.
type Cache struct {
	doc     host.Document
	next    int64
	entries map[int64]Node
}

// NewCache creates an empty cache over the given host document.
func NewCache(doc host.Document) *Cache {
	return &Cache{doc: doc, entries: make(map[int64]Node)}
}

// IsCached reports whether the raw node carries an identity tag. It does
// not consult the lookup table: a node whose entry was removed still
// reports true while Get fails with ErrNotCached.
func (c *Cache) IsCached(raw host.Node) bool {
	_, ok := c.doc.Identity(raw)
	return ok
}

// Add assigns the next identity, stamps it onto the wrapper's raw node,
// and inserts the wrapper into the lookup table. This is the one place the
// cache mutates the host document.
func (c *Cache) Add(n Node) (int64, error) {
	c.next++
	id := c.next
	if err := c.doc.SetIdentity(n.Raw(), id); err != nil {
		return 0, hostError("cache.add", err)
	}
	c.entries[id] = n
	return id, nil
}

// Get returns the wrapper registered for the raw node. It fails with
// ErrNotCached when the node carries no identity tag, or when the tag is
// stale (the entry was removed).
func (c *Cache) Get(raw host.Node) (Node, error) {
	id, ok := c.doc.Identity(raw)
	if !ok {
		return nil, newError(CodeNotCached, "cache.get", "node carries no identity tag")
	}
	n, ok := c.entries[id]
	if !ok {
		return nil, newError(CodeNotCached, "cache.get", "identity %d has no cache entry", id)
	}
	return n, nil
}

// Remove deletes the lookup entry for the raw node. The identity tag stays
// on the node: a removed node is retired, it never re-enters the cache
// under a new identity.
func (c *Cache) Remove(raw host.Node) error {
	id, ok := c.doc.Identity(raw)
	if !ok {
		return newError(CodeNotCached, "cache.remove", "node carries no identity tag")
	}
	if _, ok := c.entries[id]; !ok {
		return newError(CodeNotCached, "cache.remove", "identity %d has no cache entry", id)
	}
	delete(c.entries, id)
	return nil
}

// Len reports the number of live cache entries.
func (c *Cache) Len() int {
	return len(c.entries)
}
