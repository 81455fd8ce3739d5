// Package htmldoc implements the host document capability over
// golang.org/x/net/html node trees.
//
// Element, text, and comment handles are *html.Node pointers. Attribute
// handles are synthetic: x/net/html stores attributes as values inside the
// element, so the backend allocates one stable handle per element and
// attribute name and returns it on every lookup.
//
// Identity tags on elements are stored as the visible reserved attribute
// (host.IdentityAttr); other node kinds are tagged in a pointer-keyed side
// table, since their handles are stable for the document's lifetime.
//
// x/net/html performs no layout, so geometry is delegated to an optional
// Measurer; without one every box measures zero. The backend is not safe
// for concurrent use; like the wrapper layer above it, it assumes a single
// logical flow.
package htmldoc
