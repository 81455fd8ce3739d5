// Package dom maps raw host document nodes into typed wrapper objects.
//
// The entry point is the Mapper. Every raw node that passes through
// Mapper.MapNode is assigned a numeric identity, stamped onto the node
// itself, and wrapped exactly once: mapping the same raw node again returns
// the identical wrapper instance. Dispatch from node kind to wrapper type
// goes through a factory registry covering exactly the four supported
// kinds (element, attribute, text, comment); anything else is rejected.
//
// # Core Types
//
// Mapper coordinates the identity cache and the factory registry and is
// the only producer of wrappers. Node is the shared wrapper surface;
// Element, Attribute, Text, and Comment are the concrete variants. Element
// carries the convenience accessors: AttributeMap, StyleAccess, ClassList,
// geometry snapshots, and child mutation.
//
// # Traversal
//
// Wrapper traversal (Parent, Children) re-enters the Mapper, so walking a
// tree repeatedly never re-wraps a node.
//
// # Errors
//
// Every failure is a synchronous precondition violation surfaced as an
// *Error and matchable with errors.Is against the exported sentinels
// (ErrNotCached, ErrUnsupportedKind, ErrInvalidIndex, ErrInvalidSubtree,
// ErrEmptyList, ErrHost). Nothing is retried internally.
package dom
