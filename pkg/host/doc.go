// Package host defines the capability surface the wrapper layer expects
// from a platform document tree.
//
// The core never touches a document implementation directly. Everything it
// needs — parsing markup into raw nodes, creating elements and attributes,
// reading and writing attribute storage, child manipulation, identity
// tagging, geometry measurement, and event subscription — flows through the
// Document interface. Backends live in subpackages; htmldoc provides the
// reference implementation over golang.org/x/net/html trees.
//
// All operations are synchronous and return live handles. A Node handle is
// opaque to callers and stable for the lifetime of the owning document.
package host
