package host

// NodeKind is the raw node type discriminator reported by a document
// backend.
type NodeKind uint8

const (
	KindUnknown   NodeKind = iota // anything the wrapper layer does not support
	KindElement                   // <div>, <span>, etc.
	KindAttribute                 // a single name/value attribute
	KindText                      // plain text payload
	KindComment                   // <!-- ... -->
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindAttribute:
		return "Attribute"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// IdentityAttr is the reserved attribute name used to stamp a numeric
// identity onto element nodes. It must not collide with application-chosen
// attribute names; backends reject writes to it through the regular
// attribute surface of the wrapper layer.
const IdentityAttr = "oow-id"

// Node is an opaque handle to a raw document node. Handles are comparable;
// two handles are equal iff they refer to the same raw node.
type Node = any

// Attr is a single attribute as stored on an element, in document order.
type Attr struct {
	Name  string
	Value string
}

// Rect is a rendered box snapshot: position of the top-left corner relative
// to the document origin plus the box dimensions, in CSS pixels.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Event is delivered to subscribed handlers when a backend dispatches an
// event on a node.
type Event struct {
	Type   string
	Target Node
}

// Handler receives dispatched events.
type Handler func(Event)

// Document is the host document capability consumed by the wrapper layer.
//
// Methods that take a Node may be called with any handle previously
// produced by the same Document; passing a handle from another Document is
// undefined. Mutating methods return an error only when the backend cannot
// honor the operation (for example, an attribute method applied to a text
// node).
type Document interface {
	// KindOf reports the node kind of a raw handle. Handles the backend
	// does not recognize report KindUnknown.
	KindOf(n Node) NodeKind

	// ParseFragment parses markup text and returns the first top-level
	// node of the result. The returned node is detached (no parent).
	ParseFragment(markup string) (Node, error)

	// CreateElement creates a detached element node with the given tag.
	CreateElement(tag string) (Node, error)

	// CreateAttribute creates a detached attribute node.
	CreateAttribute(name, value string) (Node, error)

	// SetIdentity stamps an identity onto a node. For element nodes the
	// identity is stored as the IdentityAttr attribute; for other kinds it
	// is attached out of band. Stamping a node that already carries an
	// identity is an error.
	SetIdentity(n Node, id int64) error

	// Identity reads the identity stamped onto a node, if any.
	Identity(n Node) (int64, bool)

	// TagName reports the tag of an element node, lower-cased.
	TagName(n Node) string

	// Attr reads an attribute value from an element node.
	Attr(n Node, name string) (string, bool)

	// SetAttr writes an attribute on an element node.
	SetAttr(n Node, name, value string) error

	// RemoveAttr removes an attribute from an element node. Removing an
	// absent attribute is a no-op.
	RemoveAttr(n Node, name string) error

	// Attrs enumerates an element's attributes in document order.
	Attrs(n Node) []Attr

	// AttrNode returns a stable attribute-node handle for the named
	// attribute of an element. Repeated calls for the same element and
	// name return the same handle.
	AttrNode(n Node, name string) (Node, bool)

	// AttrName reports the name of an attribute node.
	AttrName(n Node) string

	// AttrValue reads the live value of an attribute node.
	AttrValue(n Node) string

	// SetAttrValue writes through an attribute node to the underlying
	// attribute storage.
	SetAttrValue(n Node, value string) error

	// Content reads the payload of a text or comment node.
	Content(n Node) string

	// SetContent writes the payload of a text or comment node.
	SetContent(n Node, text string) error

	// Parent reports the parent of a node, if attached.
	Parent(n Node) (Node, bool)

	// Children enumerates the child nodes of an element in document order.
	Children(n Node) []Node

	// AppendChild appends child as the last child of parent.
	AppendChild(parent, child Node) error

	// InsertBefore inserts child into parent immediately before ref,
	// which must be a current child of parent.
	InsertBefore(parent, child, ref Node) error

	// RemoveChild detaches child from parent.
	RemoveChild(parent, child Node) error

	// Subscribe registers a handler for an event type on a node.
	Subscribe(n Node, event string, h Handler) error

	// Measure reports the rendered box of an element node. Backends
	// without a layout engine report a zero Rect.
	Measure(n Node) Rect
}
