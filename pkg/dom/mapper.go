package dom

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/elmordo/OwlInWeb/pkg/host"
)

// Mapper turns raw host nodes into wrappers, idempotently. It is the
// single entry point all wrapping flows through: cache lookup first, then
// factory dispatch by node kind, then cache insertion.
//
// A Mapper, its cache, and its registry form one unit of un-shared mutable
// state. They are driven from a single logical flow and are not safe for
// concurrent use.
type Mapper struct {
	doc      host.Document
	root     host.Node
	cache    *Cache
	registry *Registry

	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Mapper) {
		m.logger = logger
	}
}

// WithMetrics attaches prometheus instrumentation.
func WithMetrics(metrics *Metrics) Option {
	return func(m *Mapper) {
		m.metrics = metrics
	}
}

// WithTracer attaches an OpenTelemetry tracer. Spans are created around
// MapNode and the create operations.
func WithTracer(tracer trace.Tracer) Option {
	return func(m *Mapper) {
		m.tracer = tracer
	}
}

// NewMapper creates a coordinator over a host document. root is the raw
// root node of the document tree and may be nil for a mapper used only
// with created nodes and fragments.
func NewMapper(doc host.Document, root host.Node, opts ...Option) (*Mapper, error) {
	registry, err := NewRegistry(doc)
	if err != nil {
		return nil, err
	}
	m := &Mapper{
		doc:      doc,
		root:     root,
		cache:    NewCache(doc),
		registry: registry,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Root maps the document's root raw node.
func (m *Mapper) Root() (Node, error) {
	if m.root == nil {
		return nil, newError(CodeHost, "mapper.root", "mapper has no root node")
	}
	return m.MapNode(m.root)
}

// IsCached reports whether the raw node already carries an identity tag.
func (m *Mapper) IsCached(raw host.Node) bool {
	return m.cache.IsCached(raw)
}

// MapNode returns the wrapper for a raw node, creating and caching it on
// first sight. Mapping the same raw node any number of times yields the
// identical wrapper instance.
//
// A previously removed node still carries its identity tag; mapping it
// again surfaces ErrNotCached rather than assigning a second identity.
func (m *Mapper) MapNode(raw host.Node) (Node, error) {
	span := m.startSpan("dom.map_node")
	defer span.End()

	if m.cache.IsCached(raw) {
		n, err := m.cache.Get(raw)
		if err != nil {
			m.logger.Warn("lookup of a retired node", "id", staleID(m.doc, raw))
			m.recordError(span, err)
			return nil, err
		}
		m.metrics.cacheHit()
		return n, nil
	}
	m.metrics.cacheMiss()

	kind := m.doc.KindOf(raw)
	factory, err := m.registry.Lookup(kind)
	if err != nil {
		m.recordError(span, err)
		return nil, err
	}
	n, err := factory.CreateWrapper(raw, m)
	if err != nil {
		m.recordError(span, err)
		return nil, err
	}
	id, err := m.cache.Add(n)
	if err != nil {
		m.recordError(span, err)
		return nil, err
	}
	m.metrics.mapped(kind, m.cache.Len())
	m.logger.Debug("mapped node", "kind", kind.String(), "id", id)
	span.SetAttributes(
		attribute.String("dom.kind", kind.String()),
		attribute.Int64("dom.id", id),
	)
	return n, nil
}

// CreateFragment parses markup text into a raw subtree and maps its root.
func (m *Mapper) CreateFragment(markup string) (Node, error) {
	span := m.startSpan("dom.create_fragment")
	defer span.End()

	raw, err := m.doc.ParseFragment(markup)
	if err != nil {
		werr := hostError("mapper.create_fragment", err)
		m.recordError(span, werr)
		return nil, werr
	}
	return m.MapNode(raw)
}

// CreateElement creates an empty element by tag name and maps it.
func (m *Mapper) CreateElement(tag string) (*Element, error) {
	span := m.startSpan("dom.create_element")
	defer span.End()

	raw, err := m.doc.CreateElement(tag)
	if err != nil {
		werr := hostError("mapper.create_element", err)
		m.recordError(span, werr)
		return nil, werr
	}
	n, err := m.MapNode(raw)
	if err != nil {
		return nil, err
	}
	return n.(*Element), nil
}

// CreateAttribute creates a detached attribute node and maps it.
func (m *Mapper) CreateAttribute(name, value string) (*Attribute, error) {
	span := m.startSpan("dom.create_attribute")
	defer span.End()

	raw, err := m.doc.CreateAttribute(name, value)
	if err != nil {
		werr := hostError("mapper.create_attribute", err)
		m.recordError(span, werr)
		return nil, werr
	}
	n, err := m.MapNode(raw)
	if err != nil {
		return nil, err
	}
	return n.(*Attribute), nil
}

// Remove retires a raw node: its cache entry is deleted while the identity
// tag stays on the node. Fails with ErrNotCached for untagged or already
// retired nodes.
func (m *Mapper) Remove(raw host.Node) error {
	if err := m.cache.Remove(raw); err != nil {
		return err
	}
	m.metrics.removed(m.cache.Len())
	return nil
}

// startSpan opens a span when a tracer is configured; otherwise it returns
// a no-op span.
func (m *Mapper) startSpan(name string) trace.Span {
	if m.tracer == nil {
		return trace.SpanFromContext(context.Background())
	}
	_, span := m.tracer.Start(context.Background(), name)
	return span
}

// recordError records the error on the span and marks it failed.
func (m *Mapper) recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// staleID reads the identity tag of a retired node for logging.
func staleID(doc host.Document, raw host.Node) int64 {
	id, _ := doc.Identity(raw)
	return id
}
