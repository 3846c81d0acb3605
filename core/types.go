// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge, Graph, options, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge direction override when mixed-edges are disabled.
	ErrMixedEdgesNotAllowed = errors.New("core: mixed-mode per-edge overrides not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge represents a connection between two vertices.
//
// Edges are immutable once stored: Label and the attribute map are fixed at
// AddEdge time, which lets search engines read them without locking.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the ranking cost of the edge.
	Weight float64

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool

	// Label is an optional categorical tag (carrier, link type, operator, ...).
	Label string

	attrs map[string]float64 // numeric properties, read via Attr
	seq   uint64             // insertion order, drives deterministic iteration
}

// Attr returns the numeric attribute stored under key.
// Complexity: O(1).
func (e *Edge) Attr(key string) (float64, bool) {
	if e == nil || e.attrs == nil {
		return 0, false
	}
	v, ok := e.attrs[key]

	return v, ok
}

// AttrOr returns the attribute under key, or def when it is absent.
func (e *Edge) AttrOr(key string, def float64) float64 {
	if v, ok := e.Attr(key); ok {
		return v
	}

	return def
}

// Attrs returns a copy of all numeric attributes of the edge.
func (e *Edge) Attrs() map[string]float64 {
	out := make(map[string]float64, len(e.attrs))
	for k, v := range e.attrs {
		out[k] = v
	}

	return out
}

// Opposite returns the endpoint of e that is not id. For a directed edge
// leaving id this is e.To; for an undirected edge it is whichever end differs.
func (e *Edge) Opposite(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// IsNil reports whether the receiver is a nil pointer (safe behind interfaces).
func (e *Edge) IsNil() bool { return e == nil }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges lets per-edge directedness overrides take effect.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// edgeSpec collects per-edge options before the Edge is materialized.
type edgeSpec struct {
	directed *bool
	label    string
	attrs    map[string]float64
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*edgeSpec)

// WithEdgeDirected overrides the Graph's default directedness for this edge.
// Requires WithMixedEdges on the graph.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(s *edgeSpec) { s.directed = &directed }
}

// WithEdgeLabel attaches a categorical label to the edge.
func WithEdgeLabel(label string) EdgeOption {
	return func(s *edgeSpec) { s.label = label }
}

// WithEdgeAttr attaches a numeric attribute to the edge. Repeated keys keep
// the last value.
func WithEdgeAttr(key string, value float64) EdgeOption {
	return func(s *edgeSpec) {
		if s.attrs == nil {
			s.attrs = make(map[string]float64, 2)
		}
		s.attrs[key] = value
	}
}

// WithEdgeAttrs attaches every entry of attrs to the edge. The map is copied.
func WithEdgeAttrs(attrs map[string]float64) EdgeOption {
	return func(s *edgeSpec) {
		if len(attrs) == 0 {
			return
		}
		if s.attrs == nil {
			s.attrs = make(map[string]float64, len(attrs))
		}
		for k, v := range attrs {
			s.attrs[k] = v
		}
	}
}

// Graph is the core in-memory graph data structure.
//
// muVert protects the vertices map and flags; muEdgeAdj protects edges and
// adjacencyList. nextEdgeID is an atomic counter for Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	directed   bool // default directedness
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
	allowMixed bool // allow per-edge direction overrides

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID -> Vertex
	edges      map[string]*Edge   // edge ID -> Edge

	// adjacencyList[from][to][edgeID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}
}

// GraphStats is a read-only snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	DirectedDefault     bool
	Weighted            bool
	AllowsMulti         bool
	AllowsLoops         bool
	MixedMode           bool
	VertexCount         int
	EdgeCount           int
	DirectedEdgeCount   int
	UndirectedEdgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
