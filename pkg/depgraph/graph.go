// Package depgraph provides the gated dependency graph built from featgate
// manifests.
//
// # Overview
//
// Graph construction applies the feature gate to every direct dependency edge
// before any transitive work: an edge whose only_features requirement matches
// none of the consumer's enabled features is dropped, and its whole subtree
// never enters the graph. Each included dependency carries its own resolved
// enabled/disabled feature split, computed against what its consumer
// requested.
//
// # Basic Usage
//
//	g := depgraph.New(nil)
//	g.AddNode(depgraph.Node{ID: "app"})
//	g.AddNode(depgraph.Node{ID: "libjson", Version: "1.2"})
//	g.AddEdge(depgraph.Edge{From: "app", To: "libjson"})
//
// Listing helpers return nodes sorted by ID so output is deterministic.
// Use [Build] to construct the graph from a manifest; see build.go.
//
// # Concurrency
//
// Graph instances are not safe for concurrent mutation. A fully built graph
// can be read from multiple goroutines.
package depgraph

import (
	"errors"
	"slices"
	"strings"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrCycle is returned by [Build] when the manifests form a dependency
	// cycle.
	ErrCycle = errors.New("dependency cycle")
)

// Metadata stores arbitrary key-value pairs attached to the graph, such as
// the snapshot ID and generation timestamp stamped by the export package.
// Metadata maps are never nil after [New].
type Metadata map[string]any

// Node is one package in the gated dependency graph. Enabled and Disabled
// hold the node's resolved feature split, sorted; together they cover the
// node's full declared feature set.
type Node struct {
	ID       string   // package name
	Version  string   // declared version, if known
	Enabled  []string // resolved enabled features
	Disabled []string // declared but disabled features
}

// Edge is a directed dependency edge: From depends on To.
type Edge struct {
	From string
	To   string
}

// Graph is a directed dependency graph keyed by package name.
//
// The zero value is not usable; use [New].
type Graph struct {
	nodes    map[string]*Node
	edges    []Edge
	outgoing map[string][]string // nodeID -> dependency IDs
	incoming map[string][]string // nodeID -> dependent IDs
	root     string
	meta     Metadata
}

// New creates an empty graph with optional graph-level metadata.
func New(meta Metadata) *Graph {
	if meta == nil {
		meta = Metadata{}
	}
	return &Graph{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
		meta:     meta,
	}
}

// Meta returns the graph-level metadata map. Never nil.
func (g *Graph) Meta() Metadata { return g.meta }

// Root returns the ID of the root package, if set by [Build].
func (g *Graph) Root() string { return g.root }

// SetRoot marks the given node as the root package.
func (g *Graph) SetRoot(id string) { g.root = id }

// AddNode adds a node to the graph. Returns ErrInvalidNodeID for an empty ID
// or ErrDuplicateNodeID if the ID is already present.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNodeID
	}
	node := n
	g.nodes[node.ID] = &node
	return nil
}

// AddEdge adds a directed edge between two existing nodes.
// Returns ErrUnknownSourceNode or ErrUnknownTargetNode when an endpoint is
// missing. Duplicate edges between the same nodes are collapsed.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	if slices.Contains(g.outgoing[e.From], e.To) {
		return nil
	}
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], e.To)
	g.incoming[e.To] = append(g.incoming[e.To], e.From)
	return nil
}

// Node returns the node with the given ID and true, or nil and false.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Has reports whether a node with the given ID exists.
func (g *Graph) Has(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns all nodes sorted by ID.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	slices.SortFunc(nodes, func(a, b *Node) int { return strings.Compare(a.ID, b.ID) })
	return nodes
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Children returns the IDs the given node depends on, sorted.
func (g *Graph) Children(id string) []string {
	return sortedCopy(g.outgoing[id])
}

// Parents returns the IDs that depend on the given node, sorted.
func (g *Graph) Parents(id string) []string {
	return sortedCopy(g.incoming[id])
}

func sortedCopy(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	out := slices.Clone(ids)
	slices.Sort(out)
	return out
}
