// Package export serializes gated dependency graphs for downstream stages.
//
// The JSON snapshot is the hand-off to the code-selection stage: each node
// carries its resolved enabled/disabled feature lists, which that stage
// treats as compile-time constants. The DOT and SVG forms are for humans.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/featgate/featgate/pkg/depgraph"
)

// Snapshot is the serialized form of a gated dependency graph.
type Snapshot struct {
	ID          string `json:"id"`           // unique per export
	GeneratedAt string `json:"generated_at"` // RFC 3339
	Root        string `json:"root"`
	Nodes       []node `json:"nodes"`
	Edges       []edge `json:"edges"`
}

type node struct {
	ID       string   `json:"id"`
	Version  string   `json:"version,omitempty"`
	Enabled  []string `json:"enabled_features,omitempty"`
	Disabled []string `json:"disabled_features,omitempty"`
}

type edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// NewSnapshot converts a graph into its serializable form, stamping a fresh
// snapshot ID and generation timestamp.
func NewSnapshot(g *depgraph.Graph) Snapshot {
	snap := Snapshot{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Root:        g.Root(),
		Nodes:       make([]node, 0, g.NodeCount()),
		Edges:       make([]edge, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		snap.Nodes = append(snap.Nodes, node{
			ID:       n.ID,
			Version:  n.Version,
			Enabled:  n.Enabled,
			Disabled: n.Disabled,
		})
	}
	for _, e := range g.Edges() {
		snap.Edges = append(snap.Edges, edge{From: e.From, To: e.To})
	}
	return snap
}

// WriteJSON encodes the graph as an indented JSON snapshot and writes it to w.
func WriteJSON(g *depgraph.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewSnapshot(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the graph snapshot to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *depgraph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
