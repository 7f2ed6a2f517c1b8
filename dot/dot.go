// Package dot exports core graphs as Graphviz DOT documents with an
// optional highlighted route, producing the annotated delivery-network
// diagrams this library exists to compute.
//
// The exporter only emits the textual DOT description; layout and
// rasterization belong to the external graphviz toolchain.
//
// Styling mirrors the established diagram conventions:
//
//   - the source vertex is drawn as an Mdiamond filled lightblue,
//   - sink vertices as doublecircles filled lightgreen,
//   - intermediate hubs as ellipses filled whitesmoke,
//   - route edges in red with a heavy stroke,
//   - all remaining edges in dimgray with a thin stroke,
//   - every edge labeled with its weight.
//
// Output is deterministic: vertices and edges are emitted in sorted order,
// so identical graphs always produce byte-identical documents.
package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/avetra/netpath/core"
)

// Edge styling attributes, matching the reference diagrams.
const (
	routeColor     = "red"
	routePenwidth  = "3.0"
	plainColor     = "dimgray"
	plainPenwidth  = "1.5"
	edgeFontSize   = "10"
	defaultDiagram = "network"
)

// Options configures a single export.
type Options struct {
	// Name is the digraph name (diagram title).
	Name string

	// Source is the vertex drawn as the origin (Mdiamond). Optional.
	Source string

	// Sinks are the vertices drawn as terminals (doublecircle). Optional.
	Sinks []string

	// Highlight holds the edges of the computed route, drawn in red.
	Highlight []*core.Edge
}

// Option represents a functional option for configuring the export.
type Option func(*Options)

// WithName sets the digraph name.
func WithName(name string) Option {
	return func(o *Options) { o.Name = name }
}

// WithSource marks the origin vertex.
func WithSource(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithSinks marks the terminal vertices.
func WithSinks(ids ...string) Option {
	return func(o *Options) { o.Sinks = append(o.Sinks, ids...) }
}

// WithHighlight marks the route edges to draw with the accent style.
func WithHighlight(edges []*core.Edge) Option {
	return func(o *Options) { o.Highlight = append(o.Highlight, edges...) }
}

// Export writes g as a Graphviz digraph to w.
//
// Vertex labels honor the "label" metadata key: a vertex with
// Metadata["label"] = "Warehouse" is rendered as `S\n(Warehouse)`.
//
// Complexity: O(V log V + E log E).
func Export(w io.Writer, g *core.Graph, opts ...Option) error {
	cfg := Options{Name: defaultDiagram}
	for _, opt := range opts {
		opt(&cfg)
	}

	sinks := make(map[string]bool, len(cfg.Sinks))
	for _, s := range cfg.Sinks {
		sinks[s] = true
	}
	highlighted := make(map[string]bool, len(cfg.Highlight))
	for _, e := range cfg.Highlight {
		highlighted[e.ID] = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "digraph %q {\n", cfg.Name)
	b.WriteString("\trankdir=LR;\n")

	// Vertices, sorted by ID.
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			return fmt.Errorf("dot: %w", err)
		}
		label := id
		if name := v.Metadata["label"]; name != "" {
			label = fmt.Sprintf("%s\\n(%s)", id, name)
		}
		switch {
		case id == cfg.Source:
			fmt.Fprintf(&b, "\t%q [label=%q, shape=Mdiamond, style=filled, fillcolor=lightblue];\n", id, label)
		case sinks[id]:
			fmt.Fprintf(&b, "\t%q [label=%q, shape=doublecircle, style=filled, fillcolor=lightgreen];\n", id, label)
		default:
			fmt.Fprintf(&b, "\t%q [label=%q, shape=ellipse, style=filled, fillcolor=whitesmoke];\n", id, label)
		}
	}

	// Edges, sorted by edge ID (insertion order).
	for _, e := range g.Edges() {
		color, penwidth := plainColor, plainPenwidth
		if highlighted[e.ID] {
			color, penwidth = routeColor, routePenwidth
		}
		fmt.Fprintf(&b, "\t%q -> %q [label=%q, color=%s, fontcolor=%s, penwidth=%s, fontsize=%s];\n",
			e.From, e.To, fmt.Sprintf("%d", e.Weight), color, color, penwidth, edgeFontSize)
	}

	b.WriteString("}\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("dot: write diagram: %w", err)
	}

	return nil
}
