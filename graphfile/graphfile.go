// Package graphfile loads declarative network descriptions from YAML
// documents into core graphs, validating them strictly before any
// algorithm runs.
//
// A description lists the vertices and the weighted directed edges of a
// delivery network, plus optional routing hints (the source vertex and the
// sink vertices) consumed by the diagram exporter:
//
//	name: package-delivery
//	source: S
//	sinks: [T1, T2]
//	vertices:
//	  - id: S
//	    label: Warehouse
//	    kind: source
//	  - id: A
//	  - id: T1
//	    label: Distribution Ctr
//	    kind: sink
//	edges:
//	  - {from: S, to: A, weight: 10}
//	  - {from: A, to: T1, weight: 7}
//
// Validation is strict and happens in Document.Graph, before traversal:
// duplicate vertex IDs, edges referencing undeclared vertices, negative
// weights, and undeclared source/sink references all fail with an error
// wrapping ErrMalformedGraph.
package graphfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avetra/netpath/core"
)

// ErrMalformedGraph is the sentinel wrapped by every validation failure:
// duplicate vertex ID, undeclared edge endpoint, negative weight, empty ID,
// or an undeclared source/sink reference.
var ErrMalformedGraph = errors.New("graphfile: malformed graph description")

// VertexDecl declares one vertex of the network.
type VertexDecl struct {
	// ID is the unique vertex identifier. Required.
	ID string `yaml:"id"`

	// Label is an optional display name for diagram export.
	Label string `yaml:"label,omitempty"`

	// Kind is an optional free-form classification (e.g. "source", "hub",
	// "sink"), kept as vertex metadata for consumers such as exporters.
	Kind string `yaml:"kind,omitempty"`
}

// EdgeDecl declares one directed weighted edge.
type EdgeDecl struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// Document is a parsed network description.
type Document struct {
	// Name identifies the network (used as the diagram title).
	Name string `yaml:"name,omitempty"`

	// Source is the optional origin vertex (e.g. the warehouse).
	Source string `yaml:"source,omitempty"`

	// Sinks are the optional terminal vertices (e.g. distribution centers).
	Sinks []string `yaml:"sinks,omitempty"`

	Vertices []VertexDecl `yaml:"vertices"`
	Edges    []EdgeDecl   `yaml:"edges"`
}

// Load parses a network description from r. Unknown YAML fields are
// rejected so typos surface immediately.
//
// Parsing does not validate graph semantics; call Document.Graph for that.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphfile: decode description: %w", err)
	}

	return &doc, nil
}

// LoadFile parses the network description stored at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Graph validates the description and builds the corresponding
// *core.Graph. All checks run before any edge is traversable:
//
//   - at least one vertex declared
//   - vertex IDs non-empty and unique
//   - edge endpoints declared in the vertex list
//   - edge weights non-negative
//   - source and sinks, when set, declared in the vertex list
//
// Each failure wraps ErrMalformedGraph with the offending declaration.
func (d *Document) Graph(opts ...core.GraphOption) (*core.Graph, error) {
	if len(d.Vertices) == 0 {
		return nil, fmt.Errorf("%w: no vertices declared", ErrMalformedGraph)
	}

	declared := make(map[string]bool, len(d.Vertices))
	for _, v := range d.Vertices {
		if v.ID == "" {
			return nil, fmt.Errorf("%w: vertex with empty id", ErrMalformedGraph)
		}
		if declared[v.ID] {
			return nil, fmt.Errorf("%w: duplicate vertex %q", ErrMalformedGraph, v.ID)
		}
		declared[v.ID] = true
	}

	for _, e := range d.Edges {
		if !declared[e.From] {
			return nil, fmt.Errorf("%w: edge %s→%s references undeclared vertex %q",
				ErrMalformedGraph, e.From, e.To, e.From)
		}
		if !declared[e.To] {
			return nil, fmt.Errorf("%w: edge %s→%s references undeclared vertex %q",
				ErrMalformedGraph, e.From, e.To, e.To)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s has negative weight %d",
				ErrMalformedGraph, e.From, e.To, e.Weight)
		}
	}

	if d.Source != "" && !declared[d.Source] {
		return nil, fmt.Errorf("%w: source %q not declared", ErrMalformedGraph, d.Source)
	}
	for _, s := range d.Sinks {
		if !declared[s] {
			return nil, fmt.Errorf("%w: sink %q not declared", ErrMalformedGraph, s)
		}
	}

	g := core.NewGraph(opts...)
	for _, v := range d.Vertices {
		if err := g.AddVertex(v.ID); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedGraph, err)
		}
		if v.Label != "" {
			if err := g.SetVertexMetadata(v.ID, "label", v.Label); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedGraph, err)
			}
		}
		if v.Kind != "" {
			if err := g.SetVertexMetadata(v.ID, "kind", v.Kind); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedGraph, err)
			}
		}
	}
	for _, e := range d.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			// Loop/multi-edge policy violations surface here.
			return nil, fmt.Errorf("%w: edge %s→%s: %v", ErrMalformedGraph, e.From, e.To, err)
		}
	}

	return g, nil
}
