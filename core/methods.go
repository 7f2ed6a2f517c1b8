// Package core: thread-safe Graph method implementations.
//
// Adjacency is stored as a nested map adjacency[from][to][edgeID] = struct{}{},
// allowing constant-time existence, insertion, and deletion of edges.
// Accessors that return slices sort their results for determinism.

package core

import (
	"fmt"
	"sort"
)

const edgeIDPrefix = "e"

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// ensureVertex inserts id into the vertex catalog if absent.
// Caller must hold g.mu.
func (g *Graph) ensureVertex(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]string)}
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertex returns the Vertex stored under id.
// Returns ErrVertexNotFound if it does not exist.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// SetVertexMetadata stores key=value on the vertex with the given ID.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(1).
func (g *Graph) SetVertexMetadata(id, key, value string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Metadata[key] = value

	return nil
}

// AddEdge creates a new directed edge from 'from' to 'to' with the given
// weight and returns its unique Edge.ID. Both endpoints are created if
// absent (idempotent). Parallel edges and loops are honored per the graph
// configuration.
//
// Returns ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	// 2) Loop constraint
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3) Ensure both endpoints exist
	g.ensureVertex(from)
	g.ensureVertex(to)

	// 4) Multi-edge existence check
	if !g.allowMulti {
		if inner, ok := g.adjacency[from][to]; ok && len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	// 5) Generate a new Edge.ID and store the edge
	g.nextEdgeID++
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}

	// 6) Insert into nested adjacency[from][to][eid]
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
	g.adjacency[from][to][eid] = struct{}{}

	return eid, nil
}

// HasEdge reports true if at least one edge from 'from' to 'to' exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if inner, ok := g.adjacency[from][to]; ok && len(inner) > 0 {
		return true
	}

	return false
}

// Edge returns the edge stored under the given edge ID.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) Edge(eid string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// RemoveEdge deletes the edge with the given ID from the graph.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	if inner, ok := g.adjacency[e.From][e.To]; ok {
		delete(inner, eid)
		if len(inner) == 0 {
			delete(g.adjacency[e.From], e.To)
		}
	}

	return nil
}

// OutEdges returns all edges leaving vertex 'id', sorted by Edge.ID for
// reproducible ordering.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(d log d), where d is the out-degree of id.
func (g *Graph) OutEdges(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, edgeSet := range g.adjacency[id] {
		for eid := range edgeSet {
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns all edges sorted by Edge.ID.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// VertexCount returns the number of vertices in the graph.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Multigraph reports whether parallel edges are permitted by policy.
func (g *Graph) Multigraph() bool {
	return g.allowMulti
}

// Looped reports whether self-loops are permitted by policy.
func (g *Graph) Looped() bool {
	return g.allowLoops
}
