package core

// CloneEmpty returns a new Graph with the same configuration flags and the
// same vertex set (Metadata maps shared shallowly), but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		allowMulti: g.allowMulti,
		allowLoops: g.allowLoops,
		vertices:   make(map[string]*Vertex, len(g.vertices)),
		edges:      make(map[string]*Edge),
		adjacency:  make(map[string]map[string]map[string]struct{}, len(g.vertices)),
	}
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: id, Metadata: v.Metadata}
		clone.adjacency[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph: flags, vertices, edges, and
// adjacency. Vertex Metadata maps are shared shallowly.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()

	clone.nextEdgeID = g.nextEdgeID
	for eid, e := range g.edges {
		// Copy the Edge struct so mutations on the clone stay local.
		ce := *e
		clone.edges[eid] = &ce
		if clone.adjacency[e.From][e.To] == nil {
			clone.adjacency[e.From][e.To] = make(map[string]struct{})
		}
		clone.adjacency[e.From][e.To][eid] = struct{}{}
	}

	return clone
}
