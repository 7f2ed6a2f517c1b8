// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// weighted, directed networks of package core.
//
// Two entry points are provided:
//
//   - ShortestPath: single source → single target, early exit, returns the
//     fully reconstructed route as a *Path.
//   - Distances: single source → all reachable vertices, returning the
//     per-vertex distance and predecessor maps.
//
// Determinism: when several vertices share the minimal tentative distance,
// they are extracted in ascending vertex-ID order. Given a fixed graph the
// result is therefore identical across runs.
//
// Implementation notes:
//
//   - An upfront scan of all edges (O(E)) detects negative weights and
//     fails fast, before any traversal begins.
//   - The heap uses a lazy decrease-key strategy: shorter rediscoveries are
//     pushed as duplicates and stale entries are skipped when popped.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/avetra/netpath/core"
)

// ShortestPath computes the minimum-cost route from source to target in g.
//
// Returns:
//
//   - *Path with the ordered edge sequence and total cost. When
//     source == target the path has no edges and zero cost.
//   - ErrNoPath (wrapped) when target is unreachable — a normal outcome.
//   - ErrVertexNotFound when source or target is absent from g.
//   - ErrNegativeWeight when any edge in g carries a negative weight.
//
// The search is pure relative to g: no mutation during traversal.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) (*Path, error) {
	cfg := DefaultOptions(source)
	cfg.Target = target
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validate(g, cfg); err != nil {
		return nil, err
	}
	if !g.HasVertex(cfg.Target) {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, cfg.Target)
	}

	// Trivial route: a vertex reaches itself at zero cost over zero edges.
	if cfg.Source == cfg.Target {
		return &Path{Source: cfg.Source, Target: cfg.Target, Cost: 0}, nil
	}

	r := newRunner(g, cfg)
	if err := r.process(); err != nil {
		return nil, err
	}

	// Unreachable target: the predecessor chain never reached it.
	if r.prevEdge[cfg.Target] == nil {
		return nil, fmt.Errorf("%w: %q → %q", ErrNoPath, cfg.Source, cfg.Target)
	}

	// Reconstruct by walking predecessor edges target → source, then reverse.
	var edges []*core.Edge
	for at := cfg.Target; at != cfg.Source; {
		e := r.prevEdge[at]
		edges = append(edges, e)
		at = e.From
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return &Path{
		Source: cfg.Source,
		Target: cfg.Target,
		Edges:  edges,
		Cost:   r.dist[cfg.Target],
	}, nil
}

// Distances computes shortest distances from Options.Source to every
// reachable vertex in g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (Unreachable if never visited).
//   - prev: predecessor map when WithReturnPath is set (nil otherwise);
//     prev[v] == u means the cheapest route to v arrives from u, and
//     prev[v] == "" means v has no predecessor (source or unreachable).
//   - err: validation or negative-weight error.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Distances(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validate(g, cfg); err != nil {
		return nil, nil, err
	}

	r := newRunner(g, cfg)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	prev := make(map[string]string, len(r.dist))
	for v := range r.dist {
		if e := r.prevEdge[v]; e != nil {
			prev[v] = e.From
		} else {
			prev[v] = ""
		}
	}

	return r.dist, prev, nil
}

// validate checks the caller contract shared by both entry points:
// non-empty source, non-nil graph, source present, no negative weights.
func validate(g *core.Graph, cfg Options) error {
	if cfg.Source == "" {
		return ErrEmptySource
	}
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}
	// Fail fast before traversal: Dijkstra assumes non-negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g        *core.Graph           // input graph; read-only during the run
	options  Options               // configuration (Source, Target, MaxDistance)
	dist     map[string]int64      // vertex ID → current best distance from Source
	prevEdge map[string]*core.Edge // vertex ID → edge finishing the cheapest known route
	visited  map[string]bool       // vertex ID → distance finalized
	pq       nodePQ                // lazy min-heap of (vertex, distance)
}

// newRunner allocates the per-run maps and seeds the heap with the source.
func newRunner(g *core.Graph, cfg Options) *runner {
	v := g.VertexCount()
	r := &runner{
		g:        g,
		options:  cfg,
		dist:     make(map[string]int64, v),
		prevEdge: make(map[string]*core.Edge, v),
		visited:  make(map[string]bool, v),
		pq:       make(nodePQ, 0, v),
	}
	for _, id := range g.Vertices() {
		r.dist[id] = Unreachable
	}
	r.dist[cfg.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: cfg.Source, dist: 0})

	return r
}

// process is the core loop: repeatedly extract the minimum-distance vertex
// and relax its outgoing edges.
//
// Termination:
//
//   - heap empty (all reachable vertices finalized), or
//   - target extracted (early exit when Options.Target is set), or
//   - minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Stale heap entry under lazy decrease-key: already finalized.
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		// Early exit: the target's distance is now final.
		if r.options.Target != "" && u == r.options.Target {
			return nil
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every neighbor of u via one of
// u's outgoing edges. With parallel edges the cheapest improving edge wins
// because each relaxation compares against the running best.
//
// Assumes r.dist[u] is finalized before the call.
func (r *runner) relax(u string) error {
	out, err := r.g.OutEdges(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get out-edges of %q: %w", u, err)
	}

	for _, e := range out {
		// Pre-scan caught negatives; keep the guard for future edge sources.
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}

		// An edge that would overflow int64 cannot improve anything.
		if e.Weight > Unreachable-r.dist[u] {
			continue
		}
		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only, to avoid duplicate pushes on ties.
		if newDist >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = newDist
		r.prevEdge[e.To] = e
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}

	return nil
}

// nodeItem is a heap entry: a vertex and its tentative distance.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by distance, then vertex ID.
// The ID tie-break keeps extraction order deterministic across runs.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
