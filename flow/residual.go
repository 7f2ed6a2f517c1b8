package flow

import (
	"context"
	"sort"

	"github.com/avetra/netpath/core"
)

// arc is one direction of a residual edge pair. Every capacity-carrying
// connection u→v is represented by a forward arc in arcs[u] and a reverse
// arc in arcs[v]; pushing flow moves capacity from one to the other, which
// lets later augmentations undo earlier routing decisions.
type arc struct {
	to  string // destination vertex
	cap int64  // remaining residual capacity
	rev int    // index of the paired arc in arcs[to]
}

// residual is the working network all flow algorithms run on.
//
// Arcs are appended in sorted vertex order during construction, so BFS and
// DFS visit neighbors deterministically without re-sorting per step.
type residual struct {
	arcs  map[string][]*arc
	order []string // sorted vertex IDs
}

// newResidual builds the residual network from g: parallel edges are
// aggregated per directed pair, self-loops are ignored, and any negative
// capacity aborts construction with an EdgeError.
//
// Complexity: O(V log V + E).
func newResidual(g *core.Graph) (*residual, error) {
	vertices := g.Vertices()

	// Aggregate capacities per directed pair, rejecting negatives.
	capMap := make(map[string]map[string]int64, len(vertices))
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		if e.Weight < 0 {
			return nil, EdgeError{From: e.From, To: e.To, Cap: e.Weight}
		}
		if capMap[e.From] == nil {
			capMap[e.From] = make(map[string]int64)
		}
		capMap[e.From][e.To] += e.Weight
	}

	r := &residual{
		arcs:  make(map[string][]*arc, len(vertices)),
		order: vertices,
	}

	// idx[u][v] is the position of the u→v arc in r.arcs[u], so a reverse
	// arc created earlier can be topped up instead of duplicated.
	idx := make(map[string]map[string]int, len(vertices))
	locate := func(u, v string) (int, bool) {
		if m, ok := idx[u]; ok {
			if i, ok := m[v]; ok {
				return i, true
			}
		}

		return 0, false
	}
	record := func(u, v string, i int) {
		if idx[u] == nil {
			idx[u] = make(map[string]int)
		}
		idx[u][v] = i
	}

	for _, u := range vertices {
		targets := make([]string, 0, len(capMap[u]))
		for v := range capMap[u] {
			targets = append(targets, v)
		}
		sort.Strings(targets)

		for _, v := range targets {
			c := capMap[u][v]
			if c == 0 {
				continue
			}
			if i, ok := locate(u, v); ok {
				// The pair exists already (u→v was created as the reverse
				// of an earlier v→u edge): just add the capacity.
				r.arcs[u][i].cap += c

				continue
			}
			fwd := &arc{to: v, cap: c}
			bwd := &arc{to: u, cap: 0}
			r.arcs[u] = append(r.arcs[u], fwd)
			r.arcs[v] = append(r.arcs[v], bwd)
			fwd.rev = len(r.arcs[v]) - 1
			bwd.rev = len(r.arcs[u]) - 1
			record(u, v, bwd.rev)
			record(v, u, fwd.rev)
		}
	}

	return r, nil
}

// bfsAugmenting finds the fewest-hop path from source to sink with positive
// residual capacity on every arc. It returns the vertex sequence, the arcs
// traversed, and the bottleneck capacity; a nil path means the sink is no
// longer reachable.
//
// Complexity: O(V + E) per call.
func (r *residual) bfsAugmenting(ctx context.Context, source, sink string) ([]string, []*arc, int64) {
	parent := make(map[string]hop, len(r.order))
	visited := map[string]bool{source: true}

	queue := []string{source}
	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return nil, nil, 0
		default:
		}

		u := queue[0]
		queue = queue[1:]
		for _, a := range r.arcs[u] {
			if a.cap <= 0 || visited[a.to] {
				continue
			}
			visited[a.to] = true
			parent[a.to] = hop{prev: u, via: a}
			if a.to == sink {
				return r.walkBack(parent, source, sink)
			}
			queue = append(queue, a.to)
		}
	}

	return nil, nil, 0
}

// walkBack reconstructs the augmenting path recorded in parent, computing
// the bottleneck along the way.
func (r *residual) walkBack(parent map[string]hop, source, sink string) ([]string, []*arc, int64) {
	var (
		path   = []string{sink}
		arcs   []*arc
		bottle int64 = -1
	)
	for at := sink; at != source; {
		h := parent[at]
		arcs = append(arcs, h.via)
		path = append(path, h.prev)
		if bottle < 0 || h.via.cap < bottle {
			bottle = h.via.cap
		}
		at = h.prev
	}
	// Reverse into source-to-sink order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for i, j := 0, len(arcs)-1; i < j; i, j = i+1, j-1 {
		arcs[i], arcs[j] = arcs[j], arcs[i]
	}

	return path, arcs, bottle
}

// hop records how BFS entered a vertex: the predecessor and the arc taken.
type hop struct {
	prev string
	via  *arc
}

// augment pushes amount units along the given arcs, moving capacity to the
// paired reverse arcs.
func (r *residual) augment(arcs []*arc, amount int64) {
	for _, a := range arcs {
		a.cap -= amount
		r.arcs[a.to][a.rev].cap += amount
	}
}

// export materializes the residual as a *core.Graph: same vertex set and
// configuration flags as the origin graph, one edge per directed pair with
// positive remaining capacity.
//
// Complexity: O(V + E_res).
func (r *residual) export(origin *core.Graph) (*core.Graph, error) {
	out := origin.CloneEmpty()
	for _, u := range r.order {
		for _, a := range r.arcs[u] {
			if a.cap <= 0 {
				continue
			}
			if _, err := out.AddEdge(u, a.to, a.cap); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
