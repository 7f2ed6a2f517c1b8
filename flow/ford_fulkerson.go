package flow

import (
	"context"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/avetra/netpath/core"
)

// FordFulkerson computes the maximum flow from source to sink by repeatedly
// augmenting along any DFS-discovered path with positive residual capacity.
//
// Prefer EdmondsKarp or Dinic for large or high-capacity networks; this
// variant exists for its simplicity and its O(E · F) bound, where F is the
// total flow pushed.
//
// Returns the same triple as the other algorithms: total flow, residual
// graph, error (missing vertices, negative capacities, cancellation).
func FordFulkerson(
	ctx context.Context,
	g *core.Graph,
	source, sink string,
	opts FlowOptions,
) (maxFlow int64, residualGraph *core.Graph, err error) {
	if !g.HasVertex(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, nil, ErrSinkNotFound
	}

	r, err := newResidual(g)
	if err != nil {
		return 0, nil, err
	}

	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}
		visited := make(map[string]bool, len(r.order))
		pushed := r.dfsPush(visited, source, sink, math.MaxInt64)
		if pushed == 0 {
			break
		}
		maxFlow += pushed
		if opts.Verbose {
			log.Debugf("flow: ford-fulkerson pushed %d units, total %d", pushed, maxFlow)
		}
	}

	residualGraph, err = r.export(g)
	if err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residualGraph, nil
}

// dfsPush walks depth-first from u toward sink over positive-capacity arcs
// and pushes the bottleneck back along the discovered path.
func (r *residual) dfsPush(visited map[string]bool, u, sink string, available int64) int64 {
	if u == sink {
		return available
	}
	visited[u] = true

	for _, a := range r.arcs[u] {
		if a.cap <= 0 || visited[a.to] {
			continue
		}
		send := available
		if a.cap < send {
			send = a.cap
		}
		pushed := r.dfsPush(visited, a.to, sink, send)
		if pushed > 0 {
			a.cap -= pushed
			r.arcs[a.to][a.rev].cap += pushed

			return pushed
		}
	}

	return 0
}
