package flow

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/avetra/netpath/core"
)

// ShortestAugmentingPath finds the fewest-hop route from source to sink on
// which every edge still has positive residual capacity, together with the
// bottleneck (the largest amount that could be pushed along it).
//
// This is the single search step of Edmonds–Karp, exposed on its own
// because it is the computation the network diagrams highlight.
//
// Returns ErrNoAugmentingPath when the sink is unreachable over positive
// capacities — a normal outcome — and ErrSourceNotFound / ErrSinkNotFound /
// EdgeError for contract violations.
//
// When source == sink the augmenting path is already complete: the result
// is the single-vertex path with bottleneck 0, never an error.
//
// Complexity: O(V + E).
func ShortestAugmentingPath(ctx context.Context, g *core.Graph, source, sink string) ([]string, int64, error) {
	if !g.HasVertex(source) {
		return nil, 0, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return nil, 0, ErrSinkNotFound
	}
	if source == sink {
		return []string{source}, 0, nil
	}

	r, err := newResidual(g)
	if err != nil {
		return nil, 0, err
	}

	path, _, bottle := r.bfsAugmenting(ctx, source, sink)
	if err = ctx.Err(); err != nil {
		return nil, 0, err
	}
	if len(path) == 0 {
		return nil, 0, ErrNoAugmentingPath
	}

	return path, bottle, nil
}

// EdmondsKarp computes the maximum flow from source→sink using BFS for
// shortest (fewest-hop) augmenting paths.
//
// It returns:
//   - maxFlow: total flow value
//   - residual: residual-capacity graph after flow
//   - err: missing vertices, negative capacities, or context cancellation.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(
	ctx context.Context,
	g *core.Graph,
	source, sink string,
	opts FlowOptions,
) (maxFlow int64, residual *core.Graph, err error) {
	// 1) Validate presence of source/sink
	if !g.HasVertex(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, nil, ErrSinkNotFound
	}

	// 2) Build the residual network (aggregates parallel edges, skips loops)
	r, err := newResidual(g)
	if err != nil {
		return 0, nil, err
	}

	// 3) Main loop: augment along BFS paths until none remain
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}
		path, arcs, bottle := r.bfsAugmenting(ctx, source, sink)
		if len(path) == 0 || bottle <= 0 {
			break
		}
		if opts.Verbose {
			log.Debugf("flow: augmenting path %v with %d units", path, bottle)
		}
		r.augment(arcs, bottle)
		maxFlow += bottle
	}

	// 4) Materialize the remaining capacities
	residual, err = r.export(g)
	if err != nil {
		return maxFlow, nil, err
	}

	return maxFlow, residual, nil
}
