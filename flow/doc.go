// Package flow implements augmenting-path search and maximum-flow
// algorithms over the networks of package core, reading edge weights as
// capacities.
//
// The key routines offered are:
//
//   - ShortestAugmentingPath
//
//   - Method: single BFS over the residual network for the fewest-hop
//     path with positive capacity on every edge, plus its bottleneck.
//
//   - Time:   O(V + E).
//
//   - Use when you only need the next path a flow algorithm would take —
//     for instance to highlight it in a diagram.
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest augmenting paths.
//
//   - Time:   O(V · E²) worst case with integer capacities.
//
//   - Guarantees polynomial worst-case behavior.
//
//   - Dinic
//
//   - Method: level-graph construction + blocking flow via DFS.
//
//   - Time:   O(E · V²) general, O(E · √V) on unit-capacity networks.
//
//   - High practical performance on dense or high-capacity networks.
//
//   - Ford–Fulkerson
//
//   - Method: depth-first search for any augmenting path.
//
//   - Time:   O(E · F), where F is the total flow pushed.
//
//   - Use when simplicity and moderate capacities suffice.
//
// # Graph support
//
// All routines operate on *core.Graph: edges are directed, capacities are
// int64 edge weights, parallel edges are aggregated per directed pair, and
// self-loops are ignored for augmenting-path search.
//
// # API
//
// The max-flow entry points share one signature:
//
//	func EdmondsKarp(
//	    ctx context.Context,
//	    g *core.Graph,
//	    source, sink string,
//	    opts FlowOptions,
//	) (maxFlow int64, residual *core.Graph, err error)
//
// Each returns the computed flow value and a residual graph preserving the
// original configuration flags; its edges are the remaining forward
// capacities plus the reverse capacities created by pushed flow.
//
// FlowOptions currently carries Verbose, which logs every augmentation at
// debug level through logrus.
//
// # Errors
//
//	ErrSourceNotFound   - source vertex missing from the input graph.
//	ErrSinkNotFound     - sink vertex missing.
//	ErrNoAugmentingPath - ShortestAugmentingPath found every route
//	                      saturated (normal outcome).
//	EdgeError           - negative capacity encountered.
//	context.Canceled / context.DeadlineExceeded - ctx canceled mid-run.
package flow
