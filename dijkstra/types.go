// Package dijkstra defines the types and configuration options for the
// shortest-path search on weighted delivery networks.
//
// Dijkstra computes the minimum-cost route from a single source vertex over
// non-negative edge weights. The algorithm maintains a min-heap of vertices
// keyed by tentative distance and relaxes outgoing edges in increasing
// distance order.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |vertices|, E = |edges|
//	– Space: O(V + E) (distance/predecessor maps plus heap entries under
//	  lazy decrease-key)
//
// Errors (sentinel):
//
//	– ErrEmptySource    if the provided source ID is empty.
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrVertexNotFound if the source or target vertex does not exist.
//	– ErrNegativeWeight if a negative edge weight is detected (checked
//	  up front, before any traversal).
//	– ErrNoPath         if the target is unreachable from the source.
//	  This is a normal outcome, not a fatal error.
//	– ErrBadMaxDistance if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"math"

	"github.com/avetra/netpath/core"
)

// Sentinel errors returned by this package.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was provided.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that no route exists from source to target.
	ErrNoPath = errors.New("dijkstra: no path between source and target")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Unreachable is the distance reported for vertices the search never
// reached (math.MaxInt64).
const Unreachable = int64(math.MaxInt64)

// Path is an ordered, contiguous sequence of edges from Source to Target.
//
// Each edge's To equals the next edge's From. A Path between a vertex and
// itself has no edges and zero cost.
type Path struct {
	// Source is the first vertex of the route.
	Source string

	// Target is the last vertex of the route.
	Target string

	// Edges holds the route edges in source-to-target order.
	Edges []*core.Edge

	// Cost is the sum of the edge weights along the route.
	Cost int64
}

// Vertices returns the route's vertex IDs in visiting order, Source first.
// For a zero-length path it returns just the source vertex.
func (p *Path) Vertices() []string {
	ids := make([]string, 0, len(p.Edges)+1)
	ids = append(ids, p.Source)
	for _, e := range p.Edges {
		ids = append(ids, e.To)
	}

	return ids
}

// Len returns the number of edges (hops) in the path.
func (p *Path) Len() int { return len(p.Edges) }

// Options configures the behavior of the search.
//
// Source      – starting vertex ID (must be non-empty and present).
// Target      – optional target vertex ID; when set, the search stops as
// soon as the target's distance is finalized.
// ReturnPath  – if true, Distances also returns the predecessor map.
// MaxDistance – vertices farther than this are not explored. Must be ≥ 0.
// Default is math.MaxInt64 (no cap).
type Options struct {
	Source      string // the ID of the source vertex
	Target      string // optional early-exit target
	ReturnPath  bool   // whether Distances returns the predecessor map
	MaxDistance int64  // maximum distance to explore
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// Target sets an early-exit target: once its shortest distance is
// finalized the search stops.
func Target(id string) Option {
	return func(o *Options) { o.Target = id }
}

// WithReturnPath enables generation of the predecessor map in Distances.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps exploration: vertices whose shortest distance would
// exceed max are not visited. Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults for
// the given source vertex ID:
//
//   - Target:      "" (explore all reachable vertices).
//   - ReturnPath:  false.
//   - MaxDistance: math.MaxInt64 (no cap).
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.MaxInt64,
	}
}
