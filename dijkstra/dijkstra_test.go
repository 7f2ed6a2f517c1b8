// Package dijkstra_test contains unit tests for the shortest-path search.
// They cover input validation, route correctness on the delivery network the
// library was designed around, tie-break determinism, unreachable targets,
// and a brute-force cross-check on small graphs.
package dijkstra_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/avetra/netpath/core"
	"github.com/avetra/netpath/dijkstra"
)

// deliveryNetwork builds the package-delivery graph:
// warehouse S, hubs A..F, distribution centers T1 and T2.
func deliveryNetwork() *core.Graph {
	g := core.NewGraph()
	g.AddEdge("S", "A", 10)
	g.AddEdge("S", "B", 12)
	g.AddEdge("A", "C", 8)
	g.AddEdge("A", "D", 4)
	g.AddEdge("A", "B", 3)
	g.AddEdge("B", "D", 7)
	g.AddEdge("B", "E", 6)
	g.AddEdge("C", "D", 2)
	g.AddEdge("C", "F", 5)
	g.AddEdge("D", "T2", 6)
	g.AddEdge("E", "T2", 10)
	g.AddEdge("F", "T1", 7)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation: errors for invalid inputs, before any traversal.
// ------------------------------------------------------------------------

func TestShortestPath_EmptySource(t *testing.T) {
	g := core.NewGraph()
	g.AddVertex("T")
	if _, err := dijkstra.ShortestPath(g, "", "T"); !errors.Is(err, dijkstra.ErrEmptySource) {
		t.Fatalf("expected ErrEmptySource, got %v", err)
	}
}

func TestShortestPath_NilGraph(t *testing.T) {
	if _, err := dijkstra.ShortestPath(nil, "S", "T"); !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestShortestPath_UnknownVertices(t *testing.T) {
	g := deliveryNetwork()
	if _, err := dijkstra.ShortestPath(g, "Z", "T1"); !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("expected ErrVertexNotFound for unknown source, got %v", err)
	}
	if _, err := dijkstra.ShortestPath(g, "S", "Z"); !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("expected ErrVertexNotFound for unknown target, got %v", err)
	}
}

func TestShortestPath_NegativeWeightDetectedBeforeTraversal(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B", 3)
	g.AddEdge("B", "C", -5)
	_, err := dijkstra.ShortestPath(g, "A", "C")
	if !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("expected ErrNegativeWeight, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Delivery-network routes: the scenarios the exporter draws.
// ------------------------------------------------------------------------

func TestShortestPath_WarehouseToT2(t *testing.T) {
	g := deliveryNetwork()
	p, err := dijkstra.ShortestPath(g, "S", "T2")
	if err != nil {
		t.Fatal(err)
	}

	// Cheapest route: S→A(10), A→D(4), D→T2(6) = 20.
	if p.Cost != 20 {
		t.Errorf("Cost = %d; want 20", p.Cost)
	}
	want := []string{"S", "A", "D", "T2"}
	if got := p.Vertices(); !reflect.DeepEqual(got, want) {
		t.Errorf("Vertices() = %v; want %v", got, want)
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d; want 3", p.Len())
	}
}

func TestShortestPath_WarehouseToT1(t *testing.T) {
	g := deliveryNetwork()
	p, err := dijkstra.ShortestPath(g, "S", "T1")
	if err != nil {
		t.Fatal(err)
	}

	// The only route to T1: S→A(10), A→C(8), C→F(5), F→T1(7) = 30.
	if p.Cost != 30 {
		t.Errorf("Cost = %d; want 30", p.Cost)
	}
	want := []string{"S", "A", "C", "F", "T1"}
	if got := p.Vertices(); !reflect.DeepEqual(got, want) {
		t.Errorf("Vertices() = %v; want %v", got, want)
	}
}

func TestShortestPath_Contiguous(t *testing.T) {
	g := deliveryNetwork()
	p, err := dijkstra.ShortestPath(g, "S", "T2")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(p.Edges)-1; i++ {
		if p.Edges[i].To != p.Edges[i+1].From {
			t.Fatalf("path not contiguous at hop %d: %s→%s then %s→%s",
				i, p.Edges[i].From, p.Edges[i].To, p.Edges[i+1].From, p.Edges[i+1].To)
		}
	}
	if p.Edges[0].From != "S" || p.Edges[len(p.Edges)-1].To != "T2" {
		t.Error("path endpoints do not match source/target")
	}
}

// ------------------------------------------------------------------------
// 3. Degenerate routes and unreachable targets.
// ------------------------------------------------------------------------

func TestShortestPath_SourceEqualsTarget(t *testing.T) {
	g := deliveryNetwork()
	p, err := dijkstra.ShortestPath(g, "S", "S")
	if err != nil {
		t.Fatal(err)
	}
	if p.Cost != 0 || p.Len() != 0 {
		t.Errorf("self path: cost=%d len=%d; want 0/0", p.Cost, p.Len())
	}
	if got := p.Vertices(); len(got) != 1 || got[0] != "S" {
		t.Errorf("Vertices() = %v; want [S]", got)
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := deliveryNetwork()
	// All edges point away from S; T1 cannot reach S.
	_, err := dijkstra.ShortestPath(g, "T1", "S")
	if !errors.Is(err, dijkstra.ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
}

func TestShortestPath_DisconnectedVertex(t *testing.T) {
	g := deliveryNetwork()
	g.AddVertex("island")
	_, err := dijkstra.ShortestPath(g, "S", "island")
	if !errors.Is(err, dijkstra.ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
}

func TestShortestPath_NearMaxWeightDoesNotOverflow(t *testing.T) {
	// A→B would push the running distance past int64; the sum must not
	// wrap into a negative "improvement".
	g := core.NewGraph()
	g.AddEdge("S", "A", dijkstra.Unreachable-1)
	g.AddEdge("A", "B", 10)

	p, err := dijkstra.ShortestPath(g, "S", "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Cost != dijkstra.Unreachable-1 {
		t.Fatalf("expected cost %d, got %d", dijkstra.Unreachable-1, p.Cost)
	}

	_, err = dijkstra.ShortestPath(g, "S", "B")
	if !errors.Is(err, dijkstra.ErrNoPath) {
		t.Fatalf("expected ErrNoPath, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 4. Determinism: repeated runs and equal-distance tie-breaks.
// ------------------------------------------------------------------------

func TestShortestPath_Deterministic(t *testing.T) {
	g := deliveryNetwork()
	first, err := dijkstra.ShortestPath(g, "S", "T2")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		p, err := dijkstra.ShortestPath(g, "S", "T2")
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(p.Vertices(), first.Vertices()) || p.Cost != first.Cost {
			t.Fatalf("run %d differs: %v (%d) vs %v (%d)",
				i, p.Vertices(), p.Cost, first.Vertices(), first.Cost)
		}
	}
}

func TestShortestPath_TieBrokenByVertexID(t *testing.T) {
	// Two equal-cost routes A→B→D and A→C→D; the ID tie-break must always
	// pick the route through B (extracted before C at equal distance).
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("A", "C", 1)
	g.AddEdge("B", "D", 1)
	g.AddEdge("C", "D", 1)

	want := []string{"A", "B", "D"}
	for i := 0; i < 10; i++ {
		p, err := dijkstra.ShortestPath(g, "A", "D")
		if err != nil {
			t.Fatal(err)
		}
		if got := p.Vertices(); !reflect.DeepEqual(got, want) {
			t.Fatalf("run %d: Vertices() = %v; want %v", i, got, want)
		}
	}
}

// ------------------------------------------------------------------------
// 5. Brute-force cross-check: the returned cost is the true minimum.
// ------------------------------------------------------------------------

// bruteForceMinCost enumerates every simple path from source to target.
func bruteForceMinCost(g *core.Graph, source, target string) (int64, bool) {
	best := int64(math.MaxInt64)
	found := false

	var walk func(at string, cost int64, seen map[string]bool)
	walk = func(at string, cost int64, seen map[string]bool) {
		if at == target {
			found = true
			if cost < best {
				best = cost
			}

			return
		}
		out, err := g.OutEdges(at)
		if err != nil {
			return
		}
		for _, e := range out {
			if seen[e.To] {
				continue
			}
			seen[e.To] = true
			walk(e.To, cost+e.Weight, seen)
			delete(seen, e.To)
		}
	}
	walk(source, 0, map[string]bool{source: true})

	return best, found
}

func TestShortestPath_MatchesBruteForce(t *testing.T) {
	g := deliveryNetwork()
	source := "S"
	for _, target := range g.Vertices() {
		p, err := dijkstra.ShortestPath(g, source, target)
		want, reachable := bruteForceMinCost(g, source, target)

		if !reachable {
			if !errors.Is(err, dijkstra.ErrNoPath) {
				t.Errorf("%s→%s: expected ErrNoPath, got %v", source, target, err)
			}

			continue
		}
		if err != nil {
			t.Errorf("%s→%s: unexpected error %v", source, target, err)

			continue
		}
		if p.Cost != want {
			t.Errorf("%s→%s: Cost = %d; brute force says %d", source, target, p.Cost, want)
		}
	}
}

// ------------------------------------------------------------------------
// 6. Distances: all-targets variant.
// ------------------------------------------------------------------------

func TestDistances_DeliveryNetwork(t *testing.T) {
	g := deliveryNetwork()
	dist, prev, err := dijkstra.Distances(g, dijkstra.Source("S"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}

	expected := map[string]int64{
		"S": 0, "A": 10, "B": 12, "C": 18, "D": 14,
		"E": 18, "F": 23, "T1": 30, "T2": 20,
	}
	for v, want := range expected {
		if got := dist[v]; got != want {
			t.Errorf("dist[%s] = %d; want %d", v, got, want)
		}
	}

	// Spot-check the predecessor chain toward T2: D←A, T2←D.
	if prev["D"] != "A" || prev["T2"] != "D" {
		t.Errorf("unexpected predecessors: prev[D]=%q prev[T2]=%q", prev["D"], prev["T2"])
	}
	if prev["S"] != "" {
		t.Errorf("prev[S] = %q; want empty string", prev["S"])
	}
}

func TestDistances_NoReturnPath(t *testing.T) {
	g := deliveryNetwork()
	_, prev, err := dijkstra.Distances(g, dijkstra.Source("S"))
	if err != nil {
		t.Fatal(err)
	}
	if prev != nil {
		t.Errorf("expected nil predecessor map, got %v", prev)
	}
}

func TestDistances_MaxDistanceLimits(t *testing.T) {
	g := deliveryNetwork()
	dist, _, err := dijkstra.Distances(g, dijkstra.Source("S"), dijkstra.WithMaxDistance(12))
	if err != nil {
		t.Fatal(err)
	}
	if dist["A"] != 10 || dist["B"] != 12 {
		t.Errorf("near vertices mispriced: A=%d B=%d", dist["A"], dist["B"])
	}
	if dist["T2"] != dijkstra.Unreachable {
		t.Errorf("dist[T2] = %d; want Unreachable", dist["T2"])
	}
}

func TestDistances_ParallelEdgesCheapestWins(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	g.AddEdge("A", "B", 9)
	g.AddEdge("A", "B", 2)
	g.AddEdge("A", "B", 5)

	dist, _, err := dijkstra.Distances(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if dist["B"] != 2 {
		t.Errorf("dist[B] = %d; want 2 (cheapest parallel edge)", dist["B"])
	}
}
