package flow_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/avetra/netpath/core"
	"github.com/avetra/netpath/flow"
)

// DinicSuite groups tests for Dinic's algorithm.
type DinicSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *DinicSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *DinicSuite) TestSimplePath() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 5)

	mf, res, err := flow.Dinic(s.ctx, g, "A", "B", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), mf)
	require.False(s.T(), res.HasEdge("A", "B"))
	require.True(s.T(), res.HasEdge("B", "A"))
}

func (s *DinicSuite) TestTextbookNetwork() {
	mf, _, err := flow.Dinic(s.ctx, clrsNetwork(), "s", "t", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(23), mf)
}

func (s *DinicSuite) TestDeliveryNetwork() {
	mf, _, err := flow.Dinic(s.ctx, deliveryNetwork(), "S", "T2", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(12), mf)
}

// TestRerouting: pushing greedily down one route must be undone through
// reverse arcs to reach the true maximum.
func (s *DinicSuite) TestRerouting() {
	g := core.NewGraph()
	g.AddEdge("s", "a", 1)
	g.AddEdge("s", "b", 1)
	g.AddEdge("a", "b", 1)
	g.AddEdge("a", "t", 1)
	g.AddEdge("b", "t", 1)

	mf, _, err := flow.Dinic(s.ctx, g, "s", "t", flow.DefaultOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), mf)
}

func (s *DinicSuite) TestMissingVertices() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)

	_, _, err := flow.Dinic(s.ctx, g, "ghost", "B", flow.DefaultOptions())
	require.ErrorIs(s.T(), err, flow.ErrSourceNotFound)

	_, _, err = flow.Dinic(s.ctx, g, "A", "ghost", flow.DefaultOptions())
	require.ErrorIs(s.T(), err, flow.ErrSinkNotFound)
}

func (s *DinicSuite) TestCancellation() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, _, err := flow.Dinic(ctx, deliveryNetwork(), "S", "T2", flow.DefaultOptions())
	require.ErrorIs(s.T(), err, context.Canceled)
}

func TestDinicSuite(t *testing.T) {
	suite.Run(t, new(DinicSuite))
}

// TestAlgorithmsAgree: all three implementations compute identical flow
// values on the same networks.
func TestAlgorithmsAgree(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name         string
		g            *core.Graph
		source, sink string
		want         int64
	}{
		{"delivery S→T2", deliveryNetwork(), "S", "T2", 12},
		{"delivery S→T1", deliveryNetwork(), "S", "T1", 5},
		{"textbook s→t", clrsNetwork(), "s", "t", 23},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ek, _, err := flow.EdmondsKarp(ctx, tc.g, tc.source, tc.sink, flow.DefaultOptions())
			require.NoError(t, err)
			dn, _, err := flow.Dinic(ctx, tc.g, tc.source, tc.sink, flow.DefaultOptions())
			require.NoError(t, err)
			ff, _, err := flow.FordFulkerson(ctx, tc.g, tc.source, tc.sink, flow.DefaultOptions())
			require.NoError(t, err)

			require.Equal(t, tc.want, ek, "edmonds-karp")
			require.Equal(t, tc.want, dn, "dinic")
			require.Equal(t, tc.want, ff, "ford-fulkerson")
		})
	}
}
