package graphfile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avetra/netpath/core"
	"github.com/avetra/netpath/graphfile"
)

const deliveryYAML = `
name: package-delivery
source: S
sinks: [T1, T2]
vertices:
  - id: S
    label: Warehouse
    kind: source
  - id: A
  - id: B
  - id: C
  - id: D
  - id: E
  - id: F
  - id: T1
    label: Distribution Ctr
    kind: sink
  - id: T2
    label: Distribution Ctr
    kind: sink
edges:
  - {from: S, to: A, weight: 10}
  - {from: S, to: B, weight: 12}
  - {from: A, to: C, weight: 8}
  - {from: A, to: D, weight: 4}
  - {from: A, to: B, weight: 3}
  - {from: B, to: D, weight: 7}
  - {from: B, to: E, weight: 6}
  - {from: C, to: D, weight: 2}
  - {from: C, to: F, weight: 5}
  - {from: D, to: T2, weight: 6}
  - {from: E, to: T2, weight: 10}
  - {from: F, to: T1, weight: 7}
`

func TestLoad_DeliveryNetwork(t *testing.T) {
	doc, err := graphfile.Load(strings.NewReader(deliveryYAML))
	require.NoError(t, err)

	require.Equal(t, "package-delivery", doc.Name)
	require.Equal(t, "S", doc.Source)
	require.Equal(t, []string{"T1", "T2"}, doc.Sinks)
	require.Len(t, doc.Vertices, 9)
	require.Len(t, doc.Edges, 12)

	g, err := doc.Graph()
	require.NoError(t, err)
	require.Equal(t, 9, g.VertexCount())
	require.Equal(t, 12, g.EdgeCount())
	require.True(t, g.HasEdge("S", "A"))

	v, err := g.Vertex("S")
	require.NoError(t, err)
	require.Equal(t, "Warehouse", v.Metadata["label"])
	require.Equal(t, "source", v.Metadata["kind"])

	t1, err := g.Vertex("T1")
	require.NoError(t, err)
	require.Equal(t, "sink", t1.Metadata["kind"])

	// kind is optional: plain hubs carry no classification.
	a, err := g.Vertex("A")
	require.NoError(t, err)
	require.Empty(t, a.Metadata["kind"])
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	_, err := graphfile.Load(strings.NewReader("vertices:\n  - id: A\n    shape: circle\n"))
	require.Error(t, err, "unknown fields must be rejected")
}

func TestGraph_MalformedDescriptions(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{
			"edge references undeclared vertex",
			"vertices:\n  - id: A\nedges:\n  - {from: A, to: Z, weight: 1}\n",
		},
		{
			"duplicate vertex id",
			"vertices:\n  - id: A\n  - id: A\n",
		},
		{
			"negative weight",
			"vertices:\n  - id: A\n  - id: B\nedges:\n  - {from: A, to: B, weight: -4}\n",
		},
		{
			"empty vertex id",
			"vertices:\n  - id: \"\"\n",
		},
		{
			"no vertices",
			"edges: []\n",
		},
		{
			"undeclared source",
			"source: Z\nvertices:\n  - id: A\n",
		},
		{
			"undeclared sink",
			"sinks: [Z]\nvertices:\n  - id: A\n",
		},
		{
			"self-loop without policy",
			"vertices:\n  - id: A\nedges:\n  - {from: A, to: A, weight: 1}\n",
		},
		{
			"parallel edge without policy",
			"vertices:\n  - id: A\n  - id: B\nedges:\n  - {from: A, to: B, weight: 1}\n  - {from: A, to: B, weight: 2}\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := graphfile.Load(strings.NewReader(tc.yaml))
			require.NoError(t, err, "parse must succeed; validation happens in Graph()")

			_, err = doc.Graph()
			require.ErrorIs(t, err, graphfile.ErrMalformedGraph)
		})
	}
}

func TestGraph_PoliciesForwarded(t *testing.T) {
	doc, err := graphfile.Load(strings.NewReader(
		"vertices:\n  - id: A\n  - id: B\nedges:\n  - {from: A, to: B, weight: 1}\n  - {from: A, to: B, weight: 2}\n"))
	require.NoError(t, err)

	g, err := doc.Graph(core.WithMultiEdges())
	require.NoError(t, err)
	require.Equal(t, 2, g.EdgeCount())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := graphfile.LoadFile("testdata/does-not-exist.yaml")
	require.Error(t, err)
}
