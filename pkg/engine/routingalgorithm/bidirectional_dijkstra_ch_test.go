package routingalgorithm

import (
	"context"
	"testing"

	"github.com/lintang-b-s/chpath/pkg/datastructure"
	"github.com/lintang-b-s/chpath/pkg/engine/expansion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
dari https://jlazarsfeld.github.io/ch.150.project/sections/8-contraction/
p=0, v=1, q=2, w=3, r=4, f=5

	 p
	  \
	   \
	    10
	     \
		  v -----3----- r
		 /            /
		6            5
	   /    		/
	  q ---5----- w ----15---- f

semua edge bidirectional. contraction order r, q, p, f, v, w: contracting r adds the
shortcut v - w (8) via r, contracting q adds nothing because v - r - w is shorter.
*/
func NewGraph(t *testing.T) (*datastructure.Graph, map[string]datastructure.EdgeID) {
	builder := datastructure.NewGraphBuilder(6)
	require.NoError(t, builder.SetVertex(0, datastructure.NewCoordinate(47.58677, -122.18003), 2))
	require.NoError(t, builder.SetVertex(1, datastructure.NewCoordinate(47.5788, -122.2332), 4))
	require.NoError(t, builder.SetVertex(2, datastructure.NewCoordinate(47.64029, -122.17226), 1))
	require.NoError(t, builder.SetVertex(3, datastructure.NewCoordinate(47.62734, -122.14634), 5))
	require.NoError(t, builder.SetVertex(4, datastructure.NewCoordinate(47.60350, -122.18170), 0))
	require.NoError(t, builder.SetVertex(5, datastructure.NewCoordinate(47.57074, -122.16883), 3))

	ids := make(map[string]datastructure.EdgeID)
	add := func(name string, from, to datastructure.VertexID, weight float64) {
		id, err := builder.AddEdge(from, to, datastructure.EncodeEdgeData(weight, datastructure.Bidirectional))
		require.NoError(t, err)
		ids[name] = id
	}
	add("pv", 0, 1, 10)
	add("vr", 1, 4, 3)
	add("vq", 1, 2, 6)
	add("qw", 2, 3, 5)
	add("wr", 3, 4, 5)
	add("wf", 3, 5, 15)

	id, err := builder.AddShortcut(1, 3, datastructure.EncodeEdgeData(8, datastructure.Bidirectional),
		datastructure.NewShortcut(4, []datastructure.VertexID{4}, []datastructure.VertexID{4}))
	require.NoError(t, err)
	ids["vw"] = id

	return builder.Build(), ids
}

func TestShortestPathBidirectionalDijkstraCH(t *testing.T) {
	g, ids := NewGraph(t)
	rt := NewRouteAlgorithm(g)

	path, err := rt.ShortestPathBiDijkstraCH(context.Background(), 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 33.0, path.Weight)

	// P(0) -> V(1) => W(3) -> F(5), V => W is the shortcut.
	assert.Equal(t, []datastructure.VertexID{0, 1, 3, 5}, path.Vertices())
	assert.Equal(t, []datastructure.DirectedEdge{
		datastructure.NewDirectedEdge(ids["pv"], true),
		datastructure.NewDirectedEdge(ids["vw"], true),
		datastructure.NewDirectedEdge(ids["wf"], true),
	}, path.Edges())

	expanded, err := expansion.NewExpander(g).Expand(path)
	require.NoError(t, err)

	// shortest path nya:  P(0) -> V(1) -> R(4) -> W(3) -> F(5)
	assert.Equal(t, []datastructure.VertexID{0, 1, 4, 3, 5}, expanded.Vertices())
	assert.Equal(t, []datastructure.DirectedEdge{
		datastructure.NewDirectedEdge(ids["pv"], true),
		datastructure.NewDirectedEdge(ids["vr"], true),
		datastructure.NewDirectedEdge(ids["wr"], false),
		datastructure.NewDirectedEdge(ids["wf"], true),
	}, expanded.Edges())
	assert.Equal(t, 33.0, expanded.Weight)
}

func TestShortestPathBidirectionalDijkstraCHReverse(t *testing.T) {
	g, ids := NewGraph(t)
	rt := NewRouteAlgorithm(g)

	path, err := rt.ShortestPathBiDijkstraCH(context.Background(), 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 33.0, path.Weight)
	assert.Equal(t, []datastructure.VertexID{5, 3, 1, 0}, path.Vertices())
	assert.Equal(t, datastructure.NewDirectedEdge(ids["vw"], false), path.Edges()[1])

	expanded, err := expansion.NewExpander(g).Expand(path)
	require.NoError(t, err)
	assert.Equal(t, []datastructure.VertexID{5, 3, 4, 1, 0}, expanded.Vertices())
	assert.Equal(t, 33.0, expanded.Weight)
}

func TestShortestPathMatchesPlainSearch(t *testing.T) {
	g, _ := NewGraph(t)
	rt := NewRouteAlgorithm(g)
	e := expansion.NewExpander(g)

	for from := datastructure.VertexID(0); from < 6; from++ {
		for to := datastructure.VertexID(0); to < 6; to++ {
			chPath, err := rt.ShortestPathBiDijkstraCH(context.Background(), from, to)
			require.NoError(t, err)
			plainPath, err := rt.ShortestPathBiDijkstra(context.Background(), from, to)
			require.NoError(t, err)

			assert.Equal(t, plainPath.Weight, chPath.Weight, "%d -> %d", from, to)

			expanded, err := e.Expand(chPath)
			require.NoError(t, err)
			full, err := e.IsFullyExpanded(expanded)
			require.NoError(t, err)
			assert.True(t, full)
			assert.Equal(t, from, expanded.Root().Vertex)
			assert.Equal(t, to, expanded.Vertex)
		}
	}
}

func TestShortestPathNoPath(t *testing.T) {
	builder := datastructure.NewGraphBuilder(3)
	require.NoError(t, builder.SetVertex(0, datastructure.NewCoordinate(0, 0), 0))
	require.NoError(t, builder.SetVertex(1, datastructure.NewCoordinate(0, 1), 1))
	_, err := builder.AddEdge(0, 1, datastructure.EncodeEdgeData(1, datastructure.Forward))
	require.NoError(t, err)
	rt := NewRouteAlgorithm(builder.Build())

	path, err := rt.ShortestPathBiDijkstraCH(context.Background(), 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, path.Weight)

	// one way only.
	_, err = rt.ShortestPathBiDijkstraCH(context.Background(), 1, 0)
	assert.ErrorIs(t, err, ErrNoPath)
	_, err = rt.ShortestPathBiDijkstra(context.Background(), 0, 2)
	assert.ErrorIs(t, err, ErrNoPath)

	_, err = rt.ShortestPathBiDijkstraCH(context.Background(), 0, 9)
	assert.ErrorIs(t, err, datastructure.ErrVertexOutOfRange)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = rt.ShortestPathBiDijkstraCH(ctx, 0, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
