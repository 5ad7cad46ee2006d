package expansion

import (
	"sync"
	"testing"

	"github.com/lintang-b-s/chpath/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
vertex 0 is not used.

	1 ---5---> 2 ---4---> 3
	 \_________9________/^
	   shortcut via 2

"13x" is parallel to "13" but its sequences point to no edge at all.
*/
func newTriangleGraph(t *testing.T) (*datastructure.Graph, map[string]datastructure.EdgeID) {
	builder := datastructure.NewGraphBuilder(4)
	require.NoError(t, builder.SetVertex(1, datastructure.NewCoordinate(-7.5505, 110.7713), 2))
	require.NoError(t, builder.SetVertex(2, datastructure.NewCoordinate(-7.5512, 110.7781), 0))
	require.NoError(t, builder.SetVertex(3, datastructure.NewCoordinate(-7.5520, 110.7850), 1))

	ids := make(map[string]datastructure.EdgeID)
	var err error
	ids["12"], err = builder.AddEdge(1, 2, datastructure.EncodeEdgeData(5, datastructure.Forward))
	require.NoError(t, err)
	ids["23"], err = builder.AddEdge(2, 3, datastructure.EncodeEdgeData(4, datastructure.Forward))
	require.NoError(t, err)
	ids["13"], err = builder.AddShortcut(1, 3, datastructure.EncodeEdgeData(9, datastructure.Forward),
		datastructure.NewShortcut(2, []datastructure.VertexID{2}, []datastructure.VertexID{2}))
	require.NoError(t, err)
	ids["13x"], err = builder.AddShortcut(1, 3, datastructure.EncodeEdgeData(9, datastructure.Forward),
		datastructure.NewShortcut(2, []datastructure.VertexID{0}, []datastructure.VertexID{0}))
	require.NoError(t, err)
	return builder.Build(), ids
}

type vertexPair [2]datastructure.VertexID

/*
newNestedGraph builds the chain 0 -> 1 -> ... -> 2^levels of original edges with weight 1,
and on top of it a shortcut for every aligned block of 2^l edges, l = 1..levels:

	s -> s+2^l via s+2^(l-1), sequence1 = [s+1], sequence2 = [s+2^l-1]

so the shortcut 0 -> 2^levels nests levels deep.
*/
func newNestedGraph(t *testing.T, levels int) (*datastructure.Graph, map[vertexPair]datastructure.EdgeID) {
	n := 1 << levels
	builder := datastructure.NewGraphBuilder(n + 1)
	ids := make(map[vertexPair]datastructure.EdgeID)

	for v := 0; v < n; v++ {
		id, err := builder.AddEdge(datastructure.VertexID(v), datastructure.VertexID(v+1),
			datastructure.EncodeEdgeData(1, datastructure.Forward))
		require.NoError(t, err)
		ids[vertexPair{datastructure.VertexID(v), datastructure.VertexID(v + 1)}] = id
	}

	for l := 1; l <= levels; l++ {
		size := 1 << l
		for s := 0; s+size <= n; s += size {
			from, to := datastructure.VertexID(s), datastructure.VertexID(s+size)
			id, err := builder.AddShortcut(from, to, datastructure.EncodeEdgeData(float64(size), datastructure.Forward),
				datastructure.NewShortcut(datastructure.VertexID(s+size/2),
					[]datastructure.VertexID{from + 1}, []datastructure.VertexID{to - 1}))
			require.NoError(t, err)
			ids[vertexPair{from, to}] = id
		}
	}
	return builder.Build(), ids
}

func TestExpandSingleShortcut(t *testing.T) {
	g, ids := newTriangleGraph(t)
	e := NewExpander(g)

	path := datastructure.NewEdgePathRoot(1).Append(3, 9, datastructure.NewDirectedEdge(ids["13"], true))
	expanded, err := e.Expand(path)
	require.NoError(t, err)

	assert.Equal(t, []datastructure.VertexID{1, 2, 3}, expanded.Vertices())
	assert.Equal(t, []datastructure.DirectedEdge{
		datastructure.NewDirectedEdge(ids["12"], true),
		datastructure.NewDirectedEdge(ids["23"], true),
	}, expanded.Edges())
	assert.Equal(t, 9.0, expanded.Weight)
	assert.Equal(t, 5.0, expanded.From.Weight)
	assert.Equal(t, 0.0, expanded.Root().Weight)
}

func TestExpandReversedShortcut(t *testing.T) {
	g, ids := newTriangleGraph(t)
	e := NewExpander(g)

	path := datastructure.NewEdgePathRoot(3).Append(1, 9, datastructure.NewDirectedEdge(ids["13"], false))
	expanded, err := e.Expand(path)
	require.NoError(t, err)

	assert.Equal(t, []datastructure.VertexID{3, 2, 1}, expanded.Vertices())
	assert.Equal(t, []datastructure.DirectedEdge{
		datastructure.NewDirectedEdge(ids["23"], false),
		datastructure.NewDirectedEdge(ids["12"], false),
	}, expanded.Edges())
	assert.Equal(t, 9.0, expanded.Weight)
	assert.Equal(t, 4.0, expanded.From.Weight)

	// every edge decodes back to the travel order 3 -> 2 -> 1.
	vertices := expanded.Vertices()
	for i, edge := range expanded.Edges() {
		view, err := g.EdgeDirected(edge)
		require.NoError(t, err)
		assert.Equal(t, vertices[i], view.From)
		assert.Equal(t, vertices[i+1], view.To)
	}
}

func TestExpandNestedShortcuts(t *testing.T) {
	const levels = 10
	g, ids := newNestedGraph(t, levels)
	e := NewExpander(g)
	n := datastructure.VertexID(1 << levels)

	path := datastructure.NewEdgePathRoot(0).Append(n, float64(n), datastructure.NewDirectedEdge(ids[vertexPair{0, n}], true))
	expanded, err := e.Expand(path)
	require.NoError(t, err)

	require.Equal(t, int(n), expanded.Length())
	for i, node := range expanded.Nodes() {
		assert.Equal(t, datastructure.VertexID(i), node.Vertex)
		assert.Equal(t, float64(i), node.Weight)
		if i > 0 {
			assert.Equal(t, datastructure.NewDirectedEdge(ids[vertexPair{node.Vertex - 1, node.Vertex}], true), node.Edge)
		}
	}

	full, err := e.IsFullyExpanded(expanded)
	require.NoError(t, err)
	assert.True(t, full)
}

func TestExpandNestedShortcutsBackward(t *testing.T) {
	const levels = 6
	g, ids := newNestedGraph(t, levels)
	e := NewExpander(g)
	n := datastructure.VertexID(1 << levels)

	path := datastructure.NewEdgePathRoot(n).Append(0, float64(n), datastructure.NewDirectedEdge(ids[vertexPair{0, n}], false))
	expanded, err := e.Expand(path)
	require.NoError(t, err)

	require.Equal(t, int(n), expanded.Length())
	for i, node := range expanded.Nodes() {
		assert.Equal(t, n-datastructure.VertexID(i), node.Vertex)
		assert.Equal(t, float64(i), node.Weight)
		if i > 0 {
			assert.Equal(t, datastructure.NewDirectedEdge(ids[vertexPair{node.Vertex, node.Vertex + 1}], false), node.Edge)
		}
	}
}

func TestExpandMaxDepth(t *testing.T) {
	const levels = 10
	g, ids := newNestedGraph(t, levels)
	n := datastructure.VertexID(1 << levels)
	path := datastructure.NewEdgePathRoot(0).Append(n, float64(n), datastructure.NewDirectedEdge(ids[vertexPair{0, n}], true))

	_, err := NewExpander(g, WithMaxDepth(levels)).Expand(path)
	assert.NoError(t, err)

	_, err = NewExpander(g, WithMaxDepth(levels-1)).Expand(path)
	assert.ErrorIs(t, err, ErrHierarchyCorrupt)

	assert.Equal(t, DefaultMaxDepth, NewExpander(g, WithMaxDepth(0)).MaxDepth())
}

func TestExpandMissingSequence(t *testing.T) {
	g, ids := newTriangleGraph(t)
	e := NewExpander(g)

	path := datastructure.NewEdgePathRoot(1).Append(3, 9, datastructure.NewDirectedEdge(ids["13x"], true))
	expanded, err := e.Expand(path)
	assert.ErrorIs(t, err, datastructure.ErrEdgeNotFound)
	assert.Nil(t, expanded)

	path = datastructure.NewEdgePathRoot(1).Append(3, 9, datastructure.NewDirectedEdge(99, true))
	_, err = e.Expand(path)
	assert.ErrorIs(t, err, datastructure.ErrEdgeNotFound)
}

func TestExpandEdgeAgainstPathVertices(t *testing.T) {
	g, ids := newTriangleGraph(t)
	e := NewExpander(g)

	cases := []struct {
		name string
		path *datastructure.EdgePath
	}{
		{
			// vertices say 3 -> 1, the edge runs 1 -> 3.
			name: "shortcut in the wrong direction",
			path: datastructure.NewEdgePathRoot(3).Append(1, 9, datastructure.NewDirectedEdge(ids["13"], true)),
		},
		{
			name: "shortcut ending somewhere else",
			path: datastructure.NewEdgePathRoot(1).Append(2, 9, datastructure.NewDirectedEdge(ids["13"], true)),
		},
		{
			name: "original edge from another vertex",
			path: datastructure.NewEdgePathRoot(3).Append(2, 5, datastructure.NewDirectedEdge(ids["12"], true)),
		},
		{
			name: "mismatch after a valid prefix",
			path: datastructure.NewEdgePathRoot(1).
				Append(2, 5, datastructure.NewDirectedEdge(ids["12"], true)).
				Append(1, 9, datastructure.NewDirectedEdge(ids["23"], true)),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			expanded, err := e.Expand(c.path)
			assert.ErrorIs(t, err, datastructure.ErrEdgeNotFound)
			assert.Nil(t, expanded)
		})
	}
}

// a shortcut 0 -> 1 bypassing its own end vertex resolves its first half to itself.
func TestExpandCorruptHierarchy(t *testing.T) {
	builder := datastructure.NewGraphBuilder(2)
	_, err := builder.AddEdge(1, 1, datastructure.EncodeEdgeData(1, datastructure.Forward))
	require.NoError(t, err)
	loop, err := builder.AddShortcut(0, 1, datastructure.EncodeEdgeData(2, datastructure.Forward),
		datastructure.NewShortcut(1, []datastructure.VertexID{1}, []datastructure.VertexID{1}))
	require.NoError(t, err)
	g := builder.Build()

	path := datastructure.NewEdgePathRoot(0).Append(1, 3, datastructure.NewDirectedEdge(loop, true))
	_, err = NewExpander(g).Expand(path)
	assert.ErrorIs(t, err, ErrHierarchyCorrupt)
}

func TestExpandProperties(t *testing.T) {
	g, ids := newNestedGraph(t, 4)
	e := NewExpander(g)

	// 0 -> 1 -> 2 -> 4 -> 8 -> 16, originals mixed with shortcuts of every level.
	path := datastructure.NewEdgePathRoot(0).
		Append(1, 1, datastructure.NewDirectedEdge(ids[vertexPair{0, 1}], true)).
		Append(2, 1, datastructure.NewDirectedEdge(ids[vertexPair{1, 2}], true)).
		Append(4, 2, datastructure.NewDirectedEdge(ids[vertexPair{2, 4}], true)).
		Append(8, 4, datastructure.NewDirectedEdge(ids[vertexPair{4, 8}], true)).
		Append(16, 8, datastructure.NewDirectedEdge(ids[vertexPair{8, 16}], true))

	full, err := e.IsFullyExpanded(path)
	require.NoError(t, err)
	assert.False(t, full)

	expanded, err := e.Expand(path)
	require.NoError(t, err)

	assert.Equal(t, path.Weight, expanded.Weight)
	assert.Equal(t, path.Vertex, expanded.Vertex)
	assert.Equal(t, path.Root().Vertex, expanded.Root().Vertex)
	assert.Equal(t, 16, expanded.Length())

	for curr := expanded; curr.From != nil; curr = curr.From {
		original, err := e.IsOriginal(curr)
		require.NoError(t, err)
		assert.True(t, original)
	}

	again, err := e.Expand(expanded)
	require.NoError(t, err)
	assert.True(t, again.Equal(expanded))

	// the input is not touched.
	assert.Equal(t, []datastructure.VertexID{0, 1, 2, 4, 8, 16}, path.Vertices())
}

func TestExpandLast(t *testing.T) {
	g, ids := newNestedGraph(t, 4)
	e := NewExpander(g)

	path := datastructure.NewEdgePathRoot(0).
		Append(8, 8, datastructure.NewDirectedEdge(ids[vertexPair{0, 8}], true)).
		Append(16, 8, datastructure.NewDirectedEdge(ids[vertexPair{8, 16}], true))

	expanded, err := e.ExpandLast(path)
	require.NoError(t, err)
	assert.Equal(t, 9, expanded.Length())
	assert.Equal(t, 16.0, expanded.Weight)

	_, err = e.IsOriginal(expanded.Root())
	assert.ErrorIs(t, err, datastructure.ErrNotAnEdge)

	full, err := e.IsFullyExpanded(expanded)
	require.NoError(t, err)
	assert.False(t, full)

	root := datastructure.NewEdgePathRoot(5)
	same, err := e.ExpandLast(root)
	require.NoError(t, err)
	assert.Same(t, root, same)
}

func TestExpandKeepsUnknownPredecessor(t *testing.T) {
	g, ids := newTriangleGraph(t)
	e := NewExpander(g)

	path := datastructure.NewEdgePathRoot(datastructure.NoVertex).Append(3, 9, datastructure.NewDirectedEdge(ids["13"], true))
	expanded, err := e.Expand(path)
	require.NoError(t, err)
	assert.True(t, path.Equal(expanded))

	path = datastructure.NewEdgePathRoot(1).Append(3, 9, datastructure.NoEdge)
	expanded, err = e.Expand(path)
	require.NoError(t, err)
	assert.True(t, path.Equal(expanded))
}

func TestExpandConcurrent(t *testing.T) {
	const levels = 8
	g, ids := newNestedGraph(t, levels)
	e := NewExpander(g)
	n := datastructure.VertexID(1 << levels)
	path := datastructure.NewEdgePathRoot(0).Append(n, float64(n), datastructure.NewDirectedEdge(ids[vertexPair{0, n}], true))

	want, err := e.Expand(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*datastructure.EdgePath, 16)
	errs := make([]error, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = e.Expand(path)
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.True(t, want.Equal(results[i]))
	}
}
