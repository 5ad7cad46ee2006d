package datastructure

import (
	"fmt"

	"github.com/lintang-b-s/chpath/pkg/util"
	"golang.org/x/exp/slices"
)

type storedEdge struct {
	from VertexID
	to   VertexID
	data EdgeData
	kind EdgeKind
}

type CHVertex struct {
	Coordinate Coordinate
	// Level is the contraction order of the vertex, contracted vertices have a lower level.
	Level uint32
}

// Graph is the contracted road network. It is never modified after GraphBuilder.Build,
// any number of goroutines may read it, each with its own EdgeEnumerator.
type Graph struct {
	vertices     []CHVertex
	edges        []storedEdge // edge id i is stored at edges[i-1]
	firstOutEdge [][]EdgeID
	firstInEdge  [][]EdgeID

	shortcutCount int
}

func (g *Graph) VertexCount() int {
	return len(g.vertices)
}

func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

func (g *Graph) ShortcutCount() int {
	return g.shortcutCount
}

func (g *Graph) Vertex(v VertexID) (CHVertex, error) {
	if int(v) >= len(g.vertices) {
		return CHVertex{}, fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}
	return g.vertices[v], nil
}

func (g *Graph) Coordinate(v VertexID) (Coordinate, bool) {
	if int(v) >= len(g.vertices) {
		return Coordinate{}, false
	}
	return g.vertices[v].Coordinate, true
}

func (g *Graph) Level(v VertexID) uint32 {
	return g.vertices[v].Level
}

func (g *Graph) stored(id EdgeID) (storedEdge, bool) {
	if id == noEdgeID || int(id) > len(g.edges) {
		return storedEdge{}, false
	}
	return g.edges[id-1], true
}

// Edge returns the edge in the direction it is stored.
func (g *Graph) Edge(id EdgeID) (EdgeView, bool) {
	e, ok := g.stored(id)
	if !ok {
		return EdgeView{}, false
	}
	return newEdgeView(NewDirectedEdge(id, true), e), true
}

// EdgeDirected returns the edge oriented in travel direction.
func (g *Graph) EdgeDirected(edge DirectedEdge) (EdgeView, error) {
	e, ok := g.stored(edge.ID)
	if !ok {
		return EdgeView{}, fmt.Errorf("%w: %v", ErrEdgeNotFound, edge)
	}
	return newEdgeView(edge, e), nil
}

// GetEdgeEnumerator returns a new cursor over this graph.
func (g *Graph) GetEdgeEnumerator() *EdgeEnumerator {
	return newEdgeEnumerator(g)
}

// EdgeView is an edge as seen from one traversal. From and To follow the travel direction.
type EdgeView struct {
	Edge DirectedEdge
	From VertexID
	To   VertexID
	Data EdgeData
	Kind EdgeKind
}

func newEdgeView(edge DirectedEdge, e storedEdge) EdgeView {
	view := EdgeView{
		Edge: edge,
		From: e.from,
		To:   e.to,
		Data: e.data,
		Kind: e.kind,
	}
	if !edge.Forward {
		view.From, view.To = e.to, e.from
	}
	return view
}

func (e EdgeView) Weight() float64 {
	return e.Data.Weight()
}

// Direction relative to travel direction.
func (e EdgeView) Direction() Direction {
	if e.Edge.Forward {
		return e.Data.Direction()
	}
	return e.Data.Direction().Reverse()
}

func (e EdgeView) IsOriginal() bool {
	_, ok := e.Kind.(Shortcut)
	return !ok
}

func (e EdgeView) Contracted() (VertexID, bool) {
	if sc, ok := e.Kind.(Shortcut); ok {
		return sc.Contracted, true
	}
	return NoVertex, false
}

// Sequence1 returns the vertices right after From in travel direction, as a copy.
func (e EdgeView) Sequence1() []VertexID {
	switch kind := e.Kind.(type) {
	case Shortcut:
		if e.Edge.Forward {
			return slices.Clone(kind.Sequence1)
		}
		return util.ReverseG(kind.Sequence2)
	default:
		return []VertexID{e.To}
	}
}

// Sequence2 returns the vertices right before To in travel direction, as a copy.
func (e EdgeView) Sequence2() []VertexID {
	switch kind := e.Kind.(type) {
	case Shortcut:
		if e.Edge.Forward {
			return slices.Clone(kind.Sequence2)
		}
		return util.ReverseG(kind.Sequence1)
	default:
		return []VertexID{e.From}
	}
}

// GraphBuilder assembles a Graph from vertices and edges that were already contracted
// elsewhere (a key-value store, a test fixture).
type GraphBuilder struct {
	g     *Graph
	built bool
}

func NewGraphBuilder(vertexCount int) *GraphBuilder {
	return &GraphBuilder{
		g: &Graph{
			vertices:     make([]CHVertex, vertexCount),
			edges:        make([]storedEdge, 0),
			firstOutEdge: make([][]EdgeID, vertexCount),
			firstInEdge:  make([][]EdgeID, vertexCount),
		},
	}
}

func (b *GraphBuilder) checkVertex(v VertexID) error {
	if int(v) >= len(b.g.vertices) {
		return fmt.Errorf("%w: %d (vertex count %d)", ErrVertexOutOfRange, v, len(b.g.vertices))
	}
	return nil
}

func (b *GraphBuilder) SetVertex(v VertexID, coord Coordinate, level uint32) error {
	if err := b.checkVertex(v); err != nil {
		return err
	}
	b.g.vertices[v] = CHVertex{Coordinate: coord, Level: level}
	return nil
}

// AddEdge adds an original edge stored as from -> to.
func (b *GraphBuilder) AddEdge(from, to VertexID, data EdgeData) (EdgeID, error) {
	return b.addEdge(from, to, data, Original{})
}

// AddShortcut adds a shortcut stored as from -> to bypassing shortcut.Contracted.
func (b *GraphBuilder) AddShortcut(from, to VertexID, data EdgeData, shortcut Shortcut) (EdgeID, error) {
	if err := b.checkVertex(shortcut.Contracted); err != nil {
		return noEdgeID, err
	}
	return b.addEdge(from, to, data, shortcut)
}

func (b *GraphBuilder) addEdge(from, to VertexID, data EdgeData, kind EdgeKind) (EdgeID, error) {
	if b.built {
		return noEdgeID, fmt.Errorf("graph already built")
	}
	if err := b.checkVertex(from); err != nil {
		return noEdgeID, err
	}
	if err := b.checkVertex(to); err != nil {
		return noEdgeID, err
	}

	b.g.edges = append(b.g.edges, storedEdge{from: from, to: to, data: data, kind: kind})
	id := EdgeID(len(b.g.edges))

	b.g.firstOutEdge[from] = append(b.g.firstOutEdge[from], id)
	b.g.firstInEdge[to] = append(b.g.firstInEdge[to], id)

	if _, ok := kind.(Shortcut); ok {
		b.g.shortcutCount++
	}
	return id, nil
}

// Build returns the finished graph. The builder can not be used afterwards.
func (b *GraphBuilder) Build() *Graph {
	b.built = true
	return b.g
}
