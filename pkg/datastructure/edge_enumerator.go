package datastructure

import (
	"fmt"

	"github.com/lintang-b-s/chpath/pkg/util"
)

// EdgeEnumerator is a cursor over the edges of a Graph. It only moves its own
// position and must stay on one goroutine. Create one per goroutine, they are cheap.
type EdgeEnumerator struct {
	g *Graph

	vertex  VertexID
	pos     int // index into out edges, then in edges, of vertex
	current EdgeView
	valid   bool
}

func newEdgeEnumerator(g *Graph) *EdgeEnumerator {
	return &EdgeEnumerator{g: g, vertex: NoVertex, pos: -1}
}

// MoveTo prepares the iteration over all edges incident to v. Edges stored as
// v -> x come first, then edges stored as x -> v which are seen travelled backward.
func (en *EdgeEnumerator) MoveTo(v VertexID) error {
	if int(v) >= en.g.VertexCount() {
		en.reset()
		return fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}
	en.vertex = v
	en.pos = -1
	en.valid = false
	return nil
}

func (en *EdgeEnumerator) reset() {
	en.vertex = NoVertex
	en.pos = -1
	en.valid = false
}

// MoveNext advances to the next edge of the current vertex, false when there is none left.
func (en *EdgeEnumerator) MoveNext() bool {
	if en.vertex == NoVertex {
		return false
	}
	outEdges := en.g.firstOutEdge[en.vertex]
	inEdges := en.g.firstInEdge[en.vertex]

	en.pos++
	switch {
	case en.pos < len(outEdges):
		id := outEdges[en.pos]
		en.current = newEdgeView(NewDirectedEdge(id, true), en.g.edges[id-1])
	case en.pos < len(outEdges)+len(inEdges):
		id := inEdges[en.pos-len(outEdges)]
		en.current = newEdgeView(NewDirectedEdge(id, false), en.g.edges[id-1])
	default:
		en.valid = false
		return false
	}
	en.valid = true
	return true
}

// MoveToEdge positions the cursor on a known edge traversal.
func (en *EdgeEnumerator) MoveToEdge(edge DirectedEdge) error {
	view, err := en.g.EdgeDirected(edge)
	if err != nil {
		en.reset()
		return err
	}
	en.vertex = NoVertex
	en.pos = -1
	en.current = view
	en.valid = true
	return nil
}

// MoveToEdgeWithSequence positions the cursor on the edge travelled from -> to whose
// vertices right before to are exactly sequence. Parallel edges between the same pair
// only differ by that sequence, so anything but an exact match is ErrEdgeNotFound.
func (en *EdgeEnumerator) MoveToEdgeWithSequence(from, to VertexID, sequence []VertexID) error {
	if err := en.MoveTo(from); err != nil {
		return err
	}
	for en.MoveNext() {
		if en.current.To != to {
			continue
		}
		if util.EqualG(en.current.Sequence2(), sequence) {
			en.vertex = NoVertex
			return nil
		}
	}
	en.reset()
	return fmt.Errorf("%w: %d -> %d with sequence %v", ErrEdgeNotFound, from, to, sequence)
}

func (en *EdgeEnumerator) mustBeValid() {
	if !en.valid {
		panic("edge enumerator is not positioned on an edge")
	}
}

// Current returns the edge under the cursor.
func (en *EdgeEnumerator) Current() EdgeView {
	en.mustBeValid()
	return en.current
}

func (en *EdgeEnumerator) From() VertexID {
	en.mustBeValid()
	return en.current.From
}

func (en *EdgeEnumerator) To() VertexID {
	en.mustBeValid()
	return en.current.To
}

// Data returns the packed fixed payload, as stored.
func (en *EdgeEnumerator) Data() EdgeData {
	en.mustBeValid()
	return en.current.Data
}

// IDDirected returns the edge id together with the direction it was just traversed in.
func (en *EdgeEnumerator) IDDirected() DirectedEdge {
	en.mustBeValid()
	return en.current.Edge
}

func (en *EdgeEnumerator) Contracted() (VertexID, bool) {
	en.mustBeValid()
	return en.current.Contracted()
}

func (en *EdgeEnumerator) IsOriginal() bool {
	en.mustBeValid()
	return en.current.IsOriginal()
}

func (en *EdgeEnumerator) Sequence1() []VertexID {
	en.mustBeValid()
	return en.current.Sequence1()
}

func (en *EdgeEnumerator) Sequence2() []VertexID {
	en.mustBeValid()
	return en.current.Sequence2()
}
