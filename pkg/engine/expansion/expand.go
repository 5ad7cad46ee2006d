package expansion

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/chpath/pkg/datastructure"
	"github.com/lintang-b-s/chpath/pkg/util"
)

// DefaultMaxDepth bounds how deep shortcuts may nest. A hierarchy of a road network
// nests logarithmically, anything deeper means the shortcut metadata loops.
const DefaultMaxDepth = 64

var ErrHierarchyCorrupt = errors.New("contraction hierarchy is corrupt")

type Expander struct {
	g        *datastructure.Graph
	maxDepth int
}

type Option func(*Expander)

func WithMaxDepth(depth int) Option {
	return func(e *Expander) {
		if depth > 0 {
			e.maxDepth = depth
		}
	}
}

func NewExpander(g *datastructure.Graph, opts ...Option) *Expander {
	e := &Expander{g: g, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Expander) MaxDepth() int {
	return e.maxDepth
}

// Expand replaces every shortcut in path by the original edges it stands for. Start
// vertex, end vertex and the weight at the tip are kept. An edge that does not run
// between the path vertices around it gives datastructure.ErrEdgeNotFound. Safe for
// concurrent use.
func (e *Expander) Expand(path *datastructure.EdgePath) (*datastructure.EdgePath, error) {
	return e.ExpandWith(path, e.g.GetEdgeEnumerator())
}

// ExpandWith is Expand using the given enumerator, which must not be shared.
func (e *Expander) ExpandWith(path *datastructure.EdgePath, en *datastructure.EdgeEnumerator) (*datastructure.EdgePath, error) {
	if path.IsRoot() {
		return path, nil
	}

	nodes := path.Nodes()
	expanded := nodes[0]
	for _, node := range nodes[1:] {
		var err error
		expanded, err = e.expandLast(expanded, segment{
			vertex: node.Vertex,
			weight: node.Weight,
			edge:   node.Edge,
		}, en)
		if err != nil {
			return nil, err
		}
	}
	return expanded, nil
}

// ExpandLast expands only the last edge of path, its prefix is kept as is.
func (e *Expander) ExpandLast(path *datastructure.EdgePath) (*datastructure.EdgePath, error) {
	if path.IsRoot() {
		return path, nil
	}
	return e.expandLast(path.From, segment{
		vertex: path.Vertex,
		weight: path.Weight,
		edge:   path.Edge,
	}, e.g.GetEdgeEnumerator())
}

// segment is a path node that still has to be attached to the expanded prefix.
type segment struct {
	vertex datastructure.VertexID
	weight float64
	edge   datastructure.DirectedEdge
	depth  int
}

/*
expandLast attaches seg on top of prefix, unpacking it while it is a shortcut.

a shortcut s -> t via c becomes s -> c -> t. both halves can again be shortcuts, they go
on a stack with the half next to prefix on top, so the prefix always ends at the vertex
the popped segment starts from.
*/
func (e *Expander) expandLast(prefix *datastructure.EdgePath, seg segment,
	en *datastructure.EdgeEnumerator) (*datastructure.EdgePath, error) {

	stack := []segment{seg}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if curr.edge.IsNoEdge() || prefix.Vertex == datastructure.NoVertex {
			prefix = datastructure.NewEdgePath(curr.vertex, curr.weight, curr.edge, prefix)
			continue
		}

		if err := en.MoveToEdge(curr.edge); err != nil {
			return nil, err
		}
		if en.From() != prefix.Vertex || en.To() != curr.vertex {
			return nil, fmt.Errorf("%w: edge %v runs %d -> %d, path runs %d -> %d", datastructure.ErrEdgeNotFound,
				curr.edge, en.From(), en.To(), prefix.Vertex, curr.vertex)
		}
		if en.IsOriginal() {
			prefix = datastructure.NewEdgePath(curr.vertex, curr.weight, curr.edge, prefix)
			continue
		}

		if curr.depth >= e.maxDepth {
			return nil, fmt.Errorf("%w: shortcut %v nests deeper than %d levels", ErrHierarchyCorrupt,
				curr.edge, e.maxDepth)
		}

		contracted, _ := en.Contracted()
		first, second, firstWeight, err := e.halves(en, curr.edge)
		if err != nil {
			return nil, err
		}

		stack = append(stack,
			segment{vertex: curr.vertex, weight: curr.weight, edge: second, depth: curr.depth + 1},
			segment{vertex: contracted, weight: prefix.Weight + firstWeight, edge: first, depth: curr.depth + 1},
		)
	}
	return prefix, nil
}

/*
halves finds the two edges a shortcut stands for, in travel order. en must be positioned
on the shortcut, it is moved.

with the shortcut stored as start -> end via contracted:

	start-side half: contracted -> start, its vertices before start are sequence1 reversed
	end-side half:   contracted -> end, its vertices before end are sequence2

travelled forward the path runs start -> contracted -> end, so the start-side half is
reversed. travelled backward both order and direction of the halves flip: the end-side
half comes first, reversed, and the start-side half comes second as found.
*/
func (e *Expander) halves(en *datastructure.EdgeEnumerator, shortcut datastructure.DirectedEdge) (
	first, second datastructure.DirectedEdge, firstWeight float64, err error) {

	stored, ok := e.g.Edge(shortcut.ID)
	if !ok {
		return first, second, 0, fmt.Errorf("%w: %v", datastructure.ErrEdgeNotFound, shortcut)
	}
	sc, ok := stored.Kind.(datastructure.Shortcut)
	if !ok {
		return first, second, 0, fmt.Errorf("%w: edge %v is not a shortcut", ErrHierarchyCorrupt, shortcut)
	}

	sequence1 := util.ReverseG(sc.Sequence1)
	sequence2 := sc.Sequence2

	if err = en.MoveToEdgeWithSequence(sc.Contracted, stored.From, sequence1); err != nil {
		return first, second, 0, fmt.Errorf("resolve first half of shortcut %v: %w", shortcut, err)
	}
	startWeight, _ := en.Data().Decode()
	startSide := en.IDDirected()

	if err = en.MoveToEdgeWithSequence(sc.Contracted, stored.To, sequence2); err != nil {
		return first, second, 0, fmt.Errorf("resolve second half of shortcut %v: %w", shortcut, err)
	}
	endWeight, _ := en.Data().Decode()
	endSide := en.IDDirected()

	if shortcut.Forward {
		return startSide.Reverse(), endSide, startWeight, nil
	}
	return endSide.Reverse(), startSide, endWeight, nil
}

// IsFullyExpanded reports whether every edge of path is original.
func (e *Expander) IsFullyExpanded(path *datastructure.EdgePath) (bool, error) {
	en := e.g.GetEdgeEnumerator()
	for curr := path; curr.From != nil; curr = curr.From {
		original, err := isOriginal(curr, en)
		if err != nil {
			return false, err
		}
		if !original {
			return false, nil
		}
	}
	return true, nil
}
