package datastructure

import (
	"fmt"
	"strings"
)

// EdgePath is a path stored backwards: every node points to the node it was reached
// from. Nodes are never modified once created, a new path shares its prefix with the
// old one.
type EdgePath struct {
	Vertex VertexID
	Weight float64
	Edge   DirectedEdge // edge from From.Vertex to Vertex, NoEdge at the root
	From   *EdgePath
}

// NewEdgePathRoot returns a path of a single vertex with weight 0.
func NewEdgePathRoot(vertex VertexID) *EdgePath {
	return &EdgePath{
		Vertex: vertex,
		Weight: 0,
		Edge:   NoEdge,
	}
}

func NewEdgePath(vertex VertexID, weight float64, edge DirectedEdge, from *EdgePath) *EdgePath {
	return &EdgePath{
		Vertex: vertex,
		Weight: weight,
		Edge:   edge,
		From:   from,
	}
}

// Append extends the path with edge, weight is the weight of the edge alone.
func (p *EdgePath) Append(vertex VertexID, weight float64, edge DirectedEdge) *EdgePath {
	return NewEdgePath(vertex, p.Weight+weight, edge, p)
}

func (p *EdgePath) IsRoot() bool {
	return p.From == nil
}

// Root returns the first node of the path.
func (p *EdgePath) Root() *EdgePath {
	curr := p
	for curr.From != nil {
		curr = curr.From
	}
	return curr
}

// Length is the number of edges in the path.
func (p *EdgePath) Length() int {
	n := 0
	for curr := p; curr.From != nil; curr = curr.From {
		n++
	}
	return n
}

// Nodes returns the nodes from the root to p.
func (p *EdgePath) Nodes() []*EdgePath {
	nodes := make([]*EdgePath, 0, p.Length()+1)
	for curr := p; curr != nil; curr = curr.From {
		nodes = append(nodes, curr)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return nodes
}

// Vertices returns the vertices in travel order.
func (p *EdgePath) Vertices() []VertexID {
	nodes := p.Nodes()
	vertices := make([]VertexID, len(nodes))
	for i, n := range nodes {
		vertices[i] = n.Vertex
	}
	return vertices
}

// Edges returns the edges in travel order, the root's NoEdge is left out.
func (p *EdgePath) Edges() []DirectedEdge {
	nodes := p.Nodes()
	edges := make([]DirectedEdge, 0, len(nodes))
	for _, n := range nodes[1:] {
		edges = append(edges, n.Edge)
	}
	return edges
}

// Equal compares two paths node by node.
func (p *EdgePath) Equal(other *EdgePath) bool {
	a, b := p, other
	for a != nil && b != nil {
		if a == b {
			return true
		}
		if a.Vertex != b.Vertex || a.Weight != b.Weight || a.Edge != b.Edge {
			return false
		}
		a, b = a.From, b.From
	}
	return a == nil && b == nil
}

func (p *EdgePath) String() string {
	var sb strings.Builder
	for i, n := range p.Nodes() {
		if i > 0 {
			fmt.Fprintf(&sb, "->[%v]->", n.Edge)
		}
		fmt.Fprintf(&sb, "%d(%g)", n.Vertex, n.Weight)
	}
	return sb.String()
}

// EdgePathFromSlices builds a path from its travel-order parts: len(vertices) ==
// len(edges)+1 == len(weights)+1, weights are cumulative.
func EdgePathFromSlices(vertices []VertexID, edges []DirectedEdge, weights []float64) (*EdgePath, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("path needs at least one vertex")
	}
	if len(edges) != len(vertices)-1 || len(weights) != len(vertices)-1 {
		return nil, fmt.Errorf("path with %d vertices needs %d edges and weights, got %d and %d",
			len(vertices), len(vertices)-1, len(edges), len(weights))
	}
	path := NewEdgePathRoot(vertices[0])
	for i := 1; i < len(vertices); i++ {
		path = NewEdgePath(vertices[i], weights[i-1], edges[i-1], path)
	}
	return path, nil
}
