package routingalgorithm

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/lintang-b-s/chpath/pkg/datastructure"
)

var ErrNoPath = errors.New("no path found")

// edgeFilter decides whether the search settled at u may relax the edge view, which is
// oriented away from u.
type edgeFilter func(u datastructure.VertexID, view datastructure.EdgeView) bool

type RouteAlgorithm struct {
	g *datastructure.Graph
}

func NewRouteAlgorithm(g *datastructure.Graph) *RouteAlgorithm {
	return &RouteAlgorithm{g: g}
}

type cameFromPair struct {
	Edge   datastructure.DirectedEdge // travel direction of the path, also in the backward search
	Vertex datastructure.VertexID     // vertex the search came from
	Weight float64
}

type searchSide struct {
	queue    *datastructure.MinHeap[datastructure.VertexID]
	dist     map[datastructure.VertexID]float64
	cameFrom map[datastructure.VertexID]cameFromPair
	forward  bool
	finished bool
}

func newSearchSide(source datastructure.VertexID, forward bool) *searchSide {
	s := &searchSide{
		queue:    datastructure.NewMinHeap[datastructure.VertexID](),
		dist:     make(map[datastructure.VertexID]float64),
		cameFrom: make(map[datastructure.VertexID]cameFromPair),
		forward:  forward,
	}
	s.dist[source] = 0
	// heap kosong, tidak bisa gagal
	_ = s.queue.Insert(datastructure.PriorityQueueNode[datastructure.VertexID]{Rank: 0, Item: source})
	return s
}

// ShortestPathBiDijkstra runs a bidirectional dijkstra over the original edges only, shortcuts
// and levels are ignored. Slow, used to check the hierarchy search.
func (rt *RouteAlgorithm) ShortestPathBiDijkstra(ctx context.Context, from, to datastructure.VertexID) (*datastructure.EdgePath, error) {
	return rt.biDijkstra(ctx, from, to, func(_ datastructure.VertexID, view datastructure.EdgeView) bool {
		return view.IsOriginal()
	})
}

func (rt *RouteAlgorithm) biDijkstra(ctx context.Context, from, to datastructure.VertexID, filter edgeFilter) (*datastructure.EdgePath, error) {
	if _, err := rt.g.Vertex(from); err != nil {
		return nil, err
	}
	if _, err := rt.g.Vertex(to); err != nil {
		return nil, err
	}
	if from == to {
		return datastructure.NewEdgePathRoot(from), nil
	}

	forw := newSearchSide(from, true)
	back := newSearchSide(to, false)

	estimate := math.MaxFloat64
	bestCommonVertex := datastructure.NoVertex

	en := rt.g.GetEdgeEnumerator()
	frontier, otherFrontier := forw, back
	for !(forw.finished && back.finished) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		smallest, err := frontier.queue.GetMin()
		if err != nil || smallest.Rank >= estimate {
			// search di stop ketika smallest node saat ini costnya >= cost current best candidate path.
			frontier.finished = true
		} else {
			node, _ := frontier.queue.ExtractMin()
			if err := en.MoveTo(node.Item); err != nil {
				return nil, err
			}
			for en.MoveNext() {
				view := en.Current()
				if !view.Direction().CanTraverse(frontier.forward) || !filter(node.Item, view) {
					continue
				}

				toNID := view.To
				newCost := node.Rank + view.Weight()
				if old, ok := frontier.dist[toNID]; !ok || newCost < old {
					frontier.dist[toNID] = newCost
					if err := frontier.queue.Insert(datastructure.PriorityQueueNode[datastructure.VertexID]{Rank: newCost, Item: toNID}); err != nil {
						return nil, err
					}

					edge := view.Edge
					if !frontier.forward {
						edge = edge.Reverse()
					}
					frontier.cameFrom[toNID] = cameFromPair{Edge: edge, Vertex: node.Item, Weight: view.Weight()}
				}

				if otherDist, ok := otherFrontier.dist[toNID]; ok {
					pathDistance := frontier.dist[toNID] + otherDist
					if pathDistance < estimate {
						// toNID sudah dikunjungi search dari arah lain, update best candidate path
						estimate = pathDistance
						bestCommonVertex = toNID
					}
				}
			}
		}

		if !otherFrontier.finished {
			frontier, otherFrontier = otherFrontier, frontier
		}
	}

	if bestCommonVertex == datastructure.NoVertex {
		return nil, fmt.Errorf("%w: %d -> %d", ErrNoPath, from, to)
	}
	return rt.createPath(bestCommonVertex, from, to, forw.cameFrom, back.cameFrom), nil
}

func (rt *RouteAlgorithm) createPath(commonVertex, from, to datastructure.VertexID,
	cameFromf, cameFromb map[datastructure.VertexID]cameFromPair) *datastructure.EdgePath {

	type hop struct {
		vertex datastructure.VertexID
		pair   cameFromPair
	}

	// dari common vertex ke source vertex
	fHops := make([]hop, 0)
	for v := commonVertex; v != from; v = cameFromf[v].Vertex {
		fHops = append(fHops, hop{vertex: v, pair: cameFromf[v]})
	}

	path := datastructure.NewEdgePathRoot(from)
	for i := len(fHops) - 1; i >= 0; i-- {
		path = path.Append(fHops[i].vertex, fHops[i].pair.Weight, fHops[i].pair.Edge)
	}

	// dari common vertex ke target vertex
	for v := commonVertex; v != to; v = cameFromb[v].Vertex {
		pair := cameFromb[v]
		path = path.Append(pair.Vertex, pair.Weight, pair.Edge)
	}
	return path
}
