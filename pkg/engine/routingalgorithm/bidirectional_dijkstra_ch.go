package routingalgorithm

import (
	"context"

	"github.com/lintang-b-s/chpath/pkg/datastructure"
)

// ShortestPathBiDijkstraCH searches the hierarchy: the forward search only goes up from
// the source, the backward search only goes up from the target. The returned path still
// has shortcuts in it, it has to be expanded before it can be shown.
func (rt *RouteAlgorithm) ShortestPathBiDijkstraCH(ctx context.Context, from, to datastructure.VertexID) (*datastructure.EdgePath, error) {
	return rt.biDijkstra(ctx, from, to, func(u datastructure.VertexID, view datastructure.EdgeView) bool {
		// upward graph
		return rt.g.Level(u) < rt.g.Level(view.To)
	})
}
