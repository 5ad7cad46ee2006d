package service

import (
	"context"
	"errors"
	"sort"

	"github.com/lintang-b-s/chpath/pkg/concurrent"
	"github.com/lintang-b-s/chpath/pkg/datastructure"
	"github.com/lintang-b-s/chpath/pkg/engine/expansion"
	"github.com/lintang-b-s/chpath/pkg/engine/routingalgorithm"
	"github.com/lintang-b-s/chpath/pkg/geo"
	"github.com/lintang-b-s/chpath/pkg/server"
	"github.com/lintang-b-s/chpath/pkg/util"
)

type Expander interface {
	Expand(path *datastructure.EdgePath) (*datastructure.EdgePath, error)
	Sequence1(path *datastructure.EdgePath, maxCount int) ([]datastructure.VertexID, error)
	Sequence2(path *datastructure.EdgePath, maxCount int) ([]datastructure.VertexID, error)
	IsOriginal(path *datastructure.EdgePath) (bool, error)
}

type RoutingAlgorithm interface {
	ShortestPathBiDijkstraCH(ctx context.Context, from, to datastructure.VertexID) (*datastructure.EdgePath, error)
}

type PathService struct {
	g        *datastructure.Graph
	expander Expander
	routing  RoutingAlgorithm
	workers  int
}

func NewPathService(g *datastructure.Graph, expander Expander, routing RoutingAlgorithm, workers int) *PathService {
	return &PathService{g: g, expander: expander, routing: routing, workers: workers}
}

// ExpandedPath is a path of original edges together with its geometry.
type ExpandedPath struct {
	Path        *datastructure.EdgePath
	Coordinates []datastructure.Coordinate
	Polyline    string
	DistanceKM  float64
}

type Sequences struct {
	Sequence1  []datastructure.VertexID
	Sequence2  []datastructure.VertexID
	IsOriginal bool
}

func (uc *PathService) ExpandPath(ctx context.Context, path *datastructure.EdgePath, simplify bool) (ExpandedPath, error) {
	if err := ctx.Err(); err != nil {
		return ExpandedPath{}, server.WrapErrorf(err, server.ErrInternalServerError, "request cancelled")
	}
	expanded, err := uc.expander.Expand(path)
	if err != nil {
		return ExpandedPath{}, wrapPathError(err)
	}
	return uc.withGeometry(expanded, simplify)
}

type expandResult struct {
	index int
	path  ExpandedPath
	err   error
}

// ExpandPaths expands every path on the worker pool, results keep the order of paths.
func (uc *PathService) ExpandPaths(ctx context.Context, paths []*datastructure.EdgePath, simplify bool) ([]ExpandedPath, error) {
	workers := concurrent.NewWorkerPool[concurrent.ExpandPathParam, expandResult](uc.workers, len(paths))
	for i, p := range paths {
		workers.AddJob(concurrent.NewExpandPathParam(i, p))
	}
	workers.Close()
	workers.Start(func(job concurrent.ExpandPathParam) expandResult {
		expanded, err := uc.ExpandPath(ctx, job.Path, simplify)
		return expandResult{index: job.Index, path: expanded, err: err}
	})
	workers.Wait()

	results := make([]expandResult, 0, len(paths))
	for res := range workers.CollectResults() {
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].index < results[j].index
	})

	expanded := make([]ExpandedPath, len(results))
	for i, res := range results {
		if res.err != nil {
			return nil, res.err
		}
		expanded[i] = res.path
	}
	return expanded, nil
}

func (uc *PathService) Sequences(ctx context.Context, path *datastructure.EdgePath, maxCount int) (Sequences, error) {
	if maxCount <= 0 {
		return Sequences{}, server.NewErrorf(server.ErrBadParamInput, "max_count must be positive")
	}
	seq1, err := uc.expander.Sequence1(path, maxCount)
	if err != nil {
		return Sequences{}, wrapPathError(err)
	}
	seq2, err := uc.expander.Sequence2(path, maxCount)
	if err != nil {
		return Sequences{}, wrapPathError(err)
	}

	res := Sequences{Sequence1: seq1, Sequence2: seq2}
	if !path.IsRoot() {
		res.IsOriginal, err = uc.expander.IsOriginal(path)
		if err != nil {
			return Sequences{}, wrapPathError(err)
		}
	}
	return res, nil
}

// ShortestPath returns the path found on the hierarchy and its expansion.
func (uc *PathService) ShortestPath(ctx context.Context, from, to datastructure.VertexID, simplify bool) (*datastructure.EdgePath, ExpandedPath, error) {
	compressed, err := uc.routing.ShortestPathBiDijkstraCH(ctx, from, to)
	if err != nil {
		return nil, ExpandedPath{}, wrapPathError(err)
	}
	expanded, err := uc.ExpandPath(ctx, compressed, simplify)
	if err != nil {
		return nil, ExpandedPath{}, err
	}
	return compressed, expanded, nil
}

func (uc *PathService) withGeometry(path *datastructure.EdgePath, simplify bool) (ExpandedPath, error) {
	coords, err := geo.PathCoordinates(uc.g, path)
	if err != nil {
		return ExpandedPath{}, wrapPathError(err)
	}
	distance := geo.PathLengthKM(coords)
	if simplify {
		coords = geo.RamerDouglasPeucker(coords)
	}
	return ExpandedPath{
		Path:        path,
		Coordinates: coords,
		Polyline:    geo.CreatePolyline(coords),
		DistanceKM:  util.RoundFloat(distance, 3),
	}, nil
}

func wrapPathError(err error) error {
	switch {
	case errors.Is(err, datastructure.ErrEdgeNotFound):
		return server.WrapErrorf(err, server.ErrBadParamInput, "path uses an edge that is not in the graph")
	case errors.Is(err, datastructure.ErrVertexOutOfRange):
		return server.WrapErrorf(err, server.ErrBadParamInput, "path uses a vertex that is not in the graph")
	case errors.Is(err, datastructure.ErrNotAnEdge):
		return server.WrapErrorf(err, server.ErrBadParamInput, "path has no edge")
	case errors.Is(err, expansion.ErrHierarchyCorrupt):
		return server.WrapErrorf(err, server.ErrInternalServerError, "contraction hierarchy is corrupt")
	case errors.Is(err, routingalgorithm.ErrNoPath):
		return server.WrapErrorf(err, server.ErrNotFound, "no route between the two vertices")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return server.WrapErrorf(err, server.ErrInternalServerError, "request cancelled")
	default:
		return server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
}
