package concurrent

import (
	"github.com/lintang-b-s/chpath/pkg/datastructure"
)

// ExpandPathParam is one compressed path of a batch, Index is its position in the request.
type ExpandPathParam struct {
	Index int
	Path  *datastructure.EdgePath
}

func NewExpandPathParam(index int, path *datastructure.EdgePath) ExpandPathParam {
	return ExpandPathParam{
		Index: index,
		Path:  path,
	}
}

// SaveGraphJobItem is one batch of graph records to be encoded under KeyStr.
type SaveGraphJobItem struct {
	KeyStr   string
	Vertices []datastructure.VertexRecord
	Edges    []datastructure.EdgeRecord
}

type JobI interface {
	ExpandPathParam | SaveGraphJobItem
}

type Job[T JobI] struct {
	ID      int
	JobItem T
}
type JobFunc[T JobI, G any] func(job T) G
