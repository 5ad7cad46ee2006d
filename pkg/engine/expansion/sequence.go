package expansion

import (
	"fmt"
	"math"

	"github.com/lintang-b-s/chpath/pkg/datastructure"
	"github.com/lintang-b-s/chpath/pkg/util"
)

// Sequence1 returns up to maxCount vertices right after the start of path, in travel
// order. Shortcuts are not unpacked, their stored sequence already is the continuation.
func (e *Expander) Sequence1(path *datastructure.EdgePath, maxCount int) ([]datastructure.VertexID, error) {
	sequence := make([]datastructure.VertexID, 0, 4)

	nodes := path.Nodes()
	for _, node := range nodes[1:] {
		if node.Edge.IsNoEdge() {
			sequence = append(sequence, node.Vertex)
			continue
		}
		view, err := e.g.EdgeDirected(node.Edge)
		if err != nil {
			return nil, err
		}
		if !view.IsOriginal() {
			sequence = append(sequence, view.Sequence1()...)
			break
		}
		sequence = append(sequence, node.Vertex)
		if len(sequence) >= maxCount {
			break
		}
	}
	return util.FirstN(sequence, maxCount), nil
}

// Sequence2 returns up to maxCount vertices right before the end of path, in travel order.
func (e *Expander) Sequence2(path *datastructure.EdgePath, maxCount int) ([]datastructure.VertexID, error) {
	// collected tip first, reversed at the end
	reversed := make([]datastructure.VertexID, 0, 4)

	for curr := path; curr.From != nil; curr = curr.From {
		if !curr.Edge.IsNoEdge() {
			view, err := e.g.EdgeDirected(curr.Edge)
			if err != nil {
				return nil, err
			}
			if !view.IsOriginal() {
				reversed = append(reversed, util.ReverseG(view.Sequence2())...)
				break
			}
		}
		if curr.From.Vertex != datastructure.NoVertex {
			reversed = append(reversed, curr.From.Vertex)
		}
		if len(reversed) >= maxCount {
			break
		}
	}
	return util.LastN(util.ReverseG(reversed), maxCount), nil
}

func (e *Expander) Sequence1All(path *datastructure.EdgePath) ([]datastructure.VertexID, error) {
	return e.Sequence1(path, math.MaxInt)
}

func (e *Expander) Sequence2All(path *datastructure.EdgePath) ([]datastructure.VertexID, error) {
	return e.Sequence2(path, math.MaxInt)
}

// IsOriginal reports whether the last edge of path is an original edge. A path of a
// single vertex has no edge and gives datastructure.ErrNotAnEdge.
func (e *Expander) IsOriginal(path *datastructure.EdgePath) (bool, error) {
	return isOriginal(path, e.g.GetEdgeEnumerator())
}

func isOriginal(path *datastructure.EdgePath, en *datastructure.EdgeEnumerator) (bool, error) {
	if path.From == nil {
		return false, fmt.Errorf("%w: vertex %d", datastructure.ErrNotAnEdge, path.Vertex)
	}
	// no metadata to unpack, it never went through contraction
	if path.Edge.IsNoEdge() {
		return true, nil
	}
	if err := en.MoveToEdge(path.Edge); err != nil {
		return false, err
	}
	return en.IsOriginal(), nil
}
