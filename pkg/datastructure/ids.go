package datastructure

import (
	"fmt"
	"math"
)

type VertexID uint32

// EdgeID is the canonical id of a stored edge. Stored edges start at 1.
type EdgeID uint32

const (
	NoVertex VertexID = math.MaxUint32
	noEdgeID EdgeID   = 0
)

// DirectedEdge is one traversal of a stored edge. Forward is false when the edge
// is travelled against the direction it is stored in.
type DirectedEdge struct {
	ID      EdgeID
	Forward bool
}

// NoEdge marks the root of an EdgePath, there is no edge arriving at it.
var NoEdge = DirectedEdge{}

func NewDirectedEdge(id EdgeID, forward bool) DirectedEdge {
	return DirectedEdge{ID: id, Forward: forward}
}

func (e DirectedEdge) IsNoEdge() bool {
	return e.ID == noEdgeID
}

func (e DirectedEdge) Reverse() DirectedEdge {
	if e.IsNoEdge() {
		return e
	}
	return DirectedEdge{ID: e.ID, Forward: !e.Forward}
}

// Signed returns the edge id negated when the edge is travelled backward, 0 for NoEdge.
func (e DirectedEdge) Signed() int64 {
	if e.IsNoEdge() {
		return 0
	}
	if e.Forward {
		return int64(e.ID)
	}
	return -int64(e.ID)
}

// DirectedEdgeFromSigned is the inverse of DirectedEdge.Signed.
func DirectedEdgeFromSigned(signed int64) (DirectedEdge, error) {
	if signed == 0 {
		return NoEdge, nil
	}
	forward := signed > 0
	if !forward {
		signed = -signed
	}
	if signed > math.MaxUint32 {
		return NoEdge, fmt.Errorf("signed edge id %d out of range", signed)
	}
	return DirectedEdge{ID: EdgeID(signed), Forward: forward}, nil
}

func (e DirectedEdge) String() string {
	return fmt.Sprintf("%d", e.Signed())
}
