package datastructure

import (
	"fmt"
	"math"

	"github.com/lintang-b-s/chpath/pkg/util"
)

// Direction of an edge relative to the way it is stored.
type Direction uint8

const (
	Bidirectional Direction = iota
	Forward
	Backward
)

func (d Direction) Reverse() Direction {
	switch d {
	case Forward:
		return Backward
	case Backward:
		return Forward
	default:
		return d
	}
}

// CanTraverse reports whether an edge with this direction may be travelled
// along (forward=true) or against (forward=false) its stored direction.
func (d Direction) CanTraverse(forward bool) bool {
	switch d {
	case Forward:
		return forward
	case Backward:
		return !forward
	default:
		return true
	}
}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Bidirectional:
		return "bidirectional"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

/*
EdgeData is the fixed payload of an edge.

	| unused | weight (float32 bits) | direction |
	  30 bit          32 bit             2 bit

the codec does not validate the weight, negative or NaN weights are the
responsibility of whoever wrote the graph.
*/
type EdgeData uint64

const (
	directionOffset = 0
	directionWidth  = 2
	weightOffset    = directionOffset + directionWidth
	weightWidth     = 32
)

func EncodeEdgeData(weight float64, direction Direction) EdgeData {
	packed := util.BitPackUint64(0, uint64(direction), directionOffset, directionWidth)
	packed = util.BitPackUint64(packed, uint64(math.Float32bits(float32(weight))), weightOffset, weightWidth)
	return EdgeData(packed)
}

func (d EdgeData) Decode() (float64, Direction) {
	return d.Weight(), d.Direction()
}

func (d EdgeData) Weight() float64 {
	bits := util.BitUnpackUint64(uint64(d), weightOffset, weightWidth)
	return float64(math.Float32frombits(uint32(bits)))
}

func (d EdgeData) Direction() Direction {
	return Direction(util.BitUnpackUint64(uint64(d), directionOffset, directionWidth))
}
