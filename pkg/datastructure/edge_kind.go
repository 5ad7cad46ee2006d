package datastructure

// EdgeKind is either Original or Shortcut. Use a type switch to tell them apart.
type EdgeKind interface {
	isEdgeKind()
}

// Original is an edge of the uncontracted road network.
type Original struct{}

func (Original) isEdgeKind() {}

// Shortcut stands in for the two-hop path through Contracted.
// Sequence1 holds the vertices right after the start of the shortcut, Sequence2
// the vertices right before its end, both in the direction the shortcut is stored.
type Shortcut struct {
	Contracted VertexID
	Sequence1  []VertexID
	Sequence2  []VertexID
}

func (Shortcut) isEdgeKind() {}

func NewShortcut(contracted VertexID, sequence1, sequence2 []VertexID) Shortcut {
	return Shortcut{
		Contracted: contracted,
		Sequence1:  sequence1,
		Sequence2:  sequence2,
	}
}
