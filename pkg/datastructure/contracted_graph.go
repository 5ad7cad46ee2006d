package datastructure

import "fmt"

// VertexRecord and EdgeRecord are the flat form of a contracted graph, used to move
// it in and out of storage.
type VertexRecord struct {
	Lat   float64
	Lon   float64
	Level uint32
}

func NewVertexRecord(lat, lon float64, level uint32) VertexRecord {
	return VertexRecord{
		Lat:   lat,
		Lon:   lon,
		Level: level,
	}
}

type EdgeRecord struct {
	From uint32
	To   uint32
	Data uint64

	// Contracted is NoVertex for original edges.
	Contracted uint32
	Sequence1  []uint32
	Sequence2  []uint32
}

func NewEdgeRecordPlain(from, to VertexID, data EdgeData) EdgeRecord {
	return EdgeRecord{
		From:       uint32(from),
		To:         uint32(to),
		Data:       uint64(data),
		Contracted: uint32(NoVertex),
	}
}

func NewEdgeRecordShortcut(from, to VertexID, data EdgeData, shortcut Shortcut) EdgeRecord {
	return EdgeRecord{
		From:       uint32(from),
		To:         uint32(to),
		Data:       uint64(data),
		Contracted: uint32(shortcut.Contracted),
		Sequence1:  toUint32s(shortcut.Sequence1),
		Sequence2:  toUint32s(shortcut.Sequence2),
	}
}

func (e EdgeRecord) IsShortcut() bool {
	return VertexID(e.Contracted) != NoVertex
}

func (e EdgeRecord) Shortcut() Shortcut {
	return NewShortcut(VertexID(e.Contracted), toVertexIDs(e.Sequence1), toVertexIDs(e.Sequence2))
}

// Records flattens the graph. Edge i of the result has id i+1.
func (g *Graph) Records() ([]VertexRecord, []EdgeRecord) {
	vertices := make([]VertexRecord, len(g.vertices))
	for i, v := range g.vertices {
		vertices[i] = NewVertexRecord(v.Coordinate.Lat, v.Coordinate.Lon, v.Level)
	}

	edges := make([]EdgeRecord, len(g.edges))
	for i, e := range g.edges {
		switch kind := e.kind.(type) {
		case Shortcut:
			edges[i] = NewEdgeRecordShortcut(e.from, e.to, e.data, kind)
		default:
			edges[i] = NewEdgeRecordPlain(e.from, e.to, e.data)
		}
	}
	return vertices, edges
}

// GraphFromRecords rebuilds a graph, edge ids follow the order of edges.
func GraphFromRecords(vertices []VertexRecord, edges []EdgeRecord) (*Graph, error) {
	builder := NewGraphBuilder(len(vertices))
	for i, v := range vertices {
		if err := builder.SetVertex(VertexID(i), NewCoordinate(v.Lat, v.Lon), v.Level); err != nil {
			return nil, err
		}
	}

	for i, e := range edges {
		var err error
		if e.IsShortcut() {
			_, err = builder.AddShortcut(VertexID(e.From), VertexID(e.To), EdgeData(e.Data), e.Shortcut())
		} else {
			_, err = builder.AddEdge(VertexID(e.From), VertexID(e.To), EdgeData(e.Data))
		}
		if err != nil {
			return nil, fmt.Errorf("edge record %d: %w", i, err)
		}
	}
	return builder.Build(), nil
}

func toUint32s(vs []VertexID) []uint32 {
	out := make([]uint32, len(vs))
	for i, v := range vs {
		out[i] = uint32(v)
	}
	return out
}

func toVertexIDs(vs []uint32) []VertexID {
	out := make([]VertexID, len(vs))
	for i, v := range vs {
		out[i] = VertexID(v)
	}
	return out
}
