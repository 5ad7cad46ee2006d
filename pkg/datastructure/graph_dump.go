package datastructure

import (
	"encoding/json"
	"fmt"
	"io"
)

// GraphDump is the json form of a contracted graph, produced by an external contraction
// step. Vertex ids are positions in Vertices, edge ids follow the order of Edges.
type GraphDump struct {
	Vertices []VertexDump `json:"vertices"`
	Edges    []EdgeDump   `json:"edges"`
}

type VertexDump struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Level uint32  `json:"level"`
}

type EdgeDump struct {
	From      uint32        `json:"from"`
	To        uint32        `json:"to"`
	Weight    float64       `json:"weight"`
	Direction string        `json:"direction"`
	Shortcut  *ShortcutDump `json:"shortcut,omitempty"`
}

type ShortcutDump struct {
	Contracted uint32   `json:"contracted"`
	Sequence1  []uint32 `json:"sequence1"`
	Sequence2  []uint32 `json:"sequence2"`
}

func ParseDirection(s string) (Direction, error) {
	switch s {
	case "forward":
		return Forward, nil
	case "backward":
		return Backward, nil
	case "bidirectional", "":
		return Bidirectional, nil
	default:
		return Bidirectional, fmt.Errorf("unknown edge direction %q", s)
	}
}

// ReadGraphDump decodes a GraphDump from r and builds the graph.
func ReadGraphDump(r io.Reader) (*Graph, error) {
	var dump GraphDump
	if err := json.NewDecoder(r).Decode(&dump); err != nil {
		return nil, fmt.Errorf("decode graph dump: %w", err)
	}

	vertices := make([]VertexRecord, len(dump.Vertices))
	for i, v := range dump.Vertices {
		vertices[i] = NewVertexRecord(v.Lat, v.Lon, v.Level)
	}

	edges := make([]EdgeRecord, len(dump.Edges))
	for i, e := range dump.Edges {
		if e.Weight < 0 {
			return nil, fmt.Errorf("edge %d: negative weight %g", i+1, e.Weight)
		}
		direction, err := ParseDirection(e.Direction)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i+1, err)
		}
		data := EncodeEdgeData(e.Weight, direction)
		from, to := VertexID(e.From), VertexID(e.To)
		if e.Shortcut == nil {
			edges[i] = NewEdgeRecordPlain(from, to, data)
			continue
		}
		edges[i] = NewEdgeRecordShortcut(from, to, data, NewShortcut(VertexID(e.Shortcut.Contracted),
			toVertexIDs(e.Shortcut.Sequence1), toVertexIDs(e.Shortcut.Sequence2)))
	}
	return GraphFromRecords(vertices, edges)
}

// WriteGraphDump is the inverse of ReadGraphDump.
func WriteGraphDump(w io.Writer, g *Graph) error {
	vertices, edges := g.Records()
	dump := GraphDump{
		Vertices: make([]VertexDump, len(vertices)),
		Edges:    make([]EdgeDump, len(edges)),
	}
	for i, v := range vertices {
		dump.Vertices[i] = VertexDump{Lat: v.Lat, Lon: v.Lon, Level: v.Level}
	}
	for i, e := range edges {
		weight, direction := EdgeData(e.Data).Decode()
		dump.Edges[i] = EdgeDump{From: e.From, To: e.To, Weight: weight, Direction: direction.String()}
		if e.IsShortcut() {
			dump.Edges[i].Shortcut = &ShortcutDump{
				Contracted: e.Contracted,
				Sequence1:  e.Sequence1,
				Sequence2:  e.Sequence2,
			}
		}
	}
	return json.NewEncoder(w).Encode(dump)
}
