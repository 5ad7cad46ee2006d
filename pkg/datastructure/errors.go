package datastructure

import "errors"

var (
	// ErrEdgeNotFound means the graph does not hold the requested edge. When it comes
	// from a sequence lookup the graph disagrees with its own shortcut metadata.
	ErrEdgeNotFound = errors.New("edge not found")

	// ErrNotAnEdge is returned when an edge operation is applied to the root of a path.
	ErrNotAnEdge = errors.New("path is not an edge")

	ErrVertexOutOfRange = errors.New("vertex out of range")
)
