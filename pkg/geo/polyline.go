package geo

import (
	"fmt"

	"github.com/lintang-b-s/chpath/pkg/datastructure"
	"github.com/twpayne/go-polyline"
)

func CreatePolyline(path []datastructure.Coordinate) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	return string(polyline.EncodeCoords(coords))
}

func DecodePolyline(s string) ([]datastructure.Coordinate, error) {
	coords, _, err := polyline.DecodeCoords([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("decode polyline: %w", err)
	}
	path := make([]datastructure.Coordinate, 0, len(coords))
	for _, c := range coords {
		path = append(path, datastructure.NewCoordinate(c[0], c[1]))
	}
	return path, nil
}

// PathCoordinates returns the coordinates of the vertices of path in travel order.
func PathCoordinates(g *datastructure.Graph, path *datastructure.EdgePath) ([]datastructure.Coordinate, error) {
	vertices := path.Vertices()
	coords := make([]datastructure.Coordinate, 0, len(vertices))
	for _, v := range vertices {
		if v == datastructure.NoVertex {
			continue
		}
		c, ok := g.Coordinate(v)
		if !ok {
			return nil, fmt.Errorf("%w: %d", datastructure.ErrVertexOutOfRange, v)
		}
		coords = append(coords, c)
	}
	return coords, nil
}
