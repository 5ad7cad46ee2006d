package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/lintang-b-s/chpath/pkg/datastructure"
	"github.com/lintang-b-s/chpath/pkg/server/rest/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type PathService interface {
	ExpandPath(ctx context.Context, path *datastructure.EdgePath, simplify bool) (service.ExpandedPath, error)
	ExpandPaths(ctx context.Context, paths []*datastructure.EdgePath, simplify bool) ([]service.ExpandedPath, error)
	Sequences(ctx context.Context, path *datastructure.EdgePath, maxCount int) (service.Sequences, error)
	ShortestPath(ctx context.Context, from, to datastructure.VertexID, simplify bool) (*datastructure.EdgePath, service.ExpandedPath, error)
}

type PathHandler struct {
	svc      PathService
	m        *Metrics
	validate *validator.Validate
	trans    ut.Translator
}

func PathsRouter(r *chi.Mux, svc PathService, m *Metrics) {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	handler := &PathHandler{svc: svc, m: m, validate: validate, trans: trans}

	r.Group(func(r chi.Router) {
		r.Route("/api/paths", func(r chi.Router) {
			r.Post("/expand", handler.ExpandPath)
			r.Post("/expand/batch", handler.ExpandPaths)
			r.Post("/sequences", handler.Sequences)
			r.Get("/route", handler.ShortestPath)
		})
	})
}

// PathRequest model info
//
//	@Description	path dalam urutan perjalanan. edges pakai signed id, negatif kalau edge dilewati berlawanan arah.
type PathRequest struct {
	Vertices []uint32  `json:"vertices" validate:"required,min=1"`
	Edges    []int64   `json:"edges"`
	Weights  []float64 `json:"weights" validate:"dive,gte=0"`
}

func (p PathRequest) toEdgePath() (*datastructure.EdgePath, error) {
	vertices := make([]datastructure.VertexID, len(p.Vertices))
	for i, v := range p.Vertices {
		vertices[i] = datastructure.VertexID(v)
	}
	edges := make([]datastructure.DirectedEdge, len(p.Edges))
	for i, signed := range p.Edges {
		e, err := datastructure.DirectedEdgeFromSigned(signed)
		if err != nil {
			return nil, err
		}
		edges[i] = e
	}
	return datastructure.EdgePathFromSlices(vertices, edges, p.Weights)
}

// ExpandRequest model info
//
//	@Description	request body untuk unpack shortcut di path
type ExpandRequest struct {
	Path     PathRequest `json:"path"`
	Simplify bool        `json:"simplify"`
}

func (s *ExpandRequest) Bind(r *http.Request) error {
	if len(s.Path.Vertices) == 0 {
		return errors.New("invalid request")
	}
	return nil
}

type ExpandBatchRequest struct {
	Paths    []PathRequest `json:"paths" validate:"required,min=1,max=1000,dive"`
	Simplify bool          `json:"simplify"`
}

func (s *ExpandBatchRequest) Bind(r *http.Request) error {
	if len(s.Paths) == 0 {
		return errors.New("invalid request")
	}
	return nil
}

type SequencesRequest struct {
	Path     PathRequest `json:"path"`
	MaxCount int         `json:"max_count" validate:"required,gt=0"`
}

func (s *SequencesRequest) Bind(r *http.Request) error {
	if len(s.Path.Vertices) == 0 {
		return errors.New("invalid request")
	}
	return nil
}

// PathResponse model info
//
//	@Description	path tanpa shortcut beserta geometry nya
type PathResponse struct {
	Vertices    []uint32  `json:"vertices"`
	Edges       []int64   `json:"edges"`
	Weights     []float64 `json:"weights"`
	Weight      float64   `json:"weight"`
	DistanceKM  float64   `json:"distance_km"`
	Polyline    string    `json:"polyline"`
	Coordinates []Coord   `json:"coordinates,omitempty"`
}

// Coord model info
//
//	@Description	model untuk koordinat
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func pathResponseParts(path *datastructure.EdgePath) ([]uint32, []int64, []float64) {
	nodes := path.Nodes()
	vertices := make([]uint32, 0, len(nodes))
	edges := make([]int64, 0, len(nodes))
	weights := make([]float64, 0, len(nodes))
	for i, n := range nodes {
		vertices = append(vertices, uint32(n.Vertex))
		if i == 0 {
			continue
		}
		edges = append(edges, n.Edge.Signed())
		weights = append(weights, n.Weight)
	}
	return vertices, edges, weights
}

func RenderPathResponse(p service.ExpandedPath) *PathResponse {
	vertices, edges, weights := pathResponseParts(p.Path)
	coords := make([]Coord, 0, len(p.Coordinates))
	for _, c := range p.Coordinates {
		coords = append(coords, Coord{Lat: c.Lat, Lon: c.Lon})
	}
	return &PathResponse{
		Vertices:    vertices,
		Edges:       edges,
		Weights:     weights,
		Weight:      p.Path.Weight,
		DistanceKM:  p.DistanceKM,
		Polyline:    p.Polyline,
		Coordinates: coords,
	}
}

type ExpandBatchResponse struct {
	Paths []*PathResponse `json:"paths"`
}

type SequencesResponse struct {
	Sequence1  []uint32 `json:"sequence1"`
	Sequence2  []uint32 `json:"sequence2"`
	IsOriginal bool     `json:"is_original"`
}

func toUint32s(vertices []datastructure.VertexID) []uint32 {
	res := make([]uint32, len(vertices))
	for i, v := range vertices {
		res[i] = uint32(v)
	}
	return res
}

// RouteResponse model info
//
//	@Description	shortest path di contraction hierarchy, sebelum dan sesudah shortcut di unpack
type RouteResponse struct {
	Compressed *PathResponse `json:"compressed"`
	Expanded   *PathResponse `json:"expanded"`
}

func (h *PathHandler) bindAndValidate(w http.ResponseWriter, r *http.Request, data render.Binder) bool {
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return false
	}
	if err := h.validate.Struct(data); err != nil {
		vv := translateError(err, h.trans)
		render.Render(w, r, ErrValidation(err, vv))
		return false
	}
	return true
}

// ExpandPath
//
//	@Summary		unpack semua shortcut di path sampai tinggal edge original
//	@Tags			paths
//	@Param			body	body	ExpandRequest	true	"request body expand path"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/paths/expand [post]
//	@Success		200	{object}	PathResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *PathHandler) ExpandPath(w http.ResponseWriter, r *http.Request) {
	data := &ExpandRequest{}
	if !h.bindAndValidate(w, r, data) {
		return
	}
	path, err := data.Path.toEdgePath()
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	expanded, err := h.svc.ExpandPath(r.Context(), path, data.Simplify)
	if err != nil {
		render.Render(w, r, ErrorResponse(err))
		return
	}
	h.observe(expanded)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, RenderPathResponse(expanded))
}

// ExpandPaths
//
//	@Summary		unpack shortcut di banyak path sekaligus
//	@Description	unpack shortcut di banyak path sekaligus, urutan response sama dengan urutan request
//	@Tags			paths
//	@Param			body	body	ExpandBatchRequest	true	"request body expand banyak path"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/paths/expand/batch [post]
//	@Success		200	{object}	ExpandBatchResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *PathHandler) ExpandPaths(w http.ResponseWriter, r *http.Request) {
	data := &ExpandBatchRequest{}
	if !h.bindAndValidate(w, r, data) {
		return
	}
	paths := make([]*datastructure.EdgePath, len(data.Paths))
	for i, p := range data.Paths {
		path, err := p.toEdgePath()
		if err != nil {
			render.Render(w, r, ErrInvalidRequest(fmt.Errorf("path %d: %w", i, err)))
			return
		}
		paths[i] = path
	}

	expanded, err := h.svc.ExpandPaths(r.Context(), paths, data.Simplify)
	if err != nil {
		render.Render(w, r, ErrorResponse(err))
		return
	}

	resp := &ExpandBatchResponse{Paths: make([]*PathResponse, 0, len(expanded))}
	for _, p := range expanded {
		h.observe(p)
		resp.Paths = append(resp.Paths, RenderPathResponse(p))
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// Sequences
//
//	@Summary		turn context di awal dan akhir path
//	@Description	vertex sesudah awal path (sequence1) dan sebelum akhir path (sequence2)
//	@Tags			paths
//	@Param			body	body	SequencesRequest	true	"request body sequences"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/paths/sequences [post]
//	@Success		200	{object}	SequencesResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *PathHandler) Sequences(w http.ResponseWriter, r *http.Request) {
	data := &SequencesRequest{}
	if !h.bindAndValidate(w, r, data) {
		return
	}
	path, err := data.Path.toEdgePath()
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	seqs, err := h.svc.Sequences(r.Context(), path, data.MaxCount)
	if err != nil {
		render.Render(w, r, ErrorResponse(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &SequencesResponse{
		Sequence1:  toUint32s(seqs.Sequence1),
		Sequence2:  toUint32s(seqs.Sequence2),
		IsOriginal: seqs.IsOriginal,
	})
}

// ShortestPath
//
//	@Summary		shortest path query pakai bidirectional dijkstra di contraction hierarchy
//	@Tags			paths
//	@Param			from		query	int		true	"source vertex"
//	@Param			to			query	int		true	"target vertex"
//	@Param			simplify	query	bool	false	"simplify geometry"
//	@Produce		application/json
//	@Router			/paths/route [get]
//	@Success		200	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *PathHandler) ShortestPath(w http.ResponseWriter, r *http.Request) {
	from, err := parseVertex(r, "from")
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	to, err := parseVertex(r, "to")
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	simplify := r.URL.Query().Get("simplify") == "true"

	compressed, expanded, err := h.svc.ShortestPath(r.Context(), from, to, simplify)
	if err != nil {
		render.Render(w, r, ErrorResponse(err))
		return
	}
	h.observe(expanded)

	vertices, edges, weights := pathResponseParts(compressed)
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &RouteResponse{
		Compressed: &PathResponse{
			Vertices: vertices,
			Edges:    edges,
			Weights:  weights,
			Weight:   compressed.Weight,
		},
		Expanded: RenderPathResponse(expanded),
	})
}

func parseVertex(r *http.Request, name string) (datastructure.VertexID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("query parameter %s is required", name)
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("query parameter %s: %w", name, err)
	}
	return datastructure.VertexID(v), nil
}

func (h *PathHandler) observe(p service.ExpandedPath) {
	if h.m == nil {
		return
	}
	h.m.ExpandedPaths.Inc()
	h.m.ExpandedEdges.Add(float64(p.Path.Length()))
}
