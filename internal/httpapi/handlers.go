package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const errNoGrid = "no grid loaded"

// Point is a world-space tile coordinate on the wire.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// GridRequest is the body of POST /api/grid.
type GridRequest struct {
	Width     int  `json:"width"`
	Height    int  `json:"height"`
	Diagonals bool `json:"diagonals"`
	OffsetX   int  `json:"offset_x"`
	OffsetY   int  `json:"offset_y"`
}

// GridResponse describes the loaded grid.
type GridResponse struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Min    Point `json:"min"`
	Max    Point `json:"max"`
}

// CostRequest is the body of PUT /api/cost.
type CostRequest struct {
	X    int `json:"x"`
	Y    int `json:"y"`
	Cost int `json:"cost"`
}

// RouteRequest is the body of POST /api/search and POST /api/breach.
type RouteRequest struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// SearchResponse is the outcome of POST /api/search.
type SearchResponse struct {
	Length int `json:"length"`
	Cost   int `json:"cost"`
}

// PathResponse is the last path in full.
type PathResponse struct {
	Length int     `json:"length"`
	Cost   int     `json:"cost"`
	Points []Point `json:"points"`
}

// RegionsResponse lists the sizes of the passable regions.
type RegionsResponse struct {
	Count int   `json:"count"`
	Sizes []int `json:"sizes"`
}

// BreachResponse lists the tiles joining two regions and how many of them
// are blocked.
type BreachResponse struct {
	Breaches int     `json:"breaches"`
	Points   []Point `json:"points"`
}

// GetGrid handles GET /api/grid
func (s *Server) GetGrid(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	minX, minY, maxX, maxY, ok := s.m.Bounds()
	if !ok {
		respondError(w, http.StatusConflict, errNoGrid)
		return
	}
	respondJSON(w, http.StatusOK, GridResponse{
		Width:  maxX - minX + 1,
		Height: maxY - minY + 1,
		Min:    Point{minX, minY},
		Max:    Point{maxX, maxY},
	})
}

// CreateGrid handles POST /api/grid
func (s *Server) CreateGrid(w http.ResponseWriter, r *http.Request) {
	var req GridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Width > 0 && req.Height > 0 && req.Width > s.maxCells/req.Height {
		respondError(w, http.StatusUnprocessableEntity,
			fmt.Sprintf("grid %d×%d exceeds the limit of %d cells", req.Width, req.Height, s.maxCells))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.m.Create(req.Width, req.Height, req.Diagonals, req.OffsetX, req.OffsetY); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.logger.Info("Grid created.", "width", req.Width, "height", req.Height, "diagonals", req.Diagonals)
	respondJSON(w, http.StatusCreated, GridResponse{
		Width:  req.Width,
		Height: req.Height,
		Min:    Point{req.OffsetX, req.OffsetY},
		Max:    Point{req.OffsetX + req.Width - 1, req.OffsetY + req.Height - 1},
	})
}

// ReleaseGrid handles DELETE /api/grid
func (s *Server) ReleaseGrid(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m.Release()
	w.WriteHeader(http.StatusNoContent)
}

// SetCost handles PUT /api/cost
func (s *Server) SetCost(w http.ResponseWriter, r *http.Request) {
	var req CostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.m.Ready() {
		respondError(w, http.StatusConflict, errNoGrid)
		return
	}
	if !s.m.SetCost(req.X, req.Y, req.Cost) {
		respondError(w, http.StatusUnprocessableEntity, "cost rejected")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetCost handles GET /api/cost/{x}/{y}
func (s *Server) GetCost(w http.ResponseWriter, r *http.Request) {
	x, err := strconv.Atoi(chi.URLParam(r, "x"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	y, err := strconv.Atoi(chi.URLParam(r, "y"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.m.Ready() {
		respondError(w, http.StatusConflict, errNoGrid)
		return
	}
	cost, ok := s.m.Cost(x, y)
	if !ok {
		respondError(w, http.StatusNotFound, "tile not found")
		return
	}
	respondJSON(w, http.StatusOK, CostRequest{X: x, Y: y, Cost: cost})
}

// Search handles POST /api/search
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.m.Ready() {
		respondError(w, http.StatusConflict, errNoGrid)
		return
	}
	n := s.m.Search(req.From.X, req.From.Y, req.To.X, req.To.Y)
	resp := SearchResponse{Length: n}
	if n > 0 {
		resp.Cost = s.m.PathCost()
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetPath handles GET /api/path
func (s *Server) GetPath(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.m.Ready() {
		respondError(w, http.StatusConflict, errNoGrid)
		return
	}
	n := s.m.PathLen()
	resp := PathResponse{Length: n, Cost: s.m.PathCost(), Points: make([]Point, 0, n)}
	for i := 0; i < n; i++ {
		x, y, _ := s.m.PathPoint(i)
		resp.Points = append(resp.Points, Point{x, y})
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetPathPoint handles GET /api/path/{index}
func (s *Server) GetPathPoint(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid index")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.m.Ready() {
		respondError(w, http.StatusConflict, errNoGrid)
		return
	}
	x, y, ok := s.m.PathPoint(index)
	if !ok {
		respondError(w, http.StatusNotFound, "index out of range")
		return
	}
	respondJSON(w, http.StatusOK, Point{x, y})
}

// GetRegions handles GET /api/regions
func (s *Server) GetRegions(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gg := s.m.Grid()
	if gg == nil {
		respondError(w, http.StatusConflict, errNoGrid)
		return
	}
	comps := gg.ConnectedComponents()
	resp := RegionsResponse{Count: len(comps), Sizes: make([]int, len(comps))}
	for i, c := range comps {
		resp.Sizes[i] = len(c)
	}
	respondJSON(w, http.StatusOK, resp)
}

// Breach handles POST /api/breach - the fewest blocked tiles to clear so that
// the regions holding From and To become connected.
func (s *Server) Breach(w http.ResponseWriter, r *http.Request) {
	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	gg := s.m.Grid()
	if gg == nil {
		respondError(w, http.StatusConflict, errNoGrid)
		return
	}
	offX, offY := s.m.Offset()
	comps := gg.ConnectedComponents()
	src := gg.ComponentOf(comps, req.From.X-offX, req.From.Y-offY)
	dst := gg.ComponentOf(comps, req.To.X-offX, req.To.Y-offY)
	if src < 0 || dst < 0 {
		respondError(w, http.StatusUnprocessableEntity, "endpoints must be passable tiles inside the grid")
		return
	}

	path, breaches, err := gg.ExpandIsland(src, dst)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	resp := BreachResponse{Breaches: breaches, Points: make([]Point, 0, len(path))}
	for _, idx := range path {
		x, y := gg.Coordinate(idx)
		resp.Points = append(resp.Points, Point{x + offX, y + offY})
	}
	respondJSON(w, http.StatusOK, resp)
}
