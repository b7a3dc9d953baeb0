// Package scenario loads HCL descriptions of a tile map together with its
// terrain costs, walls and the path queries to run against it.
//
//	grid {
//	  width     = 5
//	  height    = 5
//	  diagonals = false
//	  offset_x  = 0
//	  offset_y  = 0
//	}
//	cost "swamp" {
//	  at    = [1, 1]
//	  value = 30
//	}
//	cost "rock" {
//	  at    = [3, 0]
//	  value = "impassable"
//	}
//	wall "river" {
//	  from = [2, 0]
//	  to   = [2, 3]
//	}
//	query "corner" {
//	  from = [0, 0]
//	  to   = [4, 4]
//	}
//
// All coordinates are world space. Walls are inclusive horizontal or
// vertical segments of impassable tiles.
package scenario

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/internal/ctxlog"
	"github.com/katalvlaran/tilepath/tilemap"
)

// impassableKeyword is accepted as a cost value in place of astar.Impassable.
const impassableKeyword = "impassable"

var (
	// ErrMissingGrid indicates a scenario without a grid block.
	ErrMissingGrid = errors.New("scenario: grid block is required")
	// ErrBadPoint indicates a coordinate that is not a list of two integers.
	ErrBadPoint = errors.New("scenario: point must be a list of two integers")
	// ErrBadCost indicates a cost value that is neither an integer nor "impassable".
	ErrBadCost = errors.New(`scenario: cost value must be an integer or "impassable"`)
	// ErrDiagonalWall indicates a wall whose endpoints share neither row nor column.
	ErrDiagonalWall = errors.New("scenario: wall must be horizontal or vertical")
	// ErrCostRejected indicates the map refused a cost (out of range or negative).
	ErrCostRejected = errors.New("scenario: cost rejected by map")
)

// Point is a world-space tile coordinate.
type Point struct {
	X, Y int
}

// Grid mirrors tilemap.Map.Create arguments.
type Grid struct {
	Width, Height    int
	Diagonals        bool
	OffsetX, OffsetY int
}

// Cost sets the loss of a single tile.
type Cost struct {
	Name  string
	At    Point
	Value int
}

// Wall blocks an inclusive straight segment of tiles.
type Wall struct {
	Name     string
	From, To Point
}

// Query is a named path search.
type Query struct {
	Name     string
	From, To Point
}

// Scenario is a decoded scenario file.
type Scenario struct {
	Grid    Grid
	Costs   []Cost
	Walls   []Wall
	Queries []Query
}

// Result is the outcome of one Query.
type Result struct {
	Query  Query
	Length int
	Cost   int
	Path   []Point
}

// Found reports whether the query produced a path.
func (r Result) Found() bool { return r.Length > 0 }

// hclFile represents the top-level structure of a scenario file for decoding.
type hclFile struct {
	Grid    *hclGrid    `hcl:"grid,block"`
	Costs   []*hclCost  `hcl:"cost,block"`
	Walls   []*hclWall  `hcl:"wall,block"`
	Queries []*hclQuery `hcl:"query,block"`
}

type hclGrid struct {
	Width     int  `hcl:"width"`
	Height    int  `hcl:"height"`
	Diagonals bool `hcl:"diagonals,optional"`
	OffsetX   int  `hcl:"offset_x,optional"`
	OffsetY   int  `hcl:"offset_y,optional"`
}

type hclCost struct {
	Name  string         `hcl:"name,label"`
	At    hcl.Expression `hcl:"at"`
	Value hcl.Expression `hcl:"value"`
}

type hclWall struct {
	Name string         `hcl:"name,label"`
	From hcl.Expression `hcl:"from"`
	To   hcl.Expression `hcl:"to"`
}

type hclQuery struct {
	Name string         `hcl:"name,label"`
	From hcl.Expression `hcl:"from"`
	To   hcl.Expression `hcl:"to"`
}

// Load parses the scenario file at path.
func Load(ctx context.Context, path string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading scenario.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	return decode(ctx, file, path)
}

// Parse decodes scenario source held in memory. filename is used in
// diagnostics only.
func Parse(ctx context.Context, src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	return decode(ctx, file, filename)
}

func decode(ctx context.Context, file *hcl.File, filename string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)

	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	if parsed.Grid == nil {
		return nil, fmt.Errorf("%s: %w", filename, ErrMissingGrid)
	}

	sc := &Scenario{
		Grid: Grid{
			Width:     parsed.Grid.Width,
			Height:    parsed.Grid.Height,
			Diagonals: parsed.Grid.Diagonals,
			OffsetX:   parsed.Grid.OffsetX,
			OffsetY:   parsed.Grid.OffsetY,
		},
	}

	for _, c := range parsed.Costs {
		at, err := decodePoint(c.At)
		if err != nil {
			return nil, fmt.Errorf("cost %q: %w", c.Name, err)
		}
		v, err := decodeCost(c.Value)
		if err != nil {
			return nil, fmt.Errorf("cost %q: %w", c.Name, err)
		}
		sc.Costs = append(sc.Costs, Cost{Name: c.Name, At: at, Value: v})
	}

	for _, w := range parsed.Walls {
		from, err := decodePoint(w.From)
		if err != nil {
			return nil, fmt.Errorf("wall %q: %w", w.Name, err)
		}
		to, err := decodePoint(w.To)
		if err != nil {
			return nil, fmt.Errorf("wall %q: %w", w.Name, err)
		}
		wall := Wall{Name: w.Name, From: from, To: to}
		if err := wall.validate(); err != nil {
			return nil, fmt.Errorf("wall %q: %w", w.Name, err)
		}
		sc.Walls = append(sc.Walls, wall)
	}

	for _, q := range parsed.Queries {
		from, err := decodePoint(q.From)
		if err != nil {
			return nil, fmt.Errorf("query %q: %w", q.Name, err)
		}
		to, err := decodePoint(q.To)
		if err != nil {
			return nil, fmt.Errorf("query %q: %w", q.Name, err)
		}
		sc.Queries = append(sc.Queries, Query{Name: q.Name, From: from, To: to})
	}

	logger.Debug("Scenario decoded.",
		"file", filename,
		"costs", len(sc.Costs),
		"walls", len(sc.Walls),
		"queries", len(sc.Queries),
	)

	return sc, nil
}

// decodePoint evaluates expr as a two-element list of integers.
func decodePoint(expr hcl.Expression) (Point, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return Point{}, diags
	}
	if val.IsNull() || !val.IsKnown() {
		return Point{}, ErrBadPoint
	}
	list, err := convert.Convert(val, cty.List(cty.Number))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %s", ErrBadPoint, err)
	}
	var xy []int
	if err := gocty.FromCtyValue(list, &xy); err != nil {
		return Point{}, fmt.Errorf("%w: %s", ErrBadPoint, err)
	}
	if len(xy) != 2 {
		return Point{}, fmt.Errorf("%w: got %d elements", ErrBadPoint, len(xy))
	}

	return Point{X: xy[0], Y: xy[1]}, nil
}

// decodeCost evaluates expr as an integer or the "impassable" keyword.
func decodeCost(expr hcl.Expression) (int, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.IsNull() || !val.IsKnown() {
		return 0, ErrBadCost
	}
	if val.Type() == cty.String {
		if val.AsString() == impassableKeyword {
			return astar.Impassable, nil
		}

		return 0, fmt.Errorf("%w: %q", ErrBadCost, val.AsString())
	}
	var v int
	if err := gocty.FromCtyValue(val, &v); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrBadCost, err)
	}

	return v, nil
}

func (w Wall) validate() error {
	if w.From.X != w.To.X && w.From.Y != w.To.Y {
		return ErrDiagonalWall
	}

	return nil
}

// Each calls fn for every tile of the wall, From first, without
// materializing the segment.
func (w Wall) Each(fn func(Point)) error {
	if err := w.validate(); err != nil {
		return err
	}
	dx, dy := sign(w.To.X-w.From.X), sign(w.To.Y-w.From.Y)
	p := w.From
	fn(p)
	for p != w.To {
		p = Point{X: p.X + dx, Y: p.Y + dy}
		fn(p)
	}

	return nil
}

// Points returns every tile of the wall, From first. It allocates one Point
// per tile; Apply walks walls with Each after bounds-checking them.
func (w Wall) Points() ([]Point, error) {
	var pts []Point
	if err := w.Each(func(p Point) { pts = append(pts, p) }); err != nil {
		return nil, err
	}

	return pts, nil
}

// Validate checks every cost and wall against the grid the scenario would
// create, without touching any map. Placement checks are skipped when the
// grid itself has a non-positive size; Create reports that case.
func (s *Scenario) Validate() error {
	g := s.Grid
	if g.Width <= 0 || g.Height <= 0 {
		return nil
	}
	inside := func(p Point) bool {
		return within(p.X, g.OffsetX, g.Width) && within(p.Y, g.OffsetY, g.Height)
	}

	for _, c := range s.Costs {
		if !inside(c.At) {
			return fmt.Errorf("%w: cost %q at (%d,%d) is outside the grid", ErrCostRejected, c.Name, c.At.X, c.At.Y)
		}
		if c.Value < 0 && c.Value != astar.Impassable {
			return fmt.Errorf("%w: cost %q value=%d is negative", ErrCostRejected, c.Name, c.Value)
		}
	}
	for _, w := range s.Walls {
		if err := w.validate(); err != nil {
			return fmt.Errorf("wall %q: %w", w.Name, err)
		}
		// Straight segments lie inside the rectangle iff both ends do.
		if !inside(w.From) || !inside(w.To) {
			return fmt.Errorf("%w: wall %q from (%d,%d) to (%d,%d) leaves the grid",
				ErrCostRejected, w.Name, w.From.X, w.From.Y, w.To.X, w.To.Y)
		}
	}

	return nil
}

// Apply validates the scenario, creates the grid on m, then applies costs
// and walls in file order. A scenario that fails validation or grid creation
// leaves m as it was.
func (s *Scenario) Apply(ctx context.Context, m *tilemap.Map) error {
	logger := ctxlog.FromContext(ctx)
	if err := s.Validate(); err != nil {
		return err
	}
	g := s.Grid
	if err := m.Create(g.Width, g.Height, g.Diagonals, g.OffsetX, g.OffsetY); err != nil {
		return fmt.Errorf("scenario: create grid: %w", err)
	}

	for _, c := range s.Costs {
		if !m.SetCost(c.At.X, c.At.Y, c.Value) {
			return fmt.Errorf("%w: cost %q at (%d,%d) value=%d", ErrCostRejected, c.Name, c.At.X, c.At.Y, c.Value)
		}
	}
	for _, w := range s.Walls {
		rejected := 0
		err := w.Each(func(p Point) {
			if !m.SetCost(p.X, p.Y, astar.Impassable) {
				rejected++
			}
		})
		if err != nil {
			return fmt.Errorf("wall %q: %w", w.Name, err)
		}
		if rejected > 0 {
			return fmt.Errorf("%w: wall %q has %d tiles outside the grid", ErrCostRejected, w.Name, rejected)
		}
	}
	logger.Info("Scenario applied.",
		"width", g.Width, "height", g.Height, "diagonals", g.Diagonals,
		"costs", len(s.Costs), "walls", len(s.Walls))

	return nil
}

// Run executes every query against m in file order.
func (s *Scenario) Run(ctx context.Context, m *tilemap.Map) []Result {
	logger := ctxlog.FromContext(ctx)
	results := make([]Result, 0, len(s.Queries))
	for _, q := range s.Queries {
		res := Result{Query: q}
		res.Length = m.Search(q.From.X, q.From.Y, q.To.X, q.To.Y)
		if res.Length > 0 {
			res.Cost = m.PathCost()
			res.Path = make([]Point, 0, res.Length)
			for i := 0; i < res.Length; i++ {
				x, y, _ := m.PathPoint(i)
				res.Path = append(res.Path, Point{X: x, Y: y})
			}
		}
		logger.Debug("Query finished.", "query", q.Name, "length", res.Length, "cost", res.Cost)
		results = append(results, res)
	}

	return results
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// within reports whether off <= v < off+size without overflowing.
func within(v, off, size int) bool {
	return v >= off && uint(v-off) < uint(size)
}
