package scenario

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/tilemap"
)

const riverSrc = `
grid {
  width  = 5
  height = 5
}

cost "swamp" {
  at    = [1, 1]
  value = 30
}

cost "rock" {
  at    = [3, 0]
  value = "impassable"
}

wall "river" {
  from = [2, 0]
  to   = [2, 3]
}

query "corner" {
  from = [0, 0]
  to   = [4, 4]
}

query "onto_rock" {
  from = [0, 0]
  to   = [3, 0]
}
`

func TestParseRiver(t *testing.T) {
	sc, err := Parse(context.Background(), []byte(riverSrc), "river.hcl")
	require.NoError(t, err)

	want := &Scenario{
		Grid: Grid{Width: 5, Height: 5},
		Costs: []Cost{
			{Name: "swamp", At: Point{1, 1}, Value: 30},
			{Name: "rock", At: Point{3, 0}, Value: astar.Impassable},
		},
		Walls: []Wall{{Name: "river", From: Point{2, 0}, To: Point{2, 3}}},
		Queries: []Query{
			{Name: "corner", From: Point{0, 0}, To: Point{4, 4}},
			{Name: "onto_rock", From: Point{0, 0}, To: Point{3, 0}},
		},
	}
	if diff := cmp.Diff(want, sc); diff != "" {
		t.Fatalf("scenario mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyAndRun(t *testing.T) {
	ctx := context.Background()
	sc, err := Parse(ctx, []byte(riverSrc), "river.hcl")
	require.NoError(t, err)

	m := tilemap.New()
	require.NoError(t, sc.Apply(ctx, m))

	for y := 0; y <= 3; y++ {
		c, ok := m.Cost(2, y)
		require.True(t, ok)
		assert.Equal(t, astar.Impassable, c, "wall tile (2,%d)", y)
	}

	results := sc.Run(ctx, m)
	require.Len(t, results, 2)

	corner := results[0]
	require.True(t, corner.Found())
	assert.Equal(t, 9, corner.Length)
	assert.Equal(t, 80, corner.Cost)
	require.Len(t, corner.Path, 9)
	assert.Equal(t, Point{0, 0}, corner.Path[0])
	assert.Equal(t, Point{4, 4}, corner.Path[8])
	assert.Contains(t, corner.Path, Point{2, 4}, "the only crossing is below the wall")
	assert.NotContains(t, corner.Path, Point{1, 1})

	rock := results[1]
	assert.False(t, rock.Found())
	assert.Zero(t, rock.Cost)
	assert.Nil(t, rock.Path)
}

func TestOffsetGrid(t *testing.T) {
	src := `
grid {
  width     = 3
  height    = 1
  diagonals = true
  offset_x  = 100
  offset_y  = 200
}

query "line" {
  from = [100, 200]
  to   = [102, 200]
}
`
	ctx := context.Background()
	sc, err := Parse(ctx, []byte(src), "offset.hcl")
	require.NoError(t, err)
	assert.Equal(t, Grid{Width: 3, Height: 1, Diagonals: true, OffsetX: 100, OffsetY: 200}, sc.Grid)

	m := tilemap.New()
	require.NoError(t, sc.Apply(ctx, m))
	res := sc.Run(ctx, m)
	require.Len(t, res, 1)
	assert.Equal(t, 3, res[0].Length)
	assert.Equal(t, 20, res[0].Cost)
	assert.Equal(t, []Point{{100, 200}, {101, 200}, {102, 200}}, res[0].Path)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "river.hcl")
	require.NoError(t, os.WriteFile(path, []byte(riverSrc), 0o600))

	sc, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, sc.Queries, 2)

	_, err = Load(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{
			name: "missing grid",
			src:  `query "q" {` + "\n  from = [0, 0]\n  to = [1, 1]\n}\n",
			want: ErrMissingGrid,
		},
		{
			name: "short point",
			src:  "grid {\n  width = 2\n  height = 2\n}\nquery \"q\" {\n  from = [0]\n  to = [1, 1]\n}\n",
			want: ErrBadPoint,
		},
		{
			name: "fractional point",
			src:  "grid {\n  width = 2\n  height = 2\n}\nquery \"q\" {\n  from = [0.5, 0]\n  to = [1, 1]\n}\n",
			want: ErrBadPoint,
		},
		{
			name: "unknown cost keyword",
			src:  "grid {\n  width = 2\n  height = 2\n}\ncost \"c\" {\n  at = [0, 0]\n  value = \"mud\"\n}\n",
			want: ErrBadCost,
		},
		{
			name: "diagonal wall",
			src:  "grid {\n  width = 3\n  height = 3\n}\nwall \"w\" {\n  from = [0, 0]\n  to = [2, 2]\n}\n",
			want: ErrDiagonalWall,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(context.Background(), []byte(tc.src), "bad.hcl")
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse(context.Background(), []byte("grid {\n  width = \n"), "broken.hcl")
	require.Error(t, err)
}

func TestApplyRejectsOutOfRangeCost(t *testing.T) {
	src := "grid {\n  width = 2\n  height = 2\n}\ncost \"far\" {\n  at = [5, 5]\n  value = 1\n}\n"
	ctx := context.Background()
	sc, err := Parse(ctx, []byte(src), "far.hcl")
	require.NoError(t, err)

	m := tilemap.New()
	require.NoError(t, m.Create(3, 3, false, 7, 7))
	err = sc.Apply(ctx, m)
	require.ErrorIs(t, err, ErrCostRejected)

	minX, minY, maxX, maxY, ok := m.Bounds()
	require.True(t, ok, "a rejected scenario keeps the previous grid")
	assert.Equal(t, [4]int{7, 7, 9, 9}, [4]int{minX, minY, maxX, maxY})
}

func TestApplyRejectsNegativeCostBeforeCreate(t *testing.T) {
	sc := &Scenario{
		Grid:  Grid{Width: 2, Height: 2},
		Costs: []Cost{{Name: "ok", At: Point{0, 0}, Value: 5}, {Name: "bad", At: Point{1, 1}, Value: -3}},
	}
	m := tilemap.New()
	require.ErrorIs(t, sc.Apply(context.Background(), m), ErrCostRejected)
	assert.False(t, m.Ready(), "nothing is created for a rejected scenario")
}

func TestHugeWallIsRejectedWithoutExpansion(t *testing.T) {
	src := "grid {\n  width = 4\n  height = 4\n}\nwall \"long\" {\n  from = [0, 0]\n  to = [0, 2000000000]\n}\n"
	ctx := context.Background()
	sc, err := Parse(ctx, []byte(src), "long.hcl")
	require.NoError(t, err)
	require.Len(t, sc.Walls, 1)

	require.ErrorIs(t, sc.Validate(), ErrCostRejected)
	m := tilemap.New()
	require.ErrorIs(t, sc.Apply(ctx, m), ErrCostRejected)
	assert.False(t, m.Ready())
}

func TestValidateOffsets(t *testing.T) {
	sc := &Scenario{
		Grid:  Grid{Width: 3, Height: 2, OffsetX: -5, OffsetY: 10},
		Costs: []Cost{{Name: "corner", At: Point{-3, 11}, Value: astar.Impassable}},
		Walls: []Wall{{Name: "row", From: Point{-5, 10}, To: Point{-3, 10}}},
	}
	require.NoError(t, sc.Validate())

	sc.Walls = append(sc.Walls, Wall{Name: "past", From: Point{-5, 11}, To: Point{-2, 11}})
	require.ErrorIs(t, sc.Validate(), ErrCostRejected)

	sc.Walls = []Wall{{Name: "slant", From: Point{-5, 10}, To: Point{-4, 11}}}
	require.ErrorIs(t, sc.Validate(), ErrDiagonalWall)
}

func TestApplyRejectsBadGrid(t *testing.T) {
	sc := &Scenario{Grid: Grid{Width: 0, Height: 3}}
	require.Error(t, sc.Apply(context.Background(), tilemap.New()))
}

func TestWallPoints(t *testing.T) {
	pts, err := Wall{From: Point{3, 1}, To: Point{0, 1}}.Points()
	require.NoError(t, err)
	assert.Equal(t, []Point{{3, 1}, {2, 1}, {1, 1}, {0, 1}}, pts)

	pts, err = Wall{From: Point{2, 2}, To: Point{2, 2}}.Points()
	require.NoError(t, err)
	assert.Equal(t, []Point{{2, 2}}, pts)
}

func TestWallEach(t *testing.T) {
	var got []Point
	err := Wall{From: Point{0, 2}, To: Point{0, 0}}.Each(func(p Point) { got = append(got, p) })
	require.NoError(t, err)
	assert.Equal(t, []Point{{0, 2}, {0, 1}, {0, 0}}, got)

	calls := 0
	err = Wall{From: Point{0, 0}, To: Point{1, 1}}.Each(func(Point) { calls++ })
	require.ErrorIs(t, err, ErrDiagonalWall)
	assert.Zero(t, calls)
}
