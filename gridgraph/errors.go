package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a non-positive width or height.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrGridTooLarge indicates width×height above the configured cell limit.
	ErrGridTooLarge = errors.New("gridgraph: grid exceeds the cell limit")
	// ErrOutOfBounds indicates coordinates outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinates out of bounds")
	// ErrNegativeCost indicates a negative tile cost other than astar.Impassable.
	ErrNegativeCost = errors.New("gridgraph: tile cost must be non-negative or astar.Impassable")
	// ErrComponentIndex indicates a requested component index is invalid.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
)
