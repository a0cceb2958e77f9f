package gridmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridmap construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
)

// Cell is a grid coordinate. X indexes columns, Y indexes rows.
// A Cell carries no bounds of its own; validity is always checked
// against a specific GridMap.
type Cell struct {
	X, Y int
}

// String formats the cell as "[x y]".
func (c Cell) String() string {
	return fmt.Sprintf("[%d %d]", c.X, c.Y)
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// TraversableThreshold is the minimum cell value considered open.
	TraversableThreshold int
}

// Option configures NewGridMap.
type Option func(*Options)

// WithTraversableThreshold sets the minimum value of an open cell.
func WithTraversableThreshold(t int) Option {
	return func(o *Options) {
		o.TraversableThreshold = t
	}
}

// DefaultOptions returns Options with TraversableThreshold=1,
// so 1 is open and 0 is blocked.
func DefaultOptions() Options {
	return Options{
		TraversableThreshold: 1,
	}
}

// GridMap is an immutable view over a 2D occupancy grid.
// cells[y][x] holds the original input value.
type GridMap struct {
	width, height int
	cells         [][]int
	threshold     int
}

// offsets4 is the fixed neighbor order: right, left, down, up.
var offsets4 = [4]Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
