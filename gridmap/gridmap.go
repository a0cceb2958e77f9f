package gridmap

// NewGridMap constructs a GridMap from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridMap(values [][]int, opts ...Option) (*GridMap, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &GridMap{
		width:     w,
		height:    h,
		cells:     cells,
		threshold: cfg.TraversableThreshold,
	}, nil
}

// From2D is shorthand for NewGridMap with default options.
func From2D(values [][]int) (*GridMap, error) {
	return NewGridMap(values)
}

// Width is the number of columns.
func (m *GridMap) Width() int { return m.width }

// Height is the number of rows.
func (m *GridMap) Height() int { return m.height }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (m *GridMap) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < m.width && c.Y >= 0 && c.Y < m.height
}

// Value returns the stored value at c and whether c is in bounds.
func (m *GridMap) Value(c Cell) (int, bool) {
	if !m.InBounds(c) {
		return 0, false
	}

	return m.cells[c.Y][c.X], true
}

// IsValid reports whether c is in bounds and open.
// Out-of-range cells are simply invalid, never a fault.
// Complexity: O(1).
func (m *GridMap) IsValid(c Cell) bool {
	return m.InBounds(c) && m.cells[c.Y][c.X] >= m.threshold
}

// Neighbors returns the valid cells one step right, left, down and up
// from c, in that order. The returned slice is freshly allocated and
// holds at most 4 cells.
// Complexity: O(1).
func (m *GridMap) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(offsets4))
	for _, d := range offsets4 {
		n := Cell{X: c.X + d.X, Y: c.Y + d.Y}
		if m.IsValid(n) {
			out = append(out, n)
		}
	}

	return out
}

// index maps c to a row-major index: y*width + x.
func (m *GridMap) index(c Cell) int {
	return c.Y*m.width + c.X
}

// coordinate converts a row-major index back to a Cell.
func (m *GridMap) coordinate(idx int) Cell {
	return Cell{X: idx % m.width, Y: idx / m.width}
}
