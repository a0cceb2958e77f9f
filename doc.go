// Package gridpath computes shortest path lengths on 2D occupancy grids
// with the A* search algorithm.
//
// What is gridpath?
//
//	A small, zero-surprise library built from three packages:
//		• gridmap: an immutable 0/1 grid with validity, adjacency and flood fill
//		• astar:   A* over a gridmap, returning a length or astar.Unreachable
//		• render:  console drawing of grids and results
//
// Movement is restricted to the four axis-aligned neighbors and every move
// costs 1. The heuristic is Manhattan distance, which is admissible and
// consistent here, so reported lengths are always optimal.
//
// Quick example:
//
//	m, _ := gridmap.From2D([][]int{
//		{1, 1, 1},
//		{0, 0, 1},
//		{1, 1, 1},
//	})
//	n, err := astar.FindShortestPath(m, gridmap.Cell{X: 0, Y: 0}, gridmap.Cell{X: 0, Y: 2})
//	// n == 6, err == nil
//
// Errors:
//
//   - astar.ErrInvalidSource / astar.ErrInvalidTarget: an endpoint is blocked
//     or off the grid. Both wrap astar.ErrInvalidEndpoint.
//   - astar.ErrSearchAborted: the expansion cap or context stopped the search.
//   - gridmap.ErrEmptyGrid / gridmap.ErrNonRectangular: malformed input grid.
//
// An unreachable target is not an error: FindShortestPath returns
// astar.Unreachable with a nil error.
//
// Thread safety:
//
//   - A GridMap never changes after construction and may be shared freely.
//   - Each search owns its own open and closed sets; concurrent searches
//     over one GridMap need no locking.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
