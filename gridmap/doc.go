// Package gridmap treats a 2D occupancy grid as a read-only map for
// pathfinding queries.
//
// What:
//
//   - GridMap wraps a rectangular [][]int grid; cells with value ≥ TraversableThreshold
//     (default 1) are open, everything else is blocked.
//   - Answers validity (in-bounds and open) and 4-directional adjacency queries.
//   - Flood-fill helpers: connected regions, connectivity test, breadth-first distance.
//
// Why:
//
//   - Game maps and robot occupancy grids: the A* engine in package astar
//     asks a GridMap which cells it may step into.
//   - The flood-fill helpers double as a brute-force oracle to cross-check
//     heuristic search results.
//
// Neighbor order:
//
//	Neighbors always yields offsets in the order (+1,0), (−1,0), (0,+1), (0,−1),
//	skipping invalid cells. Search tie-breaking depends on this order.
//
// Complexity:
//
//   - IsValid, InBounds:      O(1).
//   - Neighbors:              O(1), at most 4 cells.
//   - ConnectedComponents:    O(W×H), Memory: O(W×H).
//   - Connected, Distance:    O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//
// A GridMap is immutable once built and may be shared by any number of
// concurrent readers.
package gridmap
