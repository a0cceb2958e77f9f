// Package astar implements A* shortest-path search on 4-connected,
// unit-cost occupancy grids.
//
// Each discovered cell is scored with G (moves from the source), H (Manhattan
// distance to the target, ignoring obstacles) and F = G + H. The open node with
// the lowest F is expanded next; among equal F, the one discovered first wins.
// Manhattan distance is admissible and consistent on this kind of grid, so the
// first time the target is closed its G is the true shortest length.
//
// Complexity:
//
//   - Time:  O(W·H · log(W·H))  (each cell is closed at most once)
//   - Space: O(W·H)             (node table, index and open heap)
package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/gridmap"
)

// FindShortestPath returns the number of unit moves on a shortest path from
// source to target over m, or Unreachable if no such path exists.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilGridMap).
//  2. source must be valid in m (ErrInvalidSource).
//  3. target must be valid in m (ErrInvalidTarget).
//  4. options must be well-formed (ErrOptionViolation).
//
// Unreachable is a normal result and comes with a nil error. ErrSearchAborted
// is returned only when WithMaxExpansions or WithContext stop the search early.
func FindShortestPath(m *gridmap.GridMap, source, target gridmap.Cell, opts ...Option) (int, error) {
	res, err := Search(m, source, target, opts...)
	if err != nil {
		return Unreachable, err
	}

	return res.Length, nil
}

// Search runs A* like FindShortestPath and additionally reports how many
// nodes were expanded.
func Search(m *gridmap.GridMap, source, target gridmap.Cell, opts ...Option) (Result, error) {
	// 1) Validate inputs before any search work.
	if m == nil {
		return Result{Length: Unreachable}, ErrNilGridMap
	}
	if !m.IsValid(source) {
		return Result{Length: Unreachable}, fmt.Errorf("%w %v", ErrInvalidSource, source)
	}
	if !m.IsValid(target) {
		return Result{Length: Unreachable}, fmt.Errorf("%w %v", ErrInvalidTarget, target)
	}

	// 2) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{Length: Unreachable}, cfg.err
	}

	// 3) Run.
	r := newRunner(m, target, cfg)
	r.open(source, noParent, 0)

	return r.process()
}

// runner holds the bookkeeping for a single search. Nothing in it outlives
// the call, so concurrent searches over one GridMap never share state.
type runner struct {
	m        *gridmap.GridMap
	target   gridmap.Cell
	options  Options
	nodes    []*searchNode        // node table; id = insertion order
	byPos    map[gridmap.Cell]int // cell → table id
	openSet  openList
	expanded int
}

func newRunner(m *gridmap.GridMap, target gridmap.Cell, cfg Options) *runner {
	return &runner{
		m:       m,
		target:  target,
		options: cfg,
		byPos:   make(map[gridmap.Cell]int),
	}
}

// open inserts a newly discovered cell into the node table and the open heap.
func (r *runner) open(pos gridmap.Cell, parent, g int) {
	h := manhattan(pos, r.target)
	n := &searchNode{
		pos:    pos,
		parent: parent,
		g:      g,
		h:      h,
		f:      g + h,
		id:     len(r.nodes),
	}
	r.nodes = append(r.nodes, n)
	r.byPos[pos] = n.id
	heap.Push(&r.openSet, n)
}

// process is the main loop: pop the best open node, close it, stop on the
// target, otherwise relax its neighbors. Exhausting the open set means the
// target is unreachable.
func (r *runner) process() (Result, error) {
	for r.openSet.Len() > 0 {
		if err := r.options.Ctx.Err(); err != nil {
			return r.aborted(fmt.Errorf("%w: %w", ErrSearchAborted, err))
		}
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return r.aborted(fmt.Errorf("%w: expansion limit %d reached", ErrSearchAborted, r.options.MaxExpansions))
		}

		current := heap.Pop(&r.openSet).(*searchNode)
		current.closed = true
		r.expanded++
		r.options.OnExpand(current.pos, current.g, current.f)

		if current.pos == r.target {
			return Result{Length: current.g, Found: true, Expanded: r.expanded}, nil
		}

		r.relax(current)
	}

	return Result{Length: Unreachable, Expanded: r.expanded}, nil
}

// relax offers every open neighbor of current a path of cost current.g+1.
// Closed cells are skipped; open cells are updated in place only when the
// new cost is strictly lower.
func (r *runner) relax(current *searchNode) {
	g := current.g + 1
	for _, pos := range r.m.Neighbors(current.pos) {
		id, seen := r.byPos[pos]
		if !seen {
			r.open(pos, current.id, g)
			continue
		}
		n := r.nodes[id]
		if n.closed || g >= n.g {
			continue
		}
		n.g = g
		n.h = manhattan(pos, r.target)
		n.f = g + n.h
		n.parent = current.id
		heap.Fix(&r.openSet, n.index)
	}
}

func (r *runner) aborted(err error) (Result, error) {
	return Result{Length: Unreachable, Expanded: r.expanded}, err
}
