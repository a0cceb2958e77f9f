package astar

import "github.com/katalvlaran/gridpath/gridmap"

// noParent marks the source node in the node table.
const noParent = -1

// searchNode is one discovered cell. Nodes live in runner.nodes and are
// addressed by their table id, which is also their insertion order.
type searchNode struct {
	pos    gridmap.Cell
	parent int // table id of the node this one was reached from
	g      int // cost from source along the best path found so far
	h      int // Manhattan distance to target
	f      int // g + h
	id     int // table id; earlier ids win F ties
	index  int // position in the open heap, -1 once closed
	closed bool
}

// openList is a min-heap of open nodes ordered by F, then by insertion order.
// Equal F resolves to the earliest-inserted node, and relaxing a node keeps
// its original place in that order.
type openList []*searchNode

// Len returns the number of open nodes.
func (pq openList) Len() int { return len(pq) }

// Less orders by F, breaking ties by table id.
func (pq openList) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two nodes and keeps their heap indices current.
func (pq openList) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push adds x onto the heap. Called by heap.Push; x must be *searchNode.
func (pq *openList) Push(x interface{}) {
	n := x.(*searchNode)
	n.index = len(*pq)
	*pq = append(*pq, n)
}

// Pop removes the last element. Called by heap.Pop.
func (pq *openList) Pop() interface{} {
	old := *pq
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*pq = old[:last]

	return n
}

// manhattan returns |dx| + |dy|.
func manhattan(a, b gridmap.Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
