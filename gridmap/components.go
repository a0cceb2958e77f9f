package gridmap

// ConnectedComponents finds all 4-connected regions of open cells.
// Regions are returned in row-major order of their first cell; cells
// within a region are in breadth-first discovery order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (m *GridMap) ConnectedComponents() [][]Cell {
	seen := make([]bool, m.width*m.height)
	var comps [][]Cell

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			start := Cell{X: x, Y: y}
			if !m.IsValid(start) || seen[m.index(start)] {
				continue
			}
			comps = append(comps, m.flood(start, seen))
		}
	}

	return comps
}

// flood collects the region containing start, marking seen as it goes.
func (m *GridMap) flood(start Cell, seen []bool) []Cell {
	seen[m.index(start)] = true
	queue := []Cell{start}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range m.Neighbors(queue[qi]) {
			if i := m.index(n); !seen[i] {
				seen[i] = true
				queue = append(queue, n)
			}
		}
	}

	return queue
}

// Connected reports whether a and b are both open and lie in the same region.
func (m *GridMap) Connected(a, b Cell) bool {
	_, ok := m.Distance(a, b)

	return ok
}

// Distance returns the breadth-first shortest number of unit moves from a
// to b, and false if either cell is invalid or b is not reachable from a.
//
// Time:   O(W·H).
// Memory: O(W·H).
func (m *GridMap) Distance(a, b Cell) (int, bool) {
	if !m.IsValid(a) || !m.IsValid(b) {
		return 0, false
	}
	if a == b {
		return 0, true
	}

	dist := make([]int, m.width*m.height)
	for i := range dist {
		dist[i] = -1
	}
	dist[m.index(a)] = 0
	queue := []int{m.index(a)}
	target := m.index(b)

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, n := range m.Neighbors(m.coordinate(u)) {
			v := m.index(n)
			if dist[v] >= 0 {
				continue
			}
			dist[v] = dist[u] + 1
			if v == target {
				return dist[v], true
			}
			queue = append(queue, v)
		}
	}

	return 0, false
}
