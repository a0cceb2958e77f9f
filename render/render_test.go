package render_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/render"
)

// plain renders into a buffer, which is never a terminal, so no escape codes
// are emitted.
func plain() render.Option {
	return render.WithRenderer(lipgloss.NewRenderer(&bytes.Buffer{}))
}

func TestGrid(t *testing.T) {
	m, err := gridmap.From2D([][]int{
		{1, 1, 1},
		{0, 0, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, "1 1 1\n0 0 1\n", render.Grid(m, plain()))
}

func TestGrid_Marks(t *testing.T) {
	m, err := gridmap.From2D([][]int{
		{1, 1, 1},
		{0, 0, 1},
	})
	require.NoError(t, err)

	got := render.Grid(m, plain(), render.WithMarks(map[gridmap.Cell]rune{
		{X: 0, Y: 0}: 'P',
		{X: 2, Y: 1}: 'Q',
	}))
	assert.Equal(t, "P 1 1\n0 0 Q\n", got)
}

// TestGrid_RawValues checks that values above 1 are printed as stored.
func TestGrid_RawValues(t *testing.T) {
	m, err := gridmap.From2D([][]int{{2, 0, 7}})
	require.NoError(t, err)

	assert.Equal(t, "2 0 7\n", render.Grid(m, plain()))
}

func TestResult(t *testing.T) {
	src, dst := gridmap.Cell{X: 0, Y: 0}, gridmap.Cell{X: 5, Y: 5}

	assert.Equal(t, "Shortest path from [0 0] to [5 5] is length 12", render.Result(src, dst, 12))
	assert.Equal(t, "Shortest path from [0 0] to [0 0] is length 0", render.Result(src, src, 0))
	assert.Equal(t, "Shortest path from [0 0] to [5 5] is unreachable", render.Result(src, dst, astar.Unreachable))
}
