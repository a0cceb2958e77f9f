// Package render draws a gridmap.GridMap and search results as console text.
//
// Cells are printed as their stored values separated by single spaces, one
// line per row. Blocked cells are dimmed and marked cells (for example the
// source and target of a search) are drawn in bold with their marker rune.
// Styling comes from lipgloss and degrades to plain text when the renderer's
// output is not a terminal.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridmap"
)

// Options controls how a grid is drawn.
type Options struct {
	// Renderer decides the color profile; defaults to lipgloss.DefaultRenderer().
	Renderer *lipgloss.Renderer
	// Marks overlays a rune on selected cells.
	Marks map[gridmap.Cell]rune
}

// Option configures Grid.
type Option func(*Options)

// WithRenderer draws with r instead of the default stdout renderer.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(o *Options) {
		if r != nil {
			o.Renderer = r
		}
	}
}

// WithMarks draws marks[c] in place of the value of each listed cell.
func WithMarks(marks map[gridmap.Cell]rune) Option {
	return func(o *Options) {
		o.Marks = marks
	}
}

// DefaultOptions returns Options using the default renderer and no marks.
func DefaultOptions() Options {
	return Options{
		Renderer: lipgloss.DefaultRenderer(),
	}
}

// Grid renders m row by row, top to bottom.
func Grid(m *gridmap.GridMap, opts ...Option) string {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	openStyle := cfg.Renderer.NewStyle()
	blockedStyle := cfg.Renderer.NewStyle().Faint(true)
	markStyle := cfg.Renderer.NewStyle().Bold(true)

	var sb strings.Builder
	cells := make([]string, m.Width())
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c := gridmap.Cell{X: x, Y: y}
			if r, ok := cfg.Marks[c]; ok {
				cells[x] = markStyle.Render(string(r))
				continue
			}
			v, _ := m.Value(c)
			if m.IsValid(c) {
				cells[x] = openStyle.Render(strconv.Itoa(v))
			} else {
				cells[x] = blockedStyle.Render(strconv.Itoa(v))
			}
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Result formats the outcome of a search from source to target.
func Result(source, target gridmap.Cell, length int) string {
	if length == astar.Unreachable {
		return fmt.Sprintf("Shortest path from %v to %v is unreachable", source, target)
	}

	return fmt.Sprintf("Shortest path from %v to %v is length %d", source, target, length)
}
