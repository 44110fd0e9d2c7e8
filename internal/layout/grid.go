// Package layout arranges directory entries into a multi-column grid
// sized to the available terminal width. Entries flow down each column
// before spilling into the next, and the widest arrangement that still
// fits wins.
package layout

import (
	"github.com/mattn/go-runewidth"

	"github.com/marlow/glance/internal/entry"
)

const (
	// MaxColumns is the default upper bound on grid columns.
	MaxColumns = 4

	// Gutter is the number of spaces separating adjacent columns.
	Gutter = 2
)

// Grid describes a column-major arrangement of entries. Widths holds the
// display width of each column, which is the width of its widest cell.
type Grid struct {
	Columns int
	Rows    int
	Widths  []int

	entries []*entry.Entry
}

// Cell pairs an entry with the number of padding spaces the renderer
// must emit after it.
type Cell struct {
	Entry   *entry.Entry
	Padding int
}

// EntryWidth reports the display width of a rendered entry: the icon,
// one separating space, and the name, measured in terminal cells.
// Entries carrying a git status take three more cells for the marker.
func EntryWidth(e *entry.Entry) int {
	w := runewidth.StringWidth(e.Icon) + 1 + runewidth.StringWidth(e.Name)
	if e.GitStatus != 0 {
		w += 3
	}
	return w
}

// Compute arranges entries into the widest grid of at most maxColumns
// columns that fits within width. Candidate column counts are tried in
// descending order and the first that fits is kept. When not even a
// single column fits, the single-column grid is returned anyway rather
// than failing; overflow is the terminal's problem.
func Compute(entries []*entry.Entry, width, maxColumns int) *Grid {
	n := len(entries)
	if n == 0 {
		return &Grid{}
	}
	if maxColumns > n {
		maxColumns = n
	}
	if maxColumns < 1 {
		maxColumns = 1
	}

	cellWidths := make([]int, n)
	for i, e := range entries {
		cellWidths[i] = EntryWidth(e)
	}

	for c := maxColumns; c > 1; c-- {
		g := build(entries, cellWidths, c)
		if g.width() <= width {
			return g
		}
	}
	return build(entries, cellWidths, 1)
}

// build partitions entries into c columns of ceil(n/c) rows each. Late
// columns may be short or, when n is small, entirely empty; an empty
// column has width zero.
func build(entries []*entry.Entry, cellWidths []int, c int) *Grid {
	rows := (len(entries) + c - 1) / c
	widths := make([]int, c)
	for i, w := range cellWidths {
		if col := i / rows; w > widths[col] {
			widths[col] = w
		}
	}
	return &Grid{Columns: c, Rows: rows, Widths: widths, entries: entries}
}

// width is the total display width of the grid including gutters.
func (g *Grid) width() int {
	total := Gutter * (g.Columns - 1)
	for _, w := range g.Widths {
		total += w
	}
	return total
}

// Row returns the occupied cells of one display row in left-to-right
// order. Each cell except the last is padded out to its column width
// plus the gutter; the final cell on a row carries no padding, so no
// line ends in trailing spaces.
func (g *Grid) Row(row int) []Cell {
	if row < 0 || row >= g.Rows {
		return nil
	}
	var cells []Cell
	for col := 0; col < g.Columns; col++ {
		i := col*g.Rows + row
		if i >= len(g.entries) {
			break
		}
		e := g.entries[i]
		cells = append(cells, Cell{Entry: e, Padding: g.Widths[col] - EntryWidth(e) + Gutter})
	}
	if len(cells) > 0 {
		cells[len(cells)-1].Padding = 0
	}
	return cells
}
