// Package render writes classified directory listings to a terminal.
//
// All functions accept io.Writer interfaces for testability. Color is
// applied through the fatih/color package, which disables itself
// automatically when output is not a TTY or NO_COLOR is set.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/marlow/glance/internal/layout"
)

var (
	headerColor = color.New(color.Bold)
	branchColor = color.New(color.FgGreen)
	statusColor = color.New(color.FgGreen)
)

// Header writes the bold directory banner. When a git branch is known
// it follows the path in green parentheses.
func Header(out io.Writer, dir, branch string) {
	if branch != "" {
		fmt.Fprintf(out, "%s (%s)\n", headerColor.Sprint(dir), branchColor.Sprint(branch))
		return
	}
	fmt.Fprintln(out, headerColor.Sprint(dir))
}

// Listing writes the entry grid row by row. Each cell prints as the
// icon, one space, and the name, followed directly by a green (X) git
// marker when the entry carries a status. Cells are padded out to their
// column width plus the gutter, except the last cell on a row, so no
// line ends in trailing spaces.
func Listing(out io.Writer, grid *layout.Grid) {
	for row := 0; row < grid.Rows; row++ {
		var b strings.Builder
		for _, cell := range grid.Row(row) {
			b.WriteString(cell.Entry.Icon)
			b.WriteByte(' ')
			b.WriteString(cell.Entry.Name)
			if cell.Entry.GitStatus != 0 {
				b.WriteByte('(')
				b.WriteString(statusColor.Sprint(string(cell.Entry.GitStatus)))
				b.WriteByte(')')
			}
			if cell.Padding > 0 {
				b.WriteString(strings.Repeat(" ", cell.Padding))
			}
		}
		fmt.Fprintln(out, b.String())
	}
}
