// Package terminal probes the controlling terminal for display geometry.
package terminal

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// DefaultWidth is assumed whenever the real terminal width cannot be
// determined, such as when output is piped or redirected.
const DefaultWidth = 80

// Width reports the column count of the terminal attached to f.
// It returns DefaultWidth when f is not a terminal or its size cannot
// be read, so callers always get a usable width back.
func Width(f *os.File) int {
	if f == nil {
		return DefaultWidth
	}
	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return DefaultWidth
	}
	w, _, err := term.GetSize(int(fd))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}
