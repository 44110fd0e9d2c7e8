// Package gitstat shells out to git for the working-tree state shown
// alongside listed entries.
package gitstat

import (
	"os/exec"
	"strings"
)

// Summary holds the git state of one directory: the checked-out branch
// and the per-path status letters from a short-format status.
type Summary struct {
	Branch string

	status map[string]byte
}

// For collects the git summary for dir. It returns nil when dir is not
// inside a git work tree or when git itself is unavailable; callers
// treat a nil summary as no git decoration at all.
func For(dir string) *Summary {
	if !insideWorkTree(dir) {
		return nil
	}
	s := &Summary{status: map[string]byte{}}
	if out, err := runGit(dir, "rev-parse", "--abbrev-ref", "HEAD"); err == nil {
		s.Branch = strings.TrimSpace(out)
	}
	if out, err := runGit(dir, "status", "-s"); err == nil {
		s.status = parseStatus(out)
	}
	return s
}

// Lookup reports the status letter for the named entry. Untracked
// directories appear in porcelain output with a trailing slash, so both
// spellings are tried.
func (s *Summary) Lookup(name string) (byte, bool) {
	if s == nil {
		return 0, false
	}
	if c, ok := s.status[name]; ok {
		return c, true
	}
	c, ok := s.status[name+"/"]
	return c, ok
}

func insideWorkTree(dir string) bool {
	out, err := runGit(dir, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

func runGit(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// parseStatus reads short-format status output, one "XY path" record
// per line.
func parseStatus(out string) map[string]byte {
	statuses := make(map[string]byte)
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		statuses[line[3:]] = statusLetter(line[:2])
	}
	return statuses
}

// statusLetter folds the two-column XY code into the single letter shown
// beside an entry: U for untracked, I for ignored, otherwise whichever
// of the index or work-tree columns is set.
func statusLetter(code string) byte {
	switch code {
	case "??":
		return 'U'
	case "!!":
		return 'I'
	}
	if code[0] != ' ' {
		return code[0]
	}
	return code[1]
}
