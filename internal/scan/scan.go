package scan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/marlow/glance/internal/entry"
	"github.com/marlow/glance/internal/gitstat"
	"github.com/marlow/glance/internal/icon"
)

// Logger receives diagnostics about entries skipped during a scan.
type Logger interface {
	LogDebug(message string)
}

// Options configures the directory scanning behavior
type Options struct {
	// Git enables git status collection when the directory is inside a work tree
	Git bool
	// Logger receives a debug line for every skipped entry (nil disables)
	Logger Logger
}

// Result contains the results of a directory scan
type Result struct {
	// Entries holds the classified entries in display order
	Entries []*entry.Entry
	// Branch is the checked-out git branch, empty outside a work tree
	Branch string
	// Skipped counts entries dropped because their metadata was unreadable
	Skipped int
}

// Directory reads, classifies and sorts the contents of dir. An
// unreadable directory is the only fatal error; entries whose metadata
// cannot be read are skipped and counted instead.
func Directory(dir string, opts Options) (*Result, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	result := &Result{Entries: make([]*entry.Entry, 0, len(dirents))}

	var git *gitstat.Summary
	if opts.Git {
		if git = gitstat.For(dir); git != nil {
			result.Branch = git.Branch
		}
	}

	device := icon.IsDeviceDir(dir)

	for _, d := range dirents {
		if _, err := d.Info(); err != nil {
			result.Skipped++
			if opts.Logger != nil {
				opts.Logger.LogDebug(fmt.Sprintf("skipping %s: %v", d.Name(), err))
			}
			continue
		}

		path := filepath.Join(dir, d.Name())
		var ic string
		if device {
			ic = icon.ForDevice(path)
		} else {
			ic = icon.For(path)
		}

		e := entry.New(path, ic)
		if status, ok := git.Lookup(d.Name()); ok {
			e.GitStatus = status
		}
		result.Entries = append(result.Entries, e)
	}

	entry.Sort(result.Entries)
	return result, nil
}
