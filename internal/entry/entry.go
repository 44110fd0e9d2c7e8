// Package entry defines the in-memory record for one directory entry and
// the ordering relation used to arrange entries for display.
package entry

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry describes a single directory entry prepared for display.
// The icon and the boolean flags are fixed at construction; entries are
// treated as read-only once built.
type Entry struct {
	// Name is the entry's base name, original case preserved
	Name string

	// Icon is the semantic category marker assigned by the classifier
	Icon string

	// Directory reports whether the entry is, or points at, a directory
	Directory bool

	// Hidden reports whether the name starts with a dot
	Hidden bool

	// GitStatus is an optional one-letter work-tree marker (0 = none)
	GitStatus byte

	ext     string
	hasExt  bool
	extDone bool
}

// New builds the Entry for path with its pre-computed icon.
// Construction never fails: when the path's metadata cannot be read the
// entry is treated as a plain non-directory file.
func New(path, icon string) *Entry {
	name := filepath.Base(path)
	e := &Entry{
		Name:   name,
		Icon:   icon,
		Hidden: strings.HasPrefix(name, "."),
	}
	// Stat follows symlinks, so a link to a directory groups with the
	// directories.
	if info, err := os.Stat(path); err == nil {
		e.Directory = info.IsDir()
	}
	return e
}

// Extension returns the entry's lower-cased extension and whether it has
// one. The dot of a hidden file does not start an extension, so names
// like ".profile" have none. The result is computed on first use and
// cached.
func (e *Entry) Extension() (string, bool) {
	if !e.extDone {
		e.extDone = true
		if i := strings.LastIndexByte(e.Name, '.'); i > 0 {
			e.ext = strings.ToLower(e.Name[i+1:])
			e.hasExt = true
		}
	}
	return e.ext, e.hasExt
}

// Compare defines the display order: directories before files, hidden
// entries before visible ones within each group, then file extensions
// when both sides have one and they differ, then names. It returns a
// negative number when a sorts first, a positive number when b does, and
// zero when the two names are equal ignoring case.
//
// Note that zero means equal names only, not equal paths. Two distinct
// entries whose names differ just by case compare equal; this matches
// the tool's historical behavior and callers must not treat zero as
// identity.
func Compare(a, b *Entry) int {
	if a.Directory != b.Directory {
		if a.Directory {
			return -1
		}
		return 1
	}
	if a.Hidden != b.Hidden {
		if a.Hidden {
			return -1
		}
		return 1
	}
	if !a.Directory {
		aExt, aOK := a.Extension()
		bExt, bOK := b.Extension()
		if aOK && bOK && aExt != bExt {
			return strings.Compare(aExt, bExt)
		}
	}
	return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
}

// Sort orders entries in place for display. The sort is stable so that
// entries comparing equal keep their scan order.
func Sort(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return Compare(entries[i], entries[j]) < 0
	})
}
