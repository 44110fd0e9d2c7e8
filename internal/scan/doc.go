// Package scan turns a directory on disk into the sorted, classified
// entry list the renderer consumes.
//
// This package is the single reading path for directory contents in
// glance: it lists the directory, attaches an icon to every entry,
// decorates entries with git status where available, and hands back the
// entries in display order.
//
// # Purpose
//
// The scan package is designed for:
//   - Reading one directory level (never recursive)
//   - Classifying each entry through the icon tables
//   - Decorating entries with git working-tree status
//   - Skipping unreadable entries instead of failing the whole listing
//
// # Main Components
//
// Options - Configuration struct for a scan:
//   - Git: enable git status collection inside work trees
//   - Logger: receives a debug line for every skipped entry (nil disables)
//
// Result - Results of a scan:
//   - Entries: classified entries in display order
//   - Branch: checked-out git branch, empty outside a work tree
//   - Skipped: count of entries dropped due to unreadable metadata
//
// # Usage Example
//
// Listing a directory with git decoration:
//
//	result, err := scan.Directory("/path/to/dir", scan.Options{Git: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range result.Entries {
//	    fmt.Println(e.Icon, e.Name)
//	}
//
// # Error Tolerance
//
// An unreadable directory is the only fatal error. Entries whose
// metadata cannot be read (typically files deleted mid-scan) are
// counted, reported at debug level, and skipped; the rest of the
// listing still renders.
package scan
