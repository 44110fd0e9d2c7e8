// Package analytics walks a directory tree and prints a labeled report
// of its shape: sizes, counts, depth and notable files.
package analytics

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

// Report holds the collected statistics for one directory tree.
//
// Size, largest file and depth cover the whole tree. The entry counts,
// newest/oldest files and the empty-file list describe the top level
// only, so the report reads as "this directory, with its weight".
type Report struct {
	Path        string
	TotalSize   int64
	Dirs        int
	Files       int
	Symlinks    int
	Hidden      int
	MaxDepth    int
	DeepestDir  string
	LargestFile string
	LargestSize int64
	OldestFile  string
	OldestTime  time.Time
	NewestFile  string
	NewestTime  time.Time
	EmptyFiles  []string
}

// Collect walks the tree under dir and gathers the report statistics.
// An unreadable root is the only fatal error; unreadable subtrees are
// skipped.
func Collect(dir string) (*Report, error) {
	r := &Report{
		Path:       dir,
		OldestTime: time.Now(),
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return fmt.Errorf("failed to read directory: %w", err)
			}
			return nil
		}
		if path == dir {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil
		}
		depth := strings.Count(rel, string(filepath.Separator)) + 1
		topLevel := depth == 1

		if topLevel && strings.HasPrefix(d.Name(), ".") {
			r.Hidden++
		}

		if d.Type()&fs.ModeSymlink != 0 {
			if topLevel {
				r.Symlinks++
			}
			return nil
		}

		if d.IsDir() {
			if topLevel {
				r.Dirs++
			}
			if depth > r.MaxDepth {
				r.MaxDepth = depth
				r.DeepestDir = path
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}

		r.TotalSize += info.Size()
		if info.Size() > r.LargestSize {
			r.LargestSize = info.Size()
			r.LargestFile = path
		}

		if topLevel {
			r.Files++
			if info.ModTime().After(r.NewestTime) {
				r.NewestTime = info.ModTime()
				r.NewestFile = d.Name()
			}
			if info.ModTime().Before(r.OldestTime) {
				r.OldestTime = info.ModTime()
				r.OldestFile = d.Name()
			}
			if info.Size() == 0 {
				r.EmptyFiles = append(r.EmptyFiles, d.Name())
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Write prints the report as the labeled block shown by the analytics
// view, with the directory path in bold on top.
func (r *Report) Write(w io.Writer) {
	fmt.Fprintln(w, color.New(color.Bold).Sprint(r.Path))
	fmt.Fprintf(w, "🧮 Total Size    : %s\n", humanize.IBytes(uint64(r.TotalSize)))
	fmt.Fprintf(w, "🗂️  Directories   : %d\n", r.Dirs)
	fmt.Fprintf(w, "🌳 Max Depth     : %d levels\n", r.MaxDepth)
	fmt.Fprintf(w, "📁 Deepest Dir   : %s\n", orDash(r.DeepestDir))
	fmt.Fprintf(w, "🗃️  Files         : %d\n", r.Files)
	fmt.Fprintf(w, "🔗 Symlinks      : %d\n", r.Symlinks)
	fmt.Fprintf(w, "👻 Hidden        : %d\n", r.Hidden)

	if r.LargestFile != "" {
		fmt.Fprintf(w, "🐘 Largest File  : %s [%s]\n", r.LargestFile, humanize.IBytes(uint64(r.LargestSize)))
	} else {
		fmt.Fprintf(w, "🐘 Largest File  : -\n")
	}
	if r.OldestFile != "" {
		fmt.Fprintf(w, "🏺 Oldest File   : %s [%s, %s]\n", r.OldestFile, formatTime(r.OldestTime), humanize.Time(r.OldestTime))
	} else {
		fmt.Fprintf(w, "🏺 Oldest File   : -\n")
	}
	if r.NewestFile != "" {
		fmt.Fprintf(w, "🆕 Newest File   : %s [%s, %s]\n", r.NewestFile, formatTime(r.NewestTime), humanize.Time(r.NewestTime))
	} else {
		fmt.Fprintf(w, "🆕 Newest File   : -\n")
	}
	fmt.Fprintf(w, "📭 Empty Files   : %d [%s]\n", len(r.EmptyFiles), strings.Join(r.EmptyFiles, " "))
}

func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
