// Package longlist prints the detailed one-entry-per-line directory
// view: size, modification time, emoji permissions, icon and name.
package longlist

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/h2non/filetype"

	"github.com/marlow/glance/internal/icon"
)

type fileInfo struct {
	name    string
	path    string
	size    int64
	mode    fs.FileMode
	mtime   time.Time
	isDir   bool
	subdirs int
}

// Write prints the detailed listing of dir to w, one entry per line.
// Directories lead, ordered by how many subdirectories they contain;
// files follow grouped by extension, largest first within a group.
func Write(w io.Writer, dir string) error {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}

	infos := make([]fileInfo, 0, len(dirents))
	for _, d := range dirents {
		path := filepath.Join(dir, d.Name())
		st, err := os.Lstat(path)
		if err != nil {
			continue
		}
		fi := fileInfo{
			name:  d.Name(),
			path:  path,
			size:  st.Size(),
			mode:  st.Mode(),
			mtime: st.ModTime(),
			isDir: st.IsDir(),
		}
		if fi.isDir {
			fi.subdirs = countSubdirs(path)
		}
		infos = append(infos, fi)
	}

	sort.Slice(infos, func(i, j int) bool {
		return less(&infos[i], &infos[j])
	})

	for i := range infos {
		printRow(w, &infos[i])
	}
	return nil
}

// countSubdirs counts the directories directly inside path, following
// symlinks the way the grid view's directory flag does.
func countSubdirs(path string) int {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return 0
	}
	count := 0
	for _, d := range dirents {
		st, err := os.Stat(filepath.Join(path, d.Name()))
		if err == nil && st.IsDir() {
			count++
		}
	}
	return count
}

// less orders the detailed listing. Directories come first, busiest
// (most subdirectories) on top. Files without an extension precede
// files with one; files sharing an extension order by size descending,
// then by case-insensitive name.
func less(a, b *fileInfo) bool {
	if a.isDir != b.isDir {
		return a.isDir
	}
	if a.isDir {
		if a.subdirs != b.subdirs {
			return a.subdirs > b.subdirs
		}
		return strings.ToLower(a.name) < strings.ToLower(b.name)
	}

	extA, okA := extOf(a.name)
	extB, okB := extOf(b.name)
	switch {
	case okA && okB:
		if c := strings.Compare(strings.ToLower(extA), strings.ToLower(extB)); c != 0 {
			return c < 0
		}
	case okA:
		return false
	case okB:
		return true
	}

	if a.size != b.size {
		return a.size > b.size
	}
	return strings.ToLower(a.name) < strings.ToLower(b.name)
}

// extOf reports the final dot-suffix of name, dot included. A leading
// dot counts, so ".profile" carries the extension ".profile" here.
func extOf(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return "", false
	}
	return name[i:], true
}

func printRow(w io.Writer, fi *fileInfo) {
	fmt.Fprintf(w, "%10s  %s  %-40s %-2s %-20s",
		humanize.IBytes(uint64(fi.size)),
		fi.mtime.Format("2006-01-02 15:04"),
		permString(fi.mode),
		icon.For(fi.path),
		fi.name)

	if fi.isDir {
		fmt.Fprintf(w, " 📁 (%d subdirs)", fi.subdirs)
	} else if mime := mimeFor(fi.name); mime != "" {
		fmt.Fprintf(w, " [%s]", mime)
	}
	fmt.Fprintln(w)
}

// permString renders the mode bits as three owner/group/world triads of
// read/write/execute symbols, with setuid, setgid and sticky markers
// appended when set.
func permString(mode fs.FileMode) string {
	s := fmt.Sprintf("👤 %s%s%s 👥 %s%s%s 🌍 %s%s%s",
		symbol(mode&0o400 != 0, "👀"),
		symbol(mode&0o200 != 0, "✏️"),
		symbol(mode&0o100 != 0, "🚀"),
		symbol(mode&0o040 != 0, "👀"),
		symbol(mode&0o020 != 0, "✏️"),
		symbol(mode&0o010 != 0, "🚀"),
		symbol(mode&0o004 != 0, "👀"),
		symbol(mode&0o002 != 0, "✏️"),
		symbol(mode&0o001 != 0, "🚀"))

	if mode&fs.ModeSetuid != 0 {
		s += "🔑"
	}
	if mode&fs.ModeSetgid != 0 {
		s += "🔐"
	}
	if mode&fs.ModeSticky != 0 {
		s += "🔒"
	}
	return s
}

func symbol(on bool, sym string) string {
	if on {
		return sym
	}
	return "❌"
}

// mimeFor resolves the MIME type from the file extension, or empty when
// the extension is unknown.
func mimeFor(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return ""
	}
	return filetype.GetType(ext).MIME.Value
}
