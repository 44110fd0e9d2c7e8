package analytics

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
)

func buildTree(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()

	if err := os.MkdirAll(filepath.Join(tmp, "sub", "deep"), 0o755); err != nil {
		t.Fatal(err)
	}

	files := map[string]int{
		"a.txt":       100,
		".hiddenfile": 11,
		"empty.txt":   0,
		"sub/big.bin": 5000,
	}
	for name, size := range files {
		path := filepath.Join(tmp, name)
		if err := os.WriteFile(path, bytes.Repeat([]byte("x"), size), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	// Pin modification times so oldest/newest are deterministic.
	stamp := func(name string, t0 time.Time) {
		if err := os.Chtimes(filepath.Join(tmp, name), t0, t0); err != nil {
			t.Fatal(err)
		}
	}
	stamp("a.txt", time.Date(2020, 1, 1, 12, 0, 0, 0, time.Local))
	stamp("empty.txt", time.Date(2021, 6, 1, 12, 0, 0, 0, time.Local))
	stamp(".hiddenfile", time.Date(2022, 3, 1, 12, 0, 0, 0, time.Local))

	if err := os.Symlink(filepath.Join(tmp, "a.txt"), filepath.Join(tmp, "link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	return tmp
}

func TestCollect(t *testing.T) {
	tmp := buildTree(t)

	r, err := Collect(tmp)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if r.Dirs != 1 {
		t.Errorf("Dirs = %d, want 1", r.Dirs)
	}
	if r.Files != 3 {
		t.Errorf("Files = %d, want 3", r.Files)
	}
	if r.Symlinks != 1 {
		t.Errorf("Symlinks = %d, want 1", r.Symlinks)
	}
	if r.Hidden != 1 {
		t.Errorf("Hidden = %d, want 1", r.Hidden)
	}

	// Size spans the whole tree, not just the top level.
	if want := int64(100 + 11 + 0 + 5000); r.TotalSize != want {
		t.Errorf("TotalSize = %d, want %d", r.TotalSize, want)
	}

	if r.MaxDepth != 2 {
		t.Errorf("MaxDepth = %d, want 2", r.MaxDepth)
	}
	if want := filepath.Join(tmp, "sub", "deep"); r.DeepestDir != want {
		t.Errorf("DeepestDir = %q, want %q", r.DeepestDir, want)
	}

	if want := filepath.Join(tmp, "sub", "big.bin"); r.LargestFile != want {
		t.Errorf("LargestFile = %q, want %q", r.LargestFile, want)
	}
	if r.LargestSize != 5000 {
		t.Errorf("LargestSize = %d, want 5000", r.LargestSize)
	}

	// Oldest and newest consider top-level files only.
	if r.OldestFile != "a.txt" {
		t.Errorf("OldestFile = %q, want a.txt", r.OldestFile)
	}
	if r.NewestFile != ".hiddenfile" {
		t.Errorf("NewestFile = %q, want .hiddenfile", r.NewestFile)
	}

	if len(r.EmptyFiles) != 1 || r.EmptyFiles[0] != "empty.txt" {
		t.Errorf("EmptyFiles = %v, want [empty.txt]", r.EmptyFiles)
	}
}

func TestCollectEmptyDirectory(t *testing.T) {
	r, err := Collect(t.TempDir())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if r.Files != 0 || r.Dirs != 0 {
		t.Errorf("counts = %d files, %d dirs; want zeros", r.Files, r.Dirs)
	}
	if r.LargestFile != "" || r.OldestFile != "" || r.NewestFile != "" {
		t.Error("notable files should stay unset in an empty directory")
	}
}

func TestCollectMissingDirectory(t *testing.T) {
	_, err := Collect(filepath.Join(t.TempDir(), "gone"))
	if err == nil {
		t.Fatal("Collect() on a missing directory should fail")
	}
	if !strings.Contains(err.Error(), "failed to read directory") {
		t.Errorf("error = %q, want a read-directory failure", err)
	}
}

func TestWriteReport(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	tmp := buildTree(t)
	r, err := Collect(tmp)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	buf := &bytes.Buffer{}
	r.Write(buf)
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if lines[0] != tmp {
		t.Errorf("header = %q, want %q", lines[0], tmp)
	}
	for _, want := range []string{
		"🧮 Total Size    : 5.0 KiB",
		"🗂️  Directories   : 1",
		"🌳 Max Depth     : 2 levels",
		"🗃️  Files         : 3",
		"🔗 Symlinks      : 1",
		"👻 Hidden        : 1",
		"📭 Empty Files   : 1 [empty.txt]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}

	if !strings.Contains(out, "big.bin [4.9 KiB]") {
		t.Errorf("report missing largest file tag:\n%s", out)
	}
	if !strings.Contains(out, "🏺 Oldest File   : a.txt [2020-01-01 12:00:00, ") {
		t.Errorf("report missing oldest file line:\n%s", out)
	}
}

func TestWriteReportEmpty(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	r, err := Collect(t.TempDir())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	buf := &bytes.Buffer{}
	r.Write(buf)
	out := buf.String()

	for _, want := range []string{
		"🐘 Largest File  : -",
		"🏺 Oldest File   : -",
		"🆕 Newest File   : -",
		"📭 Empty Files   : 0 []",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
