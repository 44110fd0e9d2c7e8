package gitstat

import "testing"

func TestStatusLetter(t *testing.T) {
	tests := []struct {
		code string
		want byte
	}{
		{"??", 'U'},
		{"!!", 'I'},
		{"M ", 'M'},
		{" M", 'M'},
		{"A ", 'A'},
		{" D", 'D'},
		{"MM", 'M'},
		{"RM", 'R'},
	}
	for _, tt := range tests {
		if got := statusLetter(tt.code); got != tt.want {
			t.Errorf("statusLetter(%q) = %c, want %c", tt.code, got, tt.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	out := "?? new.txt\n M modified.go\nA  staged.go\n!! ignored.log\n?? docs/\n\n"

	statuses := parseStatus(out)
	want := map[string]byte{
		"new.txt":     'U',
		"modified.go": 'M',
		"staged.go":   'A',
		"ignored.log": 'I',
		"docs/":       'U',
	}
	if len(statuses) != len(want) {
		t.Fatalf("parsed %d records, want %d", len(statuses), len(want))
	}
	for path, letter := range want {
		if got := statuses[path]; got != letter {
			t.Errorf("statuses[%q] = %c, want %c", path, got, letter)
		}
	}
}

func TestParseStatusSkipsShortLines(t *testing.T) {
	if statuses := parseStatus("M\n??\n"); len(statuses) != 0 {
		t.Errorf("parsed %d records from malformed output, want 0", len(statuses))
	}
}

func TestLookup(t *testing.T) {
	s := &Summary{status: map[string]byte{
		"main.go": 'M',
		"docs/":   'U',
	}}

	if c, ok := s.Lookup("main.go"); !ok || c != 'M' {
		t.Errorf("Lookup(main.go) = %c, %v; want M, true", c, ok)
	}
	// Untracked directories are recorded with a trailing slash.
	if c, ok := s.Lookup("docs"); !ok || c != 'U' {
		t.Errorf("Lookup(docs) = %c, %v; want U, true", c, ok)
	}
	if _, ok := s.Lookup("absent.go"); ok {
		t.Error("Lookup(absent.go) reported a status")
	}
}

func TestLookupNilSummary(t *testing.T) {
	var s *Summary
	if _, ok := s.Lookup("anything"); ok {
		t.Error("nil summary reported a status")
	}
}

func TestForOutsideWorkTree(t *testing.T) {
	// A fresh temp directory is not a git work tree. This also holds
	// when git is not installed at all.
	if s := For(t.TempDir()); s != nil {
		t.Errorf("For(temp dir) = %+v, want nil", s)
	}
}
