package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOutputPaths(t *testing.T) {
	s := New("/videos", "/work", "show")

	cases := []struct {
		got  string
		want string
	}{
		{s.MergedPath(), "/work/show_merged.mp4"},
		{s.CutPath(), "/work/show_cut.mp4"},
		{s.NormalizedPath(), "/work/show_normalized.mp4"},
		{s.AudioPath(), "/work/show_audio.mp3"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("path = %q, want %q", tc.got, tc.want)
		}
	}
}

func TestAdvance(t *testing.T) {
	s := New("/videos", "/work", "show")

	s.Advance(s.MergedPath())
	if s.Current != s.MergedPath() {
		t.Fatalf("Current = %q, want merged path", s.Current)
	}

	s.Advance(s.CutPath())
	if s.Current != s.CutPath() {
		t.Fatalf("Current = %q, want cut path", s.Current)
	}
}

func TestExistingOutputs(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, dir, "show")

	writeFile := func(path string, size int) {
		t.Helper()
		if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
			t.Fatalf("creating %s: %v", path, err)
		}
	}
	writeFile(s.MergedPath(), 10)
	writeFile(s.AudioPath(), 20)
	// unrelated file with the prefix is not a candidate output
	writeFile(filepath.Join(dir, "show_notes.mp4"), 5)

	outs := s.ExistingOutputs()
	if len(outs) != 2 {
		t.Fatalf("got %d outputs %v, want 2", len(outs), outs)
	}
	if outs[0].Path != s.MergedPath() || outs[0].Size != 10 {
		t.Errorf("outputs[0] = %+v, want merged with size 10", outs[0])
	}
	if outs[1].Path != s.AudioPath() || outs[1].Size != 20 {
		t.Errorf("outputs[1] = %+v, want audio with size 20", outs[1])
	}
}

func TestCutOutcomeString(t *testing.T) {
	cases := []struct {
		outcome CutOutcome
		want    string
	}{
		{CutSkipped, "skipped"},
		{CutDone, "done"},
		{CutFailed, "failed"},
	}
	for _, tc := range cases {
		if got := tc.outcome.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
