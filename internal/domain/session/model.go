// Package session models one processing run: the output paths derived
// from the prefix and the artifact chain the stages hand forward.
package session

import (
	"os"
	"path/filepath"
)

// CutOutcome is the terminal state of the interactive cut stage.
type CutOutcome int

const (
	CutSkipped CutOutcome = iota
	CutDone
	CutFailed
)

func (o CutOutcome) String() string {
	switch o {
	case CutDone:
		return "done"
	case CutFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// Session tracks one run. Current always names the newest usable video
// artifact; a stage that fails leaves it unchanged so the next stage
// falls back to the previous output.
type Session struct {
	InputDir string
	OutDir   string
	Prefix   string

	Current string

	MergeReused bool
	Cut         CutOutcome
	Normalized  bool
	Extracted   bool
}

// New builds a session writing its outputs into outDir.
func New(inputDir, outDir, prefix string) *Session {
	return &Session{InputDir: inputDir, OutDir: outDir, Prefix: prefix}
}

func (s *Session) MergedPath() string     { return s.outPath("_merged.mp4") }
func (s *Session) CutPath() string        { return s.outPath("_cut.mp4") }
func (s *Session) NormalizedPath() string { return s.outPath("_normalized.mp4") }
func (s *Session) AudioPath() string      { return s.outPath("_audio.mp3") }

func (s *Session) outPath(suffix string) string {
	return filepath.Join(s.OutDir, s.Prefix+suffix)
}

// Advance records path as the artifact the next stage consumes.
func (s *Session) Advance(path string) {
	s.Current = path
}

// Output describes one produced file for the end-of-run summary.
type Output struct {
	Path string
	Size int64
}

// ExistingOutputs stats each candidate output path and returns those
// present on disk, in pipeline order, regardless of which stages ran.
func (s *Session) ExistingOutputs() []Output {
	var outs []Output
	for _, p := range []string{s.MergedPath(), s.CutPath(), s.NormalizedPath(), s.AudioPath()} {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			outs = append(outs, Output{Path: p, Size: info.Size()})
		}
	}
	return outs
}
