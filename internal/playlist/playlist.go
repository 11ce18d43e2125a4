// Package playlist discovers the input files of a run and writes the
// manifest the merge stage feeds to the engine's concat demuxer.
package playlist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ErrNoFiles is returned when the input directory exists but contains no
// matching files.
var ErrNoFiles = errors.New("no input files found")

// Playlist is an ordered set of absolute input paths from one directory.
// It is built once by Discover and not modified afterwards.
type Playlist struct {
	Dir   string
	Files []string
}

// Discover lists the files in dir whose name ends with ext
// (case-sensitive), non-recursively, sorted by name ascending. dir is
// resolved to its absolute form first.
func Discover(dir, ext string) (*Playlist, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving input directory: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("input directory %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input path %s is not a directory", abs)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		files = append(files, filepath.Join(abs, e.Name()))
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no *%s files in %s", ErrNoFiles, ext, abs)
	}

	return &Playlist{Dir: abs, Files: files}, nil
}

// WriteManifest writes the concat manifest to the system temp directory
// and returns its path together with a cleanup function. Single quotes in
// paths are escaped for the engine's quoting rules.
func (p *Playlist) WriteManifest() (string, func(), error) {
	path := filepath.Join(os.TempDir(), "obsvideo_playlist_"+uuid.NewString()+".txt")

	var b strings.Builder
	for _, f := range p.Files {
		quoted := strings.ReplaceAll(f, "'", `'\''`)
		fmt.Fprintf(&b, "file '%s'\n", quoted)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", nil, fmt.Errorf("writing playlist manifest: %w", err)
	}

	cleanup := func() { os.Remove(path) }
	return path, cleanup, nil
}
