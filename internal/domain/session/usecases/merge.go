// Package usecases holds the pipeline stages. Each stage is a struct
// wired with its dependencies and driven through Execute.
package usecases

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/ffmpeg"
	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/output"
	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/prompt"
)

// ErrCancelled reports that the user chose to abort the run.
var ErrCancelled = errors.New("cancelled by user")

// Merge concatenates the playlist manifest into the merged output.
type Merge struct {
	Engine *ffmpeg.Client
	Asker  prompt.Asker
	Log    *output.Formatter
}

// ResolveExisting decides what to do when the merge output is already on
// disk: reuse it (true), overwrite it (false), or abort the run
// (ErrCancelled). When nothing is on disk the merge proceeds directly.
func (m *Merge) ResolveExisting(outputPath string) (bool, error) {
	if _, err := os.Stat(outputPath); err != nil {
		return false, nil
	}

	m.Log.Warning(fmt.Sprintf("%s already exists", outputPath))
	for {
		answer, err := m.Asker.Ask("[s]kip merge and reuse it, [o]verride, or [c]ancel? ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "s", "skip":
			return true, nil
		case "o", "override":
			return false, nil
		case "c", "cancel":
			return false, ErrCancelled
		}
		m.Log.Warning("Answer s, o or c")
	}
}

// Execute concatenates the manifest's entries into outputPath without
// re-encoding. On an incompatible-input failure the engine's suggested
// re-encode is logged before the error is returned.
func (m *Merge) Execute(ctx context.Context, manifestPath, outputPath string) error {
	if err := m.Engine.Concat(ctx, manifestPath, outputPath); err != nil {
		var cerr *ffmpeg.ConcatError
		if errors.As(err, &cerr) {
			m.Log.Info("The inputs may need a re-encode. Try: " + cerr.FallbackCommand())
		}
		return err
	}
	return nil
}
