package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/domain/session"
	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/domain/session/usecases"
	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/playlist"
)

// runPipeline drives the discover → merge → cut → normalize → extract
// sequence for the root command.
func runPipeline(ctx context.Context, deps *Dependencies, args []string) error {
	f := deps.Formatter

	inputDir := "."
	if len(args) > 0 {
		inputDir = args[0]
	}
	prefix := deps.Config.Prefix
	if len(args) > 1 {
		prefix = args[1]
	}

	if err := deps.App.Engine.Check(); err != nil {
		return err
	}

	list, err := playlist.Discover(inputDir, deps.Config.Extension)
	if err != nil {
		return err
	}

	outDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	sess := session.New(list.Dir, outDir, prefix)

	names := make([]string, len(list.Files))
	for i, p := range list.Files {
		names[i] = filepath.Base(p)
	}
	f.FilesFound(list.Dir, names)
	f.MediaInfo(names[0], deps.App.Engine.Inspect(ctx, list.Files[0]))

	manifest, cleanup, err := list.WriteManifest()
	if err != nil {
		return err
	}
	defer cleanup()

	// Remove the manifest even when a signal ends the run mid-stage.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		cleanup()
		os.Exit(1)
	}()

	// Merge, or reuse an earlier merge
	reuse, err := deps.App.Merge.ResolveExisting(sess.MergedPath())
	if errors.Is(err, usecases.ErrCancelled) {
		f.Info("Cancelled, nothing changed")
		return nil
	}
	if err != nil {
		return err
	}
	if reuse {
		f.Info(fmt.Sprintf("Reusing existing %s", sess.MergedPath()))
		sess.MergeReused = true
	} else {
		f.Info(fmt.Sprintf("Merging %d files into %s", len(list.Files), sess.MergedPath()))
		if err := deps.App.Merge.Execute(ctx, manifest, sess.MergedPath()); err != nil {
			return err
		}
	}
	sess.Advance(sess.MergedPath())
	reportArtifact(ctx, deps, "Merged", sess.Current)

	// Optional interactive cut
	total, err := deps.App.Engine.Duration(ctx, sess.Current)
	if err != nil {
		f.Warning(fmt.Sprintf("Skipping cut, duration unknown: %v", err))
	} else {
		cutRes, err := deps.App.Cut.Execute(ctx, sess.Current, sess.CutPath(), total)
		if err != nil {
			return err
		}
		sess.Cut = cutRes.Outcome
		switch cutRes.Outcome {
		case session.CutDone:
			sess.Advance(cutRes.Output)
			reportArtifact(ctx, deps, "Cut", sess.Current)
		case session.CutFailed:
			f.Warning("Cut failed, continuing with the merged video")
		}
	}

	// Peak normalization
	normRes, err := deps.App.Normalize.Execute(ctx, sess.Current, sess.NormalizedPath())
	if err != nil {
		f.Warning(fmt.Sprintf("Normalization failed: %v", err))
		f.Warning("Continuing with the un-normalized video")
	} else {
		sess.Normalized = true
		sess.Advance(normRes.Output)
		reportArtifact(ctx, deps, "Normalized", sess.Current)
	}

	// MP3 extraction
	f.Info(fmt.Sprintf("Extracting MP3 to %s", sess.AudioPath()))
	if err := deps.App.Extract.Execute(ctx, sess.Current, sess.AudioPath()); err != nil {
		f.Warning(fmt.Sprintf("MP3 extraction failed: %v", err))
	} else {
		sess.Extracted = true
		reportArtifact(ctx, deps, "Audio", sess.AudioPath())
	}

	f.SummaryHeader()
	for _, out := range sess.ExistingOutputs() {
		f.SummaryItem(out.Path, out.Size)
	}
	f.Success("Done")
	return nil
}

// reportArtifact prints a produced file's size and duration. Reporting is
// informational and never interrupts the run.
func reportArtifact(ctx context.Context, deps *Dependencies, label, path string) {
	info, err := os.Stat(path)
	if err != nil {
		deps.Formatter.Warning(fmt.Sprintf("Could not stat %s: %v", path, err))
		return
	}
	seconds := 0
	if dur, err := deps.App.Engine.Duration(ctx, path); err == nil {
		seconds = int(dur)
	}
	deps.Formatter.StageDone(label, path, info.Size(), seconds)
}
