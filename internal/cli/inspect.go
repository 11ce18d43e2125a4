package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/timestamp"
)

func NewInspectCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show codec, resolution and audio details of a media file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.App.Engine.Check(); err != nil {
				return err
			}

			path := args[0]
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("inspecting %s: %w", path, err)
			}

			ctx := cmd.Context()
			deps.Formatter.MediaInfo(filepath.Base(path), deps.App.Engine.Inspect(ctx, path))
			if dur, err := deps.App.Engine.Duration(ctx, path); err == nil {
				deps.Formatter.Info("Duration: " + timestamp.Format(int(dur)))
			}
			return nil
		},
	}
}
