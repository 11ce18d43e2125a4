package cli

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := deps.Formatter
			ok := true

			if _, err := exec.LookPath(deps.Config.FFmpegPath); err != nil {
				f.SetupCheck("ffmpeg", false, "not found. Install ffmpeg and make sure it is on your PATH")
				ok = false
			} else if v, err := deps.App.Engine.Version(cmd.Context()); err == nil {
				f.SetupCheck("ffmpeg", true, v)
			} else {
				f.SetupCheck("ffmpeg", true, "installed")
			}

			if _, err := exec.LookPath(deps.Config.FFprobePath); err != nil {
				f.SetupCheck("ffprobe", false, "not found. It ships with ffmpeg")
				ok = false
			} else {
				f.SetupCheck("ffprobe", true, "installed")
			}

			f.SetupCheck("Input extension", true, deps.Config.Extension)
			f.SetupCheck("Output prefix", true, deps.Config.Prefix)
			f.SetupCheck("Target peak", true, fmt.Sprintf("%.1f dB", deps.Config.TargetPeak))
			f.SetupCheck("MP3", true, fmt.Sprintf("%s at %d Hz", deps.Config.MP3Bitrate, deps.Config.MP3Rate))

			if ok {
				f.Success("\nAll prerequisites met")
			} else {
				f.Warning("\nSome prerequisites are missing")
			}
			return nil
		},
	}
}
