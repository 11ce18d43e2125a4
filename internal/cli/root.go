package cli

import (
	"github.com/spf13/cobra"

	"github.com/juandelacruz-calvo/obs-output-video-tools/config"
	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/app"
	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/output"
	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/version"
)

type Dependencies struct {
	App       *app.App
	Config    *config.Config
	Formatter *output.Formatter
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "obsvideo [input_directory] [output_prefix]",
		Short: "Merge, trim and normalize OBS recordings",
		Long: "Merge the MP4 files in a directory into one video without re-encoding,\n" +
			"optionally cut it, normalize its peak audio loudness and extract an MP3.\n" +
			"The input directory defaults to the working directory, the output prefix\n" +
			"to \"processed\".",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd.Context(), deps, args)
		},
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.AddCommand(NewInspectCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}
