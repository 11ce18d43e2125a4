package app

import (
	"github.com/juandelacruz-calvo/obs-output-video-tools/config"
	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/domain/session/usecases"
	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/ffmpeg"
	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/output"
	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/prompt"
)

// App wires the engine client and the pipeline stages.
type App struct {
	Engine    *ffmpeg.Client
	Merge     *usecases.Merge
	Cut       *usecases.Cut
	Normalize *usecases.Normalize
	Extract   *usecases.Extract
}

// New builds the application graph. The formatter and asker are shared by
// every stage so all output and prompting go through one stream pair.
func New(cfg *config.Config, formatter *output.Formatter, asker prompt.Asker) *App {
	engine := ffmpeg.NewClient(cfg.FFmpegPath, cfg.FFprobePath)

	return &App{
		Engine: engine,
		Merge: &usecases.Merge{
			Engine: engine,
			Asker:  asker,
			Log:    formatter,
		},
		Cut: &usecases.Cut{
			Engine: engine,
			Asker:  asker,
			Log:    formatter,
		},
		Normalize: &usecases.Normalize{
			Engine:   engine,
			TargetDB: cfg.TargetPeak,
			Log:      formatter,
		},
		Extract: &usecases.Extract{
			Engine:     engine,
			Bitrate:    cfg.MP3Bitrate,
			SampleRate: cfg.MP3Rate,
		},
	}
}
