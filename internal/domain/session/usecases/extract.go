package usecases

import (
	"context"

	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/ffmpeg"
)

// Extract writes the current artifact's audio track as an MP3.
type Extract struct {
	Engine     *ffmpeg.Client
	Bitrate    string
	SampleRate int
}

// Execute encodes input's audio into outputPath, discarding the video.
func (e *Extract) Execute(ctx context.Context, input, outputPath string) error {
	return e.Engine.ExtractMP3(ctx, input, outputPath, e.Bitrate, e.SampleRate)
}
