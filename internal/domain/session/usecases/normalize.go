package usecases

import (
	"context"
	"fmt"
	"os"

	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/ffmpeg"
	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/output"
)

// Normalize raises peak audio loudness to the target level.
type Normalize struct {
	Engine   *ffmpeg.Client
	TargetDB float64
	Log      *output.Formatter
}

// NormalizeResult reports how the target was reached.
type NormalizeResult struct {
	Output  string
	Peak    float64
	Gain    float64
	Renamed bool // already at or above target: artifact moved, nothing re-encoded
}

// Execute measures the input's peak volume. At or above the target the
// input is moved to outputPath as-is; below it a gain-adjusted copy is
// written and the input left in place.
func (n *Normalize) Execute(ctx context.Context, input, outputPath string) (*NormalizeResult, error) {
	peak, err := n.Engine.MeasurePeak(ctx, input)
	if err != nil {
		return nil, err
	}

	if peak >= n.TargetDB {
		n.Log.Info(fmt.Sprintf("Peak volume %.1f dB already at the %.1f dB target, no re-encode needed", peak, n.TargetDB))
		if err := os.Rename(input, outputPath); err != nil {
			return nil, fmt.Errorf("moving %s to %s: %w", input, outputPath, err)
		}
		return &NormalizeResult{Output: outputPath, Peak: peak, Renamed: true}, nil
	}

	gain := n.TargetDB - peak
	n.Log.Info(fmt.Sprintf("Peak volume %.1f dB, applying %.1f dB gain", peak, gain))
	if err := n.Engine.ApplyGain(ctx, input, outputPath, gain); err != nil {
		return nil, err
	}
	return &NormalizeResult{Output: outputPath, Peak: peak, Gain: gain}, nil
}
