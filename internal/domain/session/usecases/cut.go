package usecases

import (
	"context"
	"fmt"

	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/domain/session"
	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/ffmpeg"
	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/output"
	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/prompt"
	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/timestamp"
)

// Cut interactively trims the current artifact by stream copy.
type Cut struct {
	Engine *ffmpeg.Client
	Asker  prompt.Asker
	Log    *output.Formatter
}

// CutResult carries the stage's terminal state and its artifact, if any.
type CutResult struct {
	Outcome session.CutOutcome
	Output  string
}

// Execute walks the confirm/start/end prompt flow and trims on
// confirmation. totalDuration is the input's length in seconds; both cut
// points are validated against it before the engine is invoked. An engine
// failure is non-fatal and reported through the outcome.
func (c *Cut) Execute(ctx context.Context, input, outputPath string, totalDuration float64) (*CutResult, error) {
	wants, err := c.Asker.Confirm("Do you want to cut the merged video?", false)
	if err != nil {
		return nil, err
	}
	if !wants {
		return &CutResult{Outcome: session.CutSkipped}, nil
	}

	start, err := c.askSeconds("Cut start (HH:MM:SS, MM:SS or SS): ", func(sec int) error {
		if float64(sec) >= totalDuration {
			return fmt.Errorf("start must be before the end of the video (%s)", timestamp.Format(int(totalDuration)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	end, err := c.askSeconds("Cut end (HH:MM:SS, MM:SS or SS): ", func(sec int) error {
		if sec <= start {
			return fmt.Errorf("end must be after the start (%s)", timestamp.Format(start))
		}
		if float64(sec) > totalDuration {
			return fmt.Errorf("end must be within the video (%s)", timestamp.Format(int(totalDuration)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := c.Engine.Trim(ctx, input, outputPath, start, end-start); err != nil {
		c.Log.Warning(err.Error())
		return &CutResult{Outcome: session.CutFailed}, nil
	}
	return &CutResult{Outcome: session.CutDone, Output: outputPath}, nil
}

// askSeconds re-prompts until the answer parses and passes check.
func (c *Cut) askSeconds(question string, check func(int) error) (int, error) {
	for {
		answer, err := c.Asker.Ask(question)
		if err != nil {
			return 0, err
		}
		sec, err := timestamp.Seconds(answer)
		if err != nil {
			c.Log.Warning(err.Error())
			continue
		}
		if err := check(sec); err != nil {
			c.Log.Warning(err.Error())
			continue
		}
		return sec, nil
	}
}
