// Package ffmpeg wraps the external ffmpeg and ffprobe binaries behind a
// typed client. Every command line built for the engine and every parse of
// its output lives in this package.
package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Runner executes one external command and returns its captured output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// Client invokes the media engine. FFmpeg and FFprobe hold the binary
// names or paths used for every invocation.
type Client struct {
	FFmpeg  string
	FFprobe string

	runner Runner
}

func NewClient(ffmpegPath, ffprobePath string) *Client {
	return &Client{FFmpeg: ffmpegPath, FFprobe: ffprobePath, runner: execRunner{}}
}

// NewClientWithRunner builds a client on a caller-supplied runner.
func NewClientWithRunner(ffmpegPath, ffprobePath string, r Runner) *Client {
	return &Client{FFmpeg: ffmpegPath, FFprobe: ffprobePath, runner: r}
}

// Check verifies that both engine binaries can be located before any file
// is touched.
func (c *Client) Check() error {
	for _, bin := range []string{c.FFmpeg, c.FFprobe} {
		if _, err := exec.LookPath(bin); err != nil {
			return fmt.Errorf("%s not found. Install ffmpeg and make sure it is on your PATH", bin)
		}
	}
	return nil
}

// Version returns the first line of the engine's version banner.
func (c *Client) Version(ctx context.Context) (string, error) {
	stdout, _, err := c.runner.Run(ctx, c.FFmpeg, "-version")
	if err != nil {
		return "", fmt.Errorf("querying %s version: %w", c.FFmpeg, err)
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(stdout)), "\n")
	return line, nil
}

// ConcatError carries the engine's stderr from a failed concatenation so
// the caller can surface it together with a re-encode suggestion.
type ConcatError struct {
	ListPath string
	Output   string
	Stderr   string
	Err      error
}

func (e *ConcatError) Error() string {
	msg := fmt.Sprintf("concatenating inputs: %v", e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += "\n" + s
	}
	return msg
}

func (e *ConcatError) Unwrap() error { return e.Err }

// FallbackCommand suggests a lossy re-encode for inputs whose codec
// parameters do not allow demuxer-level concatenation.
func (e *ConcatError) FallbackCommand() string {
	return fmt.Sprintf("ffmpeg -f concat -safe 0 -i %s -c:v libx264 -c:a aac %s", e.ListPath, e.Output)
}

// Concat joins the manifest's entries into output without re-encoding.
// Missing presentation timestamps are generated and negative timestamps
// shifted to zero, which concatenation tends to introduce.
func (c *Client) Concat(ctx context.Context, listPath, output string) error {
	_, stderr, err := c.runner.Run(ctx, c.FFmpeg,
		"-hide_banner", "-loglevel", "error",
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-fflags", "+genpts",
		"-i", listPath,
		"-c", "copy",
		"-avoid_negative_ts", "make_zero",
		output,
	)
	if err != nil {
		return &ConcatError{ListPath: listPath, Output: output, Stderr: string(stderr), Err: err}
	}
	return nil
}

// Trim extracts durationSec seconds starting at startSec via stream copy.
func (c *Client) Trim(ctx context.Context, input, output string, startSec, durationSec int) error {
	_, stderr, err := c.runner.Run(ctx, c.FFmpeg,
		"-hide_banner", "-loglevel", "error",
		"-y",
		"-ss", strconv.Itoa(startSec),
		"-i", input,
		"-t", strconv.Itoa(durationSec),
		"-c", "copy",
		output,
	)
	if err != nil {
		return fmt.Errorf("trimming %s: %w\n%s", input, err, strings.TrimSpace(string(stderr)))
	}
	return nil
}

// ApplyGain raises the audio level by gainDB while copying the video
// stream unchanged.
func (c *Client) ApplyGain(ctx context.Context, input, output string, gainDB float64) error {
	_, stderr, err := c.runner.Run(ctx, c.FFmpeg,
		"-hide_banner", "-loglevel", "error",
		"-y",
		"-i", input,
		"-af", fmt.Sprintf("volume=%.1fdB", gainDB),
		"-c:v", "copy",
		output,
	)
	if err != nil {
		return fmt.Errorf("applying %.1f dB gain to %s: %w\n%s", gainDB, input, err, strings.TrimSpace(string(stderr)))
	}
	return nil
}

// ExtractMP3 drops the video stream and encodes the audio as MP3 at the
// given bitrate and sample rate.
func (c *Client) ExtractMP3(ctx context.Context, input, output, bitrate string, sampleRate int) error {
	_, stderr, err := c.runner.Run(ctx, c.FFmpeg,
		"-hide_banner", "-loglevel", "error",
		"-y",
		"-i", input,
		"-vn",
		"-acodec", "libmp3lame",
		"-b:a", bitrate,
		"-ar", strconv.Itoa(sampleRate),
		output,
	)
	if err != nil {
		return fmt.Errorf("extracting audio from %s: %w\n%s", input, err, strings.TrimSpace(string(stderr)))
	}
	return nil
}
