package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoPeak is returned when the loudness pass reports no peak volume.
var ErrNoPeak = errors.New("no peak volume reported")

const unknownField = "unknown"

// MediaInfo describes one file's streams. Fields the engine cannot supply
// hold "unknown".
type MediaInfo struct {
	VideoCodec   string
	AudioCodec   string
	Resolution   string
	FrameRate    string
	SampleRate   string
	AudioBitrate string
}

// Inspect queries each descriptor field independently; a failed query
// leaves that field as "unknown" instead of failing the whole inspection.
func (c *Client) Inspect(ctx context.Context, path string) MediaInfo {
	return MediaInfo{
		VideoCodec:   c.probeField(ctx, path, "v:0", "stream=codec_name", ""),
		AudioCodec:   c.probeField(ctx, path, "a:0", "stream=codec_name", ""),
		Resolution:   c.probeField(ctx, path, "v:0", "stream=width,height", "x"),
		FrameRate:    c.probeField(ctx, path, "v:0", "stream=r_frame_rate", ""),
		SampleRate:   c.probeField(ctx, path, "a:0", "stream=sample_rate", ""),
		AudioBitrate: c.probeField(ctx, path, "a:0", "stream=bit_rate", ""),
	}
}

// probeField runs one ffprobe query and returns its trimmed value, or
// "unknown" when the query fails or yields nothing. A non-empty sep joins
// multi-value entries (width,height as WxH).
func (c *Client) probeField(ctx context.Context, path, streams, entries, sep string) string {
	format := "csv=p=0"
	if sep != "" {
		format = "csv=s=" + sep + ":p=0"
	}
	stdout, _, err := c.runner.Run(ctx, c.FFprobe,
		"-v", "error",
		"-select_streams", streams,
		"-show_entries", entries,
		"-of", format,
		path,
	)
	value := strings.TrimSpace(string(stdout))
	if err != nil || value == "" {
		return unknownField
	}
	return value
}

// Duration returns the container duration in seconds.
func (c *Client) Duration(ctx context.Context, path string) (float64, error) {
	stdout, _, err := c.runner.Run(ctx, c.FFprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "csv=p=0",
		path,
	)
	if err != nil {
		return 0, fmt.Errorf("querying duration of %s: %w", path, err)
	}
	value := strings.TrimSpace(string(stdout))
	dur, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing duration %q of %s: %w", value, path, err)
	}
	return dur, nil
}

var maxVolumeRe = regexp.MustCompile(`max_volume:\s*(-?\d+(?:\.\d+)?)\s*dB`)

// MeasurePeak decodes the audio once, writing nothing, and reports the
// peak level in dBFS as found by the engine's volumedetect filter.
func (c *Client) MeasurePeak(ctx context.Context, path string) (float64, error) {
	_, stderr, err := c.runner.Run(ctx, c.FFmpeg,
		"-hide_banner",
		"-i", path,
		"-af", "volumedetect",
		"-vn",
		"-f", "null", "-",
	)
	if err != nil {
		return 0, fmt.Errorf("measuring peak volume of %s: %w\n%s", path, err, strings.TrimSpace(string(stderr)))
	}
	m := maxVolumeRe.FindSubmatch(stderr)
	if m == nil {
		return 0, fmt.Errorf("%w for %s", ErrNoPeak, path)
	}
	peak, err := strconv.ParseFloat(string(m[1]), 64)
	if err != nil {
		return 0, fmt.Errorf("parsing peak volume %q: %w", m[1], err)
	}
	return peak, nil
}
