package ffmpeg

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestInspectMapsFields(t *testing.T) {
	client, _ := newTestClient(
		fakeResult{stdout: "h264\n"},
		fakeResult{stdout: "aac\n"},
		fakeResult{stdout: "1920x1080\n"},
		fakeResult{stdout: "30000/1001\n"},
		fakeResult{stdout: "48000\n"},
		fakeResult{stdout: "192000\n"},
	)

	info := client.Inspect(context.Background(), "in.mp4")

	want := MediaInfo{
		VideoCodec:   "h264",
		AudioCodec:   "aac",
		Resolution:   "1920x1080",
		FrameRate:    "30000/1001",
		SampleRate:   "48000",
		AudioBitrate: "192000",
	}
	if !reflect.DeepEqual(info, want) {
		t.Errorf("Inspect = %+v, want %+v", info, want)
	}
}

func TestInspectFieldFailuresAreIndependent(t *testing.T) {
	client, _ := newTestClient(
		fakeResult{stdout: "h264\n"},
		fakeResult{err: errors.New("exit status 1")},
		fakeResult{stdout: "1920x1080\n"},
		fakeResult{stdout: ""},
		fakeResult{stdout: "48000\n"},
		fakeResult{stdout: "192000\n"},
	)

	info := client.Inspect(context.Background(), "in.mp4")

	if info.VideoCodec != "h264" {
		t.Errorf("VideoCodec = %q, want h264", info.VideoCodec)
	}
	if info.AudioCodec != "unknown" {
		t.Errorf("AudioCodec = %q, want unknown after failed query", info.AudioCodec)
	}
	if info.FrameRate != "unknown" {
		t.Errorf("FrameRate = %q, want unknown after empty query", info.FrameRate)
	}
	if info.SampleRate != "48000" {
		t.Errorf("SampleRate = %q, want 48000", info.SampleRate)
	}
}

func TestDuration(t *testing.T) {
	client, runner := newTestClient(fakeResult{stdout: "60.042000\n"})

	dur, err := client.Duration(context.Background(), "in.mp4")
	if err != nil {
		t.Fatalf("Duration returned error: %v", err)
	}
	if math.Abs(dur-60.042) > 1e-9 {
		t.Errorf("Duration = %v, want 60.042", dur)
	}
	if runner.calls[0].name != "ffprobe" {
		t.Errorf("binary = %q, want ffprobe", runner.calls[0].name)
	}
}

func TestDurationUnparsable(t *testing.T) {
	client, _ := newTestClient(fakeResult{stdout: "N/A\n"})

	if _, err := client.Duration(context.Background(), "in.mp4"); err == nil {
		t.Fatal("Duration succeeded on unparsable output")
	}
}

func TestMeasurePeak(t *testing.T) {
	stderr := `[Parsed_volumedetect_0 @ 0x7f8] n_samples: 5760000
[Parsed_volumedetect_0 @ 0x7f8] mean_volume: -21.4 dB
[Parsed_volumedetect_0 @ 0x7f8] max_volume: -3.0 dB
`
	client, _ := newTestClient(fakeResult{stderr: stderr})

	peak, err := client.MeasurePeak(context.Background(), "in.mp4")
	if err != nil {
		t.Fatalf("MeasurePeak returned error: %v", err)
	}
	if peak != -3.0 {
		t.Errorf("peak = %v, want -3.0", peak)
	}
}

func TestMeasurePeakPositiveValue(t *testing.T) {
	client, _ := newTestClient(fakeResult{stderr: "max_volume: 0.0 dB\n"})

	peak, err := client.MeasurePeak(context.Background(), "in.mp4")
	if err != nil {
		t.Fatalf("MeasurePeak returned error: %v", err)
	}
	if peak != 0.0 {
		t.Errorf("peak = %v, want 0.0", peak)
	}
}

func TestMeasurePeakMissing(t *testing.T) {
	client, _ := newTestClient(fakeResult{stderr: "some unrelated output\n"})

	_, err := client.MeasurePeak(context.Background(), "in.mp4")
	if !errors.Is(err, ErrNoPeak) {
		t.Fatalf("error = %v, want ErrNoPeak", err)
	}
}

func TestMeasurePeakEngineFailure(t *testing.T) {
	client, _ := newTestClient(fakeResult{
		stderr: "Output file does not contain any stream",
		err:    errors.New("exit status 1"),
	})

	_, err := client.MeasurePeak(context.Background(), "in.mp4")
	if err == nil {
		t.Fatal("MeasurePeak succeeded, want error")
	}
	if errors.Is(err, ErrNoPeak) {
		t.Fatalf("engine failure reported as ErrNoPeak: %v", err)
	}
}
