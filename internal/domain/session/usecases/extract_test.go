package usecases

import (
	"context"
	"errors"
	"testing"
)

func TestExtractPassesEncodingSettings(t *testing.T) {
	engine, runner := newStageEngine()
	e := &Extract{Engine: engine, Bitrate: "320k", SampleRate: 48000}

	if err := e.Execute(context.Background(), "in.mp4", "show_audio.mp3"); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if len(runner.calls) != 1 {
		t.Fatalf("engine invoked %d times, want 1", len(runner.calls))
	}
	args := runner.calls[0].args
	if !hasArgPair(args, "-b:a", "320k") {
		t.Errorf("args %v missing bitrate", args)
	}
	if !hasArgPair(args, "-ar", "48000") {
		t.Errorf("args %v missing sample rate", args)
	}
	if args[len(args)-1] != "show_audio.mp3" {
		t.Errorf("last arg = %q, want output path", args[len(args)-1])
	}
}

func TestExtractFailure(t *testing.T) {
	engine, _ := newStageEngine(fakeResult{err: errors.New("exit status 1")})
	e := &Extract{Engine: engine, Bitrate: "320k", SampleRate: 48000}

	if err := e.Execute(context.Background(), "in.mp4", "show_audio.mp3"); err == nil {
		t.Fatal("Execute succeeded, want error")
	}
}
