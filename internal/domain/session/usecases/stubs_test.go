package usecases

import (
	"context"
	"io"

	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/ffmpeg"
	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/output"
)

// scriptedAsker replays canned answers; an exhausted script reports EOF
// like a closed stdin would.
type scriptedAsker struct {
	answers  []string
	confirms []bool
}

func (s *scriptedAsker) Ask(string) (string, error) {
	if len(s.answers) == 0 {
		return "", io.ErrUnexpectedEOF
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func (s *scriptedAsker) Confirm(string, bool) (bool, error) {
	if len(s.confirms) == 0 {
		return false, io.ErrUnexpectedEOF
	}
	c := s.confirms[0]
	s.confirms = s.confirms[1:]
	return c, nil
}

type call struct {
	name string
	args []string
}

type fakeResult struct {
	stdout string
	stderr string
	err    error
}

type fakeRunner struct {
	calls   []call
	results []fakeResult
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	if len(f.results) == 0 {
		return nil, nil, nil
	}
	r := f.results[0]
	f.results = f.results[1:]
	return []byte(r.stdout), []byte(r.stderr), r.err
}

func newStageEngine(results ...fakeResult) (*ffmpeg.Client, *fakeRunner) {
	runner := &fakeRunner{results: results}
	return ffmpeg.NewClientWithRunner("ffmpeg", "ffprobe", runner), runner
}

func discardLog() *output.Formatter {
	return output.NewFormatter(io.Discard)
}

// hasArgPair reports whether args contains flag immediately followed by value.
func hasArgPair(args []string, flag, value string) bool {
	for i := 0; i+1 < len(args); i++ {
		if args[i] == flag && args[i+1] == value {
			return true
		}
	}
	return false
}
