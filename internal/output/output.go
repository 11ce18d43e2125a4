package output

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/ffmpeg"
	"github.com/juandelacruz-calvo/obs-output-video-tools/internal/timestamp"
)

// Formatter writes user-facing progress for the pipeline. Each stage
// receives an instance; nothing here is process-global.
type Formatter struct {
	w io.Writer

	value *color.Color
	dim   *color.Color
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{
		w:     w,
		value: color.New(color.Bold, color.FgCyan),
		dim:   color.New(color.Faint),
	}
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

// FilesFound lists the discovered inputs in processing order.
func (f *Formatter) FilesFound(dir string, names []string) {
	fmt.Fprintf(f.w, "📂 Found %s in %s:\n", plural(len(names), "file"), dir)
	for i, name := range names {
		fmt.Fprintf(f.w, "  %2d. %s\n", i+1, name)
	}
}

// MediaInfo prints one file's stream descriptor.
func (f *Formatter) MediaInfo(name string, info ffmpeg.MediaInfo) {
	fmt.Fprintf(f.w, "🎞️  %s\n", name)
	fmt.Fprintf(f.w, "  Video: %s, %s, %s fps\n",
		f.value.Sprint(info.VideoCodec), info.Resolution, info.FrameRate)
	fmt.Fprintf(f.w, "  Audio: %s, %s Hz, %s b/s\n",
		f.value.Sprint(info.AudioCodec), info.SampleRate, info.AudioBitrate)
}

// StageDone reports a produced artifact with its size and duration.
func (f *Formatter) StageDone(label, path string, size int64, seconds int) {
	fmt.Fprintf(f.w, "✅ %s: %s (%s, %s)\n",
		label, path, f.value.Sprint(humanize.Bytes(uint64(size))), timestamp.Format(seconds))
}

// SummaryHeader opens the end-of-run output listing.
func (f *Formatter) SummaryHeader() {
	fmt.Fprintf(f.w, "\n📁 Output files:\n")
}

// SummaryItem lists one output file that exists on disk.
func (f *Formatter) SummaryItem(path string, size int64) {
	fmt.Fprintf(f.w, "  %s %s\n", path, f.dim.Sprintf("(%s)", humanize.Bytes(uint64(size))))
}

// SetupCheck prints one doctor line.
func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
