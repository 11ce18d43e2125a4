// Package prompt is the interactive input boundary, so stages can be
// driven by a terminal or by a scripted fake in tests.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Asker obtains answers from the user.
type Asker interface {
	// Ask prints the question and returns the next input line, trimmed.
	Ask(question string) (string, error)
	// Confirm asks a yes/no question; an empty answer picks def.
	Confirm(question string, def bool) (bool, error)
}

// Reader asks over an input/output stream pair, normally stdin/stdout.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

func (r *Reader) Ask(question string) (string, error) {
	fmt.Fprint(r.out, question)
	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (r *Reader) Confirm(question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	answer, err := r.Ask(fmt.Sprintf("%s %s: ", question, hint))
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
