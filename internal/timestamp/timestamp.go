// Package timestamp parses the cut points the user types in, accepting
// HH:MM:SS, MM:SS or plain SS with an optional fractional part.
package timestamp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Groups are 1-2 digits each; only the last group may carry a fraction.
var pattern = regexp.MustCompile(`^\d{1,2}(:\d{1,2}){0,2}(\.\d+)?$`)

// Valid reports whether s matches the accepted timestamp grammar.
func Valid(s string) bool {
	return pattern.MatchString(s)
}

// Seconds converts a timestamp to total seconds. Groups are read
// right-to-left as seconds, minutes, hours; a fractional part is
// truncated. Leading zeros are decimal, never octal.
func Seconds(s string) (int, error) {
	if !Valid(s) {
		return 0, fmt.Errorf("invalid timestamp %q: use HH:MM:SS, MM:SS or SS", s)
	}

	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}

	total := 0
	for _, group := range strings.Split(s, ":") {
		n, err := strconv.Atoi(group)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp group %q: %w", group, err)
		}
		total = total*60 + n
	}
	return total, nil
}

// Format renders total seconds as zero-padded HH:MM:SS.
func Format(totalSeconds int) string {
	h := totalSeconds / 3600
	m := totalSeconds % 3600 / 60
	s := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
