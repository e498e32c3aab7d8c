// Package timing parses the report files written by an external timing
// wrapper such as time(1). Only the first line of a report is consulted:
// its leading token is the user time in seconds, immediately followed by
// the literal marker "user".
package timing

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const userMarker = "user"

// ErrNoUserMarker indicates the first line of a report does not contain
// the "user" marker and therefore carries no user-time measurement.
var ErrNoUserMarker = errors.New("no user-time marker in first line")

// ParseLine extracts the user time from a single report line. The line is
// split on the first occurrence of the marker and the prefix is parsed as
// a float; there is no guaranteed separator between the two.
func ParseLine(line string) (float64, error) {
	prefix, _, found := strings.Cut(line, userMarker)
	if !found {
		return 0, ErrNoUserMarker
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(prefix), 64)
	if err != nil {
		return 0, fmt.Errorf("user-time prefix %q: %w", prefix, err)
	}
	return seconds, nil
}

// ParseReport reads the timing report at path and returns the user time
// from its first line. A missing file, an empty file, and a malformed
// first line are all fatal; errors carry the path for diagnosis.
func ParseReport(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("timing report %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("timing report %s: %w", path, err)
		}
		return 0, fmt.Errorf("timing report %s: %w", path, ErrNoUserMarker)
	}

	seconds, err := ParseLine(scanner.Text())
	if err != nil {
		return 0, fmt.Errorf("timing report %s: %w", path, err)
	}
	return seconds, nil
}
