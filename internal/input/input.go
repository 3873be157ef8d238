// Package input reads a text stream into lines.
package input

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when the input is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// ReadLines reads all of r and splits it into lines. Nothing is returned
// unless the whole stream was read and decoded.
func ReadLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits s on "\n" and "\r\n". A trailing line break does not
// start another line, so "" yields no lines.
func SplitLines(s string) []string {
	var lines []string
	for s != "" {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, strings.TrimSuffix(s[:i], "\r"))
		s = s[i+1:]
	}
	return lines
}
