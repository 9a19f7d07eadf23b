package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

var ErrNoInput = errors.New("no more input")

// Input yields the user's answer to a prompt.
type Input interface {
	Prompt(label string) (string, error)
}

// LineInput reads one line per prompt, writing the label first.
type LineInput struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewLineInput creates an Input reading lines from r and echoing prompts to w.
func NewLineInput(r io.Reader, w io.Writer) *LineInput {
	return &LineInput{
		scanner: bufio.NewScanner(r),
		out:     w,
	}
}

// Prompt writes label and returns the next line with surrounding whitespace
// removed. It returns ErrNoInput once the reader is exhausted.
func (l *LineInput) Prompt(label string) (string, error) {
	fmt.Fprint(l.out, label)
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrNoInput
	}
	return strings.TrimSpace(l.scanner.Text()), nil
}

// CleanPath normalizes a path typed or pasted by the user: whitespace and
// one pair of surrounding quotes are removed before cleaning. An empty
// answer stays empty.
func CleanPath(raw string) string {
	p := strings.TrimSpace(raw)
	if len(p) >= 2 && (p[0] == '"' || p[0] == '\'') && p[len(p)-1] == p[0] {
		p = strings.TrimSpace(p[1 : len(p)-1])
	}
	if p == "" {
		return ""
	}
	return filepath.Clean(p)
}
