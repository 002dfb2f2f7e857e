package terminal

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Input reads user lines from a stream
type Input struct {
	reader *bufio.Reader
}

// NewInput wraps r. The buffered reader is kept across calls so typed-ahead
// lines are not lost.
func NewInput(r io.Reader) *Input {
	return &Input{reader: bufio.NewReader(r)}
}

// ReadLine reads a line of input from the user
func (in *Input) ReadLine() (string, error) {
	line, err := in.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}

	// Trim whitespace and newline
	return strings.TrimSpace(line), nil
}

// IsTerminal checks if stdout is a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Size returns the terminal width and height, or 80x24 when unknown
func Size() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80, 24
	}
	return width, height
}
