package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Input reads answers line by line, writing each prompt first.
type Input struct {
	out    io.Writer
	reader *bufio.Reader
}

func NewInput(in io.Reader, out io.Writer) *Input {
	return &Input{
		out:    out,
		reader: bufio.NewReader(in),
	}
}

// ReadLine - writes prompt and blocks until the next line is available.
// Lines of any length are returned whole, without the line ending.
// It returns io.EOF once the reader is exhausted.
func (that *Input) ReadLine(prompt string) (string, error) {
	fmt.Fprintf(that.out, "  %s", prompt)

	line, err := that.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read line: %w", err)
		}

		// last line without a trailing newline
		if line == "" {
			return "", io.EOF
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}
