// Package prompt asks for missing flag values on the terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoInput is returned when the reader is exhausted before an answer is given.
var ErrNoInput = errors.New("no input")

// Prompter reads answers line by line from one reader.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// String asks label until a non-empty answer is given.
func (p *Prompter) String(label string) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s: ", label)
		answer, err := p.readLine()
		if answer != "" {
			return answer, nil
		}
		if err != nil {
			return "", err
		}
	}
}

// Int asks label, returning def on an empty answer or end of input.
// Non-numeric answers are asked again.
func (p *Prompter) Int(label string, def int) (int, error) {
	for {
		fmt.Fprintf(p.out, "%s [%d]: ", label, def)
		answer, err := p.readLine()
		if answer == "" {
			if err != nil && !errors.Is(err, ErrNoInput) {
				return 0, err
			}
			return def, nil
		}
		n, convErr := strconv.Atoi(answer)
		if convErr == nil {
			return n, nil
		}
		fmt.Fprintf(p.out, "Error: '%s' is not a valid integer.\n", answer)
		if err != nil {
			return def, nil
		}
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if errors.Is(err, io.EOF) {
		return line, ErrNoInput
	}
	if err != nil {
		return line, fmt.Errorf("failed to read answer: %w", err)
	}
	return line, nil
}
