// Package console is the line-based terminal the game talks through.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrClosed is returned by Prompt when the input has no more lines
var ErrClosed = errors.New("console input closed")

// Console reads player input line by line and writes game output
type Console struct {
	reader *bufio.Reader
	out    io.Writer
}

// New creates a console over the given input and output
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Println writes one line of output
func (c *Console) Println(text string) {
	fmt.Fprintln(c.out, text)
}

// Prompt writes label without a newline and waits for the next input line.
// The returned line has its line ending removed but is otherwise untouched.
// Lines have no length limit, and a final line without a newline is returned.
func (c *Console) Prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(c.out, label)

	line, err := c.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", ErrClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
