// Package prompt implements the numbered terminal menus used by the
// interactive CLI. It is a thin I/O layer: rendering a list of choices and
// reading a validated 1-based selection.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// separatorWidth is the width of the menu frame lines.
const separatorWidth = 50

// Menu reads selections from in and writes menus and messages to out.
type Menu struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Menu over the given streams.
func New(in io.Reader, out io.Writer) *Menu {
	return &Menu{in: bufio.NewReader(in), out: out}
}

// separator returns the horizontal frame line.
func separator() string {
	return strings.Repeat("=", separatorWidth)
}

// PrintHeader writes a framed title without items.
func (m *Menu) PrintHeader(title string) {
	fmt.Fprintf(m.out, "\n%s\n  %s\n%s\n", separator(), title, separator())
}

// Print writes a framed, numbered menu of items.
func (m *Menu) Print(title string, items []string) {
	fmt.Fprintf(m.out, "\n%s\n  %s\n%s\n", separator(), title, separator())

	if len(items) == 0 {
		fmt.Fprintln(m.out, "  (no options available)")
		return
	}

	for i, item := range items {
		fmt.Fprintf(m.out, "  %d. %s\n", i+1, item)
	}
	fmt.Fprintln(m.out, separator())
}

// Choose prompts until the user enters a number between 1 and max, and
// returns the 1-based selection. Empty input (or end of input) aborts the
// selection: ok is false and no error is returned.
func (m *Menu) Choose(max int, promptText string) (choice int, ok bool, err error) {
	for {
		fmt.Fprintf(m.out, "\n%s (1-%d): ", promptText, max)

		line, readErr := m.in.ReadString('\n')
		line = strings.TrimSpace(line)

		if line == "" {
			if readErr != nil && readErr != io.EOF {
				return 0, false, fmt.Errorf("reading selection: %w", readErr)
			}
			return 0, false, nil
		}

		n, convErr := strconv.Atoi(line)
		switch {
		case convErr != nil:
			fmt.Fprintln(m.out, "Please enter a valid number")
		case n < 1 || n > max:
			fmt.Fprintf(m.out, "Please enter a number between 1 and %d\n", max)
		default:
			return n, true, nil
		}

		if readErr == io.EOF {
			return 0, false, nil
		}
		if readErr != nil {
			return 0, false, fmt.Errorf("reading selection: %w", readErr)
		}
	}
}
