package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// terminal is the line-oriented screens.UI. Confirm reads its answer from
// the same input as the command loop.
type terminal struct {
	in  *bufio.Scanner
	out io.Writer
}

func newTerminal(in io.Reader, out io.Writer) *terminal {
	return &terminal{in: bufio.NewScanner(in), out: out}
}

func (t *terminal) Alert(title, message string) {
	fmt.Fprintf(t.out, "[%s] %s\n", title, message)
}

func (t *terminal) Confirm(title, message string) bool {
	fmt.Fprintf(t.out, "[%s] %s (s/n) ", title, message)
	line, ok := t.readLine()
	if !ok {
		fmt.Fprintln(t.out)
		return false
	}
	switch strings.ToLower(line) {
	case "s", "si", "sí", "y", "yes":
		return true
	}
	return false
}

// prompt asks for one field. ok is false once the input is exhausted.
func (t *terminal) prompt(label string) (string, bool) {
	fmt.Fprintf(t.out, "%s: ", label)
	return t.readLine()
}

func (t *terminal) readLine() (string, bool) {
	if !t.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(t.in.Text()), true
}

func (t *terminal) printf(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

func (t *terminal) err() error {
	return t.in.Err()
}
