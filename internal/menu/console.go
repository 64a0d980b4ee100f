package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	recordSeparatorWidth = 30
	// maxLineBytes bounds one line of operator input.
	maxLineBytes = 1 << 20
)

// Console reads one line of operator input per prompt.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole wraps in and out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Console{in: scanner, out: out}
}

// Ask prints prompt and returns the next line without its newline.
// ok is false once input is exhausted or unreadable; a read error is shown.
func (c *Console) Ask(prompt string) (line string, ok bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		fmt.Fprintln(c.out)
		if err := c.in.Err(); err != nil {
			fmt.Fprintf(c.out, "Input error: %v\n", err)
		}
		return "", false
	}
	return c.in.Text(), true
}

// Choice is Ask for menu selections: trimmed and upper-cased.
func (c *Console) Choice(prompt string) (string, bool) {
	line, ok := c.Ask(prompt)
	return strings.ToUpper(strings.TrimSpace(line)), ok
}

// Println writes a line to the operator.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted text to the operator.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) separator() {
	c.Println(strings.Repeat("-", recordSeparatorWidth))
}
