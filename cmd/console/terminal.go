package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/iota-uz/pharma-admin/pkg/crud"
)

// terminalConfirmer asks y/N questions on the terminal. With yes set every
// prompt is accepted without reading input.
type terminalConfirmer struct {
	in  *bufio.Reader
	out io.Writer
	yes *bool
}

func (c *terminalConfirmer) Confirm(ctx context.Context, p crud.Prompt) (bool, error) {
	if c.yes != nil && *c.yes {
		return true, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fmt.Fprintf(c.out, "%s %s [y/N]: ", p.Title, p.Message)
	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// printNotices writes every notice to out, one per line.
func printNotices(out io.Writer) func(crud.Notice) {
	return func(n crud.Notice) {
		fmt.Fprintf(out, "[%s] %s\n", n.Level, n.Message)
	}
}
