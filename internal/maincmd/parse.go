package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/kranzio/myscheme/internal/reader"
)

// Parse implements the "parse" subcommand: read forms and print the raw
// syntax tree for each, one per line.
func (c *Cmd) Parse(_ context.Context, stdio mainer.Stdio, args []string) error {
	src, err := readSource(stdio, args)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	r := reader.New(src)
	for {
		s, err, eof := r.Next()
		if eof {
			return nil
		}
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return err
		}
		fmt.Fprintln(stdio.Stdout, s.String())
	}
}
