package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/kranzio/myscheme/internal/reader"
	"github.com/kranzio/myscheme/lang/machine"
	"github.com/kranzio/myscheme/lang/resolver"
)

// Resolve implements the "resolve" subcommand: read forms and print the
// resolved expression tree for each, one per line. Each top-level form
// resolves against the same empty resolution environment; a name bound
// inside one form is not visible to later forms. Resolution never
// executes anything.
func (c *Cmd) Resolve(_ context.Context, stdio mainer.Stdio, args []string) error {
	src, err := readSource(stdio, args)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	r := reader.New(src)
	env := machine.Empty()
	for {
		s, err, eof := r.Next()
		if eof {
			return nil
		}
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return err
		}

		expr, err := resolver.Resolve(s, env)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return err
		}
		fmt.Fprintln(stdio.Stdout, expr.String())
	}
}
