package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"

	"github.com/kranzio/myscheme/internal/printer"
	"github.com/kranzio/myscheme/internal/reader"
	"github.com/kranzio/myscheme/lang/machine"
	"github.com/kranzio/myscheme/lang/resolver"
)

// Eval implements the "eval" subcommand, the REPL: read forms one at a
// time, resolve and evaluate each against one persistent environment,
// print the result, and stop the moment evaluation produces
// machine.Terminate. An error on one form is reported and the session
// continues with the next form.
func (c *Cmd) Eval(ctx context.Context, stdio mainer.Stdio, args []string) error {
	src, err := readSource(stdio, args)
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	env := machine.Empty()
	th := machine.NewThread(ctx)
	r := reader.New(src)

	var lastErr error
	for {
		s, err, eof := r.Next()
		if eof {
			return lastErr
		}
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			lastErr = err
			continue
		}

		expr, err := resolver.Resolve(s, env)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			lastErr = err
			continue
		}

		v, err := machine.Eval(expr, env, th)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			lastErr = err
			continue
		}

		if v.Type() == "terminate" {
			return nil
		}
		if perr := printer.Print(stdio.Stdout, v); perr != nil {
			return perr
		}
	}
}
