// Package printer renders a runtime Value for display. Every Value
// already implements fmt.Stringer, so this package exists only to give
// the CLI a single, stable place to adjust that rendering (e.g.
// suppressing Void output) without reaching into lang/machine.
package printer

import (
	"fmt"
	"io"

	"github.com/kranzio/myscheme/lang/machine"
)

// Print writes the display form of v to w, followed by a newline. A
// Void result prints nothing (mirroring a typical REPL's convention of
// not echoing the absence of a value).
func Print(w io.Writer, v machine.Value) error {
	if v.Type() == "void" {
		return nil
	}
	_, err := fmt.Fprintln(w, v.String())
	return err
}
