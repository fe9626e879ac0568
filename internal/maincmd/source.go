package maincmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mna/mainer"
)

// readSource returns the program text to interpret: the named file if
// one argument is given, or stdin otherwise.
func readSource(stdio mainer.Stdio, args []string) (string, error) {
	if len(args) == 0 {
		b, err := io.ReadAll(stdio.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	if len(args) > 1 {
		return "", fmt.Errorf("at most one file may be given, found %d", len(args))
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(b), nil
}
