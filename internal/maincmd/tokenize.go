package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/mna/rlox/lang/scanner"
)

// Tokenize scans the source file named in args[0] and prints its token
// stream, one token per line. A debugging aid, carried from the teacher.
func (c *Cmd) Tokenize(_ context.Context, stdio mainer.Stdio, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	toks, err := scanner.ScanAll(src)
	for _, tok := range toks {
		fmt.Fprintln(stdio.Stdout, tok)
	}
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
	}
	return err
}
