package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/mna/rlox/lang/ast"
	"github.com/mna/rlox/lang/parser"
	"github.com/mna/rlox/lang/resolver"
	"github.com/mna/rlox/lang/scanner"
)

// Resolve parses and resolves the source file named in args[0], then
// prints the AST followed by a one-line summary of how many
// Variable/Assign/This references the resolver tied to a local scope
// (the rest refer to globals). A debugging aid, for inspecting the
// resolver's output without running the program.
func (c *Cmd) Resolve(_ context.Context, stdio mainer.Stdio, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	stmts, err := parser.ParseSource(src)
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
		return err
	}

	locals, err := resolver.Resolve(stmts)
	fmt.Fprintln(stdio.Stdout, ast.Printer{}.Print(stmts))
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
		return err
	}
	fmt.Fprintf(stdio.Stdout, "; %d local reference(s) resolved\n", len(locals))
	return nil
}
