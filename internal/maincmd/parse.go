package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/mna/rlox/lang/ast"
	"github.com/mna/rlox/lang/parser"
	"github.com/mna/rlox/lang/scanner"
)

// Parse parses the source file named in args[0] and prints the resulting
// AST in parenthesized form, per spec.md §6's "--ast" mode, without
// resolving or executing it.
func (c *Cmd) Parse(_ context.Context, stdio mainer.Stdio, args []string) error {
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
	fmt.Fprintln(stdio.Stdout, ast.Printer{}.Print(stmts))
	return nil
}
