package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/mna/rlox/lang/ast"
	"github.com/mna/rlox/lang/interpreter"
	"github.com/mna/rlox/lang/parser"
	"github.com/mna/rlox/lang/resolver"
	"github.com/mna/rlox/lang/scanner"
)

// Run scans, parses, resolves and executes the single source file named in
// args[0]. If --ast was given, the parsed AST is printed instead and the
// program is not executed.
func (c *Cmd) Run(_ context.Context, stdio mainer.Stdio, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	return RunSource(stdio, src, c.AST)
}

// RunSource drives the full pipeline (scan -> parse -> resolve ->
// interpret) over src, writing print output to stdio.Stdout and
// diagnostics to stdio.Stderr. With printAST, it stops after parsing and
// prints the AST instead.
func RunSource(stdio mainer.Stdio, src []byte, printAST bool) error {
	stmts, err := parser.ParseSource(src)
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
		return err
	}

	if printAST {
		fmt.Fprintln(stdio.Stdout, ast.Printer{}.Print(stmts))
		return nil
	}

	locals, err := resolver.Resolve(stmts)
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
		return err
	}

	in := interpreter.New(stdio.Stdout, locals)
	if err := in.Interpret(stmts); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}
	return nil
}
