package maincmd

import (
	"bufio"
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/rlox/lang/ast"
	"github.com/mna/rlox/lang/interpreter"
	"github.com/mna/rlox/lang/parser"
	"github.com/mna/rlox/lang/resolver"
	"github.com/mna/rlox/lang/scanner"
)

// Repl runs a read-eval-print loop per spec.md §6: prompt "> ", read one
// line, execute it, print its result if it parses as a single expression
// statement, clear the error flag, and continue until EOF or a blank line.
func (c *Cmd) Repl(_ context.Context, stdio mainer.Stdio, _ []string) error {
	in := interpreter.New(stdio.Stdout, nil)
	scan := bufio.NewScanner(stdio.Stdin)

	for {
		fmt.Fprint(stdio.Stdout, "> ")
		if !scan.Scan() {
			return nil
		}
		line := scan.Text()
		if line == "" {
			return nil
		}
		evalReplLine(stdio, in, line)
	}
}

// evalReplLine executes one REPL line. Parse/resolve/runtime errors are
// reported to stderr and otherwise swallowed: a bad line clears the error
// flag and the loop continues.
func evalReplLine(stdio mainer.Stdio, in *interpreter.Interpreter, line string) {
	if stmts, ok := parseAsExpression(line); ok {
		locals, err := resolver.Resolve(stmts)
		if err != nil {
			scanner.PrintError(stdio.Stderr, err)
			return
		}
		in.MergeLocals(locals)

		expr := stmts[0].(*ast.ExpressionStmt)
		v, err := in.Evaluate(expr.Expr)
		if err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return
		}
		fmt.Fprintln(stdio.Stdout, v.String())
		return
	}

	stmts, err := parser.ParseSource([]byte(line))
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
		return
	}
	locals, err := resolver.Resolve(stmts)
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
		return
	}
	in.MergeLocals(locals)
	if err := in.Interpret(stmts); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
	}
}

// parseAsExpression reports whether line, with a semicolon appended, parses
// cleanly as exactly one expression statement — the REPL's "bare
// expression" convenience from spec.md §6.
func parseAsExpression(line string) ([]ast.Stmt, bool) {
	stmts, err := parser.ParseSource([]byte(line + ";"))
	if err != nil || len(stmts) != 1 {
		return nil, false
	}
	if _, ok := stmts[0].(*ast.ExpressionStmt); !ok {
		return nil, false
	}
	return stmts, true
}
