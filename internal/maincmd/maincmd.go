// Package maincmd wires the rlox CLI: argument parsing, sub-command
// dispatch, and the exit-code contract from spec.md §6 (0 success, 65
// scan/parse/resolve errors, 70 runtime errors).
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
	"github.com/mna/rlox/lang/interpreter"
	"github.com/mna/rlox/lang/scanner"
)

const binName = "rlox"

// Exit codes per spec.md §6.
const (
	exitDataError    mainer.ExitCode = 65
	exitRuntimeError mainer.ExitCode = 70
)

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <command> [<path>...]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <command> [<path>...]
       %[1]s -h|--help
       %[1]s -v|--version

A tree-walking interpreter for the rlox scripting language.

The <command> can be one of:
       run                       Scan, parse, resolve and execute a
                                 source file.
       repl                      Read one line at a time from standard
                                 input, execute it, and print its result.
       parse                     Run the parser and print the resulting
                                 AST in parenthesized form, without
                                 executing it.
       tokenize                  Run the scanner and print the resulting
                                 token stream.
       resolve                   Run the parser and resolver and print the
                                 AST plus a resolved-reference count,
                                 without executing it.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
       --ast                     With 'run', print the AST instead of
                                 executing (same output as 'parse').

More information on the rlox repository:
       https://github.com/mna/rlox
`, binName)
)

// Cmd is the CLI's flag-bound configuration struct, parsed by
// mainer.Parser the same way the teacher's internal/maincmd.Cmd is.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`
	AST     bool `flag:"ast"`

	args  []string
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string) { c.args = args }

func (c *Cmd) SetFlags(map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]
	commands := buildCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	if cmdName != "repl" && len(c.args[1:]) == 0 {
		return fmt.Errorf("%s: a source file must be provided", cmdName)
	}
	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false, EnvPrefix: strings.ToUpper(binName) + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	err := c.cmdFn(ctx, stdio, c.args[1:])
	return exitCodeFor(err)
}

// exitCodeFor maps a command error to spec.md §6's exit-code contract: 65
// for scan/parse/resolve errors, 70 for runtime errors, the zero value for
// success.
func exitCodeFor(err error) mainer.ExitCode {
	if err == nil {
		return mainer.Success
	}
	var runtimeErr *interpreter.RuntimeError
	switch {
	case errors.As(err, &runtimeErr):
		return exitRuntimeError
	case isScanParseResolveError(err):
		return exitDataError
	default:
		return mainer.Failure
	}
}

func isScanParseResolveError(err error) bool {
	switch err.(type) {
	case scanner.ErrorList, *scanner.Error:
		return true
	default:
		return false
	}
}

// buildCmds mirrors the teacher's reflection-based sub-command dispatch: any
// method of v taking (context.Context, mainer.Stdio, []string) and returning
// error becomes a sub-command named after its lowercased method name.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
