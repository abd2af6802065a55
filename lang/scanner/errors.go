package scanner

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mna/rlox/lang/token"
)

// Error is a single diagnostic tied to a source line, formatted per
// spec.md §6 as "[line N] Error<context>: <message>". Line is 0 when the
// diagnostic has no meaningful source position (an internal error that
// escaped its expected sink), and Context is empty when the error has no
// offending token to cite (e.g. a scan error on a raw character).
type Error struct {
	Line    int
	Context string
	Msg     string
}

func (e *Error) Error() string {
	if e.Line <= 0 {
		return e.Msg
	}
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Context, e.Msg)
}

// ErrorList accumulates Errors in the order they are reported and can sort
// them back into source order before being surfaced to a caller.
type ErrorList []*Error

// Add appends an error for the given line to the list, with no token
// context. Used for scan errors, which are reported before a token exists.
func (l *ErrorList) Add(line int, msg string) {
	*l = append(*l, &Error{Line: line, Msg: msg})
}

// Addf is like Add but formats msg with args.
func (l *ErrorList) Addf(line int, format string, args ...any) {
	l.Add(line, fmt.Sprintf(format, args...))
}

// AddAt appends an error tied to tok, threading the offending token's
// context (" at end" for EOF, " at '<lexeme>'" otherwise) into the
// diagnostic, matching the original interpreter's
// report::parse_error_at_token.
func (l *ErrorList) AddAt(tok token.Token, msg string) {
	*l = append(*l, &Error{Line: tok.Line, Context: TokenContext(tok), Msg: msg})
}

// TokenContext returns the " at ..." clause used by diagnostics that cite a
// specific token.
func TokenContext(tok token.Token) string {
	if tok.Kind == token.EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", tok.Lexeme)
}

func (l ErrorList) Len() int      { return len(l) }
func (l ErrorList) Swap(i, j int) { l[i], l[j] = l[j], l[i] }
func (l ErrorList) Less(i, j int) bool {
	return l[i].Line < l[j].Line
}

// Sort orders the errors by source line, stable for equal lines.
func (l ErrorList) Sort() { sort.Stable(l) }

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (and %d more errors)", l[0].Error(), len(l)-1)
	return sb.String()
}

// Err returns nil if the list is empty, else the list itself as an error so
// callers can do `if err := list.Err(); err != nil`.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// PrintError prints err to w, one diagnostic per line if err is an
// ErrorList, else prints err.Error() directly.
func PrintError(w io.Writer, err error) {
	if list, ok := err.(ErrorList); ok {
		for _, e := range list {
			fmt.Fprintln(w, e.Error())
		}
		return
	}
	fmt.Fprintln(w, err.Error())
}
