package interpreter

import (
	"fmt"

	"github.com/mna/rlox/lang/scanner"
	"github.com/mna/rlox/lang/token"
)

// RuntimeError is a runtime fault tied to the token that triggered it. Per
// spec.md §6, it reports the same "[line N] Error<context>: <message>" as
// any other diagnostic, plus an additional "[line N]" line of its own,
// matching the original interpreter's report::runtime_error, which
// separates the message from the line it occurred on.
type RuntimeError struct {
	Tok token.Token
	Msg string
}

// NewRuntimeError returns a RuntimeError for tok carrying msg.
func NewRuntimeError(tok token.Token, msg string) *RuntimeError {
	return &RuntimeError{Tok: tok, Msg: msg}
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s\n[line %d]", e.Tok.Line, scanner.TokenContext(e.Tok), e.Msg, e.Tok.Line)
}
