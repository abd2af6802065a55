// Package parser implements the recursive-descent parser that turns a token
// stream into an abstract syntax tree.
package parser

import (
	"errors"
	"fmt"

	"github.com/mna/rlox/lang/ast"
	"github.com/mna/rlox/lang/scanner"
	"github.com/mna/rlox/lang/token"
)

const maxArgs = 255

// errPanicMode is recovered at the statement boundary, triggering
// synchronization; it carries no information of its own.
var errPanicMode = errors.New("parser: panic mode")

// Parser consumes a fixed token slice (produced by the scanner) and builds
// an AST with one token of lookahead.
type Parser struct {
	tokens  []token.Token
	current int
	errors  scanner.ErrorList
}

// New returns a Parser over tokens, which must end with an EOF token.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses a full program (a sequence of declarations) and returns the
// resulting statements along with any accumulated errors. A non-nil error is
// always a scanner.ErrorList. Parsing is best-effort: even in the presence
// of errors, as much of the program as could be recovered is returned.
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.errors.Sort()
	return stmts, p.errors.Err()
}

// ParseSource scans src and parses it in one step, merging scan and parse
// errors into a single ErrorList (scan errors sort before parse errors on
// the same line only incidentally; ordering is by line number).
func ParseSource(src []byte) ([]ast.Stmt, error) {
	toks, scanErr := scanner.ScanAll(src)
	p := New(toks)
	stmts, parseErr := p.Parse()

	var all scanner.ErrorList
	if el, ok := scanErr.(scanner.ErrorList); ok {
		all = append(all, el...)
	}
	if el, ok := parseErr.(scanner.ErrorList); ok {
		all = append(all, el...)
	}
	all.Sort()
	return stmts, all.Err()
}

// ---- token stream helpers ----

func (p *Parser) peek() token.Token { return p.tokens[p.current] }

func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }

func (p *Parser) isAtEnd() bool { return p.peek().Kind == token.EOF }

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return kind == token.EOF
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the current token if it has kind k, else records a
// parse error and panics with errPanicMode to unwind to the nearest
// recover/synchronize point.
func (p *Parser) consume(k token.Kind, msg string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	p.errorAtCurrent(msg)
	panic(errPanicMode)
}

func (p *Parser) errorAtCurrent(msg string) {
	p.errors.AddAt(p.peek(), fmt.Sprintf("Expect %s", msg))
}

func (p *Parser) errorAt(tok token.Token, msg string) {
	p.errors.AddAt(tok, msg)
}

// synchronize discards tokens until it reaches a likely statement boundary,
// per spec.md 4.2: after a semicolon, or at the start of a new declaration
// or a subset of statement keywords.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.SEMI {
			return
		}
		switch p.peek().Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF,
			token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
