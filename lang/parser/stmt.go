package parser

import (
	"github.com/mna/rlox/lang/ast"
	"github.com/mna/rlox/lang/token"
)

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.forStmt()
	case p.match(token.IF):
		return p.ifStmt()
	case p.match(token.PRINT):
		return p.printStmt()
	case p.match(token.RETURN):
		return p.returnStmt()
	case p.match(token.WHILE):
		return p.whileStmt()
	case p.match(token.BREAK):
		return p.breakStmt()
	case p.match(token.LBRACE):
		line := p.previous().Line
		return ast.NewBlockStmt(line, p.block())
	default:
		return p.exprStmt()
	}
}

// block parses `declaration* "}"`, the opening '{' already consumed.
func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(token.RBRACE, "'}' after block")
	return stmts
}

func (p *Parser) ifStmt() ast.Stmt {
	line := p.previous().Line
	p.consume(token.LPAREN, "'(' after 'if'")
	cond := p.expression()
	p.consume(token.RPAREN, "')' after if condition")

	then := p.statement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.statement()
	}
	return ast.NewIfStmt(line, cond, then, els)
}

func (p *Parser) printStmt() ast.Stmt {
	line := p.previous().Line
	expr := p.expression()
	p.consume(token.SEMI, "';' after value")
	return ast.NewPrintStmt(line, expr)
}

func (p *Parser) returnStmt() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMI) {
		value = p.expression()
	}
	p.consume(token.SEMI, "';' after return value")
	return ast.NewReturnStmt(keyword.Line, keyword, value)
}

func (p *Parser) breakStmt() ast.Stmt {
	keyword := p.previous()
	p.consume(token.SEMI, "';' after 'break'")
	return ast.NewBreakStmt(keyword.Line, keyword)
}

func (p *Parser) whileStmt() ast.Stmt {
	line := p.previous().Line
	p.consume(token.LPAREN, "'(' after 'while'")
	cond := p.expression()
	p.consume(token.RPAREN, "')' after while condition")
	body := p.statement()
	return ast.NewWhileStmt(line, cond, body)
}

// forStmt desugars a C-style for loop into:
//
//	{ init; while (cond) { body; update; } }
//
// per spec.md 4.2, with the initializer omitted if absent and the condition
// defaulting to `true` if absent.
func (p *Parser) forStmt() ast.Stmt {
	line := p.previous().Line
	p.consume(token.LPAREN, "'(' after 'for'")

	var init ast.Stmt
	switch {
	case p.match(token.SEMI):
		// no initializer
	case p.match(token.VAR):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.SEMI) {
		cond = p.expression()
	}
	p.consume(token.SEMI, "';' after loop condition")

	var update ast.Expr
	if !p.check(token.RPAREN) {
		update = p.expression()
	}
	p.consume(token.RPAREN, "')' after for clauses")

	body := p.statement()

	if update != nil {
		body = ast.NewBlockStmt(line, []ast.Stmt{body, ast.NewExpressionStmt(line, update)})
	}
	if cond == nil {
		cond = ast.NewLiteralExpr(line, true)
	}
	body = ast.NewWhileStmt(line, cond, body)

	if init != nil {
		body = ast.NewBlockStmt(line, []ast.Stmt{init, body})
	}
	return body
}

func (p *Parser) exprStmt() ast.Stmt {
	line := p.peek().Line
	expr := p.expression()
	p.consume(token.SEMI, "';' after expression")
	return ast.NewExpressionStmt(line, expr)
}
