package parser

import (
	"fmt"

	"github.com/mna/rlox/lang/ast"
	"github.com/mna/rlox/lang/token"
)

func (p *Parser) expression() ast.Expr { return p.assignment() }

// assignment → (call ".")? IDENT "=" assignment | ternary
func (p *Parser) assignment() ast.Expr {
	expr := p.ternary()

	if p.match(token.EQ) {
		equals := p.previous()
		value := p.assignment()

		switch e := expr.(type) {
		case *ast.VariableExpr:
			return ast.NewAssignExpr(e.Line(), e.Name, value)
		case *ast.GetExpr:
			return ast.NewSetExpr(e.Line(), e.Object, e.Name, value)
		}
		p.errorAt(equals, "Invalid assignment target")
	}
	return expr
}

// ternary → or ("?" expression ":" expression)?
func (p *Parser) ternary() ast.Expr {
	cond := p.or()
	if p.match(token.QUESTION) {
		then := p.expression()
		p.consume(token.COLON, "':' in ternary expression")
		els := p.expression()
		return ast.NewTernaryExpr(cond.Line(), cond, then, els)
	}
	return cond
}

// or → and ("or" and)*
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.OR) {
		op := p.previous()
		right := p.and()
		expr = ast.NewLogicalExpr(expr.Line(), expr, op, right)
	}
	return expr
}

// and → equality ("and" equality)*
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = ast.NewLogicalExpr(expr.Line(), expr, op, right)
	}
	return expr
}

// equality → comparison (("==" | "!=") comparison)*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.EQ_EQ, token.BANG_EQ) {
		op := p.previous()
		right := p.comparison()
		expr = ast.NewBinaryExpr(expr.Line(), expr, op, right)
	}
	return expr
}

// comparison → term ((">"|">="|"<"|"<=") term)*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GT, token.GT_EQ, token.LT, token.LT_EQ) {
		op := p.previous()
		right := p.term()
		expr = ast.NewBinaryExpr(expr.Line(), expr, op, right)
	}
	return expr
}

// term → factor (("+" | "-") factor)*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.PLUS, token.MINUS) {
		op := p.previous()
		right := p.factor()
		expr = ast.NewBinaryExpr(expr.Line(), expr, op, right)
	}
	return expr
}

// factor → unary (("*" | "/") unary)*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.STAR, token.SLASH) {
		op := p.previous()
		right := p.unary()
		expr = ast.NewBinaryExpr(expr.Line(), expr, op, right)
	}
	return expr
}

// unary → ("!" | "-") unary | call
func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return ast.NewUnaryExpr(op.Line, op, right)
	}
	return p.call()
}

// call → primary ( "(" args? ")" | "." IDENT )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LPAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.consume(token.IDENT, "property name after '.'")
			expr = ast.NewGetExpr(expr.Line(), expr, name)
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), fmt.Sprintf("Can't have more than %d arguments", maxArgs))
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RPAREN, "')' after arguments")
	return ast.NewCallExpr(callee.Line(), callee, paren, args)
}

// primary → NUMBER | STRING | "true" | "false" | "nil"
//
//	| "this" | IDENT | "(" expression ")"
//	| "fun" "(" params? ")" block
func (p *Parser) primary() ast.Expr {
	tok := p.peek()
	switch {
	case p.match(token.FALSE):
		return ast.NewLiteralExpr(tok.Line, false)
	case p.match(token.TRUE):
		return ast.NewLiteralExpr(tok.Line, true)
	case p.match(token.NIL):
		return ast.NewLiteralExpr(tok.Line, nil)
	case p.match(token.NUMBER):
		return ast.NewLiteralExpr(tok.Line, tok.Literal.Number)
	case p.match(token.STRING):
		return ast.NewLiteralExpr(tok.Line, tok.Literal.Str)
	case p.match(token.THIS):
		return ast.NewThisExpr(tok.Line, tok)
	case p.match(token.IDENT):
		return ast.NewVariableExpr(tok.Line, tok)
	case p.match(token.LPAREN):
		inner := p.expression()
		p.consume(token.RPAREN, "')' after expression")
		return ast.NewGroupingExpr(tok.Line, inner)
	case p.match(token.FUN):
		return p.lambda(tok.Line)
	}

	p.errorAtCurrent("expression")
	panic(errPanicMode)
}

func (p *Parser) lambda(line int) ast.Expr {
	p.consume(token.LPAREN, "'(' after 'fun'")
	params := p.paramList()
	p.consume(token.RPAREN, "')' after parameters")
	p.consume(token.LBRACE, "'{' before lambda body")
	body := p.block()
	return ast.NewLambdaExpr(line, params, body)
}
