package parser

import (
	"fmt"

	"github.com/mna/rlox/lang/ast"
	"github.com/mna/rlox/lang/token"
)

// declaration parses a single top-level-or-block production, recovering by
// synchronizing to the next statement boundary if a parse error panics out
// of it.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if r != errPanicMode {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	switch {
	case p.match(token.CLASS):
		return p.classDecl()
	case p.match(token.FUN):
		return p.funDecl("function")
	case p.match(token.VAR):
		return p.varDecl()
	default:
		return p.statement()
	}
}

func (p *Parser) classDecl() ast.Stmt {
	line := p.previous().Line
	name := p.consume(token.IDENT, "class name")
	p.consume(token.LBRACE, "'{' before class body")

	var methods, classMethods []*ast.FunctionStmt
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		isClassMethod := p.match(token.CLASS)
		m := p.method()
		if isClassMethod {
			m.Kind = ast.FunctionKindClassMethod
			classMethods = append(classMethods, m)
		} else {
			methods = append(methods, m)
		}
	}
	p.consume(token.RBRACE, "'}' after class body")
	return ast.NewClassStmt(line, name, methods, classMethods)
}

// method parses a classMember's method production:
//
//	method → IDENT ("(" params? ")")? block
//
// A name with no following '(' is a property: it is invoked automatically
// on access instead of requiring an explicit call.
func (p *Parser) method() *ast.FunctionStmt {
	line := p.peek().Line
	name := p.consume(token.IDENT, "method name")

	kind := ast.FunctionKindMethod
	if name.Lexeme == "init" {
		kind = ast.FunctionKindInitializer
	}

	var params []token.Token
	if p.match(token.LPAREN) {
		params = p.paramList()
		p.consume(token.RPAREN, "')' after parameters")
	} else if kind != ast.FunctionKindInitializer {
		kind = ast.FunctionKindProperty
	}

	p.consume(token.LBRACE, fmt.Sprintf("'{' before %s body", kind))
	body := p.block()
	return ast.NewFunctionStmt(line, name, params, body, kind)
}

func (p *Parser) funDecl(kind string) ast.Stmt {
	line := p.peek().Line
	name := p.consume(token.IDENT, kind+" name")
	p.consume(token.LPAREN, "'(' after "+kind+" name")
	params := p.paramList()
	p.consume(token.RPAREN, "')' after parameters")
	p.consume(token.LBRACE, "'{' before "+kind+" body")
	body := p.block()
	return ast.NewFunctionStmt(line, name, params, body, ast.FunctionKindFunction)
}

func (p *Parser) paramList() []token.Token {
	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), fmt.Sprintf("Can't have more than %d parameters", maxArgs))
			}
			params = append(params, p.consume(token.IDENT, "parameter name"))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	return params
}

func (p *Parser) varDecl() ast.Stmt {
	line := p.previous().Line
	name := p.consume(token.IDENT, "variable name")
	var init ast.Expr
	if p.match(token.EQ) {
		init = p.expression()
	}
	p.consume(token.SEMI, "';' after variable declaration")
	return ast.NewVarStmt(line, name, init)
}
