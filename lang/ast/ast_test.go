package ast

import (
	"testing"

	"github.com/mna/rlox/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ident(name string) token.Token {
	return token.Token{Kind: token.IDENT, Lexeme: name}
}

func TestNodeIdentityIsStableAndDistinct(t *testing.T) {
	a := NewVariableExpr(1, ident("x"))
	b := NewVariableExpr(1, ident("x"))
	assert.NotEqual(t, a.ID(), b.ID(), "two distinct nodes must have distinct ids even with identical content")
	assert.Equal(t, a.ID(), a.ID(), "id must be stable across repeated reads")
}

func TestWalkVisitsEveryChild(t *testing.T) {
	left := NewLiteralExpr(1, 1.0)
	right := NewLiteralExpr(1, 2.0)
	bin := NewBinaryExpr(1, left, token.Token{Kind: token.PLUS, Lexeme: "+"}, right)
	stmt := NewExpressionStmt(1, bin)

	var visited []Node
	var visitor VisitorFunc
	visitor = func(n Node, dir VisitDirection) Visitor {
		if dir == VisitEnter {
			visited = append(visited, n)
		}
		return visitor
	}
	Walk(visitor, stmt)

	require.Len(t, visited, 4) // stmt, bin, left literal, right literal
}

func TestBlockEnding(t *testing.T) {
	assert.True(t, (&ReturnStmt{}).BlockEnding())
	assert.True(t, (&BreakStmt{}).BlockEnding())
	assert.False(t, (&PrintStmt{}).BlockEnding())
	assert.False(t, (&VarStmt{}).BlockEnding())
}

func TestPrinterBasic(t *testing.T) {
	expr := NewBinaryExpr(1,
		NewUnaryExpr(1, token.Token{Kind: token.MINUS, Lexeme: "-"}, NewLiteralExpr(1, 123.0)),
		token.Token{Kind: token.STAR, Lexeme: "*"},
		NewGroupingExpr(1, NewLiteralExpr(1, 45.67)),
	)
	got := Printer{}.Print([]Stmt{NewExpressionStmt(1, expr)})
	assert.Equal(t, "(expr (* (- 123) (group 45.67)))", got)
}
