package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mna/rlox/lang/token"
)

// Printer renders a parsed program as a parenthesized (Lisp-style) textual
// form, used by the CLI's `--ast` mode for debugging.
type Printer struct{}

// Print renders stmts as a newline-separated sequence of parenthesized
// s-expressions.
func (p Printer) Print(stmts []Stmt) string {
	var sb strings.Builder
	for i, s := range stmts {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(p.stmt(s))
	}
	return sb.String()
}

func (p Printer) parenthesize(name string, parts ...any) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, part := range parts {
		sb.WriteByte(' ')
		switch v := part.(type) {
		case Expr:
			sb.WriteString(p.expr(v))
		case Stmt:
			sb.WriteString(p.stmt(v))
		case []Stmt:
			sb.WriteString(p.block(v))
		case string:
			sb.WriteString(v)
		default:
			sb.WriteString(fmt.Sprint(v))
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

func (p Printer) block(stmts []Stmt) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = p.stmt(s)
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (p Printer) expr(e Expr) string {
	if e == nil {
		return "nil"
	}
	switch n := e.(type) {
	case *AssignExpr:
		return p.parenthesize("= "+n.Name.Lexeme, n.Value)
	case *BinaryExpr:
		return p.parenthesize(n.Op.Lexeme, n.Left, n.Right)
	case *CallExpr:
		args := make([]any, 0, len(n.Args)+1)
		args = append(args, n.Callee)
		for _, a := range n.Args {
			args = append(args, a)
		}
		return p.parenthesize("call", args...)
	case *GetExpr:
		return p.parenthesize("get ."+n.Name.Lexeme, n.Object)
	case *GroupingExpr:
		return p.parenthesize("group", n.Inner)
	case *LambdaExpr:
		return fmt.Sprintf("(lambda (%s) %s)", joinParams(n.Params), p.block(n.Body))
	case *LiteralExpr:
		return literalString(n.Value)
	case *LogicalExpr:
		return p.parenthesize(n.Op.Lexeme, n.Left, n.Right)
	case *SetExpr:
		return p.parenthesize("set ."+n.Name.Lexeme, n.Object, n.Value)
	case *TernaryExpr:
		return p.parenthesize("?:", n.Cond, n.Then, n.Else)
	case *ThisExpr:
		return "this"
	case *UnaryExpr:
		return p.parenthesize(n.Op.Lexeme, n.Right)
	case *VariableExpr:
		return n.Name.Lexeme
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func (p Printer) stmt(s Stmt) string {
	if s == nil {
		return "nil"
	}
	switch n := s.(type) {
	case *BlockStmt:
		return p.block(n.Stmts)
	case *BreakStmt:
		return "(break)"
	case *ClassStmt:
		return fmt.Sprintf("(class %s)", n.Name.Lexeme)
	case *ExpressionStmt:
		return p.parenthesize("expr", n.Expr)
	case *FunctionStmt:
		return fmt.Sprintf("(fun %s (%s) %s)", n.Name.Lexeme, joinParams(n.Params), p.block(n.Body))
	case *IfStmt:
		if n.Else != nil {
			return p.parenthesize("if", n.Cond, n.Then, n.Else)
		}
		return p.parenthesize("if", n.Cond, n.Then)
	case *PrintStmt:
		return p.parenthesize("print", n.Expr)
	case *ReturnStmt:
		if n.Value != nil {
			return p.parenthesize("return", n.Value)
		}
		return "(return)"
	case *VarStmt:
		if n.Initializer != nil {
			return p.parenthesize("var "+n.Name.Lexeme, n.Initializer)
		}
		return fmt.Sprintf("(var %s)", n.Name.Lexeme)
	case *WhileStmt:
		return p.parenthesize("while", n.Cond, n.Body)
	default:
		return fmt.Sprintf("<unknown stmt %T>", s)
	}
}

func joinParams(params []token.Token) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Lexeme
	}
	return strings.Join(names, " ")
}

func literalString(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return strconv.Quote(x)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
