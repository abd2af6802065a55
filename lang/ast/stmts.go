package ast

import "github.com/mna/rlox/lang/token"

type (
	// BlockStmt represents a `{ ... }` block of statements.
	BlockStmt struct {
		base
		Stmts []Stmt
	}

	// BreakStmt represents a `break;` statement.
	BreakStmt struct {
		base
		Keyword token.Token
	}

	// ClassStmt represents a class declaration. Methods holds instance
	// methods and properties (FunctionKindMethod / FunctionKindProperty /
	// FunctionKindInitializer); ClassMethods holds `class`-prefixed methods
	// (FunctionKindClassMethod).
	ClassStmt struct {
		base
		Name         token.Token
		Methods      []*FunctionStmt
		ClassMethods []*FunctionStmt
	}

	// ExpressionStmt represents an expression evaluated for its side effect.
	ExpressionStmt struct {
		base
		Expr Expr
	}

	// FunctionStmt represents a named function, method, class method or
	// property declaration.
	FunctionStmt struct {
		base
		Name   token.Token
		Params []token.Token
		Body   []Stmt
		Kind   FunctionKind
	}

	// IfStmt represents an if/else statement. Else is nil when absent.
	IfStmt struct {
		base
		Cond Expr
		Then Stmt
		Else Stmt
	}

	// PrintStmt represents a `print expr;` statement.
	PrintStmt struct {
		base
		Expr Expr
	}

	// ReturnStmt represents a `return [expr];` statement. Value is nil when
	// no expression is given.
	ReturnStmt struct {
		base
		Keyword token.Token
		Value   Expr
	}

	// VarStmt represents a `var name [= initializer];` declaration.
	// Initializer is nil when absent.
	VarStmt struct {
		base
		Name        token.Token
		Initializer Expr
	}

	// WhileStmt represents a `while (cond) body` loop.
	WhileStmt struct {
		base
		Cond Expr
		Body Stmt
	}
)

func NewBlockStmt(line int, stmts []Stmt) *BlockStmt { return &BlockStmt{base: newBase(line), Stmts: stmts} }
func NewBreakStmt(line int, keyword token.Token) *BreakStmt {
	return &BreakStmt{base: newBase(line), Keyword: keyword}
}
func NewClassStmt(line int, name token.Token, methods, classMethods []*FunctionStmt) *ClassStmt {
	return &ClassStmt{base: newBase(line), Name: name, Methods: methods, ClassMethods: classMethods}
}
func NewExpressionStmt(line int, expr Expr) *ExpressionStmt {
	return &ExpressionStmt{base: newBase(line), Expr: expr}
}
func NewFunctionStmt(line int, name token.Token, params []token.Token, body []Stmt, kind FunctionKind) *FunctionStmt {
	return &FunctionStmt{base: newBase(line), Name: name, Params: params, Body: body, Kind: kind}
}
func NewIfStmt(line int, cond Expr, then, els Stmt) *IfStmt {
	return &IfStmt{base: newBase(line), Cond: cond, Then: then, Else: els}
}
func NewPrintStmt(line int, expr Expr) *PrintStmt { return &PrintStmt{base: newBase(line), Expr: expr} }
func NewReturnStmt(line int, keyword token.Token, value Expr) *ReturnStmt {
	return &ReturnStmt{base: newBase(line), Keyword: keyword, Value: value}
}
func NewVarStmt(line int, name token.Token, initializer Expr) *VarStmt {
	return &VarStmt{base: newBase(line), Name: name, Initializer: initializer}
}
func NewWhileStmt(line int, cond Expr, body Stmt) *WhileStmt {
	return &WhileStmt{base: newBase(line), Cond: cond, Body: body}
}

func (n *BlockStmt) stmtNode()      {}
func (n *BreakStmt) stmtNode()      {}
func (n *ClassStmt) stmtNode()      {}
func (n *ExpressionStmt) stmtNode() {}
func (n *FunctionStmt) stmtNode()   {}
func (n *IfStmt) stmtNode()         {}
func (n *PrintStmt) stmtNode()      {}
func (n *ReturnStmt) stmtNode()     {}
func (n *VarStmt) stmtNode()        {}
func (n *WhileStmt) stmtNode()      {}

func (n *BlockStmt) BlockEnding() bool      { return false }
func (n *BreakStmt) BlockEnding() bool      { return true }
func (n *ClassStmt) BlockEnding() bool      { return false }
func (n *ExpressionStmt) BlockEnding() bool { return false }
func (n *FunctionStmt) BlockEnding() bool   { return false }
func (n *IfStmt) BlockEnding() bool         { return false }
func (n *PrintStmt) BlockEnding() bool      { return false }
func (n *ReturnStmt) BlockEnding() bool     { return true }
func (n *VarStmt) BlockEnding() bool        { return false }
func (n *WhileStmt) BlockEnding() bool      { return false }

func (n *BlockStmt) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}
func (n *BreakStmt) Walk(v Visitor) {}
func (n *ClassStmt) Walk(v Visitor) {
	for _, m := range n.Methods {
		Walk(v, m)
	}
	for _, m := range n.ClassMethods {
		Walk(v, m)
	}
}
func (n *ExpressionStmt) Walk(v Visitor) { Walk(v, n.Expr) }
func (n *FunctionStmt) Walk(v Visitor) {
	for _, s := range n.Body {
		Walk(v, s)
	}
}
func (n *IfStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Then)
	if n.Else != nil {
		Walk(v, n.Else)
	}
}
func (n *PrintStmt) Walk(v Visitor) { Walk(v, n.Expr) }
func (n *ReturnStmt) Walk(v Visitor) {
	if n.Value != nil {
		Walk(v, n.Value)
	}
}
func (n *VarStmt) Walk(v Visitor) {
	if n.Initializer != nil {
		Walk(v, n.Initializer)
	}
}
func (n *WhileStmt) Walk(v Visitor) { Walk(v, n.Cond); Walk(v, n.Body) }
