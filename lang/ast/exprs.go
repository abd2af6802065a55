package ast

import "github.com/mna/rlox/lang/token"

type (
	// AssignExpr represents an assignment x = value.
	AssignExpr struct {
		base
		Name  token.Token
		Value Expr
	}

	// BinaryExpr represents a binary operator expression, e.g. x + y.
	BinaryExpr struct {
		base
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// CallExpr represents a function call, e.g. f(x, y).
	CallExpr struct {
		base
		Callee Expr
		Paren  token.Token // the closing ')' token, for error reporting
		Args   []Expr
	}

	// GetExpr represents a property access, e.g. obj.name.
	GetExpr struct {
		base
		Object Expr
		Name   token.Token
	}

	// GroupingExpr represents a parenthesized expression.
	GroupingExpr struct {
		base
		Inner Expr
	}

	// LambdaExpr represents an anonymous function literal.
	LambdaExpr struct {
		base
		Params []token.Token
		Body   []Stmt
	}

	// LiteralExpr represents a literal value: a number (float64), a string,
	// a boolean, or nil.
	LiteralExpr struct {
		base
		Value any
	}

	// LogicalExpr represents a short-circuiting `and`/`or` expression.
	LogicalExpr struct {
		base
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// SetExpr represents a property assignment, e.g. obj.name = value.
	SetExpr struct {
		base
		Object Expr
		Name   token.Token
		Value  Expr
	}

	// TernaryExpr represents cond ? then : else.
	TernaryExpr struct {
		base
		Cond, Then, Else Expr
	}

	// ThisExpr represents a `this` reference inside a method body.
	ThisExpr struct {
		base
		Keyword token.Token
	}

	// UnaryExpr represents a unary operator expression, e.g. -x or !x.
	UnaryExpr struct {
		base
		Op    token.Token
		Right Expr
	}

	// VariableExpr represents a reference to a named binding.
	VariableExpr struct {
		base
		Name token.Token
	}
)

func NewAssignExpr(line int, name token.Token, value Expr) *AssignExpr {
	return &AssignExpr{base: newBase(line), Name: name, Value: value}
}
func NewBinaryExpr(line int, left Expr, op token.Token, right Expr) *BinaryExpr {
	return &BinaryExpr{base: newBase(line), Left: left, Op: op, Right: right}
}
func NewCallExpr(line int, callee Expr, paren token.Token, args []Expr) *CallExpr {
	return &CallExpr{base: newBase(line), Callee: callee, Paren: paren, Args: args}
}
func NewGetExpr(line int, object Expr, name token.Token) *GetExpr {
	return &GetExpr{base: newBase(line), Object: object, Name: name}
}
func NewGroupingExpr(line int, inner Expr) *GroupingExpr {
	return &GroupingExpr{base: newBase(line), Inner: inner}
}
func NewLambdaExpr(line int, params []token.Token, body []Stmt) *LambdaExpr {
	return &LambdaExpr{base: newBase(line), Params: params, Body: body}
}
func NewLiteralExpr(line int, value any) *LiteralExpr {
	return &LiteralExpr{base: newBase(line), Value: value}
}
func NewLogicalExpr(line int, left Expr, op token.Token, right Expr) *LogicalExpr {
	return &LogicalExpr{base: newBase(line), Left: left, Op: op, Right: right}
}
func NewSetExpr(line int, object Expr, name token.Token, value Expr) *SetExpr {
	return &SetExpr{base: newBase(line), Object: object, Name: name, Value: value}
}
func NewTernaryExpr(line int, cond, then, els Expr) *TernaryExpr {
	return &TernaryExpr{base: newBase(line), Cond: cond, Then: then, Else: els}
}
func NewThisExpr(line int, keyword token.Token) *ThisExpr {
	return &ThisExpr{base: newBase(line), Keyword: keyword}
}
func NewUnaryExpr(line int, op token.Token, right Expr) *UnaryExpr {
	return &UnaryExpr{base: newBase(line), Op: op, Right: right}
}
func NewVariableExpr(line int, name token.Token) *VariableExpr {
	return &VariableExpr{base: newBase(line), Name: name}
}

func (n *AssignExpr) exprNode()   {}
func (n *BinaryExpr) exprNode()   {}
func (n *CallExpr) exprNode()     {}
func (n *GetExpr) exprNode()      {}
func (n *GroupingExpr) exprNode() {}
func (n *LambdaExpr) exprNode()   {}
func (n *LiteralExpr) exprNode()  {}
func (n *LogicalExpr) exprNode()  {}
func (n *SetExpr) exprNode()      {}
func (n *TernaryExpr) exprNode()  {}
func (n *ThisExpr) exprNode()     {}
func (n *UnaryExpr) exprNode()    {}
func (n *VariableExpr) exprNode() {}

func (n *AssignExpr) Walk(v Visitor) { Walk(v, n.Value) }
func (n *BinaryExpr) Walk(v Visitor) { Walk(v, n.Left); Walk(v, n.Right) }
func (n *CallExpr) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Args {
		Walk(v, a)
	}
}
func (n *GetExpr) Walk(v Visitor)      { Walk(v, n.Object) }
func (n *GroupingExpr) Walk(v Visitor) { Walk(v, n.Inner) }
func (n *LambdaExpr) Walk(v Visitor) {
	for _, s := range n.Body {
		Walk(v, s)
	}
}
func (n *LiteralExpr) Walk(v Visitor) {}
func (n *LogicalExpr) Walk(v Visitor) { Walk(v, n.Left); Walk(v, n.Right) }
func (n *SetExpr) Walk(v Visitor)     { Walk(v, n.Object); Walk(v, n.Value) }
func (n *TernaryExpr) Walk(v Visitor) { Walk(v, n.Cond); Walk(v, n.Then); Walk(v, n.Else) }
func (n *ThisExpr) Walk(v Visitor)    {}
func (n *UnaryExpr) Walk(v Visitor)   { Walk(v, n.Right) }
func (n *VariableExpr) Walk(v Visitor) {}
