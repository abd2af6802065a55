// Package ast defines the value types for the abstract syntax tree produced
// by the parser and annotated by the resolver.
package ast

import "sync/atomic"

var idSeq int64

// nextID returns a process-wide monotonically increasing id, used to give
// every node a stable identity independent of its contents so that two
// syntactically identical nodes parsed from different source positions
// remain distinguishable as map keys.
func nextID() int {
	return int(atomic.AddInt64(&idSeq, 1))
}

// base is embedded in every node to provide its identity and source line.
type base struct {
	id   int
	line int
}

func newBase(line int) base { return base{id: nextID(), line: line} }

func (b base) ID() int   { return b.id }
func (b base) Line() int { return b.line }

// Node is implemented by every expression and statement node.
type Node interface {
	// ID returns this node's stable identity, used by the resolver as a
	// lookup key independent of the node's textual content.
	ID() int
	// Line returns the 1-based source line the node starts on.
	Line() int
	// Walk visits this node's children with v, implementing the Visitor
	// pattern together with the package-level Walk function.
	Walk(v Visitor)
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
	// BlockEnding reports whether this statement ends execution of its
	// enclosing block (return, break). The parser does not reject
	// statements that follow one.
	BlockEnding() bool
}

// FunctionKind distinguishes the contexts a FunctionStmt (or LambdaExpr) may
// be declared in, mirrored by the resolver's current_function tracking.
type FunctionKind int

const (
	FunctionKindFunction FunctionKind = iota
	FunctionKindMethod
	FunctionKindClassMethod
	FunctionKindProperty
	FunctionKindLambda
	FunctionKindInitializer
)

func (k FunctionKind) String() string {
	switch k {
	case FunctionKindFunction:
		return "function"
	case FunctionKindMethod:
		return "method"
	case FunctionKindClassMethod:
		return "class method"
	case FunctionKindProperty:
		return "property"
	case FunctionKindLambda:
		return "lambda"
	case FunctionKindInitializer:
		return "initializer"
	default:
		return "unknown function kind"
	}
}
