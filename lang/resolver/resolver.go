// Package resolver walks a parsed program once, before it ever runs, and
// annotates every variable reference with the number of lexical scopes
// between the use and its declaration. The interpreter's environments then
// look a name up by exact hop count instead of walking the chain by name,
// and a handful of statically-checkable mistakes (reading a local in its
// own initializer, returning from top level, breaking outside a loop,
// declaring a local that is never read) are reported before execution
// starts.
package resolver

import (
	"fmt"

	"github.com/mna/rlox/lang/ast"
	"github.com/mna/rlox/lang/scanner"
	"github.com/mna/rlox/lang/token"
)

// FunctionKind tracks what kind of function body is currently being
// resolved, so that return/this can be validated against their context.
type FunctionKind int

const (
	funcNone FunctionKind = iota
	funcFunction
	funcInitializer
	funcMethod
	funcClassMethod
	funcLambda
)

type classKind int

const (
	classNone classKind = iota
	classClass
)

// varState is the per-name bookkeeping kept in a scope while it is open.
type varState struct {
	tok         token.Token
	defined     bool
	used        bool
	checkUnused bool
}

type scope map[string]*varState

// Resolver performs a single pass over a program's statements, building a
// table from AST node identity to scope-hop distance.
type Resolver struct {
	scopes []scope
	locals map[int]int // ast node ID -> hop count to the declaring scope

	currentFunction FunctionKind
	currentClass    classKind
	loopDepth       int

	errors scanner.ErrorList
}

// New returns a Resolver ready to resolve a single program.
func New() *Resolver {
	return &Resolver{locals: make(map[int]int)}
}

// Resolve resolves an entire program and returns the distance table to
// hand to the interpreter: for a VariableExpr, AssignExpr or ThisExpr node
// whose ID appears in the table, the value is the number of environments
// to walk outward from the current one. A node whose ID is absent refers
// to a global, resolved by name at runtime instead.
//
// A non-nil error is always a scanner.ErrorList.
func Resolve(stmts []ast.Stmt) (map[int]int, error) {
	r := New()
	r.resolveStmts(stmts)
	r.errors.Sort()
	return r.locals, r.errors.Err()
}

func (r *Resolver) errorAt(tok token.Token, msg string) {
	r.errors.AddAt(tok, msg)
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(scope))
}

func (r *Resolver) endScope() {
	top := r.scopes[len(r.scopes)-1]
	for name, vs := range top {
		if vs.checkUnused && !vs.used {
			r.errorAt(vs.tok, fmt.Sprintf("Local variable %q is never used", name))
		}
	}
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare introduces name into the innermost scope as not-yet-defined; a
// reference to it resolved before define is a use-before-initialization
// error. checkUnused marks the binding for the unused-local check when its
// scope closes (only plain `var` locals are checked, not parameters, nor
// function/class names).
func (r *Resolver) declare(name token.Token, checkUnused bool) {
	if len(r.scopes) == 0 {
		return
	}
	sc := r.scopes[len(r.scopes)-1]
	if _, ok := sc[name.Lexeme]; ok {
		r.errorAt(name, "Already a variable with this name in this scope")
	}
	sc[name.Lexeme] = &varState{tok: name, checkUnused: checkUnused}
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme].defined = true
}

func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if vs, ok := r.scopes[i][name.Lexeme]; ok {
			vs.used = true
			r.locals[expr.ID()] = len(r.scopes) - 1 - i
			return
		}
	}
	// Unresolved at every open scope: treated as a global, looked up by
	// name directly in the outermost environment at runtime.
}

// resolveFunction resolves a function/method/lambda body in its own scope.
// currentFunction and loopDepth are both saved and restored: crossing a
// function boundary resets the loop-break stack, so a break statement
// inside this body can't validate against a loop the body is merely
// nested inside lexically (spec.md §4.3).
func (r *Resolver) resolveFunction(params []token.Token, body []ast.Stmt, kind FunctionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind
	enclosingLoopDepth := r.loopDepth
	r.loopDepth = 0

	r.beginScope()
	for _, p := range params {
		r.declare(p, false)
		r.define(p)
	}
	r.resolveStmts(body)
	r.endScope()

	r.currentFunction = enclosingFunction
	r.loopDepth = enclosingLoopDepth
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch stmt := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(stmt.Stmts)
		r.endScope()

	case *ast.BreakStmt:
		if r.loopDepth == 0 {
			r.errorAt(stmt.Keyword, "Can't break outside of a loop")
		}

	case *ast.ClassStmt:
		r.declare(stmt.Name, false)
		r.define(stmt.Name)

		enclosingClass := r.currentClass
		r.currentClass = classClass

		r.beginScope()
		r.scopes[len(r.scopes)-1]["this"] = &varState{defined: true}
		for _, m := range stmt.Methods {
			kind := funcMethod
			if m.Kind == ast.FunctionKindInitializer {
				kind = funcInitializer
			}
			r.resolveFunction(m.Params, m.Body, kind)
		}
		r.endScope()

		for _, m := range stmt.ClassMethods {
			r.resolveFunction(m.Params, m.Body, funcClassMethod)
		}

		r.currentClass = enclosingClass

	case *ast.ExpressionStmt:
		r.resolveExpr(stmt.Expr)

	case *ast.FunctionStmt:
		r.declare(stmt.Name, false)
		r.define(stmt.Name)
		r.resolveFunction(stmt.Params, stmt.Body, funcFunction)

	case *ast.IfStmt:
		r.resolveExpr(stmt.Cond)
		r.resolveStmt(stmt.Then)
		if stmt.Else != nil {
			r.resolveStmt(stmt.Else)
		}

	case *ast.PrintStmt:
		r.resolveExpr(stmt.Expr)

	case *ast.ReturnStmt:
		if r.currentFunction == funcNone {
			r.errorAt(stmt.Keyword, "Can't return from top-level code")
		}
		if stmt.Value != nil {
			if r.currentFunction == funcInitializer {
				r.errorAt(stmt.Keyword, "Can't return a value from an initializer")
			}
			r.resolveExpr(stmt.Value)
		}

	case *ast.VarStmt:
		r.declare(stmt.Name, true)
		if stmt.Initializer != nil {
			r.resolveExpr(stmt.Initializer)
		}
		r.define(stmt.Name)

	case *ast.WhileStmt:
		r.resolveExpr(stmt.Cond)
		r.loopDepth++
		r.resolveStmt(stmt.Body)
		r.loopDepth--

	default:
		panic(fmt.Sprintf("resolver: unexpected stmt %T", stmt))
	}
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch expr := expr.(type) {
	case *ast.AssignExpr:
		r.resolveExpr(expr.Value)
		r.resolveLocal(expr, expr.Name)

	case *ast.BinaryExpr:
		r.resolveExpr(expr.Left)
		r.resolveExpr(expr.Right)

	case *ast.CallExpr:
		r.resolveExpr(expr.Callee)
		for _, a := range expr.Args {
			r.resolveExpr(a)
		}

	case *ast.GetExpr:
		r.resolveExpr(expr.Object)

	case *ast.GroupingExpr:
		r.resolveExpr(expr.Inner)

	case *ast.LambdaExpr:
		r.resolveFunction(expr.Params, expr.Body, funcLambda)

	case *ast.LiteralExpr:
		// nothing to resolve

	case *ast.LogicalExpr:
		r.resolveExpr(expr.Left)
		r.resolveExpr(expr.Right)

	case *ast.SetExpr:
		r.resolveExpr(expr.Value)
		r.resolveExpr(expr.Object)

	case *ast.TernaryExpr:
		r.resolveExpr(expr.Cond)
		r.resolveExpr(expr.Then)
		r.resolveExpr(expr.Else)

	case *ast.ThisExpr:
		if r.currentClass == classNone || r.currentFunction == funcClassMethod {
			r.errorAt(expr.Keyword, "Can't use 'this' outside of a class")
			return
		}
		r.resolveLocal(expr, expr.Keyword)

	case *ast.UnaryExpr:
		r.resolveExpr(expr.Right)

	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if vs, ok := r.scopes[len(r.scopes)-1][expr.Name.Lexeme]; ok && !vs.defined {
				r.errorAt(expr.Name, "Can't read local variable in its own initializer")
			}
		}
		r.resolveLocal(expr, expr.Name)

	default:
		panic(fmt.Sprintf("resolver: unexpected expr %T", expr))
	}
}
