package interpreter

import (
	"fmt"
	"io"
	"math"

	"github.com/mna/rlox/lang/ast"
	"github.com/mna/rlox/lang/token"
)

// Interpreter executes a resolved program. It holds globals (the
// outermost environment), the currently active environment, and the
// locals table produced by the resolver: a map from expression node
// identity to the number of environments to walk outward from the
// current one.
type Interpreter struct {
	globals *Environment
	env     *Environment
	locals  map[int]int
	out     io.Writer
}

// New returns an Interpreter that writes print output to out and
// resolves Variable/Assign/This nodes using locals (as produced by
// resolver.Resolve; may be nil, in which case every such node is
// treated as global).
func New(out io.Writer, locals map[int]int) *Interpreter {
	if locals == nil {
		locals = make(map[int]int)
	}
	globals := NewEnvironment(nil)
	globals.Define("clock", nativeClock())
	return &Interpreter{globals: globals, env: globals, locals: locals, out: out}
}

// Interpret executes a full program's statements in order, stopping at
// the first error.
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate evaluates a single expression in the current environment. It is
// exported for the REPL driver, which parses a bare expression on its own
// and wants its value without wrapping it in a statement.
func (in *Interpreter) Evaluate(expr ast.Expr) (Value, error) {
	return in.evaluate(expr)
}

// MergeLocals adds locals (as produced by a fresh resolver.Resolve pass)
// to the interpreter's resolution table instead of replacing it, so that
// AST node identities from earlier REPL lines remain resolvable by
// closures that captured them.
func (in *Interpreter) MergeLocals(locals map[int]int) {
	for id, dist := range locals {
		in.locals[id] = dist
	}
}

func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch stmt := stmt.(type) {
	case *ast.BlockStmt:
		return in.executeBlock(stmt.Stmts, NewEnvironment(in.env))

	case *ast.BreakStmt:
		return errBreak

	case *ast.ClassStmt:
		return in.executeClassStmt(stmt)

	case *ast.ExpressionStmt:
		_, err := in.evaluate(stmt.Expr)
		return err

	case *ast.FunctionStmt:
		fn := newUserFunction(stmt.Name.Lexeme, stmt.Params, stmt.Body, in.env, stmt.Kind)
		in.env.Define(stmt.Name.Lexeme, fn)
		return nil

	case *ast.IfStmt:
		cond, err := in.evaluate(stmt.Cond)
		if err != nil {
			return err
		}
		if truthy(cond) {
			return in.execute(stmt.Then)
		}
		if stmt.Else != nil {
			return in.execute(stmt.Else)
		}
		return nil

	case *ast.PrintStmt:
		v, err := in.evaluate(stmt.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, v.String())
		return nil

	case *ast.ReturnStmt:
		value := Value(Nil)
		if stmt.Value != nil {
			v, err := in.evaluate(stmt.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{value: value}

	case *ast.VarStmt:
		value := Value(Undefined)
		if stmt.Initializer != nil {
			v, err := in.evaluate(stmt.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.env.Define(stmt.Name.Lexeme, value)
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := in.evaluate(stmt.Cond)
			if err != nil {
				return err
			}
			if !truthy(cond) {
				return nil
			}
			if err := in.execute(stmt.Body); err != nil {
				if err == errBreak {
					return nil
				}
				return err
			}
		}

	default:
		panic(fmt.Sprintf("interpreter: unexpected stmt %T", stmt))
	}
}

func (in *Interpreter) executeClassStmt(stmt *ast.ClassStmt) error {
	methods := make(map[string]*UserFunction, len(stmt.Methods))
	for _, m := range stmt.Methods {
		methods[m.Name.Lexeme] = newUserFunction(m.Name.Lexeme, m.Params, m.Body, in.env, m.Kind)
	}
	classMethods := make(map[string]*UserFunction, len(stmt.ClassMethods))
	for _, m := range stmt.ClassMethods {
		classMethods[m.Name.Lexeme] = newUserFunction(m.Name.Lexeme, m.Params, m.Body, in.env, m.Kind)
	}
	in.env.Define(stmt.Name.Lexeme, NewClass(stmt.Name.Lexeme, methods, classMethods))
	return nil
}

func (in *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch expr := expr.(type) {
	case *ast.AssignExpr:
		value, err := in.evaluate(expr.Value)
		if err != nil {
			return nil, err
		}
		if dist, ok := in.locals[expr.ID()]; ok {
			in.env.AssignAt(dist, expr.Name, value)
		} else if err := in.globals.Assign(expr.Name, value); err != nil {
			return nil, err
		}
		return value, nil

	case *ast.BinaryExpr:
		left, err := in.evaluate(expr.Left)
		if err != nil {
			return nil, err
		}
		right, err := in.evaluate(expr.Right)
		if err != nil {
			return nil, err
		}
		return in.binaryOp(expr.Op, left, right)

	case *ast.CallExpr:
		return in.evalCall(expr)

	case *ast.GetExpr:
		return in.evalGet(expr)

	case *ast.GroupingExpr:
		return in.evaluate(expr.Inner)

	case *ast.LambdaExpr:
		return newUserFunction("", expr.Params, expr.Body, in.env, ast.FunctionKindLambda), nil

	case *ast.LiteralExpr:
		return literalValue(expr.Value), nil

	case *ast.LogicalExpr:
		left, err := in.evaluate(expr.Left)
		if err != nil {
			return nil, err
		}
		if expr.Op.Kind == token.OR {
			if truthy(left) {
				return left, nil
			}
		} else if !truthy(left) {
			return left, nil
		}
		return in.evaluate(expr.Right)

	case *ast.SetExpr:
		return in.evalSet(expr)

	case *ast.TernaryExpr:
		cond, err := in.evaluate(expr.Cond)
		if err != nil {
			return nil, err
		}
		if truthy(cond) {
			return in.evaluate(expr.Then)
		}
		return in.evaluate(expr.Else)

	case *ast.ThisExpr:
		return in.lookupVariable(expr.Keyword, expr.ID())

	case *ast.UnaryExpr:
		return in.evalUnary(expr)

	case *ast.VariableExpr:
		return in.lookupVariable(expr.Name, expr.ID())

	default:
		panic(fmt.Sprintf("interpreter: unexpected expr %T", expr))
	}
}

func literalValue(v any) Value {
	switch v := v.(type) {
	case nil:
		return Nil
	case bool:
		return BoolValue(v)
	case float64:
		return NumberValue(v)
	case string:
		return StringValue(v)
	default:
		panic(fmt.Sprintf("interpreter: unexpected literal %#v", v))
	}
}

func (in *Interpreter) lookupVariable(name token.Token, id int) (Value, error) {
	var v Value
	if dist, ok := in.locals[id]; ok {
		v = in.env.GetAt(dist, name.Lexeme)
	} else {
		val, err := in.globals.Get(name)
		if err != nil {
			return nil, err
		}
		v = val
	}
	if _, undef := v.(UndefinedValue); undef {
		return nil, NewRuntimeError(name, fmt.Sprintf("Undefined variable '%s'.", name.Lexeme))
	}
	return v, nil
}

func (in *Interpreter) evalUnary(expr *ast.UnaryExpr) (Value, error) {
	right, err := in.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}
	switch expr.Op.Kind {
	case token.BANG:
		return BoolValue(!truthy(right)), nil
	case token.MINUS:
		n, ok := right.(NumberValue)
		if !ok {
			return nil, NewRuntimeError(expr.Op, "Operand must be a number.")
		}
		return -n, nil
	default:
		panic(fmt.Sprintf("interpreter: unexpected unary operator %v", expr.Op.Kind))
	}
}

func (in *Interpreter) binaryOp(op token.Token, left, right Value) (Value, error) {
	switch op.Kind {
	case token.PLUS:
		return evalPlus(op, left, right)

	case token.MINUS:
		return numericOp(op, left, right, func(a, b float64) float64 { return a - b })

	case token.STAR:
		return numericOp(op, left, right, func(a, b float64) float64 { return a * b })

	case token.SLASH:
		l, lok := left.(NumberValue)
		r, rok := right.(NumberValue)
		if !lok || !rok {
			return nil, NewRuntimeError(op, "Operands must be numbers.")
		}
		if math.Abs(float64(r)) < 1e-8 {
			return nil, NewRuntimeError(op, "Attempt to divide by zero.")
		}
		return l / r, nil

	case token.GT:
		return numericCmp(op, left, right, func(a, b float64) bool { return a > b })
	case token.GT_EQ:
		return numericCmp(op, left, right, func(a, b float64) bool { return a >= b })
	case token.LT:
		return numericCmp(op, left, right, func(a, b float64) bool { return a < b })
	case token.LT_EQ:
		return numericCmp(op, left, right, func(a, b float64) bool { return a <= b })

	case token.EQ_EQ, token.BANG_EQ:
		eq, err := valuesEqual(op, left, right)
		if err != nil {
			return nil, err
		}
		if op.Kind == token.BANG_EQ {
			eq = !eq
		}
		return BoolValue(eq), nil

	default:
		panic(fmt.Sprintf("interpreter: unexpected binary operator %v", op.Kind))
	}
}

func evalPlus(op token.Token, left, right Value) (Value, error) {
	if l, ok := left.(NumberValue); ok {
		r, ok := right.(NumberValue)
		if !ok {
			return nil, NewRuntimeError(op, "Operands must be two numbers or two strings.")
		}
		return l + r, nil
	}
	if l, ok := left.(StringValue); ok {
		switch right.(type) {
		case StringValue, NumberValue, BoolValue, NilValue:
			return StringValue(string(l) + right.String()), nil
		}
	}
	return nil, NewRuntimeError(op, "Operands must be two numbers or two strings.")
}

func numericOp(op token.Token, left, right Value, f func(a, b float64) float64) (Value, error) {
	l, lok := left.(NumberValue)
	r, rok := right.(NumberValue)
	if !lok || !rok {
		return nil, NewRuntimeError(op, "Operands must be numbers.")
	}
	return NumberValue(f(float64(l), float64(r))), nil
}

func numericCmp(op token.Token, left, right Value, f func(a, b float64) bool) (Value, error) {
	l, lok := left.(NumberValue)
	r, rok := right.(NumberValue)
	if !lok || !rok {
		return nil, NewRuntimeError(op, "Operands must be numbers.")
	}
	return BoolValue(f(float64(l), float64(r))), nil
}

// valuesEqual implements the spec's deliberately narrow "==": defined
// only for two numbers or two strings. Every other pairing, including
// two of the same non-numeric/non-string type, is a runtime error.
func valuesEqual(op token.Token, left, right Value) (bool, error) {
	switch l := left.(type) {
	case NumberValue:
		if r, ok := right.(NumberValue); ok {
			return l == r, nil
		}
	case StringValue:
		if r, ok := right.(StringValue); ok {
			return l == r, nil
		}
	}
	return false, NewRuntimeError(op, "Operands must be two numbers or two strings.")
}

func (in *Interpreter) evalCall(expr *ast.CallExpr) (Value, error) {
	callee, err := in.evaluate(expr.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(expr.Args))
	for i, a := range expr.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, NewRuntimeError(expr.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, NewRuntimeError(expr.Paren, fmt.Sprintf("Expected %d arguments but got %d", callable.Arity(), len(args)))
	}
	return callable.Call(in, args)
}

func (in *Interpreter) evalGet(expr *ast.GetExpr) (Value, error) {
	obj, err := in.evaluate(expr.Object)
	if err != nil {
		return nil, err
	}

	switch o := obj.(type) {
	case *Instance:
		if v, ok := o.Fields.Get(expr.Name.Lexeme); ok {
			return v, nil
		}
		if m, ok := o.Class.FindMethod(expr.Name.Lexeme); ok {
			bound := m.Bind(o)
			if bound.IsProperty() {
				return bound.Call(in, nil)
			}
			return bound, nil
		}
		return nil, NewRuntimeError(expr.Name, fmt.Sprintf("Undefined property '%s'.", expr.Name.Lexeme))

	case *ClassValue:
		for c := o; c != nil; c = c.Superclass {
			if v, ok := c.Fields.Get(expr.Name.Lexeme); ok {
				return v, nil
			}
		}
		if m, ok := o.FindClassMethod(expr.Name.Lexeme); ok {
			return m, nil
		}
		return nil, NewRuntimeError(expr.Name, fmt.Sprintf("Undefined property '%s'.", expr.Name.Lexeme))

	default:
		return nil, NewRuntimeError(expr.Name, "Only instances have properties.")
	}
}

func (in *Interpreter) evalSet(expr *ast.SetExpr) (Value, error) {
	obj, err := in.evaluate(expr.Object)
	if err != nil {
		return nil, err
	}

	var fields interface{ Put(string, Value) }
	switch o := obj.(type) {
	case *Instance:
		fields = o.Fields
	case *ClassValue:
		fields = o.Fields
	default:
		return nil, NewRuntimeError(expr.Name, "Only instances have fields.")
	}

	value, err := in.evaluate(expr.Value)
	if err != nil {
		return nil, err
	}
	fields.Put(expr.Name.Lexeme, value)
	return value, nil
}
