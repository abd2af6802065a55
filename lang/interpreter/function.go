package interpreter

import (
	"fmt"

	"github.com/mna/rlox/lang/ast"
	"github.com/mna/rlox/lang/token"
)

// UserFunction is a function defined by a function statement, a method,
// a class method, a property accessor, or a lambda expression. It holds
// its parameters, body, the environment it closed over, and whether it
// is a class initializer (which returns the instance rather than any
// explicit value).
type UserFunction struct {
	name          string
	params        []token.Token
	body          []ast.Stmt
	closure       *Environment
	kind          ast.FunctionKind
	isInitializer bool
}

var (
	_ Value    = (*UserFunction)(nil)
	_ Callable = (*UserFunction)(nil)
)

func newUserFunction(name string, params []token.Token, body []ast.Stmt, closure *Environment, kind ast.FunctionKind) *UserFunction {
	return &UserFunction{
		name:          name,
		params:        params,
		body:          body,
		closure:       closure,
		kind:          kind,
		isInitializer: kind == ast.FunctionKindInitializer,
	}
}

func (f *UserFunction) String() string {
	if f.name == "" {
		return "<fn lambda>"
	}
	return fmt.Sprintf("<fn %s>", f.name)
}

func (f *UserFunction) Type() string { return "function" }

func (f *UserFunction) Arity() int { return len(f.params) }

func (f *UserFunction) IsProperty() bool { return f.kind == ast.FunctionKindProperty }

// Call creates a child environment of the closure, binds the arguments
// to the parameters by position, and executes the body in it. A normal
// completion returns Nil; a return signal returns its value (or Nil). An
// initializer returns the instance bound to "this" in its closure, both
// on normal completion and on a bare return; a runtime error raised in
// its body is returned instead.
func (f *UserFunction) Call(in *Interpreter, args []Value) (Value, error) {
	env := NewEnvironment(f.closure)
	for i, p := range f.params {
		env.Define(p.Lexeme, args[i])
	}

	err := in.executeBlock(f.body, env)
	if f.isInitializer {
		if err != nil {
			if _, ok := err.(*returnSignal); !ok {
				return nil, err
			}
		}
		return f.closure.GetAt(0, "this"), nil
	}
	if rs, ok := err.(*returnSignal); ok {
		return rs.value, nil
	}
	if err != nil {
		return nil, err
	}
	return Nil, nil
}

// Bind returns a new function value identical to f, except its closure
// is a fresh environment wrapping f's closure with "this" defined to
// inst. Used both for ordinary method access and for the bound method
// stored by `var m = obj.method`.
func (f *UserFunction) Bind(inst *Instance) *UserFunction {
	env := NewEnvironment(f.closure)
	env.Define("this", inst)
	bound := *f
	bound.closure = env
	return &bound
}
