package interpreter

import (
	"fmt"

	"github.com/dolthub/swiss"
	"github.com/mna/rlox/lang/token"
)

// Environment is a lexical scope: a mutable name-to-value map plus an
// optional enclosing scope. The outermost environment (no enclosing) is
// globals. Environments are shared by reference so that closures and
// bound methods observe each other's updates.
type Environment struct {
	enclosing *Environment
	values    *swiss.Map[string, Value]
}

// NewEnvironment returns an environment enclosed by parent, or a
// top-level environment if parent is nil.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{enclosing: parent, values: swiss.NewMap[string, Value](8)}
}

// Define binds name to v in this environment, overwriting silently if
// already present.
func (e *Environment) Define(name string, v Value) {
	e.values.Put(name, v)
}

// Get resolves name by searching this environment then its enclosing
// chain. A miss all the way to globals is an undefined-variable error.
func (e *Environment) Get(name token.Token) (Value, error) {
	if v, ok := e.values.Get(name.Lexeme); ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, NewRuntimeError(name, fmt.Sprintf("Undefined variable '%s'.", name.Lexeme))
}

// Assign overwrites name's binding in the nearest environment that
// defines it, or fails if no environment in the chain does.
func (e *Environment) Assign(name token.Token, v Value) error {
	if _, ok := e.values.Get(name.Lexeme); ok {
		e.values.Put(name.Lexeme, v)
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, v)
	}
	return NewRuntimeError(name, fmt.Sprintf("Undefined variable '%s'.", name.Lexeme))
}

// ancestor walks distance enclosing links outward.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name directly from the environment distance hops out,
// as recorded by the resolver. The name is always present there; a
// miss would mean the resolver and interpreter disagree.
func (e *Environment) GetAt(distance int, name string) Value {
	v, _ := e.ancestor(distance).values.Get(name)
	return v
}

// AssignAt writes name directly into the environment distance hops out.
func (e *Environment) AssignAt(distance int, name token.Token, v Value) {
	e.ancestor(distance).values.Put(name.Lexeme, v)
}
