// Package interpreter implements the tree-walking evaluator: runtime
// values, lexical environments, and the recursive evaluation of a
// resolved AST into side effects and results.
package interpreter

// Value is the interface implemented by every runtime value the
// interpreter manipulates.
type Value interface {
	String() string
	Type() string
}

// Callable is the capability set shared by native functions, user
// functions/methods/lambdas/property accessors, and classes (whose call
// acts as their constructor).
type Callable interface {
	Value
	Arity() int
	Call(in *Interpreter, args []Value) (Value, error)
	IsProperty() bool
}

// NilValue is Lox's nil. Its only legal value is Nil.
type NilValue struct{}

// Nil is the sole NilValue.
var Nil = NilValue{}

func (NilValue) String() string { return "nil" }
func (NilValue) Type() string   { return "nil" }

// UndefinedValue marks a variable that was declared but never
// initialized. It is distinct from Nil and must never escape the
// interpreter as the result of an evaluated expression.
type UndefinedValue struct{}

// Undefined is the sole UndefinedValue.
var Undefined = UndefinedValue{}

func (UndefinedValue) String() string { return "undefined" }
func (UndefinedValue) Type() string   { return "undefined" }

// BoolValue is a Lox boolean.
type BoolValue bool

func (b BoolValue) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (BoolValue) Type() string { return "bool" }

// NumberValue is Lox's only numeric type, a double-precision float.
type NumberValue float64

func (n NumberValue) String() string { return formatNumber(float64(n)) }
func (NumberValue) Type() string     { return "number" }

// StringValue is a Lox string.
type StringValue string

func (s StringValue) String() string { return string(s) }
func (StringValue) Type() string     { return "string" }

// truthy implements Lox's truthiness rule: nil and false are falsey,
// every other value (including 0, "", instances, callables) is truthy.
func truthy(v Value) bool {
	switch vv := v.(type) {
	case NilValue:
		return false
	case BoolValue:
		return bool(vv)
	default:
		return true
	}
}
