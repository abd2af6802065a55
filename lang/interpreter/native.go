package interpreter

import (
	"fmt"
	"time"
)

// NativeFunction is a built-in callable implemented in Go rather than
// defined by a function statement. Additional natives can be registered
// the same way: a global binding whose value is a callable.
type NativeFunction struct {
	name  string
	arity int
	fn    func(args []Value) (Value, error)
}

var (
	_ Value    = (*NativeFunction)(nil)
	_ Callable = (*NativeFunction)(nil)
)

func (f *NativeFunction) String() string      { return fmt.Sprintf("<native fn %s>", f.name) }
func (f *NativeFunction) Type() string        { return "native function" }
func (f *NativeFunction) Arity() int          { return f.arity }
func (f *NativeFunction) IsProperty() bool    { return false }
func (f *NativeFunction) Call(_ *Interpreter, args []Value) (Value, error) {
	return f.fn(args)
}

// nativeClock returns the current wall-clock time as a Number of
// seconds since the Unix epoch, with sub-second precision.
func nativeClock() *NativeFunction {
	return &NativeFunction{
		name:  "clock",
		arity: 0,
		fn: func(args []Value) (Value, error) {
			return NumberValue(float64(time.Now().UnixNano()) / 1e9), nil
		},
	}
}
