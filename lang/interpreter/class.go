package interpreter

import "github.com/dolthub/swiss"

// ClassValue is class metadata: its own methods and class methods by
// name, a mutable map of class fields (assignable dynamically, e.g.
// `Foo.v = 10`), and an optional superclass for method-lookup fallback.
// Invoking a ClassValue acts as its constructor.
type ClassValue struct {
	Name         string
	Methods      map[string]*UserFunction
	ClassMethods map[string]*UserFunction
	Fields       *swiss.Map[string, Value]
	Superclass   *ClassValue
}

var (
	_ Value    = (*ClassValue)(nil)
	_ Callable = (*ClassValue)(nil)
)

// NewClass returns class metadata with no fields and no superclass.
func NewClass(name string, methods, classMethods map[string]*UserFunction) *ClassValue {
	return &ClassValue{
		Name:         name,
		Methods:      methods,
		ClassMethods: classMethods,
		Fields:       swiss.NewMap[string, Value](0),
	}
}

func (c *ClassValue) String() string { return c.Name }
func (c *ClassValue) Type() string   { return "class" }

// FindMethod looks up name in the class's own method map, falling back
// to the superclass chain.
func (c *ClassValue) FindMethod(name string) (*UserFunction, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// FindClassMethod looks up name in the class's own class-method map,
// falling back to the superclass chain.
func (c *ClassValue) FindClassMethod(name string) (*UserFunction, bool) {
	if m, ok := c.ClassMethods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindClassMethod(name)
	}
	return nil, false
}

// Arity is the arity of the class's "init" method, or 0 if it has none.
func (c *ClassValue) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

func (c *ClassValue) IsProperty() bool { return false }

// Call allocates a fresh instance and, if the class defines "init",
// binds and calls it with the supplied arguments before returning the
// instance.
func (c *ClassValue) Call(in *Interpreter, args []Value) (Value, error) {
	inst := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(inst).Call(in, args); err != nil {
			return nil, err
		}
	}
	return inst, nil
}
