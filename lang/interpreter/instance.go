package interpreter

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// Instance is a shared reference to a class's metadata plus a mutable
// map from field name to value. A field lookup that misses falls back
// to the class's methods, which are then bound to this instance.
type Instance struct {
	Class  *ClassValue
	Fields *swiss.Map[string, Value]
}

var _ Value = (*Instance)(nil)

// NewInstance returns a fresh instance of class c with no fields set.
func NewInstance(c *ClassValue) *Instance {
	return &Instance{Class: c, Fields: swiss.NewMap[string, Value](0)}
}

func (i *Instance) String() string { return fmt.Sprintf("%s instance", i.Class.Name) }
func (i *Instance) Type() string   { return "instance" }
