package interpreter_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mna/rlox/lang/interpreter"
	"github.com/mna/rlox/lang/parser"
	"github.com/mna/rlox/lang/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run parses, resolves, and interprets src, returning everything printed
// and any error from interpretation. Scan/parse/resolve errors fail the
// test immediately, since these tests target runtime behavior.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	stmts, err := parser.ParseSource([]byte(src))
	require.NoError(t, err)
	locals, err := resolver.Resolve(stmts)
	require.NoError(t, err)

	var buf bytes.Buffer
	in := interpreter.New(&buf, locals)
	runErr := in.Interpret(stmts)
	return buf.String(), runErr
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestFibonacciWithBreak(t *testing.T) {
	out, err := run(t, `
		var a = 0;
		var b = 1;
		var i = 0;
		while (true) {
			if (i >= 7) break;
			print a;
			var next = a + b;
			a = b;
			b = next;
			i = i + 1;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "1", "2", "3", "5", "8"}, lines(out))
}

func TestMethodBindingObservesLateFieldUpdate(t *testing.T) {
	out, err := run(t, `
		class Counter {
			init() {
				this.count = 0;
			}
			increment() {
				this.count = this.count + 1;
				return this.count;
			}
		}
		var c = Counter();
		var bound = c.increment;
		bound();
		c.count = 100;
		print bound();
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"101"}, lines(out))
}

func TestPropertyMethodIsAutoInvoked(t *testing.T) {
	out, err := run(t, `
		class Circle {
			init(radius) {
				this.radius = radius;
			}
			area {
				return this.radius * this.radius * 3;
			}
		}
		var c = Circle(2);
		print c.area;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"12"}, lines(out))
}

func TestClassFieldIsDistinctFromInstanceField(t *testing.T) {
	out, err := run(t, `
		class Widget {
			class describe() {
				return "widget factory";
			}
		}
		Widget.count = 0;
		var w1 = Widget();
		var w2 = Widget();
		Widget.count = Widget.count + 1;
		print Widget.count;
		print Widget.describe();
		w1.count = 11;
		print w1.count;
		print Widget.count;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "widget factory", "11", "1"}, lines(out))
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		fun add(a, b) { return a + b; }
		add(1);
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected 2 arguments but got 1")
}

func TestClosureCapturesVariableByReference(t *testing.T) {
	out, err := run(t, `
		fun makeCounter() {
			var count = 0;
			fun increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		var counter = makeCounter();
		print counter();
		print counter();
		print counter();
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, lines(out))
}

func TestUndefinedVariableReadIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		var x;
		print x;
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'x'")
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := run(t, `print 1 / 0;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "divide by zero")
}

func TestEqualityDoesNotWidenAcrossTypes(t *testing.T) {
	_, err := run(t, `print 1 == "1";`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "two numbers or two strings")
}

func TestStringConcatenationAcceptsAnyRightHandTextualForm(t *testing.T) {
	out, err := run(t, `
		print "n=" + 1;
		print "b=" + true;
		print "z=" + nil;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"n=1", "b=true", "z=nil"}, lines(out))
}

func TestTernaryAndLambda(t *testing.T) {
	out, err := run(t, `
		var isEven = fun (n) { while (n >= 2) n = n - 2; return n == 0; };
		print isEven(4) ? "even" : "odd";
		print isEven(5) ? "even" : "odd";
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"even", "odd"}, lines(out))
}

func TestForLoopDesugaring(t *testing.T) {
	out, err := run(t, `
		for (var i = 0; i < 3; i = i + 1) {
			print i;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, lines(out))
}

func TestNumbersPrintWithoutTrailingZero(t *testing.T) {
	out, err := run(t, `
		print 3;
		print 3.5;
		print 1 + 2;
	`)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "3.5", "3"}, lines(out))
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		var x = 1;
		x();
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can only call functions and classes")
}

func TestAccessingPropertyOnNonInstanceIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		var x = 1;
		print x.foo;
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Only instances have properties")
}
