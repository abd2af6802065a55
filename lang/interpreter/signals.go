package interpreter

import "errors"

// errBreak and returnSignal are the two non-error abrupt-completion
// paths a statement can unwind through: errBreak is swallowed by the
// innermost enclosing while loop; returnSignal is swallowed by the
// innermost enclosing function call. Either one escaping past its sink
// is a bug in the resolver or the interpreter, not a user-facing error.
var errBreak = errors.New("interpreter: break signal escaped its loop")

type returnSignal struct{ value Value }

func (r *returnSignal) Error() string { return "interpreter: return signal escaped its call" }
