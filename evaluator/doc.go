/*
Package evaluator is the engine driving parser and stack machine.

An Interpreter owns a symbol table which lives as long as the interpreter.
Input text is split into statements at ';', and every statement is parsed
and executed in order. Definitions made by a statement are visible to all
subsequent statements, including those of later calls to Evaluate.

	intp := evaluator.NewInterpreter()
	intp.Evaluate("double(t) = t*2")
	r := intp.Evaluate("x = 3; double(x)")   // r.Value == 6

Interpreters are not safe for concurrent use. Clients evaluating input
from more than one goroutine either guard the interpreter with a mutex or
create one interpreter per session.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package evaluator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'evalmath.eval'.
func tracer() tracing.Trace {
	return tracing.Select("evalmath.eval")
}
