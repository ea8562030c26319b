/*
Package grammar converts statements in infix notation to postfix programs.

The scanner splits a statement into tokens: numbers, identifiers, operators,
',' and '='. Whitespace is skipped. The parser is an operator-precedence
parser (shunting-yard) which emits a vm.Program.

Function call arguments, right-hand sides of variable definitions and
function bodies are parsed by sub-parsers. Each sub-parser owns its cursor
and stops at a set of terminator tokens, which the caller inspects:

	sin(t = 2)
	    ^^^^^   argument: stops at ',' or ')'
	        ^   right-hand side of t: stops where the argument stops

Definitions are possible only at the very first position of a
sub-expression:

	x = 2          defines x
	2 x = 3        error: unknown symbol 'x'
	f(a, b) = a-b  defines f

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'evalmath.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("evalmath.grammar")
}
