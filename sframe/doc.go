/*
Package sframe implements the symbol table and scope frames.

The symbol table is global: it holds the predefined constants, user
variables, built-in functions and user functions. Names are resolved in a
fixed order:

	constant → variable → built-in function → user function

While a function body is parsed, a scope frame holding the function's
parameters is consulted before the symbol table. Scope frames may be nested
for function definitions within function bodies.

A symbol table is not safe for concurrent use. Clients evaluating in parallel
have to use one table per session or guard it externally.
*/
package sframe

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'evalmath.runtime'
func tracer() tracing.Trace {
	return tracing.Select("evalmath.runtime")
}
