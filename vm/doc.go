/*
Package vm executes postfix programs.

A Program is a sequence of Elements in operator-last order. Execution is a
single left-to-right pass over a program against an operand stack: values
push themselves, operators and functions pop their operands and push their
result. After a program has run, exactly one value must be left on the
stack.

	2*(3+4)  ⟹  2 3 4 + *  ⟹  14

Variables and user functions hold programs of their own, which are executed
recursively, each with a fresh stack.

Package vm does not do any locking. Variables and function parameter slots
are mutated during execution, so programs sharing them must not be executed
concurrently.
*/
package vm

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'evalmath.vm'
func tracer() tracing.Trace {
	return tracing.Select("evalmath.vm")
}
