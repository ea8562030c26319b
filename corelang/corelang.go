/*
Package corelang implements the core vocabulary of the expression language:
the operator table and the built-in functions.

Operators

Operators carry a precedence rank (higher binds tighter), an associativity
and an arity. Only exponentiation is right-associative:

	2^1^3  ⟹  2^(1^3)

Group markers '(' and ')' (and their bracket synonyms) are operators, too,
as the parser keeps them on its pending-operator stack. They have no
arithmetic rule and must never be applied.

Built-in Functions

Unary built-ins are sin, cos, tan, asin/arcsin, acos/arccos, atan/arctan,
sqrt and ln. log(x, base) is the only binary built-in.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package corelang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'evalmath.core'.
func tracer() tracing.Trace {
	return tracing.Select("evalmath.core")
}
