/*
Package evalmath evaluates arithmetic expressions given as text.

Expressions are written in infix notation with the usual operator precedence,
implicit multiplication ("2(3+4)", "2 pi"), unary negation and grouping with
parentheses, brackets or braces. Users may define variables

	two_pi = 2 pi

and functions

	double(t) = t*2

which are visible to all subsequent statements. Statements are separated
by ';', the value of the last statement is the result.

The engine lives in package evaluator; this package holds the types shared
by all of its parts: values, error kinds and global configuration.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package evalmath
