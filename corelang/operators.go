package corelang

import (
	"fmt"
	"math"

	"github.com/cpiber/EvalMath"
)

// Operator is one of a fixed set of operators.
type Operator int8

// The operators of the expression language.
const (
	NoOp       Operator = iota // no operator
	Neg                        // unary negation
	Add                        // +
	Sub                        // -
	Mul                        // *
	Div                        // /
	Mod                        // %
	IDiv                       // \ integer division
	Pow                        // ^
	OpenGroup                  // ( [ {
	CloseGroup                 // ) ] }
)

type opProperties struct {
	symbol     string
	precedence int
	leftAssoc  bool
	arity      int
}

var optable = [...]opProperties{
	NoOp:       {"<nop>", -1, true, 0},
	Neg:        {"_", 0, true, 1},
	Add:        {"+", 0, true, 2},
	Sub:        {"-", 0, true, 2},
	Mul:        {"*", 1, true, 2},
	Div:        {"/", 1, true, 2},
	Mod:        {"%", 1, true, 2},
	IDiv:       {"\\", 1, true, 2},
	Pow:        {"^", 2, false, 2},
	OpenGroup:  {"(", 3, true, 0},
	CloseGroup: {")", 3, true, 0},
}

var opchars = map[rune]Operator{
	'+':  Add,
	'-':  Sub,
	'*':  Mul,
	'/':  Div,
	'%':  Mod,
	'\\': IDiv,
	'^':  Pow,
	'(':  OpenGroup,
	'[':  OpenGroup,
	'{':  OpenGroup,
	')':  CloseGroup,
	']':  CloseGroup,
	'}':  CloseGroup,
}

// OperatorFor returns the operator for an operator character, or NoOp.
// Note that '-' is always returned as Sub; the parser decides whether it
// is to be read as unary negation.
func OperatorFor(r rune) Operator {
	return opchars[r] // NoOp if not found
}

func (op Operator) props() opProperties {
	if op < 0 || int(op) >= len(optable) {
		return optable[NoOp]
	}
	return optable[op]
}

// Precedence returns the precedence rank of op. Higher binds tighter.
func (op Operator) Precedence() int {
	return op.props().precedence
}

// IsLeftAssociative is a predicate: does op group left-to-right?
func (op Operator) IsLeftAssociative() bool {
	return op.props().leftAssoc
}

// Arity returns the number of operands op consumes, 0 for group markers.
func (op Operator) Arity() int {
	return op.props().arity
}

// IsGroup is a predicate: is op one of the group markers?
func (op Operator) IsGroup() bool {
	return op == OpenGroup || op == CloseGroup
}

// YieldsTo is the shunting-yard reduction test: it is true if an operator
// top, pending on the operator stack, has to be reduced before op is pushed.
// This is the case if top binds tighter than op, or equally tight with op
// being left-associative.
func (op Operator) YieldsTo(top Operator) bool {
	p, q := op.Precedence(), top.Precedence()
	return p < q || (p == q && op.IsLeftAssociative())
}

// Apply applies op to its operands, given in source order. Division by
// zero is not an error but produces ±Inf or NaN.
func (op Operator) Apply(args ...evalmath.Value) (evalmath.Value, error) {
	if op.IsGroup() || op == NoOp || op.Arity() != len(args) {
		tracer().Errorf("cannot apply operator %s to %d operands", op, len(args))
		return 0, evalmath.Errorf(evalmath.InvalidStackState, 0,
			"internal error - cannot apply operator %s to %d operand(s)", op, len(args))
	}
	if op == Neg {
		return -args[0], nil
	}
	a, b := args[0].Float(), args[1].Float()
	var r float64
	switch op {
	case Add:
		r = a + b
	case Sub:
		r = a - b
	case Mul:
		r = a * b
	case Div:
		r = a / b
	case Mod:
		r = math.Mod(a, b)
	case IDiv:
		r = math.Trunc(math.Trunc(a) / math.Trunc(b))
	case Pow:
		r = math.Pow(a, b)
	}
	return evalmath.Value(r), nil
}

func (op Operator) String() string {
	if op.props().symbol == "" {
		return fmt.Sprintf("<illegal operator: %d>", op)
	}
	return op.props().symbol
}
