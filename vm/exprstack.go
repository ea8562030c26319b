package vm

import (
	"github.com/cpiber/EvalMath"
	"github.com/emirpasic/gods/stacks/linkedliststack"
)

// ExprStack is the operand stack of the stack machine.
type ExprStack struct {
	stack *linkedliststack.Stack // a stack of values
}

// NewExprStack creates
// a new expression stack. It is fully initialized and empty.
func NewExprStack() *ExprStack {
	return &ExprStack{
		stack: linkedliststack.New(),
	}
}

// Push is part of
// stack functionality.
func (es *ExprStack) Push(v evalmath.Value) *ExprStack {
	es.stack.Push(v)
	return es
}

// Pop is part of
// stack functionality.
func (es *ExprStack) Pop() (evalmath.Value, bool) {
	tos, ok := es.stack.Pop()
	if !ok {
		return 0, false
	}
	return tos.(evalmath.Value), true
}

// PopN pops n operands and returns them in the order they have been pushed,
// i.e. TOS last.
func (es *ExprStack) PopN(n int, op string) ([]evalmath.Value, error) {
	if err := es.CheckOperands(n, op); err != nil {
		return nil, err
	}
	args := make([]evalmath.Value, n)
	for i := n - 1; i >= 0; i-- {
		args[i], _ = es.Pop()
	}
	return args, nil
}

// Size is part of
// stack functionality.
func (es *ExprStack) Size() int {
	return es.stack.Size()
}

// CheckOperands checks
// if there are at least n operands on the stack for an operation.
func (es *ExprStack) CheckOperands(n int, op string) error {
	if n < 0 {
		return evalmath.Errorf(evalmath.InvalidStackState, 0,
			"internal error - illegal count for stack operands")
	}
	if es.Size() < n {
		tracer().P("op", op).Errorf("need %d operand(s), %d on stack", n, es.Size())
		return evalmath.Errorf(evalmath.InvalidStackState, 0,
			"internal error - attempt to %s %d operand(s), but %d on stack", op, n, es.Size())
	}
	return nil
}

// Dump is an
// internal helper: dump expression stack. This is printed to the trace
// with level=DEBUG.
func (es *ExprStack) Dump() {
	tracer().P("size", es.Size()).Debugf("Expression Stack, TOS first:")
	it := es.stack.Iterator()
	for it.Next() {
		tracer().P("#", it.Index()).Debugf("    %s", it.Value().(evalmath.Value))
	}
}
