package vm

import (
	"github.com/cpiber/EvalMath"
)

// Execute runs a program and returns the single value it leaves on the
// stack. Any other number of values left is an internal error of kind
// InvalidStackState.
func Execute(prog Program) (evalmath.Value, error) {
	stack := NewExprStack()
	for _, e := range prog {
		if err := step(e, stack); err != nil {
			return 0, err
		}
	}
	if stack.Size() != 1 {
		tracer().Errorf("stack invalid after executing %s", prog)
		stack.Dump()
		return 0, evalmath.Errorf(evalmath.InvalidStackState, 0,
			"internal error - stack invalid (%d values left)", stack.Size())
	}
	r, _ := stack.Pop()
	return r, nil
}

// step executes a single element.
func step(e Element, stack *ExprStack) error {
	var r evalmath.Value
	var err error
	switch e.Kind {
	case ValueElement:
		r = e.Value
	case OperatorElement:
		var args []evalmath.Value
		if args, err = stack.PopN(e.Op.Arity(), e.Op.String()); err != nil {
			return err
		}
		r, err = e.Op.Apply(args...)
	case BuiltinElement:
		var args []evalmath.Value
		if args, err = stack.PopN(e.Builtin.Arity(), e.Builtin.Name); err != nil {
			return err
		}
		r, err = e.Builtin.Apply(args...)
	case FunctionElement:
		var args []evalmath.Value
		if args, err = stack.PopN(e.Function.Arity(), e.Function.Name); err != nil {
			return err
		}
		r, err = e.Function.Call(args...)
	case ParameterElement:
		r = e.Function.Slot(e.Param)
	case ThunkElement:
		r, err = e.Variable.Resolve()
	case DefinitionElement:
		r = evalmath.Neutral
	default:
		tracer().Errorf("cannot execute element of kind %d", e.Kind)
		return evalmath.Errorf(evalmath.InvalidStackState, 0,
			"internal error - illegal element in program")
	}
	if err != nil {
		return err
	}
	stack.Push(r)
	return nil
}
