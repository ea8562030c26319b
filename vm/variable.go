package vm

import (
	"strings"

	"github.com/cpiber/EvalMath"
)

// Variable is a user variable. It holds the program of its defining
// right-hand side (the thunk) and the value most recently computed from it.
type Variable struct {
	Name    string
	Thunk   Program
	value   evalmath.Value
	defined bool
}

// NewVariable creates a variable which will get its value as soon as thunk
// is executed.
func NewVariable(name string, thunk Program) *Variable {
	return &Variable{Name: name, Thunk: thunk}
}

// Value returns the current value of a variable. The second return value is
// false as long as the thunk has never been executed.
func (v *Variable) Value() (evalmath.Value, bool) {
	return v.value, v.defined
}

// Set stores a value for a variable.
func (v *Variable) Set(val evalmath.Value) {
	tracer().P("var", v.Name).Debugf("set to %s", val)
	v.value = val
	v.defined = true
}

// Resolve re-executes the thunk of a variable and stores the result.
func (v *Variable) Resolve() (evalmath.Value, error) {
	val, err := Execute(v.Thunk)
	if err != nil {
		return 0, err
	}
	v.Set(val)
	return val, nil
}

// --- User Functions --------------------------------------------------------

// UserFunction is a function defined by the user, e.g.
//
//	double(t) = t*2
//
// Each parameter owns a slot holding the argument value most recently bound
// to it. The body reads parameters from these slots.
type UserFunction struct {
	Name   string
	Params []string
	Body   Program
	slots  []evalmath.Value
}

// NewUserFunction creates a function without a body.
func NewUserFunction(name string, params []string) *UserFunction {
	return &UserFunction{
		Name:   name,
		Params: params,
		slots:  make([]evalmath.Value, len(params)),
	}
}

// Arity returns the number of parameters of fn.
func (fn *UserFunction) Arity() int {
	return len(fn.Params)
}

// ParamIndex returns the position of a parameter in the parameter list,
// or -1.
func (fn *UserFunction) ParamIndex(name string) int {
	for i, p := range fn.Params {
		if p == name {
			return i
		}
	}
	return -1
}

// Slot returns the value currently bound to parameter #i.
func (fn *UserFunction) Slot(i int) evalmath.Value {
	return fn.slots[i]
}

// Call binds args to the parameter slots and executes the function body.
// args are given in declaration order.
func (fn *UserFunction) Call(args ...evalmath.Value) (evalmath.Value, error) {
	if len(args) != len(fn.Params) {
		return 0, evalmath.Errorf(evalmath.InvalidStackState, 0,
			"internal error - %s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}
	copy(fn.slots, args)
	tracer().P("func", fn.Name).Debugf("call with %v", args)
	return Execute(fn.Body)
}

// Signature returns a function's name and parameter list, e.g. "f(x, y)".
func (fn *UserFunction) Signature() string {
	return fn.Name + "(" + strings.Join(fn.Params, ", ") + ")"
}
