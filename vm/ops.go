package vm

import (
	"fmt"
	"strings"

	"github.com/cpiber/EvalMath"
	"github.com/cpiber/EvalMath/corelang"
)

// ElementKind tags the kind of a postfix element.
type ElementKind uint8

const (
	NoElement         ElementKind = iota // no element
	ValueElement                         // a constant value
	OperatorElement                      // an operator of package corelang
	BuiltinElement                       // a built-in function call
	FunctionElement                      // a user function call
	ParameterElement                     // read of a user function parameter slot
	ThunkElement                         // (re-)computation of a variable
	DefinitionElement                    // a function definition, evaluates to 1
)

// Element is an instruction of a postfix program. It is a tagged union:
// Kind decides which of the payload fields is valid.
type Element struct {
	Kind     ElementKind
	Value    evalmath.Value    // ValueElement
	Op       corelang.Operator // OperatorElement
	Builtin  *corelang.Builtin // BuiltinElement
	Function *UserFunction     // FunctionElement, ParameterElement, DefinitionElement
	Param    int               // ParameterElement: index into Function's parameters
	Variable *Variable         // ThunkElement
}

// Val creates a value element.
func Val(v evalmath.Value) Element {
	return Element{Kind: ValueElement, Value: v}
}

// Op creates an operator element.
func Op(op corelang.Operator) Element {
	return Element{Kind: OperatorElement, Op: op}
}

// Call creates an element calling a built-in function.
func Call(b *corelang.Builtin) Element {
	return Element{Kind: BuiltinElement, Builtin: b}
}

// Invoke creates an element calling a user function.
func Invoke(fn *UserFunction) Element {
	return Element{Kind: FunctionElement, Function: fn}
}

// Param creates an element reading parameter #i of a user function.
func Param(fn *UserFunction, i int) Element {
	return Element{Kind: ParameterElement, Function: fn, Param: i}
}

// Thunk creates an element (re-)computing a variable.
func Thunk(v *Variable) Element {
	return Element{Kind: ThunkElement, Variable: v}
}

// Definition creates the sentinel element of a function definition.
func Definition(fn *UserFunction) Element {
	return Element{Kind: DefinitionElement, Function: fn}
}

func (e Element) String() string {
	switch e.Kind {
	case ValueElement:
		return e.Value.String()
	case OperatorElement:
		return e.Op.String()
	case BuiltinElement:
		return e.Builtin.Name
	case FunctionElement:
		return e.Function.Name
	case ParameterElement:
		return "$" + e.Function.Params[e.Param]
	case ThunkElement:
		return "[" + e.Variable.Name + "=" + e.Variable.Thunk.String() + "]"
	case DefinitionElement:
		return "<def " + e.Function.Signature() + ">"
	}
	return fmt.Sprintf("<illegal element: %d>", e.Kind)
}

// Program is a sequence of elements in postfix order.
type Program []Element

func (p Program) String() string {
	var b strings.Builder
	for i, e := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	return b.String()
}
