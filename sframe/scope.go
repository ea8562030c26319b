package sframe

import "github.com/cpiber/EvalMath/vm"

// ScopeFrame is the scope of a function body under construction. It makes
// the function's parameters visible to name resolution, shadowing global
// symbols of the same name. Frames for function definitions nested within
// a body are linked to their enclosing frame.
type ScopeFrame struct {
	Function *vm.UserFunction
	Parent   *ScopeFrame
}

// PushFrame creates a scope frame for fn on top of sf. sf may be nil.
func (sf *ScopeFrame) PushFrame(fn *vm.UserFunction) *ScopeFrame {
	tracer().P("scope", fn.Name).Debugf("pushing new scope")
	return &ScopeFrame{
		Function: fn,
		Parent:   sf,
	}
}

// Resolve finds a parameter by name, searching from the innermost frame
// outwards. It returns the function owning the parameter and the
// parameter's position.
func (sf *ScopeFrame) Resolve(name string) (*vm.UserFunction, int, bool) {
	for frame := sf; frame != nil; frame = frame.Parent {
		if i := frame.Function.ParamIndex(name); i >= 0 {
			return frame.Function, i, true
		}
	}
	return nil, -1, false
}
