package sframe

import (
	"github.com/cpiber/EvalMath"
	"github.com/cpiber/EvalMath/corelang"
	"github.com/cpiber/EvalMath/vm"
	"github.com/emirpasic/gods/maps/treemap"
)

// SymbolKind classifies the result of a name lookup.
type SymbolKind uint8

// Kinds of symbols, in resolution order.
const (
	Undefined SymbolKind = iota
	Constant
	Variable
	BuiltinFunction
	UserFunction
)

func (k SymbolKind) String() string {
	switch k {
	case Constant:
		return "constant"
	case Variable:
		return "variable"
	case BuiltinFunction:
		return "built-in"
	case UserFunction:
		return "function"
	}
	return "<undefined>"
}

// Symbol is the result of a name lookup. Kind decides which of the payload
// fields is valid.
type Symbol struct {
	Name     string
	Kind     SymbolKind
	Value    evalmath.Value    // Constant
	Variable *vm.Variable      // Variable
	Builtin  *corelang.Builtin // BuiltinFunction
	Function *vm.UserFunction  // UserFunction
}

// IsFunction is a predicate: does the symbol denote a callable function?
func (sym Symbol) IsFunction() bool {
	return sym.Kind == BuiltinFunction || sym.Kind == UserFunction
}

// Arity returns the number of arguments of a function symbol, 0 otherwise.
func (sym Symbol) Arity() int {
	switch sym.Kind {
	case BuiltinFunction:
		return sym.Builtin.Arity()
	case UserFunction:
		return sym.Function.Arity()
	}
	return 0
}

// SymbolTable maps names to constants, variables and functions.
type SymbolTable struct {
	constants map[string]evalmath.Value
	variables *treemap.Map // string → *vm.Variable
	functions *treemap.Map // string → *vm.UserFunction
}

// NewSymbolTable creates a symbol table with the predefined constants and
// built-in functions, but no user definitions.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		constants: corelang.Constants(),
		variables: treemap.NewWithStringComparator(),
		functions: treemap.NewWithStringComparator(),
	}
}

// Lookup resolves a name. Constants shadow variables, variables shadow
// built-in functions, and those shadow user functions.
func (st *SymbolTable) Lookup(name string) (Symbol, bool) {
	sym := Symbol{Name: name}
	if c, ok := st.constants[name]; ok {
		sym.Kind, sym.Value = Constant, c
	} else if v, ok := st.variables.Get(name); ok {
		sym.Kind, sym.Variable = Variable, v.(*vm.Variable)
	} else if b, ok := corelang.LookupBuiltin(name); ok {
		sym.Kind, sym.Builtin = BuiltinFunction, b
	} else if fn, ok := st.functions.Get(name); ok {
		sym.Kind, sym.Function = UserFunction, fn.(*vm.UserFunction)
	} else {
		return sym, false
	}
	return sym, true
}

// DefineVariable creates a variable from the program of its right-hand
// side. An existing variable of the same name is replaced.
func (st *SymbolTable) DefineVariable(name string, thunk vm.Program) *vm.Variable {
	v := vm.NewVariable(name, thunk)
	if _, exists := st.variables.Get(name); exists {
		tracer().P("var", name).Debugf("replacing variable")
	}
	st.variables.Put(name, v)
	tracer().P("var", name).Debugf("defined as %s", thunk)
	return v
}

// DefineFunction enters a user function. An existing function of the same
// name is replaced.
func (st *SymbolTable) DefineFunction(fn *vm.UserFunction) {
	st.functions.Put(fn.Name, fn)
	tracer().P("func", fn.Signature()).Debugf("defined as %s", fn.Body)
}

// Value returns the value of a constant or of a variable which already has
// been computed.
func (st *SymbolTable) Value(name string) (evalmath.Value, bool) {
	sym, ok := st.Lookup(name)
	if !ok {
		return 0, false
	}
	switch sym.Kind {
	case Constant:
		return sym.Value, true
	case Variable:
		return sym.Variable.Value()
	}
	return 0, false
}

// Constants returns the names of all predefined constants, sorted.
func (st *SymbolTable) Constants() []string {
	m := treemap.NewWithStringComparator()
	for name, c := range st.constants {
		m.Put(name, c)
	}
	names := make([]string, 0, m.Size())
	for _, k := range m.Keys() {
		names = append(names, k.(string))
	}
	return names
}

// Variables returns all user variables, sorted by name.
func (st *SymbolTable) Variables() []*vm.Variable {
	vars := make([]*vm.Variable, 0, st.variables.Size())
	it := st.variables.Iterator()
	for it.Next() {
		vars = append(vars, it.Value().(*vm.Variable))
	}
	return vars
}

// Functions returns all user functions, sorted by name.
func (st *SymbolTable) Functions() []*vm.UserFunction {
	fns := make([]*vm.UserFunction, 0, st.functions.Size())
	it := st.functions.Iterator()
	for it.Next() {
		fns = append(fns, it.Value().(*vm.UserFunction))
	}
	return fns
}

// Clear removes all user definitions.
func (st *SymbolTable) Clear() {
	st.variables.Clear()
	st.functions.Clear()
}
