package corelang

import (
	"math"
	"sort"

	"github.com/cpiber/EvalMath"
)

// Builtin is a native math function of fixed arity (1 or 2).
type Builtin struct {
	Name   string
	unary  func(float64) float64
	binary func(float64, float64) float64
}

// Arity returns the number of arguments b expects.
func (b *Builtin) Arity() int {
	if b.binary != nil {
		return 2
	}
	return 1
}

// Apply calls b with its arguments, given in source order.
func (b *Builtin) Apply(args ...evalmath.Value) (evalmath.Value, error) {
	if len(args) != b.Arity() {
		tracer().Errorf("built-in %s called with %d arguments", b.Name, len(args))
		return 0, evalmath.Errorf(evalmath.InvalidStackState, 0,
			"internal error - %s expects %d argument(s), got %d", b.Name, b.Arity(), len(args))
	}
	if b.binary != nil {
		return evalmath.Value(b.binary(args[0].Float(), args[1].Float())), nil
	}
	return evalmath.Value(b.unary(args[0].Float())), nil
}

func (b *Builtin) String() string {
	return b.Name
}

func unary(name string, fn func(float64) float64) *Builtin {
	return &Builtin{Name: name, unary: fn}
}

func binary(name string, fn func(float64, float64) float64) *Builtin {
	return &Builtin{Name: name, binary: fn}
}

// logarithm computes the logarithm of x to base.
func logarithm(x, base float64) float64 {
	return math.Log(x) / math.Log(base)
}

var builtins = map[string]*Builtin{
	"sin":    unary("sin", math.Sin),
	"cos":    unary("cos", math.Cos),
	"tan":    unary("tan", math.Tan),
	"asin":   unary("asin", math.Asin),
	"arcsin": unary("arcsin", math.Asin),
	"acos":   unary("acos", math.Acos),
	"arccos": unary("arccos", math.Acos),
	"atan":   unary("atan", math.Atan),
	"arctan": unary("arctan", math.Atan),
	"sqrt":   unary("sqrt", math.Sqrt),
	"ln":     unary("ln", math.Log),
	"log":    binary("log", logarithm),
}

// LookupBuiltin finds a built-in function by name.
func LookupBuiltin(name string) (*Builtin, bool) {
	b, ok := builtins[name]
	return b, ok
}

// BuiltinNames returns the names of all built-in functions, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Constants returns the predefined constants π and e under all of their
// accepted spellings.
func Constants() map[string]evalmath.Value {
	return map[string]evalmath.Value{
		"pi": math.Pi,
		"Pi": math.Pi,
		"PI": math.Pi,
		"e":  math.E,
		"E":  math.E,
	}
}
