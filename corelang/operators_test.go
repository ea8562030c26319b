package corelang

import (
	"errors"
	"math"
	"testing"

	"github.com/cpiber/EvalMath"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestOperatorLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalmath.core")
	defer teardown()
	//
	for i, x := range []struct {
		r  rune
		op Operator
	}{
		{'+', Add}, {'-', Sub}, {'*', Mul}, {'/', Div}, {'%', Mod},
		{'\\', IDiv}, {'^', Pow},
		{'(', OpenGroup}, {'[', OpenGroup}, {'{', OpenGroup},
		{')', CloseGroup}, {']', CloseGroup}, {'}', CloseGroup},
		{'$', NoOp}, {'=', NoOp},
	} {
		if op := OperatorFor(x.r); op != x.op {
			t.Errorf("test %d: expected %q to map to %s, got %s", i, x.r, x.op, op)
		}
	}
}

func TestOperatorPrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalmath.core")
	defer teardown()
	//
	if Mul.Precedence() <= Add.Precedence() {
		t.Errorf("expected * to bind tighter than +")
	}
	if IDiv.Precedence() != Div.Precedence() {
		t.Errorf("expected \\ to bind equal to /")
	}
	if Pow.IsLeftAssociative() {
		t.Errorf("expected ^ to be right-associative")
	}
	if !Add.YieldsTo(Mul) {
		t.Errorf("expected pending * to be reduced before +")
	}
	if !Sub.YieldsTo(Add) {
		t.Errorf("expected left-associative - to reduce pending +")
	}
	if Pow.YieldsTo(Pow) {
		t.Errorf("expected right-associative ^ not to reduce pending ^")
	}
	if Mul.YieldsTo(Add) {
		t.Errorf("expected * not to reduce pending +")
	}
}

func TestOperatorApply(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalmath.core")
	defer teardown()
	//
	for i, x := range []struct {
		op   Operator
		args []evalmath.Value
		r    float64
	}{
		{Neg, []evalmath.Value{3}, -3},
		{Add, []evalmath.Value{5, 1}, 6},
		{Sub, []evalmath.Value{2, 1}, 1},
		{Mul, []evalmath.Value{6, 2}, 12},
		{Div, []evalmath.Value{3, 2}, 1.5},
		{Mod, []evalmath.Value{5, 2}, 1},
		{Mod, []evalmath.Value{-5, 2}, -1},
		{IDiv, []evalmath.Value{5, 2}, 2},
		{IDiv, []evalmath.Value{5.9, 2.9}, 2},
		{Pow, []evalmath.Value{3, 2}, 9},
	} {
		r, err := x.op.Apply(x.args...)
		if err != nil {
			t.Fatalf("test %d: unexpected error %v", i, err)
		}
		if r.Float() != x.r {
			t.Errorf("test %d: expected %s%v = %g, got %g", i, x.op, x.args, x.r, r.Float())
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalmath.core")
	defer teardown()
	//
	r, err := Div.Apply(1, 0)
	if err != nil || !math.IsInf(r.Float(), 1) {
		t.Errorf("expected 1/0 = +Inf, got %v (%v)", r, err)
	}
	r, err = Mod.Apply(1, 0)
	if err != nil || !r.IsNaN() {
		t.Errorf("expected 1%%0 = NaN, got %v (%v)", r, err)
	}
}

func TestGroupMarkersCannotBeApplied(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalmath.core")
	defer teardown()
	//
	for _, op := range []Operator{OpenGroup, CloseGroup} {
		_, err := op.Apply(1, 2)
		if !errors.Is(err, evalmath.ErrInvalidStackState) {
			t.Errorf("expected applying %s to fail with internal error, got %v", op, err)
		}
	}
	if _, err := Add.Apply(1); !errors.Is(err, evalmath.ErrInvalidStackState) {
		t.Errorf("expected + with one operand to fail, got %v", err)
	}
}

func TestBuiltins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalmath.core")
	defer teardown()
	//
	log, ok := LookupBuiltin("log")
	if !ok || log.Arity() != 2 {
		t.Fatalf("expected binary built-in log")
	}
	r, _ := log.Apply(1000, 10)
	if math.Abs(r.Float()-3) > 1e-9 {
		t.Errorf("expected log(1000,10) = 3, got %v", r)
	}
	asin, _ := LookupBuiltin("asin")
	arcsin, _ := LookupBuiltin("arcsin")
	a, _ := asin.Apply(0.5)
	b, _ := arcsin.Apply(0.5)
	if a != b || arcsin.Arity() != 1 {
		t.Errorf("expected arcsin to be a synonym of asin")
	}
	if _, ok := LookupBuiltin("exp"); ok {
		t.Errorf("did not expect exp to be a built-in")
	}
	if len(BuiltinNames()) != 12 {
		t.Errorf("expected 12 built-in names, have %v", BuiltinNames())
	}
	if c := Constants(); c["PI"] != math.Pi || c["E"] != math.E {
		t.Errorf("constants not set up correctly: %v", c)
	}
}
