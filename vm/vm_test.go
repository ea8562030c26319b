package vm

import (
	"errors"
	"testing"

	"github.com/cpiber/EvalMath"
	"github.com/cpiber/EvalMath/corelang"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackCreate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalmath.vm")
	defer teardown()
	//
	est := NewExprStack()
	assert.Equal(t, 0, est.Size())
	est.Push(1).Push(2).Push(4711)
	assert.Equal(t, 3, est.Size())
	args, err := est.PopN(2, "test")
	require.NoError(t, err)
	assert.Equal(t, []evalmath.Value{2, 4711}, args, "expected operands in push order")
	_, err = est.PopN(2, "test")
	assert.True(t, errors.Is(err, evalmath.ErrInvalidStackState))
}

func TestExecuteArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalmath.vm")
	defer teardown()
	//
	// 2 * (3 + 4)
	prog := Program{Val(2), Val(3), Val(4), Op(corelang.Add), Op(corelang.Mul)}
	assert.Equal(t, "2 3 4 + *", prog.String())
	r, err := Execute(prog)
	require.NoError(t, err)
	assert.Equal(t, evalmath.Value(14), r)
	// -(5 - 7)
	r, err = Execute(Program{Val(5), Val(7), Op(corelang.Sub), Op(corelang.Neg)})
	require.NoError(t, err)
	assert.Equal(t, evalmath.Value(2), r)
}

func TestExecuteBuiltin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalmath.vm")
	defer teardown()
	//
	log, _ := corelang.LookupBuiltin("log")
	r, err := Execute(Program{Val(8), Val(2), Call(log)})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, r.Float(), 1e-9)
}

func TestExecuteInvalidStack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalmath.vm")
	defer teardown()
	//
	for i, prog := range []Program{
		{},
		{Val(1), Val(2)},
		{Val(1), Op(corelang.Add)},
		{Val(1), Val(2), Op(corelang.OpenGroup)},
		{Element{}},
	} {
		_, err := Execute(prog)
		assert.True(t, errors.Is(err, evalmath.ErrInvalidStackState),
			"test %d: expected internal error for %v, got %v", i, prog, err)
	}
}

func TestVariableThunk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalmath.vm")
	defer teardown()
	//
	b := NewVariable("b", Program{Val(2)})
	a := NewVariable("a", Program{Thunk(b)})
	_, ok := b.Value()
	assert.False(t, ok, "expected b to be undefined before execution")
	r, err := Execute(Program{Thunk(a)})
	require.NoError(t, err)
	assert.Equal(t, evalmath.Value(2), r)
	for _, v := range []*Variable{a, b} {
		val, ok := v.Value()
		assert.True(t, ok)
		assert.Equal(t, evalmath.Value(2), val, "expected %s = 2", v.Name)
	}
}

func TestUserFunction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalmath.vm")
	defer teardown()
	//
	// sub(x, y) = x - y
	fn := NewUserFunction("sub", []string{"x", "y"})
	fn.Body = Program{Param(fn, 0), Param(fn, 1), Op(corelang.Sub)}
	assert.Equal(t, "sub(x, y)", fn.Signature())
	assert.Equal(t, 1, fn.ParamIndex("y"))
	assert.Equal(t, -1, fn.ParamIndex("z"))
	// sub(10, 4) + sub(1, 2)
	r, err := Execute(Program{Val(10), Val(4), Invoke(fn), Val(1), Val(2), Invoke(fn), Op(corelang.Add)})
	require.NoError(t, err)
	assert.Equal(t, evalmath.Value(5), r)
	assert.Equal(t, evalmath.Value(2), fn.Slot(1), "expected slot to hold most recent argument")
	r, err = Execute(Program{Definition(fn)})
	require.NoError(t, err)
	assert.Equal(t, evalmath.Neutral, r)
}
