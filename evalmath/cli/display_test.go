package cli

import (
	"bytes"
	"math"
	"testing"

	"github.com/cpiber/EvalMath"
	"github.com/cpiber/EvalMath/evaluator"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalmath.cli")
	defer teardown()
	//
	for _, x := range []struct {
		v    float64
		prec int
		out  string
	}{
		{14, 10, "14"},
		{0.1 + 0.2, 10, "0.3"},
		{math.Pi, 4, "3.1416"},
		{-2.5, 0, "-3"},
		{-1e-12, 10, "0"},
		{math.Inf(1), 10, "+Inf"},
	} {
		assert.Equal(t, x.out, formatValue(evalmath.FromFloat(x.v), x.prec))
	}
	assert.Equal(t, "NaN", formatValue(evalmath.FromFloat(math.NaN()), 10))
}

func TestDisplayColumn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalmath.cli")
	defer teardown()
	//
	assert.Equal(t, 4, displayColumn("2 + #", 4))
	assert.Equal(t, 1, displayColumn("π+", 2), "π takes a single column")
	assert.Equal(t, 3, displayColumn("世+x", 4), "世 is wide")
}

func TestPrintResult(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalmath.cli")
	defer teardown()
	//
	intp := evaluator.NewInterpreter()
	var stdout, stderr bytes.Buffer
	ok := printResult(intp, "2(3+4)", &stdout, &stderr)
	assert.True(t, ok)
	assert.Equal(t, "14\n", stdout.String())
	assert.Empty(t, stderr.String())
	//
	stdout.Reset()
	ok = printResult(intp, "2 + #", &stdout, &stderr)
	assert.False(t, ok)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "  2 + #\n      ^\n")
	assert.Contains(t, stderr.String(), "Error: invalid character '#'")
}

func TestSymbolTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalmath.cli")
	defer teardown()
	//
	intp := evaluator.NewInterpreter()
	intp.Evaluate("x = 2; sq(a) = a^2")
	vars := variablesTable(intp.Symbols()).Render()
	assert.Contains(t, vars, "x")
	assert.Contains(t, vars, "(constant)")
	funcs := functionsTable(intp.Symbols()).Render()
	assert.Contains(t, funcs, "sq(a)")
	assert.Contains(t, funcs, "$a 2 ^")
	assert.Contains(t, funcs, "log")
}
