package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/cpiber/EvalMath"
	"github.com/cpiber/EvalMath/corelang"
	"github.com/cpiber/EvalMath/evalmath/ui/termui"
	"github.com/cpiber/EvalMath/sframe"
	"github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
	"golang.org/x/text/width"
)

const defaultPrecision = 10

// SyntaxError is an error of evaluating an input line.
type SyntaxError struct {
	Input string
	Err   error
}

// Formatter prints results and errors of evaluations.
type Formatter struct {
	termui.DefaultFormatter
	Precision int // decimal places of results
}

// Format prints item to w.
//
// Interface termui.Formatter.
func (f Formatter) Format(item interface{}, w io.Writer) (bool, error) {
	tracer().Debugf("format called for item %T", item)
	switch t := item.(type) {
	case evalmath.Value:
		_, err := io.WriteString(w, formatValue(t, f.Precision)+"\n")
		return err == nil, err
	case SyntaxError:
		var b strings.Builder
		if pos := evalmath.PosOf(t.Err); pos >= 0 && pos <= len(t.Input) {
			b.WriteString("  " + t.Input + "\n")
			b.WriteString("  " + strings.Repeat(" ", displayColumn(t.Input, pos)) + "^\n")
		}
		b.WriteString(prtxt.FgRed.Sprintf("Error: %s", t.Err.Error()))
		b.WriteByte('\n')
		_, err := io.WriteString(w, b.String())
		return err == nil, err
	}
	return f.DefaultFormatter.Format(item, w)
}

// formatValue rounds v to prec decimal places and strips trailing zeros.
// Infinite values and NaN are printed as such.
func formatValue(v evalmath.Value, prec int) string {
	if v.IsNaN() || v.IsInf() {
		return v.String()
	}
	d := decimal.NewFromFloat(v.Float()).Round(int32(prec))
	if d.IsZero() {
		return "0" // avoid "-0"
	}
	return d.String()
}

// displayColumn returns the terminal column of byte position pos within
// input, counting east asian wide characters as two columns.
func displayColumn(input string, pos int) int {
	col := 0
	for _, r := range input[:pos] {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			col += 2
		default:
			col++
		}
	}
	return col
}

// --- Symbol tables ---------------------------------------------------------

func variablesTable(symbols *sframe.SymbolTable) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("Variables")
	tw.AppendHeader(table.Row{"name", "value", "definition"})
	for _, name := range symbols.Constants() {
		c, _ := symbols.Value(name)
		tw.AppendRow(table.Row{name, formatValue(c, defaultPrecision), "(constant)"})
	}
	for _, v := range symbols.Variables() {
		val := "–"
		if x, ok := v.Value(); ok {
			val = formatValue(x, defaultPrecision)
		}
		tw.AppendRow(table.Row{v.Name, val, v.Thunk.String()})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

func functionsTable(symbols *sframe.SymbolTable) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("Functions")
	tw.AppendHeader(table.Row{"function", "arity", "body"})
	for _, name := range corelang.BuiltinNames() {
		b, _ := corelang.LookupBuiltin(name)
		tw.AppendRow(table.Row{name, b.Arity(), "(built-in)"})
	}
	for _, fn := range symbols.Functions() {
		tw.AppendRow(table.Row{fn.Signature(), fn.Arity(), fn.Body.String()})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

// String is a debugging representation of a syntax error.
func (se SyntaxError) String() string {
	return fmt.Sprintf("%q@%d: %v", se.Input, evalmath.PosOf(se.Err), se.Err)
}
