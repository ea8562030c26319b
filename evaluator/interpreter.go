package evaluator

import (
	"strings"
	"unicode"

	"github.com/cpiber/EvalMath"
	"github.com/cpiber/EvalMath/grammar"
	"github.com/cpiber/EvalMath/sframe"
	"github.com/cpiber/EvalMath/vm"
)

// StatementSeparator separates statements of an input line.
const StatementSeparator = ";"

// Interpreter evaluates input lines.
type Interpreter struct {
	symbols *sframe.SymbolTable
	parser  *grammar.Parser
}

// NewInterpreter creates an interpreter with an empty set of user
// definitions.
func NewInterpreter() *Interpreter {
	symbols := sframe.NewSymbolTable()
	return &Interpreter{
		symbols: symbols,
		parser:  grammar.NewParser(symbols),
	}
}

// Result is the outcome of evaluating an input line.
//
// Value is the value of the last statement and is valid only if that
// statement succeeded. Err is the first error of any statement, even if a
// later statement succeeded. Thus a result may carry both a valid value and
// an error.
type Result struct {
	Value evalmath.Value
	Valid bool
	Err   error
}

// Failed is a predicate: did the last statement fail?
func (r Result) Failed() bool {
	return !r.Valid
}

// Evaluate splits text into statements, then parses and executes them in
// order. Error positions refer to text.
func (intp *Interpreter) Evaluate(text string) Result {
	var result Result
	for _, stmt := range splitStatements(text) {
		v, err := intp.execute(stmt.text)
		if err != nil {
			err = evalmath.Shift(err, stmt.offset)
			tracer().P("pos", evalmath.PosOf(err)).Infof("statement %q: %v", stmt.text, err)
			if result.Err == nil {
				result.Err = err
			}
			result.Value, result.Valid = 0, false
			continue
		}
		result.Value, result.Valid = v, true
	}
	if result.Valid {
		tracer().Debugf("%q ⟹ %s", text, result.Value)
	}
	return result
}

func (intp *Interpreter) execute(statement string) (evalmath.Value, error) {
	prog, err := intp.parser.Parse(statement)
	if err != nil {
		return 0, err
	}
	return vm.Execute(prog)
}

// Variable returns the value of a constant or variable. Variables which
// have not yet been computed have no value.
func (intp *Interpreter) Variable(name string) (evalmath.Value, bool) {
	return intp.symbols.Value(name)
}

// Symbols returns the interpreter's symbol table.
func (intp *Interpreter) Symbols() *sframe.SymbolTable {
	return intp.symbols
}

// Reset drops all user definitions.
func (intp *Interpreter) Reset() {
	tracer().Infof("reset of user definitions")
	intp.symbols.Clear()
}

// --- Statements ------------------------------------------------------------

type statement struct {
	text   string
	offset int // position of text within the input
}

// splitStatements trims text and splits it at statement separators.
// A single trailing separator does not start a new statement, so "1;" is
// one statement, but "1;;" is two, the second one being empty.
func splitStatements(text string) []statement {
	lead := len(text) - len(strings.TrimLeftFunc(text, unicode.IsSpace))
	text = strings.TrimSpace(text)
	parts := strings.Split(text, StatementSeparator)
	if n := len(parts); n > 1 && parts[n-1] == "" {
		parts = parts[:n-1]
	}
	stmts := make([]statement, len(parts))
	offset := lead
	for i, part := range parts {
		stmts[i] = statement{text: part, offset: offset}
		offset += len(part) + len(StatementSeparator)
	}
	return stmts
}
