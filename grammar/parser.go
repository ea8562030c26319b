package grammar

import (
	"github.com/cpiber/EvalMath"
	"github.com/cpiber/EvalMath/corelang"
	"github.com/cpiber/EvalMath/sframe"
	"github.com/cpiber/EvalMath/vm"
	"github.com/emirpasic/gods/stacks/linkedliststack"
)

// Parser converts statements to postfix programs. Identifiers are resolved
// against a symbol table, and definitions are entered into it while parsing.
type Parser struct {
	symbols *sframe.SymbolTable
}

// NewParser creates a parser working on a symbol table.
func NewParser(symbols *sframe.SymbolTable) *Parser {
	return &Parser{symbols: symbols}
}

// Parse converts a single statement (without ';') into a postfix program.
// An empty statement results in a program evaluating to 0. Error positions
// are relative to the start of the statement.
func (p *Parser) Parse(statement string) (vm.Program, error) {
	tokens, err := Tokenize(statement)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return vm.Program{vm.Val(0)}, nil
	}
	sp := p.subParser(tokens, 0, stopAtEnd, statementContext, nil)
	n, prog, err := sp.parse()
	if err != nil {
		return nil, err
	}
	if n != len(tokens) {
		tracer().Errorf("statement parser stopped at token #%d of %d", n, len(tokens))
		return nil, evalmath.Errorf(evalmath.InvalidStackState, tokens[n].Pos,
			"internal error - statement not fully parsed")
	}
	tracer().Debugf("%q ⟹ %s", statement, prog)
	return prog, nil
}

// context is the syntactic context a sub-parser works in.
type context uint8

const (
	statementContext context = iota
	argumentContext
	assignmentContext
	bodyContext
)

// terminators is the set of tokens a sub-parser stops at. Terminators are
// recognized only outside of groups opened by the sub-parser itself.
type terminators uint8

const (
	stopAtEnd   terminators = 0
	stopAtComma terminators = 1 << iota
	stopAtClose
)

// subParser parses a sub-expression. It is created fresh for every nested
// context and discarded after use.
type subParser struct {
	*Parser
	tokens   []Token
	scope    *sframe.ScopeFrame     // parameters of function bodies under construction
	start    int                    // first token of the sub-expression
	pos      int                    // cursor
	stop     terminators            // where to stop
	ctx      context                // what is parsed
	output   vm.Program             // postfix output
	ops      *linkedliststack.Stack // pending operators
	depth    int                    // open groups
	expectOp bool                   // next token must be an operator
	allowDef bool                   // a definition is possible at this position
}

func (p *Parser) subParser(tokens []Token, start int, stop terminators, ctx context,
	scope *sframe.ScopeFrame) *subParser {
	//
	return &subParser{
		Parser: p,
		tokens: tokens,
		scope:  scope,
		start:  start,
		pos:    start,
		stop:   stop,
		ctx:    ctx,
		ops:    linkedliststack.New(),
	}
}

// child creates a sub-parser for a nested context, starting at token #start.
func (sp *subParser) child(start int, stop terminators, ctx context, scope *sframe.ScopeFrame) *subParser {
	return sp.Parser.subParser(sp.tokens, start, stop, ctx, scope)
}

// parse runs the shunting-yard loop. It returns the number of tokens consumed
// and the postfix program of the sub-expression. The terminator token the
// sub-parser stopped at is not consumed.
func (sp *subParser) parse() (int, vm.Program, error) {
	sp.allowDef = true
	for sp.pos < len(sp.tokens) {
		tok := sp.tokens[sp.pos]
		if sp.depth == 0 && sp.isTerminator(tok) {
			break
		}
		var err error
		switch tok.Type {
		case NumberToken:
			err = sp.number(tok)
		case IdentToken:
			err = sp.identifier(tok)
		case OperatorToken:
			err = sp.operator(tok)
		case AssignToken:
			err = evalmath.Errorf(evalmath.UnexpectedAssignment, tok.Pos, "unexpected assignment")
		default:
			err = evalmath.Errorf(evalmath.InvalidCharacter, tok.Pos, "invalid character '%s'", tok.Lexeme)
		}
		if err != nil {
			tracer().Infof("syntax error at %d: %v", evalmath.PosOf(err), err)
			return 0, nil, err
		}
		sp.allowDef = false
	}
	if !sp.expectOp {
		if sp.pos == sp.start && sp.ctx == argumentContext {
			return 0, nil, evalmath.Errorf(evalmath.ArityMismatch, sp.endPos(), "missing argument")
		} else if sp.pos == sp.start {
			return 0, nil, evalmath.Errorf(evalmath.TrailingOperator, sp.endPos(), "missing expression")
		}
		return 0, nil, evalmath.Errorf(evalmath.TrailingOperator, sp.endPos(), "cannot end in operator")
	}
	for !sp.ops.Empty() { // pop remaining operators
		op := sp.popOp()
		if op == corelang.OpenGroup {
			return 0, nil, evalmath.Errorf(evalmath.MismatchedParenthesis, sp.endPos(),
				"mismatched parenthesis")
		}
		sp.emit(vm.Op(op))
	}
	return sp.pos - sp.start, sp.output, nil
}

func (sp *subParser) isTerminator(tok Token) bool {
	switch {
	case tok.Type == CommaToken:
		return sp.stop&stopAtComma != 0
	case tok.Type == OperatorToken && tok.Op == corelang.CloseGroup:
		return sp.stop&stopAtClose != 0
	}
	return false
}

// endPos is the input position of the token at the cursor, or the end of
// the input.
func (sp *subParser) endPos() int {
	if sp.pos < len(sp.tokens) {
		return sp.tokens[sp.pos].Pos
	}
	if len(sp.tokens) == 0 {
		return 0
	}
	return sp.tokens[len(sp.tokens)-1].end()
}

func (sp *subParser) emit(e vm.Element) {
	sp.output = append(sp.output, e)
}

func (sp *subParser) popOp() corelang.Operator {
	op, _ := sp.ops.Pop()
	return op.(corelang.Operator)
}

func (sp *subParser) topOp() (corelang.Operator, bool) {
	op, ok := sp.ops.Peek()
	if !ok {
		return corelang.NoOp, false
	}
	return op.(corelang.Operator), true
}

// --- Operands --------------------------------------------------------------

func (sp *subParser) number(tok Token) error {
	if sp.expectOp {
		sp.binary(corelang.Mul) // implicit multiplication
	}
	v, err := evalmath.ParseValue(tok.Lexeme)
	if err != nil {
		return evalmath.Shift(err, tok.Pos)
	}
	sp.emit(vm.Val(v))
	sp.expectOp = true
	sp.pos++
	return nil
}

// identifier resolves a name: a parameter of an enclosing function body, a
// constant or variable, or a function to call. Unknown names at the start
// of a sub-expression begin a definition.
func (sp *subParser) identifier(tok Token) error {
	if sp.expectOp {
		sp.binary(corelang.Mul) // implicit multiplication
	}
	name := tok.Lexeme
	if fn, i, ok := sp.scope.Resolve(name); ok {
		sp.emit(vm.Param(fn, i))
		sp.expectOp = true
		sp.pos++
		return nil
	}
	sym, ok := sp.symbols.Lookup(name)
	if !ok {
		if sp.allowDef {
			return sp.definition(tok)
		}
		return evalmath.Errorf(evalmath.UnknownSymbol, tok.Pos, "unknown symbol '%s'", name)
	}
	switch sym.Kind {
	case sframe.Constant:
		sp.emit(vm.Val(sym.Value))
	case sframe.Variable:
		if v, ok := sym.Variable.Value(); ok {
			sp.emit(vm.Val(v))
		} else { // defined in this statement, not yet computed
			sp.emit(vm.Thunk(sym.Variable))
		}
	default:
		return sp.call(tok, sym)
	}
	sp.expectOp = true
	sp.pos++
	return nil
}

// call parses the argument list of a function call. Each argument is parsed
// by a sub-parser stopping at ',' or ')'. Arguments must be separated by ','
// and the last one must be followed by ')'; anything else is an arity
// mismatch.
func (sp *subParser) call(tok Token, sym sframe.Symbol) error {
	sp.pos++ // function name
	if sp.pos >= len(sp.tokens) || sp.tokens[sp.pos].Op != corelang.OpenGroup {
		return evalmath.Errorf(evalmath.ArityMismatch, sp.endPos(),
			"expected '(' after function %s", sym.Name)
	}
	sp.pos++
	arity := sym.Arity()
	if arity == 0 {
		if sp.pos >= len(sp.tokens) {
			return evalmath.Errorf(evalmath.MismatchedParenthesis, sp.endPos(),
				"missing ')' in call of %s", sym.Name)
		} else if sp.tokens[sp.pos].Op != corelang.CloseGroup {
			return evalmath.Errorf(evalmath.ArityMismatch, sp.endPos(),
				"%s takes no arguments", sym.Name)
		}
		sp.pos++
	}
	for i := 0; i < arity; i++ {
		arg := sp.child(sp.pos, stopAtComma|stopAtClose, argumentContext, sp.scope)
		n, prog, err := arg.parse()
		if err != nil {
			return err
		}
		sp.pos += n
		if sp.pos >= len(sp.tokens) {
			return evalmath.Errorf(evalmath.MismatchedParenthesis, sp.endPos(),
				"missing ')' in call of %s", sym.Name)
		}
		t := sp.tokens[sp.pos]
		if last := i == arity-1; (last && t.Type == CommaToken) || (!last && t.Type != CommaToken) {
			return evalmath.Errorf(evalmath.ArityMismatch, t.Pos,
				"%s expects %d argument(s)", sym.Name, arity)
		}
		sp.pos++ // ',' or ')'
		sp.output = append(sp.output, prog...)
	}
	switch sym.Kind {
	case sframe.BuiltinFunction:
		sp.emit(vm.Call(sym.Builtin))
	case sframe.UserFunction:
		sp.emit(vm.Invoke(sym.Function))
	}
	sp.expectOp = true
	return nil
}

// --- Definitions -----------------------------------------------------------

// definition parses a variable definition "name = expr" or a function
// definition "name(params) = expr". The cursor is on the name.
func (sp *subParser) definition(tok Token) error {
	next := sp.pos + 1
	if next < len(sp.tokens) {
		switch t := sp.tokens[next]; {
		case t.Type == AssignToken:
			return sp.defineVariable(tok, next+1)
		case t.Op == corelang.OpenGroup:
			return sp.defineFunction(tok, next+1)
		}
		return evalmath.Errorf(evalmath.UnknownSymbol, tok.Pos,
			"unknown symbol '%s', expected assignment (=)", tok.Lexeme)
	}
	return evalmath.Errorf(evalmath.UnknownSymbol, tok.Pos, "unknown symbol '%s'", tok.Lexeme)
}

func (sp *subParser) defineVariable(tok Token, rhs int) error {
	sub := sp.child(rhs, sp.stop, assignmentContext, sp.scope)
	n, prog, err := sub.parse()
	if err != nil {
		return err
	}
	v := sp.symbols.DefineVariable(tok.Lexeme, prog)
	sp.emit(vm.Thunk(v))
	sp.pos = rhs + n
	sp.expectOp = true
	return nil
}

func (sp *subParser) defineFunction(tok Token, at int) error {
	name := tok.Lexeme
	params, pos, err := sp.parameters(tok, at)
	if err != nil {
		return err
	}
	if pos >= len(sp.tokens) || sp.tokens[pos].Type != AssignToken {
		return evalmath.Errorf(evalmath.UnknownSymbol, tok.Pos,
			"unknown symbol '%s', expected definition (=)", name)
	}
	pos++
	fn := vm.NewUserFunction(name, params)
	body := sp.child(pos, sp.stop, bodyContext, sp.scope.PushFrame(fn))
	n, prog, err := body.parse()
	if err != nil {
		return err
	}
	fn.Body = prog
	sp.symbols.DefineFunction(fn)
	sp.emit(vm.Definition(fn))
	sp.pos = pos + n
	sp.expectOp = true
	return nil
}

// parameters parses a parameter list up to and including ')'. It returns
// the position of the token following the list.
func (sp *subParser) parameters(tok Token, pos int) ([]string, int, error) {
	params := []string{}
	malformed := func() ([]string, int, error) {
		return nil, 0, evalmath.Errorf(evalmath.UnknownSymbol, tok.Pos,
			"unknown symbol '%s', malformed parameter list", tok.Lexeme)
	}
	if pos < len(sp.tokens) && sp.tokens[pos].Op == corelang.CloseGroup {
		return params, pos + 1, nil
	}
	for {
		if pos >= len(sp.tokens) || sp.tokens[pos].Type != IdentToken {
			return malformed()
		}
		param := sp.tokens[pos].Lexeme
		for _, p := range params {
			if p == param {
				return nil, 0, evalmath.Errorf(evalmath.UnknownSymbol, sp.tokens[pos].Pos,
					"duplicate parameter '%s'", param)
			}
		}
		params = append(params, param)
		pos++
		if pos >= len(sp.tokens) {
			return nil, 0, evalmath.Errorf(evalmath.MismatchedParenthesis, sp.tokens[pos-1].end(),
				"mismatched parenthesis")
		}
		switch t := sp.tokens[pos]; {
		case t.Type == CommaToken:
			pos++
		case t.Op == corelang.CloseGroup:
			return params, pos + 1, nil
		default:
			return malformed()
		}
	}
}

// --- Operators -------------------------------------------------------------

// operator handles an operator token. In operand position only '-' (read as
// unary negation) and opening groups are allowed.
func (sp *subParser) operator(tok Token) error {
	op := tok.Op
	sp.pos++
	if !sp.expectOp {
		switch op {
		case corelang.Sub:
			sp.ops.Push(corelang.Neg)
		case corelang.OpenGroup:
			sp.ops.Push(corelang.OpenGroup)
			sp.depth++
		default:
			return evalmath.Errorf(evalmath.UnexpectedOperator, tok.Pos,
				"unexpected operator '%s'", tok.Lexeme)
		}
		return nil
	}
	switch op {
	case corelang.OpenGroup:
		sp.binary(corelang.Mul) // implicit multiplication
		sp.ops.Push(corelang.OpenGroup)
		sp.depth++
	case corelang.CloseGroup:
		return sp.closeGroup(tok)
	default:
		sp.binary(op)
	}
	return nil
}

// binary reduces pending operators binding at least as tight as op (tighter
// for right-associative op), then pushes op.
func (sp *subParser) binary(op corelang.Operator) {
	for {
		top, ok := sp.topOp()
		if !ok || top == corelang.OpenGroup || !op.YieldsTo(top) {
			break
		}
		sp.emit(vm.Op(sp.popOp()))
	}
	sp.ops.Push(op)
	sp.expectOp = false
}

// closeGroup reduces pending operators down to the matching opening group
// and discards both group markers.
func (sp *subParser) closeGroup(tok Token) error {
	for {
		if sp.ops.Empty() {
			return evalmath.Errorf(evalmath.MismatchedParenthesis, tok.Pos, "mismatched parenthesis")
		}
		op := sp.popOp()
		if op == corelang.OpenGroup {
			break
		}
		sp.emit(vm.Op(op))
	}
	sp.depth--
	sp.expectOp = true
	return nil
}
