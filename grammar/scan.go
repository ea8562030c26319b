package grammar

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/cpiber/EvalMath"
	"github.com/cpiber/EvalMath/corelang"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// TokType is the category of a token.
type TokType int

// Token categories
const (
	NoToken TokType = iota
	NumberToken
	IdentToken
	OperatorToken
	CommaToken
	AssignToken
)

func (tt TokType) String() string {
	switch tt {
	case NumberToken:
		return "number"
	case IdentToken:
		return "identifier"
	case OperatorToken:
		return "operator"
	case CommaToken:
		return "','"
	case AssignToken:
		return "'='"
	}
	return "<no token>"
}

// Token is a lexeme of the input together with its category and position.
type Token struct {
	Type   TokType
	Lexeme string
	Pos    int               // byte offset within the statement
	Op     corelang.Operator // for OperatorToken
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q@%d", t.Type, t.Lexeme, t.Pos)
}

// end returns the position just behind the token.
func (t Token) end() int {
	return t.Pos + len(t.Lexeme)
}

// The tokens representing literal one-char lexemes
var operators = []string{
	`\+`, `-`, `\*`, `/`, `%`, `\\`, `\^`,
	`\(`, `\)`, `\[`, `\]`, `{`, `}`,
}

var lexer *lexmachine.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time initialization

// Lexer returns the lexmachine lexer for the expression language. It is
// compiled on first use.
func Lexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`([0-9]|\.)+`), makeToken(NumberToken))
		lexer.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_]*`), makeToken(IdentToken))
		for _, op := range operators {
			lexer.Add([]byte(op), makeToken(OperatorToken))
		}
		lexer.Add([]byte(`,`), makeToken(CommaToken))
		lexer.Add([]byte(`=`), makeToken(AssignToken))
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip) // skip whitespace
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("cannot compile lexer: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

func makeToken(tt TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(tt), string(m.Bytes), m), nil
	}
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// Tokenize splits a statement into tokens. Characters not part of the
// language are reported as errors of kind InvalidCharacter.
func Tokenize(statement string) ([]Token, error) {
	lx, err := Lexer()
	if err != nil {
		return nil, err
	}
	text := []byte(statement)
	scanner, err := lx.Scanner(text)
	if err != nil {
		return nil, err
	}
	var tokens []Token
	for tok, err, eos := scanner.Next(); !eos; tok, err, eos = scanner.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			r, _ := utf8.DecodeRune(text[ui.StartTC:])
			tracer().Infof("invalid character %#U at %d", r, ui.StartTC)
			return nil, evalmath.Errorf(evalmath.InvalidCharacter, ui.StartTC,
				"invalid character '%c'", r)
		} else if err != nil {
			return nil, err
		}
		lt := tok.(*lexmachine.Token)
		t := Token{
			Type:   TokType(lt.Type),
			Lexeme: lt.Value.(string),
			Pos:    lt.TC,
		}
		if t.Type == OperatorToken {
			r, _ := utf8.DecodeRuneInString(t.Lexeme)
			t.Op = corelang.OperatorFor(r)
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}
