package grammar

import (
	"errors"
	"testing"

	"github.com/cpiber/EvalMath"
	"github.com/cpiber/EvalMath/corelang"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexerCompiles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalmath.grammar")
	defer teardown()
	//
	lx, err := Lexer()
	require.NoError(t, err)
	assert.NotNil(t, lx)
}

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalmath.grammar")
	defer teardown()
	//
	tokens, err := Tokenize(" f(x_1, 2.5) = [x_1]\\3 ")
	require.NoError(t, err)
	types := make([]TokType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	assert.Equal(t, []TokType{
		IdentToken, OperatorToken, IdentToken, CommaToken, NumberToken, OperatorToken,
		AssignToken, OperatorToken, IdentToken, OperatorToken, OperatorToken, NumberToken,
	}, types)
	assert.Equal(t, "f", tokens[0].Lexeme)
	assert.Equal(t, 1, tokens[0].Pos)
	assert.Equal(t, corelang.OpenGroup, tokens[1].Op)
	assert.Equal(t, "2.5", tokens[4].Lexeme)
	assert.Equal(t, 8, tokens[4].Pos)
	assert.Equal(t, corelang.OpenGroup, tokens[7].Op, "'[' should be a group")
	assert.Equal(t, corelang.CloseGroup, tokens[9].Op, "']' should be a group")
	assert.Equal(t, corelang.IDiv, tokens[10].Op)
}

func TestTokenizeEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalmath.grammar")
	defer teardown()
	//
	tokens, err := Tokenize(" \t ")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokenizeInvalidCharacter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "evalmath.grammar")
	defer teardown()
	//
	_, err := Tokenize("1 + 2 # 3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, evalmath.ErrInvalidCharacter))
	assert.Equal(t, 6, evalmath.PosOf(err))
}
