package syntax

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []Kind {
	result := make([]Kind, len(tokens))
	for i, tok := range tokens {
		result[i] = tok.Kind
	}
	return result
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize(`let rec f x = \y. (x + y, -1) in fix f`)
	require.NoError(t, err)
	assert.Equal(t, []Kind{
		LET, REC, IDEN, IDEN, EQ, LAM, IDEN, BODY,
		LPAREN, IDEN, ADD, IDEN, COMMA, SUB, LIT, RPAREN,
		IN, FIX, IDEN, EOF,
	}, kinds(tokens))
}

func TestTokenizeLiterals(t *testing.T) {
	tokens, err := Tokenize("42 true false x_1 _y")
	require.NoError(t, err)
	require.Len(t, tokens, 6)

	assert.Equal(t, 42, tokens[0].Value)
	assert.Equal(t, true, tokens[1].Value)
	assert.Equal(t, false, tokens[2].Value)
	assert.Equal(t, Token{Kind: IDEN, Text: "x_1", Pos: Pos{1, 15}}, tokens[3])
	assert.Equal(t, "_y", tokens[4].Text)
}

func TestTokenizeKeywords(t *testing.T) {
	tokens, err := Tokenize("if then else not and or < > = * /")
	require.NoError(t, err)
	assert.Equal(t, []Kind{IF, THEN, ELSE, NOT, AND, OR, LT, GT, EQ, MUL, DIV, EOF}, kinds(tokens))
}

func TestTokenizePositions(t *testing.T) {
	tokens, err := Tokenize("1 +\n  foo # trailing comment\n# whole line\nbar")
	require.NoError(t, err)
	require.Equal(t, []Kind{LIT, ADD, IDEN, IDEN, EOF}, kinds(tokens))
	assert.Equal(t, Pos{1, 1}, tokens[0].Pos)
	assert.Equal(t, Pos{1, 3}, tokens[1].Pos)
	assert.Equal(t, Pos{2, 3}, tokens[2].Pos)
	assert.Equal(t, Pos{4, 1}, tokens[3].Pos)
}

func TestTokenizeUnrecognized(t *testing.T) {
	for _, tc := range []struct {
		src      string
		expected string
	}{
		{"1 @ 2", "1:3: Unrecognized char @"},
		{"x;", "1:2: Unrecognized char ;"},
		{"\n  λx. x", "2:3: Unrecognized char λ"},
		{"99999999999999999999999", "1:1: integer literal 99999999999999999999999 out of range"},
	} {
		t.Run(tc.src, func(t *testing.T) {
			_, err := Tokenize(tc.src)
			require.Error(t, err)
			assert.Equal(t, tc.expected, err.Error())

			var syntaxErr *SyntaxError
			assert.True(t, errors.As(err, &syntaxErr))
		})
	}
}

func TestTokenizeEmpty(t *testing.T) {
	tokens, err := Tokenize("   ")
	require.NoError(t, err)
	assert.Equal(t, []Kind{EOF}, kinds(tokens))
}
