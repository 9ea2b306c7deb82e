/*
File    : lambda/lexer/lexer_test.go
Author  : akashmaji946
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/lambda/token"
)

type tokenCase struct {
	Input    string
	Expected []token.Token
}

func TestConsumeTokens(t *testing.T) {
	tests := []tokenCase{
		{
			Input: `as  df`,
			Expected: []token.Token{
				token.New(token.CHAR, "a"),
				token.New(token.CHAR, "s"),
				token.New(token.CHAR, "d"),
				token.New(token.CHAR, "f"),
			},
		},
		{
			Input: `(\xyz.x) Name 123 _foo9`,
			Expected: []token.Token{
				token.New(token.OPPAREN, "("),
				token.New(token.BACKSLASH, "\\"),
				token.New(token.CHAR, "x"),
				token.New(token.CHAR, "y"),
				token.New(token.CHAR, "z"),
				token.New(token.DOT, "."),
				token.New(token.CHAR, "x"),
				token.New(token.CLPAREN, ")"),
				token.New(token.CAPITALIZED, "Name"),
				token.New(token.CAPITALIZED, "123"),
				token.New(token.CAPITALIZED, "_foo9"),
			},
		},
		{
			Input: `Id = a; Id;`,
			Expected: []token.Token{
				token.New(token.CAPITALIZED, "Id"),
				token.New(token.EQUALS, "="),
				token.New(token.CHAR, "a"),
				token.New(token.SEMICOLON, ";"),
				token.New(token.CAPITALIZED, "Id"),
				token.New(token.SEMICOLON, ";"),
			},
		},
	}

	for _, tc := range tests {
		lex := New([]byte(tc.Input))
		toks, err := lex.ConsumeTokens()
		assert.NoError(t, err)
		assert.Equal(t, len(tc.Expected), len(toks))
		for i, want := range tc.Expected {
			assert.Equal(t, want.Type, toks[i].Type)
			assert.Equal(t, want.Literal, toks[i].Literal)
		}
	}
}

func TestPositions(t *testing.T) {
	lex := New([]byte("as  df\ng"))
	toks, err := lex.ConsumeTokens()
	assert.NoError(t, err)

	type pos struct{ row, col int }
	want := []pos{{1, 1}, {1, 2}, {1, 5}, {1, 6}, {2, 1}}
	assert.Equal(t, len(want), len(toks))
	for i, p := range want {
		assert.Equal(t, p.row, toks[i].Row, "token %d row", i)
		assert.Equal(t, p.col, toks[i].Col, "token %d col", i)
	}
}

func TestCRLF(t *testing.T) {
	lex := New([]byte("a\r\nb"))
	toks, err := lex.ConsumeTokens()
	assert.NoError(t, err)
	assert.Equal(t, 2, len(toks))
	assert.Equal(t, 1, toks[0].Row)
	assert.Equal(t, 2, toks[1].Row)
	assert.Equal(t, 1, toks[1].Col)
}

func TestBadChar(t *testing.T) {
	lex := New([]byte("ab$cd"))
	_, err := lex.ConsumeTokens()
	assert.Error(t, err)
	var lexErr *LexError
	assert.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 1, lexErr.Row)
	assert.Equal(t, 3, lexErr.Col)
}

func TestEmptyInput(t *testing.T) {
	lex := New([]byte(""))
	toks, err := lex.ConsumeTokens()
	assert.NoError(t, err)
	assert.Empty(t, toks)
}
