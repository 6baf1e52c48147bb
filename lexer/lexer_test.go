package lexer

import (
	"testing"

	"github.com/riftlang/rift/token"
	"github.com/stretchr/testify/assert"
)

func tokenTypes(t *testing.T, src string) []token.Type {
	t.Helper()
	toks, err := Tokenize(src)
	assert.NoError(t, err)
	types := make([]token.Type, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}

func TestTokenizeArithmetic(t *testing.T) {
	types := tokenTypes(t, "123 + 2 - 12")
	assert.Equal(t, []token.Type{
		token.INTEGER, token.PLUS, token.INTEGER, token.DASH, token.INTEGER, token.EOF,
	}, types)
}

func TestTokenizeEndsWithEOF(t *testing.T) {
	types := tokenTypes(t, "")
	assert.Equal(t, []token.Type{token.EOF}, types)
}

func TestTokenizePunctuationMaximalMunch(t *testing.T) {
	toks, err := Tokenize(">= >> >>> <= << === !== && ||")
	assert.NoError(t, err)
	want := []token.Type{
		token.GE, token.BIT_RSHIFT, token.BIT_URSHIFT, token.LE, token.BIT_LSHIFT,
		token.STRICT_EQUALS, token.STRICT_NEQUALS, token.AND, token.OR, token.EOF,
	}
	got := make([]token.Type, len(toks))
	for i, tok := range toks {
		got[i] = tok.Type
	}
	assert.Equal(t, want, got)
}

func TestTokenizeKeywordsAndIdentifiers(t *testing.T) {
	toks, err := Tokenize("var x = true")
	assert.NoError(t, err)
	assert.Equal(t, token.KEYWORD, toks[0].Type)
	assert.Equal(t, "var", toks[0].Text)
	assert.Equal(t, token.IDENTIFIER, toks[1].Type)
	assert.Equal(t, "x", toks[1].Text)
	assert.Equal(t, token.ASSIGN, toks[2].Type)
	assert.Equal(t, token.KEYWORD, toks[3].Type)
	assert.Equal(t, "true", toks[3].Text)
}

func TestTokenizeLabel(t *testing.T) {
	toks, err := Tokenize("outer: while (true) break outer;")
	assert.NoError(t, err)
	assert.Equal(t, token.LABEL, toks[0].Type)
	assert.Equal(t, "outer", toks[0].Text)
}

func TestTokenizeNumbers(t *testing.T) {
	cases := map[string]token.Type{
		"42":      token.INTEGER,
		"3.14":    token.DOUBLE,
		"5.e-99":  token.DOUBLE,
		"1e10":    token.DOUBLE,
		"2.5E+3":  token.DOUBLE,
	}
	for src, want := range cases {
		toks, err := Tokenize(src)
		assert.NoError(t, err, src)
		assert.Equal(t, want, toks[0].Type, src)
	}
}

func TestTokenizeNumberErrors(t *testing.T) {
	_, err := Tokenize("1.2.3")
	assert.Error(t, err)

	_, err = Tokenize("1e")
	assert.Error(t, err)

	_, err = Tokenize("1eE2")
	assert.Error(t, err)
}

func TestTokenizeStringEscapes(t *testing.T) {
	toks, err := Tokenize(`"a\nb\tc\\d\"e"`)
	assert.NoError(t, err)
	assert.Equal(t, "a\nb\tc\\d\"e", toks[0].Text)
}

func TestTokenizeStringUnterminated(t *testing.T) {
	_, err := Tokenize(`"abc`)
	assert.Error(t, err)

	_, err = Tokenize("\"abc\ndef\"")
	assert.Error(t, err)
}

func TestTokenizeStringUnknownEscape(t *testing.T) {
	_, err := Tokenize(`"a\qb"`)
	assert.Error(t, err)
}

func TestTokenizePositionsAdvance(t *testing.T) {
	toks, err := Tokenize("var\nx")
	assert.NoError(t, err)
	assert.Equal(t, 1, toks[0].Position.Line)
	assert.Equal(t, 2, toks[1].Position.Line)
}

func TestTokenizeComments(t *testing.T) {
	toks, err := Tokenize("1 // comment\n + /* block\ncomment */ 2")
	assert.NoError(t, err)
	assert.Equal(t, []token.Type{token.INTEGER, token.PLUS, token.INTEGER, token.EOF}, []token.Type{
		toks[0].Type, toks[1].Type, toks[2].Type, toks[3].Type,
	})
}
