package scanner

import (
	"testing"

	"github.com/mna/rlox/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestScanAllBasic(t *testing.T) {
	toks, err := ScanAll([]byte(`var a = 1 + 2.5; // comment
print a;`))
	require.NoError(t, err)
	require.NotEmpty(t, toks)
	assert.Equal(t, token.EOF, toks[len(toks)-1].Kind)
	assert.Equal(t, []token.Kind{
		token.VAR, token.IDENT, token.EQ, token.NUMBER, token.PLUS, token.NUMBER,
		token.SEMI, token.PRINT, token.IDENT, token.SEMI, token.EOF,
	}, kinds(toks))
}

func TestScanAllAlwaysEndsWithEOF(t *testing.T) {
	cases := []string{"", "   ", "// only a comment", "@", `"unterminated`}
	for _, c := range cases {
		toks, _ := ScanAll([]byte(c))
		require.NotEmpty(t, toks)
		assert.Equal(t, token.EOF, toks[len(toks)-1].Kind, "input %q", c)
	}
}

func TestScanTwoCharOperators(t *testing.T) {
	toks, err := ScanAll([]byte(`!= == <= >= = ! < >`))
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.BANG_EQ, token.EQ_EQ, token.LT_EQ, token.GT_EQ, token.EQ, token.BANG,
		token.LT, token.GT, token.EOF,
	}, kinds(toks))
}

func TestScanNumberLiteral(t *testing.T) {
	toks, err := ScanAll([]byte(`123 45.67`))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, 123.0, toks[0].Literal.Number)
	assert.Equal(t, 45.67, toks[1].Literal.Number)
}

func TestScanStringLiteral(t *testing.T) {
	toks, err := ScanAll([]byte(`"hello world"`))
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.True(t, toks[0].Literal.IsString)
	assert.Equal(t, "hello world", toks[0].Literal.Str)
}

func TestScanMultilineString(t *testing.T) {
	toks, err := ScanAll([]byte("\"line1\nline2\"\nprint 1;"))
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2", toks[0].Literal.Str)
	// the string spans lines 1-2, so the PRINT token is on line 3
	var printTok token.Token
	for _, tk := range toks {
		if tk.Kind == token.PRINT {
			printTok = tk
		}
	}
	assert.Equal(t, 3, printTok.Line)
}

func TestScanUnterminatedStringReportsError(t *testing.T) {
	_, err := ScanAll([]byte(`"abc`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unterminated string")
}

func TestScanUnexpectedCharacterContinues(t *testing.T) {
	toks, err := ScanAll([]byte(`@ var x = 1;`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unexpected character")
	assert.Equal(t, token.EOF, toks[len(toks)-1].Kind)
	// scanning continued past the bad character
	assert.Contains(t, kinds(toks), token.VAR)
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	toks, err := ScanAll([]byte(`class classified this thisOne`))
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{token.CLASS, token.IDENT, token.THIS, token.IDENT, token.EOF}, kinds(toks))
}

func TestScanTokenIDsAreMonotonicAndDistinct(t *testing.T) {
	toks, err := ScanAll([]byte(`a a a`))
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Less(t, toks[0].ID, toks[1].ID)
	assert.Less(t, toks[1].ID, toks[2].ID)
	assert.NotEqual(t, toks[0].ID, toks[1].ID)
}

func TestScanLineComment(t *testing.T) {
	toks, err := ScanAll([]byte("1 // trailing comment\n2"))
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{token.NUMBER, token.NUMBER, token.EOF}, kinds(toks))
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
}
