package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIdent(t *testing.T) {
	cases := []struct {
		lit  string
		want Kind
	}{
		{"and", AND},
		{"class", CLASS},
		{"while", WHILE},
		{"this", THIS},
		{"super", SUPER},
		{"foo", IDENT},
		{"classy", IDENT},
		{"", IDENT},
	}
	for _, c := range cases {
		t.Run(c.lit, func(t *testing.T) {
			assert.Equal(t, c.want, LookupIdent(c.lit))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "(", LPAREN.String())
	assert.Equal(t, "end of file", EOF.String())
	require.Contains(t, ILLEGAL.GoString(), "illegal")
	assert.Equal(t, "'('", LPAREN.GoString())
	assert.Equal(t, "and", AND.GoString())
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: IDENT, Lexeme: "x", Line: 1, ID: 3}
	assert.Equal(t, `identifier "x"`, tok.String())
}
