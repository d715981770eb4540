package lexer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ostnam/loxfront/pkg/lexer"
	"github.com/ostnam/loxfront/pkg/token"
)

// lineOf returns the 1-based line's text from src.
func lineOf(src string, line int) string {
	lines := strings.Split(src, "\n")
	return lines[line-1]
}

func TestTokenRoundTrip(t *testing.T) {
	src := "var x = 1 + foo;\nprint x;"
	toks, bag := lexer.Scan([]byte(src))
	require.False(t, bag.HadError())

	for _, tok := range toks {
		if tok.IsEOF() {
			continue
		}
		line := lineOf(src, tok.Line)
		assert.Equal(t, tok.Lexeme, line[tok.ColStart:tok.ColEnd], "token %v", tok)
	}
}

func TestLexerStateMonotonic(t *testing.T) {
	src := "var a = 1;\nvar b = 2;\nvar c = 3;"
	toks, bag := lexer.Scan([]byte(src))
	require.False(t, bag.HadError())

	lastLine := 0
	for _, tok := range toks {
		assert.GreaterOrEqual(t, tok.Line, lastLine)
		if tok.Line > lastLine {
			lastLine = tok.Line
		}
	}
}

func TestColResetsAfterNewline(t *testing.T) {
	src := "a;\nb;"
	toks, bag := lexer.Scan([]byte(src))
	require.False(t, bag.HadError())

	// toks[2] is 'b' on line 2, first token of that line.
	require.GreaterOrEqual(t, len(toks), 3)
	var firstOnLine2 *token.Token
	for i := range toks {
		if toks[i].Line == 2 {
			firstOnLine2 = &toks[i]
			break
		}
	}
	require.NotNil(t, firstOnLine2)
	assert.Equal(t, 0, firstOnLine2.ColStart)
}

func TestEndsWithExactlyOneEOF(t *testing.T) {
	toks, _ := lexer.Scan([]byte("var x;"))
	require.NotEmpty(t, toks)
	assert.True(t, toks[len(toks)-1].IsEOF())
	for _, tok := range toks[:len(toks)-1] {
		assert.False(t, tok.IsEOF())
	}
}

func TestMaximalMunchOperators(t *testing.T) {
	cases := map[string]token.Kind{
		"+":   token.Plus,
		"+=":  token.PlusEqual,
		"++":  token.PlusPlus,
		"<":   token.Less,
		"<=":  token.LessEqual,
		"<<":  token.ShiftLeft,
		"<<=": token.ShiftLeftEqual,
		">>=": token.ShiftRightEqual,
		"&&":  token.AmpAmp,
		"||":  token.PipePipe,
	}
	for src, want := range cases {
		toks, bag := lexer.Scan([]byte(src))
		require.False(t, bag.HadError(), src)
		require.Len(t, toks, 2, "expected one token plus EOF for %q", src)
		assert.Equal(t, want, toks[0].Kind, src)
		assert.Equal(t, src, toks[0].Lexeme)
	}
}

func TestUnterminatedStringLiteral(t *testing.T) {
	toks, bag := lexer.Scan([]byte(`"hello`))
	require.True(t, bag.HadError())
	require.Len(t, bag.All(), 1)
	assert.Contains(t, bag.All()[0].Error(), "Unterminated string literal.")

	// no token is emitted for the failed string; only EOF remains.
	require.Len(t, toks, 1)
	assert.True(t, toks[0].IsEOF())
}

func TestUnterminatedStringReportsLiveLineNotOpeningLine(t *testing.T) {
	src := "\"line one\nline two"
	_, bag := lexer.Scan([]byte(src))
	require.True(t, bag.HadError())
	require.Len(t, bag.All(), 1)
	assert.Equal(t, 2, bag.All()[0].Line, "must report at EOF's line, not the opening quote's line")
}

func TestUnterminatedBlockComment(t *testing.T) {
	_, bag := lexer.Scan([]byte("/* never closes"))
	require.True(t, bag.HadError())
	assert.Contains(t, bag.All()[0].Error(), "Unterminated block comment.")
	assert.Equal(t, 1, bag.All()[0].Line)
}

func TestMalformedExponentKeepsConsumedChars(t *testing.T) {
	toks, bag := lexer.Scan([]byte("1e"))
	require.True(t, bag.HadError())
	assert.Contains(t, bag.All()[0].Error(), "Expected digit after exponent marker.")
	require.Len(t, toks, 2)
	assert.Equal(t, token.Number, toks[0].Kind)
	assert.Equal(t, "1e", toks[0].Lexeme, "the exponent marker is not rewound out of the lexeme")
}

func TestKeywordsAndBooleanLiterals(t *testing.T) {
	toks, bag := lexer.Scan([]byte("true false nil"))
	require.False(t, bag.HadError())
	require.Len(t, toks, 4)
	assert.Equal(t, token.True, toks[0].Kind)
	assert.True(t, toks[0].Literal.IsBool)
	assert.True(t, toks[0].Literal.Bool)
	assert.Equal(t, token.False, toks[1].Kind)
	assert.False(t, toks[1].Literal.Bool)
	assert.Equal(t, token.Nil, toks[2].Kind)
}

func TestUnexpectedCharacterContinuesScanning(t *testing.T) {
	toks, bag := lexer.Scan([]byte("@ var x;"))
	require.True(t, bag.HadError())
	assert.Contains(t, bag.All()[0].Error(), "Unexpected character: '@'.")
	// scanning continues past the bad character
	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Contains(t, kinds, token.Var)
}
