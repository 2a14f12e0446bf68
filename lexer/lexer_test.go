/*
File    : go-lox/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/go-lox/objects"
)

// collectingSink records scan errors for inspection in tests
type collectingSink struct {
	Reports []string
}

func (c *collectingSink) ScanError(line int, where string, message string) {
	c.Reports = append(c.Reports, message)
}

// represents a test case for ConsumeTokens
// Input: source code
// ExpectedTokens: list of expected tokens (EOF excluded)
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

// TestNewLexer_ConsumeTokens tests the ConsumeTokens method of the Lexer
func TestNewLexer_ConsumeTokens(t *testing.T) {

	tests := []TestConsumeToken{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(NUMBER_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(NUMBER_LIT, "12"),
			},
		},
		{
			Input: ` { } ( ) , ; . `,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(LEFT_PAREN, "("),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(COMMA_DELIM, ","),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(DOT_OP, "."),
			},
		},
		{
			Input: ` ! != = == > >= < <= `,
			ExpectedTokens: []Token{
				NewToken(NOT_OP, "!"),
				NewToken(NE_OP, "!="),
				NewToken(ASSIGN_OP, "="),
				NewToken(EQ_OP, "=="),
				NewToken(GT_OP, ">"),
				NewToken(GE_OP, ">="),
				NewToken(LT_OP, "<"),
				NewToken(LE_OP, "<="),
			},
		},
		{
			Input: `var x = 1.5; __a19bcd_aa90`,
			ExpectedTokens: []Token{
				NewToken(VAR_KEY, "var"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(ASSIGN_OP, "="),
				NewToken(NUMBER_LIT, "1.5"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(IDENTIFIER_ID, "__a19bcd_aa90"),
			},
		},
		{
			Input: `and or if else class true false fun for nil print return super this var while abort anon`,
			ExpectedTokens: []Token{
				NewToken(AND_KEY, "and"),
				NewToken(OR_KEY, "or"),
				NewToken(IF_KEY, "if"),
				NewToken(ELSE_KEY, "else"),
				NewToken(CLASS_KEY, "class"),
				NewToken(TRUE_KEY, "true"),
				NewToken(FALSE_KEY, "false"),
				NewToken(FUN_KEY, "fun"),
				NewToken(FOR_KEY, "for"),
				NewToken(NIL_KEY, "nil"),
				NewToken(PRINT_KEY, "print"),
				NewToken(RETURN_KEY, "return"),
				NewToken(SUPER_KEY, "super"),
				NewToken(THIS_KEY, "this"),
				NewToken(VAR_KEY, "var"),
				NewToken(WHILE_KEY, "while"),
				NewToken(ABORT_KEY, "abort"),
				NewToken(ANON_KEY, "anon"),
			},
		},
		{
			// identifiers that merely start with a keyword stay identifiers
			Input: `forty andy classes`,
			ExpectedTokens: []Token{
				NewToken(IDENTIFIER_ID, "forty"),
				NewToken(IDENTIFIER_ID, "andy"),
				NewToken(IDENTIFIER_ID, "classes"),
			},
		},
		{
			// line comments and block comments vanish
			Input: `1 // gone
2 /* gone too */ 3`,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "1"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(NUMBER_LIT, "3"),
			},
		},
		{
			// block comments nest to arbitrary depth
			Input: `1 /* a /* b /* c */ */ still a comment */ 2`,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "1"),
				NewToken(NUMBER_LIT, "2"),
			},
		},
		{
			// a slash that opens no comment is division
			Input: `10 / 2`,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "10"),
				NewToken(DIV_OP, "/"),
				NewToken(NUMBER_LIT, "2"),
			},
		},
	}

	for _, tt := range tests {
		lex := NewLexer(tt.Input, nil)
		tokens, ok := lex.ConsumeTokens()
		assert.True(t, ok, "input %q should scan cleanly", tt.Input)
		assert.Equal(t, len(tt.ExpectedTokens)+1, len(tokens), "input %q", tt.Input)

		for i, want := range tt.ExpectedTokens {
			assert.Equal(t, want.Type, tokens[i].Type, "input %q token %d", tt.Input, i)
			assert.Equal(t, want.Literal, tokens[i].Literal, "input %q token %d", tt.Input, i)
		}
		last := tokens[len(tokens)-1]
		assert.Equal(t, EOF_TYPE, last.Type)
	}
}

// TestNewLexer_LiteralPayloads verifies that number and string tokens carry
// their decoded payloads, and that nothing else does
func TestNewLexer_LiteralPayloads(t *testing.T) {
	lex := NewLexer(`12.25 "hi there" done`, nil)
	tokens, ok := lex.ConsumeTokens()
	assert.True(t, ok)
	assert.Equal(t, 4, len(tokens))

	num, isNum := tokens[0].Payload.(*objects.Number)
	assert.True(t, isNum)
	assert.Equal(t, 12.25, num.Value)
	assert.Equal(t, "12.25", tokens[0].Literal)

	str, isStr := tokens[1].Payload.(*objects.String)
	assert.True(t, isStr)
	assert.Equal(t, "hi there", str.Value)
	assert.Equal(t, `"hi there"`, tokens[1].Literal)

	assert.Nil(t, tokens[2].Payload)
	assert.Nil(t, tokens[3].Payload)
}

// TestNewLexer_LineTracking verifies that newlines (including ones inside
// strings and comments) advance the line counter
func TestNewLexer_LineTracking(t *testing.T) {
	src := "1\n2 \"a\nb\"\n/* c\nd */ 3"
	lex := NewLexer(src, nil)
	tokens, ok := lex.ConsumeTokens()
	assert.True(t, ok)

	assert.Equal(t, 1, tokens[0].Line) // 1
	assert.Equal(t, 2, tokens[1].Line) // 2
	assert.Equal(t, 3, tokens[2].Line) // "a\nb" ends on line 3
	assert.Equal(t, 5, tokens[3].Line) // 3 after the comment
}

// TestNewLexer_Errors verifies the error paths: tokens are withheld, the
// failure flag is set, and scanning continues so later errors still report
func TestNewLexer_Errors(t *testing.T) {
	tests := []struct {
		Input           string
		ExpectedReports []string
	}{
		{`"no closing quote`, []string{"Unterminated string"}},
		{`var @ = 1;`, []string{"scan error"}},
		{`# $`, []string{"scan error", "scan error"}},
		{`/* still open`, []string{"Unterminated block comment"}},
		{`/* /* closed once */ still open`, []string{"Unterminated block comment"}},
	}

	for _, tt := range tests {
		sink := &collectingSink{}
		lex := NewLexer(tt.Input, sink)
		tokens, ok := lex.ConsumeTokens()

		assert.False(t, ok, "input %q must fail", tt.Input)
		assert.Nil(t, tokens, "input %q must withhold tokens", tt.Input)
		assert.True(t, lex.HadError)
		assert.Equal(t, tt.ExpectedReports, sink.Reports, "input %q", tt.Input)
	}
}

// TestNewLexer_RoundTrip checks the scanner round-trip property: scanning a
// whitespace-joined sequence of lexemes yields exactly those lexemes back
func TestNewLexer_RoundTrip(t *testing.T) {
	lexemes := []string{
		"(", ")", "{", "}", ",", ".", "-", "+", ";", "/", "*",
		"!", "!=", "=", "==", ">", ">=", "<", "<=",
		"and", "or", "fun", "while", "count", "42", `"text"`,
	}

	src := ""
	for _, l := range lexemes {
		src += l + " "
	}

	lex := NewLexer(src, nil)
	tokens, ok := lex.ConsumeTokens()
	assert.True(t, ok)
	assert.Equal(t, len(lexemes)+1, len(tokens))
	for i, want := range lexemes {
		assert.Equal(t, want, tokens[i].Literal)
	}
}
