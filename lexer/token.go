/*
File    : go-lox/lexer/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"fmt"

	"github.com/akashmaji946/go-lox/objects"
)

// TokenType represents the type of a lexical token in the Lox language.
// It is defined as a string to allow for easy comparison and debugging.
// Each token type corresponds to a specific syntactic element in the language,
// such as operators, keywords, literals, or structural symbols.
type TokenType string

// TokenType Constants:
// These constants define all possible token types in Lox.
// They are organized into logical groups for clarity and maintainability.
const (
	// Special Types
	// EOF_TYPE marks the end of the input stream
	EOF_TYPE TokenType = "EOF"

	// Arithmetic Operators
	PLUS_OP  TokenType = "+" // Addition / string concatenation
	MINUS_OP TokenType = "-" // Subtraction / unary negation
	MUL_OP   TokenType = "*" // Multiplication
	DIV_OP   TokenType = "/" // Division

	// Comparison and Assignment Operators
	GT_OP     TokenType = ">"  // Greater than
	LT_OP     TokenType = "<"  // Less than
	GE_OP     TokenType = ">=" // Greater than or equal to
	LE_OP     TokenType = "<=" // Less than or equal to
	EQ_OP     TokenType = "==" // Equality comparison
	NE_OP     TokenType = "!=" // Not equal comparison
	ASSIGN_OP TokenType = "="  // Assignment operator
	NOT_OP    TokenType = "!"  // Logical NOT operator

	// Keywords
	// Language keywords for control flow and declarations
	AND_KEY    TokenType = "and"    // Logical AND (short-circuit)
	OR_KEY     TokenType = "or"     // Logical OR (short-circuit)
	IF_KEY     TokenType = "if"     // Conditional if keyword
	ELSE_KEY   TokenType = "else"   // Conditional else keyword
	TRUE_KEY   TokenType = "true"   // Boolean true literal
	FALSE_KEY  TokenType = "false"  // Boolean false literal
	FUN_KEY    TokenType = "fun"    // Function declaration keyword
	FOR_KEY    TokenType = "for"    // For loop keyword
	NIL_KEY    TokenType = "nil"    // Nil literal
	PRINT_KEY  TokenType = "print"  // Print statement keyword
	RETURN_KEY TokenType = "return" // Return statement keyword
	VAR_KEY    TokenType = "var"    // Variable declaration keyword
	WHILE_KEY  TokenType = "while"  // While loop keyword

	// Reserved Keywords
	// Tokenised but not implemented; using them is a parse error
	CLASS_KEY TokenType = "class" // Reserved for class declarations
	SUPER_KEY TokenType = "super" // Reserved for superclass access
	THIS_KEY  TokenType = "this"  // Reserved for instance access
	ABORT_KEY TokenType = "abort" // Reserved abort keyword
	ANON_KEY  TokenType = "anon"  // Reserved anonymous function keyword

	// Structural Tokens and Delimiters
	LEFT_PAREN      TokenType = "(" // Left parenthesis - grouping, calls
	RIGHT_PAREN     TokenType = ")" // Right parenthesis
	LEFT_BRACE      TokenType = "{" // Left brace - blocks
	RIGHT_BRACE     TokenType = "}" // Right brace
	COMMA_DELIM     TokenType = "," // Comma - separates parameters, arguments
	SEMICOLON_DELIM TokenType = ";" // Semicolon - statement terminator
	DOT_OP          TokenType = "." // Dot - reserved property access

	// Literals
	STRING_LIT    TokenType = "StringLiteral" // String literal (e.g., "hello")
	NUMBER_LIT    TokenType = "NumberLiteral" // Number literal (e.g., 3.14, 42)
	IDENTIFIER_ID TokenType = "Identifier"    // User-defined identifier
)

// KEYWORDS_MAP is a lookup table that maps keyword strings to their token types.
// This map is used during lexical analysis to distinguish between keywords
// (reserved words with special meaning) and regular identifiers (user-defined names).
//
// Usage:
//
//	When the lexer encounters an identifier-like token, it checks this map
//	to determine if it's a keyword or a user-defined identifier.
var KEYWORDS_MAP = map[string]TokenType{
	"and":    AND_KEY,    // Logical AND
	"or":     OR_KEY,     // Logical OR
	"if":     IF_KEY,     // Conditional if
	"else":   ELSE_KEY,   // Conditional else
	"class":  CLASS_KEY,  // Reserved: class declaration
	"true":   TRUE_KEY,   // Boolean true
	"false":  FALSE_KEY,  // Boolean false
	"fun":    FUN_KEY,    // Function declaration
	"for":    FOR_KEY,    // For loop
	"nil":    NIL_KEY,    // Nil literal
	"print":  PRINT_KEY,  // Print statement
	"return": RETURN_KEY, // Return from function
	"super":  SUPER_KEY,  // Reserved: superclass access
	"this":   THIS_KEY,   // Reserved: instance access
	"var":    VAR_KEY,    // Variable declaration
	"while":  WHILE_KEY,  // While loop
	"abort":  ABORT_KEY,  // Reserved: abort
	"anon":   ANON_KEY,   // Reserved: anonymous function
}

// Token represents a single lexical token in Lox source code.
// It contains the token's type, the verbatim source text that produced it,
// an optional literal payload, and the line where it appears.
//
// Fields:
//   - Type: The category of the token (e.g., operator, keyword, literal)
//   - Literal: The actual string from the source code that this token represents
//   - Payload: The decoded literal value; present exactly when Type is
//     STRING_LIT (a *objects.String) or NUMBER_LIT (a *objects.Number)
//   - Line: The line number where this token appears in the source (1-indexed)
//
// Tokens are plain values and are cheaply copyable after construction.
type Token struct {
	Type    TokenType         // The type/category of this token
	Literal string            // The verbatim lexeme from source code
	Payload objects.LoxObject // Decoded literal value, or nil
	Line    int               // Line number in source file (1-indexed)
}

// NewToken creates a new Token with the specified type and lexeme.
// This is a basic constructor that does not set line metadata.
// Use NewTokenWithMetadata if position information is needed.
func NewToken(tokenType TokenType, literal string) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
	}
}

// NewTokenWithMetadata creates a new Token with full metadata including the
// source line. This constructor should be used during lexical analysis to
// preserve source location information, which is essential for error
// reporting and debugging.
func NewTokenWithMetadata(tokenType TokenType, literal string, line int) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
		Line:    line,
	}
}

// NewLiteralToken creates a new STRING_LIT or NUMBER_LIT token carrying its
// decoded payload alongside the verbatim lexeme.
func NewLiteralToken(tokenType TokenType, literal string, payload objects.LoxObject, line int) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
		Payload: payload,
		Line:    line,
	}
}

// String returns a human-readable representation of the token in the
// form "literal:type", showing both the source text and its classification.
func (tok Token) String() string {
	return fmt.Sprintf("%s:%v", tok.Literal, tok.Type)
}
