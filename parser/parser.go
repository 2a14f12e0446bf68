/*
File    : go-lox/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a recursive-descent parser for the Lox language.

The parser converts the token stream from the lexer into an Abstract Syntax
Tree (AST). It handles:
- Expressions (assignment, logical, equality, comparison, arithmetic, unary, calls)
- Statements (declarations, print, blocks, conditionals, loops, functions, returns)
- For-loop desugaring into while loops at parse time

Key Features:
- One parsing function per precedence level, lowest to highest
- Error collection (doesn't stop at the first error)
- Panic-mode synchronisation: a corrupted statement is skipped up to the next
  statement boundary so that each one yields a single diagnostic, not a cascade
- Reserved-but-unimplemented keywords (class, super, this, abort, anon) are
  rejected with ordinary parse errors
*/
package parser

import (
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/reporter"
)

// Parser represents the parser state. It walks the token slice with a single
// cursor and collects formatted errors instead of stopping at the first one.
type Parser struct {
	Tokens []lexer.Token // Token stream ending with an EOF token
	Pos    int           // Index of the current token

	// Collect parsing errors instead of failing fast.
	// This allows reporting multiple errors in a single parse.
	Errors []string
}

// parseFault is the panic payload used to unwind out of a corrupted
// declaration. It is caught at the declaration boundary, never escapes
// the parser, and carries nothing: the diagnostic was already recorded
// when the fault was raised.
type parseFault struct{}

// NewParser creates a Parser over a scanned token stream.
//
// Example:
//
//	tokens, ok := lexer.NewLexer(src, rep).ConsumeTokens()
//	par := parser.NewParser(tokens)
//	root := par.Parse()
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{
		Tokens: tokens,
		Errors: make([]string, 0),
	}
}

// Parse consumes the whole token stream and returns the program root.
// Statements that failed to parse are skipped; check HasErrors before
// evaluating the result. An empty stream (just EOF) parses to an empty
// statement list.
func (par *Parser) Parse() *RootNode {
	root := &RootNode{Statements: make([]StatementNode, 0)}

	for !par.atEnd() {
		if stmt := par.declaration(); stmt != nil {
			root.Statements = append(root.Statements, stmt)
		}
	}

	return root
}

// HasErrors reports whether any parse error was recorded.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns the formatted parse errors, one per corrupted statement.
func (par *Parser) GetErrors() []string {
	return par.Errors
}

// declaration parses one declaration or statement. This is the recovery
// boundary: a parse fault raised anywhere below lands here, the parser
// synchronises to the next statement boundary, and parsing resumes. A nil
// result means the statement was discarded.
func (par *Parser) declaration() (stmt StatementNode) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseFault); !ok {
				panic(r)
			}
			par.synchronize()
			stmt = nil
		}
	}()

	if par.match(lexer.VAR_KEY) {
		return par.variableDeclaration()
	}
	return par.statement()
}

// error records a formatted parse error for the given token and returns a
// fault ready to be raised. The EOF token is special-cased to read "at EOF".
func (par *Parser) error(bad lexer.Token, message string) parseFault {
	par.Errors = append(par.Errors,
		reporter.FormatParseError(bad.Line, bad.Literal, message, bad.Type == lexer.EOF_TYPE))
	return parseFault{}
}

// synchronize discards tokens up to the next statement boundary: just past
// a ';', or just before a token that can begin a statement. This keeps one
// corrupted statement from producing a cascade of diagnostics.
func (par *Parser) synchronize() {
	par.advance()

	for !par.atEnd() {
		if par.previous().Type == lexer.SEMICOLON_DELIM {
			return
		}

		switch par.peek().Type {
		case lexer.CLASS_KEY, lexer.FUN_KEY, lexer.VAR_KEY, lexer.FOR_KEY,
			lexer.IF_KEY, lexer.WHILE_KEY, lexer.PRINT_KEY, lexer.RETURN_KEY:
			return
		}
		par.advance()
	}
}

// -------------------- token cursor helpers -------------------- //

// match consumes the current token if its type is one of types,
// reporting whether it did.
func (par *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if par.check(t) {
			par.advance()
			return true
		}
	}
	return false
}

// check reports whether the current token has the given type, without
// consuming it.
func (par *Parser) check(t lexer.TokenType) bool {
	if par.atEnd() {
		return t == lexer.EOF_TYPE
	}
	return par.peek().Type == t
}

// consume advances past the current token if it has the expected type;
// otherwise it records a parse error and raises a fault.
func (par *Parser) consume(t lexer.TokenType, message string) lexer.Token {
	if par.check(t) {
		return par.advance()
	}
	panic(par.error(par.peek(), message))
}

// advance consumes and returns the current token. The cursor never moves
// past the EOF sentinel.
func (par *Parser) advance() lexer.Token {
	tok := par.peek()
	if !par.atEnd() {
		par.Pos++
	}
	return tok
}

// atEnd reports whether the cursor is at the EOF sentinel.
func (par *Parser) atEnd() bool {
	return par.peek().Type == lexer.EOF_TYPE
}

// peek returns the current token without consuming it.
func (par *Parser) peek() lexer.Token {
	return par.Tokens[par.Pos]
}

// previous returns the most recently consumed token.
func (par *Parser) previous() lexer.Token {
	if par.Pos > 0 {
		return par.Tokens[par.Pos-1]
	}
	return par.peek()
}
