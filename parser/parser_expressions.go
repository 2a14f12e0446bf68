/*
File    : go-lox/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
)

// MaxCallArguments is the largest argument list a call may carry.
const MaxCallArguments = 255

// expression parses an expression at the lowest precedence level.
//
// Grammar (lowest to highest precedence):
//
//	expression     := assignment
//	assignment     := logic_or ( "=" assignment )?
//	logic_or       := logic_and ( "or" logic_and )*
//	logic_and      := equality ( "and" equality )*
//	equality       := comparison ( ( "!=" | "==" ) comparison )*
//	comparison     := addition ( ( ">" | ">=" | "<" | "<=" ) addition )*
//	addition       := multiplication ( ( "+" | "-" ) multiplication )*
//	multiplication := unary ( ( "*" | "/" ) unary )*
//	unary          := ( "!" | "-" ) unary | call
//	call           := primary ( "(" arguments? ")" )*
//	primary        := "true" | "false" | "nil" | NUMBER | STRING
//	                | "(" expression ")" | ID
func (par *Parser) expression() ExpressionNode {
	return par.assignment()
}

// assignment parses a (right-associative) assignment. The left-hand side is
// parsed as an ordinary expression first; it is only accepted as an
// assignment target when it turns out to be a plain variable reference.
// Anything else reports "Invalid assignment." and parsing continues with
// the left-hand side value.
func (par *Parser) assignment() ExpressionNode {
	expr := par.logicalOr()

	if par.match(lexer.ASSIGN_OP) {
		equals := par.previous()
		value := par.assignment()

		if ident, ok := expr.(*IdentifierExpressionNode); ok {
			return &AssignmentExpressionNode{Name: ident.Token, Value: value}
		}
		par.error(equals, "Invalid assignment.")
	}

	return expr
}

// logicalOr parses a chain of 'or' operations, left-associative.
func (par *Parser) logicalOr() ExpressionNode {
	left := par.logicalAnd()

	for par.match(lexer.OR_KEY) {
		op := par.previous()
		right := par.logicalAnd()
		left = &LogicalExpressionNode{Left: left, Operation: op, Right: right}
	}

	return left
}

// logicalAnd parses a chain of 'and' operations, left-associative.
func (par *Parser) logicalAnd() ExpressionNode {
	left := par.equality()

	for par.match(lexer.AND_KEY) {
		op := par.previous()
		right := par.equality()
		left = &LogicalExpressionNode{Left: left, Operation: op, Right: right}
	}

	return left
}

// equality parses a chain of '==' / '!=' comparisons.
func (par *Parser) equality() ExpressionNode {
	left := par.comparison()

	for par.match(lexer.EQ_OP, lexer.NE_OP) {
		op := par.previous()
		right := par.comparison()
		left = &BinaryExpressionNode{Left: left, Operation: op, Right: right}
	}

	return left
}

// comparison parses a chain of '<' '<=' '>' '>=' comparisons.
func (par *Parser) comparison() ExpressionNode {
	left := par.addition()

	for par.match(lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP) {
		op := par.previous()
		right := par.addition()
		left = &BinaryExpressionNode{Left: left, Operation: op, Right: right}
	}

	return left
}

// addition parses a chain of '+' / '-' operations.
func (par *Parser) addition() ExpressionNode {
	left := par.multiplication()

	for par.match(lexer.PLUS_OP, lexer.MINUS_OP) {
		op := par.previous()
		right := par.multiplication()
		left = &BinaryExpressionNode{Left: left, Operation: op, Right: right}
	}

	return left
}

// multiplication parses a chain of '*' / '/' operations.
func (par *Parser) multiplication() ExpressionNode {
	left := par.unary()

	for par.match(lexer.MUL_OP, lexer.DIV_OP) {
		op := par.previous()
		right := par.unary()
		left = &BinaryExpressionNode{Left: left, Operation: op, Right: right}
	}

	return left
}

// unary parses a prefix '!' or '-' operation; unary operators nest.
func (par *Parser) unary() ExpressionNode {
	if par.match(lexer.NOT_OP, lexer.MINUS_OP) {
		op := par.previous()
		right := par.unary()
		return &UnaryExpressionNode{Operation: op, Right: right}
	}
	return par.call()
}

// call parses a primary expression followed by any number of call suffixes.
// Each '(' wraps the expression so far as the callee of a new call node,
// which makes curried calls like make(10)(5) parse naturally.
func (par *Parser) call() ExpressionNode {
	expr := par.primary()

	for {
		if par.match(lexer.LEFT_PAREN) {
			expr = par.finishCall(expr)
		} else {
			break
		}
	}

	return expr
}

// finishCall parses the argument list of a call. The opening '(' has
// already been consumed. An oversized argument list is reported but the
// call node is still constructed.
func (par *Parser) finishCall(callee ExpressionNode) ExpressionNode {
	args := make([]ExpressionNode, 0)

	if !par.check(lexer.RIGHT_PAREN) {
		args = append(args, par.expression())
		for par.match(lexer.COMMA_DELIM) {
			args = append(args, par.expression())
		}
	}

	if len(args) > MaxCallArguments {
		par.error(par.peek(), "Functions can have a maximum of 255 arguments.")
	}

	paren := par.consume(lexer.RIGHT_PAREN, "Expected ')' after function call.")

	return &CallExpressionNode{Callee: callee, ClosingParen: paren, Args: args}
}

// primary parses a literal, a grouped expression, or an identifier.
// Reserved keywords (class, super, this, abort, anon) fall through to the
// error case: they are tokenised but not implemented, so using one is an
// ordinary parse error.
func (par *Parser) primary() ExpressionNode {
	if par.match(lexer.TRUE_KEY) {
		return &LiteralExpressionNode{Token: par.previous(), Value: &objects.Boolean{Value: true}}
	}
	if par.match(lexer.FALSE_KEY) {
		return &LiteralExpressionNode{Token: par.previous(), Value: &objects.Boolean{Value: false}}
	}
	if par.match(lexer.NIL_KEY) {
		return &LiteralExpressionNode{Token: par.previous(), Value: &objects.Nil{}}
	}

	if par.match(lexer.NUMBER_LIT, lexer.STRING_LIT) {
		tok := par.previous()
		if tok.Payload == nil {
			panic(par.error(tok, "Expected value with token."))
		}
		return &LiteralExpressionNode{Token: tok, Value: tok.Payload}
	}

	if par.match(lexer.LEFT_PAREN) {
		expr := par.expression()
		par.consume(lexer.RIGHT_PAREN, "Expected ')' after expression.")
		return &ParenthesizedExpressionNode{Expr: expr}
	}

	if par.match(lexer.IDENTIFIER_ID) {
		tok := par.previous()
		return &IdentifierExpressionNode{Token: tok, Name: tok.Literal}
	}

	panic(par.error(par.peek(), "Expected an expression."))
}
