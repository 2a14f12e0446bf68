/*
File    : go-lox/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
)

// variableDeclaration parses the rest of a 'var' declaration. The 'var'
// keyword has already been consumed.
//
// Grammar: varDecl := "var" ID ( "=" expression )? ";"
func (par *Parser) variableDeclaration() StatementNode {
	name := par.consume(lexer.IDENTIFIER_ID, "Expected a variable name.")

	var init ExpressionNode
	if par.match(lexer.ASSIGN_OP) {
		init = par.expression()
	}

	par.consume(lexer.SEMICOLON_DELIM, "Expected a semicolon after variable declaration.")
	return &DeclarativeStatementNode{Name: name, Init: init}
}

// statement parses one statement of any kind.
//
// Grammar: statement := printStmt | returnStmt | funStmt | block
//                     | ifStmt | whileStmt | forStmt | exprStmt
func (par *Parser) statement() StatementNode {
	if par.match(lexer.RETURN_KEY) {
		return par.returnStatement()
	}
	if par.match(lexer.FUN_KEY) {
		return par.functionStatement()
	}
	if par.match(lexer.PRINT_KEY) {
		return par.printStatement()
	}
	if par.match(lexer.LEFT_BRACE) {
		return par.blockStatement()
	}
	if par.match(lexer.IF_KEY) {
		return par.ifStatement()
	}
	if par.match(lexer.WHILE_KEY) {
		return par.whileStatement()
	}
	if par.match(lexer.FOR_KEY) {
		return par.forStatement()
	}

	return par.expressionStatement()
}

// printStatement parses the rest of a 'print' statement.
func (par *Parser) printStatement() StatementNode {
	keyword := par.previous()
	value := par.expression()
	par.consume(lexer.SEMICOLON_DELIM, "Expected ';' after print statement.")
	return &PrintStatementNode{Keyword: keyword, Expr: value}
}

// functionStatement parses the rest of a 'fun' declaration: a name, a
// parenthesised parameter list, and a body statement.
//
// Grammar: funStmt := "fun" ID "(" params? ")" statement
func (par *Parser) functionStatement() StatementNode {
	name := par.consume(lexer.IDENTIFIER_ID, "Expected a function name.")
	par.consume(lexer.LEFT_PAREN, "Expected opening '(' after function definition.")

	params := make([]lexer.Token, 0)
	if !par.check(lexer.RIGHT_PAREN) {
		params = append(params, par.consume(lexer.IDENTIFIER_ID, "Expected a parameter name."))
		for par.match(lexer.COMMA_DELIM) {
			params = append(params, par.consume(lexer.IDENTIFIER_ID, "Expected a parameter name."))
		}
	}

	par.consume(lexer.RIGHT_PAREN, "Expected closing ')' after function parameters.")

	body := par.statement()
	return &FunctionStatementNode{FuncName: name, FuncParams: params, FuncBody: body}
}

// returnStatement parses the rest of a 'return' statement. The result
// expression is optional; a bare 'return;' yields nil at run time.
func (par *Parser) returnStatement() StatementNode {
	keyword := par.previous()

	var value ExpressionNode
	// only read an expression if there is one
	if !par.check(lexer.SEMICOLON_DELIM) {
		value = par.expression()
	}
	par.consume(lexer.SEMICOLON_DELIM, "Expected ';' after return statement.")
	return &ReturnStatementNode{Keyword: keyword, Value: value}
}

// blockStatement parses the rest of a '{ ... }' block.
func (par *Parser) blockStatement() StatementNode {
	stmts := make([]StatementNode, 0)

	for !par.check(lexer.RIGHT_BRACE) && !par.atEnd() {
		if stmt := par.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	par.consume(lexer.RIGHT_BRACE, "Expected a closing bracket.")
	return &BlockStatementNode{Statements: stmts}
}

// ifStatement parses the rest of an 'if' statement with its optional
// 'else' branch.
func (par *Parser) ifStatement() StatementNode {
	par.consume(lexer.LEFT_PAREN, "Expected '(' after if.")
	condition := par.expression()
	par.consume(lexer.RIGHT_PAREN, "Expected closing ')' after if.")
	then := par.statement()

	var otherwise StatementNode
	if par.match(lexer.ELSE_KEY) {
		otherwise = par.statement()
	}

	return &IfStatementNode{Condition: condition, Then: then, Else: otherwise}
}

// whileStatement parses the rest of a 'while' loop.
func (par *Parser) whileStatement() StatementNode {
	par.consume(lexer.LEFT_PAREN, "Expected '(' after while.")
	condition := par.expression()
	par.consume(lexer.RIGHT_PAREN, "Expected closing ')' after while.")

	body := par.statement()
	return &WhileLoopStatementNode{Condition: condition, Body: body}
}

// forStatement parses the rest of a 'for' loop and desugars it into a
// while loop. There is no for node in the AST.
//
// Grammar: forStmt := "for" "(" ( varDecl | exprStmt | ";" )
//                     expression? ";" expression? ")" statement
func (par *Parser) forStatement() StatementNode {
	forToken := par.previous()
	par.consume(lexer.LEFT_PAREN, "Expected '(' after for.")

	var initializer StatementNode
	if par.match(lexer.SEMICOLON_DELIM) {
		initializer = nil
	} else if par.match(lexer.VAR_KEY) {
		initializer = par.variableDeclaration()
	} else {
		initializer = par.expressionStatement()
	}

	var condition ExpressionNode
	if !par.check(lexer.SEMICOLON_DELIM) {
		condition = par.expression()
	}
	par.consume(lexer.SEMICOLON_DELIM, "Expected ';' after for loop condition.")

	var increment ExpressionNode
	if !par.check(lexer.RIGHT_PAREN) {
		increment = par.expression()
	}
	par.consume(lexer.RIGHT_PAREN, "Expected ')' after for.")

	body := par.statement()

	// A for loop is just sugar for a while loop. Build the while loop
	// syntax tree from the inside out.
	if increment != nil {
		body = &BlockStatementNode{Statements: []StatementNode{
			body,
			&ExpressionStatementNode{Expr: increment},
		}}
	}

	// A missing condition is always true.
	if condition == nil {
		condition = &LiteralExpressionNode{
			Token: lexer.NewTokenWithMetadata(lexer.TRUE_KEY, "true", forToken.Line),
			Value: &objects.Boolean{Value: true},
		}
	}

	var loop StatementNode = &WhileLoopStatementNode{Condition: condition, Body: body}

	if initializer != nil {
		loop = &BlockStatementNode{Statements: []StatementNode{initializer, loop}}
	}

	return loop
}

// expressionStatement parses an expression evaluated for its side effects.
func (par *Parser) expressionStatement() StatementNode {
	expr := par.expression()
	par.consume(lexer.SEMICOLON_DELIM, "Expected ';' after expression statement.")
	return &ExpressionStatementNode{Expr: expr}
}
