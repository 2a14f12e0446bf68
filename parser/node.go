/*
File    : go-lox/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strings"

	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
)

// The AST is a closed set of node types dispatched by type switch in the
// evaluator. Nodes are immutable after construction. Literal, unary, binary,
// logical, identifier, assignment, call, declaration, print, function and
// return nodes retain a token so that errors can be pinned to a source
// location; the root, grouping, expression-statement, block, if and while
// nodes hold no token of their own.

// Node: base interface for all nodes of the AST
// Literal(): returns the source-shaped string representation of the node
type Node interface {
	Literal() string
}

// StatementNode: base interface for all statement nodes
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes
type ExpressionNode interface {
	Node
	Expression()
}

// RootNode: represents the root of the AST (the program node)
// Statements: list of top-level statements in the program
type RootNode struct {
	Statements []StatementNode
}

// RootNode.Literal(): string representation of the whole program
func (root *RootNode) Literal() string {
	var sb strings.Builder
	for _, stmt := range root.Statements {
		sb.WriteString(stmt.Literal())
	}
	return sb.String()
}

// -------------------- Expressions -------------------- //

// LiteralExpressionNode: represents a literal value
// Example: 42, 1.5, "hello", true, false, nil
type LiteralExpressionNode struct {
	Token lexer.Token       // The literal token
	Value objects.LoxObject // The decoded value
}

// LiteralExpressionNode.Literal(): string representation of the node
func (node *LiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

func (node *LiteralExpressionNode) Expression() {}

// ParenthesizedExpressionNode: represents a grouped expression
// Example: (1 + 2)
type ParenthesizedExpressionNode struct {
	Expr ExpressionNode // The inner expression
}

// ParenthesizedExpressionNode.Literal(): string representation of the node
func (node *ParenthesizedExpressionNode) Literal() string {
	return "(" + node.Expr.Literal() + ")"
}

func (node *ParenthesizedExpressionNode) Expression() {}

// UnaryExpressionNode: represents a prefix operation
// Example: -x, !done
type UnaryExpressionNode struct {
	Operation lexer.Token    // The operator token ('-' or '!')
	Right     ExpressionNode // The operand
}

// UnaryExpressionNode.Literal(): string representation of the node
func (node *UnaryExpressionNode) Literal() string {
	return node.Operation.Literal + node.Right.Literal()
}

func (node *UnaryExpressionNode) Expression() {}

// BinaryExpressionNode: represents an arithmetic, comparison, or equality
// operation. Logical 'and'/'or' are NOT binary nodes; they use
// LogicalExpressionNode to preserve short-circuit semantics.
// Example: 1 + 2, a < b, x == y
type BinaryExpressionNode struct {
	Left      ExpressionNode // The left operand
	Operation lexer.Token    // The operator token
	Right     ExpressionNode // The right operand
}

// BinaryExpressionNode.Literal(): string representation of the node
func (node *BinaryExpressionNode) Literal() string {
	return node.Left.Literal() + node.Operation.Literal + node.Right.Literal()
}

func (node *BinaryExpressionNode) Expression() {}

// LogicalExpressionNode: represents a short-circuit 'and'/'or' operation.
// The operator token is always AND_KEY or OR_KEY. Kept separate from
// BinaryExpressionNode because the right operand must not be evaluated
// when the left operand decides the result.
type LogicalExpressionNode struct {
	Left      ExpressionNode // The left operand
	Operation lexer.Token    // AND_KEY or OR_KEY
	Right     ExpressionNode // The right operand
}

// LogicalExpressionNode.Literal(): string representation of the node
func (node *LogicalExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operation.Literal + " " + node.Right.Literal()
}

func (node *LogicalExpressionNode) Expression() {}

// IdentifierExpressionNode: represents a variable reference
// Example: x, counter
type IdentifierExpressionNode struct {
	Token lexer.Token // The identifier token
	Name  string      // The variable name (same as Token.Literal)
}

// IdentifierExpressionNode.Literal(): string representation of the node
func (node *IdentifierExpressionNode) Literal() string {
	return node.Name
}

func (node *IdentifierExpressionNode) Expression() {}

// AssignmentExpressionNode: represents assignment to an existing variable.
// Only produced when the left-hand side of '=' was syntactically a variable
// reference; the parser rejects any other assignment target.
// Example: x = 10
type AssignmentExpressionNode struct {
	Name  lexer.Token    // The variable name token
	Value ExpressionNode // The value expression
}

// AssignmentExpressionNode.Literal(): string representation of the node
func (node *AssignmentExpressionNode) Literal() string {
	return node.Name.Literal + "=" + node.Value.Literal()
}

func (node *AssignmentExpressionNode) Expression() {}

// CallExpressionNode: represents a function invocation. ClosingParen is the
// token of the ')' ending the argument list; runtime errors about the call
// (not callable, wrong arity) are pinned to it.
// Example: add(1, 2)
type CallExpressionNode struct {
	Callee       ExpressionNode   // Expression producing the callable
	ClosingParen lexer.Token      // ')' token for error locations
	Args         []ExpressionNode // Argument expressions, in source order
}

// CallExpressionNode.Literal(): string representation of the node
func (node *CallExpressionNode) Literal() string {
	args := make([]string, 0, len(node.Args))
	for _, a := range node.Args {
		args = append(args, a.Literal())
	}
	return node.Callee.Literal() + "(" + strings.Join(args, ",") + ")"
}

func (node *CallExpressionNode) Expression() {}

// -------------------- Statements -------------------- //

// ExpressionStatementNode: an expression evaluated for its side effects
// Example: counter + 1;
type ExpressionStatementNode struct {
	Expr ExpressionNode
}

// ExpressionStatementNode.Literal(): string representation of the node
func (node *ExpressionStatementNode) Literal() string {
	return node.Expr.Literal() + ";"
}

func (node *ExpressionStatementNode) Statement() {}

// PrintStatementNode: writes a value to standard output
// Example: print 1 + 2;
type PrintStatementNode struct {
	Keyword lexer.Token    // The 'print' token
	Expr    ExpressionNode // The expression to print
}

// PrintStatementNode.Literal(): string representation of the node
func (node *PrintStatementNode) Literal() string {
	return "print " + node.Expr.Literal() + ";"
}

func (node *PrintStatementNode) Statement() {}

// DeclarativeStatementNode: declares a variable in the current scope, with
// an optional initializer. A missing initializer leaves the variable nil.
// Example: var x = 10;  var y;
type DeclarativeStatementNode struct {
	Name lexer.Token    // The variable name token
	Init ExpressionNode // The initializer, or nil
}

// DeclarativeStatementNode.Literal(): string representation of the node
func (node *DeclarativeStatementNode) Literal() string {
	if node.Init == nil {
		return "var " + node.Name.Literal + ";"
	}
	return "var " + node.Name.Literal + "=" + node.Init.Literal() + ";"
}

func (node *DeclarativeStatementNode) Statement() {}

// BlockStatementNode: a brace-delimited list of statements evaluated in a
// fresh child scope
// Example: { var x = 1; print x; }
type BlockStatementNode struct {
	Statements []StatementNode
}

// BlockStatementNode.Literal(): string representation of the node
func (node *BlockStatementNode) Literal() string {
	var sb strings.Builder
	sb.WriteString("{")
	for _, stmt := range node.Statements {
		sb.WriteString(stmt.Literal())
	}
	sb.WriteString("}")
	return sb.String()
}

func (node *BlockStatementNode) Statement() {}

// IfStatementNode: conditional execution with an optional else branch
// Example: if (x > 0) print x; else print 0;
type IfStatementNode struct {
	Condition ExpressionNode // The condition expression
	Then      StatementNode  // Statement run when the condition is truthy
	Else      StatementNode  // Statement run otherwise, or nil
}

// IfStatementNode.Literal(): string representation of the node
func (node *IfStatementNode) Literal() string {
	res := "if(" + node.Condition.Literal() + ")" + node.Then.Literal()
	if node.Else != nil {
		res += "else " + node.Else.Literal()
	}
	return res
}

func (node *IfStatementNode) Statement() {}

// WhileLoopStatementNode: repeats the body while the condition is truthy.
// 'for' loops do not have their own node; the parser desugars them into
// while loops wrapped in blocks.
// Example: while (i < 10) i = i + 1;
type WhileLoopStatementNode struct {
	Condition ExpressionNode // Re-evaluated before each iteration
	Body      StatementNode  // The loop body
}

// WhileLoopStatementNode.Literal(): string representation of the node
func (node *WhileLoopStatementNode) Literal() string {
	return "while(" + node.Condition.Literal() + ")" + node.Body.Literal()
}

func (node *WhileLoopStatementNode) Statement() {}

// FunctionStatementNode: declares a named function. The body statement must
// outlive this node for as long as any callable value captures it.
// Example: fun add(a, b) { return a + b; }
type FunctionStatementNode struct {
	FuncName   lexer.Token   // The function name token
	FuncParams []lexer.Token // Parameter name tokens, in order
	FuncBody   StatementNode // The body statement
}

// FunctionStatementNode.Literal(): string representation of the node
func (node *FunctionStatementNode) Literal() string {
	params := make([]string, 0, len(node.FuncParams))
	for _, p := range node.FuncParams {
		params = append(params, p.Literal)
	}
	return "fun " + node.FuncName.Literal + "(" + strings.Join(params, ",") + ")" + node.FuncBody.Literal()
}

func (node *FunctionStatementNode) Statement() {}

// ReturnStatementNode: returns from the enclosing function, optionally with
// a value. A bare 'return;' yields nil.
type ReturnStatementNode struct {
	Keyword lexer.Token    // The 'return' token, for error locations
	Value   ExpressionNode // The result expression, or nil
}

// ReturnStatementNode.Literal(): string representation of the node
func (node *ReturnStatementNode) Literal() string {
	if node.Value == nil {
		return "return;"
	}
	return "return " + node.Value.Literal() + ";"
}

func (node *ReturnStatementNode) Statement() {}
