/*
File    : go-lox/eval/evaluator_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
)

// Eval evaluates any AST node and returns its value. This is the central
// dispatch of the interpreter: a single exhaustive type switch over the
// closed set of node kinds. Runtime errors and return signals come back as
// ordinary values (*objects.Error, *objects.ReturnValue) and every caller
// propagates them outward.
func (e *Evaluator) Eval(n parser.Node) objects.LoxObject {
	switch n := n.(type) {
	case *parser.RootNode:
		return e.Run(n)

	// expressions
	case *parser.LiteralExpressionNode:
		return n.Value
	case *parser.ParenthesizedExpressionNode:
		return e.Eval(n.Expr)
	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(n)
	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(n)
	case *parser.LogicalExpressionNode:
		return e.evalLogicalExpression(n)
	case *parser.IdentifierExpressionNode:
		return e.evalIdentifierExpression(n)
	case *parser.AssignmentExpressionNode:
		return e.evalAssignmentExpression(n)
	case *parser.CallExpressionNode:
		return e.evalCallExpression(n)

	// statements
	case *parser.ExpressionStatementNode:
		return e.Eval(n.Expr)
	case *parser.PrintStatementNode:
		return e.evalPrintStatement(n)
	case *parser.DeclarativeStatementNode:
		return e.evalDeclarativeStatement(n)
	case *parser.BlockStatementNode:
		return e.evalBlockStatement(n)
	case *parser.IfStatementNode:
		return e.evalIfStatement(n)
	case *parser.WhileLoopStatementNode:
		return e.evalWhileLoop(n)
	case *parser.FunctionStatementNode:
		return e.RegisterFunction(n)
	case *parser.ReturnStatementNode:
		return e.evalReturnStatement(n)

	default:
		return &objects.Nil{}
	}
}

// evalUnaryExpression evaluates a prefix operation. The operand is
// evaluated first; '-' then requires a number, and '!' negates the
// operand's truthiness.
func (e *Evaluator) evalUnaryExpression(n *parser.UnaryExpressionNode) objects.LoxObject {
	right := e.Eval(n.Right)
	if isSignal(right) {
		return right
	}

	switch n.Operation.Type {
	case lexer.MINUS_OP:
		value, ok := objects.AsNumber(right)
		if !ok {
			return e.CreateError(n.Operation, "Operand must be a number.")
		}
		return &objects.Number{Value: -value}
	case lexer.NOT_OP:
		return &objects.Boolean{Value: !objects.IsTruthy(right)}
	}

	return e.CreateError(n.Operation, "Invalid operator in unary expression.")
}

// evalBinaryExpression evaluates an arithmetic, comparison, or equality
// operation. Operands are evaluated left to right (the order is observable
// through side effects), then the operator's typing rule is applied:
//   - '+' accepts two numbers or two strings (concatenation)
//   - '-' '*' '/' and the orderings require two numbers
//   - '==' '!=' accept any operands; different kinds are simply unequal
//
// Division by zero is not an error: it follows IEEE-754 and produces
// an infinity or NaN.
func (e *Evaluator) evalBinaryExpression(n *parser.BinaryExpressionNode) objects.LoxObject {
	left := e.Eval(n.Left)
	if isSignal(left) {
		return left
	}
	right := e.Eval(n.Right)
	if isSignal(right) {
		return right
	}

	switch n.Operation.Type {
	case lexer.PLUS_OP:
		if a, ok := objects.AsNumber(left); ok {
			if b, ok := objects.AsNumber(right); ok {
				return &objects.Number{Value: a + b}
			}
		}
		if a, ok := objects.AsString(left); ok {
			if b, ok := objects.AsString(right); ok {
				return &objects.String{Value: a + b}
			}
		}
		return e.CreateError(n.Operation, "Operands must be numbers or strings.")

	case lexer.MINUS_OP:
		a, b, err := e.numericOperands(n.Operation, left, right)
		if err != nil {
			return err
		}
		return &objects.Number{Value: a - b}

	case lexer.MUL_OP:
		a, b, err := e.numericOperands(n.Operation, left, right)
		if err != nil {
			return err
		}
		return &objects.Number{Value: a * b}

	case lexer.DIV_OP:
		a, b, err := e.numericOperands(n.Operation, left, right)
		if err != nil {
			return err
		}
		// IEEE-754: x/0 is inf or nan, never a fault
		return &objects.Number{Value: a / b}

	case lexer.GT_OP:
		a, b, err := e.numericOperands(n.Operation, left, right)
		if err != nil {
			return err
		}
		return &objects.Boolean{Value: a > b}

	case lexer.GE_OP:
		a, b, err := e.numericOperands(n.Operation, left, right)
		if err != nil {
			return err
		}
		return &objects.Boolean{Value: a >= b}

	case lexer.LT_OP:
		a, b, err := e.numericOperands(n.Operation, left, right)
		if err != nil {
			return err
		}
		return &objects.Boolean{Value: a < b}

	case lexer.LE_OP:
		a, b, err := e.numericOperands(n.Operation, left, right)
		if err != nil {
			return err
		}
		return &objects.Boolean{Value: a <= b}

	case lexer.EQ_OP:
		return &objects.Boolean{Value: objects.IsEqual(left, right)}

	case lexer.NE_OP:
		return &objects.Boolean{Value: !objects.IsEqual(left, right)}
	}

	return e.CreateError(n.Operation, "Invalid operator.")
}

// evalLogicalExpression evaluates a short-circuit 'and'/'or'. The left
// operand decides whether the right one is evaluated at all, and the result
// is the deciding operand itself, not a coerced boolean:
//   - 'or' with a truthy left returns the left value unevaluated further
//   - 'and' with a falsy left returns the left value unevaluated further
//   - otherwise the right operand is evaluated and returned
func (e *Evaluator) evalLogicalExpression(n *parser.LogicalExpressionNode) objects.LoxObject {
	left := e.Eval(n.Left)
	if isSignal(left) {
		return left
	}

	if n.Operation.Type == lexer.OR_KEY && objects.IsTruthy(left) {
		return left
	}
	if n.Operation.Type == lexer.AND_KEY && !objects.IsTruthy(left) {
		return left
	}

	return e.Eval(n.Right)
}

// evalIdentifierExpression resolves a variable reference by walking the
// scope chain from the current scope to the root.
func (e *Evaluator) evalIdentifierExpression(n *parser.IdentifierExpressionNode) objects.LoxObject {
	if value, ok := e.Scp.LookUp(n.Name); ok {
		return value
	}
	return e.CreateError(n.Token, "Undefined variable '%s'.", n.Name)
}

// evalAssignmentExpression evaluates the right-hand side and updates the
// existing binding in the nearest enclosing scope that defines it. Assigning
// to a name with no binding anywhere in the chain is a runtime error. The
// assigned value is the expression's result, so assignments chain.
func (e *Evaluator) evalAssignmentExpression(n *parser.AssignmentExpressionNode) objects.LoxObject {
	value := e.Eval(n.Value)
	if isSignal(value) {
		return value
	}

	if _, ok := e.Scp.Assign(n.Name.Literal, value); !ok {
		return e.CreateError(n.Name, "Undefined variable '%s'.", n.Name.Literal)
	}
	return value
}

// evalCallExpression evaluates a function invocation: the callee first,
// then every argument left to right, then the dispatch to the callable.
// Calling a non-callable value is a runtime error located at the call's
// closing parenthesis.
func (e *Evaluator) evalCallExpression(n *parser.CallExpressionNode) objects.LoxObject {
	callee := e.Eval(n.Callee)
	if isSignal(callee) {
		return callee
	}

	args := make([]objects.LoxObject, 0, len(n.Args))
	for _, argExpr := range n.Args {
		arg := e.Eval(argExpr)
		if isSignal(arg) {
			return arg
		}
		args = append(args, arg)
	}

	if callee.GetType() != objects.FunctionType {
		return e.CreateError(n.ClosingParen, "Object is not callable.")
	}

	result := e.CallFunction(callee, args...)

	// Builtins and arity checks produce errors without a source location;
	// pin them to the call site.
	if err, ok := result.(*objects.Error); ok && err.Line == 0 {
		err.Lexeme = n.ClosingParen.Literal
		err.Line = n.ClosingParen.Line
	}
	return result
}

// numericOperands extracts two float64 operands, or produces the canonical
// "Operands must be numbers." error pinned to the operator token.
func (e *Evaluator) numericOperands(op lexer.Token, left, right objects.LoxObject) (float64, float64, objects.LoxObject) {
	a, aok := objects.AsNumber(left)
	b, bok := objects.AsNumber(right)
	if !aok || !bok {
		return 0, 0, e.CreateError(op, "Operands must be numbers.")
	}
	return a, b, nil
}
