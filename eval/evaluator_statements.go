/*
File    : go-lox/eval/evaluator_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
)

// evalPrintStatement evaluates the operand and writes its display form to
// the evaluator's writer with a trailing newline.
func (e *Evaluator) evalPrintStatement(n *parser.PrintStatementNode) objects.LoxObject {
	value := e.Eval(n.Expr)
	if isSignal(value) {
		return value
	}

	fmt.Fprintf(e.Writer, "%s\n", value.ToString())
	return &objects.Nil{}
}

// evalDeclarativeStatement evaluates the optional initializer (the variable
// is nil without one) and binds the name in the CURRENT scope. Redeclaring
// a name in the same scope silently replaces the old binding.
func (e *Evaluator) evalDeclarativeStatement(n *parser.DeclarativeStatementNode) objects.LoxObject {
	var value objects.LoxObject = &objects.Nil{}

	if n.Init != nil {
		value = e.Eval(n.Init)
		if isSignal(value) {
			return value
		}
	}

	e.Scp.Bind(n.Name.Literal, value)
	return value
}

// evalBlockStatement runs the block's statements inside a fresh child scope.
// The scope is discarded when the block ends, so declarations inside it are
// not visible afterwards — unless a closure captured the scope, in which
// case it stays reachable through the callable. The block's value is the
// value of its last statement.
func (e *Evaluator) evalBlockStatement(n *parser.BlockStatementNode) objects.LoxObject {
	blockScope := scope.NewScope(e.Scp)

	oldScope := e.Scp
	e.Scp = blockScope
	defer func() { e.Scp = oldScope }()

	var last objects.LoxObject = &objects.Nil{}
	for _, stmt := range n.Statements {
		last = e.Eval(stmt)
		if isSignal(last) {
			// runtime errors and return signals unwind out of the block
			return last
		}
	}
	return last
}

// evalIfStatement evaluates the condition and runs exactly one branch.
// A missing else branch makes the statement worth nil.
func (e *Evaluator) evalIfStatement(n *parser.IfStatementNode) objects.LoxObject {
	condition := e.Eval(n.Condition)
	if isSignal(condition) {
		return condition
	}

	if objects.IsTruthy(condition) {
		return e.Eval(n.Then)
	}
	if n.Else != nil {
		return e.Eval(n.Else)
	}
	return &objects.Nil{}
}

// evalWhileLoop re-evaluates the condition in the enclosing scope before
// every iteration and runs the body while it stays truthy. Errors and
// return signals raised in the condition or body unwind out of the loop.
func (e *Evaluator) evalWhileLoop(n *parser.WhileLoopStatementNode) objects.LoxObject {
	var last objects.LoxObject = &objects.Nil{}

	for {
		condition := e.Eval(n.Condition)
		if isSignal(condition) {
			return condition
		}
		if !objects.IsTruthy(condition) {
			return last
		}

		last = e.Eval(n.Body)
		if isSignal(last) {
			return last
		}
	}
}

// evalReturnStatement evaluates the optional result expression (nil without
// one) and raises the return signal. The signal unwinds through blocks and
// loops exactly like an error, but only the enclosing function invocation
// catches it — CallFunction unwraps it into the call's result.
func (e *Evaluator) evalReturnStatement(n *parser.ReturnStatementNode) objects.LoxObject {
	var value objects.LoxObject = &objects.Nil{}

	if n.Value != nil {
		value = e.Eval(n.Value)
		if objects.IsError(value) {
			return value
		}
		value = UnwrapReturnValue(value)
	}

	return &objects.ReturnValue{Value: value}
}
