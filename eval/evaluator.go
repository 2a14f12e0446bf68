/*
File    : go-lox/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/go-lox/function"
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
	"github.com/akashmaji946/go-lox/std"
)

// Evaluator holds the state for evaluating Lox AST nodes: the current scope
// and the output writer. It serves as the main execution engine for the
// Go-Lox interpreter, walking the statement tree produced by the parser and
// managing the environment chain as scopes open and close.
//
// The evaluator is single-threaded and synchronous. Statements execute in
// source order and operands strictly left to right; the only blocking points
// are host I/O (print and builtins).
type Evaluator struct {
	Scp     *scope.Scope // Current scope for variable bindings and lexical scoping
	Globals *scope.Scope // Root scope holding builtins and global declarations
	Writer  io.Writer    // Output writer for print and builtins (default: os.Stdout)
}

// NewEvaluator creates and initializes a new Evaluator instance.
//
// This constructor:
// - Creates the root (global) scope
// - Binds every registered builtin from std.Builtins into the root scope,
//   so builtins are ordinary callable values visible to all programs
// - Sets the output writer to os.Stdout
//
// Example usage:
//
//	ev := NewEvaluator()
//	result := ev.Run(root)
func NewEvaluator() *Evaluator {
	globals := scope.NewScope(nil)
	for _, builtin := range std.Builtins {
		globals.Bind(builtin.Name, builtin)
	}
	return &Evaluator{
		Scp:     globals,
		Globals: globals,
		Writer:  os.Stdout,
	}
}

// SetWriter redirects output from print statements and builtins to any
// io.Writer. This is used by tests to capture output and by the REPL to
// share its writer.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// Run evaluates a whole program, statement by statement, against the
// evaluator's current scope. Evaluation stops at the first runtime error,
// which is returned to the caller for reporting. Otherwise the value of the
// last statement is returned (the REPL echoes it).
func (e *Evaluator) Run(root *parser.RootNode) objects.LoxObject {
	var last objects.LoxObject = &objects.Nil{}

	for _, stmt := range root.Statements {
		last = e.Eval(stmt)
		if objects.IsError(last) {
			return last
		}
		// A stray return signal outside any function is inert; unwrap it
		// so the driver never sees the wrapper.
		last = UnwrapReturnValue(last)
	}

	return last
}

// RegisterFunction creates a user-defined function value and binds it in the
// current scope. The function captures the scope active right now — the
// defining scope — which is what makes closures work: the body will resolve
// free variables against this captured scope on every later call, no matter
// where that call happens.
func (e *Evaluator) RegisterFunction(n *parser.FunctionStatementNode) objects.LoxObject {
	fn := &function.Function{
		Name:   n.FuncName.Literal,
		Params: n.FuncParams,
		Body:   n.FuncBody,
		Scp:    e.Scp,
	}
	e.Scp.Bind(fn.Name, fn)
	return fn
}

// CallFunction invokes a callable value with already-evaluated arguments.
// This also implements the std.Runtime interface so builtins can call back
// into Lox functions.
//
// For a user function the call:
// 1. Checks arity (argument count must equal parameter count)
// 2. Creates a fresh scope whose parent is the function's CAPTURED scope
// 3. Binds parameters to arguments in positional order
// 4. Evaluates the body in that scope
// 5. Unwraps a return signal into the call's result; a body that finishes
//    without a 'return' yields nil
func (e *Evaluator) CallFunction(fn objects.LoxObject, args ...objects.LoxObject) objects.LoxObject {
	switch callee := fn.(type) {
	case *function.Function:
		if len(args) != callee.Arity() {
			return &objects.Error{
				Message: fmt.Sprintf("Expected %d arguments but got %d.", callee.Arity(), len(args)),
				Lexeme:  callee.Name,
			}
		}

		callScope := scope.NewScope(callee.Scp)
		for i, param := range callee.Params {
			callScope.Bind(param.Literal, args[i])
		}

		oldScope := e.Scp
		e.Scp = callScope
		result := e.Eval(callee.Body)
		e.Scp = oldScope

		if objects.IsError(result) {
			return result
		}
		if ret, ok := result.(*objects.ReturnValue); ok {
			return ret.Value
		}
		return &objects.Nil{}

	case *std.Builtin:
		return callee.Callback(e, e.Writer, args...)

	default:
		return &objects.Error{Message: "Object is not callable."}
	}
}

// CreateError constructs a runtime error pinned to the given token.
// The error propagates outward through evaluation until the driver
// reports it.
func (e *Evaluator) CreateError(tok lexer.Token, format string, a ...interface{}) *objects.Error {
	return &objects.Error{
		Message: fmt.Sprintf(format, a...),
		Lexeme:  tok.Literal,
		Line:    tok.Line,
	}
}
