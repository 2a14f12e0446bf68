/*
File    : go-lox/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function defines the user-defined function object for Go-Lox.
// A Function is a first-class callable value produced by evaluating a
// 'fun' declaration. It bundles the parameter list and body statement with
// the scope that was active at definition time, which is what makes it a
// closure: the body always resolves free variables against that captured
// scope, no matter where the call happens.
package function

import (
	"fmt"

	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/scope"
)

// Function represents a user-defined Lox function.
type Function struct {
	Name   string               // Function name, used for display
	Params []lexer.Token        // Parameter name tokens, in positional order
	Body   parser.StatementNode // The body statement, shared with the AST
	Scp    *scope.Scope         // The scope captured at definition time
}

// GetType returns the type of the Function object (callable).
func (f *Function) GetType() objects.LoxType {
	return objects.FunctionType
}

// ToString returns the display form of the function (e.g., "<fn add>").
func (f *Function) ToString() string {
	return fmt.Sprintf("<fn %s>", f.Name)
}

// ToObject returns a detailed representation including the arity.
func (f *Function) ToObject() string {
	return fmt.Sprintf("<fn %s/%d>", f.Name, len(f.Params))
}

// Arity returns the number of parameters the function declares.
func (f *Function) Arity() int {
	return len(f.Params)
}
