/*
File    : go-lox/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package scope

import (
	"fmt"
	"io"

	"github.com/akashmaji946/go-lox/objects"
)

// Scope defines a lexical scope boundary for variable lifetime and accessibility.
//
// Scope implements a hierarchical scope chain that enables lexical scoping and
// closures. Each scope maintains its own variable bindings and can access
// variables from parent scopes. This structure supports:
// - Variable shadowing: inner scopes can redefine variables from outer scopes
// - Closures: functions capture their defining scope and can access outer variables
// - Block scoping: each block, function call, and loop gets its own scope
//
// The scope chain is traversed upward (from child to parent) during variable
// lookup, implementing standard lexical scoping rules. Lookup only ever walks
// upward; the parent chain never forms a cycle.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]objects.LoxObject

	// Parent points to the enclosing scope, forming a scope chain.
	// nil indicates this is the global (root) scope.
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent.
//
// The parent parameter determines the scope's position in the hierarchy:
// - parent == nil: creates the global (root) scope
// - parent != nil: creates a nested scope that can access parent variables
//
// Example usage:
//
//	globalScope := NewScope(nil)           // Create global scope
//	functionScope := NewScope(globalScope) // Create function scope
//	blockScope := NewScope(functionScope)  // Create nested block scope
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.LoxObject),
		Parent:    parent,
	}
}

// LookUp searches for a variable by name in this scope and all parent scopes.
//
// This implements the core variable resolution algorithm for lexical scoping:
// 1. First checks the current scope's Variables map
// 2. If not found and a parent scope exists, recursively searches the parent
// 3. Continues up the scope chain until the variable is found or the root is reached
//
// This traversal order ensures that variables in inner scopes shadow those in
// outer scopes and that the most recent binding is always returned.
//
// Returns the bound value and whether the variable was found anywhere in
// the chain.
func (s *Scope) LookUp(varName string) (objects.LoxObject, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.LoxObject)
	}
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		obj, ok = s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Bind creates a variable binding in the current scope.
//
// Bind only ever touches the current scope; it never affects parents.
// Redefinition in the same scope silently replaces the previous binding
// (this is deliberately more permissive than canonical Lox, and makes the
// REPL pleasant to use). The second result reports whether the name was
// already bound in THIS scope.
func (s *Scope) Bind(varName string, obj objects.LoxObject) (string, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.LoxObject)
	}
	_, has := s.Variables[varName]
	s.Variables[varName] = obj
	return varName, has
}

// Assign updates an existing variable in the scope where it was originally
// defined.
//
// Unlike Bind (which creates bindings in the current scope), Assign:
// 1. Searches for the variable in the current scope
// 2. If found, updates it in place and returns this scope
// 3. If not found, recursively searches parent scopes
// 4. Updates the variable in the scope where it was originally defined
//
// This ensures that closures can modify variables from their captured scope
// and that assignments update the original binding instead of shadowing it.
// Returns the scope where the variable was found (nil if it does not exist
// anywhere in the chain) and whether the update happened.
func (s *Scope) Assign(varName string, obj objects.LoxObject) (*Scope, bool) {
	if s.Variables == nil {
		s.Variables = make(map[string]objects.LoxObject)
	}
	if _, ok := s.Variables[varName]; ok {
		s.Variables[varName] = obj
		return s, true
	}
	if s.Parent != nil {
		return s.Parent.Assign(varName, obj)
	}
	return nil, false
}

// Dump writes the scope chain to w for debugging, one binding per line,
// innermost scope first. The REPL exposes this as the /scope command.
func (s *Scope) Dump(w io.Writer, starter string) {
	fmt.Fprintf(w, "%sscope:\n", starter)
	for name, value := range s.Variables {
		fmt.Fprintf(w, "\t%s%s -> %s\n", starter, name, value.ToString())
	}
	if s.Parent != nil {
		fmt.Fprintf(w, "%s\tparent\n", starter)
		s.Parent.Dump(w, "\t"+starter)
	}
}
