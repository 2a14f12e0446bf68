/*
File    : go-lox/std/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - builtins.go
// This file defines the builtin (host) function interface for the Go-Lox
// language. Builtins are first-class callable values: the evaluator binds
// every registered builtin into the root environment before execution
// begins, so scripts call them exactly like user functions and can pass
// them around as values. Individual builtin files register themselves by
// appending to the Builtins slice from an init function.
package std

import (
	"fmt"
	"io"

	"github.com/akashmaji946/go-lox/objects"
)

// Runtime defines the interface the evaluator presents to builtins, so a
// builtin can call back into Lox callables (user functions or other
// builtins) without importing the evaluator.
type Runtime interface {
	CallFunction(fn objects.LoxObject, args ...objects.LoxObject) objects.LoxObject
}

// CallbackFunc is the function signature for builtin functions.
// It takes the runtime, an io.Writer for output, and the evaluated argument
// values, and returns the call's result (or an error object on failure).
type CallbackFunc func(rt Runtime, writer io.Writer, args ...objects.LoxObject) objects.LoxObject

// Builtin represents a host function registered into the root environment.
// Builtins are callable Lox values, so Builtin implements objects.LoxObject.
type Builtin struct {
	Name     string       // The name the builtin is bound to (e.g., "time")
	Callback CallbackFunc // The function that implements the builtin behavior
}

// GetType returns the type of the Builtin object (callable).
func (b *Builtin) GetType() objects.LoxType {
	return objects.FunctionType
}

// ToString returns the display form of the builtin (e.g., "<time builtin>").
func (b *Builtin) ToString() string {
	return fmt.Sprintf("<%s builtin>", b.Name)
}

// ToObject returns a detailed representation of the builtin.
func (b *Builtin) ToObject() string {
	return b.ToString()
}

// Builtins is a global slice of pointers to Builtin structs.
// It holds all the builtin functions available to Go-Lox programs.
// Functions are added to this slice during package initialization, and a
// host can append its own before constructing an evaluator.
var Builtins = make([]*Builtin, 0)

// createError is a local helper to create Lox error objects. The evaluator
// fills in the source location of the call site before propagating them.
func createError(format string, a ...interface{}) *objects.Error {
	return &objects.Error{Message: fmt.Sprintf(format, a...)}
}
