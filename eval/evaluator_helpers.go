/*
File    : go-lox/eval/evaluator_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-lox/objects"
)

// isSignal reports whether a value is unwinding out of the current
// evaluation: either a runtime error or a return signal. Both propagate
// the same way; they differ only in who catches them (the driver and the
// enclosing function invocation, respectively).
func isSignal(obj objects.LoxObject) bool {
	if obj == nil {
		return false
	}
	t := obj.GetType()
	return t == objects.ErrorType || t == objects.ReturnType
}

// UnwrapReturnValue extracts the value carried by a return signal.
// Any other value passes through unchanged.
func UnwrapReturnValue(obj objects.LoxObject) objects.LoxObject {
	if ret, ok := obj.(*objects.ReturnValue); ok {
		return ret.Value
	}
	return obj
}
