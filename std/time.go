/*
File    : go-lox/std/time.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - time.go
// This file defines the wall-clock builtin for the Go-Lox language.
package std

import (
	"io"
	"time"

	"github.com/akashmaji946/go-lox/objects"
)

var timeMethods = []*Builtin{
	{Name: "time", Callback: timeNow}, // Returns current Unix timestamp (seconds)
}

// init registers the time methods as global builtins.
func init() {
	Builtins = append(Builtins, timeMethods...)
}

// timeNow returns the current wall-clock time as seconds since the Unix
// epoch. Lox numbers are doubles, so the timestamp is returned as one.
//
// Syntax: time()
//
// Example:
//
//	var t = time();
//	print t;
func timeNow(rt Runtime, writer io.Writer, args ...objects.LoxObject) objects.LoxObject {
	if len(args) != 0 {
		return createError("time expects 0 arguments")
	}
	return &objects.Number{Value: float64(time.Now().Unix())}
}
