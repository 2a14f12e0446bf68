/*
File    : go-lox/main/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/go-lox/eval"
	"github.com/akashmaji946/go-lox/reporter"
)

// runSource executes one source text the way file mode does, returning the
// exit status, stdout, and diagnostics
func runSource(src string) (int, string, string) {
	var out, errs bytes.Buffer
	evaluator := eval.NewEvaluator()
	rep := reporter.NewReporter(&errs)
	status := run(src, evaluator, rep, &out)
	return status, out.String(), errs.String()
}

// TestRun_Scenarios exercises the interpreter end to end: source in,
// stdout and exit status out
func TestRun_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			"precedence",
			`print 1 + 2 * 3;`,
			"7\n",
		},
		{
			"concatenation",
			`var a = "hi"; var b = " there"; print a + b;`,
			"hi there\n",
		},
		{
			"for loop",
			`var x = 0; for (var i = 0; i < 3; i = i + 1) { x = x + i; } print x;`,
			"3\n",
		},
		{
			"closures",
			`fun make(n) { fun add(m) { return n + m; } return add; } var f = make(10); print f(5); print f(7);`,
			"15\n17\n",
		},
		{
			"short circuit keeps operand",
			`print 1 < 2 and "ok";`,
			"ok\n",
		},
		{
			"while loop",
			`var s = 0; var i = 1; while (i <= 4) { s = s + i; i = i + 1; } print s;`,
			"10\n",
		},
		{
			"fibonacci",
			`fun fib(n) { if (n < 2) return n; return fib(n - 1) + fib(n - 2); } print fib(15);`,
			"610\n",
		},
	}

	for _, tt := range tests {
		status, out, errs := runSource(tt.src)
		assert.Equal(t, GOOD, status, "%s: diagnostics: %s", tt.name, errs)
		assert.Equal(t, tt.expected, out, tt.name)
	}
}

// TestRun_RuntimeErrors verifies runtime faults report and exit nonzero
func TestRun_RuntimeErrors(t *testing.T) {
	tests := []struct {
		src      string
		contains string
	}{
		{`print "a" - 1;`, "Operands must be numbers."},
		{`print foo;`, "Undefined variable 'foo'."},
		{`var x = 3; x();`, "Object is not callable."},
	}

	for _, tt := range tests {
		status, _, errs := runSource(tt.src)
		assert.Equal(t, ERROR, status, "source %q", tt.src)
		assert.Contains(t, errs, tt.contains, "source %q", tt.src)
	}
}

// TestRun_ParseErrors verifies syntax errors stop the run before evaluation
func TestRun_ParseErrors(t *testing.T) {
	status, out, errs := runSource(`print 1; print ; print 2;`)
	assert.Equal(t, ERROR, status)
	assert.Empty(t, out, "nothing may execute when parsing failed")
	assert.Contains(t, errs, "Expected an expression.")
}

// TestRun_ScanErrors verifies lexical errors stop the run before parsing
func TestRun_ScanErrors(t *testing.T) {
	status, out, errs := runSource(`print "unterminated;`)
	assert.Equal(t, ERROR, status)
	assert.Empty(t, out)
	assert.Contains(t, errs, "Unterminated string")
}

// TestRun_StatePersistsAcrossRuns verifies a REPL-style sequence of runs
// against one evaluator keeps its globals
func TestRun_StatePersistsAcrossRuns(t *testing.T) {
	var out, errs bytes.Buffer
	evaluator := eval.NewEvaluator()
	rep := reporter.NewReporter(&errs)

	assert.Equal(t, GOOD, run(`var count = 1;`, evaluator, rep, &out))
	assert.Equal(t, GOOD, run(`count = count + 1;`, evaluator, rep, &out))
	assert.Equal(t, GOOD, run(`print count;`, evaluator, rep, &out))
	assert.Equal(t, "2\n", out.String())
}
