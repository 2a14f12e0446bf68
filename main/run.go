/*
File    : go-lox/main/run.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"io"
	"os"

	"github.com/akashmaji946/go-lox/eval"
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/reporter"
)

// Exit statuses for a run. GOOD and ERROR become process exit codes in
// file mode; EXIT terminates the REPL loop.
const (
	GOOD  = 0
	ERROR = 1
	EXIT  = 2
)

// runFile reads a whole source file and executes it. Any scan, parse, or
// runtime error yields a nonzero status for the process exit code.
func runFile(fileName string) int {
	src, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[Error] could not read file '%s': %v\n", fileName, err)
		return ERROR
	}

	evaluator := eval.NewEvaluator()
	rep := reporter.NewReporter(os.Stderr)

	return run(string(src), evaluator, rep, os.Stdout)
}

// run executes one source text through the scan-parse-evaluate pipeline.
// Each stage aborts the run when the previous one failed: tokens are
// withheld on scan errors, the statement list is not evaluated on parse
// errors, and evaluation stops at the first runtime error.
func run(src string, evaluator *eval.Evaluator, rep *reporter.Reporter, out io.Writer) int {
	lex := lexer.NewLexer(src, rep)
	tokens, ok := lex.ConsumeTokens()
	if !ok {
		return ERROR
	}

	par := parser.NewParser(tokens)
	root := par.Parse()
	if par.HasErrors() {
		for _, perr := range par.GetErrors() {
			redColor.Fprintf(rep.Writer, "%s\n", perr)
		}
		return ERROR
	}

	evaluator.SetWriter(out)
	result := evaluator.Run(root)

	if rerr, isErr := result.(*objects.Error); isErr {
		rep.RuntimeError(rerr)
		return ERROR
	}

	return GOOD
}

// dumpFileAst parses a source file and prints its syntax tree without
// evaluating it. Used by the --ast flag.
func dumpFileAst(fileName string) int {
	src, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[Error] could not read file '%s': %v\n", fileName, err)
		return ERROR
	}

	rep := reporter.NewReporter(os.Stderr)
	lex := lexer.NewLexer(string(src), rep)
	tokens, ok := lex.ConsumeTokens()
	if !ok {
		return ERROR
	}

	par := parser.NewParser(tokens)
	root := par.Parse()
	if par.HasErrors() {
		for _, perr := range par.GetErrors() {
			redColor.Fprintf(os.Stderr, "%s\n", perr)
		}
		return ERROR
	}

	printer := &parser.TreePrinter{}
	printer.Print(root)
	os.Stdout.WriteString(printer.String())
	return GOOD
}
