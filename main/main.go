/*
File    : go-lox/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Go-Lox interpreter.
It provides two modes of operation:
1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
2. File Mode: Execute Lox source files from the command line

The interpreter uses a lexer-parser-evaluator pipeline to process Lox code.
*/
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/go-lox/repl"
)

// VERSION represents the current version of the Go-Lox interpreter
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = ">> "

// BANNER is the ASCII logo displayed when starting the REPL
var BANNER = `   ____           _
  / ___| ___     | |    _____  __
 | |  _ / _ \    | |   / _ \ \/ /
 | |_| | (_) |   | |__| (_) >  <
  \____|\___/    |_____\___/_/\_\
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for driver output:
// - redColor: usage errors
// - yellowColor: help text
// - cyanColor: informational messages
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main is the entry point of the Go-Lox interpreter.
// It determines the operating mode based on command-line arguments:
//
// Usage:
//
//	go-lox                 - Start in REPL (interactive) mode
//	go-lox <filename>      - Execute the specified Lox source file
//	go-lox --ast <file>    - Print the syntax tree of a file, don't run it
//	go-lox --help          - Display help information
//	go-lox --version       - Display version information
//
// File mode exits 0 when the script ran cleanly and nonzero when any scan,
// parse, or runtime error occurred.
func main() {
	if len(os.Args) > 3 || (len(os.Args) == 3 && os.Args[1] != "--ast") {
		redColor.Fprintf(os.Stderr, "usage: go-lox [script]\n")
		os.Exit(1)
	}

	if len(os.Args) == 3 {
		// --ast <file>
		os.Exit(dumpFileAst(os.Args[2]))
	}

	if len(os.Args) == 2 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		// File mode: read and run a file
		os.Exit(runFile(arg))
	}

	// REPL mode: start the interactive interpreter
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

// showHelp displays the help information for the Go-Lox interpreter
func showHelp() {
	cyanColor.Println("Go-Lox - A Tree-Walking Lox Interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  go-lox                    Start interactive REPL mode")
	yellowColor.Println("  go-lox <path-to-file>     Execute a Lox file (.lox)")
	yellowColor.Println("  go-lox --ast <file>       Print a file's syntax tree")
	yellowColor.Println("  go-lox --help             Display this help message")
	yellowColor.Println("  go-lox --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                     Exit the REPL")
	yellowColor.Println("  /scope                    Show current scope and variables")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLES:")
	yellowColor.Println("  go-lox                    # Start REPL")
	yellowColor.Println("  go-lox samples/fib.lox")
}

// showVersion displays the version information for the Go-Lox interpreter
func showVersion() {
	cyanColor.Printf("Go-Lox %s | Author: %s | License: %s\n", VERSION, AUTHOR, LICENCE)
}
