/*
File    : go-lox/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop (REPL) for the Go-Lox
interpreter. The REPL provides an interactive environment where users can:
- Enter Lox code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and runs each line through the full scan-parse-evaluate pipeline against a
single evaluator, so declarations persist between lines.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/go-lox/eval"
	"github.com/akashmaji946/go-lox/lexer"
	"github.com/akashmaji946/go-lox/objects"
	"github.com/akashmaji946/go-lox/parser"
	"github.com/akashmaji946/go-lox/reporter"
)

// Color definitions for REPL output:
// - blueColor: decorative lines and separators
// - yellowColor: expression results and version info
// - redColor: error messages
// - greenColor: banner
// - cyanColor: informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
// It encapsulates all the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., ">> ")
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Go-Lox!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit, '/scope' to inspect variables")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop:
// 1. Displays the welcome banner
// 2. Sets up readline for line editing and history
// 3. Creates an evaluator whose state persists across lines
// 4. Reads, executes, and echoes one statement per line until exit
//
// The loop continues until the user types '.exit' or EOF is reached
// (Ctrl+D). Errors never terminate the session; they are reported and the
// prompt returns.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)
	rep := reporter.NewReporter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or read error (e.g. Ctrl+D)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}

		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		if line == "/scope" {
			evaluator.Scp.Dump(writer, "")
			continue
		}

		rl.SaveHistory(line)

		r.execute(writer, line, evaluator, rep)
	}
}

// execute runs one line through the scan-parse-evaluate pipeline.
//
// Unlike file execution mode, the REPL continues running after errors,
// allowing users to correct mistakes and try again:
//   - Scan errors: reported through the reporter, prompt returns
//   - Parse errors: printed in red, prompt returns
//   - Runtime errors: reported through the reporter, prompt returns
//   - Success: a non-nil result value is echoed in yellow
func (r *Repl) execute(writer io.Writer, line string, evaluator *eval.Evaluator, rep *reporter.Reporter) {
	lex := lexer.NewLexer(line, rep)
	tokens, ok := lex.ConsumeTokens()
	if !ok {
		return
	}

	par := parser.NewParser(tokens)
	root := par.Parse()

	if par.HasErrors() {
		for _, err := range par.GetErrors() {
			redColor.Fprintf(writer, "%s\n", err)
		}
		return
	}

	result := evaluator.Run(root)

	if err, isErr := result.(*objects.Error); isErr {
		rep.RuntimeError(err)
		return
	}

	// Echo the value of the last statement, the way a calculator would.
	// Results worth nil (a print statement, a declaration without an
	// initializer, a loop whose body never ran) echo nothing.
	if result != nil && result.GetType() != objects.NilType {
		yellowColor.Fprintf(writer, "%s\n", result.ToString())
	}
}
