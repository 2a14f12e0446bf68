/*
File    : go-lox/reporter/reporter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package reporter implements the diagnostics sink for the Go-Lox
// interpreter. All scan, parse, and runtime errors flow through a Reporter,
// which formats them with their source location and writes them in color.
// The REPL and the file driver share one Reporter so every mode of the
// interpreter presents errors the same way.
package reporter

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/akashmaji946/go-lox/objects"
)

// Color definitions for diagnostic output:
// - redColor: all error messages
// - cyanColor: informational messages
var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// Reporter writes structured error events to a destination writer.
// It is safe to share one Reporter across the scanner, parser, and
// evaluator of a single interpreter run.
type Reporter struct {
	Writer io.Writer // Destination for diagnostics (typically os.Stderr)
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{Writer: w}
}

// ScanError reports a lexical error: a malformed character or an
// unterminated string/comment. where is the offending source fragment.
// This implements the lexer.DiagnosticSink interface.
func (r *Reporter) ScanError(line int, where string, message string) {
	if where == "" {
		redColor.Fprintf(r.Writer, "[Error] %s [line] %d\n", message, line)
		return
	}
	redColor.Fprintf(r.Writer, "[Error] %s '%s' [line] %d\n", message, where, line)
}

// ParseError reports a syntax error at the given token. The end-of-input
// sentinel is special-cased to read "at EOF" since it has no lexeme worth
// quoting.
func (r *Reporter) ParseError(line int, lexeme string, message string, atEOF bool) {
	redColor.Fprintf(r.Writer, "%s\n", FormatParseError(line, lexeme, message, atEOF))
}

// RuntimeError reports an evaluation fault, quoting the offending lexeme
// and its line.
func (r *Reporter) RuntimeError(err *objects.Error) {
	redColor.Fprintf(r.Writer, "['%s'] %s [line] %d\n", err.Lexeme, err.Message, err.Line)
}

// Info writes an informational message.
func (r *Reporter) Info(message string) {
	cyanColor.Fprintf(r.Writer, "[INFO] %s\n", message)
}

// FormatParseError renders a parse error the way ParseError prints it.
// The parser uses this to collect formatted errors without holding a
// Reporter, so the same text reaches the REPL and the file driver.
func FormatParseError(line int, lexeme string, message string, atEOF bool) string {
	if atEOF {
		return fmt.Sprintf("[Error] at EOF, line %d: %s", line, message)
	}
	return fmt.Sprintf("[Error] %s '%s' [line] %d", message, lexeme, line)
}
