/*
File    : go-lox/parser/printer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"bytes"
	"fmt"
)

const INDENT_SIZE = 4

// TreePrinter renders an AST as an indented tree, one node per line.
// It is used by the driver's --ast mode and by tests to inspect parse
// results without evaluating them.
type TreePrinter struct {
	Indent int
	Buf    bytes.Buffer
}

// indent writes the current indentation into the buffer
func (p *TreePrinter) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// line writes one indented line into the buffer
func (p *TreePrinter) line(format string, args ...interface{}) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf(format, args...))
	p.Buf.WriteString("\n")
}

// Print renders node and its children into the buffer
func (p *TreePrinter) Print(node Node) {
	switch n := node.(type) {
	case *RootNode:
		p.line("Root")
		p.nested(func() {
			for _, stmt := range n.Statements {
				p.Print(stmt)
			}
		})
	case *LiteralExpressionNode:
		p.line("Literal [%s]", n.Token.Literal)
	case *ParenthesizedExpressionNode:
		p.line("Group")
		p.nested(func() { p.Print(n.Expr) })
	case *UnaryExpressionNode:
		p.line("Unary [%s]", n.Operation.Literal)
		p.nested(func() { p.Print(n.Right) })
	case *BinaryExpressionNode:
		p.line("Binary [%s]", n.Operation.Literal)
		p.nested(func() {
			p.Print(n.Left)
			p.Print(n.Right)
		})
	case *LogicalExpressionNode:
		p.line("Logical [%s]", n.Operation.Literal)
		p.nested(func() {
			p.Print(n.Left)
			p.Print(n.Right)
		})
	case *IdentifierExpressionNode:
		p.line("Identifier [%s]", n.Name)
	case *AssignmentExpressionNode:
		p.line("Assign [%s]", n.Name.Literal)
		p.nested(func() { p.Print(n.Value) })
	case *CallExpressionNode:
		p.line("Call")
		p.nested(func() {
			p.Print(n.Callee)
			for _, arg := range n.Args {
				p.Print(arg)
			}
		})
	case *ExpressionStatementNode:
		p.line("ExpressionStatement")
		p.nested(func() { p.Print(n.Expr) })
	case *PrintStatementNode:
		p.line("Print")
		p.nested(func() { p.Print(n.Expr) })
	case *DeclarativeStatementNode:
		p.line("Var [%s]", n.Name.Literal)
		if n.Init != nil {
			p.nested(func() { p.Print(n.Init) })
		}
	case *BlockStatementNode:
		p.line("Block")
		p.nested(func() {
			for _, stmt := range n.Statements {
				p.Print(stmt)
			}
		})
	case *IfStatementNode:
		p.line("If")
		p.nested(func() {
			p.Print(n.Condition)
			p.Print(n.Then)
			if n.Else != nil {
				p.Print(n.Else)
			}
		})
	case *WhileLoopStatementNode:
		p.line("While")
		p.nested(func() {
			p.Print(n.Condition)
			p.Print(n.Body)
		})
	case *FunctionStatementNode:
		p.line("Function [%s] (%d params)", n.FuncName.Literal, len(n.FuncParams))
		p.nested(func() { p.Print(n.FuncBody) })
	case *ReturnStatementNode:
		p.line("Return")
		if n.Value != nil {
			p.nested(func() { p.Print(n.Value) })
		}
	}
}

// nested runs fn with one extra level of indentation
func (p *TreePrinter) nested(fn func()) {
	p.Indent += INDENT_SIZE
	fn()
	p.Indent -= INDENT_SIZE
}

// String returns the rendered tree
func (p *TreePrinter) String() string {
	return p.Buf.String()
}
