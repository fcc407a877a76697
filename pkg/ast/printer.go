// Package ast provides tree printing functionality
package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer outputs the tree in a human-readable, source-like format
type Printer struct {
	w      io.Writer
	indent int
}

// NewPrinter creates a new tree printer
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, indent: 0}
}

// PrintProgram prints a complete program
func (p *Printer) PrintProgram(prog *Program) {
	for _, s := range prog.Body {
		p.printStmt(s)
	}
}

func (p *Printer) writeIndent() {
	fmt.Fprint(p.w, strings.Repeat("  ", p.indent))
}

func (p *Printer) printStmt(s Stmt) {
	switch stmt := s.(type) {
	case *VariableDeclaration:
		p.writeIndent()
		if stmt.Init == nil {
			fmt.Fprintf(p.w, "let %s;\n", stmt.Name)
		} else {
			fmt.Fprintf(p.w, "let %s = ", stmt.Name)
			p.printExpr(stmt.Init)
			fmt.Fprintln(p.w, ";")
		}
	case *ExpressionStatement:
		p.writeIndent()
		p.printExpr(stmt.X)
		fmt.Fprintln(p.w, ";")
	case *IfStatement:
		p.writeIndent()
		fmt.Fprint(p.w, "if (")
		p.printExpr(stmt.Cond)
		fmt.Fprintln(p.w, ")")
		p.printBody(stmt.Then)
		if stmt.Else != nil {
			p.writeIndent()
			fmt.Fprintln(p.w, "else")
			p.printBody(stmt.Else)
		}
	case *WhileStatement:
		p.writeIndent()
		fmt.Fprint(p.w, "while (")
		p.printExpr(stmt.Cond)
		fmt.Fprintln(p.w, ")")
		p.printBody(stmt.Body)
	case *BlockStatement:
		p.writeIndent()
		fmt.Fprintln(p.w, "{")
		p.indent++
		for _, inner := range stmt.Body {
			p.printStmt(inner)
		}
		p.indent--
		p.writeIndent()
		fmt.Fprintln(p.w, "}")
	case *ReturnStatement:
		p.writeIndent()
		if stmt.Value == nil {
			fmt.Fprintln(p.w, "return;")
		} else {
			fmt.Fprint(p.w, "return ")
			p.printExpr(stmt.Value)
			fmt.Fprintln(p.w, ";")
		}
	default:
		p.writeIndent()
		fmt.Fprintf(p.w, "/* unknown statement %T */\n", s)
	}
}

// printBody prints a statement that follows an if/while header, indenting
// non-block statements one level.
func (p *Printer) printBody(s Stmt) {
	if _, ok := s.(*BlockStatement); ok {
		p.printStmt(s)
		return
	}
	p.indent++
	p.printStmt(s)
	p.indent--
}

func (p *Printer) printExpr(e Expr) {
	switch expr := e.(type) {
	case *NumericLiteral:
		fmt.Fprint(p.w, expr.Text())
	case *Identifier:
		fmt.Fprint(p.w, expr.Name)
	case *AssignmentExpression:
		fmt.Fprintf(p.w, "%s = ", expr.Name)
		p.printExpr(expr.Value)
	case *BinaryExpression:
		fmt.Fprint(p.w, "(")
		p.printExpr(expr.Left)
		fmt.Fprintf(p.w, " %s ", expr.Op)
		p.printExpr(expr.Right)
		fmt.Fprint(p.w, ")")
	case *UnaryExpression:
		fmt.Fprintf(p.w, "%s", expr.Op)
		p.printExpr(expr.Operand)
	case *CallExpression:
		fmt.Fprintf(p.w, "%s(", expr.Callee)
		for i, a := range expr.Args {
			if i > 0 {
				fmt.Fprint(p.w, ", ")
			}
			p.printExpr(a)
		}
		fmt.Fprint(p.w, ")")
	default:
		fmt.Fprintf(p.w, "/* unknown expression %T */", e)
	}
}
