// Package asm provides the textual assembly rendering of a program.
package asm

import (
	"fmt"
	"io"
	"strings"
)

// Printer renders a program as assembly text.
type Printer struct {
	w        io.Writer
	comments bool
}

// NewPrinter creates a printer with per-instruction comments enabled.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, comments: true}
}

// SetComments toggles per-instruction comments. The header and symbol-table
// block are always rendered.
func (p *Printer) SetComments(enabled bool) {
	p.comments = enabled
}

// PrintProgram renders the full listing: header, symbol table, then one line
// per instruction in final address order. Jump and call operands that name a
// label are resolved against the label table here; the instruction stream
// itself never stores raw target addresses.
func (p *Printer) PrintProgram(prog *Program) {
	fmt.Fprintln(p.w, "; stackc generated assembly")
	fmt.Fprintln(p.w, "; target: abstract stack machine")
	fmt.Fprintln(p.w)

	fmt.Fprintln(p.w, "; Symbol table:")
	for _, name := range prog.Vars.Names() {
		addr, _ := prog.Vars.Lookup(name)
		fmt.Fprintf(p.w, "; %s -> %d\n", name, addr)
	}
	fmt.Fprintln(p.w)

	for _, instr := range prog.Code.Instrs {
		p.printInstruction(prog, instr)
	}
}

func (p *Printer) printInstruction(prog *Program, instr Instruction) {
	var line strings.Builder
	fmt.Fprintf(&line, "%04d: %s", instr.Addr, instr.Op)

	comment := instr.Comment
	if instr.Operand != nil {
		operand := instr.Operand.String()
		if ref, ok := instr.Operand.(LabelRef); ok {
			if addr, resolved := prog.Labels.Resolve(ref.Name); resolved {
				operand = fmt.Sprintf("%04d", addr)
				if comment == "" {
					comment = ref.Name
				} else {
					comment = ref.Name + ", " + comment
				}
			}
		}
		fmt.Fprintf(&line, " %s", operand)
	}

	if p.comments && comment != "" {
		fmt.Fprintf(&line, " ; %s", comment)
	}
	fmt.Fprintln(p.w, line.String())
}

// Render is a convenience wrapper returning the listing as a string.
func Render(prog *Program, comments bool) string {
	var b strings.Builder
	p := NewPrinter(&b)
	p.SetComments(comments)
	p.PrintProgram(prog)
	return b.String()
}
