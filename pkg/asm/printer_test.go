package asm

import (
	"testing"

	"github.com/nalgeon/be"
)

func testProgram() *Program {
	prog := NewProgram()
	prog.Vars.Assign("x")
	prog.Code.Append(OpLoad, Imm{Value: 5}, "")
	prog.Code.Append(OpStore, VarRef{Addr: 0}, "x")
	prog.Code.Append(OpJmp, LabelRef{Name: "end_0"}, "")
	prog.Labels.Bind("end_0", 3)
	prog.Code.Append(OpHalt, nil, "epilogue")
	return prog
}

func TestRenderListing(t *testing.T) {
	want := `; stackc generated assembly
; target: abstract stack machine

; Symbol table:
; x -> 0

0000: LOAD 5
0001: STORE 0 ; x
0002: JMP 0003 ; end_0
0003: HALT ; epilogue
`
	be.Equal(t, Render(testProgram(), true), want)
}

func TestRenderWithoutComments(t *testing.T) {
	// Disabling comments drops per-instruction annotations but keeps the
	// header and symbol table.
	want := `; stackc generated assembly
; target: abstract stack machine

; Symbol table:
; x -> 0

0000: LOAD 5
0001: STORE 0
0002: JMP 0003
0003: HALT
`
	be.Equal(t, Render(testProgram(), false), want)
}

func TestRenderUnresolvedLabelKeepsName(t *testing.T) {
	prog := NewProgram()
	prog.Code.Append(OpCall, LabelRef{Name: "helper"}, "")

	out := Render(prog, true)
	be.True(t, len(out) > 0)
	be.Equal(t, lastLine(out), "0000: CALL helper")
}

func lastLine(s string) string {
	lines := []byte(s)
	// trim trailing newline, then take the final line
	end := len(lines) - 1
	start := end - 1
	for start >= 0 && lines[start] != '\n' {
		start--
	}
	return string(lines[start+1 : end])
}
