// Package asm defines the abstract stack machine: its instruction set, the
// instruction stream, and the variable and label tables populated during
// code generation.
package asm

import "strconv"

// Opcode is a member of the fixed instruction set.
type Opcode int

const (
	// data
	OpLoad Opcode = iota
	OpStore
	OpLoadVar
	// arithmetic
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpNeg
	// comparison
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	// logical
	OpAnd
	OpOr
	OpNot
	// control flow
	OpJmp
	OpJz
	OpJnz
	OpCall
	OpRet
	// stack
	OpPush
	OpPop
	OpDup
	// system
	OpHalt
	OpPrint
	OpInput
)

var opcodeNames = []string{
	"LOAD", "STORE", "LOAD_VAR",
	"ADD", "SUB", "MUL", "DIV", "MOD", "NEG",
	"EQ", "NE", "LT", "LE", "GT", "GE",
	"AND", "OR", "NOT",
	"JMP", "JZ", "JNZ", "CALL", "RET",
	"PUSH", "POP", "DUP",
	"HALT", "PRINT", "INPUT",
}

func (op Opcode) String() string {
	if int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}
	return "?"
}

// Operand is the optional operand of an instruction: an immediate value, a
// variable address, or a label name.
type Operand interface {
	implOperand()
	String() string
}

// Imm is an immediate integer operand.
type Imm struct {
	Value int64
}

// VarRef is a variable-address operand.
type VarRef struct {
	Addr int
}

// LabelRef is a symbolic jump or call target, resolved against the label
// table at render time.
type LabelRef struct {
	Name string
}

func (Imm) implOperand()      {}
func (VarRef) implOperand()   {}
func (LabelRef) implOperand() {}

func (o Imm) String() string      { return strconv.FormatInt(o.Value, 10) }
func (o VarRef) String() string   { return strconv.Itoa(o.Addr) }
func (o LabelRef) String() string { return o.Name }

// Instruction is one stack-machine instruction. Addr is the instruction's
// index in the stream; the peephole pass recomputes it after deletions.
type Instruction struct {
	Addr    int
	Op      Opcode
	Operand Operand // nil when the opcode takes none
	Comment string
}

// Stream is an instruction sequence. It is append-only during generation;
// only the peephole pass deletes and renumbers.
type Stream struct {
	Instrs []Instruction
}

// Append adds an instruction at the next address.
func (s *Stream) Append(op Opcode, operand Operand, comment string) {
	s.Instrs = append(s.Instrs, Instruction{
		Addr:    len(s.Instrs),
		Op:      op,
		Operand: operand,
		Comment: comment,
	})
}

// Len returns the number of instructions, which is also the next address.
func (s *Stream) Len() int {
	return len(s.Instrs)
}

// Program bundles the instruction stream with the tables that give its
// operands meaning.
type Program struct {
	Code   Stream
	Vars   *VarTable
	Labels *LabelTable
}

// NewProgram creates an empty program with fresh tables.
func NewProgram() *Program {
	return &Program{Vars: NewVarTable(), Labels: NewLabelTable()}
}
