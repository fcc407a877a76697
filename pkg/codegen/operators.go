// Operator-to-opcode translation.
package codegen

import (
	"fmt"

	"stackc/pkg/asm"
	"stackc/pkg/ast"
)

// binaryOpcode maps a tree binary operator to its stack-machine opcode.
func binaryOpcode(op ast.BinaryOp) (asm.Opcode, error) {
	switch op {
	case ast.OpAdd:
		return asm.OpAdd, nil
	case ast.OpSub:
		return asm.OpSub, nil
	case ast.OpMul:
		return asm.OpMul, nil
	case ast.OpDiv:
		return asm.OpDiv, nil
	case ast.OpMod:
		return asm.OpMod, nil
	case ast.OpEq:
		return asm.OpEq, nil
	case ast.OpNe:
		return asm.OpNe, nil
	case ast.OpLt:
		return asm.OpLt, nil
	case ast.OpLe:
		return asm.OpLe, nil
	case ast.OpGt:
		return asm.OpGt, nil
	case ast.OpGe:
		return asm.OpGe, nil
	case ast.OpAnd:
		return asm.OpAnd, nil
	case ast.OpOr:
		return asm.OpOr, nil
	}
	return 0, fmt.Errorf("unsupported binary operator %q", op)
}

// unaryOpcode maps a tree unary operator to its stack-machine opcode.
func unaryOpcode(op ast.UnaryOp) (asm.Opcode, error) {
	switch op {
	case ast.OpNeg:
		return asm.OpNeg, nil
	case ast.OpNot:
		return asm.OpNot, nil
	}
	return 0, fmt.Errorf("unsupported unary operator %q", op)
}
