// Expression generation. Operands are emitted left to right, so the machine
// stack holds left below right when the operator executes.
package codegen

import (
	"fmt"

	"stackc/pkg/asm"
	"stackc/pkg/ast"
)

func (c *genContext) genExpr(e ast.Expr) error {
	switch expr := e.(type) {
	case *ast.NumericLiteral:
		c.emit(asm.OpLoad, asm.Imm{Value: expr.Value}, "")
		return nil

	case *ast.Identifier:
		addr, ok := c.prog.Vars.Lookup(expr.Name)
		if !ok {
			return fmt.Errorf("undefined variable %q", expr.Name)
		}
		c.emit(asm.OpLoadVar, asm.VarRef{Addr: addr}, expr.Name)
		return nil

	case *ast.BinaryExpression:
		if err := c.genExpr(expr.Left); err != nil {
			return err
		}
		if err := c.genExpr(expr.Right); err != nil {
			return err
		}
		op, err := binaryOpcode(expr.Op)
		if err != nil {
			return err
		}
		c.emit(op, nil, "")
		return nil

	case *ast.UnaryExpression:
		if err := c.genExpr(expr.Operand); err != nil {
			return err
		}
		op, err := unaryOpcode(expr.Op)
		if err != nil {
			return err
		}
		c.emit(op, nil, "")
		return nil

	case *ast.AssignmentExpression:
		addr, ok := c.prog.Vars.Lookup(expr.Name)
		if !ok {
			return fmt.Errorf("undefined variable %q", expr.Name)
		}
		if err := c.genExpr(expr.Value); err != nil {
			return err
		}
		c.emit(asm.OpStore, asm.VarRef{Addr: addr}, expr.Name)
		return nil

	case *ast.CallExpression:
		for _, arg := range expr.Args {
			if err := c.genExpr(arg); err != nil {
				return err
			}
		}
		switch expr.Callee {
		case "print":
			c.emit(asm.OpPrint, nil, "")
		case "input":
			c.emit(asm.OpInput, nil, "")
		default:
			c.emit(asm.OpCall, asm.LabelRef{Name: expr.Callee}, "")
		}
		return nil

	default:
		c.warnf("unsupported expression kind %T; no code emitted", e)
		return nil
	}
}
