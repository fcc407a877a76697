// Statement generation. A fatal error inside one statement is recorded and
// generation continues with the next sibling; the run as a whole is marked
// unsuccessful by the caller.
package codegen

import (
	"stackc/pkg/asm"
	"stackc/pkg/ast"
)

func (c *genContext) genStmt(s ast.Stmt) {
	switch stmt := s.(type) {
	case *ast.VariableDeclaration:
		addr := c.prog.Vars.Assign(stmt.Name)
		if stmt.Init == nil {
			return
		}
		if err := c.genExpr(stmt.Init); err != nil {
			c.errorf("%v", err)
			return
		}
		c.emit(asm.OpStore, asm.VarRef{Addr: addr}, stmt.Name)

	case *ast.ExpressionStatement:
		if err := c.genExpr(stmt.X); err != nil {
			c.errorf("%v", err)
			return
		}
		if pushesValue(stmt.X) {
			c.emit(asm.OpPop, nil, "discard unused result")
		}

	case *ast.IfStatement:
		if err := c.genExpr(stmt.Cond); err != nil {
			c.errorf("%v", err)
			return
		}
		elseLabel := c.newLabel("else")
		endLabel := c.newLabel("endif")
		c.emit(asm.OpJz, asm.LabelRef{Name: elseLabel}, "")
		c.genStmt(stmt.Then)
		c.emit(asm.OpJmp, asm.LabelRef{Name: endLabel}, "")
		c.place(elseLabel)
		if stmt.Else != nil {
			c.genStmt(stmt.Else)
		}
		c.place(endLabel)

	case *ast.WhileStatement:
		loopLabel := c.newLabel("loop")
		endLabel := c.newLabel("endloop")
		c.place(loopLabel)
		if err := c.genExpr(stmt.Cond); err != nil {
			c.errorf("%v", err)
			return
		}
		c.emit(asm.OpJz, asm.LabelRef{Name: endLabel}, "")
		c.genStmt(stmt.Body)
		c.emit(asm.OpJmp, asm.LabelRef{Name: loopLabel}, "")
		c.place(endLabel)

	case *ast.BlockStatement:
		for _, inner := range stmt.Body {
			c.genStmt(inner)
		}

	case *ast.ReturnStatement:
		if stmt.Value != nil {
			if err := c.genExpr(stmt.Value); err != nil {
				c.errorf("%v", err)
				return
			}
		}
		c.emit(asm.OpRet, nil, "")

	default:
		c.warnf("unsupported statement kind %T; no code emitted", s)
	}
}

// pushesValue reports whether evaluating e leaves a value on the stack that
// an expression statement must pop. Assignments do not: STORE consumes the
// stored value. A print call's PRINT likewise consumes its argument.
func pushesValue(e ast.Expr) bool {
	switch expr := e.(type) {
	case *ast.AssignmentExpression:
		return false
	case *ast.CallExpression:
		return expr.Callee != "print"
	default:
		return true
	}
}
