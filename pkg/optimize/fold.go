// Constant folding: binary expressions over two numeric literals are
// replaced with their computed value.
package optimize

import "stackc/pkg/ast"

// Fold runs the constant-folding pass over a whole program.
func Fold(prog *ast.Program, rec *Recorder) *ast.Program {
	body, changed := mapStmts(prog.Body, func(e ast.Expr) ast.Expr {
		return FoldExpr(e, rec)
	})
	if !changed {
		return prog
	}
	return &ast.Program{Body: body, Position: prog.Position}
}

// FoldExpr folds e bottom-up: operands are folded first so nested constant
// sub-trees like (2+3)*4 collapse in a single pass. Division and modulo by a
// zero literal are left unfolded with a warning; a compile-time fold must not
// erase a runtime fault.
func FoldExpr(e ast.Expr, rec *Recorder) ast.Expr {
	switch expr := e.(type) {
	case *ast.BinaryExpression:
		left := FoldExpr(expr.Left, rec)
		right := FoldExpr(expr.Right, rec)
		ll, lok := left.(*ast.NumericLiteral)
		rl, rok := right.(*ast.NumericLiteral)
		if lok && rok && foldable(expr.Op) {
			if (expr.Op == ast.OpDiv || expr.Op == ast.OpMod) && rl.Value == 0 {
				rec.warn("division/modulo by zero in constant expression %d %s %d; not folded",
					ll.Value, expr.Op, rl.Value)
			} else {
				v := evalBinary(expr.Op, ll.Value, rl.Value)
				rec.record(RewriteFold, expr.Position, "folded %d %s %d to %d",
					ll.Value, expr.Op, rl.Value, v)
				return &ast.NumericLiteral{Value: v, Position: expr.Position}
			}
		}
		if left == expr.Left && right == expr.Right {
			return expr
		}
		return &ast.BinaryExpression{Op: expr.Op, Left: left, Right: right, Position: expr.Position}
	case *ast.UnaryExpression:
		operand := FoldExpr(expr.Operand, rec)
		if operand == expr.Operand {
			return expr
		}
		return &ast.UnaryExpression{Op: expr.Op, Operand: operand, Position: expr.Position}
	case *ast.AssignmentExpression:
		value := FoldExpr(expr.Value, rec)
		if value == expr.Value {
			return expr
		}
		return &ast.AssignmentExpression{Name: expr.Name, Value: value, Position: expr.Position}
	case *ast.CallExpression:
		args, changed := foldArgs(expr.Args, rec)
		if !changed {
			return expr
		}
		return &ast.CallExpression{Callee: expr.Callee, Args: args, Position: expr.Position}
	default:
		return e
	}
}

func foldArgs(args []ast.Expr, rec *Recorder) ([]ast.Expr, bool) {
	changed := false
	out := make([]ast.Expr, len(args))
	for i, a := range args {
		out[i] = FoldExpr(a, rec)
		if out[i] != a {
			changed = true
		}
	}
	if !changed {
		return args, false
	}
	return out, true
}

// foldable reports whether op is in the arithmetic set the folder evaluates.
func foldable(op ast.BinaryOp) bool {
	switch op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod:
		return true
	}
	return false
}

func evalBinary(op ast.BinaryOp, a, b int64) int64 {
	switch op {
	case ast.OpAdd:
		return a + b
	case ast.OpSub:
		return a - b
	case ast.OpMul:
		return a * b
	case ast.OpDiv:
		return a / b
	case ast.OpMod:
		return a % b
	}
	panic("evalBinary: operator outside foldable set")
}
