// Algebraic simplification: identity patterns over literal operands.
// This is a pattern match on literal zero/one operands only; it does not
// reason about variables proven to hold those values.
package optimize

import "stackc/pkg/ast"

// Simplify runs the algebraic-simplification pass over a whole program.
func Simplify(prog *ast.Program, rec *Recorder) *ast.Program {
	body, changed := mapStmts(prog.Body, func(e ast.Expr) ast.Expr {
		return SimplifyExpr(e, rec)
	})
	if !changed {
		return prog
	}
	return &ast.Program{Body: body, Position: prog.Position}
}

// SimplifyExpr applies the identity set
// {x+0, 0+x, x-0, x*1, 1*x, x*0, 0*x, x/1} bottom-up, replacing a matched
// expression with the surviving operand (or a fresh zero literal for
// multiplication by zero).
func SimplifyExpr(e ast.Expr, rec *Recorder) ast.Expr {
	switch expr := e.(type) {
	case *ast.BinaryExpression:
		left := SimplifyExpr(expr.Left, rec)
		right := SimplifyExpr(expr.Right, rec)
		if simplified, ok := applyIdentity(expr, left, right, rec); ok {
			return simplified
		}
		if left == expr.Left && right == expr.Right {
			return expr
		}
		return &ast.BinaryExpression{Op: expr.Op, Left: left, Right: right, Position: expr.Position}
	case *ast.UnaryExpression:
		operand := SimplifyExpr(expr.Operand, rec)
		if operand == expr.Operand {
			return expr
		}
		return &ast.UnaryExpression{Op: expr.Op, Operand: operand, Position: expr.Position}
	case *ast.AssignmentExpression:
		value := SimplifyExpr(expr.Value, rec)
		if value == expr.Value {
			return expr
		}
		return &ast.AssignmentExpression{Name: expr.Name, Value: value, Position: expr.Position}
	case *ast.CallExpression:
		changed := false
		args := make([]ast.Expr, len(expr.Args))
		for i, a := range expr.Args {
			args[i] = SimplifyExpr(a, rec)
			if args[i] != a {
				changed = true
			}
		}
		if !changed {
			return expr
		}
		return &ast.CallExpression{Callee: expr.Callee, Args: args, Position: expr.Position}
	default:
		return e
	}
}

func applyIdentity(expr *ast.BinaryExpression, left, right ast.Expr, rec *Recorder) (ast.Expr, bool) {
	switch expr.Op {
	case ast.OpAdd:
		if isLiteral(right, 0) {
			rec.record(RewriteSimplify, expr.Position, "simplified x + 0 to x")
			return left, true
		}
		if isLiteral(left, 0) {
			rec.record(RewriteSimplify, expr.Position, "simplified 0 + x to x")
			return right, true
		}
	case ast.OpSub:
		if isLiteral(right, 0) {
			rec.record(RewriteSimplify, expr.Position, "simplified x - 0 to x")
			return left, true
		}
	case ast.OpMul:
		if isLiteral(right, 1) {
			rec.record(RewriteSimplify, expr.Position, "simplified x * 1 to x")
			return left, true
		}
		if isLiteral(left, 1) {
			rec.record(RewriteSimplify, expr.Position, "simplified 1 * x to x")
			return right, true
		}
		if isLiteral(right, 0) || isLiteral(left, 0) {
			rec.record(RewriteSimplify, expr.Position, "simplified multiplication by 0 to 0")
			return &ast.NumericLiteral{Value: 0, Position: expr.Position}, true
		}
	case ast.OpDiv:
		if isLiteral(right, 1) {
			rec.record(RewriteSimplify, expr.Position, "simplified x / 1 to x")
			return left, true
		}
	}
	return nil, false
}

func isLiteral(e ast.Expr, v int64) bool {
	lit, ok := e.(*ast.NumericLiteral)
	return ok && lit.Value == v
}
