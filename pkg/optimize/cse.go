// Common-subexpression detection. Detection only: repeated expressions are
// logged and counted, but the tree is returned unchanged — duplicates are
// not hoisted into shared temporaries.
package optimize

import (
	"strings"

	"stackc/pkg/ast"
)

// DetectCSE scans prog for structurally identical binary expressions and
// records a log entry for every occurrence after the first. The scratch key
// table is scoped to this call.
func DetectCSE(prog *ast.Program, rec *Recorder) *ast.Program {
	seen := make(map[string]ast.Position)
	ast.Walk(prog, func(n ast.Node) bool {
		bin, ok := n.(*ast.BinaryExpression)
		if !ok {
			return true
		}
		key, ok := exprKey(bin)
		if !ok {
			return true
		}
		if first, dup := seen[key]; dup {
			rec.record(RewriteCSE, bin.Position,
				"duplicate expression %q (first at %d:%d)", key, first.Line, first.Column)
		} else {
			seen[key] = bin.Position
		}
		return true
	})
	return prog
}

// exprKey computes the canonical key for an expression: binary expressions
// key recursively as "leftKey op rightKey", identifiers on their name,
// literals on their textual value. Expressions containing other kinds have
// no canonical key.
func exprKey(e ast.Expr) (string, bool) {
	switch expr := e.(type) {
	case *ast.BinaryExpression:
		left, ok := exprKey(expr.Left)
		if !ok {
			return "", false
		}
		right, ok := exprKey(expr.Right)
		if !ok {
			return "", false
		}
		var b strings.Builder
		b.WriteString(left)
		b.WriteByte(' ')
		b.WriteString(expr.Op.String())
		b.WriteByte(' ')
		b.WriteString(right)
		return b.String(), true
	case *ast.Identifier:
		return expr.Name, true
	case *ast.NumericLiteral:
		return expr.Text(), true
	default:
		return "", false
	}
}
