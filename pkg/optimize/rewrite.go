// Statement-structure rebuilding shared by the expression-level passes.
// Passes construct new nodes only for changed sub-trees and share unchanged
// ones read-only; an unchanged input is returned as-is.
package optimize

import "stackc/pkg/ast"

// mapStmts applies f to every expression tree reachable from stmts,
// rebuilding the statement structure around any change. The second result
// reports whether anything changed.
func mapStmts(stmts []ast.Stmt, f func(ast.Expr) ast.Expr) ([]ast.Stmt, bool) {
	changed := false
	out := make([]ast.Stmt, len(stmts))
	for i, s := range stmts {
		out[i] = mapStmt(s, f)
		if out[i] != s {
			changed = true
		}
	}
	if !changed {
		return stmts, false
	}
	return out, true
}

func mapStmt(s ast.Stmt, f func(ast.Expr) ast.Expr) ast.Stmt {
	switch stmt := s.(type) {
	case *ast.VariableDeclaration:
		if stmt.Init == nil {
			return stmt
		}
		init := f(stmt.Init)
		if init == stmt.Init {
			return stmt
		}
		return &ast.VariableDeclaration{Name: stmt.Name, Init: init, Position: stmt.Position}
	case *ast.ExpressionStatement:
		x := f(stmt.X)
		if x == stmt.X {
			return stmt
		}
		return &ast.ExpressionStatement{X: x, Position: stmt.Position}
	case *ast.IfStatement:
		cond := f(stmt.Cond)
		then := mapStmt(stmt.Then, f)
		var alt ast.Stmt
		if stmt.Else != nil {
			alt = mapStmt(stmt.Else, f)
		}
		if cond == stmt.Cond && then == stmt.Then && alt == stmt.Else {
			return stmt
		}
		return &ast.IfStatement{Cond: cond, Then: then, Else: alt, Position: stmt.Position}
	case *ast.WhileStatement:
		cond := f(stmt.Cond)
		body := mapStmt(stmt.Body, f)
		if cond == stmt.Cond && body == stmt.Body {
			return stmt
		}
		return &ast.WhileStatement{Cond: cond, Body: body, Position: stmt.Position}
	case *ast.BlockStatement:
		body, changed := mapStmts(stmt.Body, f)
		if !changed {
			return stmt
		}
		return &ast.BlockStatement{Body: body, Position: stmt.Position}
	case *ast.ReturnStatement:
		if stmt.Value == nil {
			return stmt
		}
		value := f(stmt.Value)
		if value == stmt.Value {
			return stmt
		}
		return &ast.ReturnStatement{Value: value, Position: stmt.Position}
	default:
		return s
	}
}
