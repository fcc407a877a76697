// Dead-code elimination, limited to statement-level literal expressions:
// an expression statement whose expression is a bare numeric literal computes
// a value and discards it, so it can be dropped. No reachability analysis,
// no unused-declaration removal, no trimming after return.
package optimize

import "stackc/pkg/ast"

// EliminateDeadCode removes dead expression statements from prog's statement
// list and, recursively, from nested statement structure.
func EliminateDeadCode(prog *ast.Program, rec *Recorder) *ast.Program {
	body, changed := filterDead(prog.Body, rec)
	if !changed {
		return prog
	}
	return &ast.Program{Body: body, Position: prog.Position}
}

func filterDead(stmts []ast.Stmt, rec *Recorder) ([]ast.Stmt, bool) {
	changed := false
	out := make([]ast.Stmt, 0, len(stmts))
	for _, s := range stmts {
		if es, ok := s.(*ast.ExpressionStatement); ok {
			if lit, ok := es.X.(*ast.NumericLiteral); ok {
				rec.record(RewriteDeadCode, es.Position,
					"removed constant expression statement %s", lit.Text())
				changed = true
				continue
			}
		}
		kept := deadStmt(s, rec)
		if kept != s {
			changed = true
		}
		out = append(out, kept)
	}
	if !changed {
		return stmts, false
	}
	return out, true
}

// deadStmt recurses into a surviving statement's substructure.
func deadStmt(s ast.Stmt, rec *Recorder) ast.Stmt {
	switch stmt := s.(type) {
	case *ast.BlockStatement:
		body, changed := filterDead(stmt.Body, rec)
		if !changed {
			return stmt
		}
		return &ast.BlockStatement{Body: body, Position: stmt.Position}
	case *ast.IfStatement:
		then := deadStmt(stmt.Then, rec)
		var alt ast.Stmt
		if stmt.Else != nil {
			alt = deadStmt(stmt.Else, rec)
		}
		if then == stmt.Then && alt == stmt.Else {
			return stmt
		}
		return &ast.IfStatement{Cond: stmt.Cond, Then: then, Else: alt, Position: stmt.Position}
	case *ast.WhileStatement:
		body := deadStmt(stmt.Body, rec)
		if body == stmt.Body {
			return stmt
		}
		return &ast.WhileStatement{Cond: stmt.Cond, Body: body, Position: stmt.Position}
	default:
		return s
	}
}
