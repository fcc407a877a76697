package ast

import (
	"strings"
	"testing"
)

func TestPrintProgram(t *testing.T) {
	tree := &Program{
		Body: []Stmt{
			&VariableDeclaration{Name: "x", Init: &NumericLiteral{Value: 5}},
			&WhileStatement{
				Cond: &BinaryExpression{
					Op:    OpGt,
					Left:  &Identifier{Name: "x"},
					Right: &NumericLiteral{Value: 0},
				},
				Body: &BlockStatement{Body: []Stmt{
					&ExpressionStatement{X: &AssignmentExpression{
						Name: "x",
						Value: &BinaryExpression{
							Op:    OpSub,
							Left:  &Identifier{Name: "x"},
							Right: &NumericLiteral{Value: 1},
						},
					}},
				}},
			},
			&ReturnStatement{Value: &Identifier{Name: "x"}},
		},
	}

	var b strings.Builder
	NewPrinter(&b).PrintProgram(tree)

	want := `let x = 5;
while ((x > 0))
{
  x = (x - 1);
}
return x;
`
	if b.String() != want {
		t.Errorf("printed program:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestPrintIfElse(t *testing.T) {
	tree := &Program{
		Body: []Stmt{
			&IfStatement{
				Cond: &UnaryExpression{Op: OpNot, Operand: &Identifier{Name: "done"}},
				Then: &ExpressionStatement{X: &CallExpression{
					Callee: "print",
					Args:   []Expr{&Identifier{Name: "done"}},
				}},
				Else: &ReturnStatement{},
			},
		},
	}

	var b strings.Builder
	NewPrinter(&b).PrintProgram(tree)

	want := `if (!done)
  print(done);
else
  return;
`
	if b.String() != want {
		t.Errorf("printed program:\n%s\nwant:\n%s", b.String(), want)
	}
}
