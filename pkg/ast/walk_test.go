package ast

import "testing"

func TestWalkOrder(t *testing.T) {
	// x + 1; if (c) { return; }
	tree := &Program{
		Body: []Stmt{
			&ExpressionStatement{
				X: &BinaryExpression{
					Op:    OpAdd,
					Left:  &Identifier{Name: "x"},
					Right: &NumericLiteral{Value: 1},
				},
			},
			&IfStatement{
				Cond: &Identifier{Name: "c"},
				Then: &BlockStatement{Body: []Stmt{&ReturnStatement{}}},
			},
		},
	}

	var got []Kind
	Walk(tree, func(n Node) bool {
		got = append(got, n.Kind())
		return true
	})

	want := []Kind{
		KindProgram,
		KindExpressionStatement,
		KindBinaryExpression,
		KindIdentifier,
		KindNumericLiteral,
		KindIfStatement,
		KindIdentifier,
		KindBlockStatement,
		KindReturnStatement,
	}
	if len(got) != len(want) {
		t.Fatalf("visited %d nodes, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestWalkToleratesAbsentChildren(t *testing.T) {
	tree := &Program{
		Body: []Stmt{
			&VariableDeclaration{Name: "x"}, // no initializer
			&ReturnStatement{},              // bare return
			&IfStatement{Cond: &Identifier{Name: "c"}, Then: &BlockStatement{}}, // no else
		},
	}

	count := 0
	Walk(tree, func(n Node) bool {
		count++
		return true
	})
	// Program, VariableDeclaration, ReturnStatement, IfStatement, Identifier, BlockStatement
	if count != 6 {
		t.Errorf("visited %d nodes, want 6", count)
	}
}

func TestWalkPrune(t *testing.T) {
	tree := &Program{
		Body: []Stmt{
			&ExpressionStatement{X: &BinaryExpression{
				Op:    OpMul,
				Left:  &NumericLiteral{Value: 2},
				Right: &NumericLiteral{Value: 3},
			}},
		},
	}

	var got []Kind
	Walk(tree, func(n Node) bool {
		got = append(got, n.Kind())
		return n.Kind() != KindBinaryExpression
	})
	if len(got) != 3 {
		t.Errorf("pruned walk visited %d nodes, want 3 (literals skipped): %v", len(got), got)
	}
}
