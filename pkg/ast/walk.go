package ast

// Walk traverses the tree rooted at n in top-down, left-to-right order,
// calling fn for every node. If fn returns false for a node, its children
// are not visited. Absent optional children (a missing else branch, a bare
// return, a declaration without initializer) are skipped.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch node := n.(type) {
	case *Program:
		for _, s := range node.Body {
			Walk(s, fn)
		}
	case *VariableDeclaration:
		if node.Init != nil {
			Walk(node.Init, fn)
		}
	case *AssignmentExpression:
		Walk(node.Value, fn)
	case *BinaryExpression:
		Walk(node.Left, fn)
		Walk(node.Right, fn)
	case *UnaryExpression:
		Walk(node.Operand, fn)
	case *Identifier, *NumericLiteral:
		// leaves
	case *IfStatement:
		Walk(node.Cond, fn)
		Walk(node.Then, fn)
		if node.Else != nil {
			Walk(node.Else, fn)
		}
	case *WhileStatement:
		Walk(node.Cond, fn)
		Walk(node.Body, fn)
	case *BlockStatement:
		for _, s := range node.Body {
			Walk(s, fn)
		}
	case *ExpressionStatement:
		Walk(node.X, fn)
	case *ReturnStatement:
		if node.Value != nil {
			Walk(node.Value, fn)
		}
	case *CallExpression:
		for _, a := range node.Args {
			Walk(a, fn)
		}
	}
}
