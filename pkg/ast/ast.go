// Package ast defines the parse tree consumed by the optimizer and the
// stack-machine code generator. The node set is closed: every traversal in
// later stages type-switches over exactly these kinds.
package ast

import "strconv"

// Position is a source location carried for diagnostics. The zero value
// means "unknown".
type Position struct {
	Line   int
	Column int
}

// Kind discriminates the node variants.
type Kind int

const (
	KindProgram Kind = iota
	KindVariableDeclaration
	KindAssignmentExpression
	KindBinaryExpression
	KindUnaryExpression
	KindIdentifier
	KindNumericLiteral
	KindIfStatement
	KindWhileStatement
	KindBlockStatement
	KindExpressionStatement
	KindReturnStatement
	KindCallExpression
)

func (k Kind) String() string {
	names := []string{
		"Program", "VariableDeclaration", "AssignmentExpression",
		"BinaryExpression", "UnaryExpression", "Identifier", "NumericLiteral",
		"IfStatement", "WhileStatement", "BlockStatement", "ExpressionStatement",
		"ReturnStatement", "CallExpression",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "?"
}

// Node is the base interface for all tree nodes
type Node interface {
	Kind() Kind
	Pos() Position
}

// Expr is the interface for all expression nodes
type Expr interface {
	Node
	implExpr()
}

// Stmt is the interface for all statement nodes
type Stmt interface {
	Node
	implStmt()
}

// BinaryOp represents binary operators
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd // &&
	OpOr  // ||
)

func (op BinaryOp) String() string {
	names := []string{"+", "-", "*", "/", "%", "==", "!=", "<", "<=", ">", ">=", "&&", "||"}
	if int(op) < len(names) {
		return names[op]
	}
	return "?"
}

// UnaryOp represents unary operators
type UnaryOp int

const (
	OpNeg UnaryOp = iota // -
	OpNot                // !
)

func (op UnaryOp) String() string {
	names := []string{"-", "!"}
	if int(op) < len(names) {
		return names[op]
	}
	return "?"
}

// Program is the tree root: an ordered statement list.
type Program struct {
	Body     []Stmt
	Position Position
}

// VariableDeclaration declares a name, optionally with an initializer.
// Init is nil for a bare declaration.
type VariableDeclaration struct {
	Name     string
	Init     Expr
	Position Position
}

// AssignmentExpression assigns Value to the named variable.
type AssignmentExpression struct {
	Name     string
	Value    Expr
	Position Position
}

// BinaryExpression applies Op to Left and Right.
type BinaryExpression struct {
	Op       BinaryOp
	Left     Expr
	Right    Expr
	Position Position
}

// UnaryExpression applies Op to Operand.
type UnaryExpression struct {
	Op       UnaryOp
	Operand  Expr
	Position Position
}

// Identifier references a variable by name.
type Identifier struct {
	Name     string
	Position Position
}

// NumericLiteral is an integer constant. Raw preserves the source text when
// the tree came from an external parser; synthesized literals leave it empty.
type NumericLiteral struct {
	Value    int64
	Raw      string
	Position Position
}

// Text returns the literal's source-faithful text, synthesizing it from
// Value for literals built in-process.
func (n *NumericLiteral) Text() string {
	if n.Raw != "" {
		return n.Raw
	}
	return strconv.FormatInt(n.Value, 10)
}

// IfStatement branches on Cond. Else is nil when absent.
type IfStatement struct {
	Cond     Expr
	Then     Stmt
	Else     Stmt
	Position Position
}

// WhileStatement loops over Body while Cond is non-zero.
type WhileStatement struct {
	Cond     Expr
	Body     Stmt
	Position Position
}

// BlockStatement is a braced statement list.
type BlockStatement struct {
	Body     []Stmt
	Position Position
}

// ExpressionStatement evaluates an expression for effect and discards the result.
type ExpressionStatement struct {
	X        Expr
	Position Position
}

// ReturnStatement returns from the program. Value is nil for a bare return.
type ReturnStatement struct {
	Value    Expr
	Position Position
}

// CallExpression calls the named routine with Args.
type CallExpression struct {
	Callee   string
	Args     []Expr
	Position Position
}

func (n *Program) Kind() Kind              { return KindProgram }
func (n *VariableDeclaration) Kind() Kind  { return KindVariableDeclaration }
func (n *AssignmentExpression) Kind() Kind { return KindAssignmentExpression }
func (n *BinaryExpression) Kind() Kind     { return KindBinaryExpression }
func (n *UnaryExpression) Kind() Kind      { return KindUnaryExpression }
func (n *Identifier) Kind() Kind           { return KindIdentifier }
func (n *NumericLiteral) Kind() Kind       { return KindNumericLiteral }
func (n *IfStatement) Kind() Kind          { return KindIfStatement }
func (n *WhileStatement) Kind() Kind       { return KindWhileStatement }
func (n *BlockStatement) Kind() Kind       { return KindBlockStatement }
func (n *ExpressionStatement) Kind() Kind  { return KindExpressionStatement }
func (n *ReturnStatement) Kind() Kind      { return KindReturnStatement }
func (n *CallExpression) Kind() Kind       { return KindCallExpression }

func (n *Program) Pos() Position              { return n.Position }
func (n *VariableDeclaration) Pos() Position  { return n.Position }
func (n *AssignmentExpression) Pos() Position { return n.Position }
func (n *BinaryExpression) Pos() Position     { return n.Position }
func (n *UnaryExpression) Pos() Position      { return n.Position }
func (n *Identifier) Pos() Position           { return n.Position }
func (n *NumericLiteral) Pos() Position       { return n.Position }
func (n *IfStatement) Pos() Position          { return n.Position }
func (n *WhileStatement) Pos() Position       { return n.Position }
func (n *BlockStatement) Pos() Position       { return n.Position }
func (n *ExpressionStatement) Pos() Position  { return n.Position }
func (n *ReturnStatement) Pos() Position      { return n.Position }
func (n *CallExpression) Pos() Position       { return n.Position }

// Marker methods for interface implementation
func (*AssignmentExpression) implExpr() {}
func (*BinaryExpression) implExpr()     {}
func (*UnaryExpression) implExpr()      {}
func (*Identifier) implExpr()           {}
func (*NumericLiteral) implExpr()       {}
func (*CallExpression) implExpr()       {}

func (*VariableDeclaration) implStmt() {}
func (*IfStatement) implStmt()         {}
func (*WhileStatement) implStmt()      {}
func (*BlockStatement) implStmt()      {}
func (*ExpressionStatement) implStmt() {}
func (*ReturnStatement) implStmt()     {}
