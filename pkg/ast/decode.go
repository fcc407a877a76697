// JSON decoding for parse trees produced by the external parser.
// Each node is an object with a "type" tag plus kind-specific fields.
// Literal nodes arrive under the type name "NumericLiteral" or "Literal"
// with the value as source-faithful text; both are normalized to
// NumericLiteral here.
package ast

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// rawNode is the union of all fields a parser node may carry. Fields that
// hold sub-trees stay as json.RawMessage until the type tag is known.
type rawNode struct {
	Type       string            `json:"type"`
	Operator   string            `json:"operator"`
	Name       string            `json:"name"`
	Callee     string            `json:"callee"`
	Value      json.RawMessage   `json:"value"`
	Left       json.RawMessage   `json:"left"`
	Right      json.RawMessage   `json:"right"`
	Operand    json.RawMessage   `json:"operand"`
	Init       json.RawMessage   `json:"init"`
	Test       json.RawMessage   `json:"test"`
	Consequent json.RawMessage   `json:"consequent"`
	Alternate  json.RawMessage   `json:"alternate"`
	Body       json.RawMessage   `json:"body"`
	Expression json.RawMessage   `json:"expression"`
	Argument   json.RawMessage   `json:"argument"`
	Arguments  []json.RawMessage `json:"arguments"`
	Line       int               `json:"line"`
	Column     int               `json:"column"`
}

func (r *rawNode) pos() Position {
	return Position{Line: r.Line, Column: r.Column}
}

// DecodeFile reads and decodes a parse-tree JSON file.
func DecodeFile(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode decodes a serialized parse tree whose root is a Program node.
func Decode(data []byte) (*Program, error) {
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed parse tree: %w", err)
	}
	if raw.Type != "Program" {
		return nil, fmt.Errorf("expected Program root, got %q", raw.Type)
	}
	body, err := decodeStmtList(raw.Body)
	if err != nil {
		return nil, err
	}
	return &Program{Body: body, Position: raw.pos()}, nil
}

func decodeRaw(msg json.RawMessage) (*rawNode, error) {
	var raw rawNode
	if err := json.Unmarshal(msg, &raw); err != nil {
		return nil, fmt.Errorf("malformed parse tree: %w", err)
	}
	return &raw, nil
}

func decodeStmtList(msg json.RawMessage) ([]Stmt, error) {
	if len(msg) == 0 {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(msg, &items); err != nil {
		return nil, fmt.Errorf("malformed statement list: %w", err)
	}
	stmts := make([]Stmt, 0, len(items))
	for _, item := range items {
		s, err := decodeStmt(item)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func decodeStmt(msg json.RawMessage) (Stmt, error) {
	raw, err := decodeRaw(msg)
	if err != nil {
		return nil, err
	}
	switch raw.Type {
	case "VariableDeclaration":
		var init Expr
		if len(raw.Init) > 0 && string(raw.Init) != "null" {
			if init, err = decodeExpr(raw.Init); err != nil {
				return nil, err
			}
		}
		return &VariableDeclaration{Name: raw.Name, Init: init, Position: raw.pos()}, nil
	case "IfStatement":
		cond, err := decodeExpr(raw.Test)
		if err != nil {
			return nil, err
		}
		then, err := decodeStmt(raw.Consequent)
		if err != nil {
			return nil, err
		}
		var alt Stmt
		if len(raw.Alternate) > 0 && string(raw.Alternate) != "null" {
			if alt, err = decodeStmt(raw.Alternate); err != nil {
				return nil, err
			}
		}
		return &IfStatement{Cond: cond, Then: then, Else: alt, Position: raw.pos()}, nil
	case "WhileStatement":
		cond, err := decodeExpr(raw.Test)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmt(raw.Body)
		if err != nil {
			return nil, err
		}
		return &WhileStatement{Cond: cond, Body: body, Position: raw.pos()}, nil
	case "BlockStatement":
		body, err := decodeStmtList(raw.Body)
		if err != nil {
			return nil, err
		}
		return &BlockStatement{Body: body, Position: raw.pos()}, nil
	case "ExpressionStatement":
		x, err := decodeExpr(raw.Expression)
		if err != nil {
			return nil, err
		}
		return &ExpressionStatement{X: x, Position: raw.pos()}, nil
	case "ReturnStatement":
		var value Expr
		if len(raw.Argument) > 0 && string(raw.Argument) != "null" {
			if value, err = decodeExpr(raw.Argument); err != nil {
				return nil, err
			}
		}
		return &ReturnStatement{Value: value, Position: raw.pos()}, nil
	default:
		return nil, fmt.Errorf("unknown statement type %q", raw.Type)
	}
}

func decodeExpr(msg json.RawMessage) (Expr, error) {
	raw, err := decodeRaw(msg)
	if err != nil {
		return nil, err
	}
	switch raw.Type {
	case "NumericLiteral", "Literal":
		return decodeLiteral(raw)
	case "Identifier":
		return &Identifier{Name: raw.Name, Position: raw.pos()}, nil
	case "AssignmentExpression":
		value, err := decodeExpr(raw.Value)
		if err != nil {
			return nil, err
		}
		return &AssignmentExpression{Name: raw.Name, Value: value, Position: raw.pos()}, nil
	case "BinaryExpression":
		op, ok := binaryOps[raw.Operator]
		if !ok {
			return nil, fmt.Errorf("unknown binary operator %q", raw.Operator)
		}
		left, err := decodeExpr(raw.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(raw.Right)
		if err != nil {
			return nil, err
		}
		return &BinaryExpression{Op: op, Left: left, Right: right, Position: raw.pos()}, nil
	case "UnaryExpression":
		op, ok := unaryOps[raw.Operator]
		if !ok {
			return nil, fmt.Errorf("unknown unary operator %q", raw.Operator)
		}
		operand, err := decodeExpr(raw.Operand)
		if err != nil {
			return nil, err
		}
		return &UnaryExpression{Op: op, Operand: operand, Position: raw.pos()}, nil
	case "CallExpression":
		args := make([]Expr, 0, len(raw.Arguments))
		for _, a := range raw.Arguments {
			arg, err := decodeExpr(a)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		return &CallExpression{Callee: raw.Callee, Args: args, Position: raw.pos()}, nil
	default:
		return nil, fmt.Errorf("unknown expression type %q", raw.Type)
	}
}

// decodeLiteral accepts the value either as a JSON string holding the source
// text or as a bare JSON number.
func decodeLiteral(raw *rawNode) (Expr, error) {
	var text string
	if err := json.Unmarshal(raw.Value, &text); err != nil {
		var num int64
		if err := json.Unmarshal(raw.Value, &num); err != nil {
			return nil, fmt.Errorf("literal value %s is neither text nor integer", raw.Value)
		}
		return &NumericLiteral{Value: num, Position: raw.pos()}, nil
	}
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("literal value %q is not an integer", text)
	}
	return &NumericLiteral{Value: value, Raw: text, Position: raw.pos()}, nil
}

var binaryOps = map[string]BinaryOp{
	"+": OpAdd, "-": OpSub, "*": OpMul, "/": OpDiv, "%": OpMod,
	"==": OpEq, "!=": OpNe, "<": OpLt, "<=": OpLe, ">": OpGt, ">=": OpGe,
	"&&": OpAnd, "||": OpOr,
}

var unaryOps = map[string]UnaryOp{
	"-": OpNeg, "!": OpNot,
}
