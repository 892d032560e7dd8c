package codec

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/waozixyz/kir/pkg/logic"
)

// Statements and expressions serialize as tagged JSON objects. The "stmt"
// and "expr" keys carry the node kind; remaining keys are kind-specific.

type stmtNode struct {
	Kind     string            `json:"stmt"`
	Target   json.RawMessage   `json:"target,omitempty"`
	Value    json.RawMessage   `json:"value,omitempty"`
	Op       string            `json:"op,omitempty"`
	Cond     json.RawMessage   `json:"cond,omitempty"`
	Then     []json.RawMessage `json:"then,omitempty"`
	Else     []json.RawMessage `json:"else,omitempty"`
	Body     []json.RawMessage `json:"body,omitempty"`
	Var      string            `json:"var,omitempty"`
	Index    string            `json:"index,omitempty"`
	Iterable json.RawMessage   `json:"iterable,omitempty"`
	Expr     json.RawMessage   `json:"expr,omitempty"`
}

type exprNode struct {
	Kind     string            `json:"expr"`
	Type     string            `json:"type,omitempty"`
	Value    json.RawMessage   `json:"value,omitempty"`
	Name     string            `json:"name,omitempty"`
	Scope    string            `json:"scope,omitempty"`
	Object   json.RawMessage   `json:"object,omitempty"`
	Field    string            `json:"field,omitempty"`
	Key      json.RawMessage   `json:"key,omitempty"`
	Function string            `json:"function,omitempty"`
	Method   string            `json:"method,omitempty"`
	Args     []json.RawMessage `json:"args,omitempty"`
	Op       string            `json:"op,omitempty"`
	Left     json.RawMessage   `json:"left,omitempty"`
	Right    json.RawMessage   `json:"right,omitempty"`
	Operand  json.RawMessage   `json:"operand,omitempty"`
	Cond     json.RawMessage   `json:"cond,omitempty"`
	Then     json.RawMessage   `json:"then,omitempty"`
	Else     json.RawMessage   `json:"else,omitempty"`
	Elements []json.RawMessage `json:"elements,omitempty"`
	Fields   []fieldNode       `json:"fields,omitempty"`
}

type fieldNode struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

func marshalNode(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage("null")
	}
	return b
}

func stmtsToJSON(stmts []logic.Stmt) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, stmtToJSON(s))
	}
	return out
}

func stmtToJSON(s logic.Stmt) json.RawMessage {
	var n stmtNode
	switch t := s.(type) {
	case *logic.Assign:
		n = stmtNode{Kind: "assign", Target: exprToJSON(t.Target), Value: exprToJSON(t.Value)}
	case *logic.AssignOp:
		n = stmtNode{Kind: "assign_op", Target: exprToJSON(t.Target), Op: t.Op.String(), Value: exprToJSON(t.Value)}
	case *logic.If:
		n = stmtNode{Kind: "if", Cond: exprToJSON(t.Cond), Then: stmtsToJSON(t.Then), Else: stmtsToJSON(t.Else)}
	case *logic.While:
		n = stmtNode{Kind: "while", Cond: exprToJSON(t.Cond), Body: stmtsToJSON(t.Body)}
	case *logic.ForEach:
		n = stmtNode{Kind: "foreach", Var: t.Var, Index: t.Index, Iterable: exprToJSON(t.Iterable), Body: stmtsToJSON(t.Body)}
	case *logic.ExprStmt:
		n = stmtNode{Kind: "expr", Expr: exprToJSON(t.Expr)}
	case *logic.Return:
		n = stmtNode{Kind: "return"}
		if t.Value != nil {
			n.Value = exprToJSON(t.Value)
		}
	case *logic.Break:
		n = stmtNode{Kind: "break"}
	case *logic.Continue:
		n = stmtNode{Kind: "continue"}
	default:
		n = stmtNode{Kind: "expr"}
	}
	return marshalNode(n)
}

func exprToJSON(e logic.Expr) json.RawMessage {
	if e == nil {
		return json.RawMessage("null")
	}
	var n exprNode
	switch t := e.(type) {
	case *logic.Literal:
		n = exprNode{Kind: "literal"}
		switch t.Value.Kind {
		case logic.ValueInt:
			n.Type = "int"
			n.Value = json.RawMessage(strconv.FormatInt(t.Value.Int, 10))
		case logic.ValueFloat:
			n.Type = "float"
			n.Value = json.RawMessage(strconv.FormatFloat(t.Value.Float, 'g', -1, 64))
		case logic.ValueBool:
			n.Type = "bool"
			n.Value = marshalNode(t.Value.Bool)
		case logic.ValueString:
			n.Type = "string"
			n.Value = marshalNode(t.Value.Str)
		default:
			n.Type = "null"
		}
	case *logic.Ident:
		n = exprNode{Kind: "var", Name: t.Name, Scope: t.Scope}
	case *logic.Member:
		n = exprNode{Kind: "member", Object: exprToJSON(t.Object), Field: t.Field}
	case *logic.ComputedMember:
		n = exprNode{Kind: "index", Object: exprToJSON(t.Object), Key: exprToJSON(t.Key)}
	case *logic.Call:
		n = exprNode{Kind: "call", Function: t.Function, Args: exprsToJSON(t.Args)}
	case *logic.MethodCall:
		n = exprNode{Kind: "method", Object: exprToJSON(t.Object), Method: t.Method, Args: exprsToJSON(t.Args)}
	case *logic.Binary:
		n = exprNode{Kind: "binary", Op: t.Op.String(), Left: exprToJSON(t.Left), Right: exprToJSON(t.Right)}
	case *logic.Unary:
		n = exprNode{Kind: "unary", Op: t.Op.String(), Operand: exprToJSON(t.Operand)}
	case *logic.Ternary:
		n = exprNode{Kind: "ternary", Cond: exprToJSON(t.Cond), Then: exprToJSON(t.Then), Else: exprToJSON(t.Else)}
	case *logic.Array:
		n = exprNode{Kind: "array", Elements: exprsToJSON(t.Elements)}
		if n.Elements == nil {
			n.Elements = []json.RawMessage{}
		}
	case *logic.Object:
		n = exprNode{Kind: "object", Fields: make([]fieldNode, 0, len(t.Fields))}
		for _, f := range t.Fields {
			n.Fields = append(n.Fields, fieldNode{Key: f.Key, Value: exprToJSON(f.Value)})
		}
	default:
		n = exprNode{Kind: "literal", Type: "null"}
	}
	return marshalNode(n)
}

func exprsToJSON(exprs []logic.Expr) []json.RawMessage {
	if len(exprs) == 0 {
		return nil
	}
	out := make([]json.RawMessage, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, exprToJSON(e))
	}
	return out
}

func stmtsFromJSON(raw []json.RawMessage) ([]logic.Stmt, error) {
	var out []logic.Stmt
	for _, r := range raw {
		s, err := stmtFromJSON(r)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func stmtFromJSON(raw json.RawMessage) (logic.Stmt, error) {
	var n stmtNode
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, fmt.Errorf("parsing statement: %w", err)
	}
	switch n.Kind {
	case "assign":
		target, err := exprFromJSON(n.Target)
		if err != nil {
			return nil, err
		}
		value, err := exprFromJSON(n.Value)
		if err != nil {
			return nil, err
		}
		return &logic.Assign{Target: target, Value: value}, nil
	case "assign_op":
		target, err := exprFromJSON(n.Target)
		if err != nil {
			return nil, err
		}
		value, err := exprFromJSON(n.Value)
		if err != nil {
			return nil, err
		}
		return &logic.AssignOp{Target: target, Op: logic.ParseBinaryOp(n.Op), Value: value}, nil
	case "if":
		cond, err := exprFromJSON(n.Cond)
		if err != nil {
			return nil, err
		}
		then, err := stmtsFromJSON(n.Then)
		if err != nil {
			return nil, err
		}
		els, err := stmtsFromJSON(n.Else)
		if err != nil {
			return nil, err
		}
		return &logic.If{Cond: cond, Then: then, Else: els}, nil
	case "while":
		cond, err := exprFromJSON(n.Cond)
		if err != nil {
			return nil, err
		}
		body, err := stmtsFromJSON(n.Body)
		if err != nil {
			return nil, err
		}
		return &logic.While{Cond: cond, Body: body}, nil
	case "foreach":
		iterable, err := exprFromJSON(n.Iterable)
		if err != nil {
			return nil, err
		}
		body, err := stmtsFromJSON(n.Body)
		if err != nil {
			return nil, err
		}
		return &logic.ForEach{Var: n.Var, Index: n.Index, Iterable: iterable, Body: body}, nil
	case "expr":
		e, err := exprFromJSON(n.Expr)
		if err != nil {
			return nil, err
		}
		return &logic.ExprStmt{Expr: e}, nil
	case "return":
		if len(n.Value) == 0 {
			return &logic.Return{}, nil
		}
		v, err := exprFromJSON(n.Value)
		if err != nil {
			return nil, err
		}
		return &logic.Return{Value: v}, nil
	case "break":
		return &logic.Break{}, nil
	case "continue":
		return &logic.Continue{}, nil
	default:
		return nil, fmt.Errorf("unknown statement kind %q", n.Kind)
	}
}

func exprFromJSON(raw json.RawMessage) (logic.Expr, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return logic.Null(), nil
	}
	var n exprNode
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, fmt.Errorf("parsing expression: %w", err)
	}
	switch n.Kind {
	case "literal":
		return literalFromJSON(n)
	case "var":
		return &logic.Ident{Name: n.Name, Scope: n.Scope}, nil
	case "member":
		obj, err := exprFromJSON(n.Object)
		if err != nil {
			return nil, err
		}
		return &logic.Member{Object: obj, Field: n.Field}, nil
	case "index":
		obj, err := exprFromJSON(n.Object)
		if err != nil {
			return nil, err
		}
		key, err := exprFromJSON(n.Key)
		if err != nil {
			return nil, err
		}
		return &logic.ComputedMember{Object: obj, Key: key}, nil
	case "call":
		args, err := exprsFromJSON(n.Args)
		if err != nil {
			return nil, err
		}
		return &logic.Call{Function: n.Function, Args: args}, nil
	case "method":
		obj, err := exprFromJSON(n.Object)
		if err != nil {
			return nil, err
		}
		args, err := exprsFromJSON(n.Args)
		if err != nil {
			return nil, err
		}
		return &logic.MethodCall{Object: obj, Method: n.Method, Args: args}, nil
	case "binary":
		left, err := exprFromJSON(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := exprFromJSON(n.Right)
		if err != nil {
			return nil, err
		}
		return &logic.Binary{Op: logic.ParseBinaryOp(n.Op), Left: left, Right: right}, nil
	case "unary":
		operand, err := exprFromJSON(n.Operand)
		if err != nil {
			return nil, err
		}
		return &logic.Unary{Op: logic.ParseUnaryOp(n.Op), Operand: operand}, nil
	case "ternary":
		cond, err := exprFromJSON(n.Cond)
		if err != nil {
			return nil, err
		}
		then, err := exprFromJSON(n.Then)
		if err != nil {
			return nil, err
		}
		els, err := exprFromJSON(n.Else)
		if err != nil {
			return nil, err
		}
		return &logic.Ternary{Cond: cond, Then: then, Else: els}, nil
	case "array":
		elems, err := exprsFromJSON(n.Elements)
		if err != nil {
			return nil, err
		}
		return &logic.Array{Elements: elems}, nil
	case "object":
		obj := &logic.Object{}
		for _, f := range n.Fields {
			v, err := exprFromJSON(f.Value)
			if err != nil {
				return nil, err
			}
			obj.Fields = append(obj.Fields, logic.ObjectField{Key: f.Key, Value: v})
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unknown expression kind %q", n.Kind)
	}
}

func exprsFromJSON(raw []json.RawMessage) ([]logic.Expr, error) {
	var out []logic.Expr
	for _, r := range raw {
		e, err := exprFromJSON(r)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func literalFromJSON(n exprNode) (logic.Expr, error) {
	switch n.Type {
	case "int":
		var v int64
		if err := json.Unmarshal(n.Value, &v); err != nil {
			return nil, fmt.Errorf("parsing int literal: %w", err)
		}
		return logic.Int(v), nil
	case "float":
		var v float64
		if err := json.Unmarshal(n.Value, &v); err != nil {
			return nil, fmt.Errorf("parsing float literal: %w", err)
		}
		return logic.Float(v), nil
	case "bool":
		var v bool
		if err := json.Unmarshal(n.Value, &v); err != nil {
			return nil, fmt.Errorf("parsing bool literal: %w", err)
		}
		return logic.Bool(v), nil
	case "string":
		var v string
		if err := json.Unmarshal(n.Value, &v); err != nil {
			return nil, fmt.Errorf("parsing string literal: %w", err)
		}
		return logic.Str(v), nil
	default:
		return logic.Null(), nil
	}
}
