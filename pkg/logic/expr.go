// Package logic models the portable logic layer of a component tree: a small
// expression AST with a recursive-descent parser, a statement and function
// model, event bindings, and the reactive variable manifest. The package
// only holds and serializes logic; execution belongs to an embedded runtime.
package logic

// BinaryOp is a binary operator in the expression AST.
type BinaryOp uint8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte
	OpAnd
	OpOr
	OpConcat
)

var binaryOpNames = [...]string{
	OpAdd: "add", OpSub: "sub", OpMul: "mul", OpDiv: "div", OpMod: "mod",
	OpEq: "eq", OpNeq: "neq", OpLt: "lt", OpLte: "lte", OpGt: "gt",
	OpGte: "gte", OpAnd: "and", OpOr: "or", OpConcat: "concat",
}

// String returns the wire name of the operator.
func (op BinaryOp) String() string {
	if int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return "add"
}

// ParseBinaryOp maps a wire name back to an operator. Unknown names decode
// as OpAdd.
func ParseBinaryOp(name string) BinaryOp {
	for op, n := range binaryOpNames {
		if n == name {
			return BinaryOp(op)
		}
	}
	return OpAdd
}

// UnaryOp is a prefix operator.
type UnaryOp uint8

const (
	OpNeg UnaryOp = iota
	OpNot
	OpTypeof
)

var unaryOpNames = [...]string{OpNeg: "neg", OpNot: "not", OpTypeof: "typeof"}

func (op UnaryOp) String() string {
	if int(op) < len(unaryOpNames) {
		return unaryOpNames[op]
	}
	return "neg"
}

// ParseUnaryOp maps a wire name back to a prefix operator.
func ParseUnaryOp(name string) UnaryOp {
	for op, n := range unaryOpNames {
		if n == name {
			return UnaryOp(op)
		}
	}
	return OpNeg
}

// Expr is a node in the expression AST. Expressions are immutable once
// parsed and form an owned tree with no cycles.
type Expr interface {
	isExpr()
}

// Literal is a constant value.
type Literal struct {
	Value Value
}

// Ident references a variable by name. Scoped references keep the scope
// separate ("Counter:value" parses to Scope "Counter", Name "value").
type Ident struct {
	Name  string
	Scope string
}

// Member accesses a named field: object.field.
type Member struct {
	Object Expr
	Field  string
}

// ComputedMember accesses an element by computed key: object[key].
type ComputedMember struct {
	Object Expr
	Key    Expr
}

// Call invokes a free function.
type Call struct {
	Function string
	Args     []Expr
}

// MethodCall invokes a method on an object: object.method(args).
type MethodCall struct {
	Object Expr
	Method string
	Args   []Expr
}

// Binary applies a binary operator.
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// Unary applies a prefix operator.
type Unary struct {
	Op      UnaryOp
	Operand Expr
}

// Ternary is the conditional expression cond ? then : else.
type Ternary struct {
	Cond Expr
	Then Expr
	Else Expr
}

// Array is an array literal.
type Array struct {
	Elements []Expr
}

// ObjectField is one key-value pair of an object literal, in source order.
type ObjectField struct {
	Key   string
	Value Expr
}

// Object is an object literal.
type Object struct {
	Fields []ObjectField
}

func (*Literal) isExpr()        {}
func (*Ident) isExpr()          {}
func (*Member) isExpr()         {}
func (*ComputedMember) isExpr() {}
func (*Call) isExpr()           {}
func (*MethodCall) isExpr()     {}
func (*Binary) isExpr()         {}
func (*Unary) isExpr()          {}
func (*Ternary) isExpr()        {}
func (*Array) isExpr()          {}
func (*Object) isExpr()         {}

// Int returns an integer literal expression.
func Int(v int64) *Literal { return &Literal{Value: IntValue(v)} }

// Float returns a float literal expression.
func Float(v float64) *Literal { return &Literal{Value: FloatValue(v)} }

// Str returns a string literal expression.
func Str(s string) *Literal { return &Literal{Value: StringValue(s)} }

// Bool returns a boolean literal expression.
func Bool(b bool) *Literal { return &Literal{Value: BoolValue(b)} }

// Null returns the null literal expression.
func Null() *Literal { return &Literal{Value: NullValue()} }

// Var returns an identifier expression.
func Var(name string) *Ident { return &Ident{Name: name} }
