package logic

// Stmt is a node in the universal statement model. Like expressions,
// statements are immutable once built.
type Stmt interface {
	isStmt()
}

// Assign sets a target to the value of an expression.
type Assign struct {
	Target Expr
	Value  Expr
}

// AssignOp applies a binary operator between the target and value, storing
// the result back: target = target op value.
type AssignOp struct {
	Target Expr
	Op     BinaryOp
	Value  Expr
}

// If branches on a condition. Else may be empty.
type If struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
}

// While loops as long as the condition holds.
type While struct {
	Cond Expr
	Body []Stmt
}

// ForEach iterates an iterable, binding each element (and optionally its
// index) per pass.
type ForEach struct {
	Var      string
	Index    string // "" when unused
	Iterable Expr
	Body     []Stmt
}

// ExprStmt evaluates an expression for its side effects, usually a call.
type ExprStmt struct {
	Expr Expr
}

// Return exits the function, optionally with a value.
type Return struct {
	Value Expr // nil for bare return
}

// Break exits the innermost loop.
type Break struct{}

// Continue skips to the next loop iteration.
type Continue struct{}

func (*Assign) isStmt()   {}
func (*AssignOp) isStmt() {}
func (*If) isStmt()       {}
func (*While) isStmt()    {}
func (*ForEach) isStmt()  {}
func (*ExprStmt) isStmt() {}
func (*Return) isStmt()   {}
func (*Break) isStmt()    {}
func (*Continue) isStmt() {}

// Increment builds the pervasive "name = name + 1" binding.
func Increment(name string) Stmt {
	return &AssignOp{Target: Var(name), Op: OpAdd, Value: Int(1)}
}

// Decrement builds "name = name - 1".
func Decrement(name string) Stmt {
	return &AssignOp{Target: Var(name), Op: OpSub, Value: Int(1)}
}

// AddTo builds "name = name + delta".
func AddTo(name string, delta int64) Stmt {
	return &AssignOp{Target: Var(name), Op: OpAdd, Value: Int(delta)}
}

// Toggle builds "name = !name".
func Toggle(name string) Stmt {
	return &Assign{Target: Var(name), Value: &Unary{Op: OpNot, Operand: Var(name)}}
}
