package codec

import (
	"github.com/waozixyz/kir"
	"github.com/waozixyz/kir/pkg/logic"
)

// Reactive variable values encode as a kind tag followed by a fixed payload:
// int as u32 two's complement, float as f64, bool as u8, string
// length-prefixed.
func encodeManifest(w *writer, m *logic.Manifest) {
	names := m.Names()
	w.u32(uint32(len(names)))
	for _, name := range names {
		v, _ := m.Get(name)
		w.str(name)
		w.u8(uint8(v.Kind))
		switch v.Kind {
		case logic.ValueInt:
			w.u32(uint32(int32(v.Int)))
		case logic.ValueFloat:
			w.f64(v.Float)
		case logic.ValueBool:
			w.bool(v.Bool)
		case logic.ValueString:
			w.str(v.Str)
		}
	}
}

func decodeManifest(r *reader) *logic.Manifest {
	m := logic.NewManifest()
	count := r.clampCount(r.u32(), "manifest variable count")
	for i := uint32(0); i < count && r.err == nil; i++ {
		name := r.str()
		kind := logic.ValueKind(r.enum(uint8(logic.ValueString), "value kind"))
		var v logic.Value
		switch kind {
		case logic.ValueInt:
			v = logic.IntValue(int64(int32(r.u32())))
		case logic.ValueFloat:
			v = logic.FloatValue(r.f64())
		case logic.ValueBool:
			v = logic.BoolValue(r.bool())
		case logic.ValueString:
			v = logic.StringValue(r.str())
		default:
			v = logic.NullValue()
		}
		if name != "" {
			m.Set(name, v)
		}
	}
	return m
}

const (
	funcUniversal uint8 = 0
	funcEmbedded  uint8 = 1
)

func encodeLogicBlock(w *writer, b *logic.Block) {
	names := b.FunctionNames()
	w.u32(uint32(len(names)))
	for _, name := range names {
		f := b.Function(name)
		w.str(f.Name)
		if f.IsUniversal() {
			w.u8(funcUniversal)
			w.u32(uint32(len(f.Universal.Params)))
			for _, p := range f.Universal.Params {
				w.str(p)
			}
			encodeStmts(w, f.Universal.Statements)
		} else {
			w.u8(funcEmbedded)
			w.u32(uint32(len(f.Sources)))
			for _, lang := range sortedKeys(f.Sources) {
				w.str(lang)
				w.str(f.Sources[lang])
			}
		}
	}

	bindings := b.Bindings()
	w.u32(uint32(len(bindings)))
	for _, bind := range bindings {
		w.u32(bind.ComponentID)
		w.u8(uint8(bind.Event))
		w.str(bind.Handler)
	}
}

func decodeLogicBlock(r *reader) *logic.Block {
	b := logic.NewBlock()

	funcCount := r.clampCount(r.u32(), "function count")
	for i := uint32(0); i < funcCount && r.err == nil; i++ {
		f := &logic.Function{Name: r.str()}
		switch r.u8() {
		case funcUniversal:
			body := &logic.UniversalBody{}
			paramCount := r.clampCount(r.u32(), "param count")
			for j := uint32(0); j < paramCount && r.err == nil; j++ {
				body.Params = append(body.Params, r.str())
			}
			body.Statements = decodeStmts(r)
			f.Universal = body
		default:
			f.Sources = make(map[string]string)
			srcCount := r.clampCount(r.u32(), "source count")
			for j := uint32(0); j < srcCount && r.err == nil; j++ {
				lang := r.str()
				code := r.str()
				if lang != "" {
					f.Sources[lang] = code
				}
			}
		}
		if f.Name != "" {
			b.AddFunction(f)
		}
	}

	bindCount := r.clampCount(r.u32(), "binding count")
	for i := uint32(0); i < bindCount && r.err == nil; i++ {
		id := r.u32()
		event := kir.EventType(r.enum(uint8(kir.EventCustom), "event type"))
		handler := r.str()
		b.Bind(id, event, handler)
	}
	return b
}

// Statement wire tags.
const (
	stmtAssign uint8 = iota
	stmtAssignOp
	stmtIf
	stmtWhile
	stmtForEach
	stmtExpr
	stmtReturn
	stmtBreak
	stmtContinue
)

func encodeStmts(w *writer, stmts []logic.Stmt) {
	w.u32(uint32(len(stmts)))
	for _, s := range stmts {
		encodeStmt(w, s)
	}
}

func decodeStmts(r *reader) []logic.Stmt {
	count := r.clampCount(r.u32(), "statement count")
	var stmts []logic.Stmt
	for i := uint32(0); i < count && r.err == nil; i++ {
		if s := decodeStmt(r); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

func encodeStmt(w *writer, s logic.Stmt) {
	switch t := s.(type) {
	case *logic.Assign:
		w.u8(stmtAssign)
		encodeExpr(w, t.Target)
		encodeExpr(w, t.Value)
	case *logic.AssignOp:
		w.u8(stmtAssignOp)
		encodeExpr(w, t.Target)
		w.u8(uint8(t.Op))
		encodeExpr(w, t.Value)
	case *logic.If:
		w.u8(stmtIf)
		encodeExpr(w, t.Cond)
		encodeStmts(w, t.Then)
		encodeStmts(w, t.Else)
	case *logic.While:
		w.u8(stmtWhile)
		encodeExpr(w, t.Cond)
		encodeStmts(w, t.Body)
	case *logic.ForEach:
		w.u8(stmtForEach)
		w.str(t.Var)
		w.str(t.Index)
		encodeExpr(w, t.Iterable)
		encodeStmts(w, t.Body)
	case *logic.ExprStmt:
		w.u8(stmtExpr)
		encodeExpr(w, t.Expr)
	case *logic.Return:
		w.u8(stmtReturn)
		encodeExpr(w, t.Value)
	case *logic.Break:
		w.u8(stmtBreak)
	case *logic.Continue:
		w.u8(stmtContinue)
	}
}

func decodeStmt(r *reader) logic.Stmt {
	switch r.enum(stmtContinue, "statement kind") {
	case stmtAssign:
		return &logic.Assign{Target: decodeExpr(r), Value: decodeExpr(r)}
	case stmtAssignOp:
		target := decodeExpr(r)
		op := logic.BinaryOp(r.enum(uint8(logic.OpConcat), "binary op"))
		return &logic.AssignOp{Target: target, Op: op, Value: decodeExpr(r)}
	case stmtIf:
		return &logic.If{Cond: decodeExpr(r), Then: decodeStmts(r), Else: decodeStmts(r)}
	case stmtWhile:
		return &logic.While{Cond: decodeExpr(r), Body: decodeStmts(r)}
	case stmtForEach:
		return &logic.ForEach{Var: r.str(), Index: r.str(), Iterable: decodeExpr(r), Body: decodeStmts(r)}
	case stmtExpr:
		return &logic.ExprStmt{Expr: decodeExpr(r)}
	case stmtReturn:
		return &logic.Return{Value: decodeExpr(r)}
	case stmtBreak:
		return &logic.Break{}
	case stmtContinue:
		return &logic.Continue{}
	}
	return nil
}

// Expression wire tags.
const (
	exprLiteral uint8 = iota
	exprIdent
	exprMember
	exprComputed
	exprCall
	exprMethodCall
	exprBinary
	exprUnary
	exprTernary
	exprArray
	exprObject
)

// encodeExpr writes a presence marker then the expression tree. Nil
// expressions (a bare return's value) encode as absent.
func encodeExpr(w *writer, e logic.Expr) {
	if e == nil {
		w.u8(0)
		return
	}
	w.u8(1)

	switch t := e.(type) {
	case *logic.Literal:
		w.u8(exprLiteral)
		w.u8(uint8(t.Value.Kind))
		switch t.Value.Kind {
		case logic.ValueInt:
			w.u64(uint64(t.Value.Int))
		case logic.ValueFloat:
			w.f64(t.Value.Float)
		case logic.ValueBool:
			w.bool(t.Value.Bool)
		case logic.ValueString:
			w.str(t.Value.Str)
		}
	case *logic.Ident:
		w.u8(exprIdent)
		w.str(t.Name)
		w.str(t.Scope)
	case *logic.Member:
		w.u8(exprMember)
		encodeExpr(w, t.Object)
		w.str(t.Field)
	case *logic.ComputedMember:
		w.u8(exprComputed)
		encodeExpr(w, t.Object)
		encodeExpr(w, t.Key)
	case *logic.Call:
		w.u8(exprCall)
		w.str(t.Function)
		w.u32(uint32(len(t.Args)))
		for _, a := range t.Args {
			encodeExpr(w, a)
		}
	case *logic.MethodCall:
		w.u8(exprMethodCall)
		encodeExpr(w, t.Object)
		w.str(t.Method)
		w.u32(uint32(len(t.Args)))
		for _, a := range t.Args {
			encodeExpr(w, a)
		}
	case *logic.Binary:
		w.u8(exprBinary)
		w.u8(uint8(t.Op))
		encodeExpr(w, t.Left)
		encodeExpr(w, t.Right)
	case *logic.Unary:
		w.u8(exprUnary)
		w.u8(uint8(t.Op))
		encodeExpr(w, t.Operand)
	case *logic.Ternary:
		w.u8(exprTernary)
		encodeExpr(w, t.Cond)
		encodeExpr(w, t.Then)
		encodeExpr(w, t.Else)
	case *logic.Array:
		w.u8(exprArray)
		w.u32(uint32(len(t.Elements)))
		for _, el := range t.Elements {
			encodeExpr(w, el)
		}
	case *logic.Object:
		w.u8(exprObject)
		w.u32(uint32(len(t.Fields)))
		for _, f := range t.Fields {
			w.str(f.Key)
			encodeExpr(w, f.Value)
		}
	}
}

func decodeExpr(r *reader) logic.Expr {
	if !r.bool() || r.err != nil {
		return nil
	}

	switch r.enum(exprObject, "expression kind") {
	case exprLiteral:
		kind := logic.ValueKind(r.enum(uint8(logic.ValueString), "value kind"))
		switch kind {
		case logic.ValueInt:
			return logic.Int(int64(r.u64()))
		case logic.ValueFloat:
			return logic.Float(r.f64())
		case logic.ValueBool:
			return logic.Bool(r.bool())
		case logic.ValueString:
			return logic.Str(r.str())
		default:
			return logic.Null()
		}
	case exprIdent:
		return &logic.Ident{Name: r.str(), Scope: r.str()}
	case exprMember:
		return &logic.Member{Object: decodeExpr(r), Field: r.str()}
	case exprComputed:
		return &logic.ComputedMember{Object: decodeExpr(r), Key: decodeExpr(r)}
	case exprCall:
		c := &logic.Call{Function: r.str()}
		n := r.clampCount(r.u32(), "argument count")
		for i := uint32(0); i < n && r.err == nil; i++ {
			c.Args = append(c.Args, decodeExpr(r))
		}
		return c
	case exprMethodCall:
		m := &logic.MethodCall{Object: decodeExpr(r), Method: r.str()}
		n := r.clampCount(r.u32(), "argument count")
		for i := uint32(0); i < n && r.err == nil; i++ {
			m.Args = append(m.Args, decodeExpr(r))
		}
		return m
	case exprBinary:
		op := logic.BinaryOp(r.enum(uint8(logic.OpConcat), "binary op"))
		return &logic.Binary{Op: op, Left: decodeExpr(r), Right: decodeExpr(r)}
	case exprUnary:
		op := logic.UnaryOp(r.enum(uint8(logic.OpTypeof), "unary op"))
		return &logic.Unary{Op: op, Operand: decodeExpr(r)}
	case exprTernary:
		return &logic.Ternary{Cond: decodeExpr(r), Then: decodeExpr(r), Else: decodeExpr(r)}
	case exprArray:
		a := &logic.Array{}
		n := r.clampCount(r.u32(), "element count")
		for i := uint32(0); i < n && r.err == nil; i++ {
			a.Elements = append(a.Elements, decodeExpr(r))
		}
		return a
	case exprObject:
		o := &logic.Object{}
		n := r.clampCount(r.u32(), "field count")
		for i := uint32(0); i < n && r.err == nil; i++ {
			o.Fields = append(o.Fields, logic.ObjectField{Key: r.str(), Value: decodeExpr(r)})
		}
		return o
	}
	return nil
}
