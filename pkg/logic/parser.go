package logic

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseError is a structured expression parse failure: a message plus the
// byte offset in the source where parsing stopped.
type ParseError struct {
	Message string
	Offset  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Message)
}

// Parse parses an expression in the universal grammar: literals,
// identifiers, member and computed access, calls, unary/binary operators
// with conventional precedence, ternary, and array/object literals. A
// failed parse returns a nil expression and a *ParseError; there is no
// partial tree.
func Parse(src string) (Expr, error) {
	p := &parser{src: src}
	p.next()
	expr := p.parseExpr()
	if p.err != nil {
		return nil, p.err
	}
	if p.tok.kind != tokEOF {
		return nil, &ParseError{Message: fmt.Sprintf("unexpected %q after expression", p.tok.text), Offset: p.tok.offset}
	}
	return expr, nil
}

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokString
	tokIdent
	tokPunct
)

type token struct {
	kind   tokenKind
	text   string
	offset int
}

type parser struct {
	src string
	pos int
	tok token
	err *ParseError
}

func (p *parser) fail(offset int, format string, args ...any) {
	if p.err == nil {
		p.err = &ParseError{Message: fmt.Sprintf(format, args...), Offset: offset}
	}
}

// next advances to the following token.
func (p *parser) next() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n' || p.src[p.pos] == '\r') {
		p.pos++
	}
	start := p.pos
	if p.pos >= len(p.src) {
		p.tok = token{kind: tokEOF, offset: start}
		return
	}

	c := p.src[p.pos]
	switch {
	case c >= '0' && c <= '9':
		for p.pos < len(p.src) && (isDigit(p.src[p.pos]) || p.src[p.pos] == '.') {
			p.pos++
		}
		p.tok = token{kind: tokNumber, text: p.src[start:p.pos], offset: start}
	case c == '"' || c == '\'':
		quote := c
		p.pos++
		var b strings.Builder
		for p.pos < len(p.src) && p.src[p.pos] != quote {
			if p.src[p.pos] == '\\' && p.pos+1 < len(p.src) {
				p.pos++
			}
			b.WriteByte(p.src[p.pos])
			p.pos++
		}
		if p.pos >= len(p.src) {
			p.fail(start, "unterminated string")
			p.tok = token{kind: tokEOF, offset: p.pos}
			return
		}
		p.pos++ // closing quote
		p.tok = token{kind: tokString, text: b.String(), offset: start}
	case isIdentStart(rune(c)):
		for p.pos < len(p.src) && isIdentPart(rune(p.src[p.pos])) {
			p.pos++
		}
		p.tok = token{kind: tokIdent, text: p.src[start:p.pos], offset: start}
	default:
		// Two-character operators first.
		if p.pos+1 < len(p.src) {
			two := p.src[p.pos : p.pos+2]
			switch two {
			case "==", "!=", "<=", ">=", "&&", "||":
				p.pos += 2
				p.tok = token{kind: tokPunct, text: two, offset: start}
				return
			}
		}
		p.pos++
		p.tok = token{kind: tokPunct, text: string(c), offset: start}
	}
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isIdentStart(r rune) bool { return r == '_' || unicode.IsLetter(r) }
func isIdentPart(r rune) bool  { return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) }

func (p *parser) is(text string) bool {
	return p.tok.kind == tokPunct && p.tok.text == text
}

func (p *parser) accept(text string) bool {
	if p.is(text) {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(text string) {
	if !p.accept(text) {
		p.fail(p.tok.offset, "expected %q, found %q", text, p.tok.text)
	}
}

func (p *parser) parseExpr() Expr {
	return p.parseTernary()
}

func (p *parser) parseTernary() Expr {
	cond := p.parseLogical()
	if p.err != nil {
		return nil
	}
	if p.accept("?") {
		then := p.parseExpr()
		p.expect(":")
		els := p.parseExpr()
		if p.err != nil {
			return nil
		}
		return &Ternary{Cond: cond, Then: then, Else: els}
	}
	return cond
}

func (p *parser) parseLogical() Expr {
	left := p.parseComparison()
	for p.err == nil && (p.is("&&") || p.is("||")) {
		op := OpAnd
		if p.tok.text == "||" {
			op = OpOr
		}
		p.next()
		right := p.parseComparison()
		left = &Binary{Op: op, Left: left, Right: right}
	}
	return left
}

var comparisonOps = map[string]BinaryOp{
	"==": OpEq, "!=": OpNeq, "<": OpLt, "<=": OpLte, ">": OpGt, ">=": OpGte,
}

func (p *parser) parseComparison() Expr {
	left := p.parseAdditive()
	for p.err == nil && p.tok.kind == tokPunct {
		op, ok := comparisonOps[p.tok.text]
		if !ok {
			break
		}
		p.next()
		right := p.parseAdditive()
		left = &Binary{Op: op, Left: left, Right: right}
	}
	return left
}

func (p *parser) parseAdditive() Expr {
	left := p.parseMultiplicative()
	for p.err == nil && (p.is("+") || p.is("-")) {
		op := OpAdd
		if p.tok.text == "-" {
			op = OpSub
		}
		p.next()
		right := p.parseMultiplicative()
		left = &Binary{Op: op, Left: left, Right: right}
	}
	return left
}

func (p *parser) parseMultiplicative() Expr {
	left := p.parsePrefix()
	for p.err == nil && (p.is("*") || p.is("/") || p.is("%")) {
		var op BinaryOp
		switch p.tok.text {
		case "*":
			op = OpMul
		case "/":
			op = OpDiv
		default:
			op = OpMod
		}
		p.next()
		right := p.parsePrefix()
		left = &Binary{Op: op, Left: left, Right: right}
	}
	return left
}

func (p *parser) parsePrefix() Expr {
	if p.accept("!") {
		return &Unary{Op: OpNot, Operand: p.parsePrefix()}
	}
	if p.accept("-") {
		return &Unary{Op: OpNeg, Operand: p.parsePrefix()}
	}
	if p.tok.kind == tokIdent && p.tok.text == "typeof" {
		p.next()
		return &Unary{Op: OpTypeof, Operand: p.parsePrefix()}
	}
	return p.parsePostfix()
}

// parsePostfix handles member access, computed access, and calls, which all
// bind tighter than any operator and chain left to right.
func (p *parser) parsePostfix() Expr {
	expr := p.parsePrimary()
	for p.err == nil {
		switch {
		case p.accept("."):
			if p.tok.kind != tokIdent {
				p.fail(p.tok.offset, "expected field name after '.'")
				return nil
			}
			field := p.tok.text
			p.next()
			if p.is("(") {
				args := p.parseArgs()
				expr = &MethodCall{Object: expr, Method: field, Args: args}
			} else {
				expr = &Member{Object: expr, Field: field}
			}
		case p.accept("["):
			key := p.parseExpr()
			p.expect("]")
			expr = &ComputedMember{Object: expr, Key: key}
		case p.is("("):
			ident, ok := expr.(*Ident)
			if !ok {
				p.fail(p.tok.offset, "only named functions can be called")
				return nil
			}
			args := p.parseArgs()
			expr = &Call{Function: ident.Name, Args: args}
		default:
			return expr
		}
	}
	return nil
}

func (p *parser) parseArgs() []Expr {
	p.expect("(")
	var args []Expr
	if !p.is(")") {
		for {
			args = append(args, p.parseExpr())
			if p.err != nil || !p.accept(",") {
				break
			}
		}
	}
	p.expect(")")
	return args
}

func (p *parser) parsePrimary() Expr {
	switch p.tok.kind {
	case tokNumber:
		text := p.tok.text
		offset := p.tok.offset
		p.next()
		if strings.Contains(text, ".") {
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				p.fail(offset, "invalid number %q", text)
				return nil
			}
			return Float(v)
		}
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			p.fail(offset, "invalid number %q", text)
			return nil
		}
		return Int(v)

	case tokString:
		s := p.tok.text
		p.next()
		return Str(s)

	case tokIdent:
		name := p.tok.text
		p.next()
		switch name {
		case "true":
			return Bool(true)
		case "false":
			return Bool(false)
		case "null":
			return Null()
		}
		return &Ident{Name: name}

	case tokPunct:
		switch p.tok.text {
		case "(":
			p.next()
			inner := p.parseExpr()
			p.expect(")")
			return inner
		case "[":
			p.next()
			var elems []Expr
			if !p.is("]") {
				for {
					elems = append(elems, p.parseExpr())
					if p.err != nil || !p.accept(",") {
						break
					}
				}
			}
			p.expect("]")
			return &Array{Elements: elems}
		case "{":
			return p.parseObject()
		}
	}
	p.fail(p.tok.offset, "unexpected %q", p.tok.text)
	return nil
}

func (p *parser) parseObject() Expr {
	p.expect("{")
	var fields []ObjectField
	if !p.is("}") {
		for {
			if p.tok.kind != tokIdent && p.tok.kind != tokString {
				p.fail(p.tok.offset, "expected object key")
				return nil
			}
			key := p.tok.text
			p.next()
			p.expect(":")
			value := p.parseExpr()
			if p.err != nil {
				return nil
			}
			fields = append(fields, ObjectField{Key: key, Value: value})
			if !p.accept(",") {
				break
			}
		}
	}
	p.expect("}")
	return &Object{Fields: fields}
}
