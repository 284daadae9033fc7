package syntax

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vito/hml/pkg/ast"
)

// Parse parses a single top-level expression.
func Parse(src string) (ast.Expr, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// ParseTokens parses a token stream produced by Tokenize.
func ParseTokens(tokens []Token) (ast.Expr, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != EOF {
		return nil, errors.Errorf("token stream must end with EOF")
	}
	p := &parser{tokens: tokens}
	expr, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(EOF); err != nil {
		return nil, err
	}
	return expr, nil
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != EOF {
		p.pos++
	}
	return tok
}

func (p *parser) accept(kind Kind) bool {
	if p.peek().Kind == kind {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(kind Kind) (Token, error) {
	tok := p.peek()
	if tok.Kind != kind {
		return tok, p.unexpected(describe(kind))
	}
	return p.advance(), nil
}

func (p *parser) unexpected(wanted string) error {
	tok := p.peek()
	return errors.WithStack(&SyntaxError{
		Pos: tok.Pos,
		Msg: fmt.Sprintf("unexpected %s, expected %s", tok, wanted),
	})
}

func describe(kind Kind) string {
	switch kind {
	case EOF:
		return "end of input"
	case IDEN:
		return "identifier"
	case LIT:
		return "literal"
	}
	for text, k := range keywords {
		if k == kind {
			return strconv.Quote(text)
		}
	}
	for ch, k := range symbols {
		if k == kind {
			return strconv.Quote(string(ch))
		}
	}
	return kind.String()
}

func (p *parser) expr() (ast.Expr, error) {
	switch p.peek().Kind {
	case LET:
		return p.let()
	case IF:
		return p.cond()
	case LAM:
		return p.lambda()
	default:
		return p.or()
	}
}

// let parses "let [rec] name params* = value [in body]".
func (p *parser) let() (ast.Expr, error) {
	p.advance()
	rec := p.accept(REC)
	name, err := p.expect(IDEN)
	if err != nil {
		return nil, err
	}
	var params []string
	for p.peek().Kind == IDEN {
		params = append(params, p.advance().Text)
	}
	if _, err := p.expect(EQ); err != nil {
		return nil, err
	}
	value, err := p.expr()
	if err != nil {
		return nil, err
	}
	var body ast.Expr
	if p.accept(IN) {
		body, err = p.expr()
		if err != nil {
			return nil, err
		}
	}
	if rec {
		return &ast.LetRec{Name: name.Text, Params: params, Value: value, Body: body}, nil
	}
	return &ast.Let{Name: name.Text, Value: ast.Lams(params, value), Body: body}, nil
}

func (p *parser) cond() (ast.Expr, error) {
	p.advance()
	cond, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(THEN); err != nil {
		return nil, err
	}
	then, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ELSE); err != nil {
		return nil, err
	}
	els, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &ast.Cond{Cond: cond, Then: then, Else: els}, nil
}

// lambda parses "\x y z. body" into nested single-parameter abstractions.
func (p *parser) lambda() (ast.Expr, error) {
	p.advance()
	first, err := p.expect(IDEN)
	if err != nil {
		return nil, err
	}
	params := []string{first.Text}
	for p.peek().Kind == IDEN {
		params = append(params, p.advance().Text)
	}
	if _, err := p.expect(BODY); err != nil {
		return nil, err
	}
	body, err := p.expr()
	if err != nil {
		return nil, err
	}
	return ast.Lams(params, body), nil
}

var binOps = map[Kind]ast.Op{
	OR:  ast.OR,
	AND: ast.AND,
	GT:  ast.GT,
	LT:  ast.LT,
	EQ:  ast.EQ,
	ADD: ast.ADD,
	SUB: ast.SUB,
	MUL: ast.MUL,
	DIV: ast.DIV,
}

// leftAssoc parses operand (op operand)* for the given operator tokens.
func (p *parser) leftAssoc(operand func() (ast.Expr, error), kinds ...Kind) (ast.Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for p.peekAny(kinds...) {
		op := binOps[p.advance().Kind]
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) peekAny(kinds ...Kind) bool {
	next := p.peek().Kind
	for _, kind := range kinds {
		if next == kind {
			return true
		}
	}
	return false
}

func (p *parser) or() (ast.Expr, error) {
	return p.leftAssoc(p.and, OR)
}

func (p *parser) and() (ast.Expr, error) {
	return p.leftAssoc(p.cmp, AND)
}

// cmp parses a single, non-associative comparison.
func (p *parser) cmp() (ast.Expr, error) {
	left, err := p.add()
	if err != nil {
		return nil, err
	}
	if !p.peekAny(GT, LT, EQ) {
		return left, nil
	}
	op := binOps[p.advance().Kind]
	right, err := p.add()
	if err != nil {
		return nil, err
	}
	return &ast.BinOp{Op: op, Left: left, Right: right}, nil
}

func (p *parser) add() (ast.Expr, error) {
	return p.leftAssoc(p.mul, ADD, SUB)
}

func (p *parser) mul() (ast.Expr, error) {
	return p.leftAssoc(p.unary, MUL, DIV)
}

func (p *parser) unary() (ast.Expr, error) {
	var op ast.Op
	switch p.peek().Kind {
	case NOT:
		op = ast.NOT
	case SUB:
		op = ast.NEG
	default:
		return p.app()
	}
	p.advance()
	operand, err := p.unary()
	if err != nil {
		return nil, err
	}
	return &ast.UnOp{Op: op, Operand: operand}, nil
}

// app parses a head followed by atoms, allowing a trailing lambda as the
// final argument.
func (p *parser) app() (ast.Expr, error) {
	var fn ast.Expr
	if p.accept(FIX) {
		arg, err := p.atom()
		if err != nil {
			return nil, err
		}
		fn = &ast.Fix{Expr: arg}
	} else {
		var err error
		fn, err = p.atom()
		if err != nil {
			return nil, err
		}
	}
	for {
		switch p.peek().Kind {
		case LIT, IDEN, LPAREN:
			arg, err := p.atom()
			if err != nil {
				return nil, err
			}
			fn = &ast.App{Fn: fn, Arg: arg}
		case LAM:
			arg, err := p.lambda()
			if err != nil {
				return nil, err
			}
			return &ast.App{Fn: fn, Arg: arg}, nil
		default:
			return fn, nil
		}
	}
}

func (p *parser) atom() (ast.Expr, error) {
	tok := p.peek()
	switch tok.Kind {
	case LIT:
		p.advance()
		switch v := tok.Value.(type) {
		case int:
			return ast.Int(v), nil
		case bool:
			return ast.Bool(v), nil
		default:
			return nil, errors.Errorf("invalid literal %v", tok.Value)
		}
	case IDEN:
		p.advance()
		return &ast.Var{Name: tok.Text}, nil
	case LPAREN:
		p.advance()
		if p.accept(RPAREN) {
			return ast.Unit(), nil
		}
		first, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.accept(COMMA) {
			second, err := p.expr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(RPAREN); err != nil {
				return nil, err
			}
			return &ast.Pair{First: first, Second: second}, nil
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return first, nil
	default:
		return nil, p.unexpected("an expression")
	}
}
