package ast

import (
	"fmt"
	"strings"
)

const (
	precExpr = iota
	precOr
	precAnd
	precCmp
	precAdd
	precMul
	precUnary
	precApp
	precAtom
)

func binPrec(op Op) int {
	switch op {
	case OR:
		return precOr
	case AND:
		return precAnd
	case GT, LT, EQ:
		return precCmp
	case ADD, SUB:
		return precAdd
	default:
		return precMul
	}
}

// printer renders source text that parses back to the same tree. The
// context value is the precedence the surrounding syntax requires.
type printer struct{}

var _ Visitor[int, string] = printer{}

func show(e Expr, prec int) string {
	s, err := Visit[int, string](printer{}, prec, e)
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return s
}

func paren(need, have int, s string) string {
	if have < need {
		return "(" + s + ")"
	}
	return s
}

func (printer) VisitVar(_ int, e *Var) (string, error) {
	return e.Name, nil
}

func (printer) VisitLit(_ int, e *Lit) (string, error) {
	if e.Kind == UnitLit {
		return "()", nil
	}
	return fmt.Sprint(e.Val), nil
}

func (printer) VisitApp(prec int, e *App) (string, error) {
	return paren(prec, precApp, show(e.Fn, precApp)+" "+show(e.Arg, precAtom)), nil
}

func (printer) VisitLam(prec int, e *Lam) (string, error) {
	params := []string{e.Param}
	body := e.Body
	for {
		inner, ok := body.(*Lam)
		if !ok {
			break
		}
		params = append(params, inner.Param)
		body = inner.Body
	}
	s := `\` + strings.Join(params, " ") + ". " + show(body, precExpr)
	return paren(prec, precExpr, s), nil
}

func (printer) VisitCond(prec int, e *Cond) (string, error) {
	s := fmt.Sprintf("if %s then %s else %s",
		show(e.Cond, precExpr), show(e.Then, precExpr), show(e.Else, precExpr))
	return paren(prec, precExpr, s), nil
}

func (printer) VisitLet(prec int, e *Let) (string, error) {
	s := fmt.Sprintf("let %s = %s", e.Name, show(e.Value, precExpr))
	if e.Body != nil {
		s += " in " + show(e.Body, precExpr)
	}
	return paren(prec, precExpr, s), nil
}

func (printer) VisitLetRec(prec int, e *LetRec) (string, error) {
	head := append([]string{"let rec", e.Name}, e.Params...)
	s := fmt.Sprintf("%s = %s", strings.Join(head, " "), show(e.Value, precExpr))
	if e.Body != nil {
		s += " in " + show(e.Body, precExpr)
	}
	return paren(prec, precExpr, s), nil
}

func (printer) VisitBinOp(prec int, e *BinOp) (string, error) {
	p := binPrec(e.Op)
	left, right := p, p+1
	if p == precCmp {
		left = precAdd
		right = precAdd
	}
	s := show(e.Left, left) + " " + e.Op.Symbol() + " " + show(e.Right, right)
	return paren(prec, p, s), nil
}

func (printer) VisitUnOp(prec int, e *UnOp) (string, error) {
	operand := show(e.Operand, precUnary)
	var s string
	if e.Op == NOT || strings.HasPrefix(operand, "-") {
		s = e.Op.Symbol() + " " + operand
	} else {
		s = e.Op.Symbol() + operand
	}
	return paren(prec, precUnary, s), nil
}

func (printer) VisitPair(_ int, e *Pair) (string, error) {
	return fmt.Sprintf("(%s, %s)", show(e.First, precExpr), show(e.Second, precExpr)), nil
}

func (printer) VisitFix(prec int, e *Fix) (string, error) {
	return paren(prec, precApp, "fix "+show(e.Expr, precAtom)), nil
}

func (e *Var) String() string    { return show(e, precExpr) }
func (e *App) String() string    { return show(e, precExpr) }
func (e *Lit) String() string    { return show(e, precExpr) }
func (e *Lam) String() string    { return show(e, precExpr) }
func (e *Cond) String() string   { return show(e, precExpr) }
func (e *Let) String() string    { return show(e, precExpr) }
func (e *LetRec) String() string { return show(e, precExpr) }
func (e *BinOp) String() string  { return show(e, precExpr) }
func (e *UnOp) String() string   { return show(e, precExpr) }
func (e *Pair) String() string   { return show(e, precExpr) }
func (e *Fix) String() string    { return show(e, precExpr) }
