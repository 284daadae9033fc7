package ast

import "github.com/pkg/errors"

// Visitor handles every node type, threading a context value C (an
// environment, a printer) and producing R. Adding a node type adds a method
// here, so every consumer stops compiling until it handles it.
type Visitor[C, R any] interface {
	VisitVar(C, *Var) (R, error)
	VisitApp(C, *App) (R, error)
	VisitLit(C, *Lit) (R, error)
	VisitLam(C, *Lam) (R, error)
	VisitCond(C, *Cond) (R, error)
	VisitLet(C, *Let) (R, error)
	VisitLetRec(C, *LetRec) (R, error)
	VisitBinOp(C, *BinOp) (R, error)
	VisitUnOp(C, *UnOp) (R, error)
	VisitPair(C, *Pair) (R, error)
	VisitFix(C, *Fix) (R, error)
}

// Visit dispatches e to the matching method of v.
func Visit[C, R any](v Visitor[C, R], c C, e Expr) (R, error) {
	switch e := e.(type) {
	case *Var:
		return v.VisitVar(c, e)
	case *App:
		return v.VisitApp(c, e)
	case *Lit:
		return v.VisitLit(c, e)
	case *Lam:
		return v.VisitLam(c, e)
	case *Cond:
		return v.VisitCond(c, e)
	case *Let:
		return v.VisitLet(c, e)
	case *LetRec:
		return v.VisitLetRec(c, e)
	case *BinOp:
		return v.VisitBinOp(c, e)
	case *UnOp:
		return v.VisitUnOp(c, e)
	case *Pair:
		return v.VisitPair(c, e)
	case *Fix:
		return v.VisitFix(c, e)
	default:
		var zero R
		return zero, errors.Errorf("unknown expression %T", e)
	}
}
