package eval

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/vito/hml/pkg/ast"
)

// rules holds the reduction rule for each expression type.
type rules struct {
	ev  *Evaluator
	ctx context.Context
}

var _ ast.Visitor[*Frame, Value] = rules{}

func (r rules) VisitLit(_ *Frame, e *ast.Lit) (Value, error) {
	switch e.Kind {
	case ast.IntLit:
		return IntValue{Val: e.Val.(int)}, nil
	case ast.BoolLit:
		return BoolValue{Val: e.Val.(bool)}, nil
	default:
		return UnitValue{}, nil
	}
}

func (r rules) VisitVar(env *Frame, e *ast.Var) (Value, error) {
	val, err := env.Lookup(e.Name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return r.ev.Force(r.ctx, val)
}

func (r rules) VisitCond(env *Frame, e *ast.Cond) (Value, error) {
	cond, err := r.ev.eval(r.ctx, env, e.Cond)
	if err != nil {
		return nil, err
	}
	b, ok := cond.(BoolValue)
	if !ok {
		return nil, errors.WithStack(&RuntimeError{
			Expr: e,
			Msg:  fmt.Sprintf("condition must be a bool, got %s", cond),
		})
	}
	if b.Val {
		return r.ev.eval(r.ctx, env, e.Then)
	}
	return r.ev.eval(r.ctx, env, e.Else)
}

func (r rules) VisitLam(env *Frame, e *ast.Lam) (Value, error) {
	return &Closure{Param: e.Param, Body: e.Body, Env: env}, nil
}

func (r rules) VisitApp(env *Frame, e *ast.App) (Value, error) {
	fnVal, err := r.ev.eval(r.ctx, env, e.Fn)
	if err != nil {
		return nil, err
	}
	fn, err := r.ev.callable(r.ctx, e, fnVal)
	if err != nil {
		return nil, err
	}
	var arg Value
	if r.ev.strategy.Lazy() {
		arg = NewThunk(e.Arg, env)
	} else {
		arg, err = r.ev.eval(r.ctx, env, e.Arg)
		if err != nil {
			return nil, err
		}
	}
	return fn.Call(r.ctx, r.ev, arg)
}

// VisitLet suspends the bound expression under the lazy strategies, so it
// is shared like an argument would be. Declarations are always evaluated
// eagerly.
func (r rules) VisitLet(env *Frame, e *ast.Let) (Value, error) {
	if e.IsDecl() {
		val, err := r.ev.eval(r.ctx, env, e.Value)
		if err != nil {
			return nil, err
		}
		env.Set(e.Name, val)
		slog.Debug("declared", "name", e.Name, "value", val)
		return val, nil
	}
	val, err := r.ev.bind(r.ctx, env, e.Value)
	if err != nil {
		return nil, err
	}
	child := env.Child()
	child.Set(e.Name, val)
	return r.ev.eval(r.ctx, child, e.Body)
}

// VisitLetRec binds the name inside the frame its own definition closes
// over.
func (r rules) VisitLetRec(env *Frame, e *ast.LetRec) (Value, error) {
	frame := env
	if !e.IsDecl() {
		frame = env.Child()
	}

	var val Value
	if len(e.Params) > 0 {
		val = &Closure{
			Param: e.Params[0],
			Body:  ast.Lams(e.Params[1:], e.Value),
			Env:   frame,
		}
		frame.Set(e.Name, val)
	} else {
		th := NewThunk(e.Value, frame)
		frame.Set(e.Name, th)
		var err error
		val, err = r.ev.Force(r.ctx, th)
		if err != nil {
			return nil, err
		}
	}

	if e.IsDecl() {
		slog.Debug("declared", "name", e.Name, "value", val)
		return val, nil
	}
	return r.ev.eval(r.ctx, frame, e.Body)
}

func (r rules) VisitBinOp(env *Frame, e *ast.BinOp) (Value, error) {
	left, err := r.ev.eval(r.ctx, env, e.Left)
	if err != nil {
		return nil, err
	}
	right, err := r.ev.eval(r.ctx, env, e.Right)
	if err != nil {
		return nil, err
	}
	return binary(e, left, right)
}

func (r rules) VisitUnOp(env *Frame, e *ast.UnOp) (Value, error) {
	operand, err := r.ev.eval(r.ctx, env, e.Operand)
	if err != nil {
		return nil, err
	}
	return unary(e, operand)
}

// VisitPair evaluates both components when the pair is built.
func (r rules) VisitPair(env *Frame, e *ast.Pair) (Value, error) {
	first, err := r.ev.eval(r.ctx, env, e.First)
	if err != nil {
		return nil, err
	}
	second, err := r.ev.eval(r.ctx, env, e.Second)
	if err != nil {
		return nil, err
	}
	return &PairValue{First: first, Second: second}, nil
}

// VisitFix applies the operand to a suspended copy of the fixpoint itself,
// so the recursion unfolds only when the operand forces its argument.
func (r rules) VisitFix(env *Frame, e *ast.Fix) (Value, error) {
	fnVal, err := r.ev.eval(r.ctx, env, e.Expr)
	if err != nil {
		return nil, err
	}
	fn, err := r.ev.callable(r.ctx, e, fnVal)
	if err != nil {
		return nil, err
	}
	slog.Debug("unfolding fixpoint", "expr", e.Expr)
	return fn.Call(r.ctx, r.ev, NewThunk(e, env))
}
