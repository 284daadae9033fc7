package infer

import (
	"github.com/pkg/errors"
	"github.com/vito/hml/pkg/ast"
	"github.com/vito/hml/pkg/hm"
)

// rules holds the inference rule for each expression type.
type rules struct {
	*Inferer
}

var _ ast.Visitor[*TypeEnv, hm.Type] = rules{}

func (r rules) VisitLit(_ *TypeEnv, e *ast.Lit) (hm.Type, error) {
	switch e.Kind {
	case ast.IntLit:
		return hm.Int, nil
	case ast.BoolLit:
		return hm.Bool, nil
	case ast.UnitLit:
		return hm.Unit, nil
	default:
		return nil, errors.Errorf("unknown literal kind %d", e.Kind)
	}
}

func (r rules) VisitVar(env *TypeEnv, e *ast.Var) (hm.Type, error) {
	sc, err := env.Lookup(e.Name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return hm.Instantiate(r, sc), nil
}

func (r rules) VisitCond(env *TypeEnv, e *ast.Cond) (hm.Type, error) {
	cond, err := r.infer(env, e.Cond)
	if err != nil {
		return nil, err
	}
	then, err := r.infer(env, e.Then)
	if err != nil {
		return nil, err
	}
	els, err := r.infer(env, e.Else)
	if err != nil {
		return nil, err
	}
	if err := r.unify(cond, hm.Bool); err != nil {
		return nil, err
	}
	if err := r.unify(then, els); err != nil {
		return nil, err
	}
	return r.subs.Apply(then), nil
}

func (r rules) VisitLam(env *TypeEnv, e *ast.Lam) (hm.Type, error) {
	tv := r.Fresh()
	child := env.Child()
	child.Set(e.Param, hm.Mono(tv))
	body, err := r.infer(child, e.Body)
	if err != nil {
		return nil, err
	}
	return r.subs.Apply(hm.NewFnType(tv, body)), nil
}

func (r rules) VisitApp(env *TypeEnv, e *ast.App) (hm.Type, error) {
	fn, err := r.infer(env, e.Fn)
	if err != nil {
		return nil, err
	}
	r.applyEnv(env)
	arg, err := r.infer(env, e.Arg)
	if err != nil {
		return nil, err
	}
	ret := r.Fresh()
	if err := r.unify(r.subs.Apply(fn), hm.NewFnType(arg, ret)); err != nil {
		return nil, err
	}
	return r.subs.Apply(ret), nil
}

func (r rules) VisitLet(env *TypeEnv, e *ast.Let) (hm.Type, error) {
	if env.Has(e.Name) {
		return nil, errors.WithStack(&hm.RedefinitionError{Name: e.Name})
	}
	t, err := r.infer(env, e.Value)
	if err != nil {
		return nil, err
	}
	return r.bind(env, e.Name, r.generalize(env, t), e.Body)
}

// VisitLetRec binds the name to a monomorphic variable while inferring its
// own definition, then generalizes once the definition is known.
func (r rules) VisitLetRec(env *TypeEnv, e *ast.LetRec) (hm.Type, error) {
	if env.Has(e.Name) {
		return nil, errors.WithStack(&hm.RedefinitionError{Name: e.Name})
	}
	self := r.Fresh()
	rec := env.Child()
	rec.Set(e.Name, hm.Mono(self))
	t, err := r.infer(rec, ast.Lams(e.Params, e.Value))
	if err != nil {
		return nil, err
	}
	if err := r.unify(self, t); err != nil {
		return nil, err
	}
	return r.bind(env, e.Name, r.generalize(env, t), e.Body)
}

func (r rules) VisitBinOp(env *TypeEnv, e *ast.BinOp) (hm.Type, error) {
	if e.Op.Unary() {
		return nil, errors.Errorf("operator %s takes one operand", e.Op)
	}
	left, err := r.infer(env, e.Left)
	if err != nil {
		return nil, err
	}
	right, err := r.infer(env, e.Right)
	if err != nil {
		return nil, err
	}
	opType, err := OpType(e.Op)
	if err != nil {
		return nil, err
	}
	ret := r.Fresh()
	actual := hm.NewFnTypes(ret, left, right)
	if err := r.unify(actual, hm.Instantiate(r, opType)); err != nil {
		return nil, err
	}
	return r.subs.Apply(ret), nil
}

func (r rules) VisitUnOp(env *TypeEnv, e *ast.UnOp) (hm.Type, error) {
	if !e.Op.Unary() {
		return nil, errors.Errorf("operator %s takes two operands", e.Op)
	}
	operand, err := r.infer(env, e.Operand)
	if err != nil {
		return nil, err
	}
	opType, err := OpType(e.Op)
	if err != nil {
		return nil, err
	}
	ret := r.Fresh()
	if err := r.unify(hm.NewFnType(operand, ret), hm.Instantiate(r, opType)); err != nil {
		return nil, err
	}
	return r.subs.Apply(ret), nil
}

// VisitPair types a pair as a function awaiting a selector:
// (fst -> snd -> r) -> r.
func (r rules) VisitPair(env *TypeEnv, e *ast.Pair) (hm.Type, error) {
	fst, err := r.infer(env, e.First)
	if err != nil {
		return nil, err
	}
	snd, err := r.infer(env, e.Second)
	if err != nil {
		return nil, err
	}
	ret := r.Fresh()
	return r.subs.Apply(hm.NewFnType(hm.NewFnTypes(ret, fst, snd), ret)), nil
}

func (r rules) VisitFix(env *TypeEnv, e *ast.Fix) (hm.Type, error) {
	t, err := r.infer(env, e.Expr)
	if err != nil {
		return nil, err
	}
	tv := r.Fresh()
	if err := r.unify(hm.NewFnType(tv, tv), t); err != nil {
		return nil, err
	}
	return r.subs.Apply(tv), nil
}
