// Package infer implements Hindley-Milner type inference with
// let-polymorphism over ast expressions.
package infer

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/vito/hml/pkg/ast"
	"github.com/vito/hml/pkg/env"
	"github.com/vito/hml/pkg/hm"
)

// TypeEnv binds names to type schemes.
type TypeEnv = env.Env[*hm.Scheme]

// NewTypeEnv returns an empty root type environment.
func NewTypeEnv() *TypeEnv {
	return env.New[*hm.Scheme]()
}

// Infer infers the type of expr in env with a fresh Inferer.
func Infer(env *TypeEnv, expr ast.Expr) (*hm.Scheme, error) {
	return New().Infer(env, expr)
}

// TypeOf infers the type of expr in env and prints it.
func TypeOf(env *TypeEnv, expr ast.Expr) (string, error) {
	return New().TypeOf(env, expr)
}

// Inferer owns the substitution and name supply of one inference run. Both
// are reset at the start of every Infer call, so one Inferer can be reused
// across top-level inputs.
type Inferer struct {
	// Style controls how TypeOf prints.
	Style hm.PrintStyle

	subs     hm.Subs
	names    *hm.NameSupply
	declared *hm.Scheme
}

var _ hm.Fresher = (*Inferer)(nil)

func New() *Inferer {
	return &Inferer{
		subs:  hm.NewSubs(),
		names: hm.NewNameSupply(),
	}
}

// Fresh returns the next unused type variable.
func (infer *Inferer) Fresh() hm.TypeVariable {
	return infer.names.Fresh()
}

// Subs returns the substitution built by the last run.
func (infer *Inferer) Subs() hm.Subs {
	return infer.subs
}

// Infer returns the principal type of expr. A body-less Let or LetRec
// installs its binding into env and returns the generalized scheme; any
// other expression yields its monotype wrapped in a scheme.
func (infer *Inferer) Infer(env *TypeEnv, expr ast.Expr) (*hm.Scheme, error) {
	if expr == nil {
		return nil, errors.Errorf("cannot infer a nil expression")
	}

	infer.subs = hm.NewSubs()
	infer.names.Reset()
	infer.declared = nil

	t, err := infer.infer(env, expr)
	if err != nil {
		return nil, err
	}

	if ast.IsDecl(expr) && infer.declared != nil {
		return infer.declared, nil
	}

	return hm.Mono(infer.subs.Apply(t)), nil
}

// TypeOf infers expr and prints its type with variables renamed in order of
// appearance.
func (infer *Inferer) TypeOf(env *TypeEnv, expr ast.Expr) (string, error) {
	sc, err := infer.Infer(env, expr)
	if err != nil {
		return "", err
	}
	return infer.Style.Scheme(sc.Normalize()), nil
}

func (infer *Inferer) infer(env *TypeEnv, expr ast.Expr) (hm.Type, error) {
	t, err := ast.Visit[*TypeEnv, hm.Type](rules{infer}, env, expr)
	if err != nil {
		var typeErr *TypeError
		if !errors.As(err, &typeErr) {
			err = &TypeError{Expr: expr, Err: err}
		}
		return nil, err
	}
	return t, nil
}

func (infer *Inferer) unify(t1, t2 hm.Type) error {
	return infer.subs.Unify(t1, t2)
}

// applyEnv propagates the current substitution through every frame of env.
func (infer *Inferer) applyEnv(env *TypeEnv) {
	for frame := range env.Frames() {
		frame.Update(func(_ string, sc *hm.Scheme) *hm.Scheme {
			return infer.subs.ApplyScheme(sc)
		})
	}
}

// generalize closes t over the variables not free in env.
func (infer *Inferer) generalize(env *TypeEnv, t hm.Type) *hm.Scheme {
	infer.applyEnv(env)
	return hm.Generalize(scope{env: env, subs: infer.subs}, infer.subs.Apply(t))
}

// bind installs a let-bound scheme: into env itself for declarations,
// otherwise into a child frame in which body is inferred.
func (infer *Inferer) bind(env *TypeEnv, name string, sc *hm.Scheme, body ast.Expr) (hm.Type, error) {
	if body == nil {
		env.Set(name, sc)
		infer.declared = sc
		slog.Debug("declared", "name", name, "type", sc)
		return hm.Instantiate(infer, sc), nil
	}
	child := env.Child()
	child.Set(name, sc)
	return infer.infer(child, body)
}

// scope presents a type environment chain, seen through a substitution, as
// an hm.Env.
type scope struct {
	env  *TypeEnv
	subs hm.Subs
}

func (s scope) FreeTypeVar() hm.TypeVarSet {
	var ftv hm.TypeVarSet
	for frame := range s.env.Frames() {
		for _, sc := range frame.Bindings() {
			ftv = ftv.Union(s.subs.ApplyScheme(sc).FreeTypeVar())
		}
	}
	return ftv
}
