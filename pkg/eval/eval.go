// Package eval is a tree-walking evaluator for ast expressions, run under a
// call-by-value, call-by-name or call-by-need strategy.
package eval

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/vito/hml/pkg/ast"
)

// DefaultMaxDepth bounds the nesting of evaluation.
const DefaultMaxDepth = 100000

// Evaluator reduces expressions under a fixed Strategy. It does no type
// checking; callers infer first.
type Evaluator struct {
	strategy Strategy
	maxDepth int

	depth int
}

type Option func(*Evaluator)

// WithMaxDepth limits how deeply evaluation may nest before failing. Zero or
// less disables the limit.
func WithMaxDepth(depth int) Option {
	return func(ev *Evaluator) {
		ev.maxDepth = depth
	}
}

func New(strategy Strategy, opts ...Option) *Evaluator {
	ev := &Evaluator{
		strategy: strategy,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(ev)
	}
	slog.Debug("new evaluator", "strategy", strategy, "maxDepth", ev.maxDepth)
	return ev
}

func (ev *Evaluator) Strategy() Strategy {
	return ev.strategy
}

// Evaluate reduces expr in env. A body-less Let or LetRec installs its
// binding into env.
func (ev *Evaluator) Evaluate(ctx context.Context, env *Frame, expr ast.Expr) (Value, error) {
	if expr == nil {
		return nil, errors.Errorf("cannot evaluate a nil expression")
	}
	ev.depth = 0
	val, err := ev.eval(ctx, env, expr)
	if err != nil {
		return nil, err
	}
	return ev.Force(ctx, val)
}

// Force resolves a thunk according to the strategy: re-evaluated under
// call-by-name, memoized otherwise. Other values are returned as-is.
func (ev *Evaluator) Force(ctx context.Context, val Value) (Value, error) {
	th, ok := val.(*Thunk)
	if !ok {
		return val, nil
	}
	if ev.strategy == CallByName {
		return th.Value(ctx, ev)
	}
	return th.Reduce(ctx, ev)
}

// Apply calls fn with arg, forcing fn first.
func (ev *Evaluator) Apply(ctx context.Context, fn, arg Value) (Value, error) {
	callable, err := ev.callable(ctx, nil, fn)
	if err != nil {
		return nil, err
	}
	return callable.Call(ctx, ev, arg)
}

func (ev *Evaluator) callable(ctx context.Context, expr ast.Expr, val Value) (Callable, error) {
	val, err := ev.Force(ctx, val)
	if err != nil {
		return nil, err
	}
	fn, ok := val.(Callable)
	if !ok {
		return nil, errors.WithStack(&RuntimeError{
			Expr: expr,
			Msg:  fmt.Sprintf("cannot apply non-function value %s", val),
		})
	}
	return fn, nil
}

func (ev *Evaluator) eval(ctx context.Context, env *Frame, expr ast.Expr) (Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	ev.depth++
	defer func() { ev.depth-- }()
	if ev.maxDepth > 0 && ev.depth > ev.maxDepth {
		return nil, errors.WithStack(&RuntimeError{
			Expr: expr,
			Msg:  fmt.Sprintf("maximum evaluation depth of %d exceeded", ev.maxDepth),
		})
	}
	return ast.Visit[*Frame, Value](rules{ev: ev, ctx: ctx}, env, expr)
}

// bind evaluates or suspends a let-bound expression.
func (ev *Evaluator) bind(ctx context.Context, env *Frame, expr ast.Expr) (Value, error) {
	if ev.strategy.Lazy() {
		return NewThunk(expr, env), nil
	}
	return ev.eval(ctx, env, expr)
}

// RuntimeError is raised when evaluation applies a non-function, an
// operator receives operands of the wrong shape, or a limit is hit.
type RuntimeError struct {
	Expr ast.Expr
	Msg  string
}

func (e *RuntimeError) Error() string {
	return e.Msg
}
