package eval

import (
	"context"
	"log/slog"

	"github.com/vito/hml/pkg/ast"
)

// Thunk is a suspended expression and the frame it was created in.
type Thunk struct {
	expr ast.Expr
	env  *Frame

	reduced bool
	val     Value
}

func NewThunk(expr ast.Expr, env *Frame) *Thunk {
	return &Thunk{expr: expr, env: env}
}

// Value evaluates the suspended expression without caching the result. It
// re-evaluates even after Reduce, so a session switched to call-by-name
// repeats work for thunks created under call-by-need.
func (t *Thunk) Value(ctx context.Context, ev *Evaluator) (Value, error) {
	return ev.eval(ctx, t.env, t.expr)
}

// Reduce evaluates the suspended expression once. Later calls return the
// cached result.
func (t *Thunk) Reduce(ctx context.Context, ev *Evaluator) (Value, error) {
	if t.reduced {
		return t.val, nil
	}
	val, err := ev.eval(ctx, t.env, t.expr)
	if err != nil {
		return nil, err
	}
	slog.Debug("reduced thunk", "expr", t.expr, "value", val)
	t.val = val
	t.reduced = true
	return val, nil
}

// Reduced reports whether Reduce has completed.
func (t *Thunk) Reduced() bool {
	return t.reduced
}

func (t *Thunk) String() string {
	return "<thunk>"
}
