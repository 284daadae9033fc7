package eval

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vito/hml/pkg/ast"
	"github.com/vito/hml/pkg/env"
	"github.com/vito/hml/pkg/hm"
)

// Value is the result of evaluation.
type Value interface {
	String() string
}

// Callable is a value that can be applied to one argument.
type Callable interface {
	Value
	Call(ctx context.Context, ev *Evaluator, arg Value) (Value, error)
}

// Frame binds names to values, or to thunks under the lazy strategies.
type Frame = env.Env[Value]

// NewFrame returns an empty global frame.
func NewFrame() *Frame {
	return env.New[Value]()
}

type IntValue struct {
	Val int
}

func (i IntValue) String() string {
	return strconv.Itoa(i.Val)
}

type BoolValue struct {
	Val bool
}

func (b BoolValue) String() string {
	return strconv.FormatBool(b.Val)
}

type UnitValue struct{}

func (UnitValue) String() string {
	return "()"
}

// Closure is a lambda together with the frame it was created in.
type Closure struct {
	Param string
	Body  ast.Expr
	Env   *Frame
}

var _ Callable = (*Closure)(nil)

func (c *Closure) Call(ctx context.Context, ev *Evaluator, arg Value) (Value, error) {
	frame := c.Env.Child()
	frame.Set(c.Param, arg)
	return ev.eval(ctx, frame, c.Body)
}

// String distinguishes top-level functions from ones that captured a local
// frame.
func (c *Closure) String() string {
	if c.Env.IsRoot() {
		return "<lambda>"
	}
	return "<closure>"
}

// PairValue is a Church pair: calling it with a selector f yields f First
// Second.
type PairValue struct {
	First  Value
	Second Value
}

var _ Callable = (*PairValue)(nil)

func (p *PairValue) Call(ctx context.Context, ev *Evaluator, selector Value) (Value, error) {
	partial, err := ev.Apply(ctx, selector, p.First)
	if err != nil {
		return nil, err
	}
	return ev.Apply(ctx, partial, p.Second)
}

func (p *PairValue) String() string {
	return fmt.Sprintf("(%s, %s)", p.First, p.Second)
}

// Builtin is a primitive function implemented in Go.
type Builtin struct {
	Name   string
	Scheme *hm.Scheme
	Fn     func(ctx context.Context, ev *Evaluator, arg Value) (Value, error)
}

var _ Callable = (*Builtin)(nil)

func (b *Builtin) Call(ctx context.Context, ev *Evaluator, arg Value) (Value, error) {
	return b.Fn(ctx, ev, arg)
}

func (b *Builtin) String() string {
	return "<builtin " + b.Name + ">"
}
