package eval

import (
	"context"
	"fmt"

	"github.com/vito/hml/pkg/hm"
	"github.com/vito/hml/pkg/ioctx"
)

var anyType = hm.TypeVariable("a")

// Builtins returns the primitive functions available to every session.
func Builtins() []*Builtin {
	return []*Builtin{
		{
			Name:   "trace",
			Scheme: hm.NewScheme([]hm.TypeVariable{anyType}, hm.NewFnType(anyType, anyType)),
			Fn: func(ctx context.Context, ev *Evaluator, arg Value) (Value, error) {
				val, err := ev.Force(ctx, arg)
				if err != nil {
					return nil, err
				}
				_, _ = fmt.Fprintln(ioctx.StdoutFromContext(ctx), val)
				return val, nil
			},
		},
		{
			Name:   "print",
			Scheme: hm.NewScheme([]hm.TypeVariable{anyType}, hm.NewFnType(anyType, hm.Unit)),
			Fn: func(ctx context.Context, ev *Evaluator, arg Value) (Value, error) {
				val, err := ev.Force(ctx, arg)
				if err != nil {
					return nil, err
				}
				_, _ = fmt.Fprintln(ioctx.StdoutFromContext(ctx), val)
				return UnitValue{}, nil
			},
		},
	}
}
