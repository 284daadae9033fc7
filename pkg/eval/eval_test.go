package eval_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/hml/pkg/ast"
	"github.com/vito/hml/pkg/env"
	"github.com/vito/hml/pkg/eval"
	"github.com/vito/hml/pkg/ioctx"
	"github.com/vito/hml/pkg/syntax"
)

func parse(t *testing.T, src string) ast.Expr {
	t.Helper()
	expr, err := syntax.Parse(src)
	require.NoError(t, err)
	return expr
}

func newFrame() *eval.Frame {
	frame := eval.NewFrame()
	for _, b := range eval.Builtins() {
		frame.Set(b.Name, b)
	}
	return frame
}

func run(t *testing.T, strategy eval.Strategy, src string) (eval.Value, error) {
	t.Helper()
	return eval.New(strategy).Evaluate(context.Background(), newFrame(), parse(t, src))
}

func TestEvaluate(t *testing.T) {
	for _, tc := range []struct {
		src      string
		expected string
	}{
		{`1 + 2 * 3`, "7"},
		{`7 / 2`, "3"},
		{`-7 / 2`, "-3"},
		{`1 - -1`, "2"},
		{`not true or false`, "false"},
		{`true and true`, "true"},
		{`3 > 2`, "true"},
		{`3 < 2`, "false"},
		{`1 = 1`, "true"},
		{`1 = true`, "false"},
		{`() = ()`, "true"},
		{`if 1 < 2 then 10 else 20`, "10"},
		{`let id = \x. x in id 10`, "10"},
		{`let id = \x. x in if id true then id 1 else 0`, "1"},
		{`(\x y. x - y) 10 3`, "7"},
		{`let rec fact n = if n < 1 then 1 else n * fact (n - 1) in fact 5`, "120"},
		{`fix (\f n. if n < 1 then 1 else n * f (n - 1)) 5`, "120"},
		{`let rec even n = if n = 0 then true else not (even (n - 1)) in even 7`, "false"},
		{`(1, true) (\a b. a)`, "1"},
		{`(1, true) (\a b. b)`, "true"},
		{`(1, 2)`, "(1, 2)"},
		{`()`, "()"},
		{`\x. x`, "<lambda>"},
		{`(\x y. x) 1`, "<closure>"},
		{`trace`, "<builtin trace>"},
		{`print 1`, "()"},
	} {
		for _, strategy := range eval.Strategies {
			t.Run(strategy.String()+"/"+tc.src, func(t *testing.T) {
				val, err := run(t, strategy, tc.src)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, val.String())
			})
		}
	}
}

func TestUnusedArgument(t *testing.T) {
	_, err := run(t, eval.CallByValue, `(\x. 1) (1 / 0)`)
	var rerr *eval.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "division by zero", rerr.Msg)

	for _, strategy := range []eval.Strategy{eval.CallByName, eval.CallByNeed} {
		val, err := run(t, strategy, `(\x. 1) (1 / 0)`)
		require.NoError(t, err, strategy)
		assert.Equal(t, "1", val.String())
	}
}

func TestSharing(t *testing.T) {
	for strategy, traces := range map[eval.Strategy]int{
		eval.CallByValue: 1,
		eval.CallByNeed:  1,
		eval.CallByName:  2,
	} {
		t.Run(strategy.String(), func(t *testing.T) {
			out := new(bytes.Buffer)
			ctx := ioctx.StdoutToContext(context.Background(), out)

			expr := parse(t, `let f = \y. y + y in let x = trace 21 in f x`)
			val, err := eval.New(strategy).Evaluate(ctx, newFrame(), expr)
			require.NoError(t, err)
			assert.Equal(t, "42", val.String())
			assert.Equal(t, strings.Repeat("21\n", traces), out.String())
		})
	}
}

func TestRuntimeErrors(t *testing.T) {
	for _, tc := range []struct {
		src string
		msg string
	}{
		{`1 / 0`, "division by zero"},
		{`(\x. x) = (\x. x)`, "cannot compare function <lambda>"},
		{`1 2`, "cannot apply non-function value 1"},
		{`if 1 then 2 else 3`, "condition must be a bool, got 1"},
	} {
		t.Run(tc.src, func(t *testing.T) {
			_, err := run(t, eval.CallByValue, tc.src)
			var rerr *eval.RuntimeError
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, tc.msg, rerr.Msg)
		})
	}
}

func TestNotInScope(t *testing.T) {
	_, err := run(t, eval.CallByValue, `x + 1`)
	var nerr *env.NotInScopeError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, "x", nerr.Name)
}

func TestMaxDepth(t *testing.T) {
	ev := eval.New(eval.CallByValue, eval.WithMaxDepth(200))
	_, err := ev.Evaluate(context.Background(), newFrame(), parse(t, `let rec loop x = loop x in loop 1`))
	var rerr *eval.RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Msg, "maximum evaluation depth of 200 exceeded")
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := eval.New(eval.CallByNeed).Evaluate(ctx, newFrame(), parse(t, `1 + 1`))
	require.True(t, errors.Is(err, context.Canceled))
}

func TestDeclarations(t *testing.T) {
	ctx := context.Background()
	frame := newFrame()
	for _, strategy := range eval.Strategies {
		ev := eval.New(strategy)

		_, err := ev.Evaluate(ctx, frame, parse(t, `let two = 1 + 1`))
		require.NoError(t, err)
		_, err = ev.Evaluate(ctx, frame, parse(t, `let rec pow n = if n = 0 then 1 else two * pow (n - 1)`))
		require.NoError(t, err)

		val, err := ev.Evaluate(ctx, frame, parse(t, `pow 10`))
		require.NoError(t, err)
		assert.Equal(t, "1024", val.String())
	}

	two, err := frame.Lookup("two")
	require.NoError(t, err)
	assert.Equal(t, eval.IntValue{Val: 2}, two)
}

func TestThunk(t *testing.T) {
	ctx := context.Background()
	out := new(bytes.Buffer)
	ctx = ioctx.StdoutToContext(ctx, out)
	ev := eval.New(eval.CallByNeed)

	th := eval.NewThunk(parse(t, `trace 1 + 1`), newFrame())
	assert.False(t, th.Reduced())
	assert.Equal(t, "<thunk>", th.String())

	val, err := th.Value(ctx, ev)
	require.NoError(t, err)
	assert.Equal(t, "2", val.String())
	assert.False(t, th.Reduced())

	for range 2 {
		val, err = th.Reduce(ctx, ev)
		require.NoError(t, err)
		assert.Equal(t, "2", val.String())
	}
	assert.True(t, th.Reduced())
	assert.Equal(t, "1\n1\n", out.String())

	val, err = th.Value(ctx, ev)
	require.NoError(t, err)
	assert.Equal(t, "2", val.String())
	assert.Equal(t, "1\n1\n1\n", out.String(), "Value re-evaluates a reduced thunk")
}

func TestParseStrategy(t *testing.T) {
	for _, s := range eval.Strategies {
		parsed, err := eval.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	_, err := eval.ParseStrategy("lazy")
	require.ErrorContains(t, err, `unknown evaluation strategy "lazy"`)
}
