package infer_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/hml/pkg/ast"
	"github.com/vito/hml/pkg/env"
	"github.com/vito/hml/pkg/hm"
	"github.com/vito/hml/pkg/infer"
	"github.com/vito/hml/pkg/syntax"
)

func parse(t *testing.T, src string) ast.Expr {
	t.Helper()
	expr, err := syntax.Parse(src)
	require.NoError(t, err)
	return expr
}

func TestTypeOf(t *testing.T) {
	for _, tc := range []struct {
		src      string
		expected string
	}{
		{`1 + 2`, "int"},
		{`if true then 1 else 0`, "int"},
		{`let id = \x.x in id 10`, "int"},
		{`\x.x`, "a -> a"},
		{`\x y. x`, "a -> b -> a"},
		{`\f x. f x`, "(a -> b) -> a -> b"},
		{`let compose = \f g x. f (g x) in compose`, "(a -> b) -> (c -> a) -> c -> b"},
		{`()`, "unit"},
		{`1 < 2`, "bool"},
		{`1 = true`, "bool"},
		{`not true and false or true`, "bool"},
		{`-3 * 2 / 1 - 4`, "int"},
		{`(1, true)`, "(int -> bool -> a) -> a"},
		{`\p. p (\a b. a)`, "((a -> b -> a) -> c) -> c"},
		{`let id = \x.x in (id 1, id true)`, "(int -> bool -> a) -> a"},
		{`let id = \x.x in id id`, "a -> a"},
		{`fix (\f n. if n = 0 then 1 else n * f (n - 1))`, "int -> int"},
		{`fix (\f n. if n = 0 then 1 else n * f (n - 1)) 5`, "int"},
		{`let rec fact n = if n = 0 then 1 else n * fact (n - 1) in fact 5`, "int"},
		{`let rec const x y = x in const 1`, "a -> int"},
		{`\x. let y = x in y`, "a -> a"},
	} {
		t.Run(tc.src, func(t *testing.T) {
			actual, err := infer.TypeOf(infer.NewTypeEnv(), parse(t, tc.src))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestTypeOfLegacyStyle(t *testing.T) {
	inferer := infer.New()
	inferer.Style = hm.Legacy

	actual, err := inferer.TypeOf(infer.NewTypeEnv(), parse(t, `\f x. f x`))
	require.NoError(t, err)
	assert.Equal(t, "(a -> b) -> (a -> b)", actual)
}

func TestTypeErrors(t *testing.T) {
	for _, tc := range []struct {
		src      string
		expected string
		kind     any
	}{
		{`x`, "Variable: 'x' not in Scope", new(*env.NotInScopeError)},
		{`1 + true`, "Cannot unify types: bool with int", new(*hm.UnificationError)},
		{`if 1 then true else 2`, "Cannot unify types: int with bool", new(*hm.UnificationError)},
		{`if true then 1 else false`, "Cannot unify types: int with bool", new(*hm.UnificationError)},
		{`1 2`, "Cannot unify types: int with int -> a", new(*hm.UnificationError)},
		{`fix 1`, "Cannot unify types: a -> a with int", new(*hm.UnificationError)},
		{`\x. x x`, "Cannot construct infinite type: a = a -> b", new(*hm.OccursCheckError)},
		{`let rec f x = f`, "Cannot construct infinite type: a = b -> a", new(*hm.OccursCheckError)},
		{`let x = 1 in let x = 2 in x`, "Cannot redefine Variable: 'x'", new(*hm.RedefinitionError)},
		{`\x. let y = x in (y 1, y true)`, "Cannot unify types: int with bool", new(*hm.UnificationError)},
	} {
		t.Run(tc.src, func(t *testing.T) {
			_, err := infer.Infer(infer.NewTypeEnv(), parse(t, tc.src))
			require.Error(t, err)
			assert.Equal(t, tc.expected, err.Error())

			var typeErr *infer.TypeError
			require.True(t, errors.As(err, &typeErr))
			assert.NotNil(t, typeErr.Expr)
			assert.True(t, errors.As(err, tc.kind), "%T", errors.Cause(err))
		})
	}
}

func TestTypeErrorLocatesInnermostExpression(t *testing.T) {
	_, err := infer.Infer(infer.NewTypeEnv(), parse(t, `\x. x + true`))
	require.Error(t, err)

	var typeErr *infer.TypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, "x + true", typeErr.Expr.String())
}

func TestDeclarations(t *testing.T) {
	types := infer.NewTypeEnv()
	inferer := infer.New()

	sc, err := inferer.Infer(types, parse(t, `let id = \x.x`))
	require.NoError(t, err)
	assert.Equal(t, "forall a. a -> a", sc.String())

	installed, err := types.Lookup("id")
	require.NoError(t, err)
	assert.Same(t, sc, installed)

	actual, err := inferer.TypeOf(types, parse(t, `id 1`))
	require.NoError(t, err)
	assert.Equal(t, "int", actual)

	actual, err = inferer.TypeOf(types, parse(t, `(id 1, id true)`))
	require.NoError(t, err)
	assert.Equal(t, "(int -> bool -> a) -> a", actual)

	_, err = inferer.Infer(types, parse(t, `let id = 1`))
	require.Error(t, err)
	assert.Equal(t, "Cannot redefine Variable: 'id'", err.Error())

	sc, err = inferer.Infer(types, parse(t, `let rec loop x = loop x`))
	require.NoError(t, err)
	assert.Equal(t, "forall a b. a -> b", sc.Normalize().String())
}

func TestFailedDeclarationInstallsNothing(t *testing.T) {
	types := infer.NewTypeEnv()
	_, err := infer.Infer(types, parse(t, `let bad = 1 + true`))
	require.Error(t, err)
	assert.False(t, types.Has("bad"))
}

func TestFullyResolved(t *testing.T) {
	for _, src := range []string{
		`\f x. f (f x)`,
		`let id = \x.x in (id 1, id)`,
		`fix (\f n. if n < 1 then 0 else f (n - 1))`,
		`\p. p (\a b. b)`,
	} {
		t.Run(src, func(t *testing.T) {
			inferer := infer.New()
			sc, err := inferer.Infer(infer.NewTypeEnv(), parse(t, src))
			require.NoError(t, err)

			ty, _ := sc.Type()
			for tv := range ty.FreeTypeVar().All() {
				_, bound := inferer.Subs().Get(tv)
				assert.False(t, bound, "%s is still substituted in %s", tv, ty)
			}
		})
	}
}

func TestOpType(t *testing.T) {
	for op, expected := range map[ast.Op]string{
		ast.ADD: "int -> int -> int",
		ast.EQ:  "forall o1 o2. o1 -> o2 -> bool",
		ast.NOT: "bool -> bool",
	} {
		sc, err := infer.OpType(op)
		require.NoError(t, err)
		assert.Equal(t, expected, sc.String())
	}

	_, err := infer.OpType(ast.Op(99))
	require.EqualError(t, err, "unknown operator Op(99)")
}

func TestUnknownOperator(t *testing.T) {
	_, err := infer.Infer(infer.NewTypeEnv(), &ast.BinOp{Op: ast.Op(99), Left: ast.Int(1), Right: ast.Int(2)})
	require.EqualError(t, err, "unknown operator Op(99)")

	_, err = infer.Infer(infer.NewTypeEnv(), &ast.UnOp{Op: ast.Op(-1), Operand: ast.Int(1)})
	require.EqualError(t, err, "operator Op(-1) takes two operands")
}
