package infer

import (
	"github.com/pkg/errors"
	"github.com/vito/hml/pkg/ast"
	"github.com/vito/hml/pkg/hm"
)

var (
	arith   = hm.Mono(hm.NewFnTypes(hm.Int, hm.Int, hm.Int))
	logic   = hm.Mono(hm.NewFnTypes(hm.Bool, hm.Bool, hm.Bool))
	compare = hm.Mono(hm.NewFnTypes(hm.Bool, hm.Int, hm.Int))
)

// opTypes holds the type of each primitive operator. Equality compares
// operands of any two types.
var opTypes = map[ast.Op]*hm.Scheme{
	ast.ADD: arith,
	ast.SUB: arith,
	ast.MUL: arith,
	ast.DIV: arith,
	ast.AND: logic,
	ast.OR:  logic,
	ast.GT:  compare,
	ast.LT:  compare,
	ast.EQ: hm.NewScheme(
		[]hm.TypeVariable{"o1", "o2"},
		hm.NewFnTypes(hm.Bool, hm.TypeVariable("o1"), hm.TypeVariable("o2")),
	),
	ast.NOT: hm.Mono(hm.NewFnType(hm.Bool, hm.Bool)),
	ast.NEG: hm.Mono(hm.NewFnType(hm.Int, hm.Int)),
}

// OpType returns the type of a primitive operator.
func OpType(op ast.Op) (*hm.Scheme, error) {
	sc, ok := opTypes[op]
	if !ok {
		return nil, errors.Errorf("unknown operator %s", op)
	}
	return sc, nil
}
