package eval

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vito/hml/pkg/ast"
)

func operandError(e ast.Expr, op ast.Op, want string, operands ...Value) error {
	return errors.WithStack(&RuntimeError{
		Expr: e,
		Msg:  fmt.Sprintf("operator %s expects %s operands, got %v", op.Symbol(), want, operands),
	})
}

func binary(e *ast.BinOp, left, right Value) (Value, error) {
	switch e.Op {
	case ast.ADD, ast.SUB, ast.MUL, ast.DIV, ast.GT, ast.LT:
		l, lok := left.(IntValue)
		r, rok := right.(IntValue)
		if !lok || !rok {
			return nil, operandError(e, e.Op, "int", left, right)
		}
		return arith(e, l.Val, r.Val)

	case ast.AND, ast.OR:
		l, lok := left.(BoolValue)
		r, rok := right.(BoolValue)
		if !lok || !rok {
			return nil, operandError(e, e.Op, "bool", left, right)
		}
		if e.Op == ast.AND {
			return BoolValue{Val: l.Val && r.Val}, nil
		}
		return BoolValue{Val: l.Val || r.Val}, nil

	case ast.EQ:
		eq, err := equal(left, right)
		if err != nil {
			return nil, errors.WithStack(&RuntimeError{Expr: e, Msg: err.Error()})
		}
		return BoolValue{Val: eq}, nil

	default:
		return nil, errors.WithStack(&RuntimeError{
			Expr: e,
			Msg:  fmt.Sprintf("operator %s takes one operand", e.Op),
		})
	}
}

func arith(e *ast.BinOp, l, r int) (Value, error) {
	switch e.Op {
	case ast.ADD:
		return IntValue{Val: l + r}, nil
	case ast.SUB:
		return IntValue{Val: l - r}, nil
	case ast.MUL:
		return IntValue{Val: l * r}, nil
	case ast.DIV:
		if r == 0 {
			return nil, errors.WithStack(&RuntimeError{Expr: e, Msg: "division by zero"})
		}
		return IntValue{Val: l / r}, nil
	case ast.GT:
		return BoolValue{Val: l > r}, nil
	default:
		return BoolValue{Val: l < r}, nil
	}
}

// equal compares primitive values. Values of different kinds are unequal;
// functions cannot be compared.
func equal(left, right Value) (bool, error) {
	if _, ok := left.(Callable); ok {
		return false, errors.Errorf("cannot compare function %s", left)
	}
	if _, ok := right.(Callable); ok {
		return false, errors.Errorf("cannot compare function %s", right)
	}
	switch l := left.(type) {
	case IntValue:
		r, ok := right.(IntValue)
		return ok && l.Val == r.Val, nil
	case BoolValue:
		r, ok := right.(BoolValue)
		return ok && l.Val == r.Val, nil
	case UnitValue:
		_, ok := right.(UnitValue)
		return ok, nil
	default:
		return false, errors.Errorf("cannot compare %s", left)
	}
}

func unary(e *ast.UnOp, operand Value) (Value, error) {
	switch e.Op {
	case ast.NOT:
		b, ok := operand.(BoolValue)
		if !ok {
			return nil, operandError(e, e.Op, "bool", operand)
		}
		return BoolValue{Val: !b.Val}, nil
	case ast.NEG:
		i, ok := operand.(IntValue)
		if !ok {
			return nil, operandError(e, e.Op, "int", operand)
		}
		return IntValue{Val: -i.Val}, nil
	default:
		return nil, errors.WithStack(&RuntimeError{
			Expr: e,
			Msg:  fmt.Sprintf("operator %s takes two operands", e.Op),
		})
	}
}
