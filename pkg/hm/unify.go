package hm

import (
	"github.com/pkg/errors"
)

// Unify attempts to unify two types, returning the substitution that makes
// them equal.
func Unify(t1, t2 Type) (Subs, error) {
	s := NewSubs()
	if err := s.Unify(t1, t2); err != nil {
		return nil, err
	}
	return s, nil
}

// Unify extends s in place so that t1 and t2 resolve to the same type.
func (s Subs) Unify(t1, t2 Type) error {
	if t1.Eq(t2) {
		return nil
	}

	if tv1, ok := t1.(TypeVariable); ok {
		return s.bindVar(tv1, t2)
	}

	if tv2, ok := t2.(TypeVariable); ok {
		return s.bindVar(tv2, t1)
	}

	if ft1, ok := t1.(*FunctionType); ok {
		if ft2, ok := t2.(*FunctionType); ok {
			if err := s.Unify(ft1.arg, ft2.arg); err != nil {
				return err
			}
			return s.Unify(ft1.ret, ft2.ret)
		}
	}

	return errors.WithStack(&UnificationError{
		Left:  s.Apply(t1),
		Right: s.Apply(t2),
	})
}

func (s Subs) bindVar(tv TypeVariable, t Type) error {
	if bound, ok := s[tv]; ok {
		return s.Unify(bound, t)
	}

	if other, ok := t.(TypeVariable); ok {
		if bound, ok := s[other]; ok {
			return s.Unify(tv, bound)
		}
	}

	if s.occurs(tv, t) {
		return errors.WithStack(&OccursCheckError{
			Var:  tv,
			Type: s.Apply(t),
		})
	}

	s[tv] = t
	return nil
}

// occurs reports whether tv appears in t, looking through bound variables.
func (s Subs) occurs(tv TypeVariable, t Type) bool {
	switch t := t.(type) {
	case TypeVariable:
		if t == tv {
			return true
		}
		if bound, ok := s[t]; ok {
			return s.occurs(tv, bound)
		}
		return false
	case *FunctionType:
		return s.occurs(tv, t.arg) || s.occurs(tv, t.ret)
	default:
		return false
	}
}
