package hm

import (
	"fmt"
	"slices"
)

// Type is a monotype: a variable, a constant, or a function type.
type Type interface {
	Substitutable
	Name() string
	Eq(Type) bool
	fmt.Stringer
}

// Substitutable is any type that can have substitutions applied and knows its free type variables
type Substitutable interface {
	Apply(Subs) Substitutable
	FreeTypeVar() TypeVarSet
}

// TypeVariable represents a type variable, labelled by a NameSupply.
type TypeVariable string

func (tv TypeVariable) Name() string {
	return string(tv)
}

// Apply resolves the variable through the substitution, following chains of
// variables until it reaches an unbound variable or a non-variable type.
func (tv TypeVariable) Apply(subs Subs) Substitutable {
	if t, exists := subs[tv]; exists && !t.Eq(tv) {
		return t.Apply(subs)
	}
	return tv
}

func (tv TypeVariable) FreeTypeVar() TypeVarSet {
	return NewTypeVarSet(tv)
}

func (tv TypeVariable) Eq(other Type) bool {
	if ot, ok := other.(TypeVariable); ok {
		return tv == ot
	}
	return false
}

func (tv TypeVariable) String() string {
	return string(tv)
}

// TypeConst is a nullary type constructor.
type TypeConst string

const (
	Int  TypeConst = "int"
	Bool TypeConst = "bool"
	Unit TypeConst = "unit"
)

func (tc TypeConst) Name() string {
	return string(tc)
}

func (tc TypeConst) Apply(Subs) Substitutable {
	return tc
}

func (tc TypeConst) FreeTypeVar() TypeVarSet {
	return NewTypeVarSet()
}

func (tc TypeConst) Eq(other Type) bool {
	if ot, ok := other.(TypeConst); ok {
		return tc == ot
	}
	return false
}

func (tc TypeConst) String() string {
	return string(tc)
}

// FunctionType represents a function type
type FunctionType struct {
	arg Type
	ret Type
}

func NewFnType(arg, ret Type) *FunctionType {
	return &FunctionType{arg: arg, ret: ret}
}

// NewFnTypes builds the right-nested function type ts[0] -> ts[1] -> ... -> ret.
func NewFnTypes(ret Type, args ...Type) Type {
	for _, arg := range slices.Backward(args) {
		ret = NewFnType(arg, ret)
	}
	return ret
}

func (ft *FunctionType) Name() string {
	return ft.String()
}

func (ft *FunctionType) Apply(subs Subs) Substitutable {
	return &FunctionType{
		arg: ft.arg.Apply(subs).(Type),
		ret: ft.ret.Apply(subs).(Type),
	}
}

func (ft *FunctionType) FreeTypeVar() TypeVarSet {
	return ft.arg.FreeTypeVar().Union(ft.ret.FreeTypeVar())
}

func (ft *FunctionType) Eq(other Type) bool {
	if ot, ok := other.(*FunctionType); ok {
		return ft.arg.Eq(ot.arg) && ft.ret.Eq(ot.ret)
	}
	return false
}

func (ft *FunctionType) String() string {
	return Canonical.Type(ft)
}

// Occurrences returns the type variables of t in order of first appearance,
// reading left to right.
func Occurrences(t Type) []TypeVariable {
	var vars []TypeVariable
	var walk func(Type)
	walk = func(t Type) {
		switch t := t.(type) {
		case TypeVariable:
			if !slices.Contains(vars, t) {
				vars = append(vars, t)
			}
		case *FunctionType:
			walk(t.arg)
			walk(t.ret)
		}
	}
	walk(t)
	return vars
}

// rename performs a simultaneous, single-step replacement of variables. Unlike
// Apply it does not chase chains, so a mapping like a -> b, b -> a swaps the
// two variables instead of looping.
func rename(t Type, m map[TypeVariable]Type) Type {
	switch t := t.(type) {
	case TypeVariable:
		if r, ok := m[t]; ok {
			return r
		}
		return t
	case *FunctionType:
		return NewFnType(rename(t.arg, m), rename(t.ret, m))
	default:
		return t
	}
}
