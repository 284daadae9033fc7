package hm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameSupply(t *testing.T) {
	names := NewNameSupply()

	var got []string
	for range 25 {
		got = append(got, names.Fresh().Name())
	}
	assert.Equal(t, "a", got[0])
	assert.Equal(t, "y", got[24])

	assert.Equal(t, TypeVariable("a1"), names.Fresh())
	assert.Equal(t, TypeVariable("b1"), names.Fresh())

	for range 23 {
		names.Fresh()
	}
	assert.Equal(t, TypeVariable("a2"), names.Fresh())

	names.Reset()
	assert.Equal(t, TypeVariable("a"), names.Fresh())
}

func TestGeneralize(t *testing.T) {
	env := Schemes{Mono(b)}
	sc := Generalize(env, NewFnType(a, NewFnType(b, c)))
	assert.Equal(t, []TypeVariable{a, c}, sc.TypeVars())
	assert.Equal(t, "forall a c. a -> b -> c", sc.String())
	assert.Equal(t, []TypeVariable{b}, sc.FreeTypeVar().ToSlice())
}

type fixedFresher []TypeVariable

func (f *fixedFresher) Fresh() TypeVariable {
	tv := (*f)[0]
	*f = (*f)[1:]
	return tv
}

func TestInstantiateRenamesSimultaneously(t *testing.T) {
	sc := NewScheme([]TypeVariable{a, b}, NewFnType(a, b))
	fresh := fixedFresher{b, a}
	assert.Equal(t, "b -> a", Instantiate(&fresh, sc).String())
}

func TestInstantiateMonotype(t *testing.T) {
	ty := NewFnType(a, Int)
	assert.Same(t, ty, Instantiate(NewNameSupply(), Mono(ty)))
}

func TestGeneralizeInstantiateRoundTrip(t *testing.T) {
	env := Schemes{Mono(TypeVariable("e"))}
	for _, ty := range []Type{
		NewFnType(a, a),
		NewFnType(NewFnType(a, b), NewFnType(a, b)),
		NewFnType(TypeVariable("e"), NewFnType(a, TypeVariable("e"))),
	} {
		t.Run(ty.String(), func(t *testing.T) {
			sc := Generalize(env, ty)

			names := NewNameSupply()
			for range 30 {
				names.Fresh()
			}
			first := Instantiate(names, sc)
			second := Instantiate(names, sc)

			assert.Equal(t, Mono(ty).Normalize().String(), Mono(first).Normalize().String())
			assert.Equal(t, Mono(ty).Normalize().String(), Mono(second).Normalize().String())
			assert.True(t, first.FreeTypeVar().Contains("e") == ty.FreeTypeVar().Contains("e"))

			for _, tv := range sc.TypeVars() {
				assert.False(t, first.FreeTypeVar().Contains(tv), "instantiation reused %s", tv)
			}
			for tv := range first.FreeTypeVar().Difference(env.FreeTypeVar()).All() {
				assert.False(t, second.FreeTypeVar().Contains(tv), "instances share %s", tv)
			}
		})
	}
}

func TestSchemeApplyIgnoresBoundVariables(t *testing.T) {
	sc := NewScheme([]TypeVariable{a}, NewFnType(a, b))
	applied := Subs{a: Int, b: Bool}.ApplyScheme(sc)
	assert.Equal(t, "forall a. a -> bool", applied.String())
}

func TestSchemeNormalize(t *testing.T) {
	sc := NewScheme([]TypeVariable{c, TypeVariable("e")}, NewFnType(c, NewFnType(TypeVariable("d"), TypeVariable("e"))))
	assert.Equal(t, "forall a c. a -> b -> c", sc.Normalize().String())

	mono := Mono(NewFnType(NewFnType(TypeVariable("q"), TypeVariable("x")), TypeVariable("q")))
	assert.Equal(t, "(a -> b) -> a", mono.Normalize().String())
}

func TestTypeVarSet(t *testing.T) {
	s := NewTypeVarSet(c, a)
	s = s.Add(b)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, []TypeVariable{a, b, c}, s.ToSlice())

	assert.Equal(t, []TypeVariable{a, c}, s.Remove(b).ToSlice())
	assert.Equal(t, []TypeVariable{b}, s.Difference(NewTypeVarSet(a, c)).ToSlice())

	var empty TypeVarSet
	assert.Equal(t, 0, empty.Len())
	assert.False(t, empty.Contains(a))
	assert.Equal(t, []TypeVariable{a, c}, empty.Union(NewTypeVarSet(c, a)).ToSlice())
	assert.True(t, empty.Add(a).Contains(a))
}
