package hm

import (
	"cmp"
	"iter"

	"github.com/benbjohnson/immutable"
)

// TypeVarSet is a persistent set of type variables. Iteration is ordered by
// variable name. The zero value is an empty set.
type TypeVarSet struct {
	m *immutable.SortedMap[TypeVariable, struct{}]
}

type typeVarComparer struct{}

func (typeVarComparer) Compare(a, b TypeVariable) int {
	return cmp.Compare(a, b)
}

// NewTypeVarSet creates a new TypeVarSet
func NewTypeVarSet(tvs ...TypeVariable) TypeVarSet {
	b := immutable.NewSortedMapBuilder[TypeVariable, struct{}](typeVarComparer{})
	for _, tv := range tvs {
		b.Set(tv, struct{}{})
	}
	return TypeVarSet{m: b.Map()}
}

func (tvs TypeVarSet) sorted() *immutable.SortedMap[TypeVariable, struct{}] {
	if tvs.m == nil {
		return immutable.NewSortedMap[TypeVariable, struct{}](typeVarComparer{})
	}
	return tvs.m
}

// Len returns the number of variables in the set.
func (tvs TypeVarSet) Len() int {
	if tvs.m == nil {
		return 0
	}
	return tvs.m.Len()
}

// Contains checks if a type variable is in the set
func (tvs TypeVarSet) Contains(tv TypeVariable) bool {
	if tvs.m == nil {
		return false
	}
	_, ok := tvs.m.Get(tv)
	return ok
}

// Add returns a set that also contains tv.
func (tvs TypeVarSet) Add(tv TypeVariable) TypeVarSet {
	return TypeVarSet{m: tvs.sorted().Set(tv, struct{}{})}
}

// Remove returns a set without tv.
func (tvs TypeVarSet) Remove(tv TypeVariable) TypeVarSet {
	return TypeVarSet{m: tvs.sorted().Delete(tv)}
}

// Union returns the union of two TypeVarSets
func (tvs TypeVarSet) Union(other TypeVarSet) TypeVarSet {
	if tvs.Len() < other.Len() {
		tvs, other = other, tvs
	}
	m := tvs.sorted()
	for tv := range other.All() {
		m = m.Set(tv, struct{}{})
	}
	return TypeVarSet{m: m}
}

// Difference returns the variables of tvs that are not in other.
func (tvs TypeVarSet) Difference(other TypeVarSet) TypeVarSet {
	m := tvs.sorted()
	for tv := range other.All() {
		m = m.Delete(tv)
	}
	return TypeVarSet{m: m}
}

// All iterates over the set in name order.
func (tvs TypeVarSet) All() iter.Seq[TypeVariable] {
	return func(yield func(TypeVariable) bool) {
		if tvs.m == nil {
			return
		}
		itr := tvs.m.Iterator()
		for !itr.Done() {
			tv, _, _ := itr.Next()
			if !yield(tv) {
				return
			}
		}
	}
}

// ToSlice converts the set to a slice
func (tvs TypeVarSet) ToSlice() []TypeVariable {
	result := make([]TypeVariable, 0, tvs.Len())
	for tv := range tvs.All() {
		result = append(result, tv)
	}
	return result
}
