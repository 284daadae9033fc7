package hm

import "strconv"

// Generalize creates a type scheme by quantifying over type variables
// that are free in the type but not free in the environment. Variables are
// quantified in order of first appearance.
func Generalize(env Env, t Type) *Scheme {
	envFtvs := env.FreeTypeVar()

	var quantifiedVars []TypeVariable
	for _, tv := range Occurrences(t) {
		if !envFtvs.Contains(tv) {
			quantifiedVars = append(quantifiedVars, tv)
		}
	}

	return NewScheme(quantifiedVars, t)
}

// Instantiate creates a fresh instance of a type scheme
func Instantiate(fresher Fresher, scheme *Scheme) Type {
	if len(scheme.tvs) == 0 {
		return scheme.t
	}

	m := make(map[TypeVariable]Type, len(scheme.tvs))
	for _, tv := range scheme.tvs {
		m[tv] = fresher.Fresh()
	}

	return rename(scheme.t, m)
}

// Fresher interface for generating fresh type variables
type Fresher interface {
	Fresh() TypeVariable
}

const letters = "abcdefghijklmnopqrstuvwxy"

// NameSupply hands out type variable names round-robin over a..y. Each
// letter carries its own counter, so the 26th name is a1, the 27th b1, and
// so on.
type NameSupply struct {
	count    int
	suffixes [len(letters)]int
}

var _ Fresher = (*NameSupply)(nil)

func NewNameSupply() *NameSupply {
	return &NameSupply{}
}

// Fresh generates a fresh type variable
func (n *NameSupply) Fresh() TypeVariable {
	slot := n.count % len(letters)
	n.count++
	suffix := n.suffixes[slot]
	n.suffixes[slot]++
	name := letters[slot : slot+1]
	if suffix > 0 {
		name += strconv.Itoa(suffix)
	}
	return TypeVariable(name)
}

// Reset starts the supply over from a.
func (n *NameSupply) Reset() {
	*n = NameSupply{}
}
