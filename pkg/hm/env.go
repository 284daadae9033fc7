package hm

// Env is anything with free type variables that generalization must respect,
// typically a chain of scheme bindings.
type Env interface {
	FreeTypeVar() TypeVarSet
}

// Schemes is a flat Env.
type Schemes []*Scheme

func (ss Schemes) FreeTypeVar() TypeVarSet {
	var ftv TypeVarSet
	for _, s := range ss {
		ftv = ftv.Union(s.FreeTypeVar())
	}
	return ftv
}
