package hm

// Subs maps type variables to types. It is mutated in place by Unify and is
// not kept idempotent: a variable may map to another variable that is itself
// a key. Apply resolves such chains.
type Subs map[TypeVariable]Type

// NewSubs creates a new substitution
func NewSubs() Subs {
	return make(Subs)
}

// Apply fully resolves t through the substitution.
func (s Subs) Apply(t Type) Type {
	return t.Apply(s).(Type)
}

// ApplyScheme resolves the free variables of a scheme, leaving its bound
// variables alone.
func (s Subs) ApplyScheme(sc *Scheme) *Scheme {
	return sc.Apply(s).(*Scheme)
}

// Get gets a type for a type variable
func (s Subs) Get(tv TypeVariable) (Type, bool) {
	t, exists := s[tv]
	return t, exists
}
