package hm

import (
	"fmt"
	"slices"
	"strings"
)

// Scheme represents a type scheme for polymorphic types
type Scheme struct {
	tvs []TypeVariable
	t   Type
}

// NewScheme creates a new type scheme
func NewScheme(tvs []TypeVariable, t Type) *Scheme {
	return &Scheme{tvs: tvs, t: t}
}

// Mono wraps a monotype for storage in an environment.
func Mono(t Type) *Scheme {
	return &Scheme{t: t}
}

// Type returns the underlying type and whether it's monomorphic
func (s *Scheme) Type() (Type, bool) {
	return s.t, len(s.tvs) == 0
}

// TypeVars returns the bound type variables
func (s *Scheme) TypeVars() []TypeVariable {
	return s.tvs
}

// Apply applies a substitution to a scheme. Entries for the scheme's own
// bound variables are ignored.
func (s *Scheme) Apply(subs Subs) Substitutable {
	if len(s.tvs) == 0 {
		return &Scheme{t: subs.Apply(s.t)}
	}
	filteredSubs := make(Subs, len(subs))
	for tv, t := range subs {
		if !slices.Contains(s.tvs, tv) {
			filteredSubs[tv] = t
		}
	}
	return &Scheme{
		tvs: s.tvs,
		t:   s.t.Apply(filteredSubs).(Type),
	}
}

// FreeTypeVar returns the free type variables in the scheme
func (s *Scheme) FreeTypeVar() TypeVarSet {
	return s.t.FreeTypeVar().Difference(NewTypeVarSet(s.tvs...))
}

// Normalize renames every variable of the scheme to a, b, c, ... in order of
// first appearance in its type.
func (s *Scheme) Normalize() *Scheme {
	names := NewNameSupply()
	m := map[TypeVariable]Type{}
	order := Occurrences(s.t)
	for _, tv := range order {
		m[tv] = names.Fresh()
	}
	var tvs []TypeVariable
	for _, tv := range order {
		if slices.Contains(s.tvs, tv) {
			tvs = append(tvs, m[tv].(TypeVariable))
		}
	}
	return &Scheme{tvs: tvs, t: rename(s.t, m)}
}

// String returns a string representation
func (s *Scheme) String() string {
	return Canonical.Scheme(s)
}

func quantifier(tvs []TypeVariable) string {
	names := make([]string, len(tvs))
	for i, tv := range tvs {
		names[i] = tv.String()
	}
	return fmt.Sprintf("forall %s. ", strings.Join(names, " "))
}
