package hm

import "fmt"

// UnificationError is raised when two types have no common instance.
type UnificationError struct {
	Left, Right Type
}

func (e *UnificationError) Error() string {
	return fmt.Sprintf("Cannot unify types: %s with %s", e.Left, e.Right)
}

// OccursCheckError is raised when binding a variable would produce an
// infinite type.
type OccursCheckError struct {
	Var  TypeVariable
	Type Type
}

func (e *OccursCheckError) Error() string {
	return fmt.Sprintf("Cannot construct infinite type: %s = %s", e.Var, e.Type)
}

// RedefinitionError is raised when a let binds a name that the same frame
// already binds.
type RedefinitionError struct {
	Name string
}

func (e *RedefinitionError) Error() string {
	return fmt.Sprintf("Cannot redefine Variable: '%s'", e.Name)
}
