package infer

import (
	"fmt"
	"io"

	"github.com/vito/hml/pkg/ast"
)

// TypeError reports an inference failure and the innermost expression at
// which it was detected. Err is one of *env.NotInScopeError,
// *hm.RedefinitionError, *hm.UnificationError or *hm.OccursCheckError.
type TypeError struct {
	Expr ast.Expr
	Err  error
}

func (e *TypeError) Error() string {
	return e.Err.Error()
}

func (e *TypeError) Unwrap() error {
	return e.Err
}

func (e *TypeError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		_, _ = fmt.Fprintf(s, "%+v\nin expression: %s", e.Err, e.Expr)
		return
	}
	_, _ = io.WriteString(s, e.Error())
}
