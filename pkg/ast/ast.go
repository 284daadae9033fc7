// Package ast defines the expression tree shared by type inference and
// evaluation.
package ast

// Expr is a node of the expression tree. The set of node types is closed;
// consumers dispatch over it with Visit.
type Expr interface {
	String() string
	isExpr()
}

// Var references a bound name.
type Var struct {
	Name string
}

// App applies Fn to a single argument.
type App struct {
	Fn  Expr
	Arg Expr
}

// LitKind is the primitive type of a literal.
type LitKind int

const (
	IntLit LitKind = iota
	BoolLit
	UnitLit
)

func (k LitKind) String() string {
	switch k {
	case IntLit:
		return "int"
	case BoolLit:
		return "bool"
	default:
		return "unit"
	}
}

// Lit is a literal constant. Val holds an int for IntLit, a bool for
// BoolLit, and nil for UnitLit.
type Lit struct {
	Kind LitKind
	Val  any
}

// Int returns an integer literal.
func Int(n int) *Lit { return &Lit{Kind: IntLit, Val: n} }

// Bool returns a boolean literal.
func Bool(b bool) *Lit { return &Lit{Kind: BoolLit, Val: b} }

// Unit returns the unit literal.
func Unit() *Lit { return &Lit{Kind: UnitLit} }

// Lam is a single-parameter abstraction.
type Lam struct {
	Param string
	Body  Expr
}

// Lams builds nested abstractions over params, innermost last.
func Lams(params []string, body Expr) Expr {
	for i := len(params) - 1; i >= 0; i-- {
		body = &Lam{Param: params[i], Body: body}
	}
	return body
}

// Cond selects Then or Else depending on Cond.
type Cond struct {
	Cond Expr
	Then Expr
	Else Expr
}

// Let binds Name to Value. With a nil Body the binding is a declaration: it
// is installed into the enclosing environment instead of scoping a body.
type Let struct {
	Name  string
	Value Expr
	Body  Expr
}

// IsDecl reports whether the let has no body.
func (l *Let) IsDecl() bool { return l.Body == nil }

// LetRec binds Name to a function of Params whose Value may refer to Name
// itself. A nil Body makes it a declaration, as with Let.
type LetRec struct {
	Name   string
	Params []string
	Value  Expr
	Body   Expr
}

// IsDecl reports whether the let has no body.
func (l *LetRec) IsDecl() bool { return l.Body == nil }

// BinOp applies a binary operator.
type BinOp struct {
	Op    Op
	Left  Expr
	Right Expr
}

// UnOp applies a unary operator.
type UnOp struct {
	Op      Op
	Operand Expr
}

// Pair builds a Church pair: a function that passes First and Second to a
// selector.
type Pair struct {
	First  Expr
	Second Expr
}

// Fix denotes the fixed point of Expr.
type Fix struct {
	Expr Expr
}

func (*Var) isExpr()    {}
func (*App) isExpr()    {}
func (*Lit) isExpr()    {}
func (*Lam) isExpr()    {}
func (*Cond) isExpr()   {}
func (*Let) isExpr()    {}
func (*LetRec) isExpr() {}
func (*BinOp) isExpr()  {}
func (*UnOp) isExpr()   {}
func (*Pair) isExpr()   {}
func (*Fix) isExpr()    {}

// IsDecl reports whether e is a body-less Let or LetRec.
func IsDecl(e Expr) bool {
	switch e := e.(type) {
	case *Let:
		return e.IsDecl()
	case *LetRec:
		return e.IsDecl()
	}
	return false
}
