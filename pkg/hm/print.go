package hm

import (
	"strings"

	"github.com/pkg/errors"
)

// PrintStyle selects how arrows are bracketed.
type PrintStyle int

const (
	// Canonical prints arrows right-associatively, bracketing only arrow
	// arguments: (a -> b) -> a -> b.
	Canonical PrintStyle = iota
	// Legacy brackets an arrow whenever its nesting depth is not a multiple
	// of three: (a -> b) -> (a -> b).
	Legacy
)

func ParsePrintStyle(name string) (PrintStyle, error) {
	switch name {
	case "", "canonical":
		return Canonical, nil
	case "legacy":
		return Legacy, nil
	default:
		return Canonical, errors.Errorf("unknown printer %q (expected canonical or legacy)", name)
	}
}

func (p PrintStyle) String() string {
	if p == Legacy {
		return "legacy"
	}
	return "canonical"
}

// Type renders a monotype.
func (p PrintStyle) Type(t Type) string {
	var sb strings.Builder
	if p == Legacy {
		writeLegacy(&sb, t, 0)
	} else {
		writeCanonical(&sb, t)
	}
	return sb.String()
}

// Scheme renders a scheme as "forall a b. T", or just T when nothing is
// quantified.
func (p PrintStyle) Scheme(s *Scheme) string {
	if len(s.tvs) == 0 {
		return p.Type(s.t)
	}
	return quantifier(s.tvs) + p.Type(s.t)
}

func writeCanonical(sb *strings.Builder, t Type) {
	ft, ok := t.(*FunctionType)
	if !ok {
		sb.WriteString(t.Name())
		return
	}
	if _, nested := ft.arg.(*FunctionType); nested {
		sb.WriteByte('(')
		writeCanonical(sb, ft.arg)
		sb.WriteByte(')')
	} else {
		writeCanonical(sb, ft.arg)
	}
	sb.WriteString(" -> ")
	writeCanonical(sb, ft.ret)
}

func writeLegacy(sb *strings.Builder, t Type, level int) {
	ft, ok := t.(*FunctionType)
	if !ok {
		sb.WriteString(t.Name())
		return
	}
	open := level%3 != 0
	if open {
		sb.WriteByte('(')
	}
	writeLegacy(sb, ft.arg, level+1)
	sb.WriteString(" -> ")
	writeLegacy(sb, ft.ret, level+1)
	if open {
		sb.WriteByte(')')
	}
}
