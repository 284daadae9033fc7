package ast

import "fmt"

// Op is one of the fixed primitive operators.
type Op int

const (
	ADD Op = iota
	SUB
	MUL
	DIV
	AND
	OR
	GT
	LT
	EQ
	NOT
	NEG
)

var opNames = [...]string{
	ADD: "ADD",
	SUB: "SUB",
	MUL: "MUL",
	DIV: "DIV",
	AND: "AND",
	OR:  "OR",
	GT:  "GT",
	LT:  "LT",
	EQ:  "EQ",
	NOT: "NOT",
	NEG: "NEG",
}

var opSymbols = [...]string{
	ADD: "+",
	SUB: "-",
	MUL: "*",
	DIV: "/",
	AND: "and",
	OR:  "or",
	GT:  ">",
	LT:  "<",
	EQ:  "=",
	NOT: "not",
	NEG: "-",
}

func (op Op) String() string {
	if op >= 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Symbol is the surface syntax of the operator.
func (op Op) Symbol() string {
	if op >= 0 && int(op) < len(opSymbols) {
		return opSymbols[op]
	}
	return op.String()
}

// Unary reports whether the operator takes one operand.
func (op Op) Unary() bool {
	return op == NOT || op == NEG
}
