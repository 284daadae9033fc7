// Package syntax turns source text into ast expressions.
package syntax

import "fmt"

// Kind is the lexical class of a token.
type Kind int

const (
	EOF Kind = iota
	LPAREN
	RPAREN
	LAM
	BODY
	COMMA
	ADD
	SUB
	MUL
	DIV
	GT
	LT
	EQ
	LET
	REC
	IN
	IF
	THEN
	ELSE
	NOT
	AND
	OR
	FIX
	LIT
	IDEN
)

var kindNames = [...]string{
	EOF:    "EOF",
	LPAREN: "LPAREN",
	RPAREN: "RPAREN",
	LAM:    "LAM",
	BODY:   "BODY",
	COMMA:  "COMMA",
	ADD:    "ADD",
	SUB:    "SUB",
	MUL:    "MUL",
	DIV:    "DIV",
	GT:     "GT",
	LT:     "LT",
	EQ:     "EQ",
	LET:    "LET",
	REC:    "REC",
	IN:     "IN",
	IF:     "IF",
	THEN:   "THEN",
	ELSE:   "ELSE",
	NOT:    "NOT",
	AND:    "AND",
	OR:     "OR",
	FIX:    "FIX",
	LIT:    "LIT",
	IDEN:   "IDEN",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var symbols = map[byte]Kind{
	'(':  LPAREN,
	')':  RPAREN,
	'\\': LAM,
	'.':  BODY,
	',':  COMMA,
	'+':  ADD,
	'-':  SUB,
	'*':  MUL,
	'/':  DIV,
	'>':  GT,
	'<':  LT,
	'=':  EQ,
}

var keywords = map[string]Kind{
	"let":  LET,
	"rec":  REC,
	"in":   IN,
	"if":   IF,
	"then": THEN,
	"else": ELSE,
	"not":  NOT,
	"and":  AND,
	"or":   OR,
	"fix":  FIX,
}

// Pos is a 1-based line and column.
type Pos struct {
	Line, Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token is a lexeme. Value holds an int or bool for LIT tokens.
type Token struct {
	Kind  Kind
	Text  string
	Value any
	Pos   Pos
}

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case IDEN:
		return fmt.Sprintf("identifier %q", t.Text)
	case LIT:
		return fmt.Sprintf("literal %s", t.Text)
	default:
		return fmt.Sprintf("%q", t.Text)
	}
}

// SyntaxError reports a lexing or parsing failure.
type SyntaxError struct {
	Pos Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}
