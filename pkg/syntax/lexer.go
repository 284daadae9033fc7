package syntax

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
)

type lexer struct {
	src  string
	off  int
	line int
	col  int
}

// Tokenize splits src into tokens, ending with EOF.
func Tokenize(src string) ([]Token, error) {
	l := &lexer{src: src, line: 1, col: 1}

	var tokens []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens, nil
		}
	}
}

func (l *lexer) peek() byte {
	if l.off < len(l.src) {
		return l.src[l.off]
	}
	return 0
}

func (l *lexer) advance() {
	if l.src[l.off] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.off++
}

func (l *lexer) next() (Token, error) {
	l.skip()

	pos := Pos{Line: l.line, Col: l.col}
	if l.off >= len(l.src) {
		return Token{Kind: EOF, Pos: pos}, nil
	}

	start := l.off
	ch := l.peek()
	switch {
	case symbols[ch] != EOF:
		l.advance()
		return Token{Kind: symbols[ch], Text: string(ch), Pos: pos}, nil

	case isDigit(ch):
		for isDigit(l.peek()) {
			l.advance()
		}
		text := l.src[start:l.off]
		n, err := strconv.Atoi(text)
		if err != nil {
			return Token{}, errors.WithStack(&SyntaxError{Pos: pos, Msg: fmt.Sprintf("integer literal %s out of range", text)})
		}
		return Token{Kind: LIT, Text: text, Value: n, Pos: pos}, nil

	case isAlpha(ch) || ch == '_':
		for isAlpha(l.peek()) || isDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
		text := l.src[start:l.off]
		switch text {
		case "true", "false":
			return Token{Kind: LIT, Text: text, Value: text == "true", Pos: pos}, nil
		}
		if kind, ok := keywords[text]; ok {
			return Token{Kind: kind, Text: text, Pos: pos}, nil
		}
		return Token{Kind: IDEN, Text: text, Pos: pos}, nil

	default:
		r, _ := utf8.DecodeRuneInString(l.src[l.off:])
		return Token{}, errors.WithStack(&SyntaxError{Pos: pos, Msg: fmt.Sprintf("Unrecognized char %c", r)})
	}
}

// skip consumes whitespace and # comments.
func (l *lexer) skip() {
	for l.off < len(l.src) {
		switch ch := l.peek(); ch {
		case ' ', '\n', '\b', '\t', '\r':
			l.advance()
		case '#':
			for l.off < len(l.src) && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}
