package scicalc

import (
	"strconv"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is a numeric literal. It is not validated until conversion.
	tokenNum
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenOther is any other single rune.
	tokenOther
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token

// Operators contains the runes which are considered to be operators. × and *
// are both multiplication, ÷ and / are both division.
const Operators = "+-×÷^*/"

// Parentheses.
const (
	OpenParen  = '('
	CloseParen = ')'
)

type lexer struct {
	src []rune
	// off is the index of the next rune to scan.
	off int
}

func lex(src string) *lexer {
	return &lexer{src: []rune(src)}
}

// peek returns the rune k places ahead of the next one, or -1 if that is past
// the end of the input.
func (l *lexer) peek(k int) rune {
	if l.off+k >= len(l.src) {
		return -1
	}
	return l.src[l.off+k]
}

// next scans the next token from the input. The second result is false once
// the input is exhausted.
func (l *lexer) next() (lexToken, bool) {
	for l.off < len(l.src) && unicode.IsSpace(l.src[l.off]) {
		l.off++
	}
	if l.off >= len(l.src) {
		return lexToken{}, false
	}
	tok := lexToken{pos: l.off + 1}
	r := l.src[l.off]
	switch {
	case isNumRune(r):
		tok.text = l.scanNum()
		tok.kind = tokenNum
		return tok, true
	case r == OpenParen:
		tok.kind = tokenOpen
	case r == CloseParen:
		tok.kind = tokenClose
	case isOperator(r):
		tok.kind = tokenOp
	default:
		tok.kind = tokenOther
	}
	tok.text = string(r)
	l.off++
	return tok, true
}

// scanNum scans the run of digits and points starting at the next rune,
// including at most one exponent. Malformed runs like 1.2.3 are scanned whole
// so that they fail as a single number.
func (l *lexer) scanNum() string {
	start := l.off
	exp := false
	for l.off < len(l.src) {
		r := l.src[l.off]
		switch {
		case isNumRune(r):
			l.off++
		case !exp && isExpMarker(r) && expFollows(l.peek(1), l.peek(2)):
			exp = true
			// Take the sign along with the marker so it isn't lexed as an
			// operator.
			if l.peek(1) == '+' || l.peek(1) == '-' {
				l.off++
			}
			l.off++
		default:
			return string(l.src[start:l.off])
		}
	}
	return string(l.src[start:l.off])
}

// tokenize splits an expression into tokens. It never fails; invalid tokens
// are reported when the tokens are converted to postfix.
func tokenize(src string) []lexToken {
	scan := lex(src)
	var toks []lexToken
	for {
		tok, ok := scan.next()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

func isNumRune(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}

func isExpMarker(r rune) bool {
	return r == 'e' || r == 'E'
}

// expFollows reports whether the two runes following an exponent marker make
// it part of a number, i.e. they are a digit or a sign and a digit.
func expFollows(a, b rune) bool {
	if a == '+' || a == '-' {
		a = b
	}
	return '0' <= a && a <= '9'
}

func isOperator(r rune) bool {
	for _, c := range Operators {
		if r == c {
			return true
		}
	}
	return false
}
