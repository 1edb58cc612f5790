package scicalc

import (
	"strconv"
	"strings"
)

// Program is an expression compiled to postfix. A Program is immutable, so it
// is safe to evaluate concurrently.
type Program struct {
	// src is the expression after constant substitution.
	src  string
	code []instr
}

// instr is one postfix instruction.
type instr struct {
	op opKind
	// num is the value of an opNum.
	num float64
	// text is the source token.
	text string
	// pos is the position of the source token.
	pos int
}

type opKind int8

const (
	opNone opKind = iota

	opNum // push num
	opNop // unary plus; never emitted
	opNeg // negate top
	opAdd // pop b, pop a, push a+b
	opSub // pop b, pop a, push a-b
	opMul // pop b, pop a, push a*b
	opDiv // pop b, pop a, push a/b unless b is zero
	opPow // pop b, pop a, push a^b
)

// symbol is the canonical spelling of an operator in postfix text.
func (k opKind) symbol() string {
	switch k {
	case opNeg:
		return "neg"
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "×"
	case opDiv:
		return "÷"
	case opPow:
		return "^"
	default:
		return "$" + strconv.Itoa(int(k))
	}
}

// arity is the number of operands the operator pops.
func (k opKind) arity() int {
	switch k {
	case opNum, opNop:
		return 0
	case opNeg:
		return 1
	default:
		return 2
	}
}

// Postfix returns the program's tokens in postfix order. Numbers keep their
// source text; operators use their canonical symbols, with unary minus
// written as "neg".
func (p *Program) Postfix() []string {
	v := make([]string, len(p.code))
	for i, in := range p.code {
		if in.op == opNum {
			v[i] = in.text
		} else {
			v[i] = in.op.symbol()
		}
	}
	return v
}

// String returns the postfix form of the program separated by spaces.
func (p *Program) String() string {
	return strings.Join(p.Postfix(), " ")
}

// Source returns the expression the program was compiled from, after the
// constants π and e were substituted.
func (p *Program) Source() string {
	return p.src
}
