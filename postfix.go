package scicalc

import (
	"errors"
	"strconv"
)

// Compile converts an expression to postfix so it can be evaluated, possibly
// many times. The constants π and e are substituted first. Unless
// LenientBrackets is given, unmatched parentheses are an error.
func Compile(expr string, opts ...Option) (*Program, error) {
	c := applyOpts(opts)
	src := substituteConstants(expr)
	if !c.lenient {
		if err := checkParens(src); err != nil {
			return nil, err
		}
	}
	p, err := toPostfix(tokenize(src), c)
	if err != nil {
		return nil, err
	}
	p.src = src
	return p, nil
}

// stackop is an entry on the converter's operator stack.
type stackop struct {
	operator
	text string
	pos  int
	// open marks an open parenthesis.
	open bool
}

// toPostfix converts tokens from infix to postfix order using the
// shunting-yard algorithm.
func toPostfix(toks []lexToken, c compilectx) (*Program, error) {
	p := Program{code: make([]instr, 0, len(toks))}
	var stack []stackop
	pop := func() stackop {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top
	}
	emit := func(s stackop) {
		p.code = append(p.code, instr{op: s.op, text: s.text, pos: s.pos})
	}
	// operand tracks whether the last token ended an operand. An operator
	// that does not follow an operand is unary.
	operand := false
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			f, err := strconv.ParseFloat(tok.text, 64)
			// Out of range literals become ±Inf or 0, and an infinity is
			// rejected when the result is checked.
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return nil, &NumberError{Col: tok.pos, Text: tok.text, Err: err}
			}
			p.code = append(p.code, instr{op: opNum, num: f, text: tok.text, pos: tok.pos})
			operand = true
		case tokenOpen:
			stack = append(stack, stackop{text: tok.text, pos: tok.pos, open: true})
			operand = false
		case tokenClose:
			matched := false
			for len(stack) > 0 {
				top := pop()
				if top.open {
					matched = true
					break
				}
				emit(top)
			}
			if !matched && !c.lenient {
				return nil, &BracketError{Col: tok.pos, Paren: tok.text}
			}
			operand = true
		case tokenOp:
			if !operand {
				u := unop(tok.text)
				switch u.op {
				case opNop:
					continue
				case opNeg:
					// Prefix operators have no left operand to pop for.
					stack = append(stack, stackop{operator: u, text: tok.text, pos: tok.pos})
					continue
				}
				// Binary operators without a left operand are left to fail
				// during evaluation.
			}
			b := binop(tok.text)
			if b.op == opNone {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text}
			}
			if c.rightpow && b.op == opPow {
				b.right = true
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.open || b.moreBinding(top.operator) {
					break
				}
				emit(pop())
			}
			stack = append(stack, stackop{operator: b, text: tok.text, pos: tok.pos})
			operand = false
		case tokenOther:
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text}
		default:
			panic("scicalc: unknown token: " + tok.String())
		}
	}
	for len(stack) > 0 {
		top := pop()
		if top.open {
			if c.lenient {
				continue
			}
			return nil, &BracketError{Col: top.pos, Paren: top.text}
		}
		emit(top)
	}
	return &p, nil
}

// checkParens checks that every parenthesis in src is matched. The error is
// a *BracketError for the first close parenthesis without an opener, or
// else for the last opener without a closer.
func checkParens(src string) error {
	var opens []int
	col := 0
	for _, r := range src {
		col++
		switch r {
		case OpenParen:
			opens = append(opens, col)
		case CloseParen:
			if len(opens) == 0 {
				return &BracketError{Col: col, Paren: string(CloseParen)}
			}
			opens = opens[:len(opens)-1]
		}
	}
	if len(opens) != 0 {
		return &BracketError{Col: opens[len(opens)-1], Paren: string(OpenParen)}
	}
	return nil
}

// ValidateParentheses reports whether every parenthesis in expr is matched:
// no close parenthesis comes before its opener, and every opener is closed.
func ValidateParentheses(expr string) bool {
	return checkParens(expr) == nil
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the instruction to emit when this operator is popped.
	op opKind
}

// moreBinding reports whether p binds tighter than an operator already on
// the stack. If not, the stacked operator is popped first.
func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of opNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, opAdd}
	case "-":
		return operator{1, false, opSub}
	case "×", "*":
		return operator{5, false, opMul}
	case "÷", "/":
		return operator{5, false, opDiv}
	case "^":
		return operator{15, false, opPow}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of opNone.
func unop(text string) operator {
	switch text {
	case "+":
		return operator{10, true, opNop}
	case "-":
		return operator{10, true, opNeg}
	default:
		return operator{}
	}
}
