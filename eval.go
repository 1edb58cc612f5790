package scicalc

import (
	"math"
	"strings"

	"github.com/sirupsen/logrus"
)

// Eval evaluates the program. The result may be infinite or NaN; only
// EvaluateExpression rejects those.
func (p *Program) Eval() (float64, error) {
	stack := make([]float64, 0, len(p.code))
	for _, in := range p.code {
		if in.op == opNum {
			stack = append(stack, in.num)
			continue
		}
		if n := in.op.arity(); len(stack) < n {
			return 0, &ArityError{Col: in.pos, Operator: in.text, Have: len(stack), Want: n}
		}
		if in.op == opNeg {
			stack[len(stack)-1] = -stack[len(stack)-1]
			continue
		}
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		a := &stack[len(stack)-1]
		switch in.op {
		case opAdd:
			*a += b
		case opSub:
			*a -= b
		case opMul:
			*a *= b
		case opDiv:
			if b == 0 {
				return 0, &DivisionByZeroError{Col: in.pos}
			}
			*a /= b
		case opPow:
			*a = math.Pow(*a, b)
		default:
			panic("scicalc: invalid instruction " + in.op.symbol())
		}
	}
	if len(stack) != 1 {
		return 0, &ResultError{Len: len(stack)}
	}
	return stack[0], nil
}

// EvaluateExpression parses and evaluates an expression. Any failure,
// including unmatched parentheses, division by zero, and a result that is
// infinite or NaN, is returned as an *EvaluationError.
func EvaluateExpression(expr string, opts ...Option) (float64, error) {
	p, err := Compile(expr, opts...)
	if err != nil {
		return 0, fail(expr, err)
	}
	r, err := p.Eval()
	if err != nil {
		return 0, fail(expr, err)
	}
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return 0, fail(expr, &NonFiniteError{X: r})
	}
	log.WithFields(logrus.Fields{
		"expression": expr,
		"postfix":    p.String(),
		"result":     r,
	}).Debug("evaluated")
	return r, nil
}

func fail(expr string, err error) error {
	log.WithField("expression", expr).WithError(err).Debug("evaluation failed")
	return &EvaluationError{Expr: expr, Err: err}
}

var (
	piText = FormatNumber(math.Pi)
	eText  = FormatNumber(math.E)
)

// substituteConstants replaces π and e with their values. An e that is the
// exponent marker of a number, as in 1.5e-7, is kept.
func substituteConstants(s string) string {
	if !strings.ContainsAny(s, "πe") {
		return s
	}
	rs := []rune(s)
	at := func(i int) rune {
		if i >= len(rs) {
			return -1
		}
		return rs[i]
	}
	var b strings.Builder
	for i, r := range rs {
		switch {
		case r == 'π':
			b.WriteString(piText)
		case r == 'e' && !(i > 0 && isNumRune(rs[i-1]) && expFollows(at(i+1), at(i+2))):
			b.WriteString(eText)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
