package scicalc

// Option is an option for compiling expressions.
type Option interface {
	option(compilectx) compilectx
}

// compilectx holds the settings for one compilation.
type compilectx struct {
	// rightpow makes ^ right-associative.
	rightpow bool
	// lenient drops unmatched parentheses instead of failing.
	lenient bool
}

type (
	rightpowopt struct{}
	lenientopt  struct{}
)

// RightAssociativePow makes exponentiation right-associative, so that
// "2^3^2" is "2^(3^2)". By default every operator is left-associative.
func RightAssociativePow() Option {
	return rightpowopt{}
}

func (rightpowopt) option(c compilectx) compilectx {
	c.rightpow = true
	return c
}

// LenientBrackets makes compilation silently drop a close parenthesis with
// no open parenthesis and any open parenthesis left at the end, rather than
// failing with a BracketError. EvaluateExpression also skips
// ValidateParentheses.
func LenientBrackets() Option {
	return lenientopt{}
}

func (lenientopt) option(c compilectx) compilectx {
	c.lenient = true
	return c
}

func applyOpts(opts []Option) compilectx {
	var c compilectx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.option(c)
	}
	return c
}
