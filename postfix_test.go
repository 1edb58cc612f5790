package scicalc

import (
	"errors"
	"reflect"
	"regexp"
	"testing"
)

func TestOpPrecsExist(t *testing.T) {
	for _, r := range Operators {
		if b := binop(string(r)); b.op == opNone {
			t.Errorf("no binary operator for %c", r)
		}
	}
}

func TestOpPrecOrder(t *testing.T) {
	add, mul, pow, neg := binop("+"), binop("×"), binop("^"), unop("-")
	if !(add.prec < mul.prec && mul.prec < neg.prec && neg.prec < pow.prec) {
		t.Errorf("wrong precedence order: + %d, × %d, neg %d, ^ %d", add.prec, mul.prec, neg.prec, pow.prec)
	}
	if binop("*") != binop("×") || binop("/") != binop("÷") {
		t.Error("ascii operators differ from their aliases")
	}
	for _, op := range []string{"+", "-", "×", "÷", "^"} {
		if binop(op).right {
			t.Errorf("%s is right-associative", op)
		}
	}
}

func TestPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		opts []Option
		rpn  string
	}{
		{"num", "12.5", nil, "12.5"},
		{"empty", "", nil, ""},
		{"add", "1+2", nil, "1 2 +"},
		{"prec", "2+3×4", nil, "2 3 4 × +"},
		{"paren", "(2+3)×4", nil, "2 3 + 4 ×"},
		{"sub3", "1-2-3", nil, "1 2 - 3 -"},
		{"div3", "8÷4÷2", nil, "8 4 ÷ 2 ÷"},
		{"ascii", "2*3/4", nil, "2 3 × 4 ÷"},
		{"pow3", "2^3^2", nil, "2 3 ^ 2 ^"},
		{"pow3-right", "2^3^2", []Option{RightAssociativePow()}, "2 3 2 ^ ^"},
		{"mixed", "1+2×3^4-5", nil, "1 2 3 4 ^ × + 5 -"},
		{"nested", "2×(3+4)×5", nil, "2 3 4 + × 5 ×"},
		{"deep", "((((1))))", nil, "1"},
		{"spaces", " 1 +\t2 ", nil, "1 2 +"},

		{"neg", "-3", nil, "3 neg"},
		{"negadd", "-3+1", nil, "3 neg 1 +"},
		{"negneg", "--3", nil, "3 neg neg"},
		{"plus", "+3", nil, "3"},
		{"negpow", "-2^2", nil, "2 2 ^ neg"},
		{"powneg", "2^-1", nil, "2 1 neg ^"},
		{"mulneg", "2×-3", nil, "2 3 neg ×"},
		{"parenneg", "(-2)^2", nil, "2 neg 2 ^"},
		{"negmul", "-2×3", nil, "2 neg 3 ×"},

		{"pi", "π", nil, "3.141592653589793"},
		{"e", "e", nil, "2.718281828459045"},
		{"pie", "π×e", nil, "3.141592653589793 2.718281828459045 ×"},
		{"exponent", "1.5e-7", nil, "1.5e-7"},
		{"exponent-add", "1.234568e+12+1", nil, "1.234568e+12 1 +"},

		// Operand errors are found by evaluation, not conversion.
		{"dangling", "2×", nil, "2 ×"},
		{"leading", "×2", nil, "2 ×"},

		{"lenient-close", "(1+2))", []Option{LenientBrackets()}, "1 2 +"},
		{"lenient-open", "((1+2", []Option{LenientBrackets()}, "1 2 +"},
		{"lenient-inverted", ")1(", []Option{LenientBrackets()}, "1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := Compile(c.src, c.opts...)
			if err != nil {
				t.Fatalf("%q failed to compile: %v", c.src, err)
			}
			if s := p.String(); s != c.rpn {
				t.Errorf("%q compiled to %q, want %q", c.src, s, c.rpn)
			}
		})
	}
}

func TestPostfixErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  InputError
		pos  int
		res  []string
	}{
		{"close", "(1+2))", new(BracketError), 6, []string{`(?i)\bbracket\b`, `\)`}},
		{"open", "(1+2", new(BracketError), 1, []string{`(?i)\bbracket\b`, `\(`}},
		{"inverted", ")1(", new(BracketError), 1, []string{`\)`}},
		{"number", "1.2.3", new(NumberError), 1, []string{`(?i)\bnumber\b`, `1\.2\.3`}},
		{"point", "2+.", new(NumberError), 3, []string{`"\."`}},
		{"letter", "2x3", new(OperatorError), 2, []string{`(?i)\bsymbol\b`, `"x"`}},
		{"bang", "3!", new(OperatorError), 2, []string{`"!"`}},
		{"upper-e", "E", new(OperatorError), 1, []string{`"E"`}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := Compile(c.src)
			if p != nil {
				t.Errorf("%q compiled to %v", c.src, p)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Fatalf("wrong error type from %q: want %T, got %T", c.src, c.err, err)
			}
			var ie InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%#v is not an InputError", err)
			}
			if ie.Pos() != c.pos {
				t.Errorf("error %v at wrong position: want %d, got %d", err, c.pos, ie.Pos())
			}
			msg := err.Error()
			for _, re := range c.res {
				if !regexp.MustCompile(re).MatchString(msg) {
					t.Errorf("error message %q does not match %s", msg, re)
				}
			}
		})
	}
}

func TestToPostfixBrackets(t *testing.T) {
	// Compile checks parentheses before conversion, so check that the
	// converter also refuses them on its own.
	cases := []struct {
		name  string
		src   string
		paren string
		pos   int
	}{
		{"close", "1)", ")", 2},
		{"open", "(1", "(", 1},
		{"inner", "(1+(2)", "(", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := toPostfix(tokenize(c.src), compilectx{})
			var be *BracketError
			if !errors.As(err, &be) {
				t.Fatalf("%q gave %#v, not a BracketError", c.src, err)
			}
			if be.Paren != c.paren || be.Col != c.pos {
				t.Errorf("%q gave bracket %q at %d, want %q at %d", c.src, be.Paren, be.Col, c.paren, c.pos)
			}
		})
	}
}

func TestValidateParentheses(t *testing.T) {
	cases := []struct {
		src  string
		want bool
	}{
		{"", true},
		{"1+2", true},
		{"(1+2)", true},
		{"((1)+(2))", true},
		{"(1+2))", false},
		{"(1+2", false},
		{")(", false},
		{"())(", false},
	}
	for _, c := range cases {
		if got := ValidateParentheses(c.src); got != c.want {
			t.Errorf("ValidateParentheses(%q): want %t, got %t", c.src, c.want, got)
		}
	}
}

func TestSubstituteConstants(t *testing.T) {
	cases := []struct {
		src, want string
	}{
		{"1+2", "1+2"},
		{"π", "3.141592653589793"},
		{"2×π", "2×3.141592653589793"},
		{"e", "2.718281828459045"},
		{"e^2", "2.718281828459045^2"},
		{"1e5", "1e5"},
		{"1.5e-7", "1.5e-7"},
		{"1.234568e+12", "1.234568e+12"},
		{"(e)", "(2.718281828459045)"},
		{"2e", "22.718281828459045"},
		{"πe5", "3.1415926535897932.7182818284590455"},
	}
	for _, c := range cases {
		if got := substituteConstants(c.src); got != c.want {
			t.Errorf("substituteConstants(%q): want %q, got %q", c.src, c.want, got)
		}
	}
}

func BenchmarkCompile(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"desc", "2^3×4+5"},
		{"asc", "2+3×4^5"},
		{"parens", "((2+3)×(4-5))÷6"},
		{"consts", "π×e^2"},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Compile(c.src)
			}
		})
	}
}
