package keypad

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zephyrtronium/scicalc"
)

// press feeds space-separated key names to the reducer
func press(t *testing.T, s State, keys string, opts ...scicalc.Option) State {
	actions, err := Parse(strings.Fields(keys))
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return ReduceAll(s, actions, opts...)
}

// Test digits, operators and equals
func TestEquals(t *testing.T) {
	check := func(keys string, display, expression string) {
		s := press(t, New(), keys)
		assert.Equal(t, display, s.Display, "display after %q", keys)
		assert.Equal(t, expression, s.Expression, "expression after %q", keys)
	}

	check("", "0", "")
	check("7", "7", "7")
	check("0 0 7", "7", "7")
	check("1 2", "12", "12")
	check("2 +", "+", "2+")
	check("2 + 3", "+3", "2+3")
	check("2 + 3 * 4", "×4", "2+3×4")
	check("2 + 3 * 4 =", "14", "14")
	check("( 2 + 3 ) * 4 =", "20", "20")
	check("2 ^ 3 ^ 2 =", "64", "64")
	check("2 - 5 =", "-3", "-3")
	check("2 - 5 = * 2 =", "-6", "-6")
	check("1 2 3 4 5 6 * 1 0 0 0 0 0 0 0 =", "1.234560e+12", "1.234560e+12")
	check("1 2 3 4 5 6 * 1 0 0 0 0 0 0 0 = + 1 =", "1.234560e+12", "1.234560e+12")
	check("Enter", "Error", "")
}

func TestRightAssociativePow(t *testing.T) {
	s := press(t, New(), "2 ^ 3 ^ 2 =", scicalc.RightAssociativePow())
	assert.Equal(t, "512", s.Display)
}

func TestErrors(t *testing.T) {
	s := press(t, New(), "1 / 0 =")
	assert.Equal(t, ErrorText, s.Display)
	assert.Equal(t, "", s.Expression)
	assert.True(t, s.Err)
	assert.Empty(t, s.History)

	// equals again does nothing
	assert.Equal(t, s, press(t, s, "="))

	// operators are ignored but clear the flag
	s2 := press(t, s, "+")
	assert.Equal(t, ErrorText, s2.Display)
	assert.False(t, s2.Err)

	// digits and parentheses start over
	s2 = press(t, s, "7")
	assert.Equal(t, "7", s2.Display)
	assert.Equal(t, "7", s2.Expression)
	s2 = press(t, s, "(")
	assert.Equal(t, "(", s2.Display)
	assert.Equal(t, "(", s2.Expression)

	for _, keys := range []string{"( 1 + 2 =", "1 + 2 ) =", "* =", "( ) ="} {
		s = press(t, New(), keys)
		assert.Equal(t, ErrorText, s.Display, "display after %q", keys)
		assert.True(t, s.Err, "error after %q", keys)
	}
}

func TestDecimal(t *testing.T) {
	s := press(t, New(), ".")
	assert.Equal(t, "0.", s.Display)
	assert.Equal(t, ".", s.Expression)

	s = press(t, s, "5 .")
	assert.Equal(t, "0.5", s.Display)
	assert.Equal(t, ".5", s.Expression)

	s = press(t, s, "+ 1 . 5 =")
	assert.Equal(t, "2", s.Display)

	// one point per number
	s = press(t, New(), "1 . 2 . 3")
	assert.Equal(t, "1.23", s.Expression)
}

func TestClearBackspace(t *testing.T) {
	s := press(t, New(), "1 2 Backspace")
	assert.Equal(t, "1", s.Display)
	assert.Equal(t, "1", s.Expression)

	s = press(t, s, "Backspace")
	assert.Equal(t, "0", s.Display)
	assert.Equal(t, "", s.Expression)

	s = press(t, s, "Backspace")
	assert.Equal(t, New(), s)

	// backspace removes whole characters
	s = press(t, New(), "2 * Backspace")
	assert.Equal(t, "2", s.Expression)

	s = press(t, New(), "1 / 0 = Backspace")
	assert.Equal(t, "0", s.Display)
	assert.False(t, s.Err)

	s = press(t, New(), "4 M+ 1 + 2 = C")
	assert.Equal(t, "0", s.Display)
	assert.Equal(t, "", s.Expression)
	assert.Equal(t, 4.0, s.Memory)
	assert.Len(t, s.History, 1)
}

func TestFunctions(t *testing.T) {
	check := func(keys string, display string, err bool) {
		s := press(t, New(), keys)
		assert.Equal(t, display, s.Display, "display after %q", keys)
		assert.Equal(t, err, s.Err, "error after %q", keys)
		if display != ErrorText {
			assert.Equal(t, display, s.Expression, "expression after %q", keys)
		}
	}

	check("9 sqrt", "3", false)
	check("1 6 √", "4", false)
	check("1 0 0 0 log", "3", false)
	check("0 sin", "0", false)
	check("0 cos", "1", false)
	check("deg 9 0 sin", "1", false)
	check("deg 1 8 0 cos", "-1", false)
	check("2 ln", "6.931472e-1", false)
	check("0 ln", ErrorText, true)
	check("0 log", ErrorText, true)
	check("2 - sqrt", ErrorText, true)
	check("2 - 3 = sqrt", ErrorText, true)
	check("1 / 0 = sin", ErrorText, false)
}

func TestConstants(t *testing.T) {
	s := press(t, New(), "π")
	assert.Equal(t, "3.141593e+0", s.Display)
	assert.Equal(t, "π", s.Expression)

	s = press(t, New(), "2 * π =")
	assert.Equal(t, "6.283185e+0", s.Display)

	s = press(t, New(), "e =")
	assert.Equal(t, "2.718282e+0", s.Display)

	s = press(t, New(), "pi")
	assert.Equal(t, "π", s.Expression)
}

func TestMemory(t *testing.T) {
	s := press(t, New(), "5 M+ M+ C MR")
	assert.Equal(t, 10.0, s.Memory)
	assert.Equal(t, "10", s.Display)
	assert.Equal(t, "10", s.Expression)

	s = press(t, s, "M- M-")
	assert.Equal(t, -10.0, s.Memory)

	s = press(t, s, "C MR + 1 =")
	assert.Equal(t, "-9", s.Display)

	s = press(t, s, "MC")
	assert.Equal(t, 0.0, s.Memory)

	// a display that is not a number is ignored
	s = press(t, New(), "3 M+ 1 + M+")
	assert.Equal(t, 3.0, s.Memory)
}

func TestHistory(t *testing.T) {
	s1 := press(t, New(), "1 + 1 =")
	if assert.Len(t, s1.History, 1) {
		assert.Equal(t, Entry{Expression: "1+1", Result: "2"}, s1.History[0])
	}

	s2 := press(t, s1, "+ 1 =")
	s3 := press(t, s1, "* 5 =")
	assert.Len(t, s1.History, 1)
	if assert.Len(t, s2.History, 2) && assert.Len(t, s3.History, 2) {
		assert.Equal(t, Entry{Expression: "2+1", Result: "3"}, s2.History[1])
		assert.Equal(t, Entry{Expression: "2×5", Result: "10"}, s3.History[1])
	}

	s := TrimHistory(s2, 1)
	assert.Equal(t, []Entry{{Expression: "2+1", Result: "3"}}, s.History)
	assert.Len(t, s2.History, 2)
	assert.Equal(t, s2, TrimHistory(s2, 0))
	assert.Equal(t, s2, TrimHistory(s2, 5))
}

func TestKeys(t *testing.T) {
	check := func(key string, kind Kind, text string) {
		a, ok := Button(key)
		if assert.True(t, ok, "key %q", key) {
			assert.Equal(t, Action{Kind: kind, Text: text}, a, "key %q", key)
		}
	}

	check("0", Digit, "0")
	check("9", Digit, "9")
	check(".", Decimal, "")
	check("*", Operator, "×")
	check("/", Operator, "÷")
	check("×", Operator, "×")
	check("^", Operator, "^")
	check(")", Paren, ")")
	check("=", Equals, "")
	check("Enter", Equals, "")
	check("c", Clear, "")
	check("Escape", Clear, "")
	check("⌫", Backspace, "")
	check("sqrt", Function, "√")
	check("ln", Function, "ln")
	check("e", Constant, "e")
	check("MR", MemoryRecall, "")
	check("deg", ToggleDegrees, "")

	_, ok := Key("sin")
	assert.False(t, ok)
	_, ok = Key("x")
	assert.False(t, ok)

	_, err := Parse([]string{"1", "+", "x"})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), `unknown key "x"`)
		ke, ok := err.(*KeyError)
		if assert.True(t, ok) {
			assert.Equal(t, 2, ke.Index)
		}
	}

	assert.Equal(t, "Function(sin)", Action{Kind: Function, Text: "sin"}.String())
	assert.Equal(t, "Equals", Action{Kind: Equals}.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
