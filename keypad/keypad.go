// Package keypad models the calculator's keypad as a pure state machine.
// Each key press is an Action, and Reduce computes the state that follows it.
package keypad

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/zephyrtronium/scicalc"
)

// ErrorText is shown on the display after a failed evaluation.
const ErrorText = scicalc.ErrorText

// Entry is one successful evaluation.
type Entry struct {
	Expression string `json:"expression" yaml:"expression"`
	Result     string `json:"result" yaml:"result"`
}

// State is the calculator state. The zero State is not ready to use; start
// from New.
type State struct {
	// Display is the text on the display.
	Display string `json:"display"`
	// Expression is the text that Equals evaluates.
	Expression string `json:"expression"`
	// Memory is the memory register.
	Memory float64 `json:"memory"`
	// History holds successful evaluations, oldest first. Reduce never
	// modifies a History slice in place.
	History []Entry `json:"history"`
	// Err is set by a failed evaluation and cleared by the next input.
	Err bool `json:"error"`
	// Degrees selects degrees for trigonometric functions.
	Degrees bool `json:"degrees"`
}

// New returns the initial state.
func New() State {
	return State{Display: "0"}
}

// showsNothing reports whether the next digit replaces the display.
func (s State) showsNothing() bool {
	return s.Display == "0" || s.Display == ErrorText
}

// Kind is a kind of action.
type Kind int8

const (
	KindNone Kind = iota
	Digit
	Decimal
	Operator
	Paren
	Equals
	Clear
	Backspace
	Function
	Constant
	MemoryAdd
	MemorySub
	MemoryRecall
	MemoryClear
	ToggleDegrees
)

var kindNames = [...]string{
	KindNone:      "None",
	Digit:         "Digit",
	Decimal:       "Decimal",
	Operator:      "Operator",
	Paren:         "Paren",
	Equals:        "Equals",
	Clear:         "Clear",
	Backspace:     "Backspace",
	Function:      "Function",
	Constant:      "Constant",
	MemoryAdd:     "MemoryAdd",
	MemorySub:     "MemorySub",
	MemoryRecall:  "MemoryRecall",
	MemoryClear:   "MemoryClear",
	ToggleDegrees: "ToggleDegrees",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Action is a key press. Text is the digit, operator, parenthesis, function
// name, or constant for the kinds that need one.
type Action struct {
	Kind Kind
	Text string
}

func (a Action) String() string {
	if a.Text == "" {
		return a.Kind.String()
	}
	return a.Kind.String() + "(" + a.Text + ")"
}

// Reduce returns the state after an action. s is not modified. opts are
// passed to scicalc.EvaluateExpression on Equals.
func Reduce(s State, a Action, opts ...scicalc.Option) State {
	switch a.Kind {
	case Digit:
		s.Err = false
		if s.showsNothing() {
			s.Display, s.Expression = a.Text, a.Text
		} else {
			s.Display += a.Text
			s.Expression += a.Text
		}

	case Decimal:
		s.Err = false
		if strings.Contains(lastNumber(s.Expression), ".") {
			break
		}
		if s.showsNothing() {
			s.Display = "0."
		} else {
			s.Display += "."
		}
		s.Expression += "."

	case Operator:
		s.Err = false
		if s.Display == ErrorText {
			break
		}
		s.Display = a.Text
		s.Expression += a.Text

	case Paren:
		s.Err = false
		if s.Display == ErrorText {
			s.Expression = ""
		}
		s.Display = a.Text
		s.Expression += a.Text

	case Equals:
		if s.Display == ErrorText {
			break
		}
		r, err := scicalc.EvaluateExpression(s.Expression, opts...)
		if err != nil {
			log.WithField("expression", s.Expression).WithError(unwrap(err)).Debug("equals failed")
			return s.failed()
		}
		disp := scicalc.FormatDisplay(r)
		s.History = appendEntry(s.History, Entry{Expression: s.Expression, Result: disp})
		s.Display, s.Expression = disp, disp
		s.Err = false

	case Clear:
		s.Display, s.Expression = "0", ""
		s.Err = false

	case Backspace:
		s.Err = false
		if s.showsNothing() {
			s.Display, s.Expression = "0", ""
			break
		}
		s.Expression = dropLastRune(s.Expression)
		s.Display = s.Expression
		if s.Display == "" {
			s.Display = "0"
		}

	case Function:
		s.Err = false
		if s.Display == ErrorText {
			break
		}
		x, err := strconv.ParseFloat(s.Display, 64)
		if err != nil {
			log.WithFields(logrus.Fields{"function": a.Text, "display": s.Display}).Debug("display is not a number")
			return s.failed()
		}
		r, err := scicalc.Apply(a.Text, x, s.Degrees)
		if err != nil || !finite(r) {
			log.WithFields(logrus.Fields{"function": a.Text, "value": x}).WithError(err).Debug("function failed")
			return s.failed()
		}
		s.Display = scicalc.FormatDisplay(r)
		s.Expression = s.Display

	case Constant:
		s.Err = false
		v, ok := constants[a.Text]
		if !ok {
			break
		}
		text := scicalc.FormatDisplay(v)
		if s.showsNothing() {
			s.Display, s.Expression = text, a.Text
		} else {
			s.Display += text
			s.Expression += a.Text
		}

	case MemoryAdd, MemorySub:
		x, err := strconv.ParseFloat(s.Display, 64)
		if err != nil {
			break
		}
		if a.Kind == MemorySub {
			x = -x
		}
		s.Memory += x

	case MemoryRecall:
		s.Display = scicalc.FormatDisplay(s.Memory)
		s.Expression = scicalc.FormatNumber(s.Memory)

	case MemoryClear:
		s.Memory = 0

	case ToggleDegrees:
		s.Degrees = !s.Degrees
	}
	return s
}

// ReduceAll applies a sequence of actions.
func ReduceAll(s State, actions []Action, opts ...scicalc.Option) State {
	for _, a := range actions {
		s = Reduce(s, a, opts...)
	}
	return s
}

// TrimHistory returns s with only the last n history entries. n <= 0 keeps
// everything.
func TrimHistory(s State, n int) State {
	if n <= 0 || len(s.History) <= n {
		return s
	}
	h := make([]Entry, n)
	copy(h, s.History[len(s.History)-n:])
	s.History = h
	return s
}

func (s State) failed() State {
	s.Display, s.Expression = ErrorText, ""
	s.Err = true
	return s
}

var constants = map[string]float64{
	"π": math.Pi,
	"e": math.E,
}

func appendEntry(h []Entry, e Entry) []Entry {
	r := make([]Entry, len(h), len(h)+1)
	copy(r, h)
	return append(r, e)
}

// lastNumber returns the text after the last operator or parenthesis.
func lastNumber(expr string) string {
	k := strings.LastIndexAny(expr, scicalc.Operators+"()")
	if k < 0 {
		return expr
	}
	_, n := utf8.DecodeRuneInString(expr[k:])
	return expr[k+n:]
}

func dropLastRune(s string) string {
	if s == "" {
		return s
	}
	_, n := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-n]
}

func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// unwrap returns the cause of an evaluation error.
func unwrap(err error) error {
	if ee, ok := err.(*scicalc.EvaluationError); ok {
		return ee.Err
	}
	return err
}
