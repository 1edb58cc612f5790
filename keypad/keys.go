package keypad

import (
	"strconv"
)

// Key maps a keyboard key name to an action: digits, ".", "+", "-", "*",
// "/", "^", parentheses, "Enter" or "=", "Escape" or "c" or "C", and
// "Backspace".
func Key(key string) (Action, bool) {
	switch key {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return Action{Kind: Digit, Text: key}, true
	case ".":
		return Action{Kind: Decimal}, true
	case "+", "-", "^":
		return Action{Kind: Operator, Text: key}, true
	case "*":
		return Action{Kind: Operator, Text: "×"}, true
	case "/":
		return Action{Kind: Operator, Text: "÷"}, true
	case "(", ")":
		return Action{Kind: Paren, Text: key}, true
	case "Enter", "=":
		return Action{Kind: Equals}, true
	case "Escape", "c", "C":
		return Action{Kind: Clear}, true
	case "Backspace":
		return Action{Kind: Backspace}, true
	}
	return Action{}, false
}

var buttons = map[string]Action{
	"×":    {Kind: Operator, Text: "×"},
	"÷":    {Kind: Operator, Text: "÷"},
	"⌫":    {Kind: Backspace},
	"sin":  {Kind: Function, Text: "sin"},
	"cos":  {Kind: Function, Text: "cos"},
	"tan":  {Kind: Function, Text: "tan"},
	"√":    {Kind: Function, Text: "√"},
	"sqrt": {Kind: Function, Text: "√"},
	"log":  {Kind: Function, Text: "log"},
	"ln":   {Kind: Function, Text: "ln"},
	"π":    {Kind: Constant, Text: "π"},
	"pi":   {Kind: Constant, Text: "π"},
	"e":    {Kind: Constant, Text: "e"},
	"M+":   {Kind: MemoryAdd},
	"M-":   {Kind: MemorySub},
	"MR":   {Kind: MemoryRecall},
	"MC":   {Kind: MemoryClear},
	"deg":  {Kind: ToggleDegrees},
}

// Button maps a button label to an action. Labels that are also keyboard
// keys map as Key does.
func Button(label string) (Action, bool) {
	if a, ok := buttons[label]; ok {
		return a, true
	}
	return Key(label)
}

// KeyError is an error indicating a key or button name that has no action.
type KeyError struct {
	// Index is the position of the key in its sequence.
	Index int
	// Key is the name.
	Key string
}

func (err *KeyError) Error() string {
	return "key " + strconv.Itoa(err.Index) + ": unknown key " + strconv.Quote(err.Key)
}

// Parse maps a sequence of key and button names to actions.
func Parse(keys []string) ([]Action, error) {
	r := make([]Action, 0, len(keys))
	for i, k := range keys {
		a, ok := Button(k)
		if !ok {
			return nil, &KeyError{Index: i, Key: k}
		}
		r = append(r, a)
	}
	return r, nil
}
