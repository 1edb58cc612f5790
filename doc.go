// Package scicalc implements the expression engine of a scientific
// calculator.
//
// Expressions are what you'd type on a calculator's keypad: numbers, the
// operators + - × ÷ ^, parentheses, and the constants π and e. They are
// converted to postfix with the shunting-yard algorithm and evaluated in
// float64. Every binary operator is left-associative, so "2^3^2" is
// "(2^3)^2" unless RightAssociativePow is given. Unary minus binds tighter
// than × and looser than ^, so "-2^2" is "-(2^2)".
//
// The scalar functions Sin, Cos, Tan, Sqrt, Log, Ln, and Power back the
// keypad's function buttons, and FormatDisplay fits results to the
// calculator's twelve character display.
//
package scicalc
