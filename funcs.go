package scicalc

import (
	"math"
	"strconv"
)

// Func is a function of one variable as found on the calculator's function
// buttons. degrees is only meaningful to trigonometric functions.
type Func func(x float64, degrees bool) (float64, error)

var globalfuncs = map[string]Func{
	"sin":  trig(Sin),
	"cos":  trig(Cos),
	"tan":  trig(Tan),
	"sqrt": plain(Sqrt),
	"√":    plain(Sqrt),
	"log":  plain(Log),
	"ln":   plain(Ln),
}

func trig(f func(float64, bool) float64) Func {
	return func(x float64, degrees bool) (float64, error) {
		return f(x, degrees), nil
	}
}

func plain(f func(float64) (float64, error)) Func {
	return func(x float64, _ bool) (float64, error) {
		return f(x)
	}
}

// LookupFunc returns the function with the given button name, or nil if there
// is none. The names are sin, cos, tan, sqrt, √, log, and ln.
func LookupFunc(name string) Func {
	return globalfuncs[name]
}

// FuncNames returns the names LookupFunc knows, sorted.
func FuncNames() []string {
	names := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// Apply calls the named function. If there is no such function, the error is
// a *FuncError.
func Apply(name string, x float64, degrees bool) (float64, error) {
	f := globalfuncs[name]
	if f == nil {
		return 0, &FuncError{Name: name}
	}
	return f(x, degrees)
}

func radians(x float64, degrees bool) float64 {
	if degrees {
		return x * math.Pi / 180
	}
	return x
}

// Sin returns the sine of x, which is in degrees if degrees is true and
// radians otherwise.
func Sin(x float64, degrees bool) float64 {
	return math.Sin(radians(x, degrees))
}

// Cos returns the cosine of x, which is in degrees if degrees is true and
// radians otherwise.
func Cos(x float64, degrees bool) float64 {
	return math.Cos(radians(x, degrees))
}

// Tan returns the tangent of x, which is in degrees if degrees is true and
// radians otherwise. Near odd multiples of π/2 the result is very large
// rather than an error.
func Tan(x float64, degrees bool) float64 {
	return math.Tan(radians(x, degrees))
}

// Sqrt returns the square root of x. Negative x is a *DomainError.
func Sqrt(x float64) (float64, error) {
	if x < 0 {
		return 0, &DomainError{X: x, Func: "sqrt"}
	}
	return math.Sqrt(x), nil
}

// Log returns the base 10 logarithm of x. Zero or negative x is a
// *DomainError. The result is exact for integer powers of ten.
func Log(x float64) (float64, error) {
	if x <= 0 {
		return 0, &DomainError{X: x, Func: "log"}
	}
	r := math.Log10(x)
	if p := math.Round(r); math.Pow(10, p) == x {
		return p, nil
	}
	return r, nil
}

// Ln returns the natural logarithm of x. Zero or negative x is a
// *DomainError.
func Ln(x float64) (float64, error) {
	if x <= 0 {
		return 0, &DomainError{X: x, Func: "ln"}
	}
	return math.Log(x), nil
}

// Power returns base^exponent with the same semantics as the ^ operator.
func Power(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}

// DomainError is an error returned when a function is called on an argument
// outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Func is a name identifying the function.
	Func string
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

// FuncError is an error indicating a function name that LookupFunc does not
// know.
type FuncError struct {
	// Name is the unknown name.
	Name string
}

func (err *FuncError) Error() string {
	return "unknown function " + strconv.Quote(err.Name)
}
