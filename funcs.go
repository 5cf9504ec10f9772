package calc

import (
	"math"
)

// globalfuncs maps the recognized function names to their operators. Any
// other name of more than one letter is an unknown function.
var globalfuncs = map[string]opKind{
	"sin":  opSin,
	"cos":  opCos,
	"tan":  opTan,
	"sqrt": opSqrt,
}

// monadic holds the implementation of each function operator. There are no
// domain checks; sqrt of a negative number is NaN.
var monadic = map[opKind]func(float64) float64{
	opSin:  math.Sin,
	opCos:  math.Cos,
	opTan:  math.Tan,
	opSqrt: math.Sqrt,
}

// call applies a function operator to its argument. Panics if k is not a
// function.
func (k opKind) call(x float64) float64 {
	f := monadic[k]
	if f == nil {
		panic("calc: call of non-function operator " + k.String())
	}
	return f(x)
}

// Funcs returns the names of the functions recognized in expressions, in
// sorted order.
func Funcs() []string {
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
