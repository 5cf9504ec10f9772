package calc_test

import (
	"fmt"

	"github.com/zephyrtronium/calc"
)

func ExampleEvalString() {
	vars := calc.Vars{'x': 5}
	for _, src := range []string{"x+1", "(3+4)*2", "3*-2", "sqrt(x*x-9)", "y", "1/0"} {
		r, err := calc.EvalString(src, vars)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Println(r)
	}

	// Output:
	// 6
	// 14
	// -6
	// 4
	// Error: 1: undefined variable "y"
	// Error: 2: division by zero
}
