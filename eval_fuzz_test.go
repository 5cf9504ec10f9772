package calc_test

import (
	"testing"

	"github.com/zephyrtronium/calc"
)

func FuzzEval(f *testing.F) {
	f.Add("x")
	f.Add("y")
	f.Add("-x")
	f.Add("sin(x)/cos(x)")
	f.Add("((1+2)*-3")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := calc.EvalString(s, calc.Vars{'x': 1})
		if err != nil {
			if _, ok := calc.KindOf(err); !ok {
				t.Errorf("evaluating %q: error %v is not an evaluation error", s, err)
			}
			if r != 0 {
				t.Errorf("evaluating %q: result %g along with error %v", s, r, err)
			}
		}
	})
}
