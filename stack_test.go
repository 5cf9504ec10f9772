package calc

import "testing"

func TestOperands(t *testing.T) {
	s := newOperands()
	if _, ok := s.pop(); ok {
		t.Error("pop from empty operands succeeded")
	}
	s.push(1)
	s.push(2)
	if s.len() != 2 {
		t.Errorf("want 2 operands, have %d", s.len())
	}
	for _, want := range []float64{2, 1} {
		v, ok := s.pop()
		if !ok || v != want {
			t.Errorf("want %g, got %g, %t", want, v, ok)
		}
	}
	if _, ok := s.pop(); ok {
		t.Error("pop past bottom succeeded")
	}
}

func TestOperators(t *testing.T) {
	s := newOperators()
	if !s.empty() {
		t.Error("new operators not empty")
	}
	if _, ok := s.peek(); ok {
		t.Error("peek on empty operators succeeded")
	}
	s.push(pending{op: opOpen, col: 1})
	s.push(pending{op: opSqrt, col: 2})
	if p, ok := s.peek(); !ok || p.op != opSqrt || p.col != 2 {
		t.Errorf("peek gave %v, %t", p, ok)
	}
	for _, want := range []opKind{opSqrt, opOpen} {
		p, ok := s.pop()
		if !ok || p.op != want {
			t.Errorf("want %v, got %v, %t", want, p.op, ok)
		}
	}
	if _, ok := s.pop(); ok || !s.empty() {
		t.Error("pop past bottom succeeded")
	}
}

func TestOpKindPrec(t *testing.T) {
	// Functions bind tighter than products, which bind tighter than sums.
	order := [][]opKind{{opAdd, opSub}, {opMul, opDiv}, {opSin, opCos, opTan, opSqrt}}
	for i, group := range order {
		for _, k := range group {
			if k.prec() != group[0].prec() {
				t.Errorf("%v and %v have different precedence", k, group[0])
			}
			if i > 0 && k.prec() <= order[i-1][0].prec() {
				t.Errorf("%v doesn't bind tighter than %v", k, order[i-1][0])
			}
			if k.isFunc() != (i == 2) {
				t.Errorf("%v isFunc is %t", k, k.isFunc())
			}
		}
	}
	if opOpen.prec() >= 0 {
		t.Errorf("open bracket has precedence %d", opOpen.prec())
	}
	if s := opKind(100).String(); s != "opKind(100)" {
		t.Errorf("bad String for invalid opKind: %q", s)
	}
}
