package calc

import (
	"github.com/emirpasic/gods/stacks/linkedliststack"
)

// operands is the stack of intermediate values. Pops report underflow rather
// than panicking, so that a malformed expression can't read past the bottom.
type operands struct {
	s *linkedliststack.Stack
}

func newOperands() operands {
	return operands{s: linkedliststack.New()}
}

func (o operands) push(v float64) {
	o.s.Push(v)
}

// pop removes the top value. ok is false if the stack was empty.
func (o operands) pop() (v float64, ok bool) {
	x, ok := o.s.Pop()
	if !ok {
		return 0, false
	}
	return x.(float64), true
}

func (o operands) len() int {
	return o.s.Size()
}

// operators is the stack of pending operators, functions, and open
// parentheses.
type operators struct {
	s *linkedliststack.Stack
}

func newOperators() operators {
	return operators{s: linkedliststack.New()}
}

func (o operators) push(p pending) {
	o.s.Push(p)
}

func (o operators) pop() (pending, bool) {
	x, ok := o.s.Pop()
	if !ok {
		return pending{}, false
	}
	return x.(pending), true
}

func (o operators) peek() (pending, bool) {
	x, ok := o.s.Peek()
	if !ok {
		return pending{}, false
	}
	return x.(pending), true
}

func (o operators) empty() bool {
	return o.s.Empty()
}
