package calc

import "strconv"

// opKind is an entry on the operator stack: a binary operator, a function,
// or an open parenthesis.
type opKind int8

const (
	opNone opKind = iota

	opAdd // pop r, l; push l + r
	opSub // pop r, l; push l - r
	opMul // pop r, l; push l * r
	opDiv // pop r, l; push l / r unless r is zero

	opSin  // pop x; push sin x
	opCos  // pop x; push cos x
	opTan  // pop x; push tan x
	opSqrt // pop x; push sqrt x

	// opOpen is an open parenthesis. Draining the operator stack never pops
	// past it; only a close parenthesis removes it.
	opOpen
)

var opnames = [...]string{
	opNone: "None",
	opAdd:  "+",
	opSub:  "-",
	opMul:  "*",
	opDiv:  "/",
	opSin:  "sin",
	opCos:  "cos",
	opTan:  "tan",
	opSqrt: "sqrt",
	opOpen: "(",
}

func (k opKind) String() string {
	if k < 0 || int(k) >= len(opnames) {
		return "opKind(" + strconv.Itoa(int(k)) + ")"
	}
	return opnames[k]
}

// prec is the binding strength of an operator. Higher is more binding. Open
// parentheses have no precedence and report -1.
func (k opKind) prec() int8 {
	switch k {
	case opAdd, opSub:
		return 1
	case opMul, opDiv:
		return 2
	case opSin, opCos, opTan, opSqrt:
		return 3
	default:
		return -1
	}
}

// isFunc is whether the operator takes one operand rather than two.
func (k opKind) isFunc() bool {
	switch k {
	case opSin, opCos, opTan, opSqrt:
		return true
	}
	return false
}

// Operators contains the runes which are considered to be binary operators.
const Operators = "+-*/"

// binop gets the binary operator for a token. If there is no such operator,
// the result is opNone.
func binop(text string) opKind {
	switch text {
	case "+":
		return opAdd
	case "-":
		return opSub
	case "*":
		return opMul
	case "/":
		return opDiv
	default:
		return opNone
	}
}

// pending is an operator waiting on the operator stack, along with the column
// where it appeared so that errors can point at it.
type pending struct {
	op  opKind
	col int
}
