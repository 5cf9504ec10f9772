package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'calc'.
func tracer() tracing.Trace {
	return tracing.Select("calc")
}

// Vars holds variable values for evaluation. Variable names are single
// letters, and case matters. Eval never modifies a Vars.
type Vars map[rune]float64

// Eval evaluates an expression read from src, looking up variables in vars.
// src is read exactly up to the end of input. If the expression is invalid,
// the error is an *Error, unless reading src itself failed.
func Eval(src io.RuneScanner, vars Vars) (float64, error) {
	e := evaluator{
		scan: lex(src),
		vals: newOperands(),
		ops:  newOperators(),
		vars: vars,
	}
	r, err := e.run()
	if err != nil {
		tracer().Debugf("evaluation failed: %v", err)
		return 0, err
	}
	return r, nil
}

// EvalString is a shortcut to evaluate a string expression.
func EvalString(src string, vars Vars) (float64, error) {
	return Eval(strings.NewReader(src), vars)
}

// evaluator is the state of a single evaluation. Tokens are applied as soon
// as they are scanned; pending operators wait on ops until an operator of no
// higher precedence, a close parenthesis, or the end of input arrives.
type evaluator struct {
	scan *lexer
	vals operands
	ops  operators
	vars Vars
	// operand is whether the next token should begin an operand. It decides
	// whether a minus sign is a sign or a subtraction.
	operand bool
}

func (e *evaluator) run() (float64, error) {
	e.operand = true
	for {
		tok, err := e.scan.next()
		if err != nil {
			return 0, err
		}
		switch tok.kind {
		case tokenEOF:
			return e.finish(tok)
		case tokenNum:
			if err := e.num(tok); err != nil {
				return 0, err
			}
		case tokenWord:
			if err := e.word(tok); err != nil {
				return 0, err
			}
		case tokenOpen:
			e.ops.push(pending{op: opOpen, col: tok.pos})
			e.operand = true
		case tokenClose:
			if err := e.close(tok); err != nil {
				return 0, err
			}
		case tokenOp:
			if err := e.binary(tok); err != nil {
				return 0, err
			}
		default:
			panic("calc: unknown token: " + tok.String())
		}
	}
}

// num pushes a numeric literal.
func (e *evaluator) num(tok lexToken) error {
	v, err := strconv.ParseFloat(tok.text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// Overflow gives ±Inf along with ErrRange, which is the value we
		// want. Anything else is a run of digits and dots that isn't a number.
		return malformed(tok.pos, tok.text, "invalid number "+strconv.Quote(tok.text))
	}
	e.vals.push(v)
	e.operand = false
	return nil
}

// word handles a run of letters: a function name, or a variable.
func (e *evaluator) word(tok lexToken) error {
	if k, ok := globalfuncs[tok.text]; ok {
		// The function's argument is whatever follows, normally a
		// parenthesized group.
		e.ops.push(pending{op: k, col: tok.pos})
		e.operand = false
		return nil
	}
	name := []rune(tok.text)
	if len(name) != 1 {
		return &Error{Kind: UnknownFunction, Col: tok.pos, Text: tok.text}
	}
	v, ok := e.vars[name[0]]
	if !ok {
		return &Error{Kind: UndefinedVariable, Col: tok.pos, Text: tok.text}
	}
	e.vals.push(v)
	e.operand = false
	return nil
}

// close handles a close parenthesis by applying everything back to the
// matching open parenthesis, then discarding it.
func (e *evaluator) close(tok lexToken) error {
	if err := e.reduce(0); err != nil {
		return err
	}
	if top, ok := e.ops.pop(); !ok || top.op != opOpen {
		return malformed(tok.pos, tok.text, "close bracket ) with no open bracket")
	}
	e.operand = false
	return nil
}

// binary handles an operator token. A minus sign where an operand is expected
// is instead the sign of the number immediately following it.
func (e *evaluator) binary(tok lexToken) error {
	k := binop(tok.text)
	if k == opNone {
		panic("calc: lexed unknown operator " + strconv.Quote(tok.text))
	}
	if k == opSub && e.operand {
		num, err := e.scan.signed(tok)
		if err != nil {
			return err
		}
		if num.text == tok.text {
			return malformed(tok.pos, tok.text, "sign with no number")
		}
		return e.num(num)
	}
	// Operators of equal precedence associate to the left, so they are
	// applied before pushing the new one.
	if err := e.reduce(k.prec()); err != nil {
		return err
	}
	e.ops.push(pending{op: k, col: tok.pos})
	e.operand = true
	return nil
}

// finish drains the operator stack at the end of input and returns the sole
// remaining value.
func (e *evaluator) finish(eof lexToken) (float64, error) {
	if err := e.reduce(0); err != nil {
		return 0, err
	}
	if top, ok := e.ops.peek(); ok {
		// reduce only stops early on an open parenthesis.
		return 0, malformed(top.col, "(", "open bracket ( with no close bracket")
	}
	switch e.vals.len() {
	case 0:
		return 0, malformed(eof.pos, "", "no expression")
	case 1:
		r, _ := e.vals.pop()
		return r, nil
	default:
		return 0, malformed(eof.pos, "", strconv.Itoa(e.vals.len())+" values with no operators between them")
	}
}

// reduce applies pending operators, most recent first, as long as their
// precedence is at least prec. It stops at an open parenthesis.
func (e *evaluator) reduce(prec int8) error {
	for {
		top, ok := e.ops.peek()
		if !ok || top.op == opOpen || top.op.prec() < prec {
			return nil
		}
		e.ops.pop()
		if err := e.apply(top); err != nil {
			return err
		}
	}
}

// apply pops the operands of an operator and pushes its result.
func (e *evaluator) apply(p pending) error {
	if p.op.isFunc() {
		x, ok := e.vals.pop()
		if !ok {
			return malformed(p.col, p.op.String(), "no argument for "+p.op.String())
		}
		r := p.op.call(x)
		tracer().Debugf("%v(%g) = %g", p.op, x, r)
		e.vals.push(r)
		return nil
	}
	rhs, ok := e.vals.pop()
	if !ok {
		return malformed(p.col, p.op.String(), "no operands for "+p.op.String())
	}
	lhs, ok := e.vals.pop()
	if !ok {
		return malformed(p.col, p.op.String(), "missing operand for "+p.op.String())
	}
	var r float64
	switch p.op {
	case opAdd:
		r = lhs + rhs
	case opSub:
		r = lhs - rhs
	case opMul:
		r = lhs * rhs
	case opDiv:
		if rhs == 0 {
			return &Error{Kind: DivisionByZero, Col: p.col, Text: "/"}
		}
		r = lhs / rhs
	default:
		panic("calc: apply invalid operator " + p.op.String())
	}
	tracer().Debugf("%g %v %g = %g", lhs, p.op, rhs, r)
	e.vals.push(r)
	return nil
}
