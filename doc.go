// Package calc implements a small real-number calculator for embedding.
//
// Expressions are written with the usual infix operators + - * /, grouped
// with parentheses, and may apply the functions sin, cos, tan, and sqrt to a
// parenthesized argument. Single letters are variables, looked up in the Vars
// given to Eval. A minus sign where an operand is expected is part of the
// number that follows it, so "3*-2" is -6, but "-x" is an error.
//
// Evaluation happens in a single pass over the input, without building a
// syntax tree. Nothing is retained between calls, so Eval is safe to call
// concurrently as long as the Vars passed to it are not being modified.
//
package calc
