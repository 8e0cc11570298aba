// Package rpn evaluates arithmetic expressions written in infix notation.
//
// Evaluation happens in two stages. Convert scans an expression and reorders
// it into postfix (reverse Polish) notation using the shunting-yard algorithm.
// Evaluate then reduces the postfix sequence with a value stack. The grammar
// is numbers, the binary operators + - * /, and parentheses; * and / bind
// tighter than + and -, and operators of equal precedence group from the
// left, so "10-2-3" is 5.
//
// Arithmetic is float64, including its treatment of division by zero: "6/0"
// is +Inf, not an error.
package rpn
