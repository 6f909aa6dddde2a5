// Package calc implements a calculator's arithmetic expression evaluator.
//
// An expression is a string of decimal numbers, the operators + - * /,
// and parentheses, as typed on a calculator keypad. Evaluate converts it
// to a float64 in three stages: Tokenize scans the string into tokens,
// ToPostfix reorders them into reverse-Polish form with a shunting-yard
// operator stack, and EvalPostfix computes the result with an operand
// stack.
//
// The pipeline is deliberately lenient, because its input is a display
// buffer being typed key by key: unrecognized characters and unmatched
// parentheses are dropped rather than reported, and malformed input
// surfaces only when evaluation actually needs the value. Every stage is
// a pure function, so concurrent calls need no coordination.
package calc
