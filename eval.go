package calc

import "strconv"

// EvalPostfix computes the value of a postfix token sequence using an
// operand stack. Numbers parse with strconv.ParseFloat and push;
// operators pop the right operand, then the left, and push the result.
// Division follows float64 semantics, so dividing by zero yields an
// infinity or NaN rather than an error.
//
// An empty sequence evaluates to 0, matching a cleared display. If more
// than one operand remains at the end, as from input like "3 4", the top
// of the stack is returned and the rest are dropped; the evaluator stays
// tolerant of half-typed expressions the same way the converter is
// tolerant of unmatched parentheses.
func EvalPostfix(toks []Token) (float64, error) {
	var stack []float64
	for _, t := range toks {
		switch t.Kind {
		case KindNum:
			v, err := strconv.ParseFloat(t.Text, 64)
			if err != nil {
				return 0, &NumberError{Col: t.Pos, Text: t.Text}
			}
			stack = append(stack, v)
		case KindOp:
			if len(stack) < 2 {
				return 0, &OperandError{Col: t.Pos, Op: t.Text}
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			var r float64
			switch t.Text {
			case "+":
				r = a + b
			case "-":
				r = a - b
			case "*":
				r = a * b
			case "/":
				r = a / b
			default:
				return 0, &ExpressionError{Col: t.Pos, Text: t.Text}
			}
			stack = append(stack, r)
		default:
			// A parenthesis here means ToPostfix was bypassed.
			return 0, &ExpressionError{Col: t.Pos, Text: t.Text}
		}
	}
	if len(stack) == 0 {
		return 0, nil
	}
	return stack[len(stack)-1], nil
}

// Evaluate computes the value of an infix expression. It normalizes
// display glyphs, then runs Tokenize, ToPostfix, and EvalPostfix in
// order. This is the one entry point a calculator front end needs; any
// error is one of the types in this package and carries the column it
// occurred at.
func Evaluate(expr string) (float64, error) {
	return EvalPostfix(ToPostfix(Tokenize(DisplayGlyphs.Replace(expr))))
}
