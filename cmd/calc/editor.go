package main

import "strings"

// editRunes are the runes the editor accepts: everything the tokenizer
// recognizes plus the display glyphs for multiplication and division.
const editRunes = "0123456789.+-*/()×÷"

const operators = "+-*/×÷"

// Editor is the input buffer of the calculator display. The evaluator
// core treats the expression as an immutable snapshot; all key-by-key
// editing lives here.
type Editor struct {
	expr string
}

// Expr returns the current expression as displayed.
func (e *Editor) Expr() string {
	return e.expr
}

// Append appends a rune to the expression. Runes the evaluator would
// drop anyway are ignored.
func (e *Editor) Append(r rune) {
	if !strings.ContainsRune(editRunes, r) {
		return
	}
	e.expr += string(r)
}

// DeleteLast removes the last rune of the expression.
func (e *Editor) DeleteLast() {
	if e.expr == "" {
		return
	}
	r := []rune(e.expr)
	e.expr = string(r[:len(r)-1])
}

// Clear empties the expression.
func (e *Editor) Clear() {
	e.expr = ""
}

// Set replaces the expression, e.g. to continue calculating with a
// previous result.
func (e *Editor) Set(expr string) {
	e.expr = expr
}

// ToggleSign negates the trailing numeric literal by inserting or
// removing a minus in front of it. A minus counts as a sign rather than
// a subtraction when it is at the start of the expression, after (, or
// after another operator. With no trailing literal the expression is
// unchanged.
func (e *Editor) ToggleSign() {
	r := []rune(e.expr)
	i := len(r)
	for i > 0 && (r[i-1] == '.' || ('0' <= r[i-1] && r[i-1] <= '9')) {
		i--
	}
	if i == len(r) {
		return
	}
	if i > 0 && r[i-1] == '-' && (i == 1 || r[i-2] == '(' || strings.ContainsRune(operators, r[i-2])) {
		e.expr = string(r[:i-1]) + string(r[i:])
		return
	}
	e.expr = string(r[:i]) + "-" + string(r[i:])
}

// EvalExpr returns the expression in the form the evaluator understands.
// The core has no unary minus, so each sign minus is rewritten as a
// subtraction from zero: at the start of the expression or after ( it
// becomes "0-", and after another operator it becomes "(0-". The opening
// parenthesis needs no matching close; the converter fixes the operator
// order first and then drops unmatched parentheses.
func (e *Editor) EvalExpr() string {
	var b strings.Builder
	var prev rune
	for _, r := range e.expr {
		if r == '-' {
			switch {
			case prev == 0, prev == '(':
				b.WriteString("0")
			case strings.ContainsRune(operators, prev):
				b.WriteString("(0")
			}
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}
