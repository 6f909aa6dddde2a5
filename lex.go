package calc

import "strings"

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

// DisplayGlyphs maps the multiplication and division glyphs a calculator
// display shows to the operator runes the evaluator understands. Evaluate
// applies this before tokenizing; callers invoking Tokenize directly must
// normalize themselves.
var DisplayGlyphs = strings.NewReplacer("×", "*", "÷", "/")

// Tokenize scans an expression into tokens. Digits and the decimal point
// accumulate into a pending number; an operator or parenthesis flushes
// the pending number and emits its own token; any other rune is dropped
// without flushing, so the scan never fails. The numeric text is not
// validated here: a buffer like "3.4.5" becomes a KindNum token and is
// rejected only when EvalPostfix parses it.
func Tokenize(src string) []Token {
	var (
		toks  []Token
		buf   strings.Builder
		start int
	)
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		toks = append(toks, Token{Text: buf.String(), Kind: KindNum, Pos: start})
		buf.Reset()
	}
	pos := 1
	for _, r := range src {
		switch {
		case '0' <= r && r <= '9', r == '.':
			if buf.Len() == 0 {
				start = pos
			}
			buf.WriteRune(r)
		case strings.ContainsRune(Operators, r):
			flush()
			toks = append(toks, Token{Text: string(r), Kind: KindOp, Pos: pos})
		case r == '(':
			flush()
			toks = append(toks, Token{Text: "(", Kind: KindLeftParen, Pos: pos})
		case r == ')':
			flush()
			toks = append(toks, Token{Text: ")", Kind: KindRightParen, Pos: pos})
		}
		pos++
	}
	flush()
	return toks
}
