package calc

// prec returns the binding strength of a binary operator. Multiplicative
// operators must always outrank additive ones; changing this table
// changes what the calculator means.
func prec(op string) int {
	switch op {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	default:
		return 0
	}
}

// ToPostfix converts a token sequence from infix to postfix order using
// the shunting-yard algorithm. Operators of equal precedence pop before
// the incoming one is pushed, so + - * / all associate left. ToPostfix
// is total: a right parenthesis with no matching left, or a left
// parenthesis still on the stack at the end, is discarded rather than
// reported, and structural nonsense passes through for EvalPostfix to
// reject.
func ToPostfix(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	var ops []Token
	for _, t := range toks {
		switch t.Kind {
		case KindNum:
			out = append(out, t)
		case KindOp:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind != KindOp || prec(top.Text) < prec(t.Text) {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, t)
		case KindLeftParen:
			ops = append(ops, t)
		case KindRightParen:
			for len(ops) > 0 && ops[len(ops)-1].Kind != KindLeftParen {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			if len(ops) > 0 {
				// Discard the matching left parenthesis.
				ops = ops[:len(ops)-1]
			}
		default:
			out = append(out, t)
		}
	}
	for len(ops) > 0 {
		t := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if t.Kind == KindOp {
			out = append(out, t)
		}
	}
	return out
}
