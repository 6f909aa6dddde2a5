package calc

import "strconv"

// Token is one lexical element of an expression. Tokens are immutable
// once produced; each stage of the pipeline reads a sequence of them in
// scan order.
type Token struct {
	// Text is the token as originally scanned. For KindNum it is the
	// unvalidated numeric text; for the other kinds it is the symbol.
	Text string
	Kind Kind
	// Pos is the rune column of the start of the token, counting from 1.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// Kind distinguishes the variants of Token.
type Kind int

const (
	KindNone Kind = iota
	// KindNum is a decimal number.
	KindNum
	// KindOp is one of the operators + - * /.
	KindOp
	// KindLeftParen is (.
	KindLeftParen
	// KindRightParen is ).
	KindRightParen
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindNum:
		return "Num"
	case KindOp:
		return "Op"
	case KindLeftParen:
		return "LeftParen"
	case KindRightParen:
		return "RightParen"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}
