package calc_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/Muthuselvi-09/calc"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"empty", "", 0},
		{"num", "7", 7},
		{"decimal", "1.5", 1.5},
		{"add", "2+3", 5},
		{"sub", "2-3", -1},
		{"mul", "2*3", 6},
		{"div", "1/2", 0.5},
		{"precedence", "2+3*4", 14},
		{"parens", "(2+3)*4", 20},
		{"assoc-sub", "8-3-2", 3},
		{"assoc-div", "8/4/2", 1},
		{"nested", "(1+2)*(3+4)", 21},
		{"glyph-mul", "2×3", 6},
		{"glyph-div", "6÷2", 3},
		{"unmatched-close", "2+3)", 5},
		{"unmatched-open", "(2+3", 5},
		{"leftover-operand", "(2)(3)", 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.Evaluate(c.src)
			if err != nil {
				t.Fatalf("evaluating %q: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("evaluating %q: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestEvaluatePrecedenceObservable(t *testing.T) {
	a, err := calc.Evaluate("2+3*4")
	if err != nil {
		t.Fatal(err)
	}
	b, err := calc.Evaluate("(2+3)*4")
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Errorf("parenthesization is not observable: both evaluate to %g", a)
	}
}

func TestEvaluateDivZero(t *testing.T) {
	cases := []struct {
		name string
		src  string
		inf  int
		nan  bool
	}{
		{"pos-inf", "5/0", 1, false},
		{"neg-inf", "0-5/0", -1, false},
		{"nan", "0/0", 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.Evaluate(c.src)
			if err != nil {
				t.Fatalf("evaluating %q: %v", c.src, err)
			}
			if c.nan {
				if !math.IsNaN(r) {
					t.Errorf("evaluating %q: want NaN, got %g", c.src, r)
				}
				return
			}
			if !math.IsInf(r, c.inf) {
				t.Errorf("evaluating %q: want Inf(%d), got %g", c.src, c.inf, r)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	number := func(err error) bool { _, ok := err.(*calc.NumberError); return ok }
	operand := func(err error) bool { _, ok := err.(*calc.OperandError); return ok }
	cases := []struct {
		name string
		src  string
		kind func(error) bool
	}{
		{"malformed-number", "3.4.5", number},
		{"bare-dot", "1+.", number},
		{"trailing-op", "1+", operand},
		{"lone-op", "*", operand},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := calc.Evaluate(c.src)
			if err == nil {
				t.Fatalf("evaluating %q gave no error", c.src)
			}
			if !c.kind(err) {
				t.Errorf("evaluating %q gave wrong error kind: %#v", c.src, err)
			}
			ee, ok := err.(calc.EvalError)
			if !ok {
				t.Fatalf("error %#v does not implement EvalError", err)
			}
			if ee.Pos() < 1 {
				t.Errorf("error %v has position %d", ee, ee.Pos())
			}
		})
	}
}

func TestEvalPostfixUnderflow(t *testing.T) {
	_, err := calc.EvalPostfix([]calc.Token{{Text: "+", Kind: calc.KindOp, Pos: 1}})
	oe, ok := err.(*calc.OperandError)
	if !ok {
		t.Fatalf("error %#v is not *calc.OperandError", err)
	}
	if oe.Op != "+" {
		t.Errorf("wrong operator in error: %q", oe.Op)
	}
}

func TestEvalPostfixStrayParen(t *testing.T) {
	toks := []calc.Token{
		{Text: "1", Kind: calc.KindNum, Pos: 1},
		{Text: "(", Kind: calc.KindLeftParen, Pos: 2},
	}
	_, err := calc.EvalPostfix(toks)
	if _, ok := err.(*calc.ExpressionError); !ok {
		t.Fatalf("error %#v is not *calc.ExpressionError", err)
	}
}

func TestEvalPostfixEmpty(t *testing.T) {
	r, err := calc.EvalPostfix(nil)
	if err != nil {
		t.Fatal(err)
	}
	if r != 0 {
		t.Errorf("empty sequence evaluated to %g", r)
	}
}

func BenchmarkEvaluate(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		calc.Evaluate("(2+3)*4-5/0.5")
	}
}

func ExampleEvaluate() {
	fmt.Println(calc.Evaluate("2+3*4"))
	fmt.Println(calc.Evaluate("(2+3)*4"))
	fmt.Println(calc.Evaluate("8-3-2"))
	fmt.Println(calc.Evaluate("2×3"))
	fmt.Println(calc.Evaluate(""))
	fmt.Println(calc.Evaluate("1+"))
	// Output:
	// 14 <nil>
	// 20 <nil>
	// 3 <nil>
	// 6 <nil>
	// 0 <nil>
	// 0 2: operator + with insufficient operands
}
