// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package latex_test

import (
	"testing"

	"github.com/symx-org/symx/expr"
	"github.com/symx-org/symx/latex"
	"github.com/symx-org/symx/simplify"
)

func TestExpr(t *testing.T) {
	tests := []struct {
		e    expr.Expr
		want string
	}{
		{e: expr.Int(5), want: "5"},
		{e: expr.Int(-3), want: "-3"},
		{e: expr.X(), want: "x"},
		{e: expr.Negate(expr.X()), want: "-(x)"},
		{e: expr.Add(expr.X(), expr.Int(1)), want: "x+1"},
		// A negated term collapses +(-t) into -t.
		{e: expr.Sub(expr.X(), expr.Int(3)), want: "x-3"},
		{e: expr.Mul(expr.Int(2), expr.X()), want: "2x"},
		// A coefficient of one renders empty.
		{e: expr.Mul(expr.Int(1), expr.X()), want: "x"},
		{e: expr.Mul(expr.X(), expr.Int(1)), want: "x"},
		// A constant after the head keeps its parentheses.
		{e: expr.Mul(expr.X(), expr.Int(5)), want: "x(5)"},
		{e: expr.Mul(expr.Add(expr.X(), expr.Int(1)), expr.X()), want: "(x+1)x"},
		{e: expr.NewPow(expr.X(), expr.Int(2)), want: "x^{2}"},
		{e: expr.NewPow(expr.X(), expr.Int(-1)), want: "x^{-1}"},
		{e: expr.NewPow(expr.Add(expr.X(), expr.Int(1)), expr.Int(2)), want: "(x+1)^{2}"},
		{e: expr.NewPow(expr.Mul(expr.Int(2), expr.X()), expr.Int(2)), want: "(2x)^{2}"},
		{e: expr.NewPow(expr.Negate(expr.X()), expr.Int(3)), want: "(-(x))^{3}"},
		{e: expr.NewPow(expr.X(), expr.Add(expr.X(), expr.Int(1))), want: "x^{x+1}"},
		{e: expr.NewLn(expr.X()), want: "ln(x)"},
		{e: expr.NewSin(expr.NewPow(expr.X(), expr.Int(2))), want: "sin(x^{2})"},
		{e: expr.NewArcsin(expr.X()), want: "arcsin(x)"},
		{e: expr.NewArccos(expr.X()), want: "arccos(x)"},
		{e: expr.NewArctan(expr.X()), want: "arctan(x)"},
	}
	for ti, test := range tests {
		if got := latex.Expr(test.e); got != test.want {
			t.Errorf("test %d: got %q but want %q", ti, got, test.want)
		}
	}
}

func TestDriverScenario(t *testing.T) {
	// The walk-through expression (x + 5x)/x, rendered before and after
	// simplification.
	e := expr.X()
	e = expr.Add(e, expr.Mul(expr.X(), expr.Int(5)))
	e = expr.Div(e, expr.X())
	if got, want := latex.Expr(e), "(x+x(5))x^{-1}"; got != want {
		t.Errorf("raw tree renders as %q but want %q", got, want)
	}
	s, err := simplify.Expr(e)
	if err != nil {
		t.Fatalf("cannot simplify: %v", err)
	}
	if got, want := latex.Expr(s), "6"; got != want {
		t.Errorf("simplified tree renders as %q but want %q", got, want)
	}
}

func TestUnitFraction(t *testing.T) {
	// (x+3+2)/(5+x) folds to one and renders as "1".
	num := expr.Add(expr.Add(expr.X(), expr.Int(3)), expr.Int(2))
	den := expr.Add(expr.Int(5), expr.X())
	s, err := simplify.Expr(expr.Div(num, den))
	if err != nil {
		t.Fatalf("cannot simplify: %v", err)
	}
	if got := latex.Expr(s); got != "1" {
		t.Errorf("got %q but want %q", got, "1")
	}
}
