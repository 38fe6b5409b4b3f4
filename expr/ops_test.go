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
package expr_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/symx-org/symx/expr"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		got  expr.Expr
		want string
	}{
		{
			got:  expr.Int(5),
			want: "Const(5)",
		},
		{
			got:  expr.X(),
			want: "Var",
		},
		{
			got:  expr.Add(expr.X(), expr.Int(1)),
			want: "Sum(Var, Const(1))",
		},
		{
			// Adding to a sum appends instead of nesting.
			got:  expr.Add(expr.Add(expr.X(), expr.Int(1)), expr.Int(2)),
			want: "Sum(Var, Const(1), Const(2))",
		},
		{
			// The right operand is not flattened.
			got:  expr.Add(expr.X(), expr.Add(expr.X(), expr.Int(1))),
			want: "Sum(Var, Sum(Var, Const(1)))",
		},
		{
			got:  expr.Mul(expr.Mul(expr.Int(2), expr.X()), expr.X()),
			want: "Prod(Const(2), Var, Var)",
		},
		{
			got:  expr.Negate(expr.X()),
			want: "Neg(Var)",
		},
		{
			// Double negation collapses at construction time.
			got:  expr.Negate(expr.Negate(expr.X())),
			want: "Var",
		},
		{
			got:  expr.Sub(expr.X(), expr.Int(3)),
			want: "Sum(Var, Neg(Const(3)))",
		},
		{
			got:  expr.Div(expr.X(), expr.Int(3)),
			want: "Prod(Var, Pow(Const(3), Const(-1)))",
		},
		{
			got:  expr.Recip(expr.X()),
			want: "Pow(Var, Const(-1))",
		},
		{
			// The reciprocal of a power negates the exponent.
			got:  expr.Recip(expr.NewPow(expr.X(), expr.Int(2))),
			want: "Pow(Var, Neg(Const(2)))",
		},
		{
			got:  expr.Recip(expr.NewPow(expr.X(), expr.Negate(expr.Int(2)))),
			want: "Pow(Var, Const(2))",
		},
		{
			got:  expr.NewLn(expr.X()),
			want: "Ln(Var)",
		},
		{
			got:  expr.NewArctan(expr.NewSin(expr.X())),
			want: "Arctan(Sin(Var))",
		},
	}
	for ti, test := range tests {
		got := test.got.String()
		if diff := cmp.Diff(got, test.want); diff != "" {
			t.Errorf("test %d: unexpected tree:\n%s", ti, diff)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	src := expr.Add(expr.Mul(expr.Int(2), expr.X()), expr.Int(3))
	clone := src.Clone()
	if !expr.Equal(src, clone) {
		t.Fatalf("clone %s is not equal to its source %s", clone, src)
	}
	// Mutating the source must not show through the clone.
	src.(*expr.Sum).Terms[1].(*expr.Const).Val = 42
	want := "Sum(Prod(Const(2), Var), Const(3))"
	if got := clone.String(); got != want {
		t.Errorf("clone changed with its source: got %s but want %s", got, want)
	}
}
