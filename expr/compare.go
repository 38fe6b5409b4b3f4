// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package expr

import (
	"cmp"
	"fmt"
	"slices"
)

// Compare orders x and y under the canonical total order: first by kind
// rank in declaration order, then structurally within the same kind
// (numeric compare for constants, element-wise sequence compare for sums
// and products, recursive compare of children otherwise). It returns a
// negative number when x sorts before y, zero when the trees are equal,
// and a positive number otherwise.
//
// The order carries no algebraic meaning. It exists to sort the children
// of commutative nodes so that semantically equal simplified expressions
// are also structurally equal.
func Compare(x, y Expr) int {
	if c := cmp.Compare(x.Kind(), y.Kind()); c != 0 {
		return c
	}
	switch xT := x.(type) {
	case *Const:
		return cmp.Compare(xT.Val, y.(*Const).Val)
	case *Var:
		return 0
	case *Sum:
		return slices.CompareFunc(xT.Terms, y.(*Sum).Terms, Compare)
	case *Prod:
		return slices.CompareFunc(xT.Factors, y.(*Prod).Factors, Compare)
	case *Neg:
		return Compare(xT.X, y.(*Neg).X)
	case *Pow:
		yT := y.(*Pow)
		if c := Compare(xT.Base, yT.Base); c != 0 {
			return c
		}
		return Compare(xT.Exponent, yT.Exponent)
	case *Ln:
		return Compare(xT.X, y.(*Ln).X)
	case *Sin:
		return Compare(xT.X, y.(*Sin).X)
	case *Cos:
		return Compare(xT.X, y.(*Cos).X)
	case *Arcsin:
		return Compare(xT.X, y.(*Arcsin).X)
	case *Arccos:
		return Compare(xT.X, y.(*Arccos).X)
	case *Arctan:
		return Compare(xT.X, y.(*Arctan).X)
	}
	panic(fmt.Sprintf("expression type %T not supported", x))
}

// Equal reports whether x and y are structurally equal. For simplified
// expressions, structural equality coincides with semantic equality up
// to the defined rule set.
func Equal(x, y Expr) bool {
	return Compare(x, y) == 0
}

// SortTerms sorts a sequence of expressions in non-decreasing canonical
// order, in place.
func SortTerms(xs []Expr) {
	slices.SortFunc(xs, Compare)
}
