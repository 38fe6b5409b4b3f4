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
	"strconv"
	"strings"
)

func seqString(kind Kind, xs []Expr) string {
	var s strings.Builder
	s.WriteString(kind.String())
	s.WriteString("(")
	for i, x := range xs {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(x.String())
	}
	s.WriteString(")")
	return s.String()
}

func unaryString(kind Kind, x Expr) string {
	return kind.String() + "(" + x.String() + ")"
}

// String returns the constant value, e.g. Const(5).
func (e *Const) String() string {
	return "Const(" + strconv.FormatInt(e.Val, 10) + ")"
}

// String returns Var.
func (e *Var) String() string { return "Var" }

// String returns the terms of the sum, e.g. Sum(Const(1), Var).
func (e *Sum) String() string { return seqString(SumKind, e.Terms) }

// String returns the factors of the product, e.g. Prod(Const(2), Var).
func (e *Prod) String() string { return seqString(ProdKind, e.Factors) }

// String returns the negated operand, e.g. Neg(Var).
func (e *Neg) String() string { return unaryString(NegKind, e.X) }

// String returns the base and exponent, e.g. Pow(Var, Const(2)).
func (e *Pow) String() string {
	return "Pow(" + e.Base.String() + ", " + e.Exponent.String() + ")"
}

// String returns the operand of the logarithm.
func (e *Ln) String() string { return unaryString(LnKind, e.X) }

// String returns the operand of the sine.
func (e *Sin) String() string { return unaryString(SinKind, e.X) }

// String returns the operand of the cosine.
func (e *Cos) String() string { return unaryString(CosKind, e.X) }

// String returns the operand of the inverse sine.
func (e *Arcsin) String() string { return unaryString(ArcsinKind, e.X) }

// String returns the operand of the inverse cosine.
func (e *Arccos) String() string { return unaryString(ArccosKind, e.X) }

// String returns the operand of the inverse tangent.
func (e *Arctan) String() string { return unaryString(ArctanKind, e.X) }
