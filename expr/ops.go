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

// The constructors below take ownership of their operands: an operand
// may be stored in the returned tree as is, or be returned directly.
// They guarantee local flattening only; the global canonical form is
// the job of the simplify package.

// Int returns a constant node with the given value.
func Int(v int64) Expr {
	return &Const{Val: v}
}

// X returns the free variable.
func X() Expr {
	return &Var{}
}

// Add combines x and y with addition. When x is already a sum, y is
// appended to its terms instead of nesting a new two-term sum.
func Add(x, y Expr) Expr {
	if s, ok := x.(*Sum); ok {
		s.Terms = append(s.Terms, y)
		return s
	}
	return &Sum{Terms: []Expr{x, y}}
}

// Mul combines x and y with multiplication. When x is already a product,
// y is appended to its factors instead of nesting a new two-factor product.
func Mul(x, y Expr) Expr {
	if p, ok := x.(*Prod); ok {
		p.Factors = append(p.Factors, y)
		return p
	}
	return &Prod{Factors: []Expr{x, y}}
}

// Negate returns the negation of x. Negating a negation unwraps it, so a
// double negation collapses at construction time.
func Negate(x Expr) Expr {
	if n, ok := x.(*Neg); ok {
		return n.X
	}
	return &Neg{X: x}
}

// Sub returns x-y, defined as the addition of the negation.
func Sub(x, y Expr) Expr {
	return Add(x, Negate(y))
}

// Div returns x/y, defined as multiplication by the reciprocal.
func Div(x, y Expr) Expr {
	return Mul(x, Recip(y))
}

// Recip returns the reciprocal of x. The reciprocal of a power negates
// the exponent; any other expression is raised to the power -1.
func Recip(x Expr) Expr {
	if p, ok := x.(*Pow); ok {
		return &Pow{Base: p.Base, Exponent: Negate(p.Exponent)}
	}
	return &Pow{Base: x, Exponent: Int(-1)}
}

// NewPow returns base raised to exponent.
func NewPow(base, exponent Expr) Expr {
	return &Pow{Base: base, Exponent: exponent}
}

// NewLn returns the natural logarithm of x.
func NewLn(x Expr) Expr {
	return &Ln{X: x}
}

// NewSin returns the sine of x.
func NewSin(x Expr) Expr {
	return &Sin{X: x}
}

// NewCos returns the cosine of x.
func NewCos(x Expr) Expr {
	return &Cos{X: x}
}

// NewArcsin returns the inverse sine of x.
func NewArcsin(x Expr) Expr {
	return &Arcsin{X: x}
}

// NewArccos returns the inverse cosine of x.
func NewArccos(x Expr) Expr {
	return &Arccos{X: x}
}

// NewArctan returns the inverse tangent of x.
func NewArctan(x Expr) Expr {
	return &Arctan{X: x}
}
