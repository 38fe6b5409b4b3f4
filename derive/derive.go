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

// Package derive computes symbolic derivatives with respect to the free
// variable.
//
// The derivative is built by structural recursion and is returned
// unsimplified: callers are expected to pass the result to the simplify
// package. Decremented exponents are built symbolically (b-1 rather than
// a folded constant), so differentiation itself performs no integer
// arithmetic; overflow can only surface later, during simplification.
package derive

import (
	"fmt"

	"github.com/symx-org/symx/expr"
)

// Expr returns the derivative of e with respect to the free variable.
//
// The result is a new tree sharing no nodes with e; the input is left
// untouched and can be reused by the caller.
func Expr(e expr.Expr) expr.Expr {
	switch eT := e.(type) {
	case *expr.Const:
		return expr.Int(0)
	case *expr.Var:
		return expr.Int(1)
	case *expr.Sum:
		// Linearity: differentiate every term.
		terms := make([]expr.Expr, len(eT.Terms))
		for i, term := range eT.Terms {
			terms[i] = Expr(term)
		}
		return &expr.Sum{Terms: terms}
	case *expr.Prod:
		return prod(eT)
	case *expr.Neg:
		return expr.Negate(Expr(eT.X))
	case *expr.Pow:
		return pow(eT)
	case *expr.Ln:
		// (ln x)' = x' * x^-1
		return expr.Mul(Expr(eT.X), expr.NewPow(eT.X.Clone(), expr.Int(-1)))
	case *expr.Sin:
		return expr.Mul(Expr(eT.X), expr.NewCos(eT.X.Clone()))
	case *expr.Cos:
		return expr.Mul(Expr(eT.X), expr.Negate(expr.NewSin(eT.X.Clone())))
	case *expr.Arcsin:
		return expr.Mul(Expr(eT.X), invSqrtOneMinus(eT.X))
	case *expr.Arccos:
		return expr.Negate(expr.Mul(Expr(eT.X), invSqrtOneMinus(eT.X)))
	case *expr.Arctan:
		// (arctan x)' = x' * (1+x^2)^-1
		inner := expr.Add(expr.Int(1), expr.NewPow(eT.X.Clone(), expr.Int(2)))
		return expr.Mul(Expr(eT.X), expr.NewPow(inner, expr.Int(-1)))
	}
	panic(fmt.Sprintf("expression type %T not supported", e))
}

// prod applies the generalized product rule: with head a and tail b,
// (a*b)' = a*b' + b*a'. Recursing on the tail re-applies the rule until
// a single factor remains.
func prod(e *expr.Prod) expr.Expr {
	if len(e.Factors) == 0 {
		return expr.Int(0)
	}
	if len(e.Factors) == 1 {
		return Expr(e.Factors[0])
	}
	a := e.Factors[0]
	b := &expr.Prod{Factors: e.Factors[1:]}
	return expr.Add(
		expr.Mul(a.Clone(), Expr(b)),
		expr.Mul(b.Clone(), Expr(a)),
	)
}

// pow differentiates an exponentiation, special-casing the shape of the
// exponent.
func pow(e *expr.Pow) expr.Expr {
	if c, ok := e.Exponent.(*expr.Const); ok {
		switch c.Val {
		case 0:
			return expr.Int(0)
		case 1:
			return Expr(e.Base)
		}
		// Power rule with chain rule: c * a^(b-1) * a'. The decrement
		// stays symbolic and folds during simplification.
		dec := expr.Sub(e.Exponent.Clone(), expr.Int(1))
		return expr.Mul(
			expr.Mul(expr.Int(c.Val), expr.NewPow(e.Base.Clone(), dec)),
			Expr(e.Base),
		)
	}
	// General exponent: a^b = e^{(ln a) b}, so (a^b)' = a^b * ((ln a) b)'.
	return expr.Mul(
		e.Clone(),
		Expr(expr.Mul(expr.NewLn(e.Base.Clone()), e.Exponent.Clone())),
	)
}

// invSqrtOneMinus builds (1-x^2)^(-1/2), the inverse-square-root term of
// the arcsin and arccos derivatives.
func invSqrtOneMinus(x expr.Expr) expr.Expr {
	inner := expr.Add(expr.Int(1), expr.Negate(expr.NewPow(x.Clone(), expr.Int(2))))
	half := expr.Div(expr.Int(1), expr.Int(2))
	return expr.Recip(expr.NewPow(inner, half))
}
