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

package simplify

import (
	"github.com/symx-org/symx/base/checked"
	"github.com/symx-org/symx/base/ordered"
	"github.com/symx-org/symx/expr"
)

func rewriteProd(e *expr.Prod) (expr.Expr, bool, error) {
	if flattenProds(e) {
		return e, true, nil
	}
	for _, f := range e.Factors {
		if c, ok := f.(*expr.Const); ok && c.Val == 0 {
			// A zero factor annihilates the whole product.
			return expr.Int(0), true, nil
		}
	}
	changed, err := foldConstFactors(e)
	if err != nil {
		return nil, false, err
	}
	if changed {
		return e, true, nil
	}
	if changed, err = mergePowers(e); err != nil {
		return nil, false, err
	}
	if changed {
		return e, true, nil
	}
	if collapsed, ok := collapseSequence(e.Factors); ok {
		return collapsed, true, nil
	}
	return e, false, nil
}

// flattenProds splices the factors of any nested product into e. A
// power base is never flattened into the product; shared bases are
// handled by power consolidation instead.
func flattenProds(e *expr.Prod) bool {
	nested := false
	for _, f := range e.Factors {
		if f.Kind() == expr.ProdKind {
			nested = true
			break
		}
	}
	if !nested {
		return false
	}
	factors := make([]expr.Expr, 0, len(e.Factors))
	for _, f := range e.Factors {
		if p, ok := f.(*expr.Prod); ok {
			factors = append(factors, p.Factors...)
			continue
		}
		factors = append(factors, f)
	}
	e.Factors = factors
	return true
}

// foldConstFactors multiplies all constant factors into a single
// constant at the head of the product. A folded factor of one is
// dropped when other factors remain.
func foldConstFactors(e *expr.Prod) (bool, error) {
	acc := int64(1)
	n := 0
	for _, f := range e.Factors {
		c, ok := f.(*expr.Const)
		if !ok {
			continue
		}
		n++
		var err error
		if acc, err = checked.Mul(acc, c.Val); err != nil {
			return false, err
		}
	}
	if n == 0 {
		return false, nil
	}
	unit := acc == 1 && n < len(e.Factors)
	if n == 1 && !unit {
		return false, nil
	}
	factors := make([]expr.Expr, 0, len(e.Factors)-n+1)
	if !unit {
		factors = append(factors, expr.Int(acc))
	}
	for _, f := range e.Factors {
		if f.Kind() != expr.ConstKind {
			factors = append(factors, f)
		}
	}
	e.Factors = factors
	return true, nil
}

// powerGroup collects the factors of a product sharing one base. When
// the base occurs only once its original factor node is kept untouched.
type powerGroup struct {
	base      expr.Expr
	exponents []expr.Expr
	factor    expr.Expr
}

func splitPower(f expr.Expr) (base, exponent expr.Expr) {
	if p, ok := f.(*expr.Pow); ok {
		return p.Base, p.Exponent
	}
	return f, expr.Int(1)
}

// mergePowers consolidates factors with equal bases into a single power
// whose exponent is the sum of the individual exponents, a bare factor
// counting as exponent one. A factor and its reciprocal share a base, so
// fraction cancellation falls out of the same rule through the zero
// exponent identity.
func mergePowers(e *expr.Prod) (bool, error) {
	groups := ordered.NewMap[string, *powerGroup]()
	for _, f := range e.Factors {
		base, exponent := splitPower(f)
		key := base.String()
		g, ok := groups.Load(key)
		if !ok {
			groups.Store(key, &powerGroup{base: base, exponents: []expr.Expr{exponent}, factor: f})
			continue
		}
		g.exponents = append(g.exponents, exponent)
	}
	if groups.Size() == len(e.Factors) {
		return false, nil
	}
	factors := make([]expr.Expr, 0, groups.Size())
	for g := range groups.Values() {
		if len(g.exponents) == 1 {
			factors = append(factors, g.factor)
			continue
		}
		merged, err := Expr(&expr.Pow{
			Base:     g.base,
			Exponent: &expr.Sum{Terms: g.exponents},
		})
		if err != nil {
			return false, err
		}
		factors = append(factors, merged)
	}
	e.Factors = factors
	return true, nil
}
