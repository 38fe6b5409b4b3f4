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
	"slices"
	"strings"

	"github.com/symx-org/symx/base/checked"
	"github.com/symx-org/symx/base/ordered"
	"github.com/symx-org/symx/expr"
)

func rewriteSum(e *expr.Sum) (expr.Expr, bool, error) {
	if flattenSums(e) {
		return e, true, nil
	}
	changed, err := mergeLikeTerms(e)
	if err != nil {
		return nil, false, err
	}
	if changed {
		return e, true, nil
	}
	if collapsed, ok := collapseSequence(e.Terms); ok {
		return collapsed, true, nil
	}
	return e, false, nil
}

// flattenSums splices the terms of any nested sum into e (associativity
// normal form). The spliced terms are already simplified; one level is
// flattened per pass.
func flattenSums(e *expr.Sum) bool {
	nested := false
	for _, term := range e.Terms {
		if term.Kind() == expr.SumKind {
			nested = true
			break
		}
	}
	if !nested {
		return false
	}
	terms := make([]expr.Expr, 0, len(e.Terms))
	for _, term := range e.Terms {
		if s, ok := term.(*expr.Sum); ok {
			terms = append(terms, s.Terms...)
			continue
		}
		terms = append(terms, term)
	}
	e.Terms = terms
	return true
}

// termParts is a sum term split into its constant coefficient and its
// non-constant factors. A bare constant has no factors; a term that is
// not a product counts as a coefficient-1 product of itself.
type termParts struct {
	coeff   int64
	factors []expr.Expr
}

func splitCoeff(term expr.Expr) termParts {
	switch tT := term.(type) {
	case *expr.Const:
		return termParts{coeff: tT.Val}
	case *expr.Prod:
		if len(tT.Factors) > 0 {
			if c, ok := tT.Factors[0].(*expr.Const); ok {
				return termParts{coeff: c.Val, factors: tT.Factors[1:]}
			}
		}
		return termParts{coeff: 1, factors: tT.Factors}
	}
	return termParts{coeff: 1, factors: []expr.Expr{term}}
}

// factorKey builds an order-independent signature of a factor sequence.
// Two terms are like terms iff their signatures are equal.
func factorKey(factors []expr.Expr) string {
	keys := make([]string, len(factors))
	for i, f := range factors {
		keys[i] = f.String()
	}
	slices.Sort(keys)
	return strings.Join(keys, "*")
}

func (p *termParts) rebuild() expr.Expr {
	if len(p.factors) == 0 {
		return expr.Int(p.coeff)
	}
	if p.coeff == 1 {
		if len(p.factors) == 1 {
			return p.factors[0]
		}
		return &expr.Prod{Factors: p.factors}
	}
	factors := append([]expr.Expr{expr.Int(p.coeff)}, p.factors...)
	expr.SortTerms(factors)
	return &expr.Prod{Factors: factors}
}

// mergeLikeTerms unifies terms whose factor sequences are equal as sets,
// summing their coefficients. Pure constants are like terms with an
// empty factor set, so constant folding in sums falls out of the same
// rule. Terms whose merged coefficient is zero are dropped.
func mergeLikeTerms(e *expr.Sum) (bool, error) {
	groups := ordered.NewMap[string, *termParts]()
	for _, term := range e.Terms {
		parts := splitCoeff(term)
		key := factorKey(parts.factors)
		prev, ok := groups.Load(key)
		if !ok {
			groups.Store(key, &parts)
			continue
		}
		coeff, err := checked.Add(prev.coeff, parts.coeff)
		if err != nil {
			return false, err
		}
		prev.coeff = coeff
	}
	merged := groups.Size() < len(e.Terms)
	terms := make([]expr.Expr, 0, groups.Size())
	dropped := false
	for parts := range groups.Values() {
		if parts.coeff == 0 {
			dropped = true
			continue
		}
		terms = append(terms, parts.rebuild())
	}
	if !merged && !dropped {
		return false, nil
	}
	e.Terms = terms
	return true, nil
}
