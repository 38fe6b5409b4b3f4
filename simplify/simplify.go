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

// Package simplify reduces expression trees to a canonical normal form.
//
// The engine is a fixed-point rewrite system: every child is simplified
// first, then node-local rules are applied to the node until none fires,
// then the children of commutative nodes are sorted in canonical order.
// The result is idempotent: simplifying a normal form changes nothing.
//
// All coefficient arithmetic is checked; an overflow is reported to the
// caller instead of silently wrapping. Recursion depth follows the depth
// of the input tree, so a pathologically deep tree can exhaust the stack.
package simplify

import (
	"github.com/pkg/errors"
	"github.com/symx-org/symx/base/checked"
	"github.com/symx-org/symx/expr"
	"go.uber.org/multierr"
)

// maxLocalPasses bounds the per-node rewrite loop. Every firing rule
// strictly shrinks the node's child count or its folding potential, so
// the bound is unreachable on well-formed trees.
const maxLocalPasses = 1000

// Expr returns the canonical normal form of e.
//
// Expr takes ownership of e: the input tree is rewritten in place and
// must not be used afterwards. Clone the input first to keep it.
func Expr(e expr.Expr) (expr.Expr, error) {
	e, err := subterms(e)
	if err != nil {
		return nil, err
	}
	for pass := 0; ; pass++ {
		if pass >= maxLocalPasses {
			return nil, errors.Errorf("no fixed point after %d rewrite passes on %s", maxLocalPasses, e)
		}
		next, changed, err := rewrite(e)
		if err != nil {
			return nil, err
		}
		e = next
		if !changed {
			break
		}
	}
	switch eT := e.(type) {
	case *expr.Sum:
		expr.SortTerms(eT.Terms)
	case *expr.Prod:
		expr.SortTerms(eT.Factors)
	}
	return e, nil
}

// subterms simplifies every child of e, accumulating the errors of
// independent children.
func subterms(e expr.Expr) (expr.Expr, error) {
	switch eT := e.(type) {
	case *expr.Const, *expr.Var:
		return e, nil
	case *expr.Sum:
		return e, children(eT.Terms)
	case *expr.Prod:
		return e, children(eT.Factors)
	case *expr.Neg:
		return e, child(&eT.X)
	case *expr.Pow:
		return e, multierr.Combine(child(&eT.Base), child(&eT.Exponent))
	case *expr.Ln:
		return e, child(&eT.X)
	case *expr.Sin:
		return e, child(&eT.X)
	case *expr.Cos:
		return e, child(&eT.X)
	case *expr.Arcsin:
		return e, child(&eT.X)
	case *expr.Arccos:
		return e, child(&eT.X)
	case *expr.Arctan:
		return e, child(&eT.X)
	}
	return nil, errors.Errorf("expression type %T not supported", e)
}

func child(x *expr.Expr) error {
	s, err := Expr(*x)
	if err != nil {
		return err
	}
	*x = s
	return nil
}

func children(xs []expr.Expr) error {
	var errs error
	for i := range xs {
		errs = multierr.Append(errs, child(&xs[i]))
	}
	return errs
}

// rewrite applies one round of node-local rules to e, whose children are
// already simplified. It reports whether anything changed.
func rewrite(e expr.Expr) (expr.Expr, bool, error) {
	switch eT := e.(type) {
	case *expr.Const, *expr.Var:
		return e, false, nil
	case *expr.Sum:
		return rewriteSum(eT)
	case *expr.Prod:
		return rewriteProd(eT)
	case *expr.Neg:
		return rewriteNeg(eT)
	case *expr.Pow:
		return rewritePow(eT)
	case *expr.Ln, *expr.Sin, *expr.Cos, *expr.Arcsin, *expr.Arccos, *expr.Arctan:
		return e, false, nil
	}
	return nil, false, errors.Errorf("expression type %T not supported", e)
}

// collapseSequence applies the singleton and empty collapse shared by
// sums and products: an empty sequence reduces to zero and a singleton
// to its sole element.
func collapseSequence(xs []expr.Expr) (expr.Expr, bool) {
	switch len(xs) {
	case 0:
		return expr.Int(0), true
	case 1:
		return xs[0], true
	}
	return nil, false
}

func rewriteNeg(e *expr.Neg) (expr.Expr, bool, error) {
	switch xT := e.X.(type) {
	case *expr.Const:
		v, err := checked.Neg(xT.Val)
		if err != nil {
			return nil, false, err
		}
		return expr.Int(v), true, nil
	case *expr.Neg:
		// One layer per pass; the rewrite loop strips longer runs.
		return xT.X, true, nil
	case *expr.Sum:
		// Distribute the negation over every term and simplify the
		// resulting sum from scratch.
		terms := make([]expr.Expr, len(xT.Terms))
		for i, term := range xT.Terms {
			terms[i] = expr.Negate(term)
		}
		res, err := Expr(&expr.Sum{Terms: terms})
		if err != nil {
			return nil, false, err
		}
		return res, true, nil
	}
	return e, false, nil
}

func rewritePow(e *expr.Pow) (expr.Expr, bool, error) {
	c, isConst := e.Exponent.(*expr.Const)
	if !isConst {
		return e, false, nil
	}
	switch c.Val {
	case 0:
		return expr.Int(1), true, nil
	case 1:
		return e.Base, true, nil
	}
	return e, false, nil
}
