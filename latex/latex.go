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

// Package latex renders expression trees as LaTeX math-mode fragments.
//
// Rendering is total over all trees and pure: it never fails and never
// modifies its input. A child is parenthesized only when rendering it
// bare would change its parsed grouping.
package latex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/symx-org/symx/expr"
)

// Expr renders e as a LaTeX math-mode fragment, without enclosing $...$.
func Expr(e expr.Expr) string {
	switch eT := e.(type) {
	case *expr.Const:
		return strconv.FormatInt(eT.Val, 10)
	case *expr.Var:
		return "x"
	case *expr.Sum:
		return sum(eT)
	case *expr.Prod:
		return prod(eT)
	case *expr.Neg:
		return "-(" + Expr(eT.X) + ")"
	case *expr.Pow:
		return pow(eT)
	case *expr.Ln:
		return "ln(" + Expr(eT.X) + ")"
	case *expr.Sin:
		return "sin(" + Expr(eT.X) + ")"
	case *expr.Cos:
		return "cos(" + Expr(eT.X) + ")"
	case *expr.Arcsin:
		return "arcsin(" + Expr(eT.X) + ")"
	case *expr.Arccos:
		return "arccos(" + Expr(eT.X) + ")"
	case *expr.Arctan:
		return "arctan(" + Expr(eT.X) + ")"
	}
	panic(fmt.Sprintf("expression type %T not supported", e))
}

// sum joins terms with +, collapsing +(-t) into -t for negated terms.
// An empty sum is unreachable after simplification but still renders.
func sum(e *expr.Sum) string {
	if len(e.Terms) == 0 {
		return "0"
	}
	var s strings.Builder
	s.WriteString(Expr(e.Terms[0]))
	for _, term := range e.Terms[1:] {
		if n, ok := term.(*expr.Neg); ok {
			s.WriteString("-")
			s.WriteString(Expr(n.X))
			continue
		}
		s.WriteString("+")
		s.WriteString(Expr(term))
	}
	return s.String()
}

// prod renders factors by juxtaposition. Sums and negations are
// parenthesized to keep their grouping; so is every constant after the
// head, where bare digits would run into the previous factor. Factors
// equal to one are suppressed.
func prod(e *expr.Prod) string {
	if len(e.Factors) == 0 {
		return "0"
	}
	var s strings.Builder
	head := e.Factors[0]
	switch hT := head.(type) {
	case *expr.Const:
		if hT.Val != 1 {
			s.WriteString(strconv.FormatInt(hT.Val, 10))
		}
	case *expr.Sum, *expr.Neg:
		s.WriteString("(" + Expr(head) + ")")
	default:
		s.WriteString(Expr(head))
	}
	for _, f := range e.Factors[1:] {
		switch fT := f.(type) {
		case *expr.Const:
			if fT.Val == 1 {
				continue
			}
			s.WriteString("(" + Expr(f) + ")")
		case *expr.Sum, *expr.Neg:
			s.WriteString("(" + Expr(f) + ")")
		default:
			s.WriteString(Expr(f))
		}
	}
	return s.String()
}

// pow renders the base, parenthesized when it is a sum, product, or
// negation, and the exponent in braces.
func pow(e *expr.Pow) string {
	base := Expr(e.Base)
	switch e.Base.(type) {
	case *expr.Sum, *expr.Prod, *expr.Neg:
		base = "(" + base + ")"
	}
	return base + "^{" + Expr(e.Exponent) + "}"
}
