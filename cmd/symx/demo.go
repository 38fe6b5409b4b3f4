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

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/symx-org/symx/expr"
	"github.com/symx-org/symx/latex"
	"github.com/symx-org/symx/simplify"
)

// newDemoCmd creates a new demo command.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "build (x+5x)/x and reduce it to normal form",
		Long: `demo walks through the life of one expression: it builds (x+5x)/x
with the algebraic constructors, prints the raw tree and its LaTeX, then
simplifies it down to the constant 6.`,
		RunE: runDemo,
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	e := expr.X()
	e = expr.Add(e, expr.Mul(expr.X(), expr.Int(5)))
	e = expr.Div(e, expr.X())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "tree:       %s\n", e)
	fmt.Fprintf(out, "latex:      %s\n", latex.Expr(e))

	s, err := simplify.Expr(e)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "normal:     %s\n", s)
	fmt.Fprintf(out, "normal tex: %s\n", latex.Expr(s))
	return nil
}
