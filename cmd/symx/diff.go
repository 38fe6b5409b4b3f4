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
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/symx-org/symx/derive"
	"github.com/symx-org/symx/expr"
	"github.com/symx-org/symx/latex"
	"github.com/symx-org/symx/simplify"
)

var samples = map[string]func() expr.Expr{
	// x^3 + 2x + 1
	"poly": func() expr.Expr {
		e := expr.NewPow(expr.X(), expr.Int(3))
		e = expr.Add(e, expr.Mul(expr.Int(2), expr.X()))
		return expr.Add(e, expr.Int(1))
	},
	// sin(x^2)
	"sin": func() expr.Expr {
		return expr.NewSin(expr.NewPow(expr.X(), expr.Int(2)))
	},
	// x / (1 + x^2)
	"ratio": func() expr.Expr {
		den := expr.Add(expr.Int(1), expr.NewPow(expr.X(), expr.Int(2)))
		return expr.Div(expr.X(), den)
	},
	// x^x
	"xpowx": func() expr.Expr {
		return expr.NewPow(expr.X(), expr.X())
	},
	// arctan(ln(x))
	"arctan": func() expr.Expr {
		return expr.NewArctan(expr.NewLn(expr.X()))
	},
}

func sampleNames() []string {
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// newDiffCmd creates a new diff command.
func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "differentiate a built-in sample expression",
		Long: `diff differentiates one of the built-in sample expressions with
respect to x and prints each derivative in normal form.`,
		RunE: runDiff,
	}
	addDiffFlags(cmd.Flags())
	return cmd
}

func addDiffFlags(f *pflag.FlagSet) {
	f.StringP("sample", "s", "poly",
		"sample expression to differentiate: "+strings.Join(sampleNames(), ", "))
	f.IntP("order", "n", 1, "highest derivative order to compute")
	f.Bool("latex", false, "print LaTeX instead of debug trees")
}

func runDiff(cmd *cobra.Command, args []string) error {
	name, err := cmd.Flags().GetString("sample")
	if err != nil {
		return err
	}
	order, err := cmd.Flags().GetInt("order")
	if err != nil {
		return err
	}
	asLaTeX, err := cmd.Flags().GetBool("latex")
	if err != nil {
		return err
	}
	build, ok := samples[name]
	if !ok {
		return errors.Errorf("no sample named %q; choose one of %s", name, strings.Join(sampleNames(), ", "))
	}
	if order < 1 {
		return errors.Errorf("derivative order %d must be at least 1", order)
	}

	render := expr.Expr.String
	if asLaTeX {
		render = latex.Expr
	}
	out := cmd.OutOrStdout()
	e, err := simplify.Expr(build())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "f(x)   = %s\n", render(e))
	for n := 1; n <= order; n++ {
		if e, err = simplify.Expr(derive.Expr(e)); err != nil {
			return err
		}
		fmt.Fprintf(out, "f%s(x) = %s\n", strings.Repeat("'", n), render(e))
	}
	return nil
}
