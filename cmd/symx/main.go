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

// Command symx is a driver for the symbolic-algebra packages: it builds
// sample expressions, reduces them to normal form, differentiates them,
// and prints LaTeX.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symx",
		Short: "symbolic algebra over integer expression trees",
		Long: `symx builds symbolic expressions in one free variable, reduces them
to a canonical normal form, differentiates them, and renders LaTeX.

There is no expression parser: the samples are built programmatically
with the expr package constructors.`,
		SilenceUsage: true,
	}
	cmd.AddCommand(newDemoCmd())
	cmd.AddCommand(newDiffCmd())
	return cmd
}
