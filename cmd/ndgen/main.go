// Copyright 2025 go-ndarray Authors
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

// Command ndgen generates the rank-specialised loops of package nd/loops.
//
// Usage:
//
//	ndgen --max-dims 10 --arity 3 --output nd/loops --package loops
//
// Or via go:generate:
//
//	//go:generate go run ../../cmd/ndgen --max-dims 10 --arity 3 --output . --package loops
//
// It writes two files:
//  1. z_nested.go: one loop nest per rank and arity, plus the MaxDims
//     constant and the rank-indexed nestedLoops tables.
//  2. z_blocked.go: the same nests with the two innermost loops tiled,
//     and the blockedLoops tables (rank 2 and up).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	gen := &Generator{}
	cmd := &cobra.Command{
		Use:           "ndgen",
		Short:         "Generate rank-specialised strided loops",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			files, err := gen.Run()
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&gen.MaxDims, "max-dims", 10, "Largest rank with specialised loops")
	cmd.Flags().IntVar(&gen.Arity, "arity", 3, fmt.Sprintf("Largest number of views visited together (1 to %d)", len(viewNames)))
	cmd.Flags().StringVar(&gen.OutputDir, "output", ".", "Output directory")
	cmd.Flags().StringVar(&gen.Package, "package", "loops", "Output package name")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
