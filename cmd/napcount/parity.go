/*
 * parity.go, part of atomcount.
 *
 * Copyright 2026 The atomcount developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nanogeom/atomcount/parity"
)

//NewParityCmd creates the parity subcommand, which benchmarks a count
//table against an atomistic reference table.
func NewParityCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "parity <reference.csv> <counted.csv> <input.csv>",
		Short: "Plot parity and percent-difference maps of two result tables",
		Long: `parity compares two result tables sharing the count-category columns
(Perimeter, Interface, Surface, Total): typically an atomistic reference
and a napcount output. The third table is the input both runs consumed;
its Theta and R (A) columns place each row on the difference heatmaps.

For every shared column it writes parity_<col>.png and heatmap_<col>.png
into the output directory and prints the column's R².`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			r2, err := parity.Run(args[0], args[1], args[2], outDir)
			if err != nil {
				return err
			}
			cols := make([]string, 0, len(r2))
			for col := range r2 {
				cols = append(cols, col)
			}
			sort.Strings(cols)
			for _, col := range cols {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: R² = %.4f\n", col, r2[col])
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "output-dir", "d", ".", "directory for the generated plots")
	return cmd
}
