/*
 * root.go, part of atomcount.
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
	"os"

	"github.com/spf13/cobra"
)

//NewRootCmd creates the napcount root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "napcount",
		Short: "Nanoparticle atom counter",
		Long: `napcount estimates how many atoms of a supported nanoparticle sit on the
three-phase contact line (Perimeter), the wetted facet (Interface) and the
free facet (Surface), plus the Total, from spherical-cap geometry and
crystallographic packing densities.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(NewCountCmd())
	cmd.AddCommand(NewParityCmd())
	return cmd
}

//Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
