/*
 * count.go, part of atomcount.
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

package atomcount

import (
	"fmt"
	"math"
	"strings"
)

//Mode selects how the Total count is derived.
type Mode int

const (
	//VolumeMode derives Total from the cap volume and the bulk density.
	VolumeMode Mode = iota
	//AreaMode treats the particle as an assembly of its two facets:
	//Total = Surface + Interface minus the perimeter atoms that would
	//otherwise be counted on both.
	AreaMode
)

func (m Mode) String() string {
	if m == AreaMode {
		return "area"
	}
	return "volume"
}

//ParseMode maps the user-facing mode names to Mode values.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "volume":
		return VolumeMode, nil
	case "area":
		return AreaMode, nil
	}
	return VolumeMode, fmt.Errorf("atomcount: unknown counting mode %q (want \"volume\" or \"area\")", s)
}

//CountResult holds the four atom counts computed for one input row,
//along with the row that produced them. Counts are non-negative.
type CountResult struct {
	Row       InputRow
	Perimeter int
	Interface int
	Surface   int
	Total     int
}

//roundCount converts a continuous geometric estimate to an atom count:
//round half up, and clamp the tiny negatives that could arise from
//floating-point noise near zero.
func roundCount(x float64) int {
	n := int(math.Floor(x + 0.5))
	if n < 0 {
		n = 0
	}
	return n
}

//Count converts a resolved cap geometry into atom counts for the given
//element. interfaceFacet and surfaceFacet may be blank, in which case
//the catalog's default facet for the element applies. Surface atoms
//come from the curved area, interface atoms from the basal area,
//perimeter atoms from a 1-D packing along the contact line at the
//bulk-derived atomic spacing. Total depends on the mode: the bulk
//count of the cap volume (VolumeMode), or the two facet counts minus
//the shared perimeter atoms (AreaMode).
func Count(g *Geometry, element, interfaceFacet, surfaceFacet string, mode Mode, cat *Catalog) (*CountResult, error) {
	if cat == nil {
		cat = DefaultCatalog()
	}
	bulk, err := cat.BulkDensity(element)
	if err != nil {
		return nil, errDecorate(err, "Count")
	}
	surfDens, err := cat.ArealDensity(element, surfaceFacet)
	if err != nil {
		return nil, errDecorate(err, "Count")
	}
	ifaceDens, err := cat.ArealDensity(element, interfaceFacet)
	if err != nil {
		return nil, errDecorate(err, "Count")
	}
	spacing, err := cat.Spacing(element)
	if err != nil {
		return nil, errDecorate(err, "Count")
	}
	r := new(CountResult)
	r.Perimeter = roundCount(g.Perimeter / spacing)
	r.Interface = roundCount(g.BasalArea * ifaceDens)
	r.Surface = roundCount(g.CurvedArea * surfDens)
	switch mode {
	case VolumeMode:
		r.Total = roundCount(g.Volume * bulk)
	case AreaMode:
		r.Total = r.Surface + r.Interface - r.Perimeter
		if r.Total < 0 {
			r.Total = 0
		}
	}
	return r, nil
}
