/*
 * count_test.go, part of atomcount.
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
	"testing"
)

//TestCountHemisphereAg is the closed-form sanity case: r=100 A,
//theta=90, Ag, blank facets, volume mode. The hemisphere has no
//acute/obtuse ambiguity, so the counts follow directly from the Ag
//densities: volume (2/3)pi*1e6 A^3 at 0.0586662 atoms/A^3, curved area
//2pi*1e4 A^2 and basal area pi*1e4 A^2 at the default (111) packing
//0.138373 atoms/A^2, perimeter 2pi*100 A at one atom per 2.5736 A.
func TestCountHemisphereAg(Te *testing.T) {
	g, err := ResolveGeometry(100, BaseRadius, 90)
	if err != nil {
		Te.Fatal(err)
	}
	r, err := Count(g, "Ag", "", "", VolumeMode, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if r.Perimeter != 244 || r.Interface != 4347 || r.Surface != 8694 || r.Total != 122870 {
		Te.Errorf("volume mode: got P=%d I=%d S=%d T=%d, want 244/4347/8694/122870",
			r.Perimeter, r.Interface, r.Surface, r.Total)
	}
	//Area mode shares the facet counts; Total is their sum minus the
	//contact-line atoms counted on both facets.
	ra, err := Count(g, "Ag", "", "", AreaMode, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if ra.Perimeter != r.Perimeter || ra.Interface != r.Interface || ra.Surface != r.Surface {
		Te.Error("area mode changed the per-facet counts")
	}
	if want := r.Surface + r.Interface - r.Perimeter; ra.Total != want {
		Te.Errorf("area mode total %d, want %d", ra.Total, want)
	}
}

//TestCountBranches pins the two branch cases from the sample input:
//an acute Ag particle given by its base radius and an obtuse Cu
//particle given by its curvature radius.
func TestCountBranches(Te *testing.T) {
	g, err := ResolveGeometry(10, BaseRadius, 70)
	if err != nil {
		Te.Fatal(err)
	}
	r, err := Count(g, "Ag", "", "", VolumeMode, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if r.Perimeter != 24 || r.Interface != 43 || r.Surface != 65 || r.Total != 75 {
		Te.Errorf("Ag r=10 theta=70: got P=%d I=%d S=%d T=%d, want 24/43/65/75",
			r.Perimeter, r.Interface, r.Surface, r.Total)
	}
	g, err = ResolveGeometry(400, SphereRadius, 125)
	if err != nil {
		Te.Fatal(err)
	}
	r, err = Count(g, "Cu", "", "", VolumeMode, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if r.Perimeter != 904 || r.Interface != 59608 || r.Surface != 279573 || r.Total != 20044901 {
		Te.Errorf("Cu R=400 theta=125: got P=%d I=%d S=%d T=%d, want 904/59608/279573/20044901",
			r.Perimeter, r.Interface, r.Surface, r.Total)
	}
}

//TestCountMonotonicInSize grows the size parameter at fixed theta,
//element and facets; no count may decrease.
func TestCountMonotonicInSize(Te *testing.T) {
	for _, theta := range []float64{40.0, 90.0, 140.0} {
		prev := &CountResult{}
		for size := 5.0; size <= 500; size *= 1.3 {
			g, err := ResolveGeometry(size, BaseRadius, theta)
			if err != nil {
				Te.Fatal(err)
			}
			r, err := Count(g, "Pt", "", "", VolumeMode, nil)
			if err != nil {
				Te.Fatal(err)
			}
			if r.Perimeter < prev.Perimeter || r.Interface < prev.Interface ||
				r.Surface < prev.Surface || r.Total < prev.Total {
				Te.Errorf("theta=%g size=%g: counts decreased: %+v after %+v", theta, size, r, prev)
			}
			if r.Perimeter < 0 || r.Interface < 0 || r.Surface < 0 || r.Total < 0 {
				Te.Errorf("theta=%g size=%g: negative count in %+v", theta, size, r)
			}
			prev = r
		}
	}
}

//TestCountContinuityAt90 checks that counts via the acute branch just
//below 90 degrees and the obtuse branch just above agree with the
//hemisphere within a few atoms of rounding.
func TestCountContinuityAt90(Te *testing.T) {
	g, _ := ResolveGeometry(100, BaseRadius, 90)
	mid, err := Count(g, "Ag", "", "", VolumeMode, nil)
	if err != nil {
		Te.Fatal(err)
	}
	for _, theta := range []float64{89.999, 90.001} {
		g, err := ResolveGeometry(100, BaseRadius, theta)
		if err != nil {
			Te.Fatal(err)
		}
		r, err := Count(g, "Ag", "", "", VolumeMode, nil)
		if err != nil {
			Te.Fatal(err)
		}
		for name, pair := range map[string][2]int{
			"Perimeter": {r.Perimeter, mid.Perimeter},
			"Interface": {r.Interface, mid.Interface},
			"Surface":   {r.Surface, mid.Surface},
			"Total":     {r.Total, mid.Total},
		} {
			diff := pair[0] - pair[1]
			if diff < 0 {
				diff = -diff
			}
			//1e-3 degrees moves the hemisphere counts by at most a
			//few parts in 1e5 plus one rounding step.
			if tol := pair[1]/10000 + 1; diff > tol {
				Te.Errorf("theta=%g: %s = %d, hemisphere %d (tol %d)", theta, name, pair[0], pair[1], tol)
			}
		}
	}
}

//TestCountFacetSelection checks blank-facet defaulting and explicit
//facet lookups against each other.
func TestCountFacetSelection(Te *testing.T) {
	g, _ := ResolveGeometry(50, BaseRadius, 80)
	blank, err := Count(g, "Ag", "", "", VolumeMode, nil)
	if err != nil {
		Te.Fatal(err)
	}
	explicit, err := Count(g, "Ag", "111", "(111)", VolumeMode, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if *blank != *explicit {
		Te.Errorf("blank facets %+v differ from explicit (111) %+v", blank, explicit)
	}
	//A sparser facet packs fewer atoms on the same area.
	sparser, err := Count(g, "Ag", "110", "110", VolumeMode, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if sparser.Surface >= blank.Surface || sparser.Interface >= blank.Interface {
		Te.Errorf("(110) counts %+v not below (111) counts %+v", sparser, blank)
	}
}

//TestCountErrors checks that catalog failures propagate typed from
//Count.
func TestCountErrors(Te *testing.T) {
	g, _ := ResolveGeometry(50, BaseRadius, 80)
	if _, err := Count(g, "Og", "", "", VolumeMode, nil); err == nil {
		Te.Error("expected unknown-element error")
	} else if _, ok := err.(*ErrUnknownElement); !ok {
		Te.Errorf("error type %T, want *ErrUnknownElement", err)
	}
	if _, err := Count(g, "Ag", "321", "", VolumeMode, nil); err == nil {
		Te.Error("expected unknown-facet error")
	} else if _, ok := err.(*ErrUnknownFacet); !ok {
		Te.Errorf("error type %T, want *ErrUnknownFacet", err)
	}
}

//TestParseMode covers the two mode names and the failure path.
func TestParseMode(Te *testing.T) {
	for s, want := range map[string]Mode{"volume": VolumeMode, "AREA": AreaMode, " Volume ": VolumeMode} {
		got, err := ParseMode(s)
		if err != nil || got != want {
			Te.Errorf("ParseMode(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseMode("perimeter"); err == nil {
		Te.Error("expected an error for an unknown mode")
	}
	if fmt.Sprint(VolumeMode, AreaMode) != "volume area" {
		Te.Errorf("mode names: %v %v", VolumeMode, AreaMode)
	}
}
