/*
 * geometry_test.go, part of atomcount.
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
	"math"
	"testing"
)

func closeTo(a, b, rel float64) bool {
	if a == b {
		return true
	}
	den := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= rel*den
}

//TestHemisphere checks the degenerate theta=90 cap against the closed
//hemisphere forms: all three radii coincide, curved area 2*pi*r^2,
//basal pi*r^2, volume (2/3)*pi*r^3.
func TestHemisphere(Te *testing.T) {
	g, err := ResolveGeometry(100, BaseRadius, 90)
	if err != nil {
		Te.Fatal(err)
	}
	if g.SphereRadius != 100 || g.BaseRadius != 100 || g.Height != 100 {
		Te.Errorf("hemisphere radii: sphere %g base %g height %g, want all 100", g.SphereRadius, g.BaseRadius, g.Height)
	}
	if !closeTo(g.CurvedArea, 2*math.Pi*1e4, 1e-12) {
		Te.Errorf("curved area %g, want %g", g.CurvedArea, 2*math.Pi*1e4)
	}
	if !closeTo(g.BasalArea, math.Pi*1e4, 1e-12) {
		Te.Errorf("basal area %g, want %g", g.BasalArea, math.Pi*1e4)
	}
	if !closeTo(g.Perimeter, 2*math.Pi*100, 1e-12) {
		Te.Errorf("perimeter %g, want %g", g.Perimeter, 2*math.Pi*100)
	}
	if !closeTo(g.Volume, 2.0/3.0*math.Pi*1e6, 1e-12) {
		Te.Errorf("volume %g, want %g", g.Volume, 2.0/3.0*math.Pi*1e6)
	}
	//The same hemisphere resolved from the curvature radius.
	g2, err := ResolveGeometry(100, SphereRadius, 90)
	if err != nil {
		Te.Fatal(err)
	}
	if *g2 != *g {
		Te.Errorf("hemisphere from R differs from hemisphere from r: %+v vs %+v", g2, g)
	}
}

//TestCapBranches checks the acute and obtuse branches against
//hand-evaluated spherical-cap relations.
func TestCapBranches(Te *testing.T) {
	//acute: r=10, theta=70
	g, err := ResolveGeometry(10, BaseRadius, 70)
	if err != nil {
		Te.Fatal(err)
	}
	if g.Orientation != MinorCap {
		Te.Errorf("theta=70: orientation %v, want minor", g.Orientation)
	}
	if !closeTo(g.SphereRadius, 10.641777724759121, 1e-12) {
		Te.Errorf("sphere radius %g", g.SphereRadius)
	}
	if !closeTo(g.Height, 7.002075382097097, 1e-12) {
		Te.Errorf("height %g", g.Height)
	}
	if !closeTo(g.Volume, 1279.6375965352288, 1e-10) {
		Te.Errorf("volume %g", g.Volume)
	}
	if g.Height >= g.SphereRadius {
		Te.Error("acute cap must be the minor segment (h < R)")
	}
	//obtuse: R=400, theta=125
	g, err = ResolveGeometry(400, SphereRadius, 125)
	if err != nil {
		Te.Fatal(err)
	}
	if g.Orientation != MajorCap {
		Te.Errorf("theta=125: orientation %v, want major", g.Orientation)
	}
	if !closeTo(g.BaseRadius, 327.6608177155967, 1e-12) {
		Te.Errorf("base radius %g", g.BaseRadius)
	}
	if !closeTo(g.Height, 629.4305745404184, 1e-12) {
		Te.Errorf("height %g", g.Height)
	}
	if g.Height <= g.SphereRadius {
		Te.Error("obtuse cap must be the major segment (h > R)")
	}
	if g.Height >= 2*g.SphereRadius {
		Te.Error("cap height cannot exceed the sphere diameter")
	}
}

//TestGeometryInvariants sweeps theta and checks the quantities every
//valid cap must satisfy.
func TestGeometryInvariants(Te *testing.T) {
	for theta := 1.0; theta < 180; theta += 1.0 {
		g, err := ResolveGeometry(50, BaseRadius, theta)
		if err != nil {
			Te.Fatalf("theta=%g: %v", theta, err)
		}
		for name, v := range map[string]float64{
			"sphere radius": g.SphereRadius, "base radius": g.BaseRadius,
			"height": g.Height, "curved area": g.CurvedArea,
			"basal area": g.BasalArea, "perimeter": g.Perimeter, "volume": g.Volume,
		} {
			if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				Te.Fatalf("theta=%g: %s = %g, want positive finite", theta, name, v)
			}
		}
		//The wetted disk can never outgrow the free surface: their
		//ratio is (1+cos(theta))/2 <= 1.
		if g.BasalArea > g.CurvedArea*(1+1e-12) {
			Te.Errorf("theta=%g: basal area %g exceeds curved area %g", theta, g.BasalArea, g.CurvedArea)
		}
		minor := g.Height <= g.SphereRadius*(1+1e-12)
		if minor != (g.Orientation == MinorCap) {
			Te.Errorf("theta=%g: orientation %v inconsistent with h=%g R=%g", theta, g.Orientation, g.Height, g.SphereRadius)
		}
	}
}

//TestContinuityAt90 checks that the acute and obtuse branches meet the
//hemisphere: geometries just below and above 90 degrees agree with the
//closed-form 90-degree cap to first order.
func TestContinuityAt90(Te *testing.T) {
	mid, err := ResolveGeometry(100, BaseRadius, 90)
	if err != nil {
		Te.Fatal(err)
	}
	for _, theta := range []float64{89.999, 90.001} {
		g, err := ResolveGeometry(100, BaseRadius, theta)
		if err != nil {
			Te.Fatal(err)
		}
		if !closeTo(g.Volume, mid.Volume, 1e-4) {
			Te.Errorf("theta=%g: volume %g, hemisphere %g", theta, g.Volume, mid.Volume)
		}
		if !closeTo(g.CurvedArea, mid.CurvedArea, 1e-4) {
			Te.Errorf("theta=%g: curved area %g, hemisphere %g", theta, g.CurvedArea, mid.CurvedArea)
		}
		if !closeTo(g.BasalArea, mid.BasalArea, 1e-4) {
			Te.Errorf("theta=%g: basal area %g, hemisphere %g", theta, g.BasalArea, mid.BasalArea)
		}
	}
}

//TestInvalidGeometry checks that out-of-domain inputs produce typed
//ErrInvalidGeometry values rather than garbage geometries.
func TestInvalidGeometry(Te *testing.T) {
	cases := []struct {
		size, theta float64
	}{
		{0, 90}, {-1, 90}, {100, 0}, {100, 180}, {100, -5}, {100, 200},
		{math.NaN(), 90}, {100, math.NaN()},
	}
	for _, c := range cases {
		g, err := ResolveGeometry(c.size, BaseRadius, c.theta)
		if err == nil {
			Te.Errorf("size=%g theta=%g: expected error, got %+v", c.size, c.theta, g)
			continue
		}
		if _, ok := err.(*ErrInvalidGeometry); !ok {
			Te.Errorf("size=%g theta=%g: error type %T, want *ErrInvalidGeometry", c.size, c.theta, err)
		}
	}
}
