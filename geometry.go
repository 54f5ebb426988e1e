/*
 * geometry.go, part of atomcount.
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

import "math"

//SizeKind tells the resolver which radius an input size parameter is.
type SizeKind int

const (
	//BaseRadius is the radius of the wetted circle, the column "r (A)".
	BaseRadius SizeKind = iota
	//SphereRadius is the curvature radius of the underlying sphere,
	//the column "R (A)".
	SphereRadius
)

//CapOrientation distinguishes the two branches of the cap geometry.
//A particle with an acute contact angle is the minor segment of its
//sphere; an obtuse one overhangs the wetted circle and is the major
//segment. theta = 90 degrees is the hemispherical boundary, filed
//under MinorCap.
type CapOrientation int

const (
	MinorCap CapOrientation = iota
	MajorCap
)

func (o CapOrientation) String() string {
	if o == MajorCap {
		return "major"
	}
	return "minor"
}

//Geometry holds the spherical-cap quantities derived from one input
//row. Lengths are in Angstroms, areas in A^2, the volume in A^3. All
//quantities are non-negative.
type Geometry struct {
	SphereRadius float64 //curvature radius of the underlying sphere
	BaseRadius   float64 //radius of the wetted circle
	Height       float64 //cap height above the substrate
	CurvedArea   float64 //free (non-wetted) spherical surface
	BasalArea    float64 //wetted disk in contact with the substrate
	Perimeter    float64 //length of the three-phase contact line
	Volume       float64 //total cap volume
	Orientation  CapOrientation
}

//ResolveGeometry computes the spherical-cap geometry of a nanoparticle
//from one size parameter and the contact angle in degrees. kind says
//whether size is the wetted base radius r or the sphere radius R; the
//two are related by r = R*sin(theta) on both branches. The cap height
//is h = R*(1-cos(theta)), which ranges continuously from 0 (complete
//wetting) through R (hemisphere) to 2R (complete dewetting), so the
//acute and obtuse branches share the standard cap area and volume
//formulas and differ only in which segment of the sphere they keep.
func ResolveGeometry(size float64, kind SizeKind, thetaDegrees float64) (*Geometry, error) {
	if size <= 0 || thetaDegrees <= 0 || thetaDegrees >= 180 || math.IsNaN(size) || math.IsNaN(thetaDegrees) {
		return nil, &ErrInvalidGeometry{Size: size, Theta: thetaDegrees, row: -1}
	}
	g := new(Geometry)
	if thetaDegrees > 90 {
		g.Orientation = MajorCap
	}
	if thetaDegrees == 90 {
		//Degenerate hemispherical cap: sin and cos are exact, so the
		//closed forms collapse to the half-sphere without trigonometry.
		g.SphereRadius = size
		g.BaseRadius = size
		g.Height = size
	} else {
		theta := thetaDegrees * math.Pi / 180
		sin := math.Sin(theta)
		if kind == SphereRadius {
			g.SphereRadius = size
			g.BaseRadius = size * sin
		} else {
			g.BaseRadius = size
			g.SphereRadius = size / sin
		}
		g.Height = g.SphereRadius * (1 - math.Cos(theta))
	}
	g.Perimeter = 2 * math.Pi * g.BaseRadius
	g.BasalArea = math.Pi * g.BaseRadius * g.BaseRadius
	g.CurvedArea = 2 * math.Pi * g.SphereRadius * g.Height
	g.Volume = math.Pi / 3 * g.Height * g.Height * (3*g.SphereRadius - g.Height)
	return g, nil
}
