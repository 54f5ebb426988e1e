/*
 * atomicdata.go, part of atomcount.
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

//Crystal structures for which facet packing densities can be derived
//in closed form from the lattice constant.
const (
	fcc = "fcc"
	bcc = "bcc"
)

//A map for assigning crystal structures to elements.
//Note that just common catalytically relevant metals are present;
//others can be supplied through a catalog additions file.
var symbolStructure = map[string]string{
	"Ag": fcc,
	"Au": fcc,
	"Cu": fcc,
	"Pd": fcc,
	"Pt": fcc,
	"Ni": fcc,
	"Al": fcc,
	"Pb": fcc,
	"Rh": fcc,
	"Ir": fcc,
	"Fe": bcc, //alpha iron
	"W":  bcc,
	"Mo": bcc,
	"Nb": bcc,
	"Ta": bcc,
}

//A map for assigning room-temperature lattice constants, in Angstroms,
//to elements. Values from Ashcroft & Mermin, Solid State Physics (1976),
//and the CRC Handbook of Chemistry and Physics.
var symbolLattice = map[string]float64{
	"Ag": 4.0853,
	"Au": 4.0782,
	"Cu": 3.6149,
	"Pd": 3.8907,
	"Pt": 3.9242,
	"Ni": 3.5240,
	"Al": 4.0495,
	"Pb": 4.9508,
	"Rh": 3.8034,
	"Ir": 3.8390,
	"Fe": 2.8665,
	"W":  3.1652,
	"Mo": 3.1470,
	"Nb": 3.3004,
	"Ta": 3.3013,
}

//The default facet per structure, used when a row leaves a facet field
//blank: the densest-packed, most commonly exposed low-index plane.
//This is a deliberate, enumerable default, not a silent fallback.
var structureDefaultFacet = map[string]string{
	fcc: "111",
	bcc: "110",
}

//Atoms per unit-cell volume (a^3) for each structure. The conventional
//fcc cell holds 4 atoms, the bcc cell 2.
var structureCellAtoms = map[string]float64{
	fcc: 4,
	bcc: 2,
}

//Atoms per a^2 on each low-index plane, i.e. the planar packing
//fraction numerators of the conventional cell. fcc: (100) holds 2
//atoms per face, (110) sqrt(2) per a^2, (111) 4/sqrt(3) per a^2.
//bcc: (100) 1, (110) sqrt(2) (the densest bcc plane), (111) 1/sqrt(3).
var structureFacetAtoms = map[string]map[string]float64{
	fcc: {
		"100": 2,
		"110": 1.4142135623730951,
		"111": 2.3094010767585034,
	},
	bcc: {
		"100": 1,
		"110": 1.4142135623730951,
		"111": 0.5773502691896258,
	},
}
