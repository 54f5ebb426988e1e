/*
 * catalog.go, part of atomcount.
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
	"log"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//DensityEntry holds the number densities of one element: atoms per
//cubic Angstrom in the bulk, and atoms per square Angstrom on each
//cataloged facet. DefaultFacet names the facet used when an input row
//leaves a facet field blank.
type DensityEntry struct {
	Bulk         float64
	Areal        map[string]float64
	DefaultFacet string
}

//Catalog maps element symbols to density entries. It is immutable
//after construction and therefore safe for unsynchronized concurrent
//lookups across worker goroutines.
type Catalog struct {
	entries map[string]*DensityEntry
}

//defaultCatalog is built once from the lattice tables in
//atomicdata.go and never mutated.
var defaultCatalog = buildDefaultCatalog()

//DefaultCatalog returns the built-in catalog of fcc and bcc metals.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

func buildDefaultCatalog() *Catalog {
	c := &Catalog{entries: make(map[string]*DensityEntry, len(symbolLattice))}
	for symbol, a := range symbolLattice {
		structure := symbolStructure[symbol]
		entry := &DensityEntry{
			Bulk:         structureCellAtoms[structure] / (a * a * a),
			Areal:        make(map[string]float64, 3),
			DefaultFacet: structureDefaultFacet[structure],
		}
		for facet, atoms := range structureFacetAtoms[structure] {
			entry.Areal[facet] = atoms / (a * a)
		}
		c.entries[symbol] = entry
	}
	return c
}

//NormalizeFacet strips decoration from a crystallographic facet label,
//so "(111)", "{111}" and " 111 " all address the same entry.
func NormalizeFacet(facet string) string {
	return strings.Trim(strings.TrimSpace(facet), "(){}[]")
}

//BulkDensity returns the bulk number density of element, in atoms per
//cubic Angstrom.
func (c *Catalog) BulkDensity(element string) (float64, error) {
	e, ok := c.entries[element]
	if !ok {
		return 0, &ErrUnknownElement{Symbol: element, row: -1}
	}
	return e.Bulk, nil
}

//Spacing returns the characteristic atomic spacing of element, in
//Angstroms: the cube root of the bulk atomic volume. It is the 1-D
//packing estimate used along the contact line.
func (c *Catalog) Spacing(element string) (float64, error) {
	b, err := c.BulkDensity(element)
	if err != nil {
		return 0, errDecorate(err, "Spacing")
	}
	return math.Cbrt(1 / b), nil
}

//ArealDensity returns the planar number density of element on facet,
//in atoms per square Angstrom. A blank facet resolves to the element's
//default facet; a non-blank facet absent from the catalog is an error.
func (c *Catalog) ArealDensity(element, facet string) (float64, error) {
	e, ok := c.entries[element]
	if !ok {
		return 0, &ErrUnknownElement{Symbol: element, row: -1}
	}
	facet = NormalizeFacet(facet)
	if facet == "" {
		facet = e.DefaultFacet
	}
	d, ok := e.Areal[facet]
	if !ok {
		return 0, &ErrUnknownFacet{Symbol: element, Facet: facet, row: -1}
	}
	return d, nil
}

//DefaultFacet returns the facet used for element when none is given.
func (c *Catalog) DefaultFacet(element string) (string, error) {
	e, ok := c.entries[element]
	if !ok {
		return "", &ErrUnknownElement{Symbol: element, row: -1}
	}
	return e.DefaultFacet, nil
}

//Elements returns the symbols cataloged, in no particular order.
func (c *Catalog) Elements() []string {
	els := make([]string, 0, len(c.entries))
	for s := range c.entries {
		els = append(els, s)
	}
	return els
}

//catalogAddition is the YAML shape of one user-supplied element entry.
//Densities are given directly, in atoms/A^3 and atoms/A^2, so entries
//are not limited to structures we can derive facet packings for.
type catalogAddition struct {
	Bulk         float64            `yaml:"bulk"`
	Facets       map[string]float64 `yaml:"facets"`
	DefaultFacet string             `yaml:"default_facet"`
}

//ReadCatalogAdditions reads element entries from a YAML file and
//returns a new catalog with those entries laid over base (the built-in
//catalog if base is nil). base itself is never modified.
func ReadCatalogAdditions(path string, base *Catalog) (*Catalog, error) {
	if base == nil {
		base = DefaultCatalog()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	adds := make(map[string]catalogAddition)
	if err := yaml.Unmarshal(raw, &adds); err != nil {
		return nil, err
	}
	merged := &Catalog{entries: make(map[string]*DensityEntry, len(base.entries)+len(adds))}
	for symbol, e := range base.entries {
		merged.entries[symbol] = e
	}
	for symbol, add := range adds {
		if add.Bulk <= 0 {
			return nil, fmt.Errorf("catalog additions %s: element %q: bulk density must be positive, got %g", path, symbol, add.Bulk)
		}
		if len(add.Facets) == 0 {
			return nil, fmt.Errorf("catalog additions %s: element %q: no facet densities given", path, symbol)
		}
		entry := &DensityEntry{
			Bulk:         add.Bulk,
			Areal:        make(map[string]float64, len(add.Facets)),
			DefaultFacet: NormalizeFacet(add.DefaultFacet),
		}
		for facet, d := range add.Facets {
			if d <= 0 {
				return nil, fmt.Errorf("catalog additions %s: element %q facet %q: areal density must be positive, got %g", path, symbol, facet, d)
			}
			entry.Areal[NormalizeFacet(facet)] = d
		}
		if entry.DefaultFacet == "" {
			return nil, fmt.Errorf("catalog additions %s: element %q: default_facet is required", path, symbol)
		}
		if _, ok := entry.Areal[entry.DefaultFacet]; !ok {
			return nil, fmt.Errorf("catalog additions %s: element %q: default facet %q has no density", path, symbol, entry.DefaultFacet)
		}
		if _, ok := base.entries[symbol]; ok {
			log.Printf("atomcount: catalog additions %s override the built-in entry for %s", path, symbol)
		}
		merged.entries[symbol] = entry
	}
	return merged, nil
}
