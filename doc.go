/*
 * doc.go, part of atomcount.
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

/*Package atomcount estimates how many atoms of a supported, faceted
nanoparticle fall into each of four structural categories: Perimeter
(the three-phase contact line), Interface (the wetted basal facet),
Surface (the free curved facet) and Total.

The particle is modeled as a spherical cap sitting on a flat substrate.
From a size parameter (either the wetted base radius r or the curvature
radius R, in Å) and the contact angle θ, the cap geometry is resolved in
closed form; atom counts then follow from crystallographic number
densities of the particle's element, looked up in an immutable catalog
keyed by element and facet.


    **Capabilities**

    Resolves acute, hemispherical and obtuse cap geometries (minor and
    major spherical segments) from either size parameter.

    Carries a built-in density catalog for common fcc and bcc metals,
    derived from literature lattice constants, with a documented default
    facet per element and optional YAML additions.

    Counts atoms in two modes: "volume" (bulk-density Total) and "area"
    (facet-composition Total with a perimeter overlap correction).

    Processes input tables row by row, sequentially or concurrently,
    preserving input order; reads and writes plain, gzip or zstd
    compressed CSV tables.

All row computations are pure: the catalog is read-only after
construction and safe for unsynchronized concurrent lookups, so rows
may be evaluated in parallel with identical results.

The parity subpackage compares the counter's output against an
atomistic reference table, producing parity scatterplots and
percent-difference heatmaps.*/
package atomcount
