/*
 * pipeline.go, part of atomcount.
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
	"runtime"

	"golang.org/x/sync/errgroup"
)

//InputRow is one nanoparticle specification from an input table.
//SizeSmall is the wetted base radius r, SizeLarge the curvature radius
//R, both in Angstroms; the Has* flags record which columns were
//non-blank. Facet fields may be empty, in which case the element's
//default facet applies.
type InputRow struct {
	Index          int //zero-based position in the input table
	SizeSmall      float64
	HasSmall       bool
	SizeLarge      float64
	HasLarge       bool
	Theta          float64 //contact angle, degrees
	Element        string
	InterfaceFacet string
	SurfaceFacet   string
}

//ResolveSize picks the effective size parameter of the row. When both
//radii are present, r wins and R is ignored; this precedence is part
//of the input contract, not an accident of column order.
func (row *InputRow) ResolveSize() (float64, SizeKind, error) {
	if row.HasSmall {
		return row.SizeSmall, BaseRadius, nil
	}
	if row.HasLarge {
		return row.SizeLarge, SphereRadius, nil
	}
	return 0, BaseRadius, &ErrMissingSize{row: row.Index}
}

//processRow resolves and counts one row. It is the pure per-row map
//that both the sequential and the concurrent pipelines run.
func processRow(row InputRow, mode Mode, cat *Catalog) (*CountResult, error) {
	size, kind, err := row.ResolveSize()
	if err != nil {
		return nil, errDecorate(err, "processRow")
	}
	g, err := ResolveGeometry(size, kind, row.Theta)
	if err != nil {
		return nil, errDecorate(withRow(err, row.Index), "processRow")
	}
	r, err := Count(g, row.Element, row.InterfaceFacet, row.SurfaceFacet, mode, cat)
	if err != nil {
		return nil, errDecorate(withRow(err, row.Index), "processRow")
	}
	r.Row = row
	return r, nil
}

//Process evaluates every row in order and returns one CountResult per
//row, in input order. Any row failure aborts the whole batch: a
//partial table would be misleading for downstream benchmarking, so no
//results are returned alongside an error. The error identifies the
//offending row (see RowError).
func Process(rows []InputRow, mode Mode, cat *Catalog) ([]*CountResult, error) {
	if cat == nil {
		cat = DefaultCatalog()
	}
	results := make([]*CountResult, len(rows))
	for i, row := range rows {
		r, err := processRow(row, mode, cat)
		if err != nil {
			return nil, errDecorate(err, "Process")
		}
		results[i] = r
	}
	return results, nil
}

//ProcessConc is Process distributed over workers goroutines. Rows are
//independent and the catalog is read-only, so the map is
//embarrassingly parallel; each result lands at its row's index, which
//keeps the output in input order. workers <= 0 means one worker per
//CPU. The output is identical to Process's.
func ProcessConc(rows []InputRow, mode Mode, cat *Catalog, workers int) ([]*CountResult, error) {
	if cat == nil {
		cat = DefaultCatalog()
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]*CountResult, len(rows))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, row := range rows {
		i, row := i, row
		g.Go(func() error {
			r, err := processRow(row, mode, cat)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errDecorate(err, "ProcessConc")
	}
	return results, nil
}
