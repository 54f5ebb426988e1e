/*
 * table.go, part of atomcount.
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

//Package parity compares two result tables sharing the four
//count-category columns (typically the atomistic reference and the
//atomcount output) and renders one parity scatterplot and one
//percent-difference heatmap per shared column.
package parity

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

//Table is a column-oriented numeric CSV table. Cells that do not parse
//as numbers (e.g. element symbols in an input table) are NaN.
type Table struct {
	Cols []string //header order, trimmed
	Data map[string][]float64
	N    int //number of rows
}

//ReadTable reads a CSV file into a Table. Headers are trimmed of
//surrounding whitespace, matching the loose header handling of the
//tables the counter itself consumes.
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cr := csv.NewReader(f)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parity: reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parity: %s: empty table", path)
	}
	t := &Table{Data: make(map[string][]float64)}
	for _, h := range records[0] {
		t.Cols = append(t.Cols, strings.TrimSpace(h))
	}
	t.N = len(records) - 1
	for j, col := range t.Cols {
		vals := make([]float64, t.N)
		for i, record := range records[1:] {
			vals[i] = math.NaN()
			if j < len(record) {
				if v, err := strconv.ParseFloat(strings.TrimSpace(record[j]), 64); err == nil {
					vals[i] = v
				}
			}
		}
		t.Data[col] = vals
	}
	return t, nil
}

//Column returns the named column, or an error naming the table's
//actual columns when absent.
func (t *Table) Column(name string) ([]float64, error) {
	v, ok := t.Data[name]
	if !ok {
		return nil, fmt.Errorf("parity: no column %q (have %s)", name, strings.Join(t.Cols, ", "))
	}
	return v, nil
}

//CommonColumns returns the columns present in both tables, in a's
//header order.
func CommonColumns(a, b *Table) []string {
	var common []string
	for _, col := range a.Cols {
		if _, ok := b.Data[col]; ok {
			common = append(common, col)
		}
	}
	return common
}

//PercentDiff returns 100*|x-y|/y element-wise. Wherever the result is
//not finite (y = 0, or either input NaN) the element is NaN, the
//explicit "undefined" marker; infinities never propagate.
func PercentDiff(x, y []float64) []float64 {
	if len(x) != len(y) {
		panic("parity.PercentDiff: mismatched column lengths")
	}
	diff := make([]float64, len(x))
	for i := range x {
		d := math.Abs(100 * (x[i] - y[i]) / y[i])
		if math.IsInf(d, 0) {
			d = math.NaN()
		}
		diff[i] = d
	}
	return diff
}

//finitePairs returns the elements of x and y at positions where both
//are finite numbers.
func finitePairs(x, y []float64) ([]float64, []float64) {
	fx := make([]float64, 0, len(x))
	fy := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) || math.IsInf(x[i], 0) || math.IsInf(y[i], 0) {
			continue
		}
		fx = append(fx, x[i])
		fy = append(fy, y[i])
	}
	return fx, fy
}

//RSquared returns the coefficient of determination of y against x on
//the identity line, ignoring pairs with NaN on either side. A constant
//x column yields NaN.
func RSquared(x, y []float64) float64 {
	fx, fy := finitePairs(x, y)
	if len(fx) == 0 {
		return math.NaN()
	}
	mean := stat.Mean(fx, nil)
	var ssRes, ssTot float64
	for i := range fx {
		ssRes += (fx[i] - fy[i]) * (fx[i] - fy[i])
		ssTot += (fx[i] - mean) * (fx[i] - mean)
	}
	if ssTot == 0 {
		return math.NaN()
	}
	return 1 - ssRes/ssTot
}
