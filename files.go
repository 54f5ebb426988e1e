/*
 * files.go, part of atomcount.
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
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Canonical names for the input table columns. Header matching is
//case-insensitive and ignores surrounding whitespace, except that the
//two size columns are told apart by the case of their leading letter
//("r (A)" vs "R (A)").
const (
	colSizeSmall      = "size r"
	colSizeLarge      = "size R"
	colTheta          = "theta"
	colElement        = "element"
	colInterfaceFacet = "interface facet"
	colSurfaceFacet   = "surface facet"
)

//headerKey canonicalizes one header cell.
func headerKey(h string) string {
	h = strings.Join(strings.Fields(h), " ") //collapse inner runs of spaces
	low := strings.ToLower(h)
	if low == "r (a)" || low == "r(a)" || low == "r" {
		if strings.HasPrefix(h, "R") {
			return colSizeLarge
		}
		return colSizeSmall
	}
	switch low {
	case "theta", "theta (deg)", "theta (degrees)":
		return colTheta
	case "element":
		return colElement
	case "interface facet", "facet": //the one-facet legacy header sets both planes
		return colInterfaceFacet
	case "surface facet":
		return colSurfaceFacet
	}
	return low
}

//openTable opens path for reading, transparently decompressing .gz
//(stdlib gzip) and .zst/.zstd (klauspost zstd) files by extension.
func openTable(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &wrappedCloser{z, f}, nil
	case ".zst", ".zstd":
		z, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &wrappedCloser{z.IOReadCloser(), f}, nil
	}
	return f, nil
}

//createTable creates path for writing, compressing by extension as
//openTable decompresses.
func createTable(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return &wrappedWriteCloser{gzip.NewWriter(f), f}, nil
	case ".zst", ".zstd":
		z, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			f.Close()
			return nil, err
		}
		return &wrappedWriteCloser{z, f}, nil
	}
	return f, nil
}

type wrappedCloser struct {
	io.ReadCloser
	under io.Closer
}

func (w *wrappedCloser) Close() error {
	err := w.ReadCloser.Close()
	if err2 := w.under.Close(); err == nil {
		err = err2
	}
	return err
}

type wrappedWriteCloser struct {
	io.WriteCloser
	under io.Closer
}

func (w *wrappedWriteCloser) Close() error {
	err := w.WriteCloser.Close()
	if err2 := w.under.Close(); err == nil {
		err = err2
	}
	return err
}

//ReadInputTable reads a CSV table of nanoparticle specifications. At
//least one of the size columns must be present in the header, and
//Theta and Element always. Blank cells mark absent optional values.
func ReadInputTable(path string) ([]InputRow, error) {
	in, err := openTable(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	cr := csv.NewReader(in)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("atomcount: reading header of %s: %w", path, err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		key := headerKey(h)
		cols[key] = i
		if key == colInterfaceFacet && strings.EqualFold(strings.TrimSpace(h), "facet") {
			//legacy single "Facet" column applies to both planes
			cols[colSurfaceFacet] = i
		}
	}
	if _, ok := cols[colTheta]; !ok {
		return nil, fmt.Errorf("atomcount: %s: missing required column Theta", path)
	}
	if _, ok := cols[colElement]; !ok {
		return nil, fmt.Errorf("atomcount: %s: missing required column Element", path)
	}
	_, hasSmallCol := cols[colSizeSmall]
	_, hasLargeCol := cols[colSizeLarge]
	if !hasSmallCol && !hasLargeCol {
		return nil, fmt.Errorf("atomcount: %s: neither size column r (A) nor R (A) present", path)
	}
	cell := func(record []string, key string) string {
		i, ok := cols[key]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	var rows []InputRow
	for i := 0; ; i++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("atomcount: %s row %d: %w", path, i, err)
		}
		row := InputRow{Index: i}
		if s := cell(record, colSizeSmall); s != "" {
			row.SizeSmall, err = strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("atomcount: %s row %d: bad r (A) value %q", path, i, s)
			}
			row.HasSmall = true
		}
		if s := cell(record, colSizeLarge); s != "" {
			row.SizeLarge, err = strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("atomcount: %s row %d: bad R (A) value %q", path, i, s)
			}
			row.HasLarge = true
		}
		s := cell(record, colTheta)
		if s == "" {
			return nil, fmt.Errorf("atomcount: %s row %d: missing Theta", path, i)
		}
		row.Theta, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("atomcount: %s row %d: bad Theta value %q", path, i, s)
		}
		row.Element = cell(record, colElement)
		if row.Element == "" {
			return nil, fmt.Errorf("atomcount: %s row %d: missing Element", path, i)
		}
		row.InterfaceFacet = cell(record, colInterfaceFacet)
		row.SurfaceFacet = cell(record, colSurfaceFacet)
		rows = append(rows, row)
	}
	return rows, nil
}

//WriteResultTable writes the counts as a CSV table with the columns
//Perimeter, Interface, Surface, Total, one row per result, in order.
func WriteResultTable(path string, results []*CountResult) error {
	out, err := createTable(path)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(out)
	if err := cw.Write([]string{"Perimeter", "Interface", "Surface", "Total"}); err != nil {
		out.Close()
		return err
	}
	for _, r := range results {
		rec := []string{
			strconv.Itoa(r.Perimeter),
			strconv.Itoa(r.Interface),
			strconv.Itoa(r.Surface),
			strconv.Itoa(r.Total),
		}
		if err := cw.Write(rec); err != nil {
			out.Close()
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

//RunFile is the whole pipeline as a single call: read the input table
//at inPath, count every row under mode and cat (nil means the built-in
//catalog), and write the result table to outPath. On failure no output
//file is left behind, so outPath existing and being non-empty means
//the run succeeded.
func RunFile(inPath, outPath string, mode Mode, cat *Catalog) error {
	rows, err := ReadInputTable(inPath)
	if err != nil {
		return err
	}
	results, err := Process(rows, mode, cat)
	if err != nil {
		return err
	}
	if err := WriteResultTable(outPath, results); err != nil {
		os.Remove(outPath)
		return err
	}
	return nil
}
