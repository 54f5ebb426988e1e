/*
 * plot.go, part of atomcount.
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

package parity

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

//Fixed percent-difference color scale of the heatmaps, so plots of
//different columns are directly comparable.
const (
	diffScaleMin = 0
	diffScaleMax = 100
)

//Parity writes a parity scatterplot of column col to path: reference
//values x on the horizontal axis, compared values y on the vertical,
//a dashed identity line, and identical padded limits on both axes so
//the identity line runs corner to corner of a square plot.
func Parity(col string, x, y []float64, path string) error {
	fx, fy := finitePairs(x, y)
	if len(fx) == 0 {
		return fmt.Errorf("parity: column %q has no finite value pairs to plot", col)
	}
	lo := math.Min(floats.Min(fx), floats.Min(fy))
	hi := math.Max(floats.Max(fx), floats.Max(fy))
	pad := 0.05 * (hi - lo)
	if pad == 0 {
		pad = 0.5 //all points identical; give the plot some room
	}
	lo, hi = lo-pad, hi+pad

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Parity plot of results: %s", col)
	p.X.Label.Text = fmt.Sprintf("%s atoms (reference)", col)
	p.Y.Label.Text = fmt.Sprintf("%s atoms (atomcount)", col)
	p.X.Min, p.X.Max = lo, hi
	p.Y.Min, p.Y.Max = lo, hi
	p.Add(plotter.NewGrid())

	ident, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return err
	}
	ident.LineStyle.Color = color.Black
	ident.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(ident)

	pts := make(plotter.XYs, len(fx))
	for i := range fx {
		pts[i].X = fx[i]
		pts[i].Y = fy[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	s.GlyphStyle.Radius = vg.Points(2.5)
	p.Add(s)

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

//DiffMap writes a heatmap-style scatterplot of the absolute percent
//differences in column col to path: one point per row at (theta, R),
//colored on a blue-red diverging scale fixed to 0-100%. Rows whose
//difference is NaN (the undefined marker) are skipped. A horizontal
//color bar is drawn under the map.
func DiffMap(col string, theta, radii, diff []float64, path string) error {
	if len(theta) != len(diff) || len(radii) != len(diff) {
		return fmt.Errorf("parity: DiffMap %q: mismatched column lengths", col)
	}
	pts := make(plotter.XYs, 0, len(diff))
	vals := make([]float64, 0, len(diff))
	for i, d := range diff {
		if math.IsNaN(d) || math.IsNaN(theta[i]) || math.IsNaN(radii[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: theta[i], Y: radii[i]})
		vals = append(vals, d)
	}
	if len(pts) == 0 {
		return fmt.Errorf("parity: column %q has no defined differences to plot", col)
	}

	cm := moreland.SmoothBlueRed()
	cm.SetMin(diffScaleMin)
	cm.SetMax(diffScaleMax)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Heatmap of differences in results: %s", col)
	p.X.Label.Text = "θ (°)"
	p.Y.Label.Text = "R (Å)"

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		v := vals[i]
		if v > diffScaleMax {
			v = diffScaleMax
		}
		c, err := cm.At(v)
		if err != nil {
			c = color.Gray{Y: 128}
		}
		return draw.GlyphStyle{Color: c, Radius: vg.Points(4), Shape: draw.CircleGlyph{}}
	}
	p.Add(s)

	bar := plot.New()
	bar.Add(&plotter.ColorBar{ColorMap: cm})
	bar.HideY()
	bar.X.Padding = 0
	bar.X.Label.Text = "Absolute Percent Difference (%)"

	const (
		width  = 6 * vg.Inch
		height = 7 * vg.Inch
		barH   = 1 * vg.Inch
	)
	img := vgimg.New(width, height)
	dc := draw.New(img)
	p.Draw(draw.Crop(dc, 0, 0, barH, 0))
	bar.Draw(draw.Crop(dc, 0, 0, 0, barH-height))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

//Run compares two result tables over all their shared columns, taking
//theta and R per row from the input table both runs consumed, and
//writes parity_<col>.png and heatmap_<col>.png for each shared column
//into outDir. It returns the R² of each shared column, keyed by column
//name, so callers can report goodness of fit alongside the plots.
func Run(referencePath, countedPath, inputPath, outDir string) (map[string]float64, error) {
	ref, err := ReadTable(referencePath)
	if err != nil {
		return nil, err
	}
	counted, err := ReadTable(countedPath)
	if err != nil {
		return nil, err
	}
	input, err := ReadTable(inputPath)
	if err != nil {
		return nil, err
	}
	common := CommonColumns(ref, counted)
	if len(common) == 0 {
		return nil, fmt.Errorf("parity: %s and %s share no column headers", referencePath, countedPath)
	}
	if ref.N != counted.N {
		return nil, fmt.Errorf("parity: row count mismatch: %s has %d, %s has %d", referencePath, ref.N, countedPath, counted.N)
	}
	theta, err := input.Column("Theta")
	if err != nil {
		return nil, err
	}
	radii, err := input.Column("R (A)")
	if err != nil {
		return nil, err
	}
	r2 := make(map[string]float64, len(common))
	for _, col := range common {
		x := ref.Data[col]
		y := counted.Data[col]
		name := strings.ToLower(col)
		if err := Parity(col, x, y, filepath.Join(outDir, fmt.Sprintf("parity_%s.png", name))); err != nil {
			return nil, err
		}
		diff := PercentDiff(x, y)
		if err := DiffMap(col, theta, radii, diff, filepath.Join(outDir, fmt.Sprintf("heatmap_%s.png", name))); err != nil {
			return nil, err
		}
		r2[col] = RSquared(x, y)
	}
	return r2, nil
}
