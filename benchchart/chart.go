// Copyright 2024 The gf2stat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders grouped GF(2) benchmark statistics as
// charts: duration and throughput per method against
// log2(sqrt(Matrix_Size)), with the per-group standard deviation as
// symmetric error bars.
package benchchart

import (
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/gf2lab/gf2stat/benchtab"
)

// palette assigns series colors by method index.
var palette = []color.Color{
	color.NRGBA{0x1f, 0x77, 0xb4, 0xff}, // blue
	color.NRGBA{0xff, 0x7f, 0x0e, 0xff}, // orange
	color.NRGBA{0x2c, 0xa0, 0x2c, 0xff}, // green
	color.NRGBA{0xd6, 0x27, 0x28, 0xff}, // red
	color.NRGBA{0x94, 0x67, 0xbd, 0xff}, // purple
}

// errPoints is a point set with per-point Y error bars.
type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

// Render draws the three sub-plots side by side on one canvas:
// duration on a log Y axis, throughput on a linear Y axis, and
// throughput on a log Y axis.
func Render(duration, throughput *benchtab.Collection) (*vgimg.Canvas, error) {
	durPlot, err := seriesPlot(duration, "GF2 Multiplication Duration", "Duration (ms)", true)
	if err != nil {
		return nil, err
	}
	thrPlot, err := seriesPlot(throughput, "GF2 Multiplication Throughput", "Throughput (GOPS)", false)
	if err != nil {
		return nil, err
	}
	thrLogPlot, err := seriesPlot(throughput, "GF2 Multiplication Throughput (Log Scale)", "Throughput (GOPS)", true)
	if err != nil {
		return nil, err
	}
	plots := [][]*plot.Plot{{durPlot, thrPlot, thrLogPlot}}

	img := vgimg.NewWith(
		vgimg.UseWH(24*vg.Inch, 6*vg.Inch),
		vgimg.UseDPI(96),
		vgimg.UseBackgroundColor(color.White),
	)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 1, Cols: 3,
		PadX:   vg.Millimeter * 5,
		PadTop: vg.Millimeter * 2, PadBottom: vg.Millimeter * 2,
		PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i, pl := range plots[0] {
		pl.Draw(canvases[0][i])
	}
	return img, nil
}

// WritePNG renders the charts and writes them to a PNG file at path.
func WritePNG(path string, duration, throughput *benchtab.Collection) error {
	img, err := Render(duration, throughput)
	if err != nil {
		return err
	}
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

// seriesPlot plots one series per method: mean against
// log2(sqrt(Matrix_Size)) as a line with points, std as Y error bars.
func seriesPlot(c *benchtab.Collection, title, ylabel string, logScale bool) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = "log2(sqrt(Matrix_Size))"
	pl.Y.Label.Text = ylabel
	if logScale {
		pl.Y.Scale = plot.LogScale{}
		pl.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	pl.Add(plotter.NewGrid())

	for i, method := range c.Methods {
		groups := c.MethodGroups(method)
		if len(groups) == 0 {
			continue
		}
		pts := make(plotter.XYs, len(groups))
		errs := make(plotter.YErrors, len(groups))
		for j, g := range groups {
			pts[j].X = math.Log2(math.Sqrt(float64(g.Key.MatrixSize)))
			pts[j].Y = g.Mean
			e := g.Std
			if math.IsNaN(e) {
				// Single-run group: no spread to draw.
				e = 0
			}
			lo := e
			if logScale && lo >= g.Mean {
				// A log axis cannot represent a bar reaching zero.
				lo = g.Mean * (1 - 1e-6)
			}
			errs[j].Low = lo
			errs[j].High = e
		}

		clr := palette[i%len(palette)]
		line, scatter, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, err
		}
		line.Color = clr
		scatter.GlyphStyle.Color = clr
		scatter.GlyphStyle.Radius = vg.Points(2.5)
		bars, err := plotter.NewYErrorBars(errPoints{pts, errs})
		if err != nil {
			return nil, err
		}
		bars.LineStyle.Color = clr
		pl.Add(line, scatter, bars)
		pl.Legend.Add(method, line, scatter)
	}
	pl.Legend.Top = true
	return pl, nil
}
