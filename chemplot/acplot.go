/*
 * acplot.go, part of decorr.
 *
 * Copyright 2026 The decorr Authors
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

package chemplot

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ACFPlot draws autocorrelation functions on a log-log plot, and saves them
// to Filename. The format is given by the extension (png, svg, pdf, etc).
// Zero Width or Height means 5 inches.
type ACFPlot struct {
	Filename string
	Style    Style
	Width    vg.Length
	Height   vg.Length
	Guides   []float64 //horizontal lines drawn at these values, i.e. candidate thresholds
}

// NewACFPlot returns an ACFPlot with the default style, that saves to filename.
func NewACFPlot(filename string) *ACFPlot {
	return &ACFPlot{Filename: filename, Style: DefaultStyle(), Guides: []float64{0.5, 0.1, 0.05, 0.01}}
}

// acPoints returns the (lag, value) points of ac that can be shown in a log-log plot,
// i.e. lags from 1 on, with positive values.
func acPoints(ac []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(ac))
	for k := 1; k < len(ac); k++ {
		if ac[k] > 0 {
			pts = append(pts, plotter.XY{X: float64(k), Y: ac[k]})
		}
	}
	return pts
}

// linearPoints returns all the (lag, value) points of ac, from lag 0.
func linearPoints(ac []float64) plotter.XYs {
	pts := make(plotter.XYs, len(ac))
	for k, v := range ac {
		pts[k] = plotter.XY{X: float64(k), Y: v}
	}
	return pts
}

// Render plots ac and saves the plot. The plot is log-log, unless fewer than
// 2 lags from 1 on have a positive value, in which case the whole of ac is plotted
// on linear axes. It returns an error only if ac is empty or the plot can't be saved.
func (A *ACFPlot) Render(ac []float64) error {
	if A.Filename == "" {
		return fmt.Errorf("chemplot: no file name given for the autocorrelation plot")
	}
	if len(ac) == 0 {
		return fmt.Errorf("chemplot: empty autocorrelation function")
	}
	p := plot.New()
	style := A.Style
	if style == (Style{}) {
		style = DefaultStyle()
	}
	ApplyStyle(p, style)
	p.Title.Text = "Autocorrelation function"
	p.X.Label.Text = "Lag (frames)"
	p.Y.Label.Text = "ACF"
	pts := acPoints(ac)
	logscale := len(pts) > 1
	minlag := 1.0
	if logscale {
		p.X.Scale = plot.LogScale{}
		p.Y.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	} else {
		pts = linearPoints(ac)
		minlag = 0
	}
	p.Add(plotter.NewGrid())
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Width = vg.Points(2)
	p.Add(l)
	maxlag := pts[len(pts)-1].X
	if err := A.addGuides(p, minlag, maxlag, logscale); err != nil {
		return err
	}
	if logscale && p.Y.Min == p.Y.Max {
		p.Y.Min /= 2
		p.Y.Max *= 2
	}
	if !logscale {
		//ac can have a single point
		p.X.Min = 0
		p.X.Max = math.Max(1, maxlag)
		p.Y.Min = math.Min(-1, p.Y.Min)
		p.Y.Max = math.Max(1, p.Y.Max)
	}
	w, h := A.Width, A.Height
	if w == 0 {
		w = 5 * vg.Inch
	}
	if h == 0 {
		h = 5 * vg.Inch
	}
	//here err is intentionally shadowed.
	if err := p.Save(w, h, A.Filename); err != nil {
		return fmt.Errorf("chemplot: can't save the autocorrelation plot: %w", err)
	}
	return nil
}

// addGuides adds a dashed line from minlag to maxlag for each guide. Only
// positive guides are drawn on a log scale.
func (A *ACFPlot) addGuides(p *plot.Plot, minlag, maxlag float64, logscale bool) error {
	guides := make([]float64, 0, len(A.Guides))
	for _, g := range A.Guides {
		if g > 0 || (!logscale && !math.IsNaN(g) && !math.IsInf(g, 0)) {
			guides = append(guides, g)
		}
	}
	if len(guides) == 0 {
		return nil
	}
	pal, err := Colormap(len(guides), DefaultColorMin, DefaultColorMax)
	if err != nil {
		return err
	}
	for i, g := range guides {
		l, err := plotter.NewLine(plotter.XYs{{X: minlag, Y: g}, {X: maxlag, Y: g}})
		if err != nil {
			return err
		}
		l.LineStyle.Color = pal.Colors()[i]
		l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(l)
		p.Legend.Add(fmt.Sprintf("%g", g), l)
	}
	return nil
}
