/*
 * style.go, part of decorr.
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

// Package chemplot contains plotting helpers for decorr: a common style for
// plots, a colormap, and a renderer for autocorrelation functions.
package chemplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"
)

// Default colormap parameters.
const (
	DefaultColors   = 10
	DefaultColorMin = 0.1
	DefaultColorMax = 0.8
)

// Style contains the font sizes used for plots.
type Style struct {
	Small  vg.Length //ticks and legend
	Medium vg.Length //axis labels
	Large  vg.Length //title
}

// DefaultStyle returns a style with 12, 16 and 20 points fonts.
func DefaultStyle() Style {
	return Style{Small: vg.Points(12), Medium: vg.Points(16), Large: vg.Points(20)}
}

// ApplyStyle sets the font sizes of p according to s. It is meant to be called
// once, after creating p and before adding anything to it. Only p is changed.
func ApplyStyle(p *plot.Plot, s Style) {
	p.Title.TextStyle.Font.Size = s.Large
	p.Title.Padding = 3 * vg.Millimeter
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Font.Size = s.Medium
		ax.Tick.Label.Font.Size = s.Small
	}
	p.Legend.TextStyle.Font.Size = s.Small
}

// colors is a fixed set of colors.
type colors []color.Color

func (c colors) Colors() []color.Color {
	return c
}

// Colormap returns n colors evenly sampled from the [min,max] part of an
// extended black-body colormap, where 0 is black and 1 is white. Restricting the range
// avoids colors too dark or too light to tell apart from the background.
func Colormap(n int, min, max float64) (palette.Palette, error) {
	if n < 1 {
		return nil, fmt.Errorf("chemplot: colormap with %d colors requested", n)
	}
	if min < 0 || max > 1 || min >= max {
		return nil, fmt.Errorf("chemplot: invalid colormap range [%v, %v]", min, max)
	}
	cmap := moreland.ExtendedBlackBody()
	cmap.SetMax(1)
	cmap.SetMin(0)
	ret := make(colors, n)
	step := 0.0
	if n > 1 {
		step = (max - min) / float64(n-1)
	}
	for i := range ret {
		v := min + step*float64(i)
		if v > max {
			v = max
		}
		c, err := cmap.At(v)
		if err != nil {
			return nil, fmt.Errorf("chemplot: colormap: %w", err)
		}
		ret[i] = c
	}
	return ret, nil
}
