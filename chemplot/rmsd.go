/*
 * rmsd.go, part of chemovie.
 *
 * Copyright 2026 Raul Mera rauldotmeraatusachdotcl
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
	"image/color"
	"math"

	"github.com/rmera/chemovie/align"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//RMSDPlot produces a png plot of the per-step RMSD of a sequential
//alignment, one point per adjacent frame pair, skipping the pairs the
//alignment skipped. The .png extension is appended to plotname.
func RMSDPlot(results []align.Result, title, plotname string) error {
	if results == nil {
		return Error{NoData, "", []string{"RMSDPlot"}, true}
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Step"
	p.Y.Label.Text = "RMSD (A)"
	p.Add(plotter.NewGrid())
	xys := make(plotter.XYs, 0, len(results))
	for i, res := range results {
		if res.Skipped || math.IsNaN(res.RMSD) {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(i + 1), Y: res.RMSD})
	}
	if len(xys) == 0 {
		return Error{NoData, "", []string{"RMSDPlot"}, true}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return Error{err.Error(), "", []string{"RMSDPlot"}, true}
	}
	line.Color = color.RGBA{B: 255, A: 255}
	p.Add(line)
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return Error{err.Error(), "", []string{"RMSDPlot"}, true}
	}
	sc.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	p.Add(sc)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return Error{err.Error(), filename, []string{"RMSDPlot"}, true}
	}
	return nil
}
