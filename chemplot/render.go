/*
 * render.go, part of chemovie.
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

//Package chemplot renders structures and trajectory diagnostics with
//gonum/plot. Its Renderer draws each frame as a 2D alpha-carbon trace
//(plus ligand atoms) projected on the XY plane; it implements
//chemovie.Renderer, so the whole load-align-play-record pipeline runs
//on it when no molecular viewer is hosting the library.
package chemplot

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	chem "github.com/rmera/chemovie"
	v3 "github.com/rmera/chemovie/v3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

//Renderer is a plot-based implementation of chemovie.Renderer. It
//also implements align.StructureSource, giving the sequential
//alignment access to the coordinates behind each handle.
type Renderer struct {
	structures []*chem.Structure
	paths      []string
	scheme     *chem.DisplayScheme
	current    int
	transform  *v3.Transform
}

//NewRenderer returns an empty Renderer with the default display
//scheme and nothing on display.
func NewRenderer() *Renderer {
	return &Renderer{scheme: chem.DefaultScheme(), current: -1}
}

//Load implements the chemovie.Renderer interface, reading a PDB file.
func (R *Renderer) Load(path string) (chem.Handle, error) {
	s, err := chem.PDBFileRead(path)
	if err != nil {
		return 0, errDecorate(err, "Load")
	}
	R.structures = append(R.structures, s)
	R.paths = append(R.paths, path)
	return chem.Handle(len(R.structures) - 1), nil
}

//Structure returns the structure behind a handle.
func (R *Renderer) Structure(h chem.Handle) (*chem.Structure, error) {
	if int(h) < 0 || int(h) >= len(R.structures) {
		return nil, Error{fmt.Sprintf("%s: %d", BadHandle, h), "", []string{"Structure"}, true}
	}
	return R.structures[int(h)], nil
}

//Chains implements the chemovie.Renderer interface.
func (R *Renderer) Chains(h chem.Handle) ([]string, error) {
	s, err := R.Structure(h)
	if err != nil {
		return nil, errDecorate(err, "Chains")
	}
	return s.Chains(), nil
}

//ShowOnly implements the chemovie.Renderer interface: h becomes the
//only structure on display, placed by t (nil means in place).
func (R *Renderer) ShowOnly(h chem.Handle, t *v3.Transform) error {
	if _, err := R.Structure(h); err != nil {
		return errDecorate(err, "ShowOnly")
	}
	R.current = int(h)
	R.transform = t
	return nil
}

//SetScheme implements the chemovie.Renderer interface. A nil scheme
//restores the default.
func (R *Renderer) SetScheme(s *chem.DisplayScheme) error {
	if s == nil {
		s = chem.DefaultScheme()
	}
	R.scheme = s
	return nil
}

//Snapshot implements the chemovie.Renderer interface, drawing the
//structure on display to a width x height image.
func (R *Renderer) Snapshot(width, height int) (image.Image, error) {
	if R.current < 0 {
		return nil, Error{NothingShown, "", []string{"Snapshot"}, true}
	}
	if width <= 0 || height <= 0 {
		return nil, Error{fmt.Sprintf("%s: %dx%d", BadSize, width, height), "", []string{"Snapshot"}, true}
	}
	s := R.structures[R.current]
	p := plot.New()
	p.Title.Text = filepath.Base(R.paths[R.current])
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "x (A)"
	p.Y.Label.Text = "y (A)"
	p.Add(plotter.NewGrid())
	chains := s.Chains()
	for ci, ch := range chains {
		style := R.chainStyle(ch)
		if !style.Cartoon && !style.Stick && !style.Sphere {
			continue
		}
		ca, _, err := s.ChainCA(ch)
		if err != nil {
			continue //a chain with no alpha carbons draws nothing
		}
		moved, err := R.place(ca)
		if err != nil {
			return nil, errDecorate(err, "Snapshot")
		}
		if err := R.addTrace(p, s, ch, moved, style, ci, len(chains)); err != nil {
			return nil, errDecorate(err, "Snapshot")
		}
	}
	if R.scheme.Ligand.Shown() {
		if err := R.addLigand(p, s); err != nil {
			return nil, errDecorate(err, "Snapshot")
		}
	}
	//vg lengths are in points; this maps the canvas 1:1 to pixels
	w := vg.Length(width) * vg.Inch / vgimg.DefaultDPI
	h := vg.Length(height) * vg.Inch / vgimg.DefaultDPI
	c := vgimg.New(w, h)
	p.Draw(draw.New(c))
	return c.Image(), nil
}

func (R *Renderer) chainStyle(chain string) chem.ChainStyle {
	if chain == "B" {
		return R.scheme.ChainB
	}
	return R.scheme.ChainA
}

//place applies the current frame placement to a coordinate set.
func (R *Renderer) place(coords *v3.Matrix) (*v3.Matrix, error) {
	if R.transform == nil {
		return coords, nil
	}
	moved := v3.Zeros(coords.NVecs())
	if err := R.transform.Apply(moved, coords); err != nil {
		return nil, errDecorate(err, "place")
	}
	return moved, nil
}

//addTrace draws the alpha-carbon trace of one chain: a line when the
//cartoon or stick toggle is on, glyphs on the carbons when the sphere
//toggle is.
func (R *Renderer) addTrace(p *plot.Plot, s *chem.Structure, chain string, ca *v3.Matrix, style chem.ChainStyle, ci, nchains int) error {
	n := ca.NVecs()
	xys := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		xys[i].X = ca.At(i, 0)
		xys[i].Y = ca.At(i, 1)
	}
	col := R.traceColor(s, chain, ci, nchains)
	if style.Cartoon || style.Stick {
		line, err := plotter.NewLine(xys)
		if err != nil {
			return Error{err.Error(), "", []string{"addTrace"}, true}
		}
		line.Color = col
		line.Width = vg.Points(1)
		if style.Cartoon {
			line.Width = vg.Points(2)
		}
		p.Add(line)
	}
	if style.Sphere || R.scheme.Color == chem.ColorRainbow {
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return Error{err.Error(), "", []string{"addTrace"}, true}
		}
		if R.scheme.Color == chem.ColorRainbow {
			sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
				r, g, b := colors(i, n)
				return draw.GlyphStyle{
					Color:  color.RGBA{R: r, G: g, B: b, A: 255},
					Radius: vg.Points(2),
					Shape:  draw.CircleGlyph{},
				}
			}
		} else {
			sc.GlyphStyle.Color = col
			sc.GlyphStyle.Radius = vg.Points(2)
			sc.GlyphStyle.Shape = draw.CircleGlyph{}
		}
		p.Add(sc)
	}
	return nil
}

//traceColor picks the color of a whole chain trace for the current
//color mode. Secondary-structure coloring needs assignments snapshot
//files don't carry, so it falls back to per-chain colors.
func (R *Renderer) traceColor(s *chem.Structure, chain string, ci, nchains int) color.Color {
	switch R.scheme.Color {
	case chem.ColorByBFactor:
		//blue for rigid, red for mobile, on the usual 0-100 scale
		b := meanBFactor(s, chain)
		if b > 100 {
			b = 100
		}
		hue := 240 * (1 - b/100)
		r, g, bb := iHVS2RGB(hue, 1, 1)
		return color.RGBA{R: r, G: g, B: bb, A: 255}
	case chem.ColorByElement:
		return elementColor("C")
	default:
		if nchains < 2 {
			nchains = 2
		}
		r, g, b := colors(ci, nchains)
		return color.RGBA{R: r, G: g, B: b, A: 255}
	}
}

//addLigand draws the non-water HETATM atoms as glyphs, sized by the
//ligand style.
func (R *Renderer) addLigand(p *plot.Plot, s *chem.Structure) error {
	idx := s.LigandIndexes()
	if len(idx) == 0 {
		return nil
	}
	lig := v3.Zeros(len(idx))
	lig.SomeVecs(s.Coords(), idx)
	moved, err := R.place(lig)
	if err != nil {
		return errDecorate(err, "addLigand")
	}
	xys := make(plotter.XYs, len(idx))
	for i := range idx {
		xys[i].X = moved.At(i, 0)
		xys[i].Y = moved.At(i, 1)
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return Error{err.Error(), "", []string{"addLigand"}, true}
	}
	radius := vg.Points(2) //stick
	switch {
	case R.scheme.Ligand.Ball:
		radius = vg.Points(3)
	case R.scheme.Ligand.Sphere:
		radius = vg.Points(4)
	}
	if R.scheme.Color == chem.ColorByElement {
		sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			return draw.GlyphStyle{
				Color:  elementColor(s.Atom(idx[i]).Symbol),
				Radius: radius,
				Shape:  draw.CircleGlyph{},
			}
		}
	} else {
		sc.GlyphStyle.Color = color.RGBA{R: 120, G: 220, B: 120, A: 255}
		sc.GlyphStyle.Radius = radius
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
	}
	p.Add(sc)
	return nil
}

func meanBFactor(s *chem.Structure, chain string) float64 {
	var sum float64
	var n int
	for i := 0; i < s.Len(); i++ {
		at := s.Atom(i)
		if at.Chain == chain && !at.Het {
			sum += at.Bfactor
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
