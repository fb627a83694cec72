/*
 * plotutils.go, part of chemovie.
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

	chem "github.com/rmera/chemovie"
)

//Some internal convenience functions.

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r = v
		g = t
		b = p
	case 1:
		r = q
		g = v
		b = p
	case 2:
		r = p
		g = v
		b = t
	case 3:
		r = p
		g = q
		b = v
	case 4:
		r = t
		g = p
		b = v
	default: //case 5
		r = v
		g = p
		b = q
	}
	r = r * conversion
	g = g * conversion
	b = b * conversion
	return uint8(r), uint8(g), uint8(b)
}

//colors spreads steps items over the hue wheel, skipping the yellows,
//which read poorly on white.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	var h float64
	if hp < 55 {
		h = hp - 20.0
	} else {
		h = hp + 20.0
	}
	s := 1.0
	v := 1.0
	r, g, b = iHVS2RGB(h, v, s)
	return r, g, b
}

//elementColor returns the conventional CPK-ish color for an element
//symbol.
func elementColor(symbol string) color.Color {
	switch symbol {
	case "C":
		return color.RGBA{R: 130, G: 130, B: 130, A: 255}
	case "N":
		return color.RGBA{B: 255, A: 255}
	case "O":
		return color.RGBA{R: 255, A: 255}
	case "S":
		return color.RGBA{R: 230, G: 200, A: 255}
	case "P":
		return color.RGBA{R: 255, G: 130, A: 255}
	case "H":
		return color.RGBA{R: 240, G: 240, B: 240, A: 255}
	default:
		return color.RGBA{R: 120, G: 220, B: 120, A: 255}
	}
}

//Messages for the error conditions of this package.
const (
	BadHandle    = "No structure loaded under the given handle"
	NothingShown = "No structure on display"
	BadSize      = "Image dimensions must be positive"
	NoData       = "Given no data to plot"
)

//Error is the error type of the chemplot package. It fulfills
//chemovie.Error.
type Error struct {
	message  string
	file     string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.file == "" {
		return err.message
	}
	return fmt.Sprintf("%s: %s", err.file, err.message)
}

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

func errDecorate(err error, caller string) error {
	err2, ok := err.(chem.Error)
	if !ok {
		return Error{err.Error(), "", []string{caller}, true}
	}
	err2.Decorate(caller)
	return err2
}
