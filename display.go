/*
 * display.go, part of chemovie.
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

package chemovie

//ColorMode selects how atoms and traces are colored.
type ColorMode int

const (
	ColorByChain ColorMode = iota
	ColorByBFactor
	ColorBySecondary
	ColorRainbow
	ColorByElement
)

func (c ColorMode) String() string {
	switch c {
	case ColorByChain:
		return "bychain"
	case ColorByBFactor:
		return "bybfactor"
	case ColorBySecondary:
		return "bysecondary"
	case ColorRainbow:
		return "rainbow"
	case ColorByElement:
		return "byelement"
	}
	return "unknown"
}

//ChainStyle holds the representation toggles for one protein chain.
//The toggles are not exclusive; a chain can show both cartoon and
//sticks, as viewers usually allow.
type ChainStyle struct {
	Cartoon bool
	Stick   bool
	Sphere  bool
}

//LigandStyle holds the representation toggles for ligands and ions
//(everything that is neither protein nor nucleic). Ball means
//ball-and-stick. When several toggles are set, ball wins over sphere,
//and sphere over stick.
type LigandStyle struct {
	Ball   bool
	Stick  bool
	Sphere bool
}

//Shown returns true if any representation is enabled for the ligands.
func (L LigandStyle) Shown() bool { return L.Ball || L.Stick || L.Sphere }

//DisplayScheme is the per-category display configuration applied to
//every frame of a trajectory. It is consumed, not computed, by this
//library: renderers read it, nothing here changes it.
type DisplayScheme struct {
	ChainA ChainStyle
	ChainB ChainStyle
	Ligand LigandStyle
	Color  ColorMode
}

//DefaultScheme returns the scheme used when the caller gives none:
//chain A as cartoon, colored by b-factor, everything else hidden.
func DefaultScheme() *DisplayScheme {
	return &DisplayScheme{
		ChainA: ChainStyle{Cartoon: true},
		Color:  ColorByBFactor,
	}
}
