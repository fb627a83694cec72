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

package chemovie

import (
	"image"

	v3 "github.com/rmera/chemovie/v3"
)

//Handle is an opaque reference to a structure owned by a rendering
//engine. Frames keep handles, never coordinates.
type Handle int

//Renderer is the boundary with the host rendering engine. The package
//chemovie/chemplot provides a plot-based implementation; a host
//program with a proper molecular viewer supplies its own.
type Renderer interface {

	//Load ingests one structure file and returns a handle for it.
	Load(path string) (Handle, error)

	//Chains returns the chain identifiers present in the structure.
	Chains(h Handle) ([]string, error)

	//ShowOnly displays the given structure, transformed by t (nil
	//means no transformation), hiding every other loaded structure.
	ShowOnly(h Handle, t *v3.Transform) error

	//SetScheme applies per-category display settings to all loaded
	//structures.
	SetScheme(s *DisplayScheme) error

	//Snapshot renders the current view into an image of the given
	//size. Zero width or height means the renderer's default.
	Snapshot(width, height int) (image.Image, error)
}
