/*
 * plot_test.go, part of chemovie.
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
	"math"
	"os"
	"path/filepath"
	"testing"

	chem "github.com/rmera/chemovie"
	"github.com/rmera/chemovie/align"
)

func TestRendererLoadAndChains(Te *testing.T) {
	ren := NewRenderer()
	h, err := ren.Load("../test/0001.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	chains, err := ren.Chains(h)
	if err != nil {
		Te.Error(err)
	}
	if len(chains) != 2 || chains[0] != "A" || chains[1] != "B" {
		Te.Errorf("Expected chains [A B], got %v", chains)
	}
	if _, err := ren.Chains(chem.Handle(9)); err == nil {
		Te.Error("Expected an error for an unknown handle")
	}
	if _, err := ren.Load("../test/bad.pdb"); err == nil {
		Te.Error("Expected an error loading a non-PDB file")
	}
}

func TestRendererSnapshot(Te *testing.T) {
	ren := NewRenderer()
	h, err := ren.Load("../test/0001.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := ren.Snapshot(100, 100); err == nil {
		Te.Error("Expected an error before anything is shown")
	}
	if err := ren.ShowOnly(h, nil); err != nil {
		Te.Fatal(err)
	}
	s := chem.DefaultScheme()
	s.Color = chem.ColorByChain
	s.ChainB = chem.ChainStyle{Stick: true}
	s.Ligand = chem.LigandStyle{Ball: true}
	if err := ren.SetScheme(s); err != nil {
		Te.Fatal(err)
	}
	img, err := ren.Snapshot(320, 240)
	if err != nil {
		Te.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != 320 || b.Dy() != 240 {
		Te.Errorf("Expected a 320x240 image, got %dx%d", b.Dx(), b.Dy())
	}
	if _, err := ren.Snapshot(0, 100); err == nil {
		Te.Error("Expected an error for non-positive dimensions")
	}
}

func TestRendererColorModes(Te *testing.T) {
	ren := NewRenderer()
	h, err := ren.Load("../test/0001.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	if err := ren.ShowOnly(h, nil); err != nil {
		Te.Fatal(err)
	}
	for _, mode := range []chem.ColorMode{chem.ColorByChain, chem.ColorByBFactor, chem.ColorRainbow, chem.ColorByElement} {
		s := chem.DefaultScheme()
		s.Color = mode
		s.Ligand = chem.LigandStyle{Sphere: true}
		if err := ren.SetScheme(s); err != nil {
			Te.Fatal(err)
		}
		if _, err := ren.Snapshot(64, 64); err != nil {
			Te.Errorf("Snapshot failed in %s mode: %v", mode, err)
		}
	}
}

func TestRendererShowOnlyBadHandle(Te *testing.T) {
	ren := NewRenderer()
	if err := ren.ShowOnly(chem.Handle(3), nil); err == nil {
		Te.Error("Expected an error for an unknown handle")
	}
}

func TestRMSDPlot(Te *testing.T) {
	results := []align.Result{
		{RMSD: 0.5},
		{Skipped: true, RMSD: math.NaN(), Reason: "chain absent"},
		{RMSD: 1.2},
	}
	name := filepath.Join(Te.TempDir(), "rmsd")
	if err := RMSDPlot(results, "Per-step RMSD", name); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Errorf("The plot file was not written: %v", err)
	}
	if err := RMSDPlot(nil, "empty", name); err == nil {
		Te.Error("Expected an error for nil data")
	}
	allSkipped := []align.Result{{Skipped: true, RMSD: math.NaN()}}
	if err := RMSDPlot(allSkipped, "skipped", name); err == nil {
		Te.Error("Expected an error when every pair was skipped")
	}
}
