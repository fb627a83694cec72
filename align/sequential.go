/*
 * sequential.go, part of chemovie.
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

//Package align brings the frames of a trajectory into a common
//reference frame. It offers two mutually exclusive strategies:
//pre-alignment, where an external tool rewrites the structure files
//on disk before loading (Tool), and sequential alignment, where each
//loaded frame is rigidly superposed on its predecessor and the
//per-pair transformations are chained cumulatively from the first
//frame (Sequential).
package align

import (
	"fmt"
	"log"
	"math"
	"sort"

	chem "github.com/rmera/chemovie"
	v3 "github.com/rmera/chemovie/v3"
)

//Matcher computes the rigid-body transformation superposing the atoms
//of a given chain of the curr structure onto the same chain of the
//prev structure, plus the RMSD of the superposed pair. It is the
//boundary with the host's structure-matching capability; CAMatcher is
//the implementation used when the host offers none.
type Matcher interface {
	Match(prev, curr chem.Handle, chain string) (*v3.Transform, float64, error)
}

//Result describes the alignment of one adjacent frame pair. When
//Skipped is true (selected chain absent, or matching failed) Local is
//nil, RMSD is NaN and Reason says why; the frame then keeps its
//predecessor's cumulative transformation.
type Result struct {
	Local   *v3.Transform
	RMSD    float64
	Skipped bool
	Reason  string
}

//Sequential aligns every frame of t on its predecessor by rigid-body
//superposition of the given chain (A or B), setting each frame's
//cumulative transformation to the composition of all the local ones
//up to it. Frame 0 always gets the identity. A frame lacking the
//chain keeps its predecessor's cumulative transformation, and the
//pass goes on; such conditions come back as warnings, not errors.
//Re-running Sequential with the same chain on an unmodified
//trajectory reproduces identical transformations.
//
//It returns one Result per adjacent pair, in order.
func Sequential(t *chem.Trajectory, chain string, m Matcher) ([]Result, []string, error) {
	if t == nil {
		return nil, nil, Error{NilTrajectory, "", []string{"Sequential"}, true}
	}
	if chain != "A" && chain != "B" {
		return nil, nil, Error{BadChain, "", []string{"Sequential"}, true}
	}
	if m == nil {
		return nil, nil, Error{"Given a nil matcher", "", []string{"Sequential"}, true}
	}
	var warns []string
	warn := func(format string, args ...interface{}) {
		w := fmt.Sprintf(format, args...)
		log.Printf("align: %s", w)
		warns = append(warns, w)
	}
	if t.Len() < 2 {
		warn(chem.NotEnoughForAlignment)
		return nil, warns, nil
	}
	t.Frame(0).SetTransform(nil) //identity, by definition
	cum := v3.Identity()
	results := make([]Result, 0, t.Len()-1)
	for i := 0; i < t.Len()-1; i++ {
		prev := t.Frame(i)
		curr := t.Frame(i + 1)
		skip := func(reason string) {
			warn("Pair %d-%d: %s", i, i+1, reason)
			curr.SetTransform(cum.Clone())
			results = append(results, Result{RMSD: math.NaN(), Skipped: true, Reason: reason})
		}
		if !curr.HasChain(chain) {
			skip(ChainMissing + " " + chain)
			continue
		}
		local, rmsd, err := m.Match(prev.Handle(), curr.Handle(), chain)
		if err != nil {
			skip(err.Error())
			continue
		}
		cum = v3.Compose(local, cum)
		curr.SetTransform(cum.Clone())
		results = append(results, Result{Local: local, RMSD: rmsd})
	}
	return results, warns, nil
}

//StructureSource gives access to the structures behind renderer
//handles. The chemplot renderer implements it.
type StructureSource interface {
	Structure(h chem.Handle) (*chem.Structure, error)
}

//CAMatcher superposes frames on the alpha carbons of the selected
//chain, pairing residues by number and insertion code, so frames
//whose chains differ in length still align on their common residues.
type CAMatcher struct {
	Source StructureSource
}

//Match implements the Matcher interface.
func (M *CAMatcher) Match(prev, curr chem.Handle, chain string) (*v3.Transform, float64, error) {
	sp, err := M.Source.Structure(prev)
	if err != nil {
		return nil, 0, errDecorate(err, "Match")
	}
	sc, err := M.Source.Structure(curr)
	if err != nil {
		return nil, 0, errDecorate(err, "Match")
	}
	pca, pres, err := sp.ChainCA(chain)
	if err != nil {
		return nil, 0, errDecorate(err, "Match")
	}
	cca, cres, err := sc.ChainCA(chain)
	if err != nil {
		return nil, 0, errDecorate(err, "Match")
	}
	pidx, cidx := pairedResidues(pres, cres)
	if len(pidx) < 3 {
		return nil, 0, Error{NotEnoughAtoms, "", []string{"Match"}, true}
	}
	ptempla := v3.Zeros(len(pidx))
	ptempla.SomeVecs(pca, pidx)
	ctest := v3.Zeros(len(cidx))
	ctest.SomeVecs(cca, cidx)
	T, rmsd, err := Superpose(ctest, ptempla)
	if err != nil {
		return nil, 0, errDecorate(err, "Match")
	}
	return T, rmsd, nil
}

//pairedResidues returns, for 2 slices of residue identifiers, the
//positions in each slice of the residues present in both, matched in
//a fixed identifier order. A duplicated identifier keeps its first
//occurrence on both sides.
func pairedResidues(a, b []string) ([]int, []int) {
	bpos := make(map[string]int, len(b))
	for i, r := range b {
		if _, dup := bpos[r]; !dup {
			bpos[r] = i
		}
	}
	var common []string
	apos := make(map[string]int, len(a))
	for i, r := range a {
		if _, ok := bpos[r]; ok {
			if _, dup := apos[r]; !dup {
				apos[r] = i
				common = append(common, r)
			}
		}
	}
	sort.Strings(common)
	ai := make([]int, len(common))
	bi := make([]int, len(common))
	for i, r := range common {
		ai[i] = apos[r]
		bi[i] = bpos[r]
	}
	return ai, bi
}
