/*
 * sequential_test.go, part of chemovie.
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

package align

import (
	"math"
	"strings"
	"testing"

	chem "github.com/rmera/chemovie"
	v3 "github.com/rmera/chemovie/v3"
)

//mapSource hands out pre-loaded structures by handle.
type mapSource map[chem.Handle]*chem.Structure

func (s mapSource) Structure(h chem.Handle) (*chem.Structure, error) {
	mol, ok := s[h]
	if !ok {
		return nil, Error{"no such handle", "", []string{"Structure"}, true}
	}
	return mol, nil
}

func loadTraj(Te *testing.T, paths ...string) (*chem.Trajectory, mapSource) {
	source := mapSource{}
	frames := make([]*chem.Frame, 0, len(paths))
	for i, path := range paths {
		mol, err := chem.PDBFileRead(path)
		if err != nil {
			Te.Fatal(err)
		}
		h := chem.Handle(i)
		source[h] = mol
		frames = append(frames, chem.NewFrame(i, path, h, mol.Chains()))
	}
	t, err := chem.NewTrajectory(frames, 1)
	if err != nil {
		Te.Fatal(err)
	}
	return t, source
}

//The fixture frames are rigid translations of each other, so the
//cumulative transformation of every frame must map its chain A alpha
//carbons exactly onto those of frame 0.
func TestSequential(Te *testing.T) {
	traj, source := loadTraj(Te, "../test/0001.pdb", "../test/0002.pdb", "../test/0003.pdb")
	results, warns, err := Sequential(traj, "A", &CAMatcher{Source: source})
	if err != nil {
		Te.Fatal(err)
	}
	if len(warns) != 0 {
		Te.Errorf("Unexpected warnings: %v", warns)
	}
	if len(results) != 2 {
		Te.Fatalf("Expected 2 pair results, got %d", len(results))
	}
	for i, res := range results {
		if res.Skipped || res.Local == nil {
			Te.Errorf("Pair %d was skipped: %s", i, res.Reason)
		}
		if res.RMSD > 1e-6 {
			Te.Errorf("Pair %d RMSD too large: %g", i, res.RMSD)
		}
	}
	if !traj.Frame(0).Transform().IsIdentity(1e-9) {
		Te.Error("Frame 0 must keep the identity")
	}
	ref, _, err := source[0].ChainCA("A")
	if err != nil {
		Te.Fatal(err)
	}
	for i := 1; i < traj.Len(); i++ {
		ca, _, err := source[chem.Handle(i)].ChainCA("A")
		if err != nil {
			Te.Fatal(err)
		}
		moved := v3.Zeros(ca.NVecs())
		if err := traj.Frame(i).Transform().Apply(moved, ca); err != nil {
			Te.Fatal(err)
		}
		if !moved.Eq(ref, 1e-6) {
			Te.Errorf("Frame %d does not land on the reference frame", i)
		}
	}
}

//Re-running on an unmodified trajectory must give identical
//transformations.
func TestSequentialIdempotent(Te *testing.T) {
	traj, source := loadTraj(Te, "../test/0001.pdb", "../test/0002.pdb", "../test/0003.pdb")
	m := &CAMatcher{Source: source}
	if _, _, err := Sequential(traj, "A", m); err != nil {
		Te.Fatal(err)
	}
	first := make([]*v3.Transform, traj.Len())
	for i := range first {
		first[i] = traj.Frame(i).Transform().Clone()
	}
	if _, _, err := Sequential(traj, "A", m); err != nil {
		Te.Fatal(err)
	}
	for i := range first {
		if !traj.Frame(i).Transform().Eq(first[i], 1e-9) {
			Te.Errorf("Frame %d transformation changed between runs", i)
		}
	}
}

//A frame lacking the selected chain keeps its predecessor's
//cumulative transformation and the pass goes on.
func TestSequentialMissingChain(Te *testing.T) {
	traj, source := loadTraj(Te, "../test/0001.pdb", "../test/nochainb.pdb", "../test/0003.pdb")
	results, warns, err := Sequential(traj, "B", &CAMatcher{Source: source})
	if err != nil {
		Te.Fatal(err)
	}
	if len(warns) == 0 {
		Te.Error("Expected warnings about the missing chain")
	}
	if len(results) != 2 {
		Te.Fatalf("Expected 2 pair results, got %d", len(results))
	}
	//pair 0-1: frame 1 lacks B; pair 1-2: frame 1 (now the reference)
	//lacks B, so matching fails too
	for i, res := range results {
		if !res.Skipped {
			Te.Errorf("Pair %d should have been skipped", i)
		}
		if !math.IsNaN(res.RMSD) {
			Te.Errorf("Skipped pair %d should have NaN RMSD", i)
		}
	}
	for i := 0; i < traj.Len(); i++ {
		if !traj.Frame(i).Transform().IsIdentity(1e-9) {
			Te.Errorf("Frame %d should carry the identity when every pair is skipped", i)
		}
	}
}

func readPDB(Te *testing.T, text string) *chem.Structure {
	mol, err := chem.PDBRead(strings.NewReader(text))
	if err != nil {
		Te.Fatal(err)
	}
	return mol
}

//Inserted residues share a number and differ only in their insertion
//codes; pairing must keep them apart, so every alpha carbon
//contributes to the superposition instead of the duplicates collapsing
//into a single pair.
func TestMatchInsertionCodes(Te *testing.T) {
	prev := readPDB(Te, `ATOM      1 CA   ALA A  52       0.000   0.000   0.000  1.00 10.00           C
ATOM      2 CA   ALA A  52A     3.800   0.000   0.000  1.00 10.00           C
ATOM      3 CA   ALA A  52B     4.000   3.800   0.500  1.00 10.00           C
ATOM      4 CA   ALA A  52C     3.500   4.000   3.800  1.00 10.00           C
`)
	curr := readPDB(Te, `ATOM      1 CA   ALA A  52       1.000   2.000   3.000  1.00 10.00           C
ATOM      2 CA   ALA A  52A     4.800   2.000   3.000  1.00 10.00           C
ATOM      3 CA   ALA A  52B     5.000   5.800   3.500  1.00 10.00           C
ATOM      4 CA   ALA A  52C     4.500   6.000   6.800  1.00 10.00           C
`)
	source := mapSource{0: prev, 1: curr}
	m := &CAMatcher{Source: source}
	T, rmsd, err := m.Match(0, 1, "A")
	if err != nil {
		Te.Fatal(err)
	}
	if rmsd > 1e-6 {
		Te.Errorf("RMSD too large for a rigid translation: %g", rmsd)
	}
	pca, _, err := prev.ChainCA("A")
	if err != nil {
		Te.Fatal(err)
	}
	cca, _, err := curr.ChainCA("A")
	if err != nil {
		Te.Fatal(err)
	}
	moved := v3.Zeros(cca.NVecs())
	if err := T.Apply(moved, cca); err != nil {
		Te.Fatal(err)
	}
	if !moved.Eq(pca, 1e-6) {
		Te.Error("The transformation does not land the inserted residues on the reference")
	}
}

func TestSequentialErrors(Te *testing.T) {
	traj, source := loadTraj(Te, "../test/0001.pdb", "../test/0002.pdb")
	m := &CAMatcher{Source: source}
	if _, _, err := Sequential(nil, "A", m); err == nil {
		Te.Error("Expected an error for a nil trajectory")
	}
	if _, _, err := Sequential(traj, "C", m); err == nil {
		Te.Error("Expected an error for an invalid chain selector")
	}
	if _, _, err := Sequential(traj, "A", nil); err == nil {
		Te.Error("Expected an error for a nil matcher")
	}
}

func TestSequentialSingleFrame(Te *testing.T) {
	traj, source := loadTraj(Te, "../test/0001.pdb")
	results, warns, err := Sequential(traj, "A", &CAMatcher{Source: source})
	if err != nil {
		Te.Fatal(err)
	}
	if results != nil {
		Te.Errorf("Expected no results for a single frame, got %d", len(results))
	}
	if len(warns) != 1 {
		Te.Errorf("Expected the not-enough-frames warning, got %v", warns)
	}
}
