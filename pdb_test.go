/*
 * pdb_test.go, part of chemovie.
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
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPDBFileRead(Te *testing.T) {
	mol, err := PDBFileRead("test/0001.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 10 {
		Te.Errorf("Expected 10 atoms, got %d", mol.Len())
	}
	if diff := cmp.Diff([]string{"A", "B"}, mol.Chains()); diff != "" {
		Te.Errorf("Unexpected chains (-want +got):\n%s", diff)
	}
	first := mol.Atom(0)
	if first.Name != "CA" || first.Molname != "ALA" || first.MolID != 1 {
		Te.Errorf("Unexpected first atom: %+v", first)
	}
	if first.Bfactor != 10.0 || first.Symbol != "C" || first.Het {
		Te.Errorf("Unexpected first atom fields: %+v", first)
	}
	fmt.Println("First atom", first, "chains", mol.Chains())
}

func TestChainCA(Te *testing.T) {
	mol, err := PDBFileRead("test/0001.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	ca, resids, err := mol.ChainCA("A")
	if err != nil {
		Te.Error(err)
	}
	if ca.NVecs() != 4 {
		Te.Errorf("Expected 4 alpha carbons in chain A, got %d", ca.NVecs())
	}
	if diff := cmp.Diff([]string{"1", "2", "3", "4"}, resids); diff != "" {
		Te.Errorf("Unexpected residue identifiers (-want +got):\n%s", diff)
	}
	if ca.At(1, 0) != 3.8 {
		Te.Errorf("Wrong coordinate for second CA: %f", ca.At(1, 0))
	}
	if _, _, err := mol.ChainCA("Z"); err == nil {
		Te.Error("Expected an error for a chain with no alpha carbons")
	}
}

//Inserted residues share a number; the insertion code keeps their
//identifiers distinct.
func TestChainCAInsertionCodes(Te *testing.T) {
	pdb := `ATOM      1 CA   ALA A   1       0.000   0.000   0.000  1.00 10.00           C
ATOM      2 CA   ALA A   2       3.800   0.000   0.000  1.00 10.00           C
ATOM      3 CA   ALA A   2A      4.000   3.800   0.500  1.00 10.00           C
ATOM      4 CA   ALA A   3       3.500   4.000   3.800  1.00 10.00           C
`
	mol, err := PDBRead(strings.NewReader(pdb))
	if err != nil {
		Te.Fatal(err)
	}
	_, ids, err := mol.ChainCA("A")
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff([]string{"1", "2", "2A", "3"}, ids); diff != "" {
		Te.Errorf("Unexpected residue identifiers (-want +got):\n%s", diff)
	}
	if mol.Atom(2).InsCode != "A" {
		Te.Errorf("Expected insertion code A, got %q", mol.Atom(2).InsCode)
	}
}

func TestLigandIndexes(Te *testing.T) {
	mol, err := PDBFileRead("test/0001.pdb")
	if err != nil {
		Te.Fatal(err)
	}
	lig := mol.LigandIndexes()
	if len(lig) != 2 {
		Te.Errorf("Expected 2 ligand atoms, got %d", len(lig))
	}
	for _, i := range lig {
		if !mol.Atom(i).Het {
			Te.Errorf("Ligand atom %d is not HETATM", i)
		}
	}
}

func TestPDBReadBad(Te *testing.T) {
	if _, err := PDBFileRead("test/bad.pdb"); err == nil {
		Te.Error("Expected an error reading a non-PDB file")
	}
	if _, err := PDBFileRead("test/doesnotexist.pdb"); err == nil {
		Te.Error("Expected an error reading a missing file")
	}
}

func TestPDBReadFirstModelOnly(Te *testing.T) {
	pdb := `ATOM      1 CA   ALA A   1       0.000   0.000   0.000  1.00 10.00           C
ENDMDL
ATOM      2 CA   ALA A   2       9.000   9.000   9.000  1.00 10.00           C
`
	mol, err := PDBRead(strings.NewReader(pdb))
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 1 {
		Te.Errorf("Expected only the first model to be read, got %d atoms", mol.Len())
	}
}
