/*
 * pdb.go, part of chemovie.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/rmera/chemovie/v3"
)

//Atom contains an atom read from a structure file, except for its
//coordinates, which go in a separate matrix.
type Atom struct {
	Name    string
	ID      int
	Molname string
	MolID   int
	InsCode string //PDB insertion code, empty for most residues
	Chain   string
	Bfactor float64
	Symbol  string
	Het     bool //is the atom a HETATM in the pdb file?
}

//Structure is a set of atoms plus their coordinates, as read from one
//structure file. Only the first model of a multi-model file is kept.
type Structure struct {
	atoms  []*Atom
	coords *v3.Matrix
}

//Len returns the number of atoms in the structure.
func (S *Structure) Len() int { return len(S.atoms) }

//Atom returns the ith atom. Panics if out of range; an out-of-range
//index here is always a programming error.
func (S *Structure) Atom(i int) *Atom { return S.atoms[i] }

//Coords returns the coordinates of the structure. The returned matrix
//is the structure's own, not a copy.
func (S *Structure) Coords() *v3.Matrix { return S.coords }

//Chains returns the chain identifiers present in the structure, in
//order of first appearance.
func (S *Structure) Chains() []string {
	var chains []string
	seen := map[string]bool{}
	for _, at := range S.atoms {
		if at.Chain != "" && !seen[at.Chain] {
			seen[at.Chain] = true
			chains = append(chains, at.Chain)
		}
	}
	return chains
}

//ChainCA returns the coordinates of the alpha carbons of the given
//chain, together with the identifier of each residue, in residue
//order. The identifier is the residue number plus any insertion code
//("52", "52A"), so inserted residues sharing a number stay distinct.
func (S *Structure) ChainCA(chain string) (*v3.Matrix, []string, error) {
	var idx []int
	var resids []string
	for i, at := range S.atoms {
		if at.Chain == chain && at.Name == "CA" && !at.Het {
			idx = append(idx, i)
			resids = append(resids, strconv.Itoa(at.MolID)+at.InsCode)
		}
	}
	if len(idx) == 0 {
		return nil, nil, CError{fmt.Sprintf("No alpha carbons in chain %s", chain), "", []string{"ChainCA"}, false}
	}
	coords := v3.Zeros(len(idx))
	coords.SomeVecs(S.coords, idx)
	return coords, resids, nil
}

//LigandIndexes returns the indexes of the HETATM atoms that are not
//water.
func (S *Structure) LigandIndexes() []int {
	var idx []int
	for i, at := range S.atoms {
		if at.Het && at.Molname != "HOH" {
			idx = append(idx, i)
		}
	}
	return idx
}

//PDBFileRead reads a PDB file and returns a Structure.
func PDBFileRead(path string) (*Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CError{UnreadablePath, path, []string{"PDBFileRead"}, true}
	}
	defer f.Close()
	S, err := PDBRead(f)
	if err != nil {
		return nil, errDecorate(err, "PDBFileRead "+path)
	}
	return S, nil
}

//PDBRead reads a PDB-formatted stream and returns a Structure. The
//parser is deliberately small: it understands ATOM/HETATM/ENDMDL and
//nothing else, which is all trajectory snapshots need.
func PDBRead(r io.Reader) (*Structure, error) {
	buf := bufio.NewReader(r)
	var atoms []*Atom
	var coords []float64
	for {
		line, err := buf.ReadString('\n')
		if err != nil && (err != io.EOF || len(line) == 0) {
			break
		}
		if strings.HasPrefix(line, "ENDMDL") {
			break //first model only
		}
		if !strings.HasPrefix(line, "ATOM") && !strings.HasPrefix(line, "HETATM") {
			if err == io.EOF {
				break
			}
			continue
		}
		at, xyz, err2 := parsePDBLine(line)
		if err2 != nil {
			return nil, errDecorate(err2, "PDBRead")
		}
		if at == nil { //skipped alternate location
			continue
		}
		atoms = append(atoms, at)
		coords = append(coords, xyz[0], xyz[1], xyz[2])
		if err == io.EOF {
			break
		}
	}
	if len(atoms) == 0 {
		return nil, CError{"No atoms found in the stream", "", []string{"PDBRead"}, true}
	}
	m, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "PDBRead")
	}
	return &Structure{atoms: atoms, coords: m}, nil
}

//parsePDBLine parses one ATOM/HETATM record using the fixed PDB
//columns. A nil atom with nil error means a skipped alternate
//location record.
func parsePDBLine(line string) (*Atom, [3]float64, error) {
	var xyz [3]float64
	if len(line) < 54 {
		return nil, xyz, CError{"Malformed ATOM/HETATM line: " + strings.TrimSpace(line), "", []string{"parsePDBLine"}, true}
	}
	if alt := line[16]; alt != ' ' && alt != 'A' {
		return nil, xyz, nil
	}
	at := new(Atom)
	at.Het = strings.HasPrefix(line, "HETATM")
	at.Name = strings.TrimSpace(line[12:16])
	at.Molname = strings.TrimSpace(line[17:20])
	at.Chain = strings.TrimSpace(line[21:22])
	var err error
	at.ID, err = strconv.Atoi(strings.TrimSpace(line[6:11]))
	if err != nil {
		return nil, xyz, CError{"Bad atom serial: " + err.Error(), "", []string{"parsePDBLine"}, true}
	}
	at.MolID, err = strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return nil, xyz, CError{"Bad residue number: " + err.Error(), "", []string{"parsePDBLine"}, true}
	}
	at.InsCode = strings.TrimSpace(line[26:27])
	for i, span := range [3][2]int{{30, 38}, {38, 46}, {46, 54}} {
		xyz[i], err = strconv.ParseFloat(strings.TrimSpace(line[span[0]:span[1]]), 64)
		if err != nil {
			return nil, xyz, CError{"Bad coordinate: " + err.Error(), "", []string{"parsePDBLine"}, true}
		}
	}
	if len(line) >= 66 {
		at.Bfactor, _ = strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64) //missing b-factors are fine
	}
	if len(line) >= 78 {
		at.Symbol = strings.TrimSpace(line[76:78])
	}
	if at.Symbol == "" && at.Name != "" {
		at.Symbol = at.Name[:1]
	}
	return at, xyz, nil
}
