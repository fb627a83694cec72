/*
 * load.go, part of chemovie.
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
	"log"
	"path/filepath"
	"sort"
)

//Prealigner aligns a whole set of structure files on disk before they
//are loaded, returning the paths of the rewritten files. The
//chemovie/align package provides an implementation driving an
//external tool.
type Prealigner interface {
	Align(files []string) ([]string, error)

	//Cleanup removes whatever scratch space Align used. Loaders call
	//it once the rewritten files have been read.
	Cleanup()
}

//LoadOptions contains the options for trajectory loading.
type LoadOptions struct {
	skip       int
	prealigner Prealigner
	chainHint  string
}

//DefaultLoadOptions returns the default loading options: every file
//is kept, no pre-alignment, no chain hint.
func DefaultLoadOptions() *LoadOptions {
	O := new(LoadOptions)
	O.skip = 1
	return O
}

//Skip returns the load stride (every skip-th file is kept, starting
//from the first), and sets it to a new value, if given.
func (O *LoadOptions) Skip(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.skip = n[0]
	}
	return O.skip
}

//Prealigner returns the pre-alignment implementation to use, if any,
//and sets it to a new value, if given.
func (O *LoadOptions) Prealigner(p ...Prealigner) Prealigner {
	if len(p) > 0 {
		O.prealigner = p[0]
	}
	return O.prealigner
}

//ChainHint returns the chain the caller intends to align on, and sets
//it to a new value, if given. It is advisory: loading succeeds even
//if some frames lack the chain.
func (O *LoadOptions) ChainHint(c ...string) string {
	if len(c) > 0 {
		O.chainHint = c[0]
	}
	return O.chainHint
}

//LoadDir discovers the .pdb and .cif files in dir and loads them as a
//trajectory (see LoadFiles). It fails if dir contains no such files.
func LoadDir(r Renderer, dir string, o *LoadOptions) (*Trajectory, []string, error) {
	pdbs, err := filepath.Glob(filepath.Join(dir, "*.pdb"))
	if err != nil {
		return nil, nil, CError{UnreadablePath, dir, []string{"LoadDir"}, true}
	}
	cifs, _ := filepath.Glob(filepath.Join(dir, "*.cif"))
	files := append(pdbs, cifs...)
	if len(files) == 0 {
		return nil, nil, CError{NoFilesFound, dir, []string{"LoadDir"}, true}
	}
	t, warns, err := LoadFiles(r, files, o)
	if err != nil {
		return nil, warns, errDecorate(err, "LoadDir")
	}
	return t, warns, nil
}

//LoadFiles turns a set of structure files into a Trajectory. The
//files are ordered by plain lexicographic comparison of their base
//names (zero-pad numeric names to get the intended order), then every
//skip-th file starting from the first is kept. If a Prealigner was
//set, it runs over the retained set before any frame is built; if it
//fails, the unaligned originals are loaded instead and a warning is
//returned, since a usable unaligned trajectory beats no trajectory.
//The returned warning strings describe every recoverable condition
//met during loading; they are also logged as they happen. The
//resulting trajectory replaces any previous one the caller holds; its
//current index starts at 0 and every cumulative transformation is the
//identity.
func LoadFiles(r Renderer, files []string, o *LoadOptions) (*Trajectory, []string, error) {
	if r == nil {
		return nil, nil, CError{NilRenderer, "", []string{"LoadFiles"}, true}
	}
	if o == nil {
		o = DefaultLoadOptions()
	}
	if o.skip < 1 {
		return nil, nil, CError{InvalidSkip, "", []string{"LoadFiles"}, true}
	}
	if len(files) == 0 {
		return nil, nil, CError{NoFilesFound, "", []string{"LoadFiles"}, true}
	}
	ordered := make([]string, len(files))
	copy(ordered, files)
	sort.Slice(ordered, func(i, j int) bool {
		bi, bj := filepath.Base(ordered[i]), filepath.Base(ordered[j])
		if bi != bj {
			return bi < bj
		}
		return ordered[i] < ordered[j]
	})
	var retained []string
	for i := 0; i < len(ordered); i += o.skip {
		retained = append(retained, ordered[i])
	}
	var warns []string
	warn := func(format string, args ...interface{}) {
		w := fmt.Sprintf(format, args...)
		log.Printf("chemovie: %s", w)
		warns = append(warns, w)
	}
	toload := retained
	if o.prealigner != nil {
		aligned, err := o.prealigner.Align(retained)
		if err != nil {
			warn("Pre-alignment failed, loading the unaligned originals: %v", err)
		} else {
			toload = aligned
		}
		defer o.prealigner.Cleanup()
	}
	frames := make([]*Frame, 0, len(toload))
	for _, path := range toload {
		h, err := r.Load(path)
		if err != nil {
			warn("Failed to load %s: %v", filepath.Base(path), err)
			continue
		}
		chains, err := r.Chains(h)
		if err != nil {
			warn("Could not list the chains of %s: %v", filepath.Base(path), err)
		}
		if o.chainHint != "" && !isInString(chains, o.chainHint) {
			warn("Chain %s is absent from %s", o.chainHint, filepath.Base(path))
		}
		frames = append(frames, NewFrame(len(frames), path, h, chains))
	}
	if len(frames) == 0 {
		return nil, warns, CError{"None of the given files could be loaded", "", []string{"LoadFiles"}, true}
	}
	if len(frames) < 2 {
		warn(NotEnoughForAlignment)
	}
	t, err := NewTrajectory(frames, o.skip)
	if err != nil {
		return nil, warns, errDecorate(err, "LoadFiles")
	}
	return t, warns, nil
}

//isInString returns true if test is in container, false otherwise.
func isInString(container []string, test string) bool {
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
