/*
 * prealign.go, part of chemovie.
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
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	chem "github.com/rmera/chemovie"
)

//Runner executes an external program. It is an interface so tests can
//fake the tool instead of needing it installed.
type Runner interface {
	Run(ctx context.Context, exe string, args ...string) error
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, exe string, args ...string) error {
	cmd := exec.CommandContext(ctx, exe, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return Error{fmt.Sprintf("%s: %v: %s", ToolFailed, err, strings.TrimSpace(string(out))), exe, []string{"Run"}, true}
	}
	return nil
}

//Tool pre-aligns a whole set of structure files by driving an
//external pairwise structural-alignment program (USalign by default)
//before anything is loaded: each file is aligned against the aligned
//output of its predecessor, and the rewritten files are what the
//loader then reads. Tool implements chemovie.Prealigner.
type Tool struct {
	name    string
	locator chem.Locator
	runner  Runner
	timeout time.Duration
	tmpdir  string
}

//NewTool returns a Tool driving the named program, with the default
//locator, runner and a 2 minute per-invocation timeout.
func NewTool(name string) *Tool {
	return &Tool{
		name:    name,
		locator: chem.NewPathLocator(),
		runner:  execRunner{},
		timeout: 2 * time.Minute,
	}
}

//Locator returns the locator used to find the program, and sets it to
//a new value, if given.
func (T *Tool) Locator(l ...chem.Locator) chem.Locator {
	if len(l) > 0 && l[0] != nil {
		T.locator = l[0]
	}
	return T.locator
}

//Runner returns the runner used to execute the program, and sets it
//to a new value, if given.
func (T *Tool) Runner(r ...Runner) Runner {
	if len(r) > 0 && r[0] != nil {
		T.runner = r[0]
	}
	return T.runner
}

//Timeout returns the per-invocation timeout, and sets it to a new
//value, if given.
func (T *Tool) Timeout(d ...time.Duration) time.Duration {
	if len(d) > 0 && d[0] > 0 {
		T.timeout = d[0]
	}
	return T.timeout
}

//Align implements the chemovie.Prealigner interface. The first file
//is copied verbatim to the scratch directory; every later file is
//aligned against the aligned version of its predecessor. A file for
//which the program fails is copied unaligned, with a warning, and the
//pass goes on: a partly aligned set still loads. Align fails outright
//only when the program cannot be found at all, or the scratch
//directory cannot be created; the caller then falls back to the
//original files.
func (T *Tool) Align(files []string) ([]string, error) {
	exe, err := T.locator.Locate(T.name)
	if err != nil {
		return nil, Error{ToolNotFound + ": " + T.name, "", []string{"Align"}, true}
	}
	T.Cleanup() //scratch from a previous run, if any
	T.tmpdir, err = os.MkdirTemp("", "chemovie_align_")
	if err != nil {
		return nil, Error{err.Error(), "", []string{"Align"}, true}
	}
	aligned := make([]string, 0, len(files))
	prev := ""
	for _, file := range files {
		base := filepath.Base(file)
		out := filepath.Join(T.tmpdir, base)
		if prev == "" {
			if err := copyFile(file, out); err != nil {
				return nil, errDecorate(err, "Align")
			}
		} else {
			prefix := filepath.Join(T.tmpdir, strings.TrimSuffix(base, filepath.Ext(base)))
			ctx, cancel := context.WithTimeout(context.Background(), T.timeout)
			err := T.runner.Run(ctx, exe, file, prev, "-mm", "1", "-chimerax", prefix)
			cancel()
			rewritten := prefix + ".pdb"
			if err == nil && fileExists(rewritten) {
				out = rewritten
			} else {
				log.Printf("align: %s failed for %s, keeping it unaligned: %v", T.name, base, err)
				if err := copyFile(file, out); err != nil {
					return nil, errDecorate(err, "Align")
				}
			}
		}
		aligned = append(aligned, out)
		prev = out
	}
	//the tool drops auxiliary viewer scripts next to its output
	if scripts, err := filepath.Glob(filepath.Join(T.tmpdir, "*.cxc")); err == nil {
		for _, s := range scripts {
			os.Remove(s)
		}
	}
	return aligned, nil
}

//Cleanup implements the chemovie.Prealigner interface, removing the
//scratch directory.
func (T *Tool) Cleanup() {
	if T.tmpdir == "" {
		return
	}
	if err := os.RemoveAll(T.tmpdir); err != nil {
		log.Printf("align: failed to clean up %s: %v", T.tmpdir, err)
	}
	T.tmpdir = ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return Error{err.Error(), src, []string{"copyFile"}, true}
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return Error{err.Error(), dst, []string{"copyFile"}, true}
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return Error{err.Error(), dst, []string{"copyFile"}, true}
	}
	return out.Close()
}
