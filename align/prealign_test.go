/*
 * prealign_test.go, part of chemovie.
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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fixedLocator struct{ path string }

func (l fixedLocator) Locate(name string) (string, error) {
	if l.path == "" {
		return "", Error{ToolNotFound, "", nil, true}
	}
	return l.path, nil
}

//fakeRunner mimics the external tool: it writes the expected
//rewritten file (and the auxiliary viewer script the real tool drops),
//or fails for files listed in failOn.
type fakeRunner struct {
	calls  [][]string
	failOn string
}

func (r *fakeRunner) Run(ctx context.Context, exe string, args ...string) error {
	r.calls = append(r.calls, args)
	curr := args[0]
	if r.failOn != "" && strings.Contains(curr, r.failOn) {
		return Error{ToolFailed, curr, nil, true}
	}
	prefix := args[len(args)-1]
	if err := os.WriteFile(prefix+".pdb", []byte("aligned\n"), 0644); err != nil {
		return err
	}
	return os.WriteFile(prefix+".cxc", []byte("open\n"), 0644)
}

func inputFiles(Te *testing.T, names ...string) []string {
	dir := Te.TempDir()
	files := make([]string, len(names))
	for i, n := range names {
		files[i] = filepath.Join(dir, n)
		if err := os.WriteFile(files[i], []byte("original "+n+"\n"), 0644); err != nil {
			Te.Fatal(err)
		}
	}
	return files
}

func TestToolAlign(Te *testing.T) {
	files := inputFiles(Te, "0001.pdb", "0002.pdb", "0003.pdb")
	runner := new(fakeRunner)
	tool := NewTool("USalign")
	tool.Locator(fixedLocator{"/usr/bin/true"})
	tool.Runner(runner)
	defer tool.Cleanup()
	aligned, err := tool.Align(files)
	if err != nil {
		Te.Fatal(err)
	}
	if len(aligned) != 3 {
		Te.Fatalf("Expected 3 output files, got %d", len(aligned))
	}
	//the first file is copied verbatim
	content, err := os.ReadFile(aligned[0])
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(string(content), "original 0001.pdb") {
		Te.Errorf("First file should be a verbatim copy, got %q", content)
	}
	//the others are the tool's output
	for _, f := range aligned[1:] {
		content, err := os.ReadFile(f)
		if err != nil {
			Te.Fatal(err)
		}
		if string(content) != "aligned\n" {
			Te.Errorf("Expected rewritten content in %s, got %q", f, content)
		}
	}
	//each invocation aligns the current file on the previous output
	if len(runner.calls) != 2 {
		Te.Fatalf("Expected 2 tool invocations, got %d", len(runner.calls))
	}
	if runner.calls[0][0] != files[1] || runner.calls[0][1] != aligned[0] {
		Te.Errorf("Wrong pair in the first invocation: %v", runner.calls[0])
	}
	if runner.calls[0][2] != "-mm" || runner.calls[0][3] != "1" || runner.calls[0][4] != "-chimerax" {
		Te.Errorf("Wrong tool arguments: %v", runner.calls[0])
	}
	//the viewer scripts are removed
	scripts, _ := filepath.Glob(filepath.Join(filepath.Dir(aligned[0]), "*.cxc"))
	if len(scripts) != 0 {
		Te.Errorf("Viewer scripts were not removed: %v", scripts)
	}
}

func TestToolAlignPartialFailure(Te *testing.T) {
	files := inputFiles(Te, "0001.pdb", "0002.pdb", "0003.pdb")
	runner := &fakeRunner{failOn: "0002"}
	tool := NewTool("USalign")
	tool.Locator(fixedLocator{"/usr/bin/true"})
	tool.Runner(runner)
	defer tool.Cleanup()
	aligned, err := tool.Align(files)
	if err != nil {
		Te.Fatal(err)
	}
	if len(aligned) != 3 {
		Te.Fatalf("Expected 3 output files, got %d", len(aligned))
	}
	//the failed file falls back to a verbatim copy; the pass goes on
	content, err := os.ReadFile(aligned[1])
	if err != nil {
		Te.Fatal(err)
	}
	if !strings.Contains(string(content), "original 0002.pdb") {
		Te.Errorf("Failed file should be copied unaligned, got %q", content)
	}
	content, err = os.ReadFile(aligned[2])
	if err != nil {
		Te.Fatal(err)
	}
	if string(content) != "aligned\n" {
		Te.Errorf("Later files should still be aligned, got %q", content)
	}
}

func TestToolNotFound(Te *testing.T) {
	tool := NewTool("definitely_not_installed")
	tool.Locator(fixedLocator{""})
	if _, err := tool.Align([]string{"whatever.pdb"}); err == nil {
		Te.Error("Expected an error when the tool cannot be found")
	}
}

func TestToolCleanup(Te *testing.T) {
	files := inputFiles(Te, "0001.pdb", "0002.pdb")
	tool := NewTool("USalign")
	tool.Locator(fixedLocator{"/usr/bin/true"})
	tool.Runner(new(fakeRunner))
	aligned, err := tool.Align(files)
	if err != nil {
		Te.Fatal(err)
	}
	scratch := filepath.Dir(aligned[0])
	tool.Cleanup()
	if _, err := os.Stat(scratch); !os.IsNotExist(err) {
		Te.Errorf("Scratch directory %s survived Cleanup", scratch)
	}
}
