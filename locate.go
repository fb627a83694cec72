/*
 * locate.go, part of chemovie.
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
	"os"
	"os/exec"
	"path/filepath"
)

//Locator finds external executables. It is an interface so that tests
//(and hosts with their own discovery rules) can inject one.
type Locator interface {

	//Locate returns the full path of the named executable, or an
	//error if it cannot be found.
	Locate(name string) (string, error)
}

//PathLocator looks for executables first in the system search path,
//then in a fixed list of common installation directories. It is the
//Locator used when the caller gives none.
type PathLocator struct {
	dirs []string
}

//NewPathLocator returns a PathLocator probing the system path, the
//usual conda-style prefixes under the user's home, /usr/local/bin and
///opt/homebrew/bin, plus any extra directories given, in that order.
func NewPathLocator(extra ...string) *PathLocator {
	home, _ := os.UserHomeDir()
	dirs := []string{
		filepath.Join(home, "miniforge3", "bin"),
		filepath.Join(home, "miniconda3", "bin"),
		filepath.Join(home, "anaconda3", "bin"),
		filepath.Join(home, "conda", "bin"),
		"/usr/local/bin",
		"/opt/homebrew/bin",
	}
	dirs = append(dirs, extra...)
	return &PathLocator{dirs: dirs}
}

//Locate implements the Locator interface.
func (L *PathLocator) Locate(name string) (string, error) {
	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}
	for _, dir := range L.dirs {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if info.Mode()&0111 != 0 {
			return path, nil
		}
	}
	return "", CError{"Executable not found: " + name, "", []string{"Locate"}, true}
}
