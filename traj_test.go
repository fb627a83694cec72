/*
 * traj_test.go, part of chemovie.
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
	"testing"
)

func someFrames(n int) []*Frame {
	frames := make([]*Frame, n)
	for i := range frames {
		frames[i] = NewFrame(i, fmt.Sprintf("%04d.pdb", i+1), Handle(i), []string{"A"})
	}
	return frames
}

func TestNewTrajectory(Te *testing.T) {
	t, err := NewTrajectory(someFrames(3), 1)
	if err != nil {
		Te.Fatal(err)
	}
	if t.Len() != 3 || t.Current() != 0 || t.LoadSkip() != 1 {
		Te.Errorf("Unexpected trajectory state: len %d current %d skip %d", t.Len(), t.Current(), t.LoadSkip())
	}
	if _, err := NewTrajectory(someFrames(3), 0); err == nil {
		Te.Error("Expected an error for skip 0")
	}
	frames := someFrames(3)
	frames[1], frames[2] = frames[2], frames[1]
	if _, err := NewTrajectory(frames, 1); err == nil {
		Te.Error("Expected an error for non-contiguous frame indexes")
	}
}

func TestSetCurrentClamps(Te *testing.T) {
	t, err := NewTrajectory(someFrames(5), 1)
	if err != nil {
		Te.Fatal(err)
	}
	if got := t.SetCurrent(3); got != 3 || t.Current() != 3 {
		Te.Errorf("SetCurrent(3) set %d", got)
	}
	if got := t.SetCurrent(-2); got != 0 {
		Te.Errorf("SetCurrent(-2) should clamp to 0, set %d", got)
	}
	if got := t.SetCurrent(99); got != 4 {
		Te.Errorf("SetCurrent(99) should clamp to 4, set %d", got)
	}
}

func TestFrameTransform(Te *testing.T) {
	f := NewFrame(0, "0001.pdb", 0, []string{"A", "B"})
	if !f.Transform().IsIdentity(1e-12) {
		Te.Error("A new frame should carry the identity transformation")
	}
	if !f.HasChain("B") || f.HasChain("C") {
		Te.Error("Wrong chain report")
	}
	f.SetTransform(nil)
	if !f.Transform().IsIdentity(1e-12) {
		Te.Error("SetTransform(nil) should reset to the identity")
	}
}
