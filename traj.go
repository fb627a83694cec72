/*
 * traj.go, part of chemovie.
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

	v3 "github.com/rmera/chemovie/v3"
)

//Frame is one loaded structure snapshot within a trajectory. It holds
//only the frame index, the source path, the handle given by the
//rendering engine and the cumulative transformation to the reference
//frame of the first snapshot. The bulk coordinate data stays with the
//renderer, so a Frame is cheap regardless of the structure size.
type Frame struct {
	index     int
	path      string
	handle    Handle
	transform *v3.Transform
	chains    []string
}

//NewFrame returns a Frame with the identity cumulative transformation.
func NewFrame(index int, path string, handle Handle, chains []string) *Frame {
	return &Frame{index: index, path: path, handle: handle, transform: v3.Identity(), chains: chains}
}

//Index returns the position of the frame in its trajectory.
func (F *Frame) Index() int { return F.index }

//Path returns the file from which the frame was loaded.
func (F *Frame) Path() string { return F.path }

//Handle returns the renderer handle for the frame's structure.
func (F *Frame) Handle() Handle { return F.handle }

//Transform returns the cumulative transformation that brings the
//frame's coordinates into the reference frame of frame 0. Callers
//must not modify the returned value; use SetTransform instead.
func (F *Frame) Transform() *v3.Transform { return F.transform }

//SetTransform replaces the cumulative transformation of the frame.
//A nil argument resets it to the identity.
func (F *Frame) SetTransform(t *v3.Transform) {
	if t == nil {
		F.transform = v3.Identity()
		return
	}
	F.transform = t
}

//Chains returns the chain identifiers present in the frame.
func (F *Frame) Chains() []string { return F.chains }

//HasChain returns true if the frame contains the given chain.
func (F *Frame) HasChain(chain string) bool {
	for _, c := range F.chains {
		if c == chain {
			return true
		}
	}
	return false
}

//Trajectory is an ordered sequence of frames representing one
//simulation or evolution run. Frame indexes are contiguous and match
//load order. The current index is always in range while the
//trajectory is not empty.
type Trajectory struct {
	frames  []*Frame
	skip    int //stride used at load time
	current int
}

//NewTrajectory builds a Trajectory from frames loaded with the given
//stride. It fails if the frame indexes are not contiguous from 0 in
//the order given. The current index starts at 0.
func NewTrajectory(frames []*Frame, skip int) (*Trajectory, error) {
	if skip < 1 {
		return nil, CError{InvalidSkip, "", []string{"NewTrajectory"}, true}
	}
	for i, f := range frames {
		if f.Index() != i {
			return nil, CError{fmt.Sprintf("Frame at position %d has index %d", i, f.Index()), "", []string{"NewTrajectory"}, true}
		}
	}
	return &Trajectory{frames: frames, skip: skip}, nil
}

//Len returns the number of frames in the trajectory.
func (T *Trajectory) Len() int { return len(T.frames) }

//LoadSkip returns the file stride used when the trajectory was loaded.
func (T *Trajectory) LoadSkip() int { return T.skip }

//Frame returns the ith frame. It panics if i is out of range, as that
//is always a programming error.
func (T *Trajectory) Frame(i int) *Frame { return T.frames[i] }

//Current returns the index of the frame currently on display.
func (T *Trajectory) Current() int { return T.current }

//SetCurrent sets the current frame index to i, clamped to the valid
//range, and returns the value actually set. On an empty trajectory it
//does nothing and returns 0. The index has a single-writer-at-a-time
//discipline: the playback loop and manual scrubbing funnel through the
//same scheduler, so writes never interleave and the last one wins.
func (T *Trajectory) SetCurrent(i int) int {
	if len(T.frames) == 0 {
		return 0
	}
	if i < 0 {
		i = 0
	}
	if i > len(T.frames)-1 {
		i = len(T.frames) - 1
	}
	T.current = i
	return i
}
