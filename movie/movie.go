/*
 * movie.go, part of chemovie.
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

//Package movie records trajectory playback to a video file. Captured
//frames are spooled, compressed, to disk as they come, and encoded in
//one pass when recording stops, so a recording stopped early (or one
//whose capture loop was interrupted) still yields a valid video of
//whatever was captured.
package movie

import (
	"fmt"

	"github.com/google/uuid"
)

//Mode selects how frames get captured.
type Mode int

const (
	//Trajectory visits every retained frame once, at the recording
	//stride, and encodes at the requested rate.
	Trajectory Mode = iota
	//FixedDuration visits the frames like Trajectory but encodes at
	//whatever rate fits them all in the requested wall-clock duration.
	FixedDuration
	//Interactive captures whatever playback displays, as it happens.
	Interactive
)

func (m Mode) String() string {
	switch m {
	case Trajectory:
		return "trajectory"
	case FixedDuration:
		return "fixed-duration"
	case Interactive:
		return "interactive"
	}
	return "unknown"
}

//Duration limits for fixed-duration recordings, in seconds.
const (
	MinDuration = 1
	MaxDuration = 300
)

//Encoding rate limits, in frames per second.
const (
	MinFPS = 1
	MaxFPS = 30
)

//Options contains the recording options.
type Options struct {
	mode     Mode
	fps      int
	duration int
	skip     int
	width    int
	height   int
	out      string
}

//DefaultOptions returns the default recording options: trajectory
//mode, 10 fps, 15 s (if fixed-duration), every frame, 640x480, output
//to movie.mp4 in the working directory.
func DefaultOptions() *Options {
	O := new(Options)
	O.mode = Trajectory
	O.fps = 10
	O.duration = 15
	O.skip = 1
	O.width = 640
	O.height = 480
	O.out = "movie.mp4"
	return O
}

//Mode returns the recording mode, and sets it to a new value, if
//given.
func (O *Options) Mode(m ...Mode) Mode {
	if len(m) > 0 {
		O.mode = m[0]
	}
	return O.mode
}

//FPS returns the encoding rate in frames per second, and sets it to a
//new value, if given. It is not used in fixed-duration mode, where
//the rate is computed from the captured frames. Out-of-range values
//are caught by Validate, not here.
func (O *Options) FPS(n ...int) int {
	if len(n) > 0 {
		O.fps = n[0]
	}
	return O.fps
}

//Duration returns the fixed-duration target in seconds, and sets it
//to a new value, if given.
func (O *Options) Duration(n ...int) int {
	if len(n) > 0 {
		O.duration = n[0]
	}
	return O.duration
}

//Skip returns the recording stride (every skip-th retained frame is
//captured), and sets it to a new value, if given.
func (O *Options) Skip(n ...int) int {
	if len(n) > 0 {
		O.skip = n[0]
	}
	return O.skip
}

//Size returns the frame size in pixels, and sets it, if given.
func (O *Options) Size(wh ...int) (int, int) {
	if len(wh) >= 2 {
		O.width = wh[0]
		O.height = wh[1]
	}
	return O.width, O.height
}

//Output returns the path of the video to produce, and sets it to a
//new value, if given.
func (O *Options) Output(path ...string) string {
	if len(path) > 0 {
		O.out = path[0]
	}
	return O.out
}

//Validate returns an error if the options are out of range. It is
//called before any capture side effect takes place.
func (O *Options) Validate() error {
	if O.mode < Trajectory || O.mode > Interactive {
		return Error{fmt.Sprintf("%s: %d", BadMode, O.mode), "", []string{"Validate"}, true}
	}
	if O.fps < MinFPS || O.fps > MaxFPS {
		return Error{fmt.Sprintf("%s: %d", BadFPS, O.fps), "", []string{"Validate"}, true}
	}
	if O.mode == FixedDuration && (O.duration < MinDuration || O.duration > MaxDuration) {
		return Error{fmt.Sprintf("%s: %d", BadDuration, O.duration), "", []string{"Validate"}, true}
	}
	if O.skip < 1 {
		return Error{fmt.Sprintf("%s: %d", BadSkip, O.skip), "", []string{"Validate"}, true}
	}
	if O.width <= 0 || O.height <= 0 {
		return Error{fmt.Sprintf("%s: %dx%d", BadSize, O.width, O.height), "", []string{"Validate"}, true}
	}
	if O.out == "" {
		return Error{NoOutput, "", []string{"Validate"}, true}
	}
	return nil
}

//Session describes one recording, from start to finalization. A
//Session is finalized exactly once, by Stop or Abort; after that it
//only reports what happened.
type Session struct {
	id        string
	mode      Mode
	out       string
	captured  int
	rate      float64
	finalized bool
	aborted   bool
}

func newSession(mode Mode, out string) *Session {
	return &Session{id: uuid.NewString(), mode: mode, out: out}
}

//ID returns the unique identifier of the session.
func (S *Session) ID() string { return S.id }

//Mode returns the recording mode of the session.
func (S *Session) Mode() Mode { return S.mode }

//Output returns the path of the produced video. It is empty if the
//session was aborted.
func (S *Session) Output() string {
	if S.aborted {
		return ""
	}
	return S.out
}

//Captured returns how many frames were captured.
func (S *Session) Captured() int { return S.captured }

//Rate returns the encoding rate of the produced video, in frames per
//second. For fixed-duration recordings it is the captured frame count
//divided by the target duration, fractional and never below 1 fps.
func (S *Session) Rate() float64 { return S.rate }

//Finalized returns whether the session has ended.
func (S *Session) Finalized() bool { return S.finalized }

//Aborted returns whether the session was discarded without output.
func (S *Session) Aborted() bool { return S.aborted }
