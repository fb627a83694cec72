/*
 * play.go, part of chemovie.
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

//Package play drives the frame-accurate playback of a trajectory: a
//timer-driven state machine that advances the current frame index at
//a configurable rate, with skip, loop and scrubbing semantics. The
//timer is an injectable Clock, so playback is deterministically
//testable with a simulated one (SimClock).
package play

import (
	"fmt"
	"time"

	chem "github.com/rmera/chemovie"
)

//State is the playback state.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}
	return "unknown"
}

//Playback rate limits, in frames per second.
const (
	MinFPS = 1
	MaxFPS = 30
)

//Ticker delivers periodic ticks. time.Ticker, behind realClock,
//implements it in production.
type Ticker interface {
	C() <-chan time.Time
	Reset(d time.Duration)
	Stop()
}

//Clock makes tickers. It exists so tests can inject simulated time.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

type realTicker struct{ *time.Ticker }

func (t realTicker) C() <-chan time.Time { return t.Ticker.C }

type realClock struct{}

func (realClock) NewTicker(d time.Duration) Ticker {
	return realTicker{time.NewTicker(d)}
}

//Options contains the playback options.
type Options struct {
	fps   int
	skip  int
	loop  bool
	clock Clock
}

//DefaultOptions returns the default playback options: 10 fps, every
//frame shown, no looping, real time.
func DefaultOptions() *Options {
	O := new(Options)
	O.fps = 10
	O.skip = 1
	O.clock = realClock{}
	return O
}

//FPS returns the playback rate in frames per second, and sets it to a
//new value, if given. Out-of-range values are caught by Validate, not
//here.
func (O *Options) FPS(n ...int) int {
	if len(n) > 0 {
		O.fps = n[0]
	}
	return O.fps
}

//Skip returns the playback stride (frames advanced per tick), and
//sets it to a new value, if given.
func (O *Options) Skip(n ...int) int {
	if len(n) > 0 {
		O.skip = n[0]
	}
	return O.skip
}

//Loop returns whether playback wraps around at the last frame, and
//sets it, if given.
func (O *Options) Loop(b ...bool) bool {
	if len(b) > 0 {
		O.loop = b[0]
	}
	return O.loop
}

//Clock returns the clock driving the playback timer, and sets it to a
//new value, if given.
func (O *Options) Clock(c ...Clock) Clock {
	if len(c) > 0 && c[0] != nil {
		O.clock = c[0]
	}
	return O.clock
}

//Validate returns an error if the options are out of range.
func (O *Options) Validate() error {
	if O.fps < MinFPS || O.fps > MaxFPS {
		return Error{fmt.Sprintf("%s: %d", BadFPS, O.fps), []string{"Validate"}, true}
	}
	if O.skip < 1 {
		return Error{fmt.Sprintf("%s: %d", BadSkip, O.skip), []string{"Validate"}, true}
	}
	return nil
}

//Player advances the current frame index of a trajectory on a timer.
//All state lives in a single goroutine: every command, the periodic
//tick included, is serialized through it, so a manual scrub and an
//automatic advance can never interleave; whichever arrives last wins.
//Commands block until the loop has applied them.
type Player struct {
	traj *chem.Trajectory
	opts Options
	sink func(int)

	//loop-owned state
	state  State
	ticker Ticker

	cmds chan func()
	quit chan struct{}
}

//New returns a Player for the given trajectory. sink, which may be
//nil, is called with the index of every newly displayed frame, from
//the playback goroutine; it must not call back into the Player. The
//Player is returned running (in the Stopped state); call Close when
//done with it.
func New(t *chem.Trajectory, o *Options, sink func(int)) (*Player, error) {
	if t == nil {
		return nil, Error{NilTrajectory, []string{"New"}, true}
	}
	if o == nil {
		o = DefaultOptions()
	}
	if err := o.Validate(); err != nil {
		return nil, errDecorate(err, "New")
	}
	if sink == nil {
		sink = func(int) {}
	}
	P := &Player{
		traj:  t,
		opts:  *o,
		sink:  sink,
		state: Stopped,
		cmds:  make(chan func()),
		quit:  make(chan struct{}),
	}
	go P.loop()
	return P, nil
}

func (P *Player) loop() {
	var tick <-chan time.Time
	for {
		//the ticker channel is re-read each turn: commands can
		//start, retune or stop it
		if P.ticker != nil && P.state == Playing {
			tick = P.ticker.C()
		} else {
			tick = nil
		}
		select {
		case f := <-P.cmds:
			f()
		case <-tick:
			P.advance()
		case <-P.quit:
			if P.ticker != nil {
				P.ticker.Stop()
			}
			return
		}
	}
}

//do runs f in the playback goroutine and waits for it.
func (P *Player) do(f func()) error {
	done := make(chan struct{})
	select {
	case P.cmds <- func() { f(); close(done) }:
		<-done
		return nil
	case <-P.quit:
		return Error{Closed, []string{"do"}, true}
	}
}

func (P *Player) interval() time.Duration {
	return time.Second / time.Duration(P.opts.fps)
}

//advance is the tick behavior: move forward by the playback stride,
//wrapping to 0 when looping, or clamping at the last frame and
//stopping when not.
func (P *Player) advance() {
	if P.state != Playing || P.traj.Len() == 0 {
		return
	}
	last := P.traj.Len() - 1
	next := P.traj.Current() + P.opts.skip
	switch {
	case next <= last:
		P.sink(P.traj.SetCurrent(next))
	case P.opts.loop:
		P.sink(P.traj.SetCurrent(0))
	default:
		if P.traj.Current() != last {
			P.sink(P.traj.SetCurrent(last))
		}
		P.stop()
	}
}

func (P *Player) stop() {
	P.state = Stopped
	if P.ticker != nil {
		P.ticker.Stop()
		P.ticker = nil
	}
}

//Play starts (or resumes) playback from the current frame. It fails
//on an empty trajectory and does nothing if already playing.
func (P *Player) Play() error {
	if P.traj.Len() == 0 {
		return Error{EmptyTrajectory, []string{"Play"}, true}
	}
	return P.do(func() {
		if P.state == Playing {
			return
		}
		P.state = Playing
		P.ticker = P.opts.clock.NewTicker(P.interval())
	})
}

//Pause suspends playback, keeping the current frame. It does nothing
//unless playing.
func (P *Player) Pause() error {
	return P.do(func() {
		if P.state != Playing {
			return
		}
		P.state = Paused
		if P.ticker != nil {
			P.ticker.Stop()
			P.ticker = nil
		}
	})
}

//Stop halts playback. The current frame index is left where it was.
func (P *Player) Stop() error {
	return P.do(P.stop)
}

//State returns the playback state.
func (P *Player) State() State {
	s := Stopped
	P.do(func() { s = P.state })
	return s
}

//Current returns the index of the frame on display.
func (P *Player) Current() int {
	i := 0
	P.do(func() { i = P.traj.Current() })
	return i
}

//Scrub sets the current frame index to i, clamped to range, without
//changing the playback state: scrubbing while playing just overrides
//the position and the next tick advances from there.
func (P *Player) Scrub(i int) error {
	return P.do(func() {
		P.sink(P.traj.SetCurrent(i))
	})
}

//First shows the first frame.
func (P *Player) First() error { return P.Scrub(0) }

//Last shows the last frame.
func (P *Player) Last() error { return P.Scrub(P.traj.Len() - 1) }

//Next steps forward by the playback stride. At the end it wraps to
//the first frame when looping, and stays put when not.
func (P *Player) Next() error {
	return P.do(func() {
		if P.traj.Len() == 0 {
			return
		}
		next := P.traj.Current() + P.opts.skip
		if next <= P.traj.Len()-1 {
			P.sink(P.traj.SetCurrent(next))
		} else if P.opts.loop {
			P.sink(P.traj.SetCurrent(0))
		}
	})
}

//Prev steps backward by the playback stride. Before the beginning it
//wraps to the last frame when looping, and clamps to 0 when not.
func (P *Player) Prev() error {
	return P.do(func() {
		if P.traj.Len() == 0 {
			return
		}
		prev := P.traj.Current() - P.opts.skip
		if prev < 0 {
			if P.opts.loop {
				prev = P.traj.Len() - 1
			} else {
				prev = 0
			}
		}
		P.sink(P.traj.SetCurrent(prev))
	})
}

//SetFPS changes the playback rate, retuning the timer in place when
//playing. Out-of-range rates are rejected before anything changes.
func (P *Player) SetFPS(n int) error {
	if n < MinFPS || n > MaxFPS {
		return Error{fmt.Sprintf("%s: %d", BadFPS, n), []string{"SetFPS"}, true}
	}
	return P.do(func() {
		P.opts.fps = n
		if P.state == Playing && P.ticker != nil {
			P.ticker.Reset(P.interval())
		}
	})
}

//SetSkip changes the playback stride. Strides below 1 are rejected.
func (P *Player) SetSkip(n int) error {
	if n < 1 {
		return Error{fmt.Sprintf("%s: %d", BadSkip, n), []string{"SetSkip"}, true}
	}
	return P.do(func() { P.opts.skip = n })
}

//SetLoop changes the looping behavior.
func (P *Player) SetLoop(b bool) error {
	return P.do(func() { P.opts.loop = b })
}

//Sink returns the frame sink.
func (P *Player) Sink() func(int) {
	var s func(int)
	P.do(func() { s = P.sink })
	return s
}

//SetSink replaces the frame sink. Recording wraps the sink to capture
//every displayed frame, and restores it afterwards.
func (P *Player) SetSink(sink func(int)) error {
	if sink == nil {
		sink = func(int) {}
	}
	return P.do(func() { P.sink = sink })
}

//Close terminates the playback goroutine. The Player cannot be used
//afterwards.
func (P *Player) Close() {
	select {
	case <-P.quit:
	default:
		close(P.quit)
	}
}

//Errors

//Messages for the error conditions of this package.
const (
	BadFPS          = "Playback rate outside the 1-30 fps range"
	BadSkip         = "The playback skip must be a positive integer"
	Closed          = "The player has been closed"
	EmptyTrajectory = "The trajectory has no frames"
	NilTrajectory   = "Given a nil trajectory"
)

//Error is the error type of the play package. It fulfills
//chemovie.Error.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string { return err.message }

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

func errDecorate(err error, caller string) error {
	err2, ok := err.(chem.Error)
	if !ok {
		return Error{err.Error(), []string{caller}, true}
	}
	err2.Decorate(caller)
	return err2
}
