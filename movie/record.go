/*
 * record.go, part of chemovie.
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

package movie

import (
	"io"
	"log"
	"sync"

	chem "github.com/rmera/chemovie"
	"github.com/rmera/chemovie/play"
)

//Recorder captures frames from a renderer into a spool and, on Stop,
//encodes them into a video. One Recorder runs one Session; make a new
//Recorder for the next recording.
type Recorder struct {
	ren   chem.Renderer
	opts  Options
	enc   Encoder
	spool *Spool
	sess  *Session

	mu      sync.Mutex
	stopped bool
	detach  func()
}

//NewRecorder returns a Recorder capturing from ren. A nil enc means
//encoding with ffmpeg. Out-of-range options are rejected here, before
//any capture side effect.
func NewRecorder(ren chem.Renderer, o *Options, enc Encoder) (*Recorder, error) {
	if ren == nil {
		return nil, Error{chem.NilRenderer, "", []string{"NewRecorder"}, true}
	}
	if o == nil {
		o = DefaultOptions()
	}
	if err := o.Validate(); err != nil {
		return nil, errDecorate(err, "NewRecorder")
	}
	if enc == nil {
		enc = NewFFmpeg()
	}
	spool, err := NewSpool()
	if err != nil {
		return nil, errDecorate(err, "NewRecorder")
	}
	return &Recorder{
		ren:   ren,
		opts:  *o,
		enc:   enc,
		spool: spool,
		sess:  newSession(o.mode, o.out),
	}, nil
}

//Session returns the session of this recording.
func (R *Recorder) Session() *Session { return R.sess }

//RequestStop asks a running capture loop to wind down after the frame
//in flight. It is safe to call from any goroutine.
func (R *Recorder) RequestStop() {
	R.mu.Lock()
	R.stopped = true
	R.mu.Unlock()
}

func (R *Recorder) stopRequested() bool {
	R.mu.Lock()
	defer R.mu.Unlock()
	return R.stopped
}

//capture renders nothing; it snapshots whatever the renderer is
//displaying and spools it.
func (R *Recorder) capture() error {
	img, err := R.ren.Snapshot(R.opts.width, R.opts.height)
	if err != nil {
		return errDecorate(err, "capture")
	}
	if err := R.spool.Add(img); err != nil {
		return errDecorate(err, "capture")
	}
	return nil
}

//CaptureTrajectory shows and captures every frame of t, from the
//first, at the recording stride. It is the capture pass of the
//trajectory and fixed-duration modes. The stop flag is checked
//between frames, so a recording stopped early keeps the frames
//captured so far.
func (R *Recorder) CaptureTrajectory(t *chem.Trajectory) error {
	if R.opts.mode == Interactive {
		return Error{WrongMode + ": " + R.opts.mode.String(), "", []string{"CaptureTrajectory"}, true}
	}
	if t == nil || t.Len() == 0 {
		return Error{NothingToRecord, "", []string{"CaptureTrajectory"}, true}
	}
	if R.sess.finalized {
		return Error{AlreadyFinalized, "", []string{"CaptureTrajectory"}, true}
	}
	for i := 0; i < t.Len(); i += R.opts.skip {
		if R.stopRequested() {
			break
		}
		frame := t.Frame(i)
		if err := R.ren.ShowOnly(frame.Handle(), frame.Transform()); err != nil {
			return errDecorate(err, "CaptureTrajectory")
		}
		if err := R.capture(); err != nil {
			return err
		}
	}
	return nil
}

//Attach hooks the recorder to a player for interactive capture: the
//frame on display is captured immediately, and every frame playback
//shows from then on is captured after it is shown. Stop and Abort
//detach automatically. n ticks of playback yield n+1 frames.
func (R *Recorder) Attach(p *play.Player) error {
	if R.opts.mode != Interactive {
		return Error{WrongMode + ": " + R.opts.mode.String(), "", []string{"Attach"}, true}
	}
	if R.sess.finalized {
		return Error{AlreadyFinalized, "", []string{"Attach"}, true}
	}
	if err := R.capture(); err != nil {
		return err
	}
	old := p.Sink()
	err := p.SetSink(func(i int) {
		old(i)
		if R.stopRequested() {
			return
		}
		if err := R.capture(); err != nil {
			log.Printf("movie: dropped frame %d: %v", i, err)
		}
	})
	if err != nil {
		return errDecorate(err, "Attach")
	}
	R.mu.Lock()
	R.detach = func() { p.SetSink(old) }
	R.mu.Unlock()
	return nil
}

//Snapshot captures the frame on display, outside of playback. Only
//interactive sessions take explicit snapshots.
func (R *Recorder) Snapshot() error {
	if R.opts.mode != Interactive {
		return Error{WrongMode + ": " + R.opts.mode.String(), "", []string{"Snapshot"}, true}
	}
	if R.sess.finalized {
		return Error{AlreadyFinalized, "", []string{"Snapshot"}, true}
	}
	return R.capture()
}

//rate returns the encoding rate for the captured frames: the
//requested one, except in fixed-duration mode, where the captured
//frames are spread over the requested duration. The division is real,
//so a count not divisible by the duration still lands on the target;
//the rate never drops below 1 fps.
func (R *Recorder) rate(captured int) float64 {
	if R.opts.mode != FixedDuration {
		return float64(R.opts.fps)
	}
	r := float64(captured) / float64(R.opts.duration)
	if r < 1 {
		r = 1
	}
	return r
}

//Stop ends the recording: it detaches from playback if attached,
//encodes whatever was spooled and finalizes the session. A session
//with no captured frames produces no file and an error. Stop on an
//already finalized session just returns it.
func (R *Recorder) Stop() (*Session, error) {
	R.mu.Lock()
	if R.sess.finalized {
		R.mu.Unlock()
		return R.sess, nil
	}
	R.stopped = true
	detach := R.detach
	R.detach = nil
	R.mu.Unlock()
	if detach != nil {
		detach()
	}
	captured := R.spool.Len()
	if captured == 0 {
		R.spool.Discard()
		R.finalize(0, 0, true)
		return R.sess, Error{NothingCaptured, "", []string{"Stop"}, false}
	}
	rate := R.rate(captured)
	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(R.spool.Replay(pw))
	}()
	err := R.enc.Encode(pr, rate, R.opts.out)
	pr.Close()
	R.spool.Discard()
	if err != nil {
		R.finalize(captured, rate, true)
		return R.sess, errDecorate(err, "Stop")
	}
	R.finalize(captured, rate, false)
	return R.sess, nil
}

//Abort ends the recording discarding everything: no encode, no output
//file. It is idempotent.
func (R *Recorder) Abort() error {
	R.mu.Lock()
	if R.sess.finalized {
		R.mu.Unlock()
		return nil
	}
	R.stopped = true
	detach := R.detach
	R.detach = nil
	R.mu.Unlock()
	if detach != nil {
		detach()
	}
	err := R.spool.Discard()
	R.finalize(R.spool.Len(), 0, true)
	return err
}

func (R *Recorder) finalize(captured int, rate float64, aborted bool) {
	R.mu.Lock()
	R.sess.captured = captured
	R.sess.rate = rate
	R.sess.aborted = aborted
	R.sess.finalized = true
	R.mu.Unlock()
}
