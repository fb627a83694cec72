/*
 * main.go, part of chemovie.
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

//chemovie loads a directory of ordered structure snapshots, optionally
//aligns them, and plays or records the resulting trajectory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	chem "github.com/rmera/chemovie"
	"github.com/rmera/chemovie/align"
	"github.com/rmera/chemovie/chemplot"
	"github.com/rmera/chemovie/movie"
	"github.com/rmera/chemovie/play"
)

func main() {
	dir := flag.String("dir", ".", "directory with the snapshot files (*.pdb, *.cif)")
	lskip := flag.Int("skip", 1, "load every nth file")
	prealign := flag.String("prealign", "", "pre-align the files with this external tool (e.g. USalign) before loading")
	seqalign := flag.Bool("seqalign", false, "align each frame on its predecessor after loading")
	chain := flag.String("chain", "A", "chain to align on (A or B)")
	colormode := flag.String("color", "bybfactor", "coloring: bychain, bybfactor, rainbow or byelement")
	showB := flag.Bool("chainb", false, "also display chain B")
	ligand := flag.Bool("ligand", false, "display the ligand atoms")
	playback := flag.Bool("play", false, "play the trajectory through once")
	fps := flag.Int("fps", 10, "playback rate, 1-30 frames per second")
	pskip := flag.Int("pskip", 1, "playback stride")
	loop := flag.Bool("loop", false, "loop the playback (only meaningful with -record interactive)")
	record := flag.String("record", "", "record a video: trajectory, fixed or interactive")
	duration := flag.Int("duration", 15, "target video duration in seconds (fixed mode), 1-300")
	out := flag.String("out", "movie.mp4", "video output path")
	width := flag.Int("width", 640, "frame width in pixels")
	height := flag.Int("height", 480, "frame height in pixels")
	rmsdplot := flag.String("rmsd", "", "write a per-step RMSD plot with this name (implies -seqalign)")
	flag.Parse()

	ren := chemplot.NewRenderer()
	if err := ren.SetScheme(scheme(*colormode, *showB, *ligand)); err != nil {
		log.Fatal(err)
	}
	lopts := chem.DefaultLoadOptions()
	lopts.Skip(*lskip)
	lopts.ChainHint(*chain)
	if *prealign != "" {
		lopts.Prealigner(align.NewTool(*prealign))
	}
	traj, _, err := chem.LoadDir(ren, *dir, lopts)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Loaded %d frames from %s\n", traj.Len(), *dir)

	if *seqalign || *rmsdplot != "" {
		results, _, err := align.Sequential(traj, *chain, &align.CAMatcher{Source: ren})
		if err != nil {
			log.Fatal(err)
		}
		if *rmsdplot != "" {
			if err := chemplot.RMSDPlot(results, "Per-step RMSD", *rmsdplot); err != nil {
				log.Fatal(err)
			}
		}
	}
	show := func(i int) {
		f := traj.Frame(i)
		if err := ren.ShowOnly(f.Handle(), f.Transform()); err != nil {
			log.Printf("chemovie: could not show frame %d: %v", i, err)
		}
	}
	show(0)

	switch *record {
	case "":
		if *playback {
			playOnce(traj, show, *fps, *pskip)
		}
	case "trajectory", "fixed":
		mode := movie.Trajectory
		if *record == "fixed" {
			mode = movie.FixedDuration
		}
		sess := recordTrajectory(ren, traj, show, mode, *fps, *pskip, *duration, *width, *height, *out)
		report(sess)
	case "interactive":
		sess := recordInteractive(ren, traj, show, *fps, *pskip, *loop, *width, *height, *out)
		report(sess)
	default:
		log.Fatalf("unknown recording mode %q", *record)
	}
}

func scheme(colormode string, showB, ligand bool) *chem.DisplayScheme {
	s := chem.DefaultScheme()
	switch colormode {
	case "bychain":
		s.Color = chem.ColorByChain
	case "bybfactor":
		s.Color = chem.ColorByBFactor
	case "rainbow":
		s.Color = chem.ColorRainbow
	case "byelement":
		s.Color = chem.ColorByElement
	default:
		log.Fatalf("unknown color mode %q", colormode)
	}
	if showB {
		s.ChainB = chem.ChainStyle{Cartoon: true}
	}
	if ligand {
		s.Ligand = chem.LigandStyle{Ball: true}
	}
	return s
}

//playOnce plays the trajectory through. Looping is forced off, since
//a looping non-recording playback would never return.
func playOnce(traj *chem.Trajectory, show func(int), fps, pskip int) {
	p := newPlayer(traj, show, fps, pskip, false)
	defer p.Close()
	if err := p.Play(); err != nil {
		log.Fatal(err)
	}
	waitStopped(p)
}

func recordTrajectory(ren *chemplot.Renderer, traj *chem.Trajectory, show func(int), mode movie.Mode, fps, rskip, duration, width, height int, out string) *movie.Session {
	o := movie.DefaultOptions()
	o.Mode(mode)
	o.FPS(fps)
	o.Skip(rskip)
	o.Duration(duration)
	o.Size(width, height)
	o.Output(out)
	rec, err := movie.NewRecorder(ren, o, nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := rec.CaptureTrajectory(traj); err != nil {
		log.Print(err)
	}
	sess, err := rec.Stop()
	if err != nil {
		log.Print(err)
	}
	show(traj.Current()) //recording moved the display
	return sess
}

func recordInteractive(ren *chemplot.Renderer, traj *chem.Trajectory, show func(int), fps, pskip int, loop bool, width, height int, out string) *movie.Session {
	o := movie.DefaultOptions()
	o.Mode(movie.Interactive)
	o.FPS(fps)
	o.Size(width, height)
	o.Output(out)
	rec, err := movie.NewRecorder(ren, o, nil)
	if err != nil {
		log.Fatal(err)
	}
	//a looping playback never stops on its own; count the displayed
	//frames and cut after one full pass, however slow the renderer is
	sink := show
	var done <-chan struct{}
	if loop {
		sink, done = passSink(show, (traj.Len()+pskip-1)/pskip)
	}
	p := newPlayer(traj, sink, fps, pskip, loop)
	defer p.Close()
	if err := rec.Attach(p); err != nil {
		log.Fatal(err)
	}
	if err := p.Play(); err != nil {
		log.Fatal(err)
	}
	if loop {
		<-done
		p.Stop()
	} else {
		waitStopped(p)
	}
	sess, err := rec.Stop()
	if err != nil {
		log.Print(err)
	}
	return sess
}

//passSink wraps show so that done is closed once n frames have been
//shown. The wrapped sink runs on the playback goroutine, so the caller
//waits on done and stops the player itself.
func passSink(show func(int), n int) (func(int), <-chan struct{}) {
	done := make(chan struct{})
	count := 0
	return func(i int) {
		show(i)
		count++
		if count == n {
			close(done)
		}
	}, done
}

func newPlayer(traj *chem.Trajectory, show func(int), fps, pskip int, loop bool) *play.Player {
	o := play.DefaultOptions()
	o.FPS(fps)
	o.Skip(pskip)
	o.Loop(loop)
	p, err := play.New(traj, o, show)
	if err != nil {
		log.Fatal(err)
	}
	return p
}

func waitStopped(p *play.Player) {
	for p.State() != play.Stopped {
		time.Sleep(100 * time.Millisecond)
	}
}

func report(sess *movie.Session) {
	if sess == nil {
		return
	}
	if sess.Aborted() || sess.Output() == "" {
		fmt.Fprintf(os.Stderr, "Recording %s produced no video\n", sess.ID())
		return
	}
	fmt.Printf("Recording %s: %d frames at %.1f fps in %s\n", sess.ID(), sess.Captured(), sess.Rate(), sess.Output())
}
