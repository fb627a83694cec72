/*
 * encode.go, part of chemovie.
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
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	chem "github.com/rmera/chemovie"
)

//Encoder turns a stream of concatenated PNG frames into a video file.
//The rate is a float64: fixed-duration recordings spread the captured
//frames over the target duration, which rarely comes out whole. It is
//an interface so tests can record without ffmpeg installed.
type Encoder interface {
	Encode(frames io.Reader, fps float64, out string) error
}

//FFmpeg encodes with the ffmpeg program, found through a Locator and
//fed the frames through its standard input.
type FFmpeg struct {
	name    string
	locator chem.Locator
	timeout time.Duration
}

//NewFFmpeg returns an FFmpeg encoder with the default locator and a
//10 minute timeout.
func NewFFmpeg() *FFmpeg {
	return &FFmpeg{
		name:    "ffmpeg",
		locator: chem.NewPathLocator(),
		timeout: 10 * time.Minute,
	}
}

//Locator returns the locator used to find the program, and sets it to
//a new value, if given.
func (F *FFmpeg) Locator(l ...chem.Locator) chem.Locator {
	if len(l) > 0 && l[0] != nil {
		F.locator = l[0]
	}
	return F.locator
}

//Timeout returns the whole-encode timeout, and sets it to a new
//value, if given.
func (F *FFmpeg) Timeout(d ...time.Duration) time.Duration {
	if len(d) > 0 && d[0] > 0 {
		F.timeout = d[0]
	}
	return F.timeout
}

//Encode implements the Encoder interface. A failed or interrupted
//encode leaves no partial file behind.
func (F *FFmpeg) Encode(frames io.Reader, fps float64, out string) error {
	exe, err := F.locator.Locate(F.name)
	if err != nil {
		return Error{EncoderNotFound + ": " + F.name, "", []string{"Encode"}, true}
	}
	ctx, cancel := context.WithTimeout(context.Background(), F.timeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, exe,
		"-y",
		"-f", "image2pipe",
		"-vcodec", "png",
		"-framerate", fmt.Sprintf("%.1f", fps),
		"-i", "-",
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		out)
	cmd.Stdin = frames
	cmdout, err := cmd.CombinedOutput()
	if err != nil {
		os.Remove(out)
		return Error{fmt.Sprintf("%s: %v: %s", EncodeFailed, err, strings.TrimSpace(string(cmdout))), out, []string{"Encode"}, true}
	}
	return nil
}
