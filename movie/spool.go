/*
 * spool.go, part of chemovie.
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
	"bytes"
	"encoding/binary"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

//Spool accumulates captured frames on disk as a zstd-compressed
//stream of length-prefixed PNG images. Long recordings at large frame
//sizes don't fit in memory; the spool keeps capture cheap and leaves
//all the encoding work for Replay time.
type Spool struct {
	f      *os.File
	w      *zstd.Encoder
	n      int
	closed bool
}

//NewSpool returns an empty spool backed by a temporary file.
func NewSpool() (*Spool, error) {
	f, err := os.CreateTemp("", "chemovie_spool_*.zst")
	if err != nil {
		return nil, Error{err.Error(), "", []string{"NewSpool"}, true}
	}
	w, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, Error{err.Error(), f.Name(), []string{"NewSpool"}, true}
	}
	return &Spool{f: f, w: w}, nil
}

//Add appends one frame to the spool.
func (S *Spool) Add(img image.Image) error {
	if S.closed {
		return Error{SpoolClosed, S.f.Name(), []string{"Add"}, true}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Error{err.Error(), S.f.Name(), []string{"Add"}, true}
	}
	if err := binary.Write(S.w, binary.LittleEndian, uint32(buf.Len())); err != nil {
		return Error{err.Error(), S.f.Name(), []string{"Add"}, true}
	}
	if _, err := S.w.Write(buf.Bytes()); err != nil {
		return Error{err.Error(), S.f.Name(), []string{"Add"}, true}
	}
	S.n++
	return nil
}

//Len returns the number of frames spooled so far.
func (S *Spool) Len() int { return S.n }

//Replay writes the spooled frames to dst as a plain concatenation of
//PNG images, the stream an image2pipe-style encoder consumes. The
//spool cannot take more frames afterwards.
func (S *Spool) Replay(dst io.Writer) error {
	if err := S.seal(); err != nil {
		return errDecorate(err, "Replay")
	}
	if _, err := S.f.Seek(0, io.SeekStart); err != nil {
		return Error{err.Error(), S.f.Name(), []string{"Replay"}, true}
	}
	r, err := zstd.NewReader(S.f)
	if err != nil {
		return Error{err.Error(), S.f.Name(), []string{"Replay"}, true}
	}
	defer r.Close()
	for i := 0; i < S.n; i++ {
		var size uint32
		if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
			return Error{err.Error(), S.f.Name(), []string{"Replay"}, true}
		}
		if _, err := io.CopyN(dst, r, int64(size)); err != nil {
			return Error{err.Error(), S.f.Name(), []string{"Replay"}, true}
		}
	}
	return nil
}

//seal flushes the compressor. Adding stops being possible.
func (S *Spool) seal() error {
	if S.closed {
		return nil
	}
	S.closed = true
	if err := S.w.Close(); err != nil {
		return Error{err.Error(), S.f.Name(), []string{"seal"}, true}
	}
	return nil
}

//Discard removes the spool and its backing file.
func (S *Spool) Discard() error {
	name := S.f.Name()
	S.seal()
	if err := S.f.Close(); err != nil {
		os.Remove(name)
		return Error{err.Error(), name, []string{"Discard"}, false}
	}
	if err := os.Remove(name); err != nil {
		return Error{err.Error(), name, []string{"Discard"}, false}
	}
	return nil
}
