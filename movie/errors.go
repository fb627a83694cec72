/*
 * errors.go, part of chemovie.
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
	"fmt"

	chem "github.com/rmera/chemovie"
)

//Messages for the error conditions of this package.
const (
	BadMode          = "Unknown recording mode"
	BadFPS           = "Encoding rate outside the 1-30 fps range"
	BadDuration      = "Recording duration outside the 1-300 s range"
	BadSkip          = "The recording skip must be a positive integer"
	BadSize          = "Frame dimensions must be positive"
	NoOutput         = "No output path given"
	WrongMode        = "Operation not available in this recording mode"
	NothingToRecord  = "Given an empty trajectory"
	NothingCaptured  = "No frames were captured, no video produced"
	AlreadyFinalized = "The recording session has already ended"
	SpoolClosed      = "The spool has been sealed, no more frames can be added"
	EncoderNotFound  = "Video encoder not found"
	EncodeFailed     = "Video encoding failed"
)

//Error is the error type of the movie package. It fulfills
//chemovie.Error and chemovie.CriticalError.
type Error struct {
	message  string
	file     string //the file associated to the problem, if any
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.file == "" {
		return err.message
	}
	return fmt.Sprintf("%s: %s", err.file, err.message)
}

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file associated to the error, if any.
func (err Error) FileName() string { return err.file }

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

func errDecorate(err error, caller string) error {
	err2, ok := err.(chem.Error)
	if !ok {
		return Error{err.Error(), "", []string{caller}, true}
	}
	err2.Decorate(caller)
	return err2
}
