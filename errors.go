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

package chemovie

import "fmt"

//Error is the interface for errors that all packages in this library
//implement. The Decorate method allows to add and retrieve info from
//the error, without changing its type or wrapping it around something
//else. The decoration slice should contain a list of the functions in
//the calling stack, plus, for each function, any relevant information.
type Error interface {
	error
	Decorate(string) []string
}

//CriticalError distinguishes errors after which the affected operation
//cannot continue from recoverable conditions, which the caller may log
//and proceed past.
type CriticalError interface {
	Error
	Critical() bool
}

//Messages for the error conditions of this package. Subpackages define
//their own on the same pattern.
const (
	NoFilesFound          = "No structure files found"
	UnreadablePath        = "Unable to read the given path"
	NotEnoughForAlignment = "Less than 2 frames loaded, alignment will not be possible"
	InvalidSkip           = "The load skip must be a positive integer"
	NilRenderer           = "Given a nil renderer"
)

//CError is the concrete error type of the chemovie package. The file
//field carries the path associated to the failure, if any.
type CError struct {
	message  string
	file     string
	deco     []string
	critical bool
}

func (err CError) Error() string {
	if err.file == "" {
		return err.message
	}
	return fmt.Sprintf("%s: %s", err.file, err.message)
}

//Decorate adds new information to the error, and returns the
//decoration slice.
func (err CError) Decorate(deco string) []string {
	//Even though this method does not use a pointer receiver, it
	//works, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the error was associated, if any.
func (err CError) FileName() string { return err.file }

//Critical returns true if the error is critical, false otherwise.
func (err CError) Critical() bool { return err.critical }

//errDecorate asserts that err implements Error and decorates it with
//the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return CError{err.Error(), "", []string{caller}, true}
	}
	err2.Decorate(caller)
	return err2
}
