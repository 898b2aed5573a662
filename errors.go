/*
 * errors.go, part of decorr.
 *
 * Copyright 2026 The decorr Authors
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

package decorr

import "fmt"

//Messages for TrajError
const (
	TrajUnIniRead  = "Traj object uninitialized to read"
	TrajUnIniWrite = "Traj object uninitialized to write"
	NilFrame       = "Given nil frame"
	MixedUnits     = "Frames with different energy units"
	EOF            = "EOF"
)

// TrajErr is the general structure for trajectory errors. It fullfills Error and TrajError
type TrajErr struct {
	message  string
	filename string //the trajectory that has problems, or empty string if none.
	format   string
	deco     []string
	critical bool
}

// NewTrajError returns a critical TrajError for the given trajectory name and format,
// decorated with caller.
func NewTrajError(message, filename, format, caller string) *TrajErr {
	return &TrajErr{message: message, filename: filename, format: format, deco: []string{caller}, critical: true}
}

func (err *TrajErr) Error() string {
	return fmt.Sprintf("%s trajectory %s error: %s", err.format, err.filename, err.message)
}

// Decorate Adds new information to the error
func (err *TrajErr) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the trajectory to which the failing operation was associated
func (err *TrajErr) FileName() string { return err.filename }

// Format returns the format of the trajectory associated to the error
func (err *TrajErr) Format() string { return err.format }

// Critical returns true if the error is critical, false otherwise
func (err *TrajErr) Critical() bool { return err.critical }

// lastFrameError implements LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
	format   string
}

// NewLastFrameError returns the harmless error a FrameReader gives when there are
// no more frames to read.
func NewLastFrameError(filename, format, caller string) LastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.format = format
	e.deco = []string{caller}
	return e
}

// NormalLastFrameTermination does nothing
func (E *lastFrameError) NormalLastFrameTermination() {}

func (E *lastFrameError) FileName() string { return E.fileName }

func (E *lastFrameError) Error() string { return EOF }

func (E *lastFrameError) Critical() bool { return false }

func (E *lastFrameError) Format() string { return E.format }

func (E *lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// IsLastFrame returns true if err marks the normal end of a trajectory.
func IsLastFrame(err error) bool {
	_, ok := err.(LastFrameError)
	return ok
}

// errDecorate decorates err with the caller's name if err implements Error.
// Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}
