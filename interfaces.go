/*
 * interfaces.go, part of decorr.
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

//The file formats themselves live outside this library. Anything that can
//hand frames over in order, or take them, implements one of these and
//can be fed to the estimator.

// FrameReader is an interface for any source of trajectory frames,
// including an in-memory Trajectory.
type FrameReader interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//Next reads the next frame into output, or discards it if output is nil.
	//At the end of the trajectory it returns an error implementing LastFrameError.
	Next(output *Frame) error

	//Returns the number of atoms per frame, or -1 if it is not fixed.
	Len() int
}

// FrameWriter is an interface for any sink of trajectory frames.
type FrameWriter interface {

	//WNext writes the given frame after the ones already written.
	WNext(f *Frame) error

	Close()
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call returns the decoration slice after adding the given string. An empty string adds nothing.
	Critical() bool
}

// TrajError is the interface for errors in trajectories
type TrajError interface {
	Error
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless errors (i.e. last frame) so they can be
// filtered in a typeswitch that looks for this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's
}
