/*
 * doc.go, part of decorr.
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

/*
Package decorr is the main package of the decorr library. It provides the frame
and trajectory structures used to subsample molecular dynamics trajectories into
statistically independent frames.

	**decorr Capabilities**

	Frames with total energy, and optionally coordinates, forces and cell,
	in eV or Rydberg units, with conversion to eV and eV/A.

	In-memory trajectories, and FrameReader/FrameWriter interfaces so any
	trajectory format can be plugged in by the user.

	Energy autocorrelation functions, both FFT-based and direct, and the
	decorrelation lag (tao) for a given threshold (package chemstat).

	Subsampling of a trajectory every tao frames, either in memory
	or streaming from a FrameReader to a FrameWriter.

	Plot styling and a log-log plot of the autocorrelation function, so a
	threshold can be chosen by eye (package chemplot).

	A configurable driver for the whole process, with logging (package subsample).

The autocorrelation function is normalized, for each lag k, by the sum of the
squared deviations over the same N-k points used for the numerator, so it
equals 1 at lag 0.
*/
package decorr
