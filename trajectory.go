/*
 * trajectory.go, part of decorr.
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

const memFormat = "memory"

// Trajectory is an ordered, in-memory set of frames. It implements both
// FrameReader and FrameWriter.
type Trajectory struct {
	Frames   []*Frame
	name     string
	current  int
	readable bool
	closed   bool
}

// NewTrajectory returns a trajectory called name containing the given frames,
// ready to be read from the first one or written after the last one.
func NewTrajectory(name string, frames ...*Frame) *Trajectory {
	T := new(Trajectory)
	T.name = name
	T.Frames = frames
	T.readable = true
	return T
}

// Name returns the name given to the trajectory.
func (T *Trajectory) Name() string {
	return T.name
}

// LenFrames returns the number of frames in the trajectory
func (T *Trajectory) LenFrames() int {
	return len(T.Frames)
}

/******************************************
//The following implement the FrameReader interface
**********************************************/

// Readable returns true if there are frames left to read.
func (T *Trajectory) Readable() bool {
	return T != nil && T.readable && T.current < len(T.Frames)
}

// Next copies the next frame into output. If output is nil, the frame is skipped.
func (T *Trajectory) Next(output *Frame) error {
	if T == nil || !T.readable {
		return NewTrajError(TrajUnIniRead, "", memFormat, "Next")
	}
	if T.current >= len(T.Frames) {
		return NewLastFrameError(T.name, memFormat, "Next")
	}
	T.current++
	if output == nil {
		return nil
	}
	T.Frames[T.current-1].CopyTo(output)
	return nil
}

// Len returns the number of atoms per frame, or -1 if the frames don't all have the same.
func (T *Trajectory) Len() int {
	if len(T.Frames) == 0 {
		return 0
	}
	n := T.Frames[0].Len()
	for _, v := range T.Frames[1:] {
		if v.Len() != n {
			return -1
		}
	}
	return n
}

// Rewind sets the trajectory to be read again from the first frame.
func (T *Trajectory) Rewind() {
	T.current = 0
	T.readable = true
}

/**End FrameReader interface implementation***********/

// WNext appends a copy of f to the trajectory.
func (T *Trajectory) WNext(f *Frame) error {
	if T == nil || T.closed {
		return NewTrajError(TrajUnIniWrite, "", memFormat, "WNext")
	}
	if err := f.Corrupted(); err != nil {
		return errDecorate(err, "WNext")
	}
	T.Frames = append(T.Frames, f.Clone())
	return nil
}

// Close marks the trajectory as not writable anymore. It can still be read.
func (T *Trajectory) Close() {
	if T == nil {
		return
	}
	T.closed = true
}

// Energies returns the energy series of the trajectory, one value per frame, in order.
// It returns an error if the frames don't all use the same energy unit.
func (T *Trajectory) Energies() ([]float64, error) {
	ret := make([]float64, len(T.Frames))
	for i, v := range T.Frames {
		if v.Unit != T.Frames[0].Unit {
			return nil, NewTrajError(fmt.Sprintf("%s: frame %d in %s, frame 0 in %s", MixedUnits, i, v.Unit, T.Frames[0].Unit), T.name, memFormat, "Energies")
		}
		ret[i] = v.Energy
	}
	return ret, nil
}

// ToEV converts all the frames in the trajectory to eV (see Frame.ToEV)
func (T *Trajectory) ToEV() {
	for _, v := range T.Frames {
		v.ToEV()
	}
}

// ReadAll reads every frame left in r and returns them as a Trajectory named name.
// A reader with no frames left gives an empty trajectory. Readers that can't be
// read at all are expected to return an error from Next.
func ReadAll(r FrameReader, name string) (*Trajectory, error) {
	if r == nil {
		return nil, NewTrajError(TrajUnIniRead, name, "", "ReadAll")
	}
	T := NewTrajectory(name)
	for {
		f := new(Frame)
		err := r.Next(f)
		if err != nil {
			if IsLastFrame(err) {
				break
			}
			return nil, errDecorate(err, "ReadAll")
		}
		T.Frames = append(T.Frames, f)
	}
	return T, nil
}

// EveryNth reads r to the end and writes every stride-th frame to w, starting with
// the first one. It returns the number of frames written. A stride smaller than 1
// is treated as 1.
func EveryNth(r FrameReader, w FrameWriter, stride int) (int, error) {
	if stride < 1 {
		stride = 1
	}
	buf := new(Frame)
	written := 0
	for i := 0; ; i++ {
		var err error
		if i%stride == 0 {
			err = r.Next(buf)
		} else {
			err = r.Next(nil)
		}
		if err != nil {
			if IsLastFrame(err) {
				break
			}
			return written, errDecorate(err, "EveryNth")
		}
		if i%stride != 0 {
			continue
		}
		if err := w.WNext(buf); err != nil {
			return written, errDecorate(err, "EveryNth")
		}
		written++
	}
	return written, nil
}
