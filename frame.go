/*
 * frame.go, part of decorr.
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

import (
	"fmt"

	v3 "github.com/rmera/decorr/v3"
	"gonum.org/v1/gonum/floats"
)

/**Note: Some functions here panic instead of returning errors, when the only way to get there
 * is a wrong program (nil frames, indexes out of range).**/

// Frame contains one state of a simulation: the atoms, their coordinates, and
// the quantities computed for that state. Coords, Forces and Cell are optional.
type Frame struct {
	Symbols []string
	Coords  *v3.Matrix
	Forces  *v3.Matrix //nil if the frame has no forces
	Cell    []float64  //the 3 cell vectors, row by row, or nil
	Energy  float64    //total energy
	Unit    EnergyUnit
	Info    map[string]string //anything else the source wants to keep
}

// NewFrame returns a frame with the given symbols, coordinates and energy (in eV).
// It returns an error if the number of symbols and coordinates don't match.
func NewFrame(symbols []string, coords *v3.Matrix, energy float64) (*Frame, error) {
	F := &Frame{Symbols: symbols, Coords: coords, Energy: energy, Unit: EV}
	if err := F.Corrupted(); err != nil {
		return nil, errDecorate(err, "NewFrame")
	}
	return F, nil
}

// Len returns the number of atoms in the frame.
func (F *Frame) Len() int {
	if F.Coords != nil {
		return F.Coords.NVecs()
	}
	return len(F.Symbols)
}

// HasForces returns true if the frame carries forces.
func (F *Frame) HasForces() bool {
	return F.Forces != nil
}

// Corrupted checks whether the frame is corrupted, i.e. the
// symbols, coordinates, forces and cell don't match each other.
func (F *Frame) Corrupted() error {
	if F == nil {
		return NewTrajError(NilFrame, "", "frame", "Corrupted")
	}
	n := F.Len()
	if F.Symbols != nil && len(F.Symbols) != n {
		return NewTrajError(fmt.Sprintf("Inconsistent symbols/coordinates: Symbols %d, coords: %d", len(F.Symbols), n), "", "frame", "Corrupted")
	}
	if F.Forces != nil && F.Forces.NVecs() != n {
		return NewTrajError(fmt.Sprintf("Inconsistent forces/atoms: Forces %d, atoms: %d", F.Forces.NVecs(), n), "", "frame", "Corrupted")
	}
	if F.Cell != nil && len(F.Cell) != 9 {
		return NewTrajError(fmt.Sprintf("Cell should have 9 elements, has %d", len(F.Cell)), "", "frame", "Corrupted")
	}
	return nil
}

// Clone returns a deep copy of the frame.
func (F *Frame) Clone() *Frame {
	ret := new(Frame)
	F.CopyTo(ret)
	return ret
}

// CopyTo copies the frame into dst, without sharing any memory with F.
func (F *Frame) CopyTo(dst *Frame) {
	if F == nil || dst == nil {
		panic("decorr: CopyTo with a nil frame")
	}
	dst.Energy = F.Energy
	dst.Unit = F.Unit
	dst.Coords = F.Coords.Clone()
	dst.Forces = F.Forces.Clone()
	dst.Symbols = nil
	if F.Symbols != nil {
		dst.Symbols = append(make([]string, 0, len(F.Symbols)), F.Symbols...)
	}
	dst.Cell = nil
	if F.Cell != nil {
		dst.Cell = append(make([]float64, 0, 9), F.Cell...)
	}
	dst.Info = nil
	if F.Info != nil {
		dst.Info = make(map[string]string, len(F.Info))
		for k, v := range F.Info {
			dst.Info[k] = v
		}
	}
}

// MaxForce returns the largest force acting on an atom of the frame, in the
// frame's units. It returns an error if the frame has no forces.
func (F *Frame) MaxForce() (float64, error) {
	if !F.HasForces() || F.Forces.NVecs() == 0 {
		return 0, NewTrajError("Frame has no forces", "", "frame", "MaxForce")
	}
	return floats.Max(F.Forces.Norms()), nil
}

// ToEV converts the energy, and the forces if present, of the frame
// to eV and eV/A. Frames already in eV are not changed.
func (F *Frame) ToEV() {
	if F.Unit == EV {
		return
	}
	F.Energy *= Ry2EV
	if F.Forces != nil {
		F.Forces.Scale(RyBohr2EVA, F.Forces)
	}
	F.Unit = EV
}
