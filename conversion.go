/*
 * conversion.go, part of decorr.
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

//This provides useful conversion factors and other constants

//Conversions (CODATA 2018)
const (
	Ry2EV      = 13.605693122994
	EV2Ry      = 1 / 13.605693122994
	H2EV       = 27.211386245988
	A2Bohr     = 1.889726124565
	Bohr2A     = 1 / 1.889726124565
	RyBohr2EVA = Ry2EV * A2Bohr //Ry/Bohr to eV/A, for forces
)

// EnergyUnit is the unit in which the energy (and, accordingly, the forces) of a frame is given.
type EnergyUnit int

const (
	EV      EnergyUnit = iota //eV, forces in eV/A
	Rydberg                   //Ry, forces in Ry/Bohr
)

func (u EnergyUnit) String() string {
	switch u {
	case EV:
		return "eV"
	case Rydberg:
		return "Ry"
	default:
		return "unknown"
	}
}
