/*
 * basis.go, part of goERI.
 *
 * Copyright 2024 Raul Mera rauldotmeraatusachdotcl
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

package eri

import (
	"fmt"
	"math"
)

// envStart is the number of leading scratch slots in the environment
// array, kept for compatibility with libcint-style integral engines.
const envStart = 20

// Atom is one row of the atom table: a nuclear charge and a pointer to
// the x coordinate in the environment array (y and z follow).
type Atom struct {
	Z        int
	PtrCoord int
}

// Shell is one row of the shell table. PtrExp points to NPrim exponents
// in the environment array; PtrCoef points to NCtr contiguous columns of
// NPrim normalized contraction coefficients each.
type Shell struct {
	Atom    int
	L       int
	NPrim   int
	NCtr    int
	PtrExp  int
	PtrCoef int
}

// AORange is the contiguous block of AO basis functions belonging to one
// shell.
type AORange struct {
	Offset, Count int
}

// Basis is an immutable description of atoms, shells and contraction
// data. All floating parameters live in a single flat environment array,
// and a per-shell lookup table maps shell indices to AO function ranges.
// Nothing in this library mutates a Basis after construction.
type Basis struct {
	atoms  []Atom
	shells []Shell
	env    []float64
	aoloc  []AORange
	nao    int
}

// ShellSpec describes one shell of an atom for basis construction. Coefs
// holds one slice of len(Exps) contraction coefficients per contracted
// function; the coefficients are given for unnormalized primitives.
type ShellSpec struct {
	L     int
	Exps  []float64
	Coefs [][]float64
}

// AtomSpec describes one atom and its shells for basis construction.
// Coordinates are in Bohr.
type AtomSpec struct {
	Z      int
	Coords [3]float64
	Shells []ShellSpec
}

// NewBasis builds a Basis from per-atom shell specifications, flattening
// coordinates, exponents and contraction coefficients into the
// environment array. Contraction coefficients are scaled by the
// primitive normalization constants on the way in.
func NewBasis(atoms []AtomSpec) (*Basis, error) {
	if len(atoms) == 0 {
		return nil, CError{"NewBasis: no atoms given", []string{"NewBasis"}}
	}
	B := new(Basis)
	B.env = make([]float64, envStart)
	for _, a := range atoms {
		B.atoms = append(B.atoms, Atom{Z: a.Z, PtrCoord: len(B.env)})
		B.env = append(B.env, a.Coords[0], a.Coords[1], a.Coords[2])
	}
	for ia, a := range atoms {
		for is, s := range a.Shells {
			np := len(s.Exps)
			if s.L < 0 || np == 0 || len(s.Coefs) == 0 {
				return nil, CError{fmt.Sprintf("NewBasis: malformed shell %d of atom %d", is, ia), []string{"NewBasis"}}
			}
			sh := Shell{Atom: ia, L: s.L, NPrim: np, NCtr: len(s.Coefs), PtrExp: len(B.env)}
			B.env = append(B.env, s.Exps...)
			sh.PtrCoef = len(B.env)
			for _, col := range s.Coefs {
				if len(col) != np {
					return nil, CError{fmt.Sprintf("NewBasis: shell %d of atom %d: %d coefficients for %d primitives", is, ia, len(col), np), []string{"NewBasis"}}
				}
				for p, c := range col {
					B.env = append(B.env, c*GTONorm(s.L, s.Exps[p]))
				}
			}
			B.shells = append(B.shells, sh)
		}
	}
	B.aoloc = make([]AORange, len(B.shells))
	off := 0
	for i, sh := range B.shells {
		d := (2*sh.L + 1) * sh.NCtr //spherical functions
		B.aoloc[i] = AORange{Offset: off, Count: d}
		off += d
	}
	B.nao = off
	return B, nil
}

// GTONorm returns the normalization constant of a primitive Cartesian
// Gaussian with angular momentum l and exponent alpha, so that the
// normalized primitive has unit self-overlap.
func GTONorm(l int, alpha float64) float64 {
	df := 1.0 //(2l-1)!!
	for n := 2*l - 1; n > 1; n -= 2 {
		df *= float64(n)
	}
	return math.Sqrt(math.Pow(2*alpha/math.Pi, 1.5) * math.Pow(4*alpha, float64(l)) / df)
}

// NAtoms returns the number of atoms in the basis.
func (B *Basis) NAtoms() int { return len(B.atoms) }

// NShells returns the number of shells in the basis.
func (B *Basis) NShells() int { return len(B.shells) }

// NAO returns the total number of AO basis functions.
func (B *Basis) NAO() int { return B.nao }

// Atom returns the i-th row of the atom table.
func (B *Basis) Atom(i int) Atom { return B.atoms[i] }

// Shell returns the sh-th row of the shell table.
func (B *Basis) Shell(sh int) Shell { return B.shells[sh] }

// AORange returns the AO function range of shell sh. This is the
// shell-to-function mapping used by the drivers for all offset
// arithmetic.
func (B *Basis) AORange(sh int) AORange { return B.aoloc[sh] }

// Env returns the flat environment array. The returned slice is the
// backing storage; treat it as read-only.
func (B *Basis) Env() []float64 { return B.env }

// Coords returns the coordinates of atom i.
func (B *Basis) Coords(i int) [3]float64 {
	p := B.atoms[i].PtrCoord
	return [3]float64{B.env[p], B.env[p+1], B.env[p+2]}
}

// ShellCoords returns the coordinates of the atom carrying shell sh.
func (B *Basis) ShellCoords(sh int) [3]float64 {
	return B.Coords(B.shells[sh].Atom)
}

// Exps returns the primitive exponents of shell sh, as a read-only view.
func (B *Basis) Exps(sh int) []float64 {
	s := B.shells[sh]
	return B.env[s.PtrExp : s.PtrExp+s.NPrim]
}

// Coefs returns the normalized contraction coefficients of the c-th
// contracted function of shell sh, as a read-only view.
func (B *Basis) Coefs(sh, c int) []float64 {
	s := B.shells[sh]
	start := s.PtrCoef + c*s.NPrim
	return B.env[start : start+s.NPrim]
}

// maxShellDim returns the largest AO count of any shell.
func (B *Basis) maxShellDim() int {
	m := 0
	for _, r := range B.aoloc {
		if r.Count > m {
			m = r.Count
		}
	}
	return m
}
