/*
 * basis_test.go, part of goERI.
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
	"math"
	"testing"
)

// testSpecs returns a small 2-atom, 3-shell, 4-AO all-s basis used
// throughout the driver tests.
func testSpecs() []AtomSpec {
	return []AtomSpec{
		{
			Z:      1,
			Coords: [3]float64{0, 0, 0},
			Shells: []ShellSpec{
				{L: 0, Exps: []float64{3.42525091, 0.62391373, 0.16885540},
					Coefs: [][]float64{{0.15432897, 0.53532814, 0.44463454}}},
				{L: 0, Exps: []float64{0.8, 0.3},
					Coefs: [][]float64{{1.0, 0.2}, {0.5, 1.0}}},
			},
		},
		{
			Z:      2,
			Coords: [3]float64{0, 0, 1.4},
			Shells: []ShellSpec{
				{L: 0, Exps: []float64{6.36242139, 1.15892300, 0.31364979},
					Coefs: [][]float64{{0.15432897, 0.53532814, 0.44463454}}},
			},
		},
	}
}

func TestNewBasis(Te *testing.T) {
	b, err := NewBasis(testSpecs())
	if err != nil {
		Te.Fatal(err)
	}
	if b.NAtoms() != 2 || b.NShells() != 3 {
		Te.Errorf("got %d atoms, %d shells", b.NAtoms(), b.NShells())
	}
	if b.NAO() != 4 {
		Te.Errorf("got %d AOs, want 4", b.NAO())
	}
	//the shell->AO table must be contiguous and non-decreasing
	off := 0
	for sh := 0; sh < b.NShells(); sh++ {
		r := b.AORange(sh)
		if r.Offset != off || r.Count <= 0 {
			Te.Errorf("shell %d: range %+v, want offset %d", sh, r, off)
		}
		off += r.Count
	}
	if off != b.NAO() {
		Te.Errorf("ranges cover %d AOs, want %d", off, b.NAO())
	}
	c := b.Coords(1)
	if c[2] != 1.4 {
		Te.Errorf("atom 1 at z=%g", c[2])
	}
	//coefficients must come out scaled by the primitive normalization
	w := b.Coefs(0, 0)
	want := 0.15432897 * GTONorm(0, 3.42525091)
	if math.Abs(w[0]-want) > 1e-14 {
		Te.Errorf("normalized coefficient %g, want %g", w[0], want)
	}
}

func TestNewBasisErrors(Te *testing.T) {
	if _, err := NewBasis(nil); err == nil {
		Te.Error("empty atom list accepted")
	}
	bad := []AtomSpec{{Z: 1, Shells: []ShellSpec{
		{L: 0, Exps: []float64{1.0, 2.0}, Coefs: [][]float64{{1.0}}},
	}}}
	if _, err := NewBasis(bad); err == nil {
		Te.Error("mismatched coefficient count accepted")
	}
}

func TestGTONorm(Te *testing.T) {
	//for l=0 the constant reduces to (2a/pi)^(3/4)
	for _, a := range []float64{0.1, 1.0, 6.3} {
		want := math.Pow(2*a/math.Pi, 0.75)
		if got := GTONorm(0, a); math.Abs(got-want) > 1e-14 {
			Te.Errorf("GTONorm(0, %g) = %g, want %g", a, got, want)
		}
	}
}

func TestCoefficients(Te *testing.T) {
	if _, err := NewCoefficients(2, 2, []float64{1, 2, 3}); err == nil {
		Te.Error("short data accepted")
	}
	C, err := NewCoefficients(2, 3, []float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	if C.NAO() != 2 || C.NMO() != 3 {
		Te.Errorf("dims %d x %d", C.NAO(), C.NMO())
	}
	v := C.colSlice(IndexRange{1, 2})
	if v.Cols != 2 || v.Data[0] != 2 || v.Data[v.Stride] != 5 {
		Te.Errorf("column slice misaligned: %+v", v)
	}
	I := Identity(3)
	if I.At(1, 1) != 1 || I.At(0, 1) != 0 {
		Te.Error("identity is not the identity")
	}
}

func TestIndexRange(Te *testing.T) {
	if !(IndexRange{0, 0}).Within(0) {
		Te.Error("empty range rejected")
	}
	if (IndexRange{2, 3}).Within(4) {
		Te.Error("overflowing range accepted")
	}
	if (IndexRange{-1, 1}).Within(4) {
		Te.Error("negative start accepted")
	}
}

func TestTrilDecode(Te *testing.T) {
	for q := 0; q < 1000; q++ {
		a, b := trilDecode(q)
		if b < 0 || b > a || tril(a, b) != q {
			Te.Fatalf("trilDecode(%d) = (%d, %d)", q, a, b)
		}
	}
}
