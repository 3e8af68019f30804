/*
 * cgto_test.go, part of goERI.
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

package cgto

import (
	"math"
	"testing"

	"github.com/rmera/goeri"
)

func h2(Te *testing.T, r float64) (*eri.Basis, *Evaluator) {
	a, err := STO3GAtom(1, [3]float64{0, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	c, err := STO3GAtom(1, [3]float64{0, 0, r})
	if err != nil {
		Te.Fatal(err)
	}
	b, err := eri.NewBasis([]eri.AtomSpec{a, c})
	if err != nil {
		Te.Fatal(err)
	}
	ev, err := New(b)
	if err != nil {
		Te.Fatal(err)
	}
	return b, ev
}

// The STO-3G hydrogen self-repulsion integral is a textbook number.
func TestHydrogenSelfRepulsion(Te *testing.T) {
	a, err := STO3GAtom(1, [3]float64{0, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	b, err := eri.NewBasis([]eri.AtomSpec{a})
	if err != nil {
		Te.Fatal(err)
	}
	ev, err := New(b)
	if err != nil {
		Te.Fatal(err)
	}
	buf := make([]float64, 1)
	ev.Quartet(buf, 0, 0, 0, 0)
	if d := math.Abs(buf[0] - 0.7746); d > 2e-3 {
		Te.Errorf("(11|11) = %.6f, want about 0.7746", buf[0])
	}
}

func TestSelfOverlap(Te *testing.T) {
	_, ev := h2(Te, 1.4)
	buf := make([]float64, 1)
	ev.Overlap(buf, 0, 0)
	if d := math.Abs(buf[0] - 1); d > 1e-3 {
		Te.Errorf("self overlap %.6f, want 1", buf[0])
	}
}

// The H2 STO-3G bond overlap at R = 1.4 Bohr is another textbook number.
func TestBondOverlap(Te *testing.T) {
	_, ev := h2(Te, 1.4)
	S := ev.OverlapMatrix()
	if r, c := S.Dims(); r != 2 || c != 2 {
		Te.Fatalf("overlap matrix is %dx%d", r, c)
	}
	if d := math.Abs(S.At(0, 1) - 0.6593); d > 2e-3 {
		Te.Errorf("S12 = %.6f, want about 0.6593", S.At(0, 1))
	}
	if S.At(0, 1) != S.At(1, 0) {
		Te.Error("overlap matrix is not symmetric")
	}
}

func TestQuartetPermutationSymmetry(Te *testing.T) {
	_, ev := h2(Te, 1.4)
	buf := make([]float64, 1)
	val := func(i, j, k, l int) float64 {
		ev.Quartet(buf, i, j, k, l)
		return buf[0]
	}
	ref := val(0, 1, 0, 0)
	for _, p := range [][4]int{
		{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 0, 1}, {0, 0, 1, 0},
	} {
		if v := val(p[0], p[1], p[2], p[3]); math.Abs(v-ref) > 1e-12 {
			Te.Errorf("permutation %v: %g, want %g", p, v, ref)
		}
	}
}

// Far apart, two normalized s charge distributions repel like point
// charges: (AA|BB) -> 1/R.
func TestLongRangeLimit(Te *testing.T) {
	const R = 20.0
	_, ev := h2(Te, R)
	buf := make([]float64, 1)
	ev.Quartet(buf, 0, 0, 1, 1)
	if d := math.Abs(buf[0] - 1/R); d > 1e-4 {
		Te.Errorf("(AA|BB) at R=%g is %.8f, want about %.8f", R, buf[0], 1/R)
	}
}

func TestRepulsionDecay(Te *testing.T) {
	buf := make([]float64, 1)
	prev := math.Inf(1)
	for _, r := range []float64{1.0, 2.0, 4.0, 8.0} {
		_, ev := h2(Te, r)
		ev.Quartet(buf, 0, 0, 1, 1)
		if buf[0] <= 0 || buf[0] >= prev {
			Te.Errorf("(AA|BB) at R=%g is %g, not decaying", r, buf[0])
		}
		prev = buf[0]
	}
}

func TestNewRejectsNonS(Te *testing.T) {
	spec := []eri.AtomSpec{{
		Z:      6,
		Coords: [3]float64{0, 0, 0},
		Shells: []eri.ShellSpec{
			{L: 1, Exps: []float64{1.0}, Coefs: [][]float64{{1.0}}},
		},
	}}
	b, err := eri.NewBasis(spec)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := New(b); err == nil {
		Te.Error("a p shell was accepted")
	}
}

func TestSTO3GAtomUnknownElement(Te *testing.T) {
	if _, err := STO3GAtom(8, [3]float64{}); err == nil {
		Te.Error("untabulated element accepted")
	}
}

// General contractions share primitives between AO columns; the
// resulting 2x2x1x1 block must follow the first-index-fastest order.
func TestGeneralContractionBlock(Te *testing.T) {
	a := eri.AtomSpec{
		Z:      1,
		Coords: [3]float64{0, 0, 0},
		Shells: []eri.ShellSpec{
			{L: 0, Exps: []float64{0.8, 0.3}, Coefs: [][]float64{{1.0, 0.2}, {0.5, 1.0}}},
			{L: 0, Exps: []float64{1.1}, Coefs: [][]float64{{1.0}}},
		},
	}
	b, err := eri.NewBasis([]eri.AtomSpec{a})
	if err != nil {
		Te.Fatal(err)
	}
	ev, err := New(b)
	if err != nil {
		Te.Fatal(err)
	}
	block := make([]float64, 4)
	ev.Quartet(block, 0, 0, 1, 1)
	//each element must match the corresponding single-column evaluation
	for cj := 0; cj < 2; cj++ {
		for ci := 0; ci < 2; ci++ {
			single := eri.AtomSpec{
				Z:      1,
				Coords: [3]float64{0, 0, 0},
				Shells: []eri.ShellSpec{
					{L: 0, Exps: []float64{0.8, 0.3}, Coefs: [][]float64{a.Shells[0].Coefs[ci]}},
					{L: 0, Exps: []float64{0.8, 0.3}, Coefs: [][]float64{a.Shells[0].Coefs[cj]}},
					{L: 0, Exps: []float64{1.1}, Coefs: [][]float64{{1.0}}},
				},
			}
			sb, err := eri.NewBasis([]eri.AtomSpec{single})
			if err != nil {
				Te.Fatal(err)
			}
			sev, err := New(sb)
			if err != nil {
				Te.Fatal(err)
			}
			one := make([]float64, 1)
			sev.Quartet(one, 0, 1, 2, 2)
			if d := math.Abs(block[ci+2*cj] - one[0]); d > 1e-12 {
				Te.Errorf("column pair (%d,%d): block %g, direct %g", ci, cj, block[ci+2*cj], one[0])
			}
		}
	}
}
