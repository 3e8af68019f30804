/*
 * fill.go, part of goERI.
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

import "math"

// A FillStrategy fixes one symmetry layout of the output buffers and
// owns all of its offset arithmetic: the shell-pair enumeration, the
// AO-pair rows each shell-pair block owns, and the scatter of one raw
// quadruplet block into the buffer. Every valid (block, row, column)
// address maps to a unique offset, and distinct blocks never overlap,
// which is what lets the drivers run blocks in parallel without locks.
//
// Three variants exist, with the conventions of the usual integral
// packages: FillRect assumes no symmetry, Fill4Fold packs both index
// pairs in lower-triangular form, and Fill8Fold additionally packs the
// pair-of-pairs triangle (raw AO integrals only).
type FillStrategy interface {
	//Name returns the conventional name of the layout.
	Name() string
	//NPairs returns the total number of shell pairs in the kl space.
	NPairs(nbas int) int
	//DecodePair returns the shells of the klsh-th pair.
	DecodePair(klsh, nbas int) (ksh, lsh int)
	//PairIndex returns the position of AO pair (k, l) in the layout's
	//full pair space.
	PairIndex(k, l, nao int) int
	//BlockRows returns the number of AO-pair rows the (ksh, lsh) shell
	//pair block owns.
	BlockRows(b *Basis, ksh, lsh int) int
	//BlockPairs appends the (k, l) AO pairs of the block, in row order.
	BlockPairs(b *Basis, ksh, lsh int, dst [][2]int) [][2]int
	//Mirror reports whether quadruplets are evaluated over the ij lower
	//triangle only, the upper triangle being implied by symmetry.
	Mirror() bool
	//SupportsPartial reports whether klsh sub-ranges are addressable, or
	//the whole pair space must be filled in one call.
	SupportsPartial() bool
	//RawCols returns the width of one raw AO row, or -1 when rows have
	//layout-dependent widths.
	RawCols(nao int) int
	//RawBufSize returns the per-component length of the raw output
	//buffer for the given shell-pair range.
	RawBufSize(b *Basis, kl IndexRange) int
	//NeedQuartet reports whether the (ish, jsh) pair contributes any
	//stored element to the (ksh, lsh) block.
	NeedQuartet(b *Basis, ish, jsh, ksh, lsh int) bool
	//ScatterRaw writes one component of a quadruplet block (first AO
	//index fastest) into dst. rowOff is the row offset of the (ksh,
	//lsh) block within the driver's shell-pair range; layouts with
	//absolute addressing ignore it.
	ScatterRaw(dst, buf []float64, b *Basis, ish, jsh, ksh, lsh, rowOff int)
	//ZeroBlock zeroes the region of dst owned by the (ksh, lsh) block.
	ZeroBlock(dst []float64, b *Basis, ksh, lsh, rowOff int)
	//UnpackRow expands one stored AO row into a full nao x nao plane.
	UnpackRow(plane, row []float64, nao int)
}

// tril returns the packed lower-triangular index of an ordered pair,
// a >= b.
func tril(a, b int) int { return a*(a+1)/2 + b }

// trilDecode is the inverse of tril.
func trilDecode(q int) (int, int) {
	a := int((math.Sqrt(float64(8*q+1)) - 1) / 2)
	for (a+1)*(a+2)/2 <= q {
		a++
	}
	for a*(a+1)/2 > q {
		a--
	}
	return a, q - a*(a+1)/2
}

// rangeRows returns the total AO-pair rows of a shell-pair range, plus
// the per-block row offsets (len kl.Count+1, relative to the range).
func rangeRows(f FillStrategy, b *Basis, kl IndexRange) (int, []int) {
	offs := make([]int, kl.Count+1)
	nbas := b.NShells()
	for idx := 0; idx < kl.Count; idx++ {
		ksh, lsh := f.DecodePair(kl.Start+idx, nbas)
		offs[idx+1] = offs[idx] + f.BlockRows(b, ksh, lsh)
	}
	return offs[kl.Count], offs
}

func zero(s []float64) {
	for i := range s {
		s[i] = 0
	}
}

//FillRect stores all shell pairs and all AO pairs, with no symmetry
//assumed: row k*nao+l in the full pair space, column i*nao+j.
type FillRect struct{}

func (FillRect) Name() string      { return "s1" }
func (FillRect) Mirror() bool      { return false }
func (FillRect) SupportsPartial() bool { return true }

func (FillRect) NPairs(nbas int) int { return nbas * nbas }

func (FillRect) DecodePair(klsh, nbas int) (int, int) { return klsh / nbas, klsh % nbas }

func (FillRect) PairIndex(k, l, nao int) int { return k*nao + l }

func (FillRect) BlockRows(b *Basis, ksh, lsh int) int {
	return b.AORange(ksh).Count * b.AORange(lsh).Count
}

func (FillRect) BlockPairs(b *Basis, ksh, lsh int, dst [][2]int) [][2]int {
	kr, lr := b.AORange(ksh), b.AORange(lsh)
	for k := 0; k < kr.Count; k++ {
		for l := 0; l < lr.Count; l++ {
			dst = append(dst, [2]int{kr.Offset + k, lr.Offset + l})
		}
	}
	return dst
}

func (FillRect) RawCols(nao int) int { return nao * nao }

func (f FillRect) RawBufSize(b *Basis, kl IndexRange) int {
	rows, _ := rangeRows(f, b, kl)
	return rows * f.RawCols(b.NAO())
}

func (FillRect) NeedQuartet(_ *Basis, _, _, _, _ int) bool { return true }

func (FillRect) ScatterRaw(dst, buf []float64, b *Basis, ish, jsh, ksh, lsh, rowOff int) {
	nao := b.NAO()
	ir, jr, kr, lr := b.AORange(ish), b.AORange(jsh), b.AORange(ksh), b.AORange(lsh)
	di, dj, dk, dl := ir.Count, jr.Count, kr.Count, lr.Count
	width := nao * nao
	for l := 0; l < dl; l++ {
		for k := 0; k < dk; k++ {
			base := (rowOff + k*dl + l) * width
			boff := di * dj * (k + dk*l)
			for j := 0; j < dj; j++ {
				for i := 0; i < di; i++ {
					dst[base+(ir.Offset+i)*nao+jr.Offset+j] = buf[boff+j*di+i]
				}
			}
		}
	}
}

func (f FillRect) ZeroBlock(dst []float64, b *Basis, ksh, lsh, rowOff int) {
	width := f.RawCols(b.NAO())
	n := f.BlockRows(b, ksh, lsh) * width
	zero(dst[rowOff*width : rowOff*width+n])
}

func (FillRect) UnpackRow(plane, row []float64, nao int) {
	copy(plane[:nao*nao], row)
}

//Fill4Fold stores the lower triangle of both index pairs: shell pairs
//with ksh >= lsh, AO pairs packed as k(k+1)/2+l. It relies on the
//permutational symmetry (ij|kl) = (ji|kl) = (ij|lk) of the integrals.
type Fill4Fold struct{}

func (Fill4Fold) Name() string          { return "s4" }
func (Fill4Fold) Mirror() bool          { return true }
func (Fill4Fold) SupportsPartial() bool { return true }

func (Fill4Fold) NPairs(nbas int) int { return nbas * (nbas + 1) / 2 }

func (Fill4Fold) DecodePair(klsh, _ int) (int, int) { return trilDecode(klsh) }

func (Fill4Fold) PairIndex(k, l, _ int) int { return tril(k, l) }

func (Fill4Fold) BlockRows(b *Basis, ksh, lsh int) int {
	dk := b.AORange(ksh).Count
	if ksh == lsh {
		return dk * (dk + 1) / 2
	}
	return dk * b.AORange(lsh).Count
}

func (Fill4Fold) BlockPairs(b *Basis, ksh, lsh int, dst [][2]int) [][2]int {
	kr, lr := b.AORange(ksh), b.AORange(lsh)
	for k := 0; k < kr.Count; k++ {
		lmax := lr.Count - 1
		if ksh == lsh {
			lmax = k
		}
		for l := 0; l <= lmax; l++ {
			dst = append(dst, [2]int{kr.Offset + k, lr.Offset + l})
		}
	}
	return dst
}

func (Fill4Fold) RawCols(nao int) int { return nao * (nao + 1) / 2 }

func (f Fill4Fold) RawBufSize(b *Basis, kl IndexRange) int {
	rows, _ := rangeRows(f, b, kl)
	return rows * f.RawCols(b.NAO())
}

func (Fill4Fold) NeedQuartet(_ *Basis, ish, jsh, _, _ int) bool { return ish >= jsh }

func (Fill4Fold) ScatterRaw(dst, buf []float64, b *Basis, ish, jsh, ksh, lsh, rowOff int) {
	nao := b.NAO()
	ir, jr, kr, lr := b.AORange(ish), b.AORange(jsh), b.AORange(ksh), b.AORange(lsh)
	di, dj, dk := ir.Count, jr.Count, kr.Count
	width := nao * (nao + 1) / 2
	row := rowOff
	for k := 0; k < kr.Count; k++ {
		lmax := lr.Count - 1
		if ksh == lsh {
			lmax = k
		}
		for l := 0; l <= lmax; l++ {
			base := row * width
			boff := di * dj * (k + dk*l)
			for j := 0; j < dj; j++ {
				imin := 0
				if ish == jsh {
					imin = j //store i >= j only
				}
				for i := imin; i < di; i++ {
					dst[base+tril(ir.Offset+i, jr.Offset+j)] = buf[boff+j*di+i]
				}
			}
			row++
		}
	}
}

func (f Fill4Fold) ZeroBlock(dst []float64, b *Basis, ksh, lsh, rowOff int) {
	width := f.RawCols(b.NAO())
	n := f.BlockRows(b, ksh, lsh) * width
	zero(dst[rowOff*width : rowOff*width+n])
}

func (Fill4Fold) UnpackRow(plane, row []float64, nao int) {
	for i := 0; i < nao; i++ {
		for j := 0; j <= i; j++ {
			v := row[tril(i, j)]
			plane[i*nao+j] = v
			plane[j*nao+i] = v
		}
	}
}

//Fill8Fold packs the full permutational symmetry of real integrals:
//triangular kl rows over a triangular pair-of-pairs buffer, where row q
//holds the columns p <= q at offset q(q+1)/2. It stores raw AO
//integrals only, and it addresses rows by their absolute triangular
//index, so the whole shell-pair triangle must be filled in one call.
type Fill8Fold struct{}

func (Fill8Fold) Name() string          { return "s8" }
func (Fill8Fold) Mirror() bool          { return true }
func (Fill8Fold) SupportsPartial() bool { return false }

func (Fill8Fold) NPairs(nbas int) int { return nbas * (nbas + 1) / 2 }

func (Fill8Fold) DecodePair(klsh, _ int) (int, int) { return trilDecode(klsh) }

func (Fill8Fold) PairIndex(k, l, _ int) int { return tril(k, l) }

func (Fill8Fold) BlockRows(b *Basis, ksh, lsh int) int {
	return Fill4Fold{}.BlockRows(b, ksh, lsh)
}

func (Fill8Fold) BlockPairs(b *Basis, ksh, lsh int, dst [][2]int) [][2]int {
	return Fill4Fold{}.BlockPairs(b, ksh, lsh, dst)
}

func (Fill8Fold) RawCols(_ int) int { return -1 }

func (Fill8Fold) RawBufSize(b *Basis, _ IndexRange) int {
	npair := b.NAO() * (b.NAO() + 1) / 2
	return npair * (npair + 1) / 2
}

func (Fill8Fold) NeedQuartet(b *Basis, ish, jsh, ksh, lsh int) bool {
	if ish < jsh {
		return false
	}
	ir, jr, kr, lr := b.AORange(ish), b.AORange(jsh), b.AORange(ksh), b.AORange(lsh)
	kmax := kr.Offset + kr.Count - 1
	lmax := lr.Offset + lr.Count - 1
	if lmax > kmax {
		lmax = kmax
	}
	//the smallest ij column of the quadruplet must not exceed the
	//largest kl row of the block
	return tril(ir.Offset, jr.Offset) <= tril(kmax, lmax)
}

func (Fill8Fold) ScatterRaw(dst, buf []float64, b *Basis, ish, jsh, ksh, lsh, _ int) {
	ir, jr, kr, lr := b.AORange(ish), b.AORange(jsh), b.AORange(ksh), b.AORange(lsh)
	di, dj, dk := ir.Count, jr.Count, kr.Count
	for k := 0; k < kr.Count; k++ {
		lmax := lr.Count - 1
		if ksh == lsh {
			lmax = k
		}
		for l := 0; l <= lmax; l++ {
			q := tril(kr.Offset+k, lr.Offset+l)
			base := q * (q + 1) / 2
			boff := di * dj * (k + dk*l)
			for j := 0; j < dj; j++ {
				imin := 0
				if ish == jsh {
					imin = j
				}
				for i := imin; i < di; i++ {
					p := tril(ir.Offset+i, jr.Offset+j)
					if p <= q {
						dst[base+p] = buf[boff+j*di+i]
					}
				}
			}
		}
	}
}

func (Fill8Fold) ZeroBlock(dst []float64, b *Basis, ksh, lsh, _ int) {
	kr, lr := b.AORange(ksh), b.AORange(lsh)
	for k := 0; k < kr.Count; k++ {
		lmax := lr.Count - 1
		if ksh == lsh {
			lmax = k
		}
		for l := 0; l <= lmax; l++ {
			q := tril(kr.Offset+k, lr.Offset+l)
			zero(dst[q*(q+1)/2 : q*(q+1)/2+q+1])
		}
	}
}

func (Fill8Fold) UnpackRow(_, _ []float64, _ int) {
	panic(ErrShape) //s8 rows are not rectangular; drivers reject this path
}
