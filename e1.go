/*
 * e1.go, part of goERI.
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

//e1.go holds the first-half drivers: the raw relayout driver and the
//driver that half-transforms the bra pair while the integrals are being
//generated. Both parallelize over shell-pair blocks, each worker writing
//only the disjoint region its blocks own, so the result does not depend
//on the number of workers or on scheduling.

package eri

import "runtime"

// nWorkers clamps a worker count the way the rest of the library does:
// non-positive means one worker per CPU, and never more workers than
// blocks.
func nWorkers(workers, blocks int) int {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > blocks {
		workers = blocks
	}
	return workers
}

// e1Check validates the preconditions shared by the first-half drivers
// and returns the per-component output size and block row offsets.
func e1Check(ev Evaluator, fill FillStrategy, b *Basis, out []float64, kl IndexRange) (int, []int, error) {
	if b == nil {
		return 0, nil, CError{ErrNilBasis, []string{"e1Check"}}
	}
	nkl := fill.NPairs(b.NShells())
	if !kl.Within(nkl) {
		return 0, nil, CError{ErrRangeBounds, []string{"e1Check"}}
	}
	if !fill.SupportsPartial() && (kl.Start != 0 || kl.Count != nkl) {
		return 0, nil, CError{ErrPartialRange, []string{"e1Check"}}
	}
	compSize := fill.RawBufSize(b, kl)
	_, rowOffs := rangeRows(fill, b, kl)
	if out == nil || len(out) < ev.NComp()*compSize {
		return 0, nil, CError{ErrNilBuffer, []string{"e1Check"}}
	}
	return compSize, rowOffs, nil
}

// RawFill evaluates the raw AO integral blocks of every shell pair in
// the kl range and scatters them into out with the layout of the given
// fill strategy, without transforming anything. Screened-out pairs
// contribute explicit zeros, so the addressing of the buffer stays
// uniform. An empty range is a valid no-op.
//
// out must hold ev.NComp() consecutive components of fill.RawBufSize
// values each. A nil scr means no screening.
func RawFill(ev Evaluator, fill FillStrategy, scr Screener, b *Basis, out []float64, kl IndexRange, workers int) error {
	compSize, rowOffs, err := e1Check(ev, fill, b, out, kl)
	if err != nil {
		return errDecorate(err, "RawFill")
	}
	if kl.Count == 0 {
		return nil
	}
	if scr == nil {
		scr = NoScreen{}
	}
	nbas := b.NShells()
	ncomp := ev.NComp()
	maxd := b.maxShellDim()
	nw := nWorkers(workers, kl.Count)
	done := make(chan bool, nw)
	for w := 0; w < nw; w++ {
		go func(w int) {
			defer func() { done <- true }()
			buf := make([]float64, ncomp*maxd*maxd*maxd*maxd)
			for idx := w; idx < kl.Count; idx += nw {
				ksh, lsh := fill.DecodePair(kl.Start+idx, nbas)
				for comp := 0; comp < ncomp; comp++ {
					fill.ZeroBlock(out[comp*compSize:(comp+1)*compSize], b, ksh, lsh, rowOffs[idx])
				}
				if scr.SkipPair(ksh, lsh) {
					continue
				}
				dk := b.AORange(ksh).Count
				dl := b.AORange(lsh).Count
				for ish := 0; ish < nbas; ish++ {
					jmax := nbas - 1
					if fill.Mirror() {
						jmax = ish
					}
					di := b.AORange(ish).Count
					for jsh := 0; jsh <= jmax; jsh++ {
						if scr.SkipQuartet(ish, jsh, ksh, lsh) {
							continue
						}
						if !fill.NeedQuartet(b, ish, jsh, ksh, lsh) {
							continue
						}
						n := di * b.AORange(jsh).Count * dk * dl
						if !ev.Quartet(buf[:ncomp*n], ish, jsh, ksh, lsh) {
							continue
						}
						for comp := 0; comp < ncomp; comp++ {
							fill.ScatterRaw(out[comp*compSize:(comp+1)*compSize],
								buf[comp*n:(comp+1)*n], b, ish, jsh, ksh, lsh, rowOffs[idx])
						}
					}
				}
			}
		}(w)
	}
	for w := 0; w < nw; w++ {
		<-done
	}
	return nil
}

// scatterSquare writes one component of a quadruplet block into the
// per-row square ij planes of the current kl block. pairs holds the
// (k, l) AO pairs of the block in row order. With mirror set, the (j, i)
// element is written too, which completes the plane when only the lower
// ij triangle of quadruplets was evaluated.
func scatterSquare(planes, buf []float64, b *Basis, ish, jsh, ksh, lsh int, pairs [][2]int, nao int, mirror bool) {
	ir, jr, kr, lr := b.AORange(ish), b.AORange(jsh), b.AORange(ksh), b.AORange(lsh)
	di, dj, dk := ir.Count, jr.Count, kr.Count
	for r, p := range pairs {
		kL := p[0] - kr.Offset
		lL := p[1] - lr.Offset
		boff := di * dj * (kL + dk*lL)
		plane := planes[r*nao*nao : (r+1)*nao*nao]
		for j := 0; j < dj; j++ {
			gj := jr.Offset + j
			for i := 0; i < di; i++ {
				v := buf[boff+j*di+i]
				gi := ir.Offset + i
				plane[gi*nao+gj] = v
				if mirror {
					plane[gj*nao+gi] = v
				}
			}
		}
	}
}

// FirstHalf evaluates the raw AO integrals of every shell pair in the kl
// range and transforms the bra (ij) pair from AO to MO while the ket
// pair remains indexed by shells. This is the expensive half: its cost
// is dominated by integral evaluation, which is why it parallelizes over
// shell pairs rather than over matrix dimensions.
//
// The output holds ev.NComp() components of rows-by-NIJ values each,
// where the rows are the AO kl pairs of the range in block order and NIJ
// is tr.NIJ(ij). The 8-fold layout stores raw integrals only and is
// rejected here.
func FirstHalf(ev Evaluator, fill FillStrategy, tr Transformer, scr Screener, b *Basis, mo *Coefficients, out []float64, kl IndexRange, ij MORanges, workers int) error {
	if b == nil {
		return CError{ErrNilBasis, []string{"FirstHalf"}}
	}
	if fill.RawCols(b.NAO()) < 0 {
		return CError{ErrLayoutTransform, []string{"FirstHalf"}}
	}
	if mo == nil || mo.NAO() != b.NAO() {
		return CError{ErrAOMismatch, []string{"FirstHalf"}}
	}
	if !ij.Within(mo.NMO()) {
		return CError{ErrRangeBounds, []string{"FirstHalf"}}
	}
	if !tr.Compatible(ij) {
		return CError{ErrRangesUnequal, []string{"FirstHalf"}}
	}
	nbas := b.NShells()
	nkl := fill.NPairs(nbas)
	if !kl.Within(nkl) {
		return CError{ErrRangeBounds, []string{"FirstHalf"}}
	}
	totalRows, rowOffs := rangeRows(fill, b, kl)
	nij := tr.NIJ(ij)
	compSize := totalRows * nij
	ncomp := ev.NComp()
	if out == nil || len(out) < ncomp*compSize {
		return CError{ErrNilBuffer, []string{"FirstHalf"}}
	}
	if kl.Count == 0 {
		return nil
	}
	if scr == nil {
		scr = NoScreen{}
	}
	nao := b.NAO()
	maxd := b.maxShellDim()
	maxRows := 0
	for idx := 0; idx < kl.Count; idx++ {
		if r := rowOffs[idx+1] - rowOffs[idx]; r > maxRows {
			maxRows = r
		}
	}
	nw := nWorkers(workers, kl.Count)
	done := make(chan bool, nw)
	for w := 0; w < nw; w++ {
		go func(w int) {
			defer func() { done <- true }()
			buf := make([]float64, ncomp*maxd*maxd*maxd*maxd)
			planes := make([]float64, ncomp*maxRows*nao*nao)
			scratch := make([]float64, tr.ScratchLen(ij, nao))
			var pairs [][2]int
			for idx := w; idx < kl.Count; idx += nw {
				ksh, lsh := fill.DecodePair(kl.Start+idx, nbas)
				nrows := rowOffs[idx+1] - rowOffs[idx]
				for comp := 0; comp < ncomp; comp++ {
					zero(out[comp*compSize+rowOffs[idx]*nij : comp*compSize+rowOffs[idx+1]*nij])
				}
				if scr.SkipPair(ksh, lsh) {
					continue
				}
				pairs = fill.BlockPairs(b, ksh, lsh, pairs[:0])
				dk := b.AORange(ksh).Count
				dl := b.AORange(lsh).Count
				planeSize := nrows * nao * nao
				zero(planes[:ncomp*planeSize])
				for ish := 0; ish < nbas; ish++ {
					jmax := nbas - 1
					if fill.Mirror() {
						jmax = ish
					}
					di := b.AORange(ish).Count
					for jsh := 0; jsh <= jmax; jsh++ {
						if scr.SkipQuartet(ish, jsh, ksh, lsh) {
							continue
						}
						n := di * b.AORange(jsh).Count * dk * dl
						if !ev.Quartet(buf[:ncomp*n], ish, jsh, ksh, lsh) {
							continue
						}
						for comp := 0; comp < ncomp; comp++ {
							scatterSquare(planes[comp*planeSize:(comp+1)*planeSize],
								buf[comp*n:(comp+1)*n], b, ish, jsh, ksh, lsh, pairs, nao, fill.Mirror())
						}
					}
				}
				for comp := 0; comp < ncomp; comp++ {
					for r := 0; r < nrows; r++ {
						row := out[comp*compSize+(rowOffs[idx]+r)*nij : comp*compSize+(rowOffs[idx]+r+1)*nij]
						tr.Half(row, planes[comp*planeSize+r*nao*nao:comp*planeSize+(r+1)*nao*nao], scratch, mo, ij, nao)
					}
				}
			}
		}(w)
	}
	for w := 0; w < nw; w++ {
		<-done
	}
	return nil
}
