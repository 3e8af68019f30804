/*
 * e2.go, part of goERI.
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

// SecondHalf completes the transformation of a half-transformed buffer:
// it converts the remaining kl index pair from AO to MO for every one of
// nij independent blocks. vin holds nij rows of AO kl pairs, stored per
// the fill strategy's row packing (a full nao*nao square for the
// rectangular layout, a packed triangle for the 4-fold one); vout
// receives nij rows of tr.NIJ(kl) MO pairs each.
//
// Each row is an independent dense multiplication, so the driver
// parallelizes over rows; workers write disjoint rows and the result is
// bit-identical for any worker count. nij = 0 is a valid no-op.
func SecondHalf(tr Transformer, fill FillStrategy, b *Basis, mo *Coefficients, vout, vin []float64, nij int, kl MORanges, workers int) error {
	if b == nil {
		return CError{ErrNilBasis, []string{"SecondHalf"}}
	}
	nao := b.NAO()
	rawCols := fill.RawCols(nao)
	if rawCols < 0 {
		return CError{ErrLayoutTransform, []string{"SecondHalf"}}
	}
	if mo == nil || mo.NAO() != nao {
		return CError{ErrAOMismatch, []string{"SecondHalf"}}
	}
	if !kl.Within(mo.NMO()) {
		return CError{ErrRangeBounds, []string{"SecondHalf"}}
	}
	if !tr.Compatible(kl) {
		return CError{ErrRangesUnequal, []string{"SecondHalf"}}
	}
	if nij < 0 {
		return CError{ErrRangeBounds, []string{"SecondHalf"}}
	}
	outW := tr.NIJ(kl)
	if len(vin) < nij*rawCols || (outW > 0 && len(vout) < nij*outW) {
		return CError{ErrNilBuffer, []string{"SecondHalf"}}
	}
	if nij == 0 {
		return nil
	}
	nw := nWorkers(workers, nij)
	done := make(chan bool, nw)
	for w := 0; w < nw; w++ {
		go func(w int) {
			defer func() { done <- true }()
			plane := make([]float64, nao*nao)
			scratch := make([]float64, tr.ScratchLen(kl, nao))
			for r := w; r < nij; r += nw {
				fill.UnpackRow(plane, vin[r*rawCols:(r+1)*rawCols], nao)
				tr.Half(vout[r*outW:(r+1)*outW], plane, scratch, mo, kl, nao)
			}
		}(w)
	}
	for w := 0; w < nw; w++ {
		<-done
	}
	return nil
}
