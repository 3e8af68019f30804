/*
 * full.go, part of goERI.
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

// General runs the whole in-core transformation
// (pq|rs) = sum_ijkl Ci_ip Cj_jq Ck_kr Cl_ls (ij|kl)
// with the bra pair taken from the bra ranges and the ket pair from the
// ket ranges of the same coefficient matrix: first half over all shell
// pairs, a gather transpose from block-row order to AO-pair columns, and
// the second half. The returned buffer holds one row of tr.NIJ(ket) MO
// ket pairs for every bra MO pair.
//
// Only single-component evaluators are supported here; for anything
// else, drive FirstHalf and SecondHalf directly.
func General(ev Evaluator, fill FillStrategy, tr Transformer, scr Screener, b *Basis, mo *Coefficients, bra, ket MORanges, workers int) ([]float64, error) {
	if b == nil {
		return nil, CError{ErrNilBasis, []string{"General"}}
	}
	if ev.NComp() != 1 {
		return nil, CError{ErrNComp, []string{"General"}}
	}
	nao := b.NAO()
	rawCols := fill.RawCols(nao)
	if rawCols < 0 {
		return nil, CError{ErrLayoutTransform, []string{"General"}}
	}
	nbas := b.NShells()
	kl := IndexRange{0, fill.NPairs(nbas)}
	totalRows, rowOffs := rangeRows(fill, b, kl)
	nij := tr.NIJ(bra)
	half := make([]float64, totalRows*nij)
	if err := FirstHalf(ev, fill, tr, scr, b, mo, half, kl, bra, workers); err != nil {
		return nil, errDecorate(err, "General")
	}
	//gather transpose: half[row, ij] -> vin[ij, AO pair]
	vin := make([]float64, nij*rawCols)
	var pairs [][2]int
	for idx := 0; idx < kl.Count; idx++ {
		ksh, lsh := fill.DecodePair(idx, nbas)
		pairs = fill.BlockPairs(b, ksh, lsh, pairs[:0])
		for r, p := range pairs {
			g := fill.PairIndex(p[0], p[1], nao)
			row := (rowOffs[idx] + r) * nij
			for c := 0; c < nij; c++ {
				vin[c*rawCols+g] = half[row+c]
			}
		}
	}
	vout := make([]float64, nij*tr.NIJ(ket))
	if err := SecondHalf(tr, fill, b, mo, vout, vin, nij, ket, workers); err != nil {
		return nil, errDecorate(err, "General")
	}
	return vout, nil
}

// Full transforms all four indices over every MO column of the
// coefficient matrix.
func Full(ev Evaluator, fill FillStrategy, tr Transformer, scr Screener, b *Basis, mo *Coefficients, workers int) ([]float64, error) {
	if mo == nil {
		return nil, CError{ErrAOMismatch, []string{"Full"}}
	}
	all := IndexRange{0, mo.NMO()}
	v, err := General(ev, fill, tr, scr, b, mo, MORanges{all, all}, MORanges{all, all}, workers)
	if err != nil {
		return nil, errDecorate(err, "Full")
	}
	return v, nil
}

// GatherRaw reorders a RawFill buffer from block-row order into
// AO-pair-indexed global storage: a full nao^2 x nao^2 matrix for the
// rectangular layout, an npair x npair matrix for the 4-fold one, and an
// unchanged copy for the 8-fold one, whose addressing is already global.
// Rows not covered by the kl range stay zero. Single-component buffers
// only.
func GatherRaw(fill FillStrategy, b *Basis, raw []float64, kl IndexRange) ([]float64, error) {
	if b == nil {
		return nil, CError{ErrNilBasis, []string{"GatherRaw"}}
	}
	nao := b.NAO()
	nbas := b.NShells()
	if !kl.Within(fill.NPairs(nbas)) {
		return nil, CError{ErrRangeBounds, []string{"GatherRaw"}}
	}
	width := fill.RawCols(nao)
	if width < 0 {
		out := make([]float64, fill.RawBufSize(b, kl))
		copy(out, raw)
		return out, nil
	}
	if len(raw) < fill.RawBufSize(b, kl) {
		return nil, CError{ErrNilBuffer, []string{"GatherRaw"}}
	}
	nrowsGlobal := fill.PairIndex(nao-1, nao-1, nao) + 1
	out := make([]float64, nrowsGlobal*width)
	_, rowOffs := rangeRows(fill, b, kl)
	var pairs [][2]int
	for idx := 0; idx < kl.Count; idx++ {
		ksh, lsh := fill.DecodePair(kl.Start+idx, nbas)
		pairs = fill.BlockPairs(b, ksh, lsh, pairs[:0])
		for r, p := range pairs {
			g := fill.PairIndex(p[0], p[1], nao)
			copy(out[g*width:(g+1)*width], raw[(rowOffs[idx]+r)*width:(rowOffs[idx]+r+1)*width])
		}
	}
	return out, nil
}
