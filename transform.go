/*
 * transform.go, part of goERI.
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
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// A Transformer applies the matrix-multiplication step that converts one
// index pair of a block from AO to MO, using a contiguous column slice
// of a coefficient matrix: dst = Ci^T A Cj, where A is one assembled
// nao x nao AO plane. Both driver halves use the same interface; the
// variant fixes how the resulting MO pair is stored.
type Transformer interface {
	//Name returns the conventional name of the MO-pair storage.
	Name() string
	//NIJ returns the number of MO pairs produced for the given ranges.
	NIJ(ij MORanges) int
	//Compatible reports whether the ranges satisfy the variant's
	//symmetry requirements.
	Compatible(ij MORanges) bool
	//ScratchLen returns the scratch length Half needs.
	ScratchLen(ij MORanges, nao int) int
	//Half transforms one square AO plane (row-major, nao x nao) into
	//dst, which must hold NIJ values.
	Half(dst, plane, scratch []float64, mo *Coefficients, ij MORanges, nao int)
}

//TransRect produces the full rectangle of MO pairs, i.Count x j.Count,
//for arbitrary ranges. The multiplication order follows the cheaper
//side: (Ci^T A) Cj when the i slice is narrower, Ci^T (A Cj) otherwise.
type TransRect struct{}

func (TransRect) Name() string { return "s1" }

func (TransRect) NIJ(ij MORanges) int { return ij.I.Count * ij.J.Count }

func (TransRect) Compatible(_ MORanges) bool { return true }

func (TransRect) ScratchLen(ij MORanges, nao int) int {
	n := ij.I.Count
	if ij.J.Count < n {
		n = ij.J.Count
	}
	return nao * n
}

func (TransRect) Half(dst, plane, scratch []float64, mo *Coefficients, ij MORanges, nao int) {
	nI, nJ := ij.I.Count, ij.J.Count
	if nI == 0 || nJ == 0 {
		return
	}
	A := blas64.General{Rows: nao, Cols: nao, Stride: nao, Data: plane[:nao*nao]}
	Ci := mo.colSlice(ij.I)
	Cj := mo.colSlice(ij.J)
	out := blas64.General{Rows: nI, Cols: nJ, Stride: nJ, Data: dst[:nI*nJ]}
	if nI <= nJ {
		tmp := blas64.General{Rows: nI, Cols: nao, Stride: nao, Data: scratch[:nI*nao]}
		blas64.Gemm(blas.Trans, blas.NoTrans, 1, Ci, A, 0, tmp)
		blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, tmp, Cj, 0, out)
	} else {
		tmp := blas64.General{Rows: nao, Cols: nJ, Stride: nJ, Data: scratch[:nao*nJ]}
		blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, A, Cj, 0, tmp)
		blas64.Gemm(blas.Trans, blas.NoTrans, 1, Ci, tmp, 0, out)
	}
}

//Trans4Fold produces the packed lower triangle of MO pairs,
//n(n+1)/2 values for equal ranges of n orbitals. The AO plane must be
//symmetric, which the mirrored assembly of the triangular fill layouts
//guarantees.
type Trans4Fold struct{}

func (Trans4Fold) Name() string { return "s2" }

func (Trans4Fold) NIJ(ij MORanges) int {
	n := ij.I.Count
	return n * (n + 1) / 2
}

func (Trans4Fold) Compatible(ij MORanges) bool { return ij.Equal() }

func (Trans4Fold) ScratchLen(ij MORanges, nao int) int {
	n := ij.I.Count
	return n*nao + n*n
}

func (Trans4Fold) Half(dst, plane, scratch []float64, mo *Coefficients, ij MORanges, nao int) {
	n := ij.I.Count
	if n == 0 {
		return
	}
	A := blas64.General{Rows: nao, Cols: nao, Stride: nao, Data: plane[:nao*nao]}
	C := mo.colSlice(ij.I)
	tmp := blas64.General{Rows: n, Cols: nao, Stride: nao, Data: scratch[:n*nao]}
	blas64.Gemm(blas.Trans, blas.NoTrans, 1, C, A, 0, tmp)
	S := blas64.General{Rows: n, Cols: n, Stride: n, Data: scratch[n*nao : n*nao+n*n]}
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, tmp, C, 0, S)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			dst[tril(i, j)] = S.Data[i*n+j]
		}
	}
}
