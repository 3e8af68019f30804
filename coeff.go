/*
 * coeff.go, part of goERI.
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

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Coefficients is a dense AO-count x MO-count matrix of molecular
// orbital coefficients. It must be able to implement any gonum
// interface, so it just wraps mat.Dense. A transformation step consumes
// a contiguous column slice of it.
type Coefficients struct {
	*mat.Dense
}

// NewCoefficients builds a Coefficients matrix with nao rows and nmo
// columns from row-major data.
func NewCoefficients(nao, nmo int, data []float64) (*Coefficients, error) {
	if nao <= 0 || nmo <= 0 || len(data) != nao*nmo {
		return nil, CError{fmt.Sprintf("NewCoefficients: %d values for a %dx%d matrix", len(data), nao, nmo), []string{"NewCoefficients"}}
	}
	return &Coefficients{mat.NewDense(nao, nmo, data)}, nil
}

// Identity returns an nao x nao identity coefficient matrix.
// Transforming with it reproduces the AO integrals.
func Identity(nao int) *Coefficients {
	d := mat.NewDense(nao, nao, nil)
	for i := 0; i < nao; i++ {
		d.Set(i, i, 1)
	}
	return &Coefficients{d}
}

// NAO returns the number of AO rows.
func (C *Coefficients) NAO() int {
	r, _ := C.Dims()
	return r
}

// NMO returns the number of MO columns.
func (C *Coefficients) NMO() int {
	_, c := C.Dims()
	return c
}

// colSlice returns a BLAS view of the contiguous column slice given by r.
// No data is copied; the view shares storage with C.
func (C *Coefficients) colSlice(r IndexRange) blas64.General {
	raw := C.RawMatrix()
	return blas64.General{
		Rows:   raw.Rows,
		Cols:   r.Count,
		Stride: raw.Stride,
		Data:   raw.Data[r.Start:],
	}
}
