/*
 * restore.go, part of goERI.
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

//restore.go converts a raw AO integral tensor between its three global
//storage forms. Conventions, matching GatherRaw output:
//
//  s1: len nao^4, element (ij|kl) at (k*nao+l)*nao^2 + i*nao+j
//  s4: len npair^2, rows tril(k,l), columns tril(i,j), npair=nao(nao+1)/2
//  s8: len npair(npair+1)/2, element at q(q+1)/2+p for p=tril(i,j),
//      q=tril(k,l), p <= q
//
//The packed forms assume the full 8-fold (or 4-fold) permutational
//symmetry of real integrals; unpacking replicates each stored value to
//all equivalent positions.

package eri

import "fmt"

func restoreCheck(caller string, got, want int) error {
	if got != want {
		return CError{fmt.Sprintf("%s: buffer of %d values, want %d", caller, got, want), []string{caller}}
	}
	return nil
}

// Unpack4 expands a 4-fold packed tensor to the full rectangular form.
func Unpack4(packed []float64, nao int) ([]float64, error) {
	npair := nao * (nao + 1) / 2
	if err := restoreCheck("Unpack4", len(packed), npair*npair); err != nil {
		return nil, err
	}
	nao2 := nao * nao
	full := make([]float64, nao2*nao2)
	for k := 0; k < nao; k++ {
		for l := 0; l <= k; l++ {
			for i := 0; i < nao; i++ {
				for j := 0; j <= i; j++ {
					v := packed[tril(k, l)*npair+tril(i, j)]
					for _, q := range [2]int{k*nao + l, l*nao + k} {
						for _, p := range [2]int{i*nao + j, j*nao + i} {
							full[q*nao2+p] = v
						}
					}
				}
			}
		}
	}
	return full, nil
}

// Pack4 packs a full rectangular tensor into 4-fold form, keeping the
// lower-triangle representatives. The tensor is assumed to have the
// corresponding symmetry; no averaging is done.
func Pack4(full []float64, nao int) ([]float64, error) {
	nao2 := nao * nao
	if err := restoreCheck("Pack4", len(full), nao2*nao2); err != nil {
		return nil, err
	}
	npair := nao * (nao + 1) / 2
	packed := make([]float64, npair*npair)
	for k := 0; k < nao; k++ {
		for l := 0; l <= k; l++ {
			for i := 0; i < nao; i++ {
				for j := 0; j <= i; j++ {
					packed[tril(k, l)*npair+tril(i, j)] = full[(k*nao+l)*nao2+i*nao+j]
				}
			}
		}
	}
	return packed, nil
}

// Unpack8 expands an 8-fold packed tensor to the full rectangular form.
func Unpack8(packed []float64, nao int) ([]float64, error) {
	npair := nao * (nao + 1) / 2
	if err := restoreCheck("Unpack8", len(packed), npair*(npair+1)/2); err != nil {
		return nil, err
	}
	m4, err := unpack8to4(packed, nao)
	if err != nil {
		return nil, errDecorate(err, "Unpack8")
	}
	full, err := Unpack4(m4, nao)
	if err != nil {
		return nil, errDecorate(err, "Unpack8")
	}
	return full, nil
}

// Pack8 packs a full rectangular tensor into 8-fold form.
func Pack8(full []float64, nao int) ([]float64, error) {
	nao2 := nao * nao
	if err := restoreCheck("Pack8", len(full), nao2*nao2); err != nil {
		return nil, err
	}
	npair := nao * (nao + 1) / 2
	packed := make([]float64, npair*(npair+1)/2)
	for q := 0; q < npair; q++ {
		k, l := trilDecode(q)
		for p := 0; p <= q; p++ {
			i, j := trilDecode(p)
			packed[q*(q+1)/2+p] = full[(k*nao+l)*nao2+i*nao+j]
		}
	}
	return packed, nil
}

// unpack8to4 expands the pair-of-pairs triangle into a square
// npair x npair matrix, using the (ij|kl) = (kl|ij) symmetry.
func unpack8to4(packed []float64, nao int) ([]float64, error) {
	npair := nao * (nao + 1) / 2
	if err := restoreCheck("unpack8to4", len(packed), npair*(npair+1)/2); err != nil {
		return nil, err
	}
	m4 := make([]float64, npair*npair)
	for q := 0; q < npair; q++ {
		for p := 0; p <= q; p++ {
			v := packed[q*(q+1)/2+p]
			m4[q*npair+p] = v
			m4[p*npair+q] = v
		}
	}
	return m4, nil
}
