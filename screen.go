/*
 * screen.go, part of goERI.
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

// Screener decides whether a shell pair or quadruplet can be skipped
// because its integrals are predicted negligible. Implementations are
// read-only during a driver call; drivers treat a skipped block as an
// explicit zero, never as an error.
type Screener interface {
	SkipPair(ksh, lsh int) bool
	SkipQuartet(ish, jsh, ksh, lsh int) bool
}

// NoScreen keeps every block.
type NoScreen struct{}

func (NoScreen) SkipPair(_, _ int) bool          { return false }
func (NoScreen) SkipQuartet(_, _, _, _ int) bool { return false }

// Schwarz holds precomputed Cauchy-Schwarz bounds
// Q(ij) = sqrt(max |(ij|ij)|) per shell pair. A quadruplet is skipped
// when Q(ij)*Q(kl) falls under the threshold; the bound dominates the
// true integral magnitude, so only negligible blocks are dropped.
type Schwarz struct {
	q    []float64
	qmax float64
	tol  float64
	nbas int
}

// NewSchwarz builds the bound table by evaluating the diagonal
// quadruplets (ij|ij) of every shell pair. For multi-component
// evaluators the bound is taken over all components.
func NewSchwarz(ev Evaluator, b *Basis, tol float64) (*Schwarz, error) {
	if b == nil {
		return nil, CError{ErrNilBasis, []string{"NewSchwarz"}}
	}
	if tol < 0 {
		return nil, CError{fmt.Sprintf("NewSchwarz: negative threshold %g", tol), []string{"NewSchwarz"}}
	}
	nbas := b.NShells()
	ncomp := ev.NComp()
	maxd := b.maxShellDim()
	buf := make([]float64, ncomp*maxd*maxd*maxd*maxd)
	S := &Schwarz{q: make([]float64, nbas*nbas), tol: tol, nbas: nbas}
	for ish := 0; ish < nbas; ish++ {
		di := b.AORange(ish).Count
		for jsh := 0; jsh <= ish; jsh++ {
			dj := b.AORange(jsh).Count
			n := di * dj * di * dj
			mx := 0.0
			if ev.Quartet(buf[:ncomp*n], ish, jsh, ish, jsh) {
				for comp := 0; comp < ncomp; comp++ {
					for j := 0; j < dj; j++ {
						for i := 0; i < di; i++ {
							//diagonal element (ij|ij)
							v := math.Abs(buf[comp*n+i+di*(j+dj*(i+di*j))])
							if v > mx {
								mx = v
							}
						}
					}
				}
			}
			bound := math.Sqrt(mx)
			S.q[ish*nbas+jsh] = bound
			S.q[jsh*nbas+ish] = bound
			if bound > S.qmax {
				S.qmax = bound
			}
		}
	}
	return S, nil
}

// Bound returns the precomputed bound Q of the (ksh, lsh) shell pair.
func (S *Schwarz) Bound(ksh, lsh int) float64 { return S.q[ksh*S.nbas+lsh] }

// Tol returns the screening threshold.
func (S *Schwarz) Tol() float64 { return S.tol }

// SkipPair skips a shell pair when no partner pair can push the product
// of bounds over the threshold.
func (S *Schwarz) SkipPair(ksh, lsh int) bool {
	return S.q[ksh*S.nbas+lsh]*S.qmax < S.tol
}

// SkipQuartet skips a quadruplet when the bound product is negligible.
func (S *Schwarz) SkipQuartet(ish, jsh, ksh, lsh int) bool {
	return S.q[ish*S.nbas+jsh]*S.q[ksh*S.nbas+lsh] < S.tol
}
