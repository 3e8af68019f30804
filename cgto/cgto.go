/*
 * cgto.go, part of goERI.
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

/*Package cgto evaluates overlap and two-electron repulsion integrals
over contracted s-type Gaussian functions, in pure Go. It implements the
eri.Evaluator interface, so the transformation drivers can run without
an external integral engine. Only s shells (l = 0) are supported;
general contractions are.

The closed-form expressions are the standard ones for s Gaussians, with
the zeroth Boys function evaluated through the error function.*/
package cgto

import (
	"fmt"
	"math"

	"github.com/rmera/goeri"
	"gonum.org/v1/gonum/mat"
)

// Error is the interface-compatible error type of the package. It
// fulfills eri.Error.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return "cgto: " + err.message }

// Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Evaluator computes integral blocks over the contracted s-type
// Gaussians of a basis. It is stateless apart from the read-only basis
// reference, so concurrent Quartet calls with distinct buffers are safe.
type Evaluator struct {
	b *eri.Basis
}

// New builds an Evaluator for the given basis. Every shell must have
// l = 0.
func New(b *eri.Basis) (*Evaluator, error) {
	if b == nil {
		return nil, Error{"nil basis", []string{"New"}}
	}
	for sh := 0; sh < b.NShells(); sh++ {
		if b.Shell(sh).L != 0 {
			return nil, Error{fmt.Sprintf("shell %d has l=%d, only s shells are supported", sh, b.Shell(sh).L), []string{"New"}}
		}
	}
	return &Evaluator{b: b}, nil
}

// NComp returns 1: plain repulsion integrals have a single component.
func (E *Evaluator) NComp() int { return 1 }

// Quartet writes the contracted repulsion block (ij|kl) for the four
// shells into buf, first AO index fastest. For s shells the AO functions
// of a shell are its contraction columns. It always returns true; the
// drivers screen separately.
func (E *Evaluator) Quartet(buf []float64, ish, jsh, ksh, lsh int) bool {
	b := E.b
	si, sj, sk, sl := b.Shell(ish), b.Shell(jsh), b.Shell(ksh), b.Shell(lsh)
	A, B2, C, D := b.ShellCoords(ish), b.ShellCoords(jsh), b.ShellCoords(ksh), b.ShellCoords(lsh)
	ei, ej, ek, el := b.Exps(ish), b.Exps(jsh), b.Exps(ksh), b.Exps(lsh)
	di, dj, dk := si.NCtr, sj.NCtr, sk.NCtr
	for cl := 0; cl < sl.NCtr; cl++ {
		wl := b.Coefs(lsh, cl)
		for ck := 0; ck < dk; ck++ {
			wk := b.Coefs(ksh, ck)
			for cj := 0; cj < dj; cj++ {
				wj := b.Coefs(jsh, cj)
				for ci := 0; ci < di; ci++ {
					wi := b.Coefs(ish, ci)
					v := 0.0
					for pi, ai := range ei {
						for pj, aj := range ej {
							for pk, ak := range ek {
								for pl, al := range el {
									v += wi[pi] * wj[pj] * wk[pk] * wl[pl] *
										eriPrim(ai, A, aj, B2, ak, C, al, D)
								}
							}
						}
					}
					buf[ci+di*(cj+dj*(ck+dk*cl))] = v
				}
			}
		}
	}
	return true
}

// Overlap writes the contracted overlap block of two shells into buf,
// first index fastest.
func (E *Evaluator) Overlap(buf []float64, ish, jsh int) {
	b := E.b
	si, sj := b.Shell(ish), b.Shell(jsh)
	A, B2 := b.ShellCoords(ish), b.ShellCoords(jsh)
	ei, ej := b.Exps(ish), b.Exps(jsh)
	for cj := 0; cj < sj.NCtr; cj++ {
		wj := b.Coefs(jsh, cj)
		for ci := 0; ci < si.NCtr; ci++ {
			wi := b.Coefs(ish, ci)
			v := 0.0
			for pi, ai := range ei {
				for pj, aj := range ej {
					v += wi[pi] * wj[pj] * overlapPrim(ai, A, aj, B2)
				}
			}
			buf[ci+si.NCtr*cj] = v
		}
	}
}

// OverlapMatrix returns the full AO overlap matrix.
func (E *Evaluator) OverlapMatrix() *mat.Dense {
	b := E.b
	nao := b.NAO()
	S := mat.NewDense(nao, nao, nil)
	maxd := 0
	for sh := 0; sh < b.NShells(); sh++ {
		if d := b.AORange(sh).Count; d > maxd {
			maxd = d
		}
	}
	buf := make([]float64, maxd*maxd)
	for ish := 0; ish < b.NShells(); ish++ {
		ir := b.AORange(ish)
		for jsh := 0; jsh <= ish; jsh++ {
			jr := b.AORange(jsh)
			E.Overlap(buf, ish, jsh)
			for j := 0; j < jr.Count; j++ {
				for i := 0; i < ir.Count; i++ {
					v := buf[i+ir.Count*j]
					S.Set(ir.Offset+i, jr.Offset+j, v)
					S.Set(jr.Offset+j, ir.Offset+i, v)
				}
			}
		}
	}
	return S
}

// boys0 is the zeroth Boys function F0(t).
func boys0(t float64) float64 {
	if t < 1e-13 {
		return 1
	}
	return 0.5 * math.Sqrt(math.Pi/t) * math.Erf(math.Sqrt(t))
}

func dist2(a, b [3]float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return dx*dx + dy*dy + dz*dz
}

// overlapPrim returns the overlap of two unnormalized primitive s
// Gaussians.
func overlapPrim(a float64, A [3]float64, b float64, B [3]float64) float64 {
	p := a + b
	return math.Pow(math.Pi/p, 1.5) * math.Exp(-a*b/p*dist2(A, B))
}

// eriPrim returns the repulsion integral (ab|cd) of four unnormalized
// primitive s Gaussians.
func eriPrim(a float64, A [3]float64, b float64, B [3]float64, c float64, C [3]float64, d float64, D [3]float64) float64 {
	p := a + b
	q := c + d
	P := [3]float64{(a*A[0] + b*B[0]) / p, (a*A[1] + b*B[1]) / p, (a*A[2] + b*B[2]) / p}
	Q := [3]float64{(c*C[0] + d*D[0]) / q, (c*C[1] + d*D[1]) / q, (c*C[2] + d*D[2]) / q}
	pre := 2 * math.Pow(math.Pi, 2.5) / (p * q * math.Sqrt(p+q))
	ex := math.Exp(-a*b/p*dist2(A, B) - c*d/q*dist2(C, D))
	return pre * ex * boys0(p*q/(p+q)*dist2(P, Q))
}
