/*
 * evaluator.go, part of goERI.
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

// Evaluator produces the raw AO integral block of one shell quadruplet.
// It is the external boundary of the drivers: the cgto subpackage
// provides a pure-Go implementation, and bindings to external integral
// engines satisfy the same interface.
//
// Quartet writes the block for shells (ish, jsh, ksh, lsh) into buf,
// which holds NComp consecutive components of di*dj*dk*dl values each,
// with the first AO index fastest:
//
//	buf[comp*di*dj*dk*dl + i + di*(j + dj*(k + dk*l))]
//
// where di..dl are the AO counts of the four shells. It returns false
// when the block is identically zero, in which case the contents of buf
// are unspecified and the caller treats the block as an explicit zero.
// Implementations must be safe for concurrent calls with distinct
// buffers.
type Evaluator interface {
	NComp() int
	Quartet(buf []float64, ish, jsh, ksh, lsh int) bool
}

// QuartetFunc adapts a plain function to the Evaluator interface, for
// single-component integrals. Mostly useful for testing drivers against
// synthetic integral values.
type QuartetFunc func(buf []float64, ish, jsh, ksh, lsh int) bool

func (f QuartetFunc) NComp() int { return 1 }

func (f QuartetFunc) Quartet(buf []float64, ish, jsh, ksh, lsh int) bool {
	return f(buf, ish, jsh, ksh, lsh)
}
