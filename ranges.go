/*
 * ranges.go, part of goERI.
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

// IndexRange is a contiguous (start, count) slice of one of the logical
// index spaces of the transformation: MO columns of a coefficient matrix,
// or shell pairs of a symmetry layout.
type IndexRange struct {
	Start, Count int
}

// End returns the first index past the range.
func (r IndexRange) End() int { return r.Start + r.Count }

// Within reports whether the range lies inside [0, bound).
func (r IndexRange) Within(bound int) bool {
	return r.Start >= 0 && r.Count >= 0 && r.Start+r.Count <= bound
}

// MORanges describes which MO columns the transformation of one index
// pair produces: I for the slower index, J for the faster one.
type MORanges struct {
	I, J IndexRange
}

// Within reports whether both ranges lie inside [0, nmo).
func (m MORanges) Within(nmo int) bool {
	return m.I.Within(nmo) && m.J.Within(nmo)
}

// Equal reports whether both ranges are the same, as the triangular
// symmetries require.
func (m MORanges) Equal() bool { return m.I == m.J }
