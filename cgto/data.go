/*
 * data.go, part of goERI.
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

package cgto

import (
	"fmt"

	"github.com/rmera/goeri"
)

// sto3gExps and sto3gCoefs hold the STO-3G s-shell parameters for the
// elements this package ships data for. Coefficients are for
// unnormalized primitives; eri.NewBasis applies the normalization.
var sto3gExps = map[int][]float64{
	1: {3.42525091, 0.62391373, 0.16885540},
	2: {6.36242139, 1.15892300, 0.31364979},
}

var sto3gCoefs = []float64{0.15432897, 0.53532814, 0.44463454}

// STO3GAtom returns the AtomSpec of element z at the given coordinates
// (Bohr), with its STO-3G s shell. Only H and He are tabulated.
func STO3GAtom(z int, coords [3]float64) (eri.AtomSpec, error) {
	exps, ok := sto3gExps[z]
	if !ok {
		return eri.AtomSpec{}, Error{fmt.Sprintf("no STO-3G s data for element %d", z), []string{"STO3GAtom"}}
	}
	coefs := make([]float64, len(sto3gCoefs))
	copy(coefs, sto3gCoefs)
	return eri.AtomSpec{
		Z:      z,
		Coords: coords,
		Shells: []eri.ShellSpec{{L: 0, Exps: exps, Coefs: [][]float64{coefs}}},
	}, nil
}
