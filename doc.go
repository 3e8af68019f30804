/*
 * doc.go, part of goERI.
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

/*Package eri implements the transformation of two-electron repulsion
integrals from an atomic-orbital (AO) basis to a molecular-orbital (MO)
basis, the step that feeds correlated quantum-chemistry methods.

	**goERI Capabilities**

    Holds atoms, shells and contraction data in flat, libcint-style
	arrays, with a shell-to-AO-function lookup table.

    Performs the first half-transformation while the raw AO integrals
	are being generated, shell pair by shell pair, so the integral
	blocks never have to be stored untransformed.

    Completes the second half-transformation with dense, BLAS-backed
	matrix multiplications over independent blocks.

    Supports rectangular, 4-fold and 8-fold symmetric storage layouts,
	and converts between them.

    Screens negligible shell quadruplets with precomputed
	Cauchy-Schwarz bounds. Screened blocks become explicit zeros, so
	buffer addressing stays uniform.

    Runs both halves in parallel over disjoint output blocks. Results
	are bit-identical for any number of workers.

    The cgto subpackage evaluates overlap and repulsion integrals over
	contracted s-type Gaussians in pure Go, so the library can be used
	and tested without an external integral engine.

    The eriplot subpackage draws screening-bound maps.

The integral evaluator, the fill strategy and the transform strategy are
interfaces, so external engines (say, a libcint binding) plug into the
same drivers. The driver contracts follow the non-relativistic AO-to-MO
drivers of the common quantum-chemistry packages: a first-half driver
over shell-pair blocks, and a second-half driver over the independent
transformed-pair blocks.

All entities except the output buffers are read-only during a driver
call. Callers own construction and validation of the basis and the
coefficient matrices; the drivers check cheap preconditions and return
an error on contract violations.
*/
package eri
