/*
 * errors.go, part of goERI.
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

// Error is the interface for errors in this library. The Decorate method
// allows to add and retrieve info from the error, without changing its type
// or wrapping it around something else. The decoration slice should contain
// the functions in the calling stack, plus, for each function, any relevant
// information, or nothing.
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the concrete error type of the package. All driver entry
// points return a CError on contract violations.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds new information to the error. If passed an empty string,
// it just returns the current decoration.
func (err CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// errDecorate asserts that err implements Error, decorates it with the
// caller's name and returns it. It panics on a non-Error error.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

// Messages for contract violations. These are precondition failures, so a
// caller should not try to recover from them other than by fixing the call.
const (
	ErrNilBasis        = "goERI: nil basis"
	ErrNilBuffer       = "goERI: nil or short output buffer"
	ErrRangeBounds     = "goERI: index range out of bounds"
	ErrAOMismatch      = "goERI: coefficient rows do not match the basis AO count"
	ErrRangesUnequal   = "goERI: this symmetry requires equal bra ranges"
	ErrPartialRange    = "goERI: this layout requires the full shell-pair range"
	ErrLayoutTransform = "goERI: the 8-fold layout stores raw AO integrals only"
	ErrNComp           = "goERI: this operation supports single-component integrals only"
	ErrShape           = "goERI: dimension mismatch"
)
