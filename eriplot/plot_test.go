/*
 * plot_test.go, part of goERI.
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

package eriplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/goeri"
	"github.com/rmera/goeri/cgto"
)

func TestBoundMap(Te *testing.T) {
	a, err := cgto.STO3GAtom(2, [3]float64{0, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	c, err := cgto.STO3GAtom(2, [3]float64{0, 0, 2.0})
	if err != nil {
		Te.Fatal(err)
	}
	b, err := eri.NewBasis([]eri.AtomSpec{a, c})
	if err != nil {
		Te.Fatal(err)
	}
	ev, err := cgto.New(b)
	if err != nil {
		Te.Fatal(err)
	}
	s, err := eri.NewSchwarz(ev, b, 1e-10)
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "bounds")
	if err := BoundMap(s, b, "Screening bounds", name); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Errorf("no plot written: %v", err)
	}
}

func TestBoundMapNil(Te *testing.T) {
	if err := BoundMap(nil, nil, "", ""); err == nil {
		Te.Error("nil arguments accepted")
	}
}
