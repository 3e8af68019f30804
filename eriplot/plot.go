/*
 * plot.go, part of goERI.
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

/*Package eriplot draws maps derived from an integral screening table.
A bound map shows, per shell pair, the Cauchy-Schwarz bound the drivers
screen with; it is handy to eyeball how much a given threshold will
skip.*/
package eriplot

import (
	"fmt"

	"github.com/rmera/goeri"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// boundGrid adapts a Schwarz table to the plotter.GridXYZ interface.
type boundGrid struct {
	s    *eri.Schwarz
	nbas int
}

func (g boundGrid) Dims() (int, int)   { return g.nbas, g.nbas }
func (g boundGrid) X(c int) float64    { return float64(c) }
func (g boundGrid) Y(r int) float64    { return float64(r) }
func (g boundGrid) Z(c, r int) float64 { return g.s.Bound(r, c) }

// BoundMap renders the shell-pair screening bounds of s as a heat map
// and saves it as plotname.png.
func BoundMap(s *eri.Schwarz, b *eri.Basis, title, plotname string) error {
	if s == nil || b == nil {
		return fmt.Errorf("eriplot: nil screening table or basis")
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "shell"
	p.Y.Label.Text = "shell"
	g := boundGrid{s: s, nbas: b.NShells()}
	h := plotter.NewHeatMap(g, palette.Heat(12, 1))
	p.Add(h)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(12*vg.Centimeter, 12*vg.Centimeter, filename)
}
