// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distmat

import (
	"math"

	"github.com/carbocation/pfx"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// grid adapts a Matrix to plotter.GridXYZ. Undefined distances are drawn
// as zero.
type grid struct{ m *Matrix }

func (g grid) Dims() (c, r int) { return g.m.Dims() }
func (g grid) X(c int) float64  { return float64(c) }
func (g grid) Y(r int) float64  { return float64(r) }
func (g grid) Z(c, r int) float64 {
	v := g.m.At(r, c)
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// HeatMap renders the matrix as a heat map and saves it to file. The image
// format is taken from the file extension.
func (m *Matrix) HeatMap(title, file string) error {
	p := plot.New()
	p.Title.Text = title

	h := plotter.NewHeatMap(grid{m}, palette.Heat(12, 1))
	p.Add(h)
	p.NominalX(m.labels...)
	p.NominalY(m.labels...)
	p.X.Tick.Label.Rotation = math.Pi / 2

	side := vg.Length(m.Len())*vg.Centimeter + 8*vg.Centimeter
	if err := p.Save(side, side, file); err != nil {
		return pfx.Err(err)
	}
	return nil
}
