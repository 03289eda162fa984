// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distmat

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"
	check "gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestNewValidation(c *check.C) {
	for i, t := range []struct {
		labels []string
		rows   [][]float64
		err    error
	}{
		{
			labels: nil,
			rows:   nil,
			err:    ErrEmpty,
		},
		{
			labels: []string{"a", "b"},
			rows:   [][]float64{{0, 1}},
			err:    ErrLabelCount,
		},
		{
			labels: []string{"a", "b"},
			rows:   [][]float64{{0, 1}, {1}},
			err:    ErrNotSquare,
		},
		{
			labels: []string{"a", "a"},
			rows:   [][]float64{{0, 1}, {1, 0}},
			err:    ErrDuplicateLabel,
		},
		{
			labels: []string{"a", "b"},
			rows:   [][]float64{{0, 1}, {1, 0}},
			err:    nil,
		},
	} {
		_, err := New(t.labels, t.rows)
		if t.err == nil {
			c.Check(err, check.Equals, nil, check.Commentf("Test %d", i))
			continue
		}
		c.Check(errors.Is(err, t.err), check.Equals, true, check.Commentf("Test %d: %v", i, err))
	}
}

func (s *S) TestNewDense(c *check.C) {
	_, err := NewDense([]string{"a", "b"}, mat.NewDense(2, 3, nil))
	c.Check(errors.Is(err, ErrNotSquare), check.Equals, true)

	m, err := NewDense([]string{"a", "b"}, mat.NewDense(2, 2, []float64{7, 1, 2, 7}))
	c.Assert(err, check.Equals, nil)
	c.Check(math.IsNaN(m.At(0, 0)), check.Equals, true)
	c.Check(m.At(0, 1), check.Equals, 1.)
	c.Check(m.At(1, 0), check.Equals, 2.)
	c.Check(m.IsSymmetric(), check.Equals, false)
}

func (s *S) TestDiagonalUndefined(c *check.C) {
	m, err := New([]string{"a", "b", "c"}, [][]float64{
		{5, 1, 2},
		{1, 5, 3},
		{2, 3, 5},
	})
	c.Assert(err, check.Equals, nil)
	for i := 0; i < m.Len(); i++ {
		c.Check(math.IsNaN(m.At(i, i)), check.Equals, true)
	}
	m.Set(1, 1, 4)
	c.Check(math.IsNaN(m.At(1, 1)), check.Equals, true)
	c.Check(m.IsSymmetric(), check.Equals, true)

	m.SetSym(0, 2, 9)
	d, err := m.Distance("c", "a")
	c.Check(err, check.Equals, nil)
	c.Check(d, check.Equals, 9.)
	_, err = m.Distance("c", "z")
	c.Check(err, check.NotNil)
}

func (s *S) TestCSVRoundTrip(c *check.C) {
	labels := []string{"TaxonA__1", "TaxonA__2", "TaxonB__REF"}
	m, err := New(labels, [][]float64{
		{0, 0.1, 1. / 3},
		{0.1, 0, 0.25},
		{1. / 3, 0.25, 0},
	})
	c.Assert(err, check.Equals, nil)

	var buf bytes.Buffer
	c.Assert(m.WriteCSV(&buf), check.Equals, nil)
	c.Check(buf.String(), check.Equals, ""+
		",TaxonA__1,TaxonA__2,TaxonB__REF\n"+
		"TaxonA__1,,0.1,0.3333333333333333\n"+
		"TaxonA__2,0.1,,0.25\n"+
		"TaxonB__REF,0.3333333333333333,0.25,\n")

	got, err := ReadCSV(&buf)
	c.Assert(err, check.Equals, nil)
	c.Check(got.Labels(), check.DeepEquals, labels)
	for i := range labels {
		for j := range labels {
			if i == j {
				c.Check(math.IsNaN(got.At(i, j)), check.Equals, true)
				continue
			}
			c.Check(got.At(i, j), check.Equals, m.At(i, j), check.Commentf("(%d,%d)", i, j))
		}
	}
}

func (s *S) TestReadCSVErrors(c *check.C) {
	for i, t := range []struct {
		in  string
		err error
	}{
		{in: "", err: ErrEmpty},
		{in: "\n", err: nil},
		{in: ",a,b\nb,,1\na,1,\n", err: ErrLabelMismatch},
		{in: ",a,b\na,,1\n", err: ErrLabelCount},
		{in: ",a\na,\na,\n", err: ErrNotSquare},
	} {
		_, err := ReadCSV(bytes.NewBufferString(t.in))
		c.Check(err, check.NotNil, check.Commentf("Test %d", i))
		if t.err != nil {
			c.Check(errors.Is(err, t.err), check.Equals, true, check.Commentf("Test %d: %v", i, err))
		}
	}
}

func (s *S) TestHeatMap(c *check.C) {
	m, err := New([]string{"a", "b"}, [][]float64{{0, 1}, {1, 0}})
	c.Assert(err, check.Equals, nil)
	file := filepath.Join(c.MkDir(), "dist.png")
	c.Assert(m.HeatMap("test", file), check.Equals, nil)
	fi, err := os.Stat(file)
	c.Assert(err, check.Equals, nil)
	c.Check(fi.Size() > 0, check.Equals, true)
}
