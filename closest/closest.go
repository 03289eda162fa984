// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package closest finds, for each label of a distance matrix, the other
// labels at minimum distance from it.
package closest

import (
	"errors"
	"math"
	"sort"

	"github.com/polyploid/phasedist/distmat"
)

var ErrNilMatrix = errors.New("closest: nil matrix")

// Match holds the labels tying for minimum distance from Label.
type Match struct {
	Label    string `csv:"Label"`
	BestHits Labels `csv:"BestHits"`
}

// Matches is an ordered collection of Match values, one per matrix label.
type Matches []Match

// Lookup returns the best hits for label l and whether l is present.
func (ms Matches) Lookup(l string) ([]string, bool) {
	for _, m := range ms {
		if m.Label == l {
			return m.BestHits, true
		}
	}
	return nil, false
}

// Sort sorts the matches lexically by label.
func (ms Matches) Sort() {
	sort.SliceStable(ms, func(i, j int) bool { return ms[i].Label < ms[j].Label })
}

// Reduce returns the closest labels for every label of m, in the label order
// of m. The diagonal of m is never considered, and undefined (NaN) distances
// are skipped. Ties at the minimum distance are all reported in column order;
// distances are compared exactly. A label with no defined distance to any
// other label has no best hits.
func Reduce(m *distmat.Matrix) (Matches, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	n := m.Len()
	ms := make(Matches, n)
	for i := 0; i < n; i++ {
		min := math.Inf(1)
		found := false
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			d := m.At(i, j)
			if math.IsNaN(d) {
				continue
			}
			if !found || d < min {
				min = d
				found = true
			}
		}

		hits := Labels{}
		if found {
			for j := 0; j < n; j++ {
				if j != i && m.At(i, j) == min {
					hits = append(hits, m.Label(j))
				}
			}
		}
		ms[i] = Match{Label: m.Label(i), BestHits: hits}
	}
	return ms, nil
}

// ReduceRows validates labels and rows as a distance matrix and returns
// the result of Reduce on it.
func ReduceRows(labels []string, rows [][]float64) (Matches, error) {
	m, err := distmat.New(labels, rows)
	if err != nil {
		return nil, err
	}
	return Reduce(m)
}
