// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msa

import (
	"fmt"

	"github.com/polyploid/phasedist/distmat"
)

// skip reports letters that never score as a match.
func skip(b byte) bool { return b == '-' || b == '*' }

// Identity returns the identity distance between two aligned sequences:
// one minus the fraction of positions of a holding the same letter in b,
// not counting positions where either letter is a gap or a stop. The
// distance of an empty sequence is 1.
func Identity(a, b []byte) float64 {
	if len(a) == 0 {
		return 1
	}
	var match int
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] == b[i] && !skip(a[i]) {
			match++
		}
	}
	return 1 - float64(match)/float64(len(a))
}

// Distances returns the matrix of identity distances between recs in record
// order.
func Distances(recs []Record) (*distmat.Matrix, error) {
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}
	m, err := distmat.NewZero(ids)
	if err != nil {
		return nil, fmt.Errorf("msa: %w", err)
	}
	for i := range recs {
		for j := i + 1; j < len(recs); j++ {
			m.SetSym(i, j, Identity(recs[i].Seq, recs[j].Seq))
		}
	}
	return m, nil
}
