// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distmat

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/carbocation/pfx"
)

var ErrLabelMismatch = errors.New("distmat: row label does not match column label")

// WriteCSV writes the matrix as a CSV table. The header row holds an empty
// cell followed by the labels, and each following row holds a label followed
// by its distances. Undefined distances, including the diagonal, are written
// as empty cells.
func (m *Matrix) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{""}, m.labels...)); err != nil {
		return pfx.Err(err)
	}
	row := make([]string, len(m.labels)+1)
	for i, l := range m.labels {
		row[0] = l
		for j := range m.labels {
			row[j+1] = formatDistance(m.data.At(i, j))
		}
		if err := cw.Write(row); err != nil {
			return pfx.Err(err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return pfx.Err(err)
	}
	return nil
}

// ReadCSV reads a matrix in the format written by WriteCSV.
func ReadCSV(r io.Reader) (*Matrix, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, pfx.Err(err)
	}
	labels := header[1:]
	if len(labels) == 0 {
		return nil, ErrEmpty
	}

	rows := make([][]float64, 0, len(labels))
	for i := 0; ; i++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, pfx.Err(err)
		}
		if i >= len(labels) {
			return nil, fmt.Errorf("%w: more rows than labels", ErrNotSquare)
		}
		if rec[0] != labels[i] {
			return nil, fmt.Errorf("%w: row %d is %q, column is %q", ErrLabelMismatch, i, rec[0], labels[i])
		}
		row := make([]float64, len(rec)-1)
		for j, f := range rec[1:] {
			row[j], err = parseDistance(f)
			if err != nil {
				return nil, pfx.Err(fmt.Errorf("row %q column %d: %v", rec[0], j+1, err))
			}
		}
		rows = append(rows, row)
	}
	return New(labels, rows)
}

func formatDistance(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseDistance(f string) (float64, error) {
	if f == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(f, 64)
}
