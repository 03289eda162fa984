// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subgenome

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/csimplestring/go-csv/detector"
	"github.com/gocarina/gocsv"
)

// Assignment assigns the phased allele of a sample at a locus to a
// subgenome. A blank Subgenome means the allele is not assigned.
type Assignment struct {
	Locus     string `csv:"locus"`
	Sample    string `csv:"sample"`
	Subgenome string `csv:"subgenome"`
}

var columns = []string{"locus", "sample", "subgenome"}

// ReadAssignments reads assignment rows from r. The first row is a header
// and is ignored; columns are taken by position as locus, sample and
// subgenome. Missing trailing cells are read as blank and extra columns are
// ignored. The cell delimiter is detected from the data.
func ReadAssignments(r io.Reader) ([]Assignment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, pfx.Err(err)
	}
	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = delimiter(data)
	cr.FieldsPerRecord = -1
	if _, err := cr.Read(); err == io.EOF {
		return nil, nil
	} else if err != nil {
		return nil, pfx.Err(err)
	}

	var as []Assignment
	if err := gocsv.UnmarshalCSV(&positional{r: cr}, &as); err != nil {
		return nil, pfx.Err(err)
	}
	return as, nil
}

// delimiter returns the most likely cell delimiter of a CSV-like table,
// defaulting to a comma. Only comma, tab, semicolon and pipe are accepted
// since sample names commonly hold underscores.
func delimiter(data []byte) rune {
	d := detector.New()
	for _, cand := range d.DetectDelimiter(bytes.NewReader(data), '"') {
		if len(cand) == 1 && strings.ContainsAny(cand, ",\t;|") {
			return rune(cand[0])
		}
	}
	return ','
}

// positional presents the rows of a headerless table under the fixed
// assignment column names, normalising every row to three trimmed cells.
type positional struct {
	r      *csv.Reader
	header bool
}

func (p *positional) Read() ([]string, error) {
	if !p.header {
		p.header = true
		return columns, nil
	}
	rec, err := p.r.Read()
	if err != nil {
		return nil, err
	}
	row := make([]string, len(columns))
	for i := range row {
		if i < len(rec) {
			row[i] = strings.TrimSpace(rec[i])
		}
	}
	return row, nil
}

func (p *positional) ReadAll() ([][]string, error) {
	var rows [][]string
	for {
		row, err := p.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

// ForLocus returns the assignments at locus that name both a sample and a
// subgenome, in input order.
func ForLocus(as []Assignment, locus string) []Assignment {
	var kept []Assignment
	for _, a := range as {
		if a.Locus != locus || a.Sample == "" || a.Subgenome == "" {
			continue
		}
		kept = append(kept, a)
	}
	return kept
}
