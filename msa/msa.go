// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package msa reads multiple sequence alignments and computes pairwise
// identity distances between their sequences.
package msa

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/carbocation/pfx"
	"github.com/evolbioinfo/goalign/align"
	"github.com/evolbioinfo/goalign/io/clustal"
	"github.com/evolbioinfo/goalign/io/nexus"
	"github.com/evolbioinfo/goalign/io/phylip"
)

var (
	ErrFormat = errors.New("msa: unsupported alignment format")
	ErrEmpty  = errors.New("msa: no sequences in alignment")
	ErrRagged = errors.New("msa: sequences have different lengths")
)

// Formats lists the accepted alignment format names.
var Formats = []string{"fasta", "phylip", "phylip-relaxed", "nexus", "clustal"}

// Record is an aligned sequence.
type Record struct {
	ID  string
	Seq []byte
}

// Read reads an alignment in the named format from r. Format names are
// case insensitive. All sequences must have the same length.
func Read(r io.Reader, format string) ([]Record, error) {
	var (
		recs []Record
		err  error
	)
	switch strings.ToLower(format) {
	case "fasta":
		recs, err = readFasta(r)
	case "phylip":
		recs, err = readGoalign(phylip.NewParser(r, true).Parse())
	case "phylip-relaxed":
		recs, err = readGoalign(phylip.NewParser(r, false).Parse())
	case "nexus":
		recs, err = readGoalign(nexus.NewParser(r).Parse())
	case "clustal":
		recs, err = readGoalign(clustal.NewParser(r).Parse())
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}
	if err != nil {
		return nil, err
	}

	if len(recs) == 0 {
		return nil, ErrEmpty
	}
	for _, rec := range recs[1:] {
		if len(rec.Seq) != len(recs[0].Seq) {
			return nil, fmt.Errorf("%w: %q has length %d, %q has length %d",
				ErrRagged, recs[0].ID, len(recs[0].Seq), rec.ID, len(rec.Seq))
		}
	}
	return recs, nil
}

func readFasta(r io.Reader) ([]Record, error) {
	var recs []Record
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		recs = append(recs, Record{ID: s.Name(), Seq: alphabet.LettersToBytes(s.Seq)})
	}
	if err := sc.Error(); err != nil {
		return nil, pfx.Err(err)
	}
	return recs, nil
}

func readGoalign(aln align.Alignment, err error) ([]Record, error) {
	if err != nil {
		return nil, pfx.Err(err)
	}
	var recs []Record
	for _, s := range aln.Sequences() {
		recs = append(recs, Record{ID: s.Name(), Seq: []byte(s.Sequence())})
	}
	return recs, nil
}
