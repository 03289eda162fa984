// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package subgenome distributes phased alleles that have been assigned to
// subgenomes into per-locus FASTA files, renaming each allele after its
// subgenome.
package subgenome

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/carbocation/pfx"
	log "github.com/sirupsen/logrus"

	"github.com/polyploid/phasedist/source"
)

var ErrRemoteOutput = errors.New("subgenome: cannot append to a remote file")

// Rename replaces a trailing phasing suffix of id, either __REF or two
// underscores followed by digits, with an underscore and the subgenome.
// If id has no such suffix it is returned unchanged with ok false.
func Rename(id, subgenome string) (name string, ok bool) {
	i := strings.LastIndex(id, "__")
	if i < 0 {
		return id, false
	}
	suffix := id[i+2:]
	if suffix != "REF" && !isDigits(suffix) {
		return id, false
	}
	return id[:i] + "_" + subgenome, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Distribute reads phased alleles from the FASTA stream phased and writes
// to dst every allele whose ID contains the sample of an assignment, renamed
// after the assigned subgenome. An allele matching several assignments is
// written once per match. Each record is preceded by an empty line so that
// it can be appended to a file lacking a final newline. Distribute returns
// the number of records written.
func Distribute(dst io.Writer, phased io.Reader, as []Assignment) (int, error) {
	var n int
	sc := seqio.NewScanner(fasta.NewReader(phased, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		id := s.Name()
		var matched bool
		for _, a := range as {
			if !strings.Contains(id, a.Sample) {
				continue
			}
			matched = true
			name, ok := Rename(id, a.Subgenome)
			if !ok {
				log.Warnf("%s: no phasing suffix to replace with subgenome %s", id, a.Subgenome)
			}
			if err := write(dst, linear.NewSeq(name, s.Seq, alphabet.DNA)); err != nil {
				return n, pfx.Err(fmt.Errorf("writing %q: %v", name, err))
			}
			log.Debugf("%s -> %s", id, name)
			n++
		}
		if !matched {
			log.Debugf("%s: no subgenome assignment", id)
		}
	}
	if err := sc.Error(); err != nil {
		return n, pfx.Err(err)
	}
	return n, nil
}

// write writes s as an unwrapped FASTA record preceded by a newline.
func write(w io.Writer, s *linear.Seq) error {
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	width := s.Len()
	if width < 1 {
		width = 1
	}
	_, err := fasta.NewWriter(w, width).Write(s)
	return err
}

// DistributeFile appends to the FASTA file orig the alleles from the FASTA
// file phased that are assigned to a subgenome at locus by the assignment
// table in assignments. The phased and assignments inputs may be remote or
// compressed; orig must be a local file and is created if absent. Records
// already written are kept if an error occurs.
func DistributeFile(ctx context.Context, orig, phased, assignments, locus string) (n int, err error) {
	if source.IsRemote(orig) {
		return 0, fmt.Errorf("%w: %s", ErrRemoteOutput, orig)
	}

	ar, err := source.Open(ctx, assignments)
	if err != nil {
		return 0, err
	}
	all, err := ReadAssignments(ar)
	ar.Close()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", assignments, err)
	}
	kept := ForLocus(all, locus)
	log.Infof("%d of %d assignments retained for locus %s", len(kept), len(all), locus)

	pr, err := source.Open(ctx, phased)
	if err != nil {
		return 0, err
	}
	defer pr.Close()

	f, err := os.OpenFile(orig, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return 0, pfx.Err(err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = pfx.Err(cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	n, err = Distribute(bw, pr, kept)
	if ferr := bw.Flush(); err == nil && ferr != nil {
		err = pfx.Err(ferr)
	}
	return n, err
}
