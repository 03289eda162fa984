// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// alleledist calculates the genetic distance among the tips of a multiple
// sequence alignment or a phylogeny, and reports for each tip the other
// tip(s) with the lowest distance. The output aids putative assignment of
// phased alleles to subgenomes.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/polyploid/phasedist/closest"
	"github.com/polyploid/phasedist/distmat"
	"github.com/polyploid/phasedist/msa"
	"github.com/polyploid/phasedist/phylo"
	"github.com/polyploid/phasedist/source"
)

func newCommand() *cobra.Command {
	var (
		cfg     Config
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "alleledist -m MSA|tree -i input [-f format]",
		Short: "Find the closest tips in an alignment or tree",
		Long: `Find the closest tips in an alignment or tree

Example usage:

	alleledist -m MSA -i locus.fasta -f fasta
	alleledist -m tree -i locus.tre -f newick

Writes <input>.DistMatrix.csv holding all pairwise distances, and
<input>.ClosestAllele.csv (MSA) or <input>.ClosestAlleles.csv (tree) listing
for each tip the tips at minimum distance from it. MSA distances are identity
distances; tree distances are patristic distances.

Accepted MSA formats: fasta, phylip, phylip-relaxed, nexus, clustal.
Accepted tree formats: newick.
Inputs may be gzip, bzip2, zlib, xz or zip compressed, and may be gs:// paths.
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.Mode, "mode", "m", "", "Input type, MSA or tree")
	cmd.Flags().StringVarP(&cfg.Input, "input", "i", "", "Input alignment or tree")
	cmd.Flags().StringVarP(&cfg.Format, "format", "f", "", "Input format (default fasta for MSA, newick for tree)")
	cmd.Flags().StringVarP(&cfg.Output, "output", "o", "", "Output path prefix (default the input path)")
	cmd.Flags().BoolVarP(&cfg.HeatMap, "heatmap", "", false, "Also draw the distance matrix to <prefix>.DistMatrix.png")
	cmd.Flags().BoolVarP(&cfg.Sort, "sort", "", false, "Sort closest tip rows by label")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	cmd.Flags().SortFlags = false

	return cmd
}

func main() {
	err := newCommand().ExecuteContext(context.Background())
	if errors.Is(err, ErrMode) {
		log.Warn(err)
		return
	}
	if err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	m, err := distances(ctx, cfg)
	if err != nil {
		return err
	}
	log.Infof("%s: %d tips", cfg.Input, m.Len())
	if !m.IsSymmetric() {
		log.Warnf("%s: distance matrix is not symmetric", cfg.Input)
	}

	matches, err := closest.Reduce(m)
	if err != nil {
		return err
	}
	if cfg.Sort {
		matches.Sort()
	}

	if err := create(cfg.MatrixFile(), m.WriteCSV); err != nil {
		return err
	}
	if err := create(cfg.ClosestFile(), matches.WriteCSV); err != nil {
		return err
	}
	if cfg.HeatMap {
		if err := m.HeatMap(filepath.Base(cfg.Prefix()), cfg.HeatMapFile()); err != nil {
			return err
		}
		log.Infof("wrote %s", cfg.HeatMapFile())
	}
	return nil
}

// distances reads the configured input and returns its distance matrix.
func distances(ctx context.Context, cfg Config) (*distmat.Matrix, error) {
	rc, err := source.Open(ctx, cfg.Input)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	switch cfg.Mode {
	case ModeMSA:
		recs, err := msa.Read(rc, cfg.Format)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return msa.Distances(recs)
	case ModeTree:
		t, err := phylo.Read(rc, cfg.Format)
		if err != nil {
			return nil, pfx.Err(err)
		}
		return phylo.Distances(t)
	}
	return nil, ErrMode
}

// create writes a new file using fn.
func create(name string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return pfx.Err(err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = pfx.Err(cerr)
		}
	}()
	if err = fn(f); err != nil {
		return err
	}
	log.Infof("wrote %s", name)
	return nil
}
