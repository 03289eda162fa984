// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// distalleles appends phased alleles that have been assigned to subgenomes
// to the unphased FASTA file of their locus. Each appended allele is renamed
// by replacing its phasing suffix (__1, __2, __REF) with an underscore and
// the subgenome it was assigned to.
package main

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/polyploid/phasedist/subgenome"
)

type options struct {
	input      string
	phased     string
	subgenomes string
	locus      string
}

func newCommand() *cobra.Command {
	var (
		opts    options
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "distalleles -i original.fasta -p phased.fasta -s subgenomes.csv -l locus",
		Short: "Append subgenome-assigned phased alleles to a locus FASTA",
		Long: `Append subgenome-assigned phased alleles to a locus FASTA

Example usage:

	distalleles -i L1.fasta -p L1.phased.fasta -s subgenomes.csv -l L1

The subgenome table has a header row followed by rows of locus, sample and
subgenome. Rows for other loci and rows without a subgenome are ignored.
Every phased allele whose name contains a retained sample is appended to the
original file, once per matching row.
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Original locus FASTA, appended to")
	cmd.Flags().StringVarP(&opts.phased, "phased", "p", "", "Phased allele FASTA")
	cmd.Flags().StringVarP(&opts.subgenomes, "subgenomes", "s", "", "Subgenome assignment table")
	cmd.Flags().StringVarP(&opts.locus, "locus", "l", "", "Locus name")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	for _, name := range []string{"input", "phased", "subgenomes", "locus"} {
		cmd.MarkFlagRequired(name)
	}
	cmd.Flags().SortFlags = false

	return cmd
}

func main() {
	if err := newCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, opts options) error {
	n, err := subgenome.DistributeFile(ctx, opts.input, opts.phased, opts.subgenomes, opts.locus)
	if err != nil {
		return err
	}
	log.Infof("appended %d alleles to %s", n, opts.input)
	return nil
}
