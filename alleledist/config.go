// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/polyploid/phasedist/msa"
	"github.com/polyploid/phasedist/phylo"
	"github.com/polyploid/phasedist/source"
)

const (
	ModeMSA  = "MSA"
	ModeTree = "tree"
)

var (
	ErrMode    = errors.New("missing or invalid mode (-m): want MSA or tree")
	ErrNoInput = errors.New("missing input (-i)")
	ErrFormat  = errors.New("unsupported format (-f)")
)

// Config holds the settings of a closest allele run.
type Config struct {
	Mode    string
	Input   string
	Format  string
	Output  string
	HeatMap bool
	Sort    bool
}

// Validate checks the configuration and fills in the default format for the
// mode. Mode names are case sensitive; format names are not.
func (c *Config) Validate() error {
	var formats []string
	switch c.Mode {
	case ModeMSA:
		formats = msa.Formats
	case ModeTree:
		formats = phylo.Formats
	default:
		if c.Mode == "" {
			return ErrMode
		}
		return fmt.Errorf("%w, got %q", ErrMode, c.Mode)
	}

	if c.Input == "" {
		return ErrNoInput
	}

	if c.Format == "" {
		c.Format = formats[0]
	}
	for _, f := range formats {
		if strings.EqualFold(c.Format, f) {
			c.Format = f
			return nil
		}
	}
	return fmt.Errorf("%w: %q for mode %s, want one of %s", ErrFormat, c.Format, c.Mode, strings.Join(formats, ", "))
}

// Prefix returns the path prefix of output files.
func (c *Config) Prefix() string {
	if c.Output != "" {
		return c.Output
	}
	return source.Base(c.Input)
}

// MatrixFile returns the name of the distance matrix output.
func (c *Config) MatrixFile() string { return c.Prefix() + ".DistMatrix.csv" }

// HeatMapFile returns the name of the distance heat map output.
func (c *Config) HeatMapFile() string { return c.Prefix() + ".DistMatrix.png" }

// ClosestFile returns the name of the closest allele output.
func (c *Config) ClosestFile() string {
	if c.Mode == ModeTree {
		return c.Prefix() + ".ClosestAlleles.csv"
	}
	return c.Prefix() + ".ClosestAllele.csv"
}
