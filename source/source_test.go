// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	check "gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

const fasta = ">TaxonA__1\nACGT\n>TaxonA__2\nACGA\n"

func (s *S) TestDetect(c *check.C) {
	for i, t := range []struct {
		head []byte
		want DataType
	}{
		{head: []byte(">seq"), want: NoCompression},
		{head: []byte("(A:1,B:2);"), want: NoCompression},
		{head: nil, want: NoCompression},
		{head: []byte{0x1f, 0x8b, 0x08, 0x00}, want: Gzip},
		{head: []byte{0x50, 0x4b, 0x03, 0x04, 0x14}, want: Zip},
		{head: []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}, want: XZ},
		{head: []byte{0x42, 0x5a, 0x68, 0x39}, want: BZip2},
		{head: []byte{0x78, 0x9c, 0x00}, want: Zlib},
	} {
		c.Check(Detect(t.head), check.Equals, t.want, check.Commentf("Test %d", i))
	}
	c.Check(XZ.String(), check.Equals, "xz")
}

func (s *S) TestOpen(c *check.C) {
	dir := c.MkDir()

	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	gw.Write([]byte(fasta))
	gw.Close()

	var zl bytes.Buffer
	zw := zlib.NewWriter(&zl)
	zw.Write([]byte(fasta))
	zw.Close()

	var zp bytes.Buffer
	pw := zip.NewWriter(&zp)
	f, err := pw.Create("aln.fasta")
	c.Assert(err, check.Equals, nil)
	f.Write([]byte(fasta))
	pw.Close()

	for i, t := range []struct {
		name string
		data []byte
	}{
		{name: "plain.fasta", data: []byte(fasta)},
		{name: "aln.fasta.gz", data: gz.Bytes()},
		{name: "aln.fasta.z", data: zl.Bytes()},
		{name: "aln.zip", data: zp.Bytes()},
	} {
		path := filepath.Join(dir, t.name)
		c.Assert(os.WriteFile(path, t.data, 0o644), check.Equals, nil)

		rc, err := Open(context.Background(), path)
		c.Assert(err, check.Equals, nil, check.Commentf("Test %d", i))
		got, err := io.ReadAll(rc)
		c.Check(err, check.Equals, nil, check.Commentf("Test %d", i))
		c.Check(string(got), check.Equals, fasta, check.Commentf("Test %d", i))
		c.Check(rc.Close(), check.Equals, nil)
	}
}

func (s *S) TestOpenShort(c *check.C) {
	dir := c.MkDir()
	for i, data := range []string{"", ">", "A;", ">A\nA\n", ">A\nAC\n"} {
		path := filepath.Join(dir, fmt.Sprintf("short%d", i))
		c.Assert(os.WriteFile(path, []byte(data), 0o644), check.Equals, nil)
		rc, err := Open(context.Background(), path)
		c.Assert(err, check.Equals, nil, check.Commentf("Test %d", i))
		got, err := io.ReadAll(rc)
		c.Check(err, check.Equals, nil, check.Commentf("Test %d", i))
		c.Check(string(got), check.Equals, data, check.Commentf("Test %d", i))
		c.Check(rc.Close(), check.Equals, nil)
	}
}

func (s *S) TestOpenErrors(c *check.C) {
	_, err := Open(context.Background(), filepath.Join(c.MkDir(), "missing.fasta"))
	c.Check(err, check.NotNil)

	_, err = Open(context.Background(), "gs://bucket-only")
	c.Check(err, check.ErrorMatches, ".*invalid google storage path.*")
}

func (s *S) TestNames(c *check.C) {
	c.Check(IsRemote("gs://bucket/dir/aln.fasta"), check.Equals, true)
	c.Check(IsRemote("/data/aln.fasta"), check.Equals, false)
	c.Check(Base("gs://bucket/dir/aln.fasta"), check.Equals, "aln.fasta")
	c.Check(Base("data/aln.fasta"), check.Equals, "data/aln.fasta")
}
