// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"

	"github.com/carbocation/pfx"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

// DataType is the compression format of a stream.
type DataType byte

const (
	NoCompression DataType = iota
	Gzip
	Zip
	XZ
	Zlib
	BZip2
)

func (t DataType) String() string {
	switch t {
	case Gzip:
		return "gzip"
	case Zip:
		return "zip"
	case XZ:
		return "xz"
	case Zlib:
		return "zlib"
	case BZip2:
		return "bzip2"
	}
	return "none"
}

// Byte signatures from https://stackoverflow.com/a/19127748/199475, checked
// in this order.
var signatures = []struct {
	typ DataType
	sig []byte
}{
	{XZ, []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}},
	{Zip, []byte{0x50, 0x4b, 0x03, 0x04}},
	{Gzip, []byte{0x1f, 0x8b, 0x08}},
	{BZip2, []byte{0x42, 0x5a, 0x68}},
	{Zlib, []byte{0x78, 0x9c}},
	{Zlib, []byte{0x78, 0x01}},
	{Zlib, []byte{0x78, 0xda}},
}

// Detect returns the compression format indicated by the leading bytes of
// a stream.
func Detect(head []byte) DataType {
	for _, s := range signatures {
		if bytes.HasPrefix(head, s.sig) {
			return s.typ
		}
	}
	return NoCompression
}

// Decompress wraps rc in a decompressing reader chosen by peeking at its
// leading bytes. Closing the returned reader closes rc.
func Decompress(rc io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)
	// Short streams cannot hold a signature and are passed through.
	head, err := br.Peek(6)
	if err != nil && err != io.EOF {
		rc.Close()
		return nil, pfx.Err(err)
	}

	var r io.Reader
	err = nil
	switch Detect(head) {
	case Gzip:
		r, err = gzip.NewReader(br)
	case Zip:
		zr := zipstream.NewReader(br)
		_, err = zr.Next()
		r = zr
	case XZ:
		r, err = xz.NewReader(br, 0)
	case Zlib:
		r, err = zlib.NewReader(br)
	case BZip2:
		r = bzip2.NewReader(br)
	default:
		r = br
	}
	if err != nil {
		rc.Close()
		return nil, pfx.Err(err)
	}
	return readCloser{Reader: r, close: rc.Close}, nil
}

type readCloser struct {
	io.Reader
	close func() error
}

func (r readCloser) Close() error { return r.close() }
