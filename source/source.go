// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package source opens sequence, tree and table inputs from local files or
// Google Cloud Storage, transparently decompressing them.
package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

const gsPrefix = "gs://"

// IsRemote returns whether name refers to a Google Cloud Storage object.
func IsRemote(name string) bool { return strings.HasPrefix(name, gsPrefix) }

// Base returns the local path used to name outputs derived from name.
// Local names are returned unchanged and remote names are reduced to the
// object's base name.
func Base(name string) string {
	if IsRemote(name) {
		return path.Base(strings.TrimPrefix(name, gsPrefix))
	}
	return name
}

// Open opens the named input. Names starting with gs:// are read from
// Google Cloud Storage using default credentials. The returned reader
// decompresses gzip, bzip2, zlib, xz and zip streams.
func Open(ctx context.Context, name string) (io.ReadCloser, error) {
	var (
		rc  io.ReadCloser
		err error
	)
	if IsRemote(name) {
		rc, err = openGS(ctx, name)
	} else {
		rc, err = os.Open(name)
	}
	if err != nil {
		return nil, pfx.Err(err)
	}
	return Decompress(rc)
}

func openGS(ctx context.Context, name string) (io.ReadCloser, error) {
	parts := strings.SplitN(strings.TrimPrefix(name, gsPrefix), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("source: invalid google storage path %q", name)
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	r, err := client.Bucket(parts[0]).Object(parts[1]).NewReader(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	return &gsReader{Reader: r, client: client}, nil
}

// gsReader closes the storage client along with the object reader.
type gsReader struct {
	*storage.Reader
	client *storage.Client
}

func (r *gsReader) Close() error {
	err := r.Reader.Close()
	if cerr := r.client.Close(); err == nil {
		err = cerr
	}
	return err
}
