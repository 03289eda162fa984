// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package phylo reads phylogenies and computes patristic distances between
// their tips.
package phylo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/evolbioinfo/gotree/io/newick"
	"github.com/evolbioinfo/gotree/tree"
	"github.com/polyploid/phasedist/distmat"
)

var (
	ErrFormat = errors.New("phylo: unsupported tree format")
	ErrNoTips = errors.New("phylo: tree has no tips")
)

// Formats lists the accepted tree format names.
var Formats = []string{"newick"}

// Read reads a single tree in the named format from r.
func Read(r io.Reader, format string) (*tree.Tree, error) {
	switch strings.ToLower(format) {
	case "newick":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, pfx.Err(err)
		}
		if text := strings.TrimSpace(string(data)); !strings.HasPrefix(text, "(") && !strings.HasPrefix(text, "[") {
			return singleTip(text)
		}
		t, err := newick.NewParser(bytes.NewReader(data)).Parse()
		if err != nil {
			return nil, pfx.Err(err)
		}
		return t, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrFormat, format)
}

// singleTip returns the one node tree described by a Newick string without
// parentheses, such as "A;" or "A:0.1;".
func singleTip(text string) (*tree.Tree, error) {
	name, ok := strings.CutSuffix(text, ";")
	if ok {
		if i := strings.IndexByte(name, ':'); i >= 0 {
			name = name[:i]
		}
		name = strings.Trim(strings.TrimSpace(name), "'")
	}
	if !ok || name == "" || strings.ContainsAny(name, "(),;") {
		return nil, pfx.Err(fmt.Errorf("invalid newick tree %q", text))
	}
	t := tree.NewTree()
	n := t.NewNode()
	n.SetName(name)
	t.SetRoot(n)
	return t, nil
}

// Distances returns the matrix of patristic distances between the tips of t,
// in tip order. Edges without a length contribute nothing to a path.
func Distances(t *tree.Tree) (*distmat.Matrix, error) {
	tips := t.Tips()
	if r := t.Root(); len(tips) == 0 && r != nil && r.Nneigh() == 0 {
		tips = []*tree.Node{r}
	}
	if len(tips) == 0 {
		return nil, ErrNoTips
	}
	names := make([]string, len(tips))
	index := make(map[*tree.Node]int, len(tips))
	for i, n := range tips {
		names[i] = n.Name()
		index[n] = i
	}
	m, err := distmat.NewZero(names)
	if err != nil {
		return nil, fmt.Errorf("phylo: %w", err)
	}
	for i, n := range tips {
		for other, d := range pathLengths(n) {
			if j, ok := index[other]; ok && j > i {
				m.SetSym(i, j, d)
			}
		}
	}
	return m, nil
}

// pathLengths returns the summed edge lengths from start to every node of
// its tree.
func pathLengths(start *tree.Node) map[*tree.Node]float64 {
	type step struct {
		node, prev *tree.Node
		dist       float64
	}
	dist := make(map[*tree.Node]float64)
	stack := []step{{node: start}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		dist[cur.node] = cur.dist

		edges := cur.node.Edges()
		for k, next := range cur.node.Neigh() {
			if next == cur.prev {
				continue
			}
			l := edges[k].Length()
			if l < 0 {
				l = 0
			}
			stack = append(stack, step{node: next, prev: cur.node, dist: cur.dist + l})
		}
	}
	return dist
}
