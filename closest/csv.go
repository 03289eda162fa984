// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package closest

import (
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// Labels is a list of labels serialised in list literal form, for example
// ['TaxonA__1', 'TaxonB__2'].
type Labels []string

// MarshalCSV satisfies gocsv.TypeMarshaller.
func (l Labels) MarshalCSV() (string, error) {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range l {
		if i != 0 {
			b.WriteString(", ")
		}
		writeQuoted(&b, s)
	}
	b.WriteByte(']')
	return b.String(), nil
}

// writeQuoted writes s as a single quoted string literal, switching to
// double quotes when s holds a single quote and no double quote.
func writeQuoted(b *strings.Builder, s string) {
	q := byte('\'')
	if strings.IndexByte(s, '\'') >= 0 && strings.IndexByte(s, '"') < 0 {
		q = '"'
	}
	b.WriteByte(q)
	for i := 0; i < len(s); i++ {
		if s[i] == q || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte(q)
}

// UnmarshalCSV satisfies gocsv.TypeUnmarshaller.
func (l *Labels) UnmarshalCSV(f string) error {
	f = strings.TrimSpace(f)
	if len(f) < 2 || f[0] != '[' || f[len(f)-1] != ']' {
		return fmt.Errorf("closest: invalid label list %q", f)
	}
	body := f[1 : len(f)-1]
	out := Labels{}
	for i := 0; i < len(body); {
		switch c := body[i]; {
		case c == ' ' || c == ',':
			i++
		case c == '\'' || c == '"':
			var b strings.Builder
			j := i + 1
			for ; j < len(body) && body[j] != c; j++ {
				if body[j] == '\\' && j+1 < len(body) {
					j++
				}
				b.WriteByte(body[j])
			}
			if j == len(body) {
				return fmt.Errorf("closest: unterminated label in %q", f)
			}
			out = append(out, b.String())
			i = j + 1
		default:
			return fmt.Errorf("closest: unexpected %q in label list %q", c, f)
		}
	}
	*l = out
	return nil
}

// WriteCSV writes the matches as a two column CSV table with the header
// Label,BestHits.
func (ms Matches) WriteCSV(w io.Writer) error {
	if len(ms) == 0 {
		_, err := io.WriteString(w, "Label,BestHits\n")
		return err
	}
	if err := gocsv.Marshal(ms, w); err != nil {
		return pfx.Err(err)
	}
	return nil
}

// ReadCSV reads matches in the format written by Matches.WriteCSV.
func ReadCSV(r io.Reader) (Matches, error) {
	var ms Matches
	if err := gocsv.Unmarshal(r, &ms); err != nil {
		return nil, pfx.Err(err)
	}
	return ms, nil
}
