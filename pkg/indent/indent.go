// Copyright 2026 The jsonkit Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
// Package indent prefixes every line of a text stream with a fixed
// string. It aligns multi-line pre-rendered JSON fragments spliced
// into a json.Writer's output (see json.Writer.WriteRaw) onto the
// writer's current nesting depth, and indents the cmd/jsonfmt
// token-dump diagnostic output.
package indent

import (
	"bytes"
	"io"
)

// String returns in with prefix inserted before each line: a trailing
// newline keeps its prefix (a blank final line still gets indented),
// but String never appends a prefix after a final line that has no
// trailing newline character of its own beyond what was already
// there.
func String(prefix, in string) string {
	return string(Bytes([]byte(prefix), []byte(in)))
}

// Bytes is the []byte equivalent of String.
func Bytes(prefix, in []byte) []byte {
	if len(in) == 0 {
		return nil
	}
	var out bytes.Buffer
	w := NewWriter(&out, string(prefix))
	w.Write(in)
	return out.Bytes()
}

// Writer wraps an io.Writer, inserting prefix at the start of every
// line written through it.
type Writer struct {
	sink    io.Writer
	prefix  string
	atStart bool
}

// NewWriter returns a Writer that copies to sink, prefixing every
// line with prefix.
func NewWriter(sink io.Writer, prefix string) *Writer {
	return &Writer{sink: sink, prefix: prefix, atStart: true}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		if w.atStart {
			if _, err := w.sink.Write([]byte(w.prefix)); err != nil {
				return written, err
			}
			w.atStart = false
		}
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			n, err := w.sink.Write(p)
			written += n
			return written, err
		}
		n, err := w.sink.Write(p[:i+1])
		written += n
		if err != nil {
			return written, err
		}
		w.atStart = true
		p = p[i+1:]
	}
	return written, nil
}
