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
package main

import (
	"fmt"
	"os"

	"github.com/lexparse/jsonkit/pkg/json"
)

func init() {
	register(&formatter{
		name: "compact",
		f:    doCompact,
		help: "re-render each document as minimal JSON, no whitespace",
	})
}

func doCompact(docs []string) {
	renderEach(docs, false, 0)
}

// renderEach re-lexes and re-parses each doc through a json.Reader,
// replays the token stream onto a json.Writer configured per pretty/
// indentWidth, and writes the result to standard output followed by a
// newline. A doc that fails to round-trip is reported on standard
// error and skipped; exitStatus is set so main exits non-zero once all
// docs have been attempted.
func renderEach(docs []string, pretty bool, indentWidth int) {
	for _, doc := range docs {
		out, err := render(doc, pretty, indentWidth)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			exitStatus = 1
			continue
		}
		fmt.Println(out)
	}
}

func render(doc string, pretty bool, indentWidth int) (string, error) {
	r := json.NewReaderString(doc)
	w := json.NewStringWriter()
	w.PrettyPrint = pretty
	if indentWidth > 0 {
		w.IndentValue = indentWidth
	}
	if err := copyDocument(r, w); err != nil {
		return "", err
	}
	return w.String(), nil
}

// copyDocument replays one top-level value from r onto w, recursing
// into nested containers. It is format_compact/format_pretty's shared
// token-stream plumbing, the same shape as gnmiwire's copyValue/replay
// but writing to the caller's json.Writer rather than one whose output
// is wrapped in a gnmi.TypedValue.
func copyDocument(r *json.Reader, w *json.Writer) error {
	ok, err := r.Read()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return copyValue(r, w, r.Token, r.Value)
}

func copyValue(r *json.Reader, w *json.Writer, tok json.TokenType, val interface{}) error {
	switch tok {
	case json.ObjectStart:
		if err := w.WriteObjectStart(); err != nil {
			return err
		}
		for {
			ok, err := r.Read()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if r.Token == json.ObjectEnd {
				return w.WriteObjectEnd()
			}
			if err := w.WritePropertyName(r.Value.(string)); err != nil {
				return err
			}
			if err := copyDocument(r, w); err != nil {
				return err
			}
		}
	case json.ArrayStart:
		if err := w.WriteArrayStart(); err != nil {
			return err
		}
		for {
			ok, err := r.Read()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if r.Token == json.ArrayEnd {
				return w.WriteArrayEnd()
			}
			if err := copyValue(r, w, r.Token, r.Value); err != nil {
				return err
			}
		}
	case json.String:
		return w.WriteString(val.(string))
	case json.Boolean:
		return w.WriteBool(val.(bool))
	case json.Null:
		return w.WriteNull()
	case json.Int:
		return w.WriteInt32(val.(int32))
	case json.Long:
		switch v := val.(type) {
		case int64:
			return w.WriteInt64(v)
		case uint64:
			return w.WriteUint64(v)
		}
	case json.Double:
		return w.WriteDouble(val.(float64))
	}
	return nil
}
