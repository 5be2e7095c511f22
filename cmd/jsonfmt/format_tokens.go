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

	"github.com/lexparse/jsonkit/pkg/indent"
	"github.com/lexparse/jsonkit/pkg/json"
)

func init() {
	register(&formatter{
		name: "tokens",
		f:    doTokens,
		help: "dump the Reader's token stream, one event per line, indented by nesting depth",
	})
}

func doTokens(docs []string) {
	for i, doc := range docs {
		if len(docs) > 1 {
			fmt.Printf("--- document %d ---\n", i)
		}
		if err := dumpTokens(doc); err != nil {
			fmt.Fprintln(os.Stderr, err)
			exitStatus = 1
		}
	}
}

func dumpTokens(doc string) error {
	r := json.NewReaderString(doc)
	depth := 0
	for {
		ok, err := r.Read()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if r.Token == json.ObjectEnd || r.Token == json.ArrayEnd {
			depth--
		}
		w := indent.NewWriter(os.Stdout, indentOf(depth))
		if r.Value != nil {
			fmt.Fprintf(w, "%s %v\n", r.Token, r.Value)
		} else {
			fmt.Fprintf(w, "%s\n", r.Token)
		}
		if r.Token == json.ObjectStart || r.Token == json.ArrayStart {
			depth++
		}
	}
}

func indentOf(depth int) string {
	out := make([]byte, depth*2)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}
