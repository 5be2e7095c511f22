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

import "github.com/pborman/getopt"

var prettyIndent = 4

func init() {
	flags := getopt.New()
	flags.IntVarLong(&prettyIndent, "indent", 0, "spaces per indent level", "N")
	register(&formatter{
		name:  "pretty",
		f:     doPretty,
		help:  "re-render each document with newlines, indentation and property alignment",
		flags: flags,
	})
}

func doPretty(docs []string) {
	renderEach(docs, true, prettyIndent)
}
