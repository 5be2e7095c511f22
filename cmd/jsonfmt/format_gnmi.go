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

	"github.com/lexparse/jsonkit/pkg/gnmiwire"
)

func init() {
	register(&formatter{
		name: "gnmi",
		f:    doGNMI,
		help: "wrap each document in a gnmi.TypedValue JSON_IETF payload and print its bytes",
	})
}

func doGNMI(docs []string) {
	for _, doc := range docs {
		tv, err := gnmiwire.EncodeString(doc)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			exitStatus = 1
			continue
		}
		fmt.Println(string(tv.GetJsonIetfVal()))
	}
}
