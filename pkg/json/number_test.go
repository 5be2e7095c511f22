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
package json

import "testing"

func TestClassifyNumber(t *testing.T) {
	for x, tt := range []struct {
		lit  string
		want TokenType
		val  interface{}
	}{
		{"0", Int, int32(0)},
		{"42", Int, int32(42)},
		{"-42", Int, int32(-42)},
		{"2147483647", Int, int32(2147483647)},
		{"2147483648", Long, int64(2147483648)},
		{"9223372036854775807", Long, int64(9223372036854775807)},
		{"9999999999", Long, int64(9999999999)},
		{"18446744073709551615", Long, uint64(18446744073709551615)},
		{"2.5", Double, float64(2.5)},
		{"3e2", Double, float64(300)},
		{"-1.5e-2", Double, float64(-0.015)},
	} {
		tt := tt
		tok, val := classifyNumber(tt.lit)
		if tok != tt.want {
			t.Errorf("#%d classifyNumber(%q): token = %v, want %v", x, tt.lit, tok, tt.want)
		}
		if val != tt.val {
			t.Errorf("#%d classifyNumber(%q): value = %#v, want %#v", x, tt.lit, val, tt.val)
		}
	}
}

func TestHasFloatMarker(t *testing.T) {
	for x, tt := range []struct {
		lit  string
		want bool
	}{
		{"42", false},
		{"-1", false},
		{"1.5", true},
		{"1e2", true},
		{"1E2", true},
		{"0", false},
	} {
		if got := hasFloatMarker(tt.lit); got != tt.want {
			t.Errorf("#%d hasFloatMarker(%q) = %v, want %v", x, tt.lit, got, tt.want)
		}
	}
}
