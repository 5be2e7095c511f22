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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type ev struct {
	tok TokenType
	val interface{}
}

func drain(t *testing.T, r *Reader) []ev {
	t.Helper()
	var got []ev
	for {
		ok, err := r.Read()
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if !ok {
			break
		}
		got = append(got, ev{r.Token, r.Value})
	}
	return got
}

func checkEvents(t *testing.T, got, want []ev) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(ev{})); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}

func TestReaderObjectAndArray(t *testing.T) {
	r := NewReaderString(`{"a":1,"b":[true,null,"x"]}`)
	got := drain(t, r)
	want := []ev{
		{ObjectStart, nil},
		{PropertyName, "a"},
		{Int, int32(1)},
		{PropertyName, "b"},
		{ArrayStart, nil},
		{Boolean, true},
		{Null, nil},
		{String, "x"},
		{ArrayEnd, nil},
		{ObjectEnd, nil},
	}
	checkEvents(t, got, want)
	if !r.EndOfJSON() {
		t.Errorf("expected EndOfJSON after draining the document")
	}
}

func TestReaderNumberVariety(t *testing.T) {
	r := NewReaderString(`[1, 2.5, 3e2, 9999999999]`)
	got := drain(t, r)
	want := []ev{
		{ArrayStart, nil},
		{Int, int32(1)},
		{Double, float64(2.5)},
		{Double, float64(300)},
		{Long, int64(9999999999)},
		{ArrayEnd, nil},
	}
	checkEvents(t, got, want)
}

func TestReaderExtensions(t *testing.T) {
	r := NewReaderString("/*c*/ {'k': 'v' /* c */} // tail")
	got := drain(t, r)
	want := []ev{
		{ObjectStart, nil},
		{PropertyName, "k"},
		{String, "v"},
		{ObjectEnd, nil},
	}
	checkEvents(t, got, want)
}

func TestReaderEmptyContainers(t *testing.T) {
	r := NewReaderString(`[{},[]]`)
	got := drain(t, r)
	want := []ev{
		{ArrayStart, nil},
		{ObjectStart, nil},
		{ObjectEnd, nil},
		{ArrayStart, nil},
		{ArrayEnd, nil},
		{ArrayEnd, nil},
	}
	checkEvents(t, got, want)
}

func TestReaderTruncatedInput(t *testing.T) {
	r := NewReaderString(`{"a":`)
	_, err := drainErr(r)
	if err == nil {
		t.Fatalf("expected a truncation error")
	}
}

func TestReaderUnexpectedToken(t *testing.T) {
	r := NewReaderString(`{,}`)
	_, err := drainErr(r)
	if err == nil {
		t.Fatalf("expected a parse error")
	}
}

func drainErr(r *Reader) ([]ev, error) {
	var got []ev
	for {
		ok, err := r.Read()
		if err != nil {
			return got, err
		}
		if !ok {
			return got, nil
		}
		got = append(got, ev{r.Token, r.Value})
	}
}

func TestReaderSkipValue(t *testing.T) {
	r := NewReaderString(`{"a":{"nested":[1,2,3]},"b":2}`)

	ok, err := r.Read()
	if err != nil || !ok || r.Token != ObjectStart {
		t.Fatalf("expected ObjectStart, got %v %v %v", ok, err, r.Token)
	}
	ok, err = r.Read()
	if err != nil || !ok || r.Token != PropertyName || r.Value != "a" {
		t.Fatalf("expected PropertyName(a), got %v %v %v %v", ok, err, r.Token, r.Value)
	}
	if err := r.SkipValue(); err != nil {
		t.Fatalf("SkipValue: %v", err)
	}
	ok, err = r.Read()
	if err != nil || !ok || r.Token != PropertyName || r.Value != "b" {
		t.Fatalf("expected PropertyName(b), got %v %v %v %v", ok, err, r.Token, r.Value)
	}
	ok, err = r.Read()
	if err != nil || !ok || r.Token != Int || r.Value != int32(2) {
		t.Fatalf("expected Int(2), got %v %v %v %v", ok, err, r.Token, r.Value)
	}
}

func TestReaderSingleScalarDocument(t *testing.T) {
	r := NewReaderString(`1`)
	got := drain(t, r)
	checkEvents(t, got, []ev{{Int, int32(1)}})
	if !r.EndOfJSON() {
		t.Errorf("expected EndOfJSON after draining a scalar document")
	}
}
