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

	"github.com/kylelemons/godebug/pretty"
)

func TestWriterCompactObject(t *testing.T) {
	w := NewStringWriter()
	must(t, w.WriteObjectStart())
	must(t, w.WritePropertyName("a"))
	must(t, w.WriteInt32(1))
	must(t, w.WritePropertyName("b"))
	must(t, w.WriteString("x"))
	must(t, w.WriteObjectEnd())

	want := `{"a":1,"b":"x"}`
	if got := w.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriterPrettyAlignment(t *testing.T) {
	w := NewStringWriter()
	w.PrettyPrint = true
	w.IndentValue = 2
	must(t, w.WriteObjectStart())
	must(t, w.WritePropertyName("a"))
	must(t, w.WriteInt32(1))
	must(t, w.WritePropertyName("bb"))
	must(t, w.WriteInt32(2))
	must(t, w.WriteObjectEnd())

	want := "{\n  \"a\" : 1,\n  \"bb\": 2\n}"
	if got := w.String(); got != want {
		t.Errorf("pretty-printed output mismatch:\n%s", pretty.Compare(want, got))
	}
}

func TestWriterValidationViolation(t *testing.T) {
	w := NewStringWriter()
	must(t, w.WriteObjectStart())
	err := w.WriteInt32(1)
	if err == nil {
		t.Fatalf("expected an error, got nil")
	}
	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("expected *SyntaxError, got %T", err)
	}
	if se.Msg != "Can't add a value here" {
		t.Errorf("got message %q, want %q", se.Msg, "Can't add a value here")
	}
}

func TestWriterArray(t *testing.T) {
	w := NewStringWriter()
	must(t, w.WriteArrayStart())
	must(t, w.WriteBool(true))
	must(t, w.WriteNull())
	must(t, w.WriteString("x"))
	must(t, w.WriteArrayEnd())

	want := `[true,null,"x"]`
	if got := w.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriterEmptyContainers(t *testing.T) {
	w := NewStringWriter()
	w.PrettyPrint = true
	w.IndentValue = 2
	must(t, w.WriteArrayStart())
	must(t, w.WriteObjectStart())
	must(t, w.WriteObjectEnd())
	must(t, w.WriteArrayStart())
	must(t, w.WriteArrayEnd())
	must(t, w.WriteArrayEnd())

	want := "[\n  {},\n  []\n]"
	if got := w.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriterCloseArrayOnObjectFails(t *testing.T) {
	w := NewStringWriter()
	must(t, w.WriteObjectStart())
	if err := w.WriteArrayEnd(); err == nil {
		t.Fatalf("expected an error closing an array over an object frame")
	}
}

func TestWriterDoubleAnnotation(t *testing.T) {
	w := NewStringWriter()
	must(t, w.WriteArrayStart())
	must(t, w.WriteDouble(1))
	must(t, w.WriteDouble(1.5))
	must(t, w.WriteArrayEnd())

	want := `[1.0,1.5]`
	if got := w.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriterEscaping(t *testing.T) {
	w := NewStringWriter()
	must(t, w.WriteString("a\n\"\\b"))

	want := `"a\n\"\\b"`
	if got := w.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriterLowerCaseProperties(t *testing.T) {
	w := NewStringWriter()
	w.LowerCaseProperties = true
	must(t, w.WriteObjectStart())
	must(t, w.WritePropertyName("Name"))
	must(t, w.WriteInt32(1))
	must(t, w.WriteObjectEnd())

	want := `{"name":1}`
	if got := w.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
