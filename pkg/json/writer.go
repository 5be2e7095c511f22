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
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/lexparse/jsonkit/pkg/indent"
)

// frame is one open container's bookkeeping, per spec §3's Writer
// state: a small, shallow stack (rarely more than ~32 deep) is kept as
// a contiguous slice rather than a linked list, per spec §9.
type frame struct {
	inArray        bool
	inObject       bool
	expectingValue bool
	count          int
	padding        int
}

const defaultIndent = 4

// Writer validates and renders a sequence of value/structural calls as
// JSON text. It is the mirror image of Reader: callers drive it with
// method calls instead of pulling token events from it.
type Writer struct {
	sink io.Writer

	stack        []frame
	hasReachedEnd bool
	depth        int // open-container depth, used for indentation width

	// PrettyPrint enables newline/indent/alignment formatting.
	PrettyPrint bool
	// IndentValue is the width, in spaces, of one indent step. Must be
	// positive; defaults to 4.
	IndentValue int
	// Validate enables the call-ordering state machine. Defaults to
	// true; when false, calls are rendered without precondition
	// checks (the caller is responsible for well-formedness).
	Validate bool
	// LowerCaseProperties lower-cases property names (locale-invariant
	// case folding) before they are emitted.
	LowerCaseProperties bool
}

// NewWriter returns a Writer that renders to sink.
func NewWriter(sink io.Writer) *Writer {
	w := &Writer{
		sink:        sink,
		IndentValue: defaultIndent,
		Validate:    true,
	}
	w.reset()
	return w
}

// NewStringWriter returns a Writer that owns an internal buffer. Call
// String to retrieve the accumulated output.
func NewStringWriter() *Writer {
	return NewWriter(&bytes.Buffer{})
}

// String returns the contents of the internally owned buffer. It
// panics if the Writer was constructed with an external sink via
// NewWriter(non-*bytes.Buffer) — callers that supply their own sink
// already have a handle on it.
func (w *Writer) String() string {
	buf, ok := w.sink.(*bytes.Buffer)
	if !ok {
		panic("json: String called on a Writer with an external sink")
	}
	return buf.String()
}

// Reset clears all validation state and, if the sink is a
// *bytes.Buffer, empties it, permitting the Writer to be reused for a
// new document. This applies to the internal buffer of NewStringWriter
// and equally to a *bytes.Buffer the caller passed to NewWriter.
func (w *Writer) Reset() {
	if buf, ok := w.sink.(*bytes.Buffer); ok {
		buf.Reset()
	}
	w.reset()
}

func (w *Writer) reset() {
	w.stack = append(w.stack[:0], frame{})
	w.hasReachedEnd = false
	w.depth = 0
}

func (w *Writer) top() *frame { return &w.stack[len(w.stack)-1] }

// --- validation ---

func (w *Writer) checkCanWriteValue() error {
	if !w.Validate {
		return nil
	}
	if w.hasReachedEnd {
		return newWriterError("A complete JSON symbol has already been written")
	}
	f := w.top()
	if f.inArray {
		return nil
	}
	if f.inObject && f.expectingValue {
		return nil
	}
	if len(w.stack) == 1 && f.count == 0 {
		// The root frame accepts exactly one top-level value.
		return nil
	}
	return newWriterError("Can't add a value here")
}

func (w *Writer) checkCanWritePropertyName() error {
	if !w.Validate {
		return nil
	}
	if w.hasReachedEnd {
		return newWriterError("A complete JSON symbol has already been written")
	}
	f := w.top()
	if !f.inObject || f.expectingValue {
		return newWriterError("Can't add a property here")
	}
	return nil
}

func (w *Writer) checkCanCloseArray() error {
	if !w.Validate {
		return nil
	}
	if !w.top().inArray {
		return newWriterError("Can't close an array here")
	}
	return nil
}

func (w *Writer) checkCanCloseObject() error {
	if !w.Validate {
		return nil
	}
	f := w.top()
	if !f.inObject {
		return newWriterError("Can't close an object here")
	}
	if f.expectingValue {
		return newWriterError("Expected a property")
	}
	return nil
}

// --- structural calls ---

func (w *Writer) WriteArrayStart() error {
	if err := w.checkCanWriteValue(); err != nil {
		return err
	}
	if err := w.beforeChild(); err != nil {
		return err
	}
	if err := w.emit('['); err != nil {
		return err
	}
	w.push(frame{inArray: true})
	return nil
}

func (w *Writer) WriteArrayEnd() error {
	if err := w.checkCanCloseArray(); err != nil {
		return err
	}
	closed := *w.top()
	w.pop()
	return w.closeContainer(']', closed.count)
}

func (w *Writer) WriteObjectStart() error {
	if err := w.checkCanWriteValue(); err != nil {
		return err
	}
	if err := w.beforeChild(); err != nil {
		return err
	}
	if err := w.emit('{'); err != nil {
		return err
	}
	w.push(frame{inObject: true, expectingValue: false, padding: 1})
	return nil
}

func (w *Writer) WriteObjectEnd() error {
	if err := w.checkCanCloseObject(); err != nil {
		return err
	}
	closed := *w.top()
	w.pop()
	return w.closeContainer('}', closed.count)
}

func (w *Writer) push(f frame) {
	w.stack = append(w.stack, f)
	w.depth++
}

func (w *Writer) pop() {
	w.stack = w.stack[:len(w.stack)-1]
	w.depth--
}

func (w *Writer) closeContainer(close byte, childCount int) error {
	if w.PrettyPrint && childCount > 0 {
		if err := w.writeString("\n"); err != nil {
			return err
		}
		if err := w.writeIndent(); err != nil {
			return err
		}
	}
	if err := w.emit(close); err != nil {
		return err
	}
	w.afterChildWritten()
	if len(w.stack) == 1 {
		w.hasReachedEnd = true
	}
	return nil
}

// WritePropertyName writes a property name in the current object. The
// name is recorded for pretty-mode alignment before it is escaped and
// emitted.
func (w *Writer) WritePropertyName(name string) error {
	if err := w.checkCanWritePropertyName(); err != nil {
		return err
	}
	f := w.top()
	if w.LowerCaseProperties {
		name = foldName(name)
	}
	if err := w.beforeSibling(); err != nil {
		return err
	}
	// pad is computed from padding as it stood before this name is
	// folded in, so a name can be padded for alignment against longer
	// names seen earlier, but never against itself or later ones —
	// padding only ever grows, and earlier, shorter-padded names keep
	// the spacing they were written with (spec §9's
	// intentional-by-construction padding-never-shrinks quirk).
	pad := f.padding - len(name) + 1
	if pad < 0 {
		pad = 0
	}
	if len(name) > f.padding {
		f.padding = len(name)
	}
	if err := w.writeEscapedString(name); err != nil {
		return err
	}
	if w.PrettyPrint {
		if err := w.writeString(strings.Repeat(" ", pad)); err != nil {
			return err
		}
		if err := w.writeString(": "); err != nil {
			return err
		}
	} else {
		if err := w.emit(':'); err != nil {
			return err
		}
	}
	f.expectingValue = true
	return nil
}

// --- scalars ---

func (w *Writer) WriteBool(v bool) error {
	if err := w.checkCanWriteValue(); err != nil {
		return err
	}
	if err := w.beforeChild(); err != nil {
		return err
	}
	if v {
		return w.afterScalar(w.writeString("true"))
	}
	return w.afterScalar(w.writeString("false"))
}

func (w *Writer) WriteNull() error {
	if err := w.checkCanWriteValue(); err != nil {
		return err
	}
	if err := w.beforeChild(); err != nil {
		return err
	}
	return w.afterScalar(w.writeString("null"))
}

func (w *Writer) WriteString(v string) error {
	if err := w.checkCanWriteValue(); err != nil {
		return err
	}
	if err := w.beforeChild(); err != nil {
		return err
	}
	return w.afterScalar(w.writeEscapedString(v))
}

func (w *Writer) WriteInt32(v int32) error { return w.writeNumberLiteral(strconv.FormatInt(int64(v), 10)) }
func (w *Writer) WriteInt64(v int64) error { return w.writeNumberLiteral(strconv.FormatInt(v, 10)) }
func (w *Writer) WriteUint64(v uint64) error {
	return w.writeNumberLiteral(strconv.FormatUint(v, 10))
}

// WriteDouble renders v so that the emitted token is unambiguously a
// double on a subsequent parse: if the formatted text has neither '.'
// nor 'E', ".0" is appended (the "double annotation law" of spec §8).
func (w *Writer) WriteDouble(v float64) error {
	lit := strconv.FormatFloat(v, 'G', -1, 64)
	if !strings.ContainsAny(lit, ".E") {
		lit += ".0"
	}
	return w.writeNumberLiteral(lit)
}

func (w *Writer) writeNumberLiteral(lit string) error {
	if err := w.checkCanWriteValue(); err != nil {
		return err
	}
	if err := w.beforeChild(); err != nil {
		return err
	}
	return w.afterScalar(w.writeString(lit))
}

// WriteRaw splices a pre-rendered JSON fragment, the extension point
// the excluded reflection mapper uses when a value already holds its
// own rendered form. WriteRaw does not parse or validate fragment's
// contents — only that a value is allowed here at all — and indents
// continuation lines onto the writer's current depth so a multi-line
// fragment lines up under pretty-printing.
func (w *Writer) WriteRaw(fragment string) error {
	if err := w.checkCanWriteValue(); err != nil {
		return err
	}
	if err := w.beforeChild(); err != nil {
		return err
	}
	// The first line follows the separator beforeChild already wrote;
	// only the lines after it take the indent prefix.
	first, rest := fragment, ""
	if i := strings.IndexByte(fragment, '\n'); i >= 0 {
		first, rest = fragment[:i+1], fragment[i+1:]
	}
	if err := w.writeString(first); err != nil {
		return err
	}
	iw := indent.NewWriter(w.sink, w.indentPrefix())
	if _, err := iw.Write([]byte(rest)); err != nil {
		return err
	}
	return w.afterScalar(nil)
}

// --- shared child bookkeeping ---

// beforeChild emits the separating comma/newline/indent a new array
// (or top-level) child needs, without touching expectingValue
// (scalars use it directly; WritePropertyName instead calls
// beforeSibling so it can also bump count while leaving
// expectingValue alone for the value that follows). A value inside an
// object is never preceded by a separator here — WritePropertyName's
// beforeSibling already accounted for it — and the lone top-level
// value never gets a leading newline, since it has no prior sibling
// to separate from.
func (w *Writer) beforeChild() error {
	f := w.top()
	if f.inObject {
		return nil
	}
	if f.count > 0 {
		if err := w.writeString(","); err != nil {
			return err
		}
	}
	if w.PrettyPrint && f.inArray {
		if err := w.writeString("\n"); err != nil {
			return err
		}
		if err := w.writeIndent(); err != nil {
			return err
		}
	}
	f.count++
	return nil
}

// beforeSibling is beforeChild's counterpart for property names: it
// owns comma/newline/indent before a new key, in an object specifically.
func (w *Writer) beforeSibling() error {
	f := w.top()
	if f.count > 0 {
		if err := w.writeString(","); err != nil {
			return err
		}
	}
	if w.PrettyPrint {
		if err := w.writeString("\n"); err != nil {
			return err
		}
		if err := w.writeIndent(); err != nil {
			return err
		}
	}
	f.count++
	return nil
}

func (w *Writer) afterScalar(err error) error {
	if err != nil {
		return err
	}
	f := w.top()
	f.expectingValue = false
	if len(w.stack) == 1 {
		w.hasReachedEnd = true
	}
	return nil
}

func (w *Writer) afterChildWritten() {
	if len(w.stack) == 0 {
		return
	}
	f := w.top()
	f.expectingValue = false
}

func (w *Writer) indentPrefix() string {
	if !w.PrettyPrint {
		return ""
	}
	return strings.Repeat(" ", w.depth*w.indentWidth())
}

func (w *Writer) writeIndent() error {
	if !w.PrettyPrint {
		return nil
	}
	return w.writeString(w.indentPrefix())
}

func (w *Writer) indentWidth() int {
	if w.IndentValue <= 0 {
		return defaultIndent
	}
	return w.IndentValue
}

// --- raw output helpers ---

func (w *Writer) emit(c byte) error { return w.writeString(string(c)) }

func (w *Writer) writeString(s string) error {
	_, err := io.WriteString(w.sink, s)
	return err
}

// writeEscapedString renders s as a double-quoted JSON string token,
// per spec §4.3's escaping rules.
func (w *Writer) writeEscapedString(s string) error {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\f':
			b.WriteString(`\f`)
		case '\b':
			b.WriteString(`\b`)
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			if r >= 32 && r <= 126 {
				b.WriteRune(r)
			} else {
				fmt.Fprintf(&b, `\u%04X`, r)
			}
		}
	}
	b.WriteByte('"')
	return w.writeString(b.String())
}

// foldName applies locale-invariant case folding for
// LowerCaseProperties. unicode.ToLower is used directly (not
// strings.ToLower) to keep the mapping obviously rune-by-rune and
// independent of any locale/collation table.
func foldName(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		out = append(out, unicode.ToLower(r))
	}
	return string(out)
}
