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

import "fmt"

// SyntaxError is the single error kind raised anywhere in this
// package: lexical errors, parse-table misses, truncated input, and
// writer validation failures all surface as a *SyntaxError carrying a
// human-readable message and, where available, the character offset
// into the source and a wrapped cause.
//
// Lexing, parsing, and writing all stop on the first error: there is
// no accumulate-and-continue mode.
type SyntaxError struct {
	Msg    string
	Offset int // characters read from the source so far, -1 if unknown
	Cause  error
}

func (e *SyntaxError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("jsonkit: %s (offset %d)", e.Msg, e.Offset)
	}
	return fmt.Sprintf("jsonkit: %s", e.Msg)
}

func (e *SyntaxError) Unwrap() error { return e.Cause }

// newLexError reports an invalid character encountered at the given
// offset.
func newLexError(offset int, r rune) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf("invalid character %q in input", r), Offset: offset}
}

// newLexErrorf reports a lexical error with a free-form message.
func newLexErrorf(offset int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Offset: offset}
}

// newTokenError reports a parse-table miss: terminal t was not
// expected for the symbol on top of the automaton stack.
func newTokenError(offset int, t code, cause error) *SyntaxError {
	return &SyntaxError{
		Msg:    fmt.Sprintf("invalid token '%s' in input string", t),
		Offset: offset,
		Cause:  cause,
	}
}

// newTruncatedError reports lexer EOF while the automaton stack still
// expects more input.
func newTruncatedError(offset int) *SyntaxError {
	return &SyntaxError{Msg: "input doesn't evaluate to proper JSON text", Offset: offset}
}

// newWriterError reports a writer validation failure with the exact
// message spec'd for the violated precondition.
func newWriterError(msg string) *SyntaxError {
	return &SyntaxError{Msg: msg, Offset: -1}
}
