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

import "io"

// Reader is a pull-style push-down automaton driven by the predictive
// parse table in symbol.go. It is the "Reader" of spec §4.2: each
// call to Read advances the automaton until it can present exactly
// one parse event (ObjectStart, PropertyName, a scalar, ...) or
// signal end of document.
type Reader struct {
	lex    *Lexer
	closer io.Closer

	stack []symbol

	// one-token lookahead held between automaton steps; haveCur is
	// false once it has been consumed by a terminal match.
	curTok  code
	curVal  string
	haveCur bool

	expectPropertyName bool

	endOfJSON bool

	Token TokenType
	Value interface{}

	// SkipNonMembers mirrors the embedding mapper's skip_non_members
	// knob (spec §6). The core never consults it itself — it is
	// carried here only so an out-of-scope reflection layer built on
	// top of Reader has somewhere to keep the setting alongside the
	// token stream it reads.
	SkipNonMembers bool
}

// NewReaderString returns a Reader scanning s.
func NewReaderString(s string) *Reader {
	return newReader(NewLexerString(s), nil)
}

// NewReader returns a Reader scanning r. If r implements io.Closer,
// Close on the Reader also closes r.
func NewReader(r io.Reader) *Reader {
	var closer io.Closer
	if c, ok := r.(io.Closer); ok {
		closer = c
	}
	return newReader(NewLexer(newReaderSource(r)), closer)
}

func newReader(lex *Lexer, closer io.Closer) *Reader {
	rd := &Reader{
		lex:            lex,
		closer:         closer,
		SkipNonMembers: true,
	}
	rd.resetStack()
	return rd
}

func (r *Reader) resetStack() {
	// Stack grows from the bottom; top is the last element. Initial
	// stack [END, TEXT] with top = TEXT per spec §3.
	r.stack = append(r.stack[:0], symEnd, symText)
	r.endOfJSON = false
}

// AllowComments reports whether // and /* */ comments are accepted.
func (r *Reader) AllowComments() bool { return r.lex.AllowComments }

// SetAllowComments toggles comment support on the underlying Lexer.
func (r *Reader) SetAllowComments(v bool) { r.lex.AllowComments = v }

// AllowSingleQuotedStrings reports whether single-quoted strings are accepted.
func (r *Reader) AllowSingleQuotedStrings() bool { return r.lex.AllowSingleQuotedStrings }

// SetAllowSingleQuotedStrings toggles single-quote support on the underlying Lexer.
func (r *Reader) SetAllowSingleQuotedStrings(v bool) { r.lex.AllowSingleQuotedStrings = v }

// EndOfJSON reports whether the most recent Read completed the
// top-level document.
func (r *Reader) EndOfJSON() bool { return r.endOfJSON }

// Close releases the Reader's character source if the Reader owns it.
func (r *Reader) Close() error {
	r.endOfJSON = true
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// Read advances the automaton until it can present one token event.
// It returns false once the document (or input) is exhausted; the
// returned error reports whether that happened because of a syntax
// error.
func (r *Reader) Read() (bool, error) {
	if r.endOfJSON {
		r.resetStack()
	}
	r.Token = None
	r.Value = nil

	for {
		if len(r.stack) == 0 {
			// Unreachable under correct operation: END always
			// remains until popped in the branch below.
			return false, nil
		}
		top := r.stack[len(r.stack)-1]

		if top == symEnd {
			r.endOfJSON = true
			return false, nil
		}

		r.stack = r.stack[:len(r.stack)-1] // pop

		yield, tok, val, err := r.dispatch(top)
		if err != nil {
			return false, err
		}
		if yield {
			r.Token = tok
			r.Value = val
			return true, nil
		}

		if top.isTerminalSymbol() {
			la, err := r.lookahead()
			if err != nil {
				return false, err
			}
			if la == codeEOF {
				return false, newTruncatedError(r.lex.offset)
			}
			if symbol(la) != top {
				return false, newTokenError(r.lex.offset, la, nil)
			}
			r.consume()
			continue
		}

		la, err := r.lookahead()
		if err != nil {
			return false, err
		}
		if la == codeEOF {
			return false, newTruncatedError(r.lex.offset)
		}
		prod, ok := production(top, la)
		if !ok {
			return false, newTokenError(r.lex.offset, la, nil)
		}
		for i := len(prod) - 1; i >= 0; i-- {
			r.stack = append(r.stack, prod[i])
		}
	}
}

// SkipValue consumes and discards the value that the next Read would
// otherwise start presenting: a single scalar, or a whole object/array
// subtree down to its matching end token. It is the mechanism the
// excluded reflection-mapper layer needs for skip_non_members, lifted
// into the core so it needs no reflection and can be tested directly.
func (r *Reader) SkipValue() error {
	ok, err := r.Read()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	switch r.Token {
	case ObjectStart, ArrayStart:
		depth := 1
		for depth > 0 {
			ok, err := r.Read()
			if err != nil {
				return err
			}
			if !ok {
				return newTruncatedError(r.lex.offset)
			}
			switch r.Token {
			case ObjectStart, ArrayStart:
				depth++
			case ObjectEnd, ArrayEnd:
				depth--
			}
		}
	}
	return nil
}

// lookahead returns the current lexer terminal, fetching a new one
// from the Lexer if the previous terminal was already consumed.
func (r *Reader) lookahead() (code, error) {
	if r.haveCur {
		return r.curTok, nil
	}
	if !r.lex.Next() {
		if err := r.lex.Err(); err != nil {
			return 0, err
		}
		r.curTok, r.curVal, r.haveCur = codeEOF, "", true
		return codeEOF, nil
	}
	r.curTok, r.curVal = r.lex.Token(), r.lex.StringValue()
	r.haveCur = true
	return r.curTok, nil
}

// consume marks the current lookahead terminal as used.
func (r *Reader) consume() { r.haveCur = false }

// isTerminalSymbol reports whether s is a lexer terminal rather than
// one of the automaton's nonterminals. Nonterminals live in a fixed
// block well below any terminal code (see symbol.go); terminals are
// either small negative sentinels or a structural character's own
// rune value.
func (s symbol) isTerminalSymbol() bool { return s > -1000 }

// dispatch implements spec §4.2's "Symbol processing": the few stack
// symbols that have an observable side effect when popped. Anything
// else is a silent pass-through (handled by the caller's terminal
// match / production lookup).
func (r *Reader) dispatch(s symbol) (yield bool, tok TokenType, val interface{}, err error) {
	switch s {
	case terminal('['):
		r.consume()
		return true, ArrayStart, nil, nil
	case terminal(']'):
		r.consume()
		return true, ArrayEnd, nil, nil
	case terminal('{'):
		r.consume()
		return true, ObjectStart, nil, nil
	case terminal('}'):
		r.consume()
		return true, ObjectEnd, nil, nil

	case symPair:
		// Latch PropertyName for the STRING terminal about to be
		// matched; re-push PAIR's own production below us by falling
		// through to the default production lookup (PAIR is also a
		// nonterminal in the grammar table).
		r.expectPropertyName = true
		return false, None, nil, nil

	case terminal(codeString):
		la, lerr := r.lookahead()
		if lerr != nil {
			return false, None, nil, lerr
		}
		if la != codeString {
			return false, None, nil, newTokenError(r.lex.offset, la, nil)
		}
		value := r.curVal
		r.consume()
		if r.expectPropertyName {
			r.expectPropertyName = false
			return true, PropertyName, value, nil
		}
		return true, String, value, nil

	case terminal(codeTrue):
		r.consume()
		return true, Boolean, true, nil
	case terminal(codeFalse):
		r.consume()
		return true, Boolean, false, nil
	case terminal(codeNull):
		r.consume()
		return true, Null, nil, nil

	case terminal(codeNumber):
		la, lerr := r.lookahead()
		if lerr != nil {
			return false, None, nil, lerr
		}
		if la != codeNumber {
			return false, None, nil, newTokenError(r.lex.offset, la, nil)
		}
		lit := r.curVal
		r.consume()
		tt, v := classifyNumber(lit)
		return true, tt, v, nil
	}
	return false, None, nil, nil
}
